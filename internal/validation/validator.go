// Package validation checks the structure of incoming payloads and stored
// game records against JSON schemas.
//
// Every violation is reported, each tagged with a dotted path such as
// "players.2.score", so callers can show errors next to the offending field.
package validation

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mcoot/scorekeeper/internal/model"
)

const rootContext = "(root)"

// refinement adds issues that a schema cannot express
type refinement func(doc []byte) []model.Issue

// Validator validates documents against a compiled schema and translates
// schema errors into user-facing messages.
type Validator struct {
	schema   *gojsonschema.Schema
	messages map[string]string
	refine   refinement
}

// newValidator compiles schema. Messages are keyed by "<field>:<error type>"
// where field is the last non-index segment of the issue path.
func newValidator(schema map[string]any, messages map[string]string, refine refinement) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: compiled, messages: messages, refine: refine}, nil
}

func mustValidator(schema map[string]any, messages map[string]string, refine refinement) *Validator {
	v, err := newValidator(schema, messages, refine)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks a Go value by validating its JSON encoding
func (v *Validator) Validate(doc any) []model.Issue {
	data, err := json.Marshal(doc)
	if err != nil {
		return []model.Issue{{Message: err.Error()}}
	}
	return v.ValidateJSON(data)
}

// ValidateJSON checks a raw JSON document. A nil result means the
// document is valid.
func (v *Validator) ValidateJSON(data []byte) []model.Issue {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return []model.Issue{{Message: "Invalid JSON"}}
	}

	var issues []model.Issue
	for _, e := range result.Errors() {
		path := issuePath(e)
		issues = append(issues, model.Issue{Path: path, Message: v.message(path, e)})
	}
	if v.refine != nil {
		issues = append(issues, v.refine(data)...)
	}

	slices.SortStableFunc(issues, func(a, b model.Issue) int {
		return comparePaths(a.Path, b.Path)
	})
	return issues
}

func (v *Validator) message(path string, e gojsonschema.ResultError) string {
	if msg, ok := v.messages[lastField(path)+":"+e.Type()]; ok {
		return msg
	}
	if e.Type() == "required" {
		return "Required"
	}
	return e.Description()
}

// issuePath converts a schema error location into a dotted path. Required
// errors are reported against the parent object, so the missing property
// is appended.
func issuePath(e gojsonschema.ResultError) string {
	path := strings.TrimPrefix(e.Context().String(), rootContext)
	path = strings.TrimPrefix(path, ".")
	if e.Type() == "required" {
		if prop, ok := e.Details()["property"].(string); ok {
			path = joinPath(path, prop)
		}
	}
	return path
}

func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// lastField returns the last path segment that is not an array index
func lastField(path string) string {
	segments := strings.Split(path, ".")
	for i := len(segments) - 1; i >= 0; i-- {
		if _, err := strconv.Atoi(segments[i]); err != nil {
			return segments[i]
		}
	}
	return ""
}

// comparePaths orders paths segment by segment, comparing array indices
// numerically so "players.10" sorts after "players.2".
func comparePaths(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegments(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

func compareSegments(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return cmp.Compare(an, bn)
	}
	return strings.Compare(a, b)
}
