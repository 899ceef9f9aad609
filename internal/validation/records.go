package validation

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// RecordSchema validates a single stored game record
type RecordSchema struct {
	name   string
	schema *gojsonschema.Schema
}

// Valid reports whether raw conforms to the stored-record schema
func (r *RecordSchema) Valid(raw []byte) bool {
	result, err := r.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return false
	}
	return result.Valid()
}

// Name returns the schema file the record schema was loaded from
func (r *RecordSchema) Name() string {
	return r.name
}

func loadRecordSchema(name string) (*RecordSchema, error) {
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &RecordSchema{name: name, schema: schema}, nil
}

func mustRecordSchema(name string) *RecordSchema {
	s, err := loadRecordSchema(name)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	everdellRecord = mustRecordSchema("everdell_game.json")
	flip7Record    = mustRecordSchema("flip7_game.json")
	phase10Record  = mustRecordSchema("phase10_game.json")
)

// EverdellRecord returns the schema for stored Everdell games
func EverdellRecord() *RecordSchema { return everdellRecord }

// Flip7Record returns the schema for stored Flip 7 games
func Flip7Record() *RecordSchema { return flip7Record }

// Phase10Record returns the schema for stored Phase 10 games
func Phase10Record() *RecordSchema { return phase10Record }
