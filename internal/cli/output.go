package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mcoot/scorekeeper/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.EverdellGame:
		o.printEverdellGame(v)
	case []response.EverdellGame:
		o.printEverdellGames(v)
	case []response.ScoreRow:
		o.printScoreRows(v)
	case response.Flip7Game:
		o.printFlip7Game(v)
	case []response.Flip7Summary:
		o.printFlip7Summaries(v)
	case response.Phase10Game:
		o.printPhase10Game(v)
	case []response.Phase10Game:
		o.printPhase10Games(v)
	case response.PhaseDetails:
		fmt.Fprintf(o.w, "Phase %d: %s\n", v.Phase, v.Description)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func status(completedAt *time.Time) string {
	if completedAt != nil {
		return "completed"
	}
	return "in progress"
}

func (o *Output) printEverdellGame(g response.EverdellGame) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Started: %s\n", g.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Status: %s\n", status(g.CompletedAt))
	fmt.Fprintf(o.w, "Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Fprintf(o.w, "  - %s (%s): %d\n", p.Name, p.ID, p.Total)
	}
}

func (o *Output) printEverdellGames(games []response.EverdellGame) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tPLAYERS\tSTATUS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", g.ID, g.StartedAt.Format(time.RFC3339), len(g.Players), status(g.CompletedAt))
	}
	_ = tw.Flush()
}

func (o *Output) printScoreRows(rows []response.ScoreRow) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprint(tw, row.Title)
		for _, c := range row.Scores {
			fmt.Fprintf(tw, "\t%s=%d", c.PlayerID, c.Value)
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func (o *Output) printFlip7Game(g response.Flip7Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Created: %s\n", g.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Rounds: %d\n", len(g.Rounds))
	fmt.Fprintf(o.w, "Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Fprintf(o.w, "  - %s (%s): %d\n", p.Name, p.ID, p.Total)
	}
	if g.WinnerID != nil {
		fmt.Fprintf(o.w, "Winner: %s\n", *g.WinnerID)
	}
}

func (o *Output) printFlip7Summaries(summaries []response.Flip7Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tPLAYERS\tROUNDS\tSTATUS\tWINNER")
	for _, s := range summaries {
		winner := "-"
		if s.WinnerID != nil {
			winner = *s.WinnerID
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			s.ID, s.CreatedAt.Format(time.RFC3339), s.PlayerCount, s.RoundsCount, s.Status, winner)
	}
	_ = tw.Flush()
}

func (o *Output) printPhase10Game(g response.Phase10Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Started: %s\n", g.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Status: %s\n", status(g.CompletedAt))
	fmt.Fprintf(o.w, "Rounds: %d\n", g.Rounds)
	fmt.Fprintf(o.w, "Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Fprintf(o.w, "  - %s (%s): phase %d, %d points\n", p.Name, p.ID, p.Phase, p.Score)
	}
}

func (o *Output) printPhase10Games(games []response.Phase10Game) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tPLAYERS\tROUNDS\tSTATUS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", g.ID, g.StartedAt.Format(time.RFC3339), len(g.Players), g.Rounds, status(g.CompletedAt))
	}
	_ = tw.Flush()
}
