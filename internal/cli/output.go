package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblesolver/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.SolveResponse:
		o.printSolve(v)
	case []response.SolveResponse:
		for i, s := range v {
			if i > 0 {
				_, _ = fmt.Fprintln(o.w)
			}
			o.printSolve(s)
		}
	case response.Placement:
		o.printPlacement(v)
	case response.Session:
		o.printSession(v)
	case []response.LocaleSummary:
		o.printLocales(v)
	case response.Locale:
		o.printLocale(v)
	case response.HealthResponse:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// markWildcards lowercases the letters played with a wildcard tile
func markWildcards(word string, wildcards []bool) string {
	letters := []rune(word)
	for i := range letters {
		if i < len(wildcards) && wildcards[i] {
			letters[i] = unicode.ToLower(letters[i])
		}
	}
	return string(letters)
}

func direction(vertical bool) string {
	if vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o *Output) printPlacementList(ps []response.Placement) {
	if len(ps) == 0 {
		_, _ = fmt.Fprintln(o.w, "No placements found")
		return
	}
	for i, p := range ps {
		_, _ = fmt.Fprintf(o.w, "%3d. %-15s %4d pts  row %2d col %2d  %-10s  %d tiles\n",
			i+1, markWildcards(p.Word, p.Wildcards), p.Score, p.Row, p.Col, direction(p.Vertical), p.TilesUsed)
	}
}

func (o *Output) printSolve(s response.SolveResponse) {
	_, _ = fmt.Fprintf(o.w, "Rack: %s\n", s.Rack)
	o.printPlacementList(s.Placements)
}

func (o *Output) printPlacement(p response.Placement) {
	_, _ = fmt.Fprintf(o.w, "Word: %s\n", markWildcards(p.Word, p.Wildcards))
	_, _ = fmt.Fprintf(o.w, "Start: row %d col %d, %s\n", p.Row, p.Col, direction(p.Vertical))
	_, _ = fmt.Fprintf(o.w, "Tiles used: %d\n", p.TilesUsed)
	_, _ = fmt.Fprintf(o.w, "Score: %d\n", p.Score)
}

func (o *Output) printSession(s response.Session) {
	_, _ = fmt.Fprintf(o.w, "Session: %s (%s)\n", s.ID, s.Locale)
	_, _ = fmt.Fprintf(o.w, "Rack: %s\n", s.Rack)
	_, _ = fmt.Fprintf(o.w, "Cursor: row %d col %d, %s\n", s.Cursor.Row, s.Cursor.Col, direction(s.Vertical))
	_, _ = fmt.Fprintln(o.w)
	o.printBoard(s.Display, s.Cursor)
	if len(s.Results) > 0 {
		_, _ = fmt.Fprintln(o.w, "\nResults:")
		o.printPlacementList(s.Results)
	}
}

// printBoard draws board rows with column headers, bracketing the cursor cell
func (o *Output) printBoard(rows []string, cursor response.Position) {
	if len(rows) == 0 {
		return
	}
	width := len([]rune(rows[0]))

	var sb strings.Builder
	sb.WriteString("    ")
	for col := 0; col < width; col++ {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteString("\n   +" + strings.Repeat("---", width) + "+\n")

	for row, line := range rows {
		fmt.Fprintf(&sb, "%2d |", row)
		for col, r := range []rune(line) {
			if row == cursor.Row && col == cursor.Col {
				fmt.Fprintf(&sb, "[%c]", r)
			} else {
				fmt.Fprintf(&sb, " %c ", r)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   +" + strings.Repeat("---", width) + "+\n")
	_, _ = io.WriteString(o.w, sb.String())
}

func (o *Output) printLocales(ls []response.LocaleSummary) {
	for _, l := range ls {
		_, _ = fmt.Fprintf(o.w, "%-4s %-10s %dx%d board, %d tiles\n", l.Code, l.Name, l.Width, l.Height, l.RackSize)
	}
}

func (o *Output) printLocale(l response.Locale) {
	_, _ = fmt.Fprintf(o.w, "Locale: %s (%s)\n", l.Name, l.Code)
	_, _ = fmt.Fprintf(o.w, "Rack size: %d\n", l.RackSize)
	_, _ = fmt.Fprintf(o.w, "Alphabet: %s\n", l.Alphabet)
	_, _ = fmt.Fprintln(o.w, "Layout:")
	for _, row := range l.Layout {
		_, _ = fmt.Fprintf(o.w, "  %s\n", row)
	}
}

func (o *Output) printHealth(h response.HealthResponse) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	codes := lo.Keys(h.Locales)
	sort.Strings(codes)
	for _, code := range codes {
		_, _ = fmt.Fprintf(o.w, "  %s: %d words\n", code, h.Locales[code])
	}
}
