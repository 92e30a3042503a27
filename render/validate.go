package render

import (
	"fmt"
	"strings"

	"github.com/flapboard/flapboard/layout"
	"github.com/flapboard/flapboard/marker"
	"github.com/flapboard/flapboard/resolve"
	"github.com/flapboard/flapboard/tiles"
)

// Severity classifies a validation finding.
type Severity string

const (
	// SeverityError findings make a template misrender.
	SeverityError Severity = "error"
	// SeverityWarning findings are heuristic: the template may still
	// render fine depending on filters, markers and live values.
	SeverityWarning Severity = "warning"
)

// Issue is one finding reported by Validate.
type Issue struct {
	// Line is the 1-based template line the finding refers to.
	Line int
	// Severity tells authoring tools how loudly to complain.
	Severity Severity
	// Message is the human-readable finding.
	Message string
}

// Validate checks a raw template for authoring tools, without rendering
// and without a live context. Per line it reports: mismatched expression
// delimiters, references to unknown source identifiers, paths too short to
// resolve, and lines whose variable-free visible width already exceeds the
// board (a heuristic warning, since filters and values change final width).
// known lists the available source identifiers; nil skips that check.
// Complexity: O(total template length).
func Validate(template []string, known []string) []Issue {
	var knownSet map[string]bool
	if known != nil {
		knownSet = make(map[string]bool, len(known))
		for _, id := range known {
			knownSet[id] = true
		}
	}
	var issues []Issue
	for i, line := range template {
		issues = append(issues, validateLine(i+1, line, knownSet)...)
	}
	if len(template) > tiles.Rows {
		issues = append(issues, Issue{
			Line:     tiles.Rows + 1,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("template has %d lines; the board shows %d", len(template), tiles.Rows),
		})
	}
	return issues
}

// validateLine reports the findings for one template line.
func validateLine(n int, line string, known map[string]bool) []Issue {
	var issues []Issue

	if opens, closes := strings.Count(line, "{{"), strings.Count(line, "}}"); opens != closes {
		issues = append(issues, Issue{
			Line:     n,
			Severity: SeverityError,
			Message:  fmt.Sprintf("mismatched expression delimiters: %d {{ vs %d }}", opens, closes),
		})
	}

	stripped, exprs := splitExpressions(line)
	for _, body := range exprs {
		path, _, _ := strings.Cut(body, "|")
		path = strings.TrimSpace(path)
		if strings.EqualFold(path, resolve.FlexName) {
			continue
		}
		segs := strings.Split(path, ".")
		if len(segs) < 2 {
			issues = append(issues, Issue{
				Line:     n,
				Severity: SeverityError,
				Message:  fmt.Sprintf("expression %q needs a source and a field", path),
			})
			continue
		}
		if known != nil && !known[segs[0]] {
			issues = append(issues, Issue{
				Line:     n,
				Severity: SeverityError,
				Message:  fmt.Sprintf("unknown source %q", segs[0]),
			})
		}
	}

	_, rest := layout.ParseAlignment(stripped)
	if w := marker.Width(marker.Normalize(rest)); w > tiles.Columns {
		issues = append(issues, Issue{
			Line:     n,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("line is already %d tiles wide before variables (board is %d)", w, tiles.Columns),
		})
	}
	return issues
}

// splitExpressions removes every well-formed {{...}} expression from line,
// returning the remaining literal text and the expression bodies.
func splitExpressions(line string) (stripped string, bodies []string) {
	var b strings.Builder
	rest := line
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			return b.String(), bodies
		}
		end := strings.Index(rest[open+2:], "}}")
		if end < 0 {
			b.WriteString(rest)
			return b.String(), bodies
		}
		b.WriteString(rest[:open])
		bodies = append(bodies, strings.TrimSpace(rest[open+2:open+2+end]))
		rest = rest[open+2+end+2:]
	}
}
