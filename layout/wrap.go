package layout

import (
	"strings"

	"github.com/flapboard/flapboard/marker"
)

// chunk is a run of word tokens or a run of spaces, with its tile width.
type chunk struct {
	text    string
	width   int
	isSpace bool
}

// Wrap breaks s into rows of at most width visible tiles, honoring at most
// maxRows rows. Color markers are indivisible one-tile units, embedded
// newlines force a row break before width wrapping, words longer than a
// full row hard-break at tile granularity, and content past the budget is
// discarded. Rows are not padded here; see Pad and Compose.
// Complexity: O(len(s)).
func Wrap(s string, width, maxRows int) []string {
	if width <= 0 || maxRows <= 0 {
		return nil
	}
	var rows []string
	for _, seg := range strings.Split(s, "\n") {
		if len(rows) == maxRows {
			break
		}
		rows = append(rows, wrapSegment(seg, width, maxRows-len(rows))...)
	}
	return rows
}

// wrapSegment wraps one newline-free segment under a local row budget.
func wrapSegment(seg string, width, budget int) []string {
	// Fast path: a fitting segment keeps its interior spacing verbatim.
	if marker.Width(seg) <= width {
		return []string{seg}
	}

	rows := make([]string, 0, budget)
	var cur strings.Builder
	curW := 0
	// flush commits the current row, consuming any break-point spaces;
	// false means the budget is spent.
	flush := func() bool {
		rows = append(rows, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		curW = 0
		return len(rows) < budget
	}

	open := true
	for _, c := range chunksOf(seg) {
		if !open {
			break
		}
		switch {
		case c.isSpace:
			if curW == 0 {
				continue // drop leading spaces on a fresh row
			}
			if curW+c.width <= width {
				cur.WriteString(c.text)
				curW += c.width
			} else {
				open = flush() // spaces at the break point are consumed
			}
		case c.width <= width-curW:
			cur.WriteString(c.text)
			curW += c.width
		case c.width <= width:
			if open = flush(); open {
				cur.WriteString(c.text)
				curW = c.width
			}
		default:
			// Word wider than a full row: start fresh, then hard-break it
			// token by token so markers stay whole.
			if curW > 0 {
				open = flush()
			}
			for _, tok := range marker.Tokens(c.text) {
				if !open {
					break
				}
				if curW+tok.Width() > width {
					if open = flush(); !open {
						break
					}
				}
				cur.WriteString(tok.Text)
				curW += tok.Width()
			}
		}
	}
	if open && curW > 0 {
		rows = append(rows, strings.TrimRight(cur.String(), " "))
	}
	return rows
}

// chunksOf splits a segment into alternating space runs and words, keeping
// zero-width tokens (end markers, stray sentinels) attached to their word.
func chunksOf(seg string) []chunk {
	toks := marker.Tokens(seg)
	out := make([]chunk, 0, 8)
	for i := 0; i < len(toks); {
		space := isSpaceToken(toks[i])
		var b strings.Builder
		w := 0
		j := i
		for j < len(toks) && isSpaceToken(toks[j]) == space {
			b.WriteString(toks[j].Text)
			w += toks[j].Width()
			j++
		}
		out = append(out, chunk{text: b.String(), width: w, isSpace: space})
		i = j
	}
	return out
}

// isSpaceToken reports whether the token is a literal blank tile.
func isSpaceToken(t marker.Token) bool {
	return t.Kind == marker.KindLiteral && t.Text == " "
}
