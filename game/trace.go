package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Trace writes a human-readable account of a sequential search and keeps the
// move history of the line explored last.
//
// Lines are tab-indented by recursion depth and prefixed with the player to
// move at that depth (P1 at even depths, P2 at odd). Write errors never
// change the verdict: the first one is kept in Err and later output is dropped.
type Trace struct {
	w    io.Writer
	err  error
	path []int // current line, indexed by depth
	last []int // line that ended most recently
}

// NewTrace returns a Trace writing to w. A nil w records history only.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// History returns a copy of the move history of the line that ended last,
// which for a finished search is the line that produced the verdict.
func (t *Trace) History() []int {
	return append([]int(nil), t.last...)
}

// Err returns the first write error, if any.
func (t *Trace) Err() error { return t.err }

func player(depth int) string {
	if depth%2 == 0 {
		return "P1:"
	}

	return "P2:"
}

func formatHistory(nodes []int) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString("->")
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

func (t *Trace) printf(depth int, format string, args ...any) {
	if t.w == nil || t.err != nil {
		return
	}
	line := strings.Repeat("\t", depth) + fmt.Sprintf(format, args...) + "\n"
	if _, err := io.WriteString(t.w, line); err != nil {
		t.err = err
	}
}

// reset forgets the lines of a previous search.
func (t *Trace) reset() {
	t.path = t.path[:0]
	t.last = t.last[:0]
}

// enter records node at depth on the current line.
func (t *Trace) enter(node, depth int) {
	if depth > len(t.path) {
		depth = len(t.path)
	}
	t.path = append(t.path[:depth], node)
	t.printf(depth, "%s Reached node %d", player(depth), node)
}

func (t *Trace) scanning(depth int) {
	t.printf(depth, "Checking for any cycles that are one move away.")
}

// closed records a MAC cycle closed by stepping back to v.
func (t *Trace) closed(v, depth int) {
	t.last = append(append(t.last[:0], t.path[:depth+1]...), v)
	t.printf(depth, "%s Cycle detected. Move history: %s", player(depth), formatHistory(t.last))
}

// stuck records a position with no legal move.
func (t *Trace) stuck(depth int) {
	t.last = append(t.last[:0], t.path[:depth+1]...)
	t.printf(depth, "No valid moves remaining. Move history: %s", formatHistory(t.last))
}

// outcome records the verdict for the opponent after moving from u to v.
func (t *Trace) outcome(u, v, depth int, child State) {
	opponent := strings.TrimSuffix(player(depth+1), ":")
	t.printf(depth, "%s Playing from %d to %d results in %s for %s. Move history: %s->%d",
		player(depth), u, v, child, opponent, formatHistory(t.path[:depth+1]), v)
}

func (t *Trace) exhausted(depth int) {
	t.printf(depth, "%s No good moves, the game is in a loss state.", player(depth))
}
