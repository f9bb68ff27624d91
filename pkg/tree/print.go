package tree

import (
	"fmt"
	"strings"
)

// String methods give a compact single-line form used for structural comparison.

func (a *Action) String() string {
	d := a.Decision
	return fmt.Sprintf("[pit=%t %s push=%t]", d.PitNow, d.TargetCompound.Name(), d.AggressivePace)
}

func (c *Condition) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Pred.Name(), childString(c.Left), childString(c.Right))
}

func childString(n Node) string {
	if n == nil {
		return "-"
	}
	return n.String()
}

type writer struct {
	lines []string
}

func (w *writer) line(depth int, s string) {
	w.lines = append(w.lines, strings.Repeat("  ", depth)+s)
}

// Format renders an indented trace of the tree for human inspection.
// Conditions print as "? predicate", true branches are prefixed "Y ",
// false branches "N ".
func Format(root Node) string {
	if root == nil {
		return ""
	}
	w := &writer{}
	root.format(w, 0, "")
	return strings.Join(w.lines, "\n")
}

func (a *Action) format(w *writer, depth int, prefix string) {
	d := a.Decision
	w.line(depth, fmt.Sprintf("%s→ PIT: %t, TYRES: %s, PUSH: %t",
		prefix, d.PitNow, d.TargetCompound.Name(), d.AggressivePace))
}

func (c *Condition) format(w *writer, depth int, prefix string) {
	w.line(depth, fmt.Sprintf("%s? %s", prefix, c.Pred.Name()))
	if c.Left != nil {
		c.Left.format(w, depth+1, "Y ")
	}
	if c.Right != nil {
		c.Right.format(w, depth+1, "N ")
	}
}
