package tree

import "strings"

func (a *Action) NodeCount() int { return 1 }
func (c *Condition) NodeCount() int {
	n := 1
	if c.Left != nil {
		n += c.Left.NodeCount()
	}
	if c.Right != nil {
		n += c.Right.NodeCount()
	}
	return n
}

func (a *Action) Depth() int { return 0 }
func (c *Condition) Depth() int {
	d := 0
	if c.Left != nil {
		d = c.Left.Depth()
	}
	if c.Right != nil {
		if rd := c.Right.Depth(); rd > d {
			d = rd
		}
	}
	return 1 + d
}

// Shape renders node kinds and child arrangement only, ignoring payloads.
// Two trees with equal shapes differ at most in predicates and decisions.
func Shape(n Node) string {
	var b strings.Builder
	shape(&b, n)
	return b.String()
}

func shape(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteByte('_')
	case *Action:
		b.WriteByte('A')
	case *Condition:
		b.WriteString("C(")
		shape(b, n.Left)
		b.WriteByte(',')
		shape(b, n.Right)
		b.WriteByte(')')
	}
}
