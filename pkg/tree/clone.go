package tree

func (a *Action) Clone() Node {
	return &Action{Decision: a.Decision}
}

func (c *Condition) Clone() Node {
	return &Condition{
		Pred:  c.Pred,
		Left:  cloneChild(c.Left),
		Right: cloneChild(c.Right),
	}
}

func cloneChild(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}
