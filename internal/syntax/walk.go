package syntax

// Visit walks the tree rooted at n in pre-order. fn is called on a node before
// any of its children; returning false skips that node's subtree.
func Visit(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		Visit(n.NamedChild(i), fn)
	}
}

// Collect returns every node under n (inclusive, pre-order) matching pred.
func Collect(n Node, pred func(Node) bool) []Node {
	var out []Node
	Visit(n, func(c Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindFirst returns the first node in pre-order matching pred, or nil.
func FindFirst(n Node, pred func(Node) bool) Node {
	var hit Node
	Visit(n, func(c Node) bool {
		if hit != nil {
			return false
		}
		if pred(c) {
			hit = c
			return false
		}
		return true
	})
	return hit
}

// Children returns the direct named children of n in source order.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	out := make([]Node, 0, n.NamedChildCount())
	for i := 0; i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// OfType returns a predicate matching nodes whose type is in types.
func OfType(types map[string]struct{}) func(Node) bool {
	return func(n Node) bool {
		_, ok := types[n.Type()]
		return ok
	}
}
