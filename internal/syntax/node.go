// Package syntax defines the read-only view of a parsed syntax tree that the
// metrics engine consumes, plus the traversal primitives built on it.
package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Point is a zero-based (row, column) source position.
type Point struct {
	Row    int
	Column int
}

// Node is a single syntax tree node. Implementations must be immutable for the
// duration of an analysis and return children in source order.
type Node interface {
	Type() string
	Text() string
	StartPoint() Point
	EndPoint() Point
	NamedChildCount() int
	NamedChild(i int) Node
}

// FromSitter wraps a tree-sitter node. source must be the exact buffer the tree
// was parsed from. A nil node yields nil.
func FromSitter(n *sitter.Node, source []byte) Node {
	if n == nil || n.IsNull() {
		return nil
	}
	return &sitterNode{n: n, source: source}
}

type sitterNode struct {
	n      *sitter.Node
	source []byte
}

func (s *sitterNode) Type() string { return s.n.Type() }

func (s *sitterNode) Text() string {
	start, end := int(s.n.StartByte()), int(s.n.EndByte())
	if start < 0 || end > len(s.source) || start > end {
		return ""
	}
	return string(s.source[start:end])
}

func (s *sitterNode) StartPoint() Point {
	p := s.n.StartPoint()
	return Point{Row: int(p.Row), Column: int(p.Column)}
}

func (s *sitterNode) EndPoint() Point {
	p := s.n.EndPoint()
	return Point{Row: int(p.Row), Column: int(p.Column)}
}

func (s *sitterNode) NamedChildCount() int { return int(s.n.NamedChildCount()) }

func (s *sitterNode) NamedChild(i int) Node {
	return FromSitter(s.n.NamedChild(i), s.source)
}
