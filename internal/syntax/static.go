package syntax

// Static is an in-memory Node, used to build trees by hand (tests, fixtures,
// and callers that already hold a tree in another form).
type Static struct {
	Kind     string
	Source   string
	Start    Point
	End      Point
	Children []*Static
}

func (s *Static) Type() string      { return s.Kind }
func (s *Static) Text() string      { return s.Source }
func (s *Static) StartPoint() Point { return s.Start }
func (s *Static) EndPoint() Point   { return s.End }

func (s *Static) NamedChildCount() int { return len(s.Children) }

func (s *Static) NamedChild(i int) Node {
	if i < 0 || i >= len(s.Children) || s.Children[i] == nil {
		return nil
	}
	return s.Children[i]
}

// Leaf returns a childless Static node whose text is source.
func Leaf(kind, source string) *Static {
	return &Static{Kind: kind, Source: source}
}

// Branch returns a Static node with the given children. Its text is empty
// unless set by the caller.
func Branch(kind string, children ...*Static) *Static {
	return &Static{Kind: kind, Children: children}
}

// Lines sets the zero-based row span of s and returns it.
func (s *Static) Lines(startRow, endRow int) *Static {
	s.Start = Point{Row: startRow}
	s.End = Point{Row: endRow}
	return s
}

// WithText sets the raw text of s and returns it.
func (s *Static) WithText(text string) *Static {
	s.Source = text
	return s
}
