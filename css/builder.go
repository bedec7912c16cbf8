package css

import (
	"fmt"
	"strings"
)

// rank is the fixed priority of a part category inside a compound selector.
type rank int

const (
	rankNone rank = iota
	rankElement
	rankID
	rankClass
	rankAttribute
	rankPseudoClass
	rankPseudoElement
)

// String returns the category name used in error messages.
func (r rank) String() string {
	switch r {
	case rankElement:
		return "element"
	case rankID:
		return "id"
	case rankClass:
		return "class"
	case rankAttribute:
		return "attribute"
	case rankPseudoClass:
		return "pseudo-class"
	case rankPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// combined holds the pre-rendered operands of a Combine call. Operands are
// captured as text, not as live selectors, so combined selectors never alias
// their inputs.
type combined struct {
	left       string
	combinator string
	right      string
}

// Selector accumulates parts of a CSS selector. The zero value is an empty
// selector ready for use; all part methods mutate the receiver and return it
// to allow chaining. A Selector is not safe for concurrent use.
type Selector struct {
	element       string
	id            string
	classes       []string
	attribute     string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasAttribute     bool
	hasPseudoElement bool

	combined *combined

	// firstRank is the category of the first part ever added. The order
	// gate compares new parts against it, not against the most recently
	// added category.
	firstRank rank

	err error
}

// New returns an empty selector.
func New() *Selector {
	return &Selector{}
}

// note records the category of the first part added to the selector.
func (s *Selector) note(r rank) {
	if s.firstRank == rankNone {
		s.firstRank = r
	}
}

// inOrder checks the order gate for a part of category r and records an
// OrderError on failure.
func (s *Selector) inOrder(r rank) bool {
	if s.firstRank > r {
		s.err = &OrderError{Part: r.String(), After: s.firstRank.String()}
		return false
	}
	return true
}

// Element sets the element (tag) name. It may be set only once and must be
// the first part of the selector.
func (s *Selector) Element(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.hasElement {
		s.err = &DuplicateError{Part: rankElement.String()}
		return s
	}
	if !s.inOrder(rankElement) {
		return s
	}
	s.element = name
	s.hasElement = true
	s.note(rankElement)
	return s
}

// ID sets the id name (without the leading "#"). It may be set only once.
func (s *Selector) ID(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.hasID {
		s.err = &DuplicateError{Part: rankID.String()}
		return s
	}
	if !s.inOrder(rankID) {
		return s
	}
	s.id = name
	s.hasID = true
	s.note(rankID)
	return s
}

// Class appends a class name (without the leading "."). Classes render in
// insertion order and duplicates are kept.
func (s *Selector) Class(name string) *Selector {
	if s.err != nil {
		return s
	}
	if !s.inOrder(rankClass) {
		return s
	}
	s.classes = append(s.classes, name)
	s.note(rankClass)
	return s
}

// Attribute sets the attribute expression (without the brackets). Only one
// attribute slot exists; a repeated call replaces the previous expression.
func (s *Selector) Attribute(expr string) *Selector {
	if s.err != nil {
		return s
	}
	if !s.inOrder(rankAttribute) {
		return s
	}
	s.attribute = expr
	s.hasAttribute = true
	s.note(rankAttribute)
	return s
}

// PseudoClass appends a pseudo-class name (without the leading ":").
// Pseudo-classes render in insertion order and duplicates are kept.
func (s *Selector) PseudoClass(name string) *Selector {
	if s.err != nil {
		return s
	}
	if !s.inOrder(rankPseudoClass) {
		return s
	}
	s.pseudoClasses = append(s.pseudoClasses, name)
	s.note(rankPseudoClass)
	return s
}

// PseudoElement sets the pseudo-element name (without the leading "::"). It
// may be set only once.
func (s *Selector) PseudoElement(name string) *Selector {
	if s.err != nil {
		return s
	}
	if s.hasPseudoElement {
		s.err = &DuplicateError{Part: rankPseudoElement.String()}
		return s
	}
	if !s.inOrder(rankPseudoElement) {
		return s
	}
	s.pseudoElement = name
	s.hasPseudoElement = true
	s.note(rankPseudoElement)
	return s
}

// Combine joins two selectors with a combinator (" ", "+", "~" or ">"). Both
// operands are rendered immediately and only their text is kept, so later
// changes to left or right do not affect the result. The combinator value is
// not validated. A combined selector renders from the captured triple only.
func (s *Selector) Combine(left *Selector, combinator string, right *Selector) *Selector {
	if s.err != nil {
		return s
	}
	l, err := left.Render()
	if err != nil {
		s.err = err
		return s
	}
	r, err := right.Render()
	if err != nil {
		s.err = err
		return s
	}
	s.combined = &combined{left: l, combinator: combinator, right: r}
	return s
}

// Err returns the first construction error, if any.
func (s *Selector) Err() error {
	return s.err
}

// Render produces the CSS selector text. Simple selectors concatenate their
// parts in category order with no separators between categories; combined
// selectors render as "left combinator right" with single spaces around the
// combinator.
func (s *Selector) Render() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.combined != nil {
		return fmt.Sprintf("%s %s %s", s.combined.left, s.combined.combinator, s.combined.right), nil
	}

	var b strings.Builder
	if s.hasElement {
		b.WriteString(s.element)
	}
	if s.hasID {
		b.WriteByte('#')
		b.WriteString(s.id)
	}
	for _, name := range s.classes {
		b.WriteByte('.')
		b.WriteString(name)
	}
	if s.hasAttribute {
		b.WriteByte('[')
		b.WriteString(s.attribute)
		b.WriteByte(']')
	}
	for _, name := range s.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(name)
	}
	if s.hasPseudoElement {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
	return b.String(), nil
}

// String implements fmt.Stringer. It returns the rendered selector or an
// empty string if construction failed - use Render or Err when the error
// matters.
func (s *Selector) String() string {
	text, _ := s.Render()
	return text
}
