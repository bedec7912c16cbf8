package css

import "fmt"

// DuplicateError is returned when a single-occurrence part category (element,
// id or pseudo-element) is set a second time on the same selector.
type DuplicateError struct {
	Part string // category name, e.g. "pseudo-element"
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s may occur only once in a selector", e.Part)
}

// OrderError is returned when a part category is added after a higher-ranked
// category already opened the selector. Parts follow the fixed CSS order:
// element, id, class, attribute, pseudo-class, pseudo-element.
type OrderError struct {
	Part  string // category being added
	After string // category that opened the selector
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("cannot add %s after %s: selector parts follow element, id, class, attribute, pseudo-class, pseudo-element order", e.Part, e.After)
}
