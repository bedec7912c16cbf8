package css

// Stateless entry points. Each call starts a fresh selector, so independent
// chains never share state.

// Element starts a new selector with an element (tag) name.
func Element(name string) *Selector {
	return New().Element(name)
}

// ID starts a new selector with an id name.
func ID(name string) *Selector {
	return New().ID(name)
}

// Class starts a new selector with a class name.
func Class(name string) *Selector {
	return New().Class(name)
}

// Attribute starts a new selector with an attribute expression.
func Attribute(expr string) *Selector {
	return New().Attribute(expr)
}

// PseudoClass starts a new selector with a pseudo-class name.
func PseudoClass(name string) *Selector {
	return New().PseudoClass(name)
}

// PseudoElement starts a new selector with a pseudo-element name.
func PseudoElement(name string) *Selector {
	return New().PseudoElement(name)
}

// Combine starts a new selector joining left and right with a combinator.
func Combine(left *Selector, combinator string, right *Selector) *Selector {
	return New().Combine(left, combinator, right)
}
