// Package css builds CSS selector strings from typed parts.
//
// A Selector accumulates parts of a compound selector (element, id, classes,
// attribute expression, pseudo-classes, pseudo-element) through chainable
// calls and renders them in fixed category order with category punctuation:
//
//	css.Element("a").ID("main").Class("container").PseudoElement("before").String()
//	// "a#main.container::before"
//
// Two complex selectors are joined with Combine and one of the CSS
// combinators (space, "+", "~", ">"):
//
//	css.Combine(css.Element("div").ID("main"), "+", css.Element("table").ID("data")).String()
//	// "div#main + table#data"
//
// Construction is validated, rendering is not: element, id and pseudo-element
// may each be set only once (DuplicateError), and once a part category has
// been added no part of a lower-ranked category may follow (OrderError). The
// order gate compares against the category of the first part added to the
// selector. Part names, attribute expressions and combinators are taken
// verbatim - the package never checks them against the CSS grammar.
//
// Errors are sticky: after a failed call all further calls on the same
// Selector are no-ops and the failure surfaces from Render or Err.
//
// For declarative construction (configuration files, the render subcommand)
// see Def and ParseDocument.
package css
