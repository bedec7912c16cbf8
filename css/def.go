package css

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// Def is a declarative description of a selector, decodable from YAML.
// Exactly one construction mode applies: either Combine is set and all part
// fields are left empty, or the part fields are replayed in category order.
// Empty part fields are skipped, so a Def cannot express an empty part
// name - use the chaining API for such corner cases.
type Def struct {
	Element       string      `yaml:"element,omitempty"`
	ID            string      `yaml:"id,omitempty"`
	Classes       []string    `yaml:"classes,omitempty"`
	Attribute     string      `yaml:"attribute,omitempty"`
	PseudoClasses []string    `yaml:"pseudo_classes,omitempty"`
	PseudoElement string      `yaml:"pseudo_element,omitempty"`
	Combine       *CombineDef `yaml:"combine,omitempty"`
}

// CombineDef describes a combined selector. Left and Right are full
// definitions, so combinations nest.
type CombineDef struct {
	Left       Def    `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      Def    `yaml:"right"`
}

// hasParts reports whether any simple part field is set.
func (d Def) hasParts() bool {
	return d.Element != "" || d.ID != "" || len(d.Classes) > 0 ||
		d.Attribute != "" || len(d.PseudoClasses) > 0 || d.PseudoElement != ""
}

// Build constructs a selector from the definition.
func (d Def) Build() (*Selector, error) {
	if d.Combine != nil {
		if d.hasParts() {
			return nil, errors.New("selector parts cannot be mixed with a combine definition")
		}
		left, err := d.Combine.Left.Build()
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := d.Combine.Right.Build()
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		sel := Combine(left, d.Combine.Combinator, right)
		return sel, sel.Err()
	}

	if !d.hasParts() {
		return nil, errors.New("empty selector definition")
	}

	sel := New()
	if d.Element != "" {
		sel.Element(d.Element)
	}
	if d.ID != "" {
		sel.ID(d.ID)
	}
	for _, name := range d.Classes {
		sel.Class(name)
	}
	if d.Attribute != "" {
		sel.Attribute(d.Attribute)
	}
	for _, name := range d.PseudoClasses {
		sel.PseudoClass(name)
	}
	if d.PseudoElement != "" {
		sel.PseudoElement(d.PseudoElement)
	}
	return sel, sel.Err()
}

// Document is a set of selector definitions, normally loaded from a YAML
// file by the render subcommand.
type Document struct {
	Selectors []Def `yaml:"selectors"`
}

// ParseDocument decodes a selector document. Unknown fields are rejected so
// typos in hand-written documents do not pass silently.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector document: %w", err)
	}
	return doc, nil
}

// RenderAll builds and renders every definition. Failures do not stop
// processing: good selectors are returned in order and all errors are
// aggregated into one.
func RenderAll(log *zap.Logger, defs []Def) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		out  []string
		errs error
	)
	for i, d := range defs {
		sel, err := d.Build()
		if err != nil {
			log.Warn("Skipping bad selector definition", zap.Int("index", i), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("selector %d: %w", i, err))
			continue
		}
		text, err := sel.Render()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %d: %w", i, err))
			continue
		}
		log.Debug("Rendered selector", zap.Int("index", i), zap.String("selector", text))
		out = append(out, text)
	}
	return out, errs
}
