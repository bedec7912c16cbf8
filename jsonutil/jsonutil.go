// Package jsonutil provides JSON round-trip helpers with prototype-style
// delegation.
//
// Go has no runtime prototype chains, so delegation is modeled explicitly:
// a decoded Object keeps its own key/value data and forwards lookups for
// unknown keys to an attached Prototype. Any type can serve as a prototype
// by implementing the single-method interface, and ProtoFunc adapts plain
// functions. Marshaling an Object emits only its own data - the prototype is
// a lookup target, never part of the serialized form.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Prototype is the delegation target for lookups an Object cannot satisfy
// from its own data.
type Prototype interface {
	Lookup(key string) (any, bool)
}

// ProtoFunc adapts a function to the Prototype interface.
type ProtoFunc func(key string) (any, bool)

// Lookup calls f.
func (f ProtoFunc) Lookup(key string) (any, bool) {
	return f(key)
}

// Object is a decoded JSON object with an optional prototype.
type Object struct {
	data  map[string]any
	proto Prototype
}

// Lookup returns the value for key from the object's own data, falling back
// to the prototype for unknown keys.
func (o *Object) Lookup(key string) (any, bool) {
	if v, ok := o.data[key]; ok {
		return v, true
	}
	if o.proto != nil {
		return o.proto.Lookup(key)
	}
	return nil, false
}

// Set stores an own key/value pair, shadowing any prototype value.
func (o *Object) Set(key string, value any) {
	if o.data == nil {
		o.data = make(map[string]any)
	}
	o.data[key] = value
}

// Data returns the object's own data. The map is shared with the object.
func (o *Object) Data() map[string]any {
	return o.data
}

// MarshalJSON emits only the object's own data.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.data)
}

// ToJSONText serializes a value using standard JSON encoding.
func ToJSONText(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal value: %w", err)
	}
	return string(data), nil
}

// FromJSONText parses text as a JSON object and attaches proto as the
// delegation target of the result. proto may be nil.
func FromJSONText(proto Prototype, text string) (*Object, error) {
	data := make(map[string]any)
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal object: %w", err)
	}
	return &Object{data: data, proto: proto}, nil
}
