package jsonutil_test

import (
	"testing"

	"cssb/jsonutil"
	"cssb/shapes"
)

func TestToJSONText(t *testing.T) {
	got, err := jsonutil.ToJSONText(shapes.NewRectangle(20, 10))
	if err != nil {
		t.Fatalf("ToJSONText() error = %v", err)
	}
	if got != `{"width":20,"height":10}` {
		t.Errorf("ToJSONText() = %q", got)
	}
}

func TestFromJSONText_RoundTrip(t *testing.T) {
	text, err := jsonutil.ToJSONText(map[string]any{"height": 10, "width": 20})
	if err != nil {
		t.Fatalf("ToJSONText() error = %v", err)
	}

	proto := jsonutil.ProtoFunc(func(key string) (any, bool) {
		if key == "area" {
			return 200.0, true
		}
		return nil, false
	})

	obj, err := jsonutil.FromJSONText(proto, text)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}

	// own data survives the round trip
	if v, ok := obj.Lookup("height"); !ok || v.(float64) != 10 {
		t.Errorf("Lookup(height) = %v, %v", v, ok)
	}
	if v, ok := obj.Lookup("width"); !ok || v.(float64) != 20 {
		t.Errorf("Lookup(width) = %v, %v", v, ok)
	}

	// unknown keys delegate to the prototype
	if v, ok := obj.Lookup("area"); !ok || v.(float64) != 200.0 {
		t.Errorf("Lookup(area) = %v, %v, want prototype value", v, ok)
	}
	if _, ok := obj.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail for key unknown to object and prototype")
	}
}

func TestFromJSONText_NilPrototype(t *testing.T) {
	obj, err := jsonutil.FromJSONText(nil, `{"a":1}`)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}
	if _, ok := obj.Lookup("b"); ok {
		t.Error("Lookup(b) should fail without prototype")
	}
}

func TestFromJSONText_BadInput(t *testing.T) {
	if _, err := jsonutil.FromJSONText(nil, `not json`); err == nil {
		t.Error("FromJSONText() expected to fail on malformed input")
	}
}

func TestObject_SetShadowsPrototype(t *testing.T) {
	proto := jsonutil.ProtoFunc(func(key string) (any, bool) {
		return "proto", true
	})

	obj, err := jsonutil.FromJSONText(proto, `{}`)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}

	if v, _ := obj.Lookup("x"); v != "proto" {
		t.Errorf("Lookup(x) = %v, want prototype value", v)
	}

	obj.Set("x", "own")
	if v, _ := obj.Lookup("x"); v != "own" {
		t.Errorf("Lookup(x) after Set = %v, want own value", v)
	}
}

func TestObject_MarshalOwnDataOnly(t *testing.T) {
	proto := jsonutil.ProtoFunc(func(key string) (any, bool) {
		return "proto", true
	})

	obj, err := jsonutil.FromJSONText(proto, `{"a":1}`)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}

	text, err := jsonutil.ToJSONText(obj)
	if err != nil {
		t.Fatalf("ToJSONText() error = %v", err)
	}
	if text != `{"a":1}` {
		t.Errorf("ToJSONText() = %q, prototype must not serialize", text)
	}
}

// An object can delegate to another object, chaining lookups.
func TestObject_ChainedDelegation(t *testing.T) {
	base, err := jsonutil.FromJSONText(nil, `{"kind":"base"}`)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}
	child, err := jsonutil.FromJSONText(base, `{"name":"child"}`)
	if err != nil {
		t.Fatalf("FromJSONText() error = %v", err)
	}

	if v, ok := child.Lookup("kind"); !ok || v != "base" {
		t.Errorf("Lookup(kind) = %v, %v, want delegation to base object", v, ok)
	}
}
