// SPDX-License-Identifier: MPL-2.0

package jsmodule

type (
	// Value is a node of an object literal tree.
	Value interface {
		isValue()
	}

	// Object is an ordered set of key/value pairs.
	Object struct {
		Fields []Field
	}

	// Field is a single key/value pair of an Object.
	Field struct {
		Key   string
		Value Value
	}

	// Array is an ordered list of values.
	Array struct {
		Elems []Value
	}

	// String is a string literal holding its unescaped content.
	String string

	// Literal is a bare token such as a number, true, false or null.
	Literal string
)

func (*Object) isValue() {}
func (*Array) isValue()  {}
func (String) isValue()  {}
func (Literal) isValue() {}

// NewObject builds an Object holding fields in the given order.
func NewObject(fields ...Field) *Object {
	return &Object{Fields: fields}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetString returns the value stored under key when it is a string.
func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// Set replaces the value under key in place, or appends a new field.
func (o *Object) Set(key string, v Value) {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			o.Fields[i].Value = v
			return
		}
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: v})
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	fields := make([]Field, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = Field{Key: f.Key, Value: cloneValue(f.Value)}
	}
	return &Object{Fields: fields}
}

func cloneValue(v Value) Value {
	switch typed := v.(type) {
	case *Object:
		return typed.Clone()
	case *Array:
		elems := make([]Value, len(typed.Elems))
		for i, e := range typed.Elems {
			elems[i] = cloneValue(e)
		}
		return &Array{Elems: elems}
	default:
		return v
	}
}
