package dto

import (
	"bytes"
	"encoding/json"
)

// Optional campo de un cuerpo JSON con tres estados: ausente, null explícito o valor.
type Optional[T any] struct {
	Set   bool // la clave vino en el JSON
	Null  bool // la clave vino con null
	Value T
}

// UnmarshalJSON solo se invoca cuando la clave está presente.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON serializa null si está ausente o es null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr devuelve nil si el campo está ausente o es null; si no, un puntero al valor.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Some construye un Optional con valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}
