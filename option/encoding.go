package option

import "encoding/json"

// Options marshal as the contained value when present and as null when
// absent, for both JSON and YAML.
//
// Decoding runs the other way through the nullable bridge: unmarshal into a
// pointer-typed field, then convert with FromPointer.

func (o some[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.value)
}

func (o some[T]) MarshalYAML() (interface{}, error) {
	return o.value, nil
}

func (o none[T]) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (o none[T]) MarshalYAML() (interface{}, error) {
	return nil, nil
}

func (o *deferred[T]) MarshalJSON() ([]byte, error) {
	return o.resolve().(json.Marshaler).MarshalJSON()
}

func (o *deferred[T]) MarshalYAML() (interface{}, error) {
	return o.resolve().(interface {
		MarshalYAML() (interface{}, error)
	}).MarshalYAML()
}
