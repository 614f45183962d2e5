package frpadmin

import "encoding/json"

// Decoder turns a raw response body into a value of the requested type.
type Decoder[T any] func(data []byte) (T, error)

func JSONDecoder[T any]() Decoder[T] {
	return func(data []byte) (T, error) {
		var val T
		if err := json.Unmarshal(data, &val); err != nil {
			var zero T
			return zero, err
		}
		return val, nil
	}
}

// TextDecoder passes the body through verbatim.
func TextDecoder[T ~string]() Decoder[T] {
	return func(data []byte) (T, error) {
		return T(data), nil
	}
}

// decoderFor picks the text decoder for string results and JSON for the rest.
func decoderFor[T any]() Decoder[T] {

	var zero T

	if _, ok := any(zero).(string); ok {
		return func(data []byte) (T, error) {
			return any(string(data)).(T), nil
		}
	}

	return JSONDecoder[T]()
}
