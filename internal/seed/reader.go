package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrNoRecords = errors.New("fixture holds no record array")

// DecodeRecords streams the records of a fixture one at a time. It accepts a
// bare top-level array, or an object whose first array-valued property holds
// the records; other properties are skipped. Field names match
// case-insensitively. A record whose field types do not fit T is reported to
// onSkip, when set, and decoding carries on with the next record.
func DecodeRecords[T any](r io.Reader, fn func(T) error, onSkip func(error)) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case json.Delim('['):
		return decodeArray(dec, fn, onSkip)
	case json.Delim('{'):
		for dec.More() {
			// property name
			if _, err := dec.Token(); err != nil {
				return err
			}
			value, err := dec.Token()
			if err != nil {
				return err
			}
			if value == json.Delim('[') {
				return decodeArray(dec, fn, onSkip)
			}
			if err := skipValue(dec, value); err != nil {
				return err
			}
		}
		return ErrNoRecords
	default:
		return fmt.Errorf("%w: unexpected token %v", ErrNoRecords, tok)
	}
}

// skipValue consumes the rest of a value whose first token was already read.
func skipValue(dec *json.Decoder, first json.Token) error {
	if first != json.Delim('{') && first != json.Delim('[') {
		return nil
	}
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
	}
	return nil
}

func decodeArray[T any](dec *json.Decoder, fn func(T) error, onSkip func(error)) error {
	for dec.More() {
		var item T
		if err := dec.Decode(&item); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return err
			}
			// the decoder has consumed the whole value, so the array goes on
			if onSkip != nil {
				onSkip(err)
			}
			continue
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}
