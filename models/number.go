package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by Number.UnmarshalJSON when the value is
// neither a JSON number nor a string holding one. Callers should match it
// with errors.Is and translate it to a validation failure.
var ErrNotANumber = errors.New("value is not a number")

// Number is a float64 that unmarshals from either a JSON number or a string
// containing one ("250" and 250 are equivalent on the wire). Existing
// clients send numeric fields in both forms, so the coercion lives in the
// type instead of in every handler. Non-numeric input is rejected with
// ErrNotANumber rather than silently stored as a sentinel.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%w: %s", ErrNotANumber, s)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrNotANumber, str)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrNotANumber, s)
	}
	*n = Number(f)
	return nil
}

// Float64 returns the underlying float64 value.
func (n Number) Float64() float64 {
	return float64(n)
}
