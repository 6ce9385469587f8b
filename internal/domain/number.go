package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Number is an integer field of the snapshot. The export is not strict about
// numeric types, so Number accepts integers, fractional numbers (truncated),
// numeric strings and null (zero).
type Number int

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*n = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNumber, err)
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	if i, err := strconv.ParseInt(raw, 10, strconv.IntSize); err == nil {
		*n = Number(i)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	f = math.Trunc(f)
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive
	if f < math.MinInt || f >= -float64(math.MinInt) {
		return fmt.Errorf("%w: %q out of range", ErrInvalidNumber, raw)
	}
	*n = Number(f)
	return nil
}

// Int returns the value as an int
func (n Number) Int() int {
	return int(n)
}

func (n Number) String() string {
	return strconv.Itoa(int(n))
}

// Text is a descriptive field that the export writes either as a string or a number.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: expected string or number, got %s", ErrInvalidText, data)
	}
	*t = Text(num.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}
