package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumber marks a money field that did not parse as a number.
// Creation operations fail with it before any state is touched.
var ErrNotNumber = errors.New("not a number")

// errNoop signals inside a Mutate callback that the target record does not
// exist. Callers swallow it: missing-id deletes and toggles are benign.
var errNoop = errors.New("no matching record")

// parseMoney converts a user-supplied money string to a non-negative float.
func parseMoney(text string) (float64, error) {
	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrNotNumber)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", text, ErrNotNumber)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q must not be negative", text)
	}
	return v, nil
}
