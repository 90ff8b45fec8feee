// Package amount turns currency formatted text such as "$12,207,474,172.00"
// into exact decimal amounts.
//
// Parse is strict and reports unparseable input. Cleaner wraps Parse with
// the merge policy: a value that cannot be read is logged and counted as
// zero so a single bad cell never stops a run.
package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"example.com/stipends/models"
)

// ParseError is returned by Parse when the text left after stripping
// currency formatting is not a number.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not convert amount %q to a number: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errOutOfRange = errors.New("magnitude outside float64 range")

// Amounts must fit a float64 with its full digit range: at most 10^307 and
// no finer than 10^-308.
const (
	maxExponent = 307
	minExponent = -308
)

var stripper = strings.NewReplacer("$", "", ",", "")

// Parse converts raw amount text to a decimal.
//
// Missing values (empty text or a missing marker like "NaN") are zero.
// Every "$" and "," is removed and surrounding whitespace trimmed before
// parsing, so "$1,234.56", "1234.56" and " -1,234.56 " are all accepted.
// The result is always finite: values too large or too finely scaled for a
// float64 are rejected.
func Parse(raw string) (decimal.Decimal, error) {
	if models.IsMissing(raw) {
		return decimal.Zero, nil
	}

	s := strings.TrimSpace(stripper.Replace(raw))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Value: raw, Err: err}
	}
	if !inRange(d) {
		return decimal.Zero, &ParseError{Value: raw, Err: errOutOfRange}
	}

	return d, nil
}

// inRange checks the position of the leading digit and the scale without
// expanding the number.
func inRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return d.Exponent() >= minExponent
	}
	exp := int64(d.Exponent())
	return exp >= minExponent && int64(d.NumDigits())+exp-1 <= maxExponent
}

// Cleaner applies Parse to every amount of a run and logs the values it had
// to coerce.
type Cleaner struct {
	logger   *zap.Logger
	warnings int
}

func NewCleaner(logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{logger: logger}
}

// Clean always yields an amount. Unparseable input is logged with the
// original value and becomes zero.
func (c *Cleaner) Clean(raw string, fields ...zap.Field) models.Amount {
	d, err := Parse(raw)
	if err != nil {
		c.warnings++
		c.logger.Warn("could not convert amount, using 0.0",
			append([]zap.Field{zap.String("value", raw)}, fields...)...)
		return models.Amount{}
	}
	return models.NewAmount(d)
}

// Warnings returns how many values Clean has coerced to zero.
func (c *Cleaner) Warnings() int {
	return c.warnings
}
