package amount

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"$1,234.56", "1234.56", true},
		{"1234.56", "1234.56", true},
		{"-1,234.56", "-1234.56", true},
		{"-$1,234.56", "-1234.56", true},
		{"  $ 100 ", "100", true},
		{"$12,207,474,172.00", "12207474172", true},
		{"100", "100", true},
		{"-100", "-100", true},
		{"", "0", true},
		{"NaN", "0", true},
		{"N/A", "0", true},
		{"abc", "0", false},
		{"1.2.3", "0", false},
		{"$", "0", false},
		{"inf", "0", false},
		{"1e200000", "0", false},
		{"1e99999999", "0", false},
		{"-9e308", "0", false},
		{"1e-400", "0", false},
		{"1e307", "1e307", true},
		{"$1.5e3", "1500", true},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%q expected ParseError, got %v", tc.in, err)
		}
		if perr.Value != tc.in {
			t.Fatalf("%q expected error to carry original value, got %q", tc.in, perr.Value)
		}
	}
}

func TestParseOutOfRangeIsNotANumber(t *testing.T) {
	_, err := Parse("1e99999999")
	if !errors.Is(err, errOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestCleanerCoercesAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := NewCleaner(zap.New(core))

	got := c.Clean("abc", zap.String("file", "a.csv"))
	if !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
	if c.Warnings() != 1 {
		t.Fatalf("expected 1 warning, got %d", c.Warnings())
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["value"] != "abc" {
		t.Fatalf("expected offending value in log, got %v", fields["value"])
	}
	if fields["file"] != "a.csv" {
		t.Fatalf("expected file field in log, got %v", fields["file"])
	}
}

func TestCleanerValidValuesDoNotWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := NewCleaner(zap.New(core))

	for in, want := range map[string]string{
		"$1,234.56": "1234.56",
		"1234.56":   "1234.56",
		"-1,234.56": "-1234.56",
		"":          "0",
		"nan":       "0",
	} {
		got := c.Clean(in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("%q expected %s, got %s", in, want, got)
		}
	}
	if logs.Len() != 0 || c.Warnings() != 0 {
		t.Fatalf("expected no warnings, got %d", logs.Len())
	}
}

func TestNewCleanerNilLogger(t *testing.T) {
	c := NewCleaner(nil)
	if got := c.Clean("oops"); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
}
