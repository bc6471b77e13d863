package validation

import (
	"math"
	"testing"
)

type form struct {
	Placa string `validate:"required"`
	Valor string `validate:"required"`
	Tipo  string
}

func TestValidateRequired(t *testing.T) {
	if err := Validate(form{Placa: "ABC1234", Valor: "50"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	err := Validate(form{Placa: "", Valor: ""})
	if err == nil {
		t.Fatalf("empty form accepted")
	}
	fields := MissingFields(err)
	if len(fields) != 2 || fields[0] != "placa" || fields[1] != "valor" {
		t.Fatalf("MissingFields() = %v", fields)
	}
}

func TestUpperTrim(t *testing.T) {
	if got := UpperTrim("  abc1d23 "); got != "ABC1D23" {
		t.Fatalf("UpperTrim() = %q", got)
	}
	if got := Upper("straße"); got != "STRASSE" {
		t.Fatalf("Upper() = %q, want full case mapping", got)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{float64(0), false},
		{"", false},
		{false, false},
		{float64(10), true},
		{"0", true},
		{true, true},
	}
	for _, c := range cases {
		if got := Truthy(c.in); got != c.want {
			t.Errorf("Truthy(%#v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToNumberAndFormat(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{float64(10), "10.00"},
		{"50", "50.00"},
		{" 7.5 ", "7.50"},
		{"1e2", "100.00"},
		{true, "1.00"},
		{"abc", "NaN"},
		{"inf", "NaN"},
		{"Infinity", "Infinity"},
		{0.125, "0.13"},
		{10.625, "10.63"},
		{"10.125", "10.13"},
		{-0.125, "-0.13"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{-0.001, "-0.00"},
		{math.Copysign(0, -1), "0.00"},
		{1e21, "1e+21"},
		{"0x10", "16.00"},
		{"0X1f", "31.00"},
		{"0o17", "15.00"},
		{"0b101", "5.00"},
		{"0x", "NaN"},
		{"-0x10", "NaN"},
		{"0x1_0", "NaN"},
		{"0b2", "NaN"},
	}
	for _, c := range cases {
		if got := FormatFixed2(ToNumber(c.in)); got != c.want {
			t.Errorf("FormatFixed2(ToNumber(%#v)) = %q, want %q", c.in, got, c.want)
		}
	}
	if !math.IsNaN(ToNumber(map[string]any{})) {
		t.Errorf("objects should convert to NaN")
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(0); got != "0" {
		t.Errorf("FormatTimestamp(0) = %q", got)
	}
	if got := FormatTimestamp(1700000000.25); got != "1700000000.25" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}

func TestToString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{float64(5), "5"},
		{1.5, "1.5"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{"Placa inválida", "Placa inválida"},
		{[]any{"a", float64(1), nil}, "a,1,"},
		{map[string]any{"campo": "placa"}, "[object Object]"},
	}
	for _, c := range cases {
		if got := ToString(c.in); got != c.want {
			t.Errorf("ToString(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}
