package currency

import (
	"testing"
)

func TestIsValid(t *testing.T) {
	valid := []string{"USD", "usd", " eur ", "Gbp", "JPY", "INR", "ZAR"}
	invalid := []string{"", "US", "DOLLAR", "IDR", "BTC", "123"}
	for _, code := range valid {
		if !IsValid(code) {
			t.Errorf("IsValid(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValid(code) {
			t.Errorf("IsValid(%q) = true, want false", code)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"usd", "USD"},
		{" eur ", "EUR"},
		{"GBP", "GBP"},
	}
	for _, c := range cases {
		if got := Normalize(c.input); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCodes_ReturnsCopy(t *testing.T) {
	codes := Codes()
	if len(codes) != 19 {
		t.Fatalf("Codes() length = %d, want 19", len(codes))
	}
	codes[0] = "XXX"
	if !IsValid("USD") {
		t.Error("mutating Codes() result must not affect the allow-list")
	}
}
