package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{12.5, "USD", "$12.50"},
		{1234.5, "USD", "$1,234.50"},
		{0, "USD", "$0.00"},
		{-45.25, "USD", "-$45.25"},
		{1250, "EUR", "€1,250.00"},
		{1250, "JPY", "¥1,250"},
		{999999.99, "GBP", "£999,999.99"},
		{1250, "XYZ", "XYZ 1,250.00"},
		{12.5, "usd", "$12.50"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.amount, c.code); got != c.want {
			t.Fatalf("FormatMoney(%v, %q) = %q, want %q", c.amount, c.code, got, c.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(12.5, "USD"); got != "$12.50/h" {
		t.Fatalf("FormatRate = %q, want $12.50/h", got)
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10h"},
		{2.5, "2.5h"},
		{0, "0h"},
	}
	for _, c := range cases {
		if got := FormatHours(c.in); got != c.want {
			t.Fatalf("FormatHours(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Logo redesign", 8); got != "Logo re…" {
		t.Fatalf("Truncate = %q, want %q", got, "Logo re…")
	}
	if got := Truncate("short", 8); got != "short" {
		t.Fatalf("Truncate = %q, want unchanged", got)
	}
}
