package validate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.50", 12.50, true},
		{"0", 0, true},
		{"3", 3, true},
		{" 7.1 ", 7.1, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.505", 0, false},
		{"-4", 0, false},
		{"1,50", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"+Inf", 0, false},
		{"infinity", 0, false},
		{"1e99", 0, false},
		{"0x1p4", 0, false},
	}
	for _, c := range cases {
		got, ok := Price(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Price(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestStock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"150", 150, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"-1", 0, false},
		{"12.5", 0, false},
		{"beaucoup", 0, false},
	}
	for _, c := range cases {
		got, ok := Stock(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Stock(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestHHMM(t *testing.T) {
	good := []string{"", "00:00", "08:30", "23:59", "12:00"}
	for _, s := range good {
		if _, ok := HHMM(s); !ok {
			t.Errorf("HHMM(%q) rejected", s)
		}
	}
	bad := []string{"24:00", "8:30", "12:60", "noon", "12h30"}
	for _, s := range bad {
		if _, ok := HHMM(s); ok {
			t.Errorf("HHMM(%q) accepted", s)
		}
	}
}

func TestQLeavesArabicIntact(t *testing.T) {
	if got := Q("  باراسيتامول "); got != "باراسيتامول" {
		t.Errorf("Q mangled Arabic input: %q", got)
	}
}

func TestQTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ص", 60) // 120 bytes of two-byte runes
	got := Q(long)
	if len(got) > 80 {
		t.Errorf("Q did not cap length: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("Q split a rune: %q", got)
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Error("known-good password rejected")
	}
	for _, s := range []string{"short1!", "alllowercase1!", "NOUPPER никак", "NoNumber!!", "NoSymbol99"} {
		if Password(s) {
			t.Errorf("Password(%q) accepted", s)
		}
	}
}

func TestCoord(t *testing.T) {
	if _, ok := Coord("36.8065", 90); !ok {
		t.Error("valid latitude rejected")
	}
	if _, ok := Coord("95", 90); ok {
		t.Error("out-of-range latitude accepted")
	}
	if _, ok := Coord("", 180); ok {
		t.Error("empty coordinate accepted")
	}
}
