package message

import (
	"errors"
	"testing"
)

func TestParseLevel_CaseInsensitive(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"error", Error},
		{"Error", Error},
		{"ERROR", Error},
		{" warning ", Warning},
		{"sTaTuS", Status},
		{"verbose", Verbose},
		{"DEBUG", Debug},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	for _, name := range []string{"", "info", "warn", "errors"} {
		_, err := ParseLevel(name)
		var invalid *InvalidLevelError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParseLevel(%q) error = %v, want *InvalidLevelError", name, err)
		}
	}
}

func TestLevels_Ordered(t *testing.T) {
	levels := Levels()
	want := []string{"Error", "Warning", "Status", "Verbose", "Debug"}
	if len(levels) != len(want) {
		t.Fatalf("Levels() returned %d levels, want %d", len(levels), len(want))
	}
	for i, l := range levels {
		if l.Ordinal() != i {
			t.Fatalf("%v.Ordinal() = %d, want %d", l, l.Ordinal(), i)
		}
		if l.String() != want[i] {
			t.Fatalf("Levels()[%d] = %q, want %q", i, l.String(), want[i])
		}
		if i > 0 && !(levels[i-1] < l) {
			t.Fatalf("%v should sort before %v", levels[i-1], l)
		}
		parsed, err := ParseLevel(l.String())
		if err != nil || parsed != l {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", l.String(), parsed, err, l)
		}
	}
}

func TestLevel_IncludesIsDownwardInclusive(t *testing.T) {
	if !Warning.Includes(Error) || !Warning.Includes(Warning) {
		t.Fatalf("Warning filter should include Error and Warning")
	}
	if Warning.Includes(Status) || Warning.Includes(Debug) {
		t.Fatalf("Warning filter should exclude Status and Debug")
	}
	for _, l := range Levels() {
		if !Debug.Includes(l) {
			t.Fatalf("Debug filter should include %v", l)
		}
	}
}

func TestLevel_NextWraps(t *testing.T) {
	if got := Debug.Next(); got != Error {
		t.Fatalf("Debug.Next() = %v, want Error", got)
	}
	if got := Status.Next(); got != Verbose {
		t.Fatalf("Status.Next() = %v, want Verbose", got)
	}
	if got := Level(42).String(); got != "Level(42)" {
		t.Fatalf("Level(42).String() = %q, want Level(42)", got)
	}
}

func TestParseLevelFormat(t *testing.T) {
	cases := []struct {
		in   string
		want LevelFormat
	}{
		{"short", FormatShort},
		{"Long", FormatLong},
		{"", FormatNone},
		{"none", FormatNone},
		{"FALSE", FormatNone},
		{"off", FormatNone},
	}
	for _, tc := range cases {
		got, err := ParseLevelFormat(tc.in)
		if err != nil {
			t.Fatalf("ParseLevelFormat(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevelFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseLevelFormat("medium"); err == nil {
		t.Fatalf("ParseLevelFormat(medium) returned nil error")
	}
}

func TestLevelFormat_NextCycles(t *testing.T) {
	f := FormatLong
	seen := []string{}
	for i := 0; i < 3; i++ {
		f = f.Next()
		seen = append(seen, f.String())
	}
	if seen[0] != "short" || seen[1] != "none" || seen[2] != "long" {
		t.Fatalf("cycle = %v, want [short none long]", seen)
	}
}
