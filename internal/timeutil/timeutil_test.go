package timeutil

import "testing"

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"08:00", 480, true},
		{"8:05", 485, true},
		{"17:30:15", 1050, true},
		{"  09:15  ", 555, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"", 0, false},
		{"-", 0, false},
		{"8.5", 0, false},
		{"08:60", 0, false},
		{"25:00", 0, false},
		{"8:00 AM", 0, false},
		{"absent", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := ParseClock(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseClock(%q) ok=%v, expected %v", tc.input, ok, tc.ok)
		}
		if ok && minutes != tc.minutes {
			t.Fatalf("ParseClock(%q)=%d, expected %d", tc.input, minutes, tc.minutes)
		}
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	if got := FormatClock(485); got != "08:05" {
		t.Fatalf("expected 08:05, got %q", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %q", got)
	}
	if got := FormatClock(-10); got != "00:00" {
		t.Fatalf("expected negative input clamped to 00:00, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2026-08-03", "2026-08-03", true},
		{"03/08/2026", "2026-08-03", true},
		{"03-08-2026", "2026-08-03", true},
		{"3/8/2026", "2026-08-03", true},
		{"", "", false},
		{"yesterday", "", false},
		{"2026/08/03", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseDate(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseDate(%q) ok=%v, expected %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseDate(%q)=%q, expected %q", tc.input, got, tc.want)
		}
	}
}
