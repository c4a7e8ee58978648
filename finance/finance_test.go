package finance

import "testing"

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"Labor", "Material", "Other"} {
		category, err := ParseCategory(valid)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", valid, err)
		}
		if string(category) != valid {
			t.Fatalf("ParseCategory(%q) = %q", valid, category)
		}
	}

	for _, invalid := range []string{"labor", "Wages", ""} {
		if _, err := ParseCategory(invalid); err == nil {
			t.Fatalf("ParseCategory(%q) should fail", invalid)
		}
	}
}

func TestPunchClock(t *testing.T) {
	t.Parallel()

	if got := PunchAt(8*60 + 5).Clock(); got != "08:05" {
		t.Fatalf("expected 08:05, got %q", got)
	}
	if got := (Punch{}).Clock(); got != "" {
		t.Fatalf("missing punch must render blank, got %q", got)
	}
}
