package importer

import "testing"

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"500", 500, true},
		{" 1,250 ", 1250, true},
		{"฿3,900,000", 3900000, true},
		{"$450.00", 450, true},
		{"450.000", 450, true},
		{"0", 0, true},
		{"450.50", 0, false},
		{"-500", 0, false},
		{"", 0, false},
		{"  ", 0, false},
		{"abc", 0, false},
		{".00", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseAmount(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseAmount(%q) = (%d, %t), want (%d, %t)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLabelValue_SingleCellConvention(t *testing.T) {
	t.Parallel()

	value, ok := labelValue([]string{"", "ID: 021", "x"}, "ID")
	if !ok || value != "021" {
		t.Fatalf("expected (021, true), got (%q, %t)", value, ok)
	}
}

func TestLabelValue_SplitCellConvention(t *testing.T) {
	t.Parallel()

	value, ok := labelValue([]string{"Daily Salary:", "", "500"}, "Daily Salary")
	if !ok || value != "500" {
		t.Fatalf("expected (500, true), got (%q, %t)", value, ok)
	}
}

func TestLabelValue_LabelWithoutColon(t *testing.T) {
	t.Parallel()

	value, ok := labelValue([]string{"Name", "Somchai"}, "Name")
	if !ok || value != "Somchai" {
		t.Fatalf("expected (Somchai, true), got (%q, %t)", value, ok)
	}
}

func TestLabelValue_MissingLabel(t *testing.T) {
	t.Parallel()

	if _, ok := labelValue([]string{"2026-08-01", "08:05", "17:30"}, "ID"); ok {
		t.Fatalf("expected no match on a punch row")
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Daily Salary": "dailysalary",
		" Check_In ":   "checkin",
		"check-out":    "checkout",
		"ID":           "id",
	}
	for input, want := range cases {
		if got := normalizeHeader(input); got != want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", input, got, want)
		}
	}
}
