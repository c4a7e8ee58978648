package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigPath_FlagWins(t *testing.T) {
	path, err := resolveConfigPath("./custom.yaml", "/home/user/.sitepay.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "./custom.yaml" {
		t.Fatalf("expected flag value, got %q", path)
	}
}

func TestResolveConfigPath_FallsBackToLoadedFile(t *testing.T) {
	path, err := resolveConfigPath("", "/home/user/.sitepay.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/home/user/.sitepay.yaml" {
		t.Fatalf("expected loaded config path, got %q", path)
	}
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".sitepay.yaml")

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if !created {
		t.Fatalf("expected the file to be created")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created config: %v", err)
	}
	if !strings.Contains(string(content), "payroll:") {
		t.Fatalf("template must carry the payroll section, got:\n%s", content)
	}

	created, err = ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if created {
		t.Fatalf("existing file must not be overwritten")
	}
}

func TestDetectExportFormat(t *testing.T) {
	cases := map[string]string{
		"./facts.csv":   "csv",
		"./facts.xlsx":  "excel",
		"./facts.XLSM":  "excel",
		"./facts.other": "csv",
	}
	for path, want := range cases {
		if got := detectExportFormat(path); got != want {
			t.Errorf("detectExportFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
