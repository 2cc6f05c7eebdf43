package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"cse_insight/pkg/core/report"
)

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte("pdf_root: /data/reports\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PDFRoot != "/data/reports" {
		t.Errorf("PDFRoot = %q", cfg.PDFRoot)
	}
	if cfg.OutputFile != "quarterly_financials.csv" {
		t.Errorf("OutputFile = %q, want default", cfg.OutputFile)
	}
	if cfg.CleanedFile != "quarterly_financials_cleaned.csv" {
		t.Errorf("CleanedFile = %q, want default", cfg.CleanedFile)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig(missing) = nil error")
	}
}

func TestCompanyList(t *testing.T) {
	cfg := &Config{}
	all, err := cfg.CompanyList()
	if err != nil || len(all) != len(report.Companies) {
		t.Errorf("empty config CompanyList = %v, %v; want all companies", all, err)
	}

	cfg = &Config{Companies: []string{"REXP"}}
	one, err := cfg.CompanyList()
	if err != nil || len(one) != 1 || one[0] != report.CompanyREXP {
		t.Errorf("CompanyList = %v, %v; want [REXP]", one, err)
	}

	cfg = &Config{Companies: []string{"DIPD", "XXXX"}}
	if _, err := cfg.CompanyList(); err == nil {
		t.Error("CompanyList with unknown ticker = nil error")
	}
}
