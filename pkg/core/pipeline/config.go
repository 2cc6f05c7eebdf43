package pipeline

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"cse_insight/pkg/core/report"
)

// Config controls a pipeline run. All paths are relative to the working
// directory unless absolute.
type Config struct {
	PDFRoot     string   `yaml:"pdf_root"`     // directory with one subdirectory of PDFs per company
	OutputFile  string   `yaml:"output_file"`  // raw extraction CSV
	CleanedFile string   `yaml:"cleaned_file"` // repaired dataset CSV
	Companies   []string `yaml:"companies"`    // tickers to process; empty means all known
	SaveToDB    bool     `yaml:"save_to_db"`   // mirror cleaned records into Postgres
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		PDFRoot:     "reports",
		OutputFile:  "quarterly_financials.csv",
		CleanedFile: "quarterly_financials_cleaned.csv",
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// CompanyList resolves the configured tickers to known companies, rejecting
// unknown ones up front so a typo fails before any PDF work starts.
func (c *Config) CompanyList() ([]report.Company, error) {
	if len(c.Companies) == 0 {
		return report.Companies, nil
	}
	companies := make([]report.Company, 0, len(c.Companies))
	for _, name := range c.Companies {
		company, err := report.ParseCompany(name)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, nil
}
