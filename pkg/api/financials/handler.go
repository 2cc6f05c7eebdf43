// Package financials serves the cleaned quarterly dataset over HTTP.
package financials

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cse_insight/pkg/core/report"
)

var dataset report.Series

// InitHandler installs the dataset served by this package's handlers.
func InitHandler(recs report.Series) {
	dataset = recs
}

// MetricPoint is one (company, quarter, metric) observation.
type MetricPoint struct {
	Company string  `json:"company"`
	Quarter string  `json:"quarter"`
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
}

// CompanyInfo summarises the coverage for one company.
type CompanyInfo struct {
	Company  string `json:"company"`
	Quarters int    `json:"quarters"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

// HandleFinancials serves GET /api/financials with optional company, metric,
// from and to filters. Dates are ISO (2006-01-02) and inclusive.
func HandleFinancials(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()

	var company report.Company
	if name := q.Get("company"); name != "" {
		var err error
		company, err = report.ParseCompany(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	metrics := report.PrimaryMetrics
	if metric := q.Get("metric"); metric != "" {
		if !knownMetric(metric) {
			http.Error(w, fmt.Sprintf("unknown metric: %s", metric), http.StatusBadRequest)
			return
		}
		metrics = []string{metric}
	}

	from, err := parseDateParam(q.Get("from"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDateParam(q.Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points := []MetricPoint{}
	for _, rec := range dataset {
		if company != "" && rec.Company != company {
			continue
		}
		if rec.TableDate.IsZero() {
			continue
		}
		if !from.IsZero() && rec.TableDate.Before(from) {
			continue
		}
		if !to.IsZero() && rec.TableDate.After(to) {
			continue
		}
		for _, metric := range metrics {
			points = append(points, MetricPoint{
				Company: string(rec.Company),
				Quarter: rec.TableDate.Format("2006-01-02"),
				Metric:  metric,
				Value:   rec.Value(metric),
			})
		}
	}

	writeJSON(w, points)
}

// HandleCompanies serves GET /api/companies.
func HandleCompanies(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	infos := []CompanyInfo{}
	for _, company := range report.Companies {
		sub := dataset.ForCompany(company)
		info := CompanyInfo{Company: string(company), Quarters: len(sub)}
		var first, last time.Time
		for _, rec := range sub {
			if rec.TableDate.IsZero() {
				continue
			}
			if first.IsZero() || rec.TableDate.Before(first) {
				first = rec.TableDate
			}
			if rec.TableDate.After(last) {
				last = rec.TableDate
			}
		}
		if !first.IsZero() {
			info.From = first.Format("2006-01-02")
			info.To = last.Format("2006-01-02")
		}
		infos = append(infos, info)
	}

	writeJSON(w, infos)
}

func knownMetric(metric string) bool {
	for _, m := range report.MetricColumns {
		if m == metric {
			return true
		}
	}
	return false
}

func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[FINANCIALS] Failed to encode response: %v\n", err)
	}
}
