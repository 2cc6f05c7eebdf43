// Package clean repairs extraction gaps in quarterly series before they are
// published. Missing or implausibly small values are replaced by
// interpolating between their valid neighbours.
package clean

import (
	"cse_insight/pkg/core/report"
)

// outlierDivisor scales the series mean to form the plausibility floor.
// Values below mean/1000 are treated as extraction artifacts, not data.
const outlierDivisor = 1000.0

// Clean returns a copy of s in which every primary metric has been repaired
// company by company. Records must carry table dates; Clean sorts before
// repairing so interpolation runs in period order.
func Clean(s report.Series) report.Series {
	out := make(report.Series, 0, len(s))
	for _, company := range report.Companies {
		sub := s.ForCompany(company)
		sub.Sort()
		cleaned := make(report.Series, len(sub))
		for i := range sub {
			cleaned[i] = copyRecord(sub[i])
		}
		for _, metric := range report.PrimaryMetrics {
			repairMetric(cleaned, metric)
		}
		out = append(out, cleaned...)
	}
	return out
}

func copyRecord(rec report.FinancialRecord) report.FinancialRecord {
	dup := rec
	dup.Metrics = make(map[string]float64, len(rec.Metrics))
	for k, v := range rec.Metrics {
		dup.Metrics[k] = v
	}
	return dup
}

func repairMetric(recs report.Series, metric string) {
	vals := make([]float64, len(recs))
	for i := range recs {
		vals[i] = recs[i].OutputValue(metric)
	}
	repaired := RepairSeries(vals)
	for i := range recs {
		recs[i].Metrics[metric] = repaired[i]
	}
}

// RepairSeries fixes unacceptable points in a chronological value series.
// Interior runs of bad points are linearly interpolated between the valid
// values on either side; runs touching an edge take the nearest valid value.
// A series with no valid point at all is returned unchanged.
func RepairSeries(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)

	floor := positiveMean(vals) / outlierDivisor
	valid := make([]bool, len(vals))
	anyValid := false
	for i, v := range vals {
		valid[i] = v > 0 && v >= floor
		anyValid = anyValid || valid[i]
	}
	if !anyValid {
		return out
	}

	for i := 0; i < len(out); {
		if valid[i] {
			i++
			continue
		}
		j := i
		for j < len(out) && !valid[j] {
			j++
		}
		fillRun(out, valid, i, j)
		i = j
	}
	return out
}

// fillRun repairs the bad run out[start:end). start-1 and end are the
// surrounding valid indices when they exist.
func fillRun(out []float64, valid []bool, start, end int) {
	switch {
	case start == 0 && end == len(out):
		return
	case start == 0:
		for i := start; i < end; i++ {
			out[i] = out[end]
		}
	case end == len(out):
		for i := start; i < end; i++ {
			out[i] = out[start-1]
		}
	default:
		lo, hi := out[start-1], out[end]
		span := float64(end - (start - 1))
		for i := start; i < end; i++ {
			out[i] = lo + (hi-lo)*float64(i-(start-1))/span
		}
	}
	for i := start; i < end; i++ {
		valid[i] = true
	}
}

func positiveMean(vals []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
