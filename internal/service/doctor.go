package service

import (
	"github.com/saadjs/fitlife-cli/internal/store"
)

// DoctorSource is what the log doctor inspects.
type DoctorSource interface {
	Loader
	LoadFoods() store.FoodsResult
}

type StoreHealth struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Records int    `json:"records"`
	Skipped int    `json:"skipped_lines"`
	Missing bool   `json:"missing"`
	Error   string `json:"error,omitempty"`
}

// Issue reports whether the store has lines that will never be read back.
func (h StoreHealth) Issue() bool {
	return h.Skipped > 0 || h.Error != ""
}

type DoctorReport struct {
	Stores []StoreHealth `json:"stores"`
}

func (r DoctorReport) Healthy() bool {
	for _, s := range r.Stores {
		if s.Issue() {
			return false
		}
	}
	return true
}

// RunDoctor loads every store once and reports per-file counts. A missing
// store is not an issue.
func RunDoctor(src DoctorSource) DoctorReport {
	_, results := LoadRecordsDetailed(src)
	var report DoctorReport
	for _, res := range results {
		h := StoreHealth{
			Name:    string(res.Kind),
			Path:    res.Path,
			Records: len(res.Records),
			Skipped: res.Skipped,
			Missing: res.Missing,
		}
		if res.Err != nil {
			h.Error = res.Err.Error()
		}
		report.Stores = append(report.Stores, h)
	}

	foods := src.LoadFoods()
	h := StoreHealth{
		Name:    "foods",
		Path:    foods.Path,
		Records: len(foods.Rates),
		Skipped: foods.Skipped,
		Missing: foods.Missing,
	}
	if foods.Err != nil {
		h.Error = foods.Err.Error()
	}
	report.Stores = append(report.Stores, h)
	return report
}
