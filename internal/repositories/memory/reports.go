package memory

import (
	"context"
	"sort"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"
)

type ShiftReportRepository struct{ s *Store }

func (r *ShiftReportRepository) CreateLoket(_ context.Context, report *models.LoketReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.loket {
		if existing.BusinessID == report.BusinessID && existing.ReportDate == report.ReportDate && existing.Shift == report.Shift {
			return apperror.Conflict("loket report for %s shift %d already exists", report.ReportDate, report.Shift)
		}
	}
	r.s.loket[report.ID] = *report
	return nil
}

func (r *ShiftReportRepository) GetLoket(_ context.Context, id string) (*models.LoketReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.loket[id]
	if !ok {
		return nil, nil
	}
	return &rep, nil
}

func (r *ShiftReportRepository) ListLoket(_ context.Context, filter models.ReportFilter) ([]models.LoketReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.LoketReport
	for _, rep := range r.s.loket {
		if matchReport(filter, rep.BusinessID, rep.ReportDate) {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReportDate != out[j].ReportDate {
			return out[i].ReportDate > out[j].ReportDate
		}
		return out[i].Shift < out[j].Shift
	})
	return out, nil
}

func (r *ShiftReportRepository) CreateKasir(_ context.Context, report *models.KasirReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.kasir {
		if existing.BusinessID == report.BusinessID && existing.ReportDate == report.ReportDate {
			return apperror.Conflict("kasir report for %s already exists", report.ReportDate)
		}
	}
	r.s.kasir[report.ID] = *report
	return nil
}

func (r *ShiftReportRepository) GetKasir(_ context.Context, id string) (*models.KasirReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.kasir[id]
	if !ok {
		return nil, nil
	}
	return &rep, nil
}

func (r *ShiftReportRepository) ListKasir(_ context.Context, filter models.ReportFilter) ([]models.KasirReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.KasirReport
	for _, rep := range r.s.kasir {
		if matchReport(filter, rep.BusinessID, rep.ReportDate) {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReportDate != out[j].ReportDate {
			return out[i].ReportDate > out[j].ReportDate
		}
		return out[i].BusinessID < out[j].BusinessID
	})
	return out, nil
}

// Report dates are YYYY-MM-DD, so string order is date order.
func matchReport(filter models.ReportFilter, businessID, reportDate string) bool {
	if filter.BusinessID != "" && businessID != filter.BusinessID {
		return false
	}
	if filter.ReportDate != "" && reportDate != filter.ReportDate {
		return false
	}
	if filter.StartDate != "" && reportDate < filter.StartDate {
		return false
	}
	if filter.EndDate != "" && reportDate > filter.EndDate {
		return false
	}
	return true
}
