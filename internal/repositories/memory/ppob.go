package memory

import (
	"context"
	"sort"

	"loket-backend/internal/apperror"
	"loket-backend/internal/models"
)

type PPOBRepository struct{ s *Store }

func (r *PPOBRepository) CreateShift(_ context.Context, shift *models.PPOBShiftReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.ppobShifts {
		if existing.BusinessID == shift.BusinessID && existing.Tanggal == shift.Tanggal && existing.Shift == shift.Shift {
			return apperror.Conflict("ppob shift %d on %s already exists", shift.Shift, shift.Tanggal)
		}
	}
	r.s.ppobShifts[shift.ID] = *shift
	return nil
}

func (r *PPOBRepository) GetShift(_ context.Context, id string) (*models.PPOBShiftReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.ppobShifts[id]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (r *PPOBRepository) ListShifts(_ context.Context, filter models.PPOBShiftFilter) ([]models.PPOBShiftReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.PPOBShiftReport
	for _, sh := range r.s.ppobShifts {
		if filter.BusinessID != "" && sh.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Tanggal != "" && sh.Tanggal != filter.Tanggal {
			continue
		}
		if filter.StatusSetoran != "" && sh.StatusSetoran != filter.StatusSetoran {
			continue
		}
		if filter.TanggalBefore != "" && sh.Tanggal >= filter.TanggalBefore {
			continue
		}
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tanggal != out[j].Tanggal {
			return out[i].Tanggal > out[j].Tanggal
		}
		return out[i].Shift < out[j].Shift
	})
	return out, nil
}

func (r *PPOBRepository) CreateKasirReport(_ context.Context, report *models.PPOBKasirReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.ppobKasir[report.ID]; exists {
		return apperror.Conflict("ppob kasir report %s already exists", report.ID)
	}
	ids := report.SettledShiftIDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		sh, ok := r.s.ppobShifts[id]
		if !ok || seen[id] || sh.BusinessID != report.BusinessID || sh.StatusSetoran != models.StatusBelumDisetor {
			return apperror.Conflict("ppob loket shifts %v are not all awaiting settlement", ids)
		}
		seen[id] = true
	}

	r.s.ppobKasir[report.ID] = *report
	for _, id := range ids {
		sh := r.s.ppobShifts[id]
		sh.StatusSetoran = models.StatusLunas
		sh.SettledBy = report.ID
		r.s.ppobShifts[id] = sh
	}
	return nil
}

func (r *PPOBRepository) GetKasirReport(_ context.Context, id string) (*models.PPOBKasirReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep, ok := r.s.ppobKasir[id]
	if !ok {
		return nil, nil
	}
	return &rep, nil
}

// InsertJournalLines is all-or-nothing like the transactional version.
func (r *PPOBRepository) InsertJournalLines(_ context.Context, lines []models.JournalLine) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.JournalFault != nil {
		if err := r.s.JournalFault(lines); err != nil {
			return 0, err
		}
	}

	var fresh []models.JournalLine
	pending := map[string]bool{}
	for _, l := range lines {
		if !l.Balanced() {
			return 0, apperror.InvalidArgument("journal line %q is not balanced", l.Description)
		}
		if l.SyncKey != "" {
			if r.s.journalKey[l.SyncKey] || pending[l.SyncKey] {
				continue
			}
			pending[l.SyncKey] = true
		}
		fresh = append(fresh, l)
	}

	for k := range pending {
		r.s.journalKey[k] = true
	}
	r.s.journal = append(r.s.journal, fresh...)
	return len(fresh), nil
}

func (r *PPOBRepository) ListJournal(_ context.Context, filter models.JournalFilter) ([]models.JournalLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.JournalLine
	for _, l := range r.s.journal {
		if filter.BusinessID != "" && l.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Account != "" && l.DebitAccount != filter.Account && l.KreditAccount != filter.Account {
			continue
		}
		if filter.ReferenceType != "" && l.ReferenceType != filter.ReferenceType {
			continue
		}
		if filter.ReferenceID != "" && l.ReferenceID != filter.ReferenceID {
			continue
		}
		if filter.StartDate != "" && l.Tanggal < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && l.Tanggal > filter.EndDate {
			continue
		}
		out = append(out, l)
	}

	// Posting order: insertion order breaks ties within a day.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tanggal != out[j].Tanggal {
			return out[i].Tanggal < out[j].Tanggal
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit := limitOr(filter.Limit, 5000); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
