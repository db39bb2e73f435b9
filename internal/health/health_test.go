package health_test

import (
	"context"
	"errors"
	"testing"

	"loket-backend/internal/health"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestCheckBasic(t *testing.T) {
	tests := []struct {
		name       string
		db         health.Pinger
		wantStatus string
		wantDB     string
	}{
		{name: "memory store", db: nil, wantStatus: "healthy", wantDB: "memory"},
		{name: "database up", db: fakePinger{}, wantStatus: "healthy", wantDB: "healthy"},
		{name: "database down", db: fakePinger{err: errors.New("refused")}, wantStatus: "unhealthy", wantDB: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := health.NewHealthChecker(tt.db).CheckBasic()
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantDB, status.Database.Status)
			assert.Equal(t, "disabled", status.Redis)
		})
	}
}

func TestCheckDetailedKeepsBasicStatus(t *testing.T) {
	status := health.NewHealthChecker(fakePinger{}).CheckDetailed(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.System.MemoryPercent, 0.0)
}
