package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type fakePruner struct {
	calls  int
	pruned int
}

func (f *fakePruner) PruneExpiredResetTokens() int {
	f.calls++
	return f.pruned
}

func TestResetTokenCleanupService_CleanupExpiredTokens(t *testing.T) {
	pruner := &fakePruner{pruned: 3}

	cfg := &config.Config{
		ResetTokenCleanup: config.ResetTokenCleanup{
			CronSchedule: "0 * * * *",
			Enabled:      true,
		},
	}

	service := NewResetTokenCleanupService(pruner, cfg)

	err := service.CleanupExpiredTokens()

	assert.NoError(t, err)
	assert.Equal(t, 1, pruner.calls)
	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestResetTokenCleanupService_StartDesabilitado(t *testing.T) {
	pruner := &fakePruner{}

	cfg := &config.Config{
		ResetTokenCleanup: config.ResetTokenCleanup{
			CronSchedule: "0 * * * *",
			Enabled:      false,
		},
	}

	service := NewResetTokenCleanupService(pruner, cfg)

	// Desabilitado por configuração: nada é agendado e nada roda
	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, pruner.calls)
}

func TestResetTokenCleanupService_GetStatus(t *testing.T) {
	cfg := &config.Config{
		ResetTokenCleanup: config.ResetTokenCleanup{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	}

	service := NewResetTokenCleanupService(&fakePruner{}, cfg)

	status := service.GetStatus()

	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, "*/30 * * * *", status["cleanup_cron"])
}
