// Package scheduler contém os serviços de agendamento de tarefas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// ResetTokenPruner remove tokens de redefinição de senha expirados e
// retorna quantos foram descartados
type ResetTokenPruner interface {
	PruneExpiredResetTokens() int
}

type ResetTokenCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

type ResetTokenCleanupService struct {
	scheduler          *gocron.Scheduler
	pruner             ResetTokenPruner
	config             ResetTokenCleanupConfig
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewResetTokenCleanupService(pruner ResetTokenPruner, cfg *config.Config) *ResetTokenCleanupService {
	cleanupConfig := ResetTokenCleanupConfig{
		CronSchedule: cfg.ResetTokenCleanup.CronSchedule, // Default: a cada hora
		Enabled:      cfg.ResetTokenCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
	}).Info("Configuração do agendador de limpeza de tokens de redefinição carregada")

	return &ResetTokenCleanupService{
		scheduler: scheduler,
		pruner:    pruner,
		config:    cleanupConfig,
	}
}

func (s *ResetTokenCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de tokens de redefinição desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de tokens de redefinição")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredTokens(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de tokens de redefinição")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de tokens de redefinição: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de tokens de redefinição")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ResetTokenCleanupService) CleanupExpiredTokens() error {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	if s.cleanupRunning {
		logrus.Warn("Limpeza de tokens de redefinição já está em execução")
		return nil
	}

	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.cleanupRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	pruned := s.pruner.PruneExpiredResetTokens()

	logrus.WithFields(logrus.Fields{
		"pruned_tokens": pruned,
	}).Info("Limpeza de tokens de redefinição concluída")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ResetTokenCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
