// Package scheduler runs the recurring ledger maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/schoolworks/fees_ledger_app/internal/core/ports/services"
)

// sweepActorID is written into the audit fields of rows the sweep transitions.
const sweepActorID = "system:overdue-sweep"

// SweepScheduler runs the overdue sweep on a cron spec. The sweep endpoint
// stays available for manual runs; both paths hit the same idempotent update.
type SweepScheduler struct {
	cron   *cron.Cron
	ledger portssvc.LedgerSvcFacade
	logger *slog.Logger
	spec   string
}

// NewSweepScheduler creates a scheduler that has not been started yet.
func NewSweepScheduler(ledger portssvc.LedgerSvcFacade, logger *slog.Logger, spec string) *SweepScheduler {
	return &SweepScheduler{
		cron:   cron.New(),
		ledger: ledger,
		logger: logger,
		spec:   spec,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *SweepScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runSweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Overdue sweep scheduled", slog.String("spec", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *SweepScheduler) Stop(ctx context.Context) {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
		s.logger.Warn("Timed out waiting for sweep job to finish")
	}
}

func (s *SweepScheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	transitioned, err := s.ledger.SweepOverdue(ctx, time.Now(), sweepActorID)
	if err != nil {
		s.logger.Error("Scheduled overdue sweep failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled overdue sweep finished", slog.Int("transitioned", transitioned))
}
