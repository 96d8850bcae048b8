package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aibaljacob/prodigi/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Repo is the slice of the transaction repository the sweeper needs.
type Repo interface {
	FindStalePending(ctx context.Context, olderThan time.Time, limit uint32) ([]int, error)
	MarkFailed(ctx context.Context, transactionID int) error
}

var sweepingTransactions sync.Map

// Service fails pending transactions whose checkout was abandoned: rows older
// than the TTL never received a payment callback and would otherwise linger
// as pending forever.
type Service struct {
	repo          Repo
	ttl           time.Duration
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:          repo,
		ttl:           time.Duration(cfg.PendingTTLMinutes) * time.Minute,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.SweepIntervalSeconds) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Pending-transaction sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.ttl)
	ids, err := s.repo.FindStalePending(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch stale pending transactions", zap.Error(err))
		return
	}
	if len(ids) == 0 {
		return
	}

	var g errgroup.Group
	for _, id := range ids {
		id := id

		if _, loaded := sweepingTransactions.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingTransactions.Delete(id)
				return s.repo.MarkFailed(ctx, id)
			})
			if err != nil {
				sweepingTransactions.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping pending transactions", zap.Error(err))
		return
	}
	zap.L().Info("Swept stale pending transactions", zap.Int("count", len(ids)))
}
