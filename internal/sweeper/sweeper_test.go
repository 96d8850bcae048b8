package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aibaljacob/prodigi/internal/config"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)
	service := &Service{
		repo:          repo,
		ttl:           30 * time.Minute,
		limit:         1000,
		workerPool:    workerPool,
		sweepInterval: time.Second,
	}
	return service, repo, workerPool
}

func TestNew(t *testing.T) {
	cfg := &config.Config{PendingTTLMinutes: 30, SweepIntervalSeconds: 60}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(cfg, NewMockRepo(ctrl))
	assert.Equal(t, 30*time.Minute, service.ttl)
	assert.Equal(t, time.Minute, service.sweepInterval)
	assert.Equal(t, uint32(1000), service.limit)
}

func TestService_Start(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	zap.ReplaceGlobals(zap.NewNop())

	t.Run("Marks stale transactions failed", func(t *testing.T) {
		service, repo, workerPool := NewMock(t)

		repo.EXPECT().
			FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).
			DoAndReturn(func(_ context.Context, olderThan time.Time, _ uint32) ([]int, error) {
				assert.WithinDuration(t, time.Now().Add(-30*time.Minute), olderThan, time.Second)
				return []int{101, 102}, nil
			})
		workerPool.EXPECT().
			AddTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				return task()
			}).
			Times(2)
		repo.EXPECT().MarkFailed(gomock.Any(), 101).Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), 102).Return(nil)

		service.sweep(context.Background())
	})

	t.Run("Nothing stale", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).Return(nil, nil)
		service.sweep(context.Background())
	})

	t.Run("Fetch failure", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().
			FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(nil, errors.New("database error"))
		service.sweep(context.Background())
	})

	t.Run("Worker pool rejects task", func(t *testing.T) {
		service, repo, workerPool := NewMock(t)

		repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).Return([]int{103}, nil)
		workerPool.EXPECT().
			AddTask(gomock.Any(), gomock.Any()).
			Return(errors.New("failed to add task to worker pool"))

		service.sweep(context.Background())

		// the in-flight marker is released on rejection, so a later sweep retries the id
		repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).Return([]int{103}, nil)
		workerPool.EXPECT().
			AddTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				return task()
			})
		repo.EXPECT().MarkFailed(gomock.Any(), 103).Return(nil)

		service.sweep(context.Background())
	})

	t.Run("Transaction already being swept is skipped", func(t *testing.T) {
		service, repo, _ := NewMock(t)

		sweepingTransactions.Store(104, struct{}{})
		defer sweepingTransactions.Delete(104)

		repo.EXPECT().FindStalePending(gomock.Any(), gomock.Any(), uint32(1000)).Return([]int{104}, nil)
		service.sweep(context.Background())
	})
}
