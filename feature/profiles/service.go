package profiles

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"profile-sync/core/orchestrator"
	"profile-sync/core/profile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrDropNotConfirmed is returned when a sync would drop profiles and the
// caller did not confirm it.
var ErrDropNotConfirmed = errors.New("sync would drop profiles; confirm to proceed")

// Service handles profile operations.
type Service struct {
	runner *orchestrator.Runner
	logger *zap.Logger
	group  singleflight.Group
	mu     sync.Mutex
}

// NewService creates a new profiles service.
func NewService(runner *orchestrator.Runner, logger *zap.Logger) *Service {
	return &Service{
		runner: runner,
		logger: logger,
	}
}

// List returns the persisted records. A corrupt store is reported as an error
// here; only syncs treat it as empty.
func (s *Service) List(ctx context.Context) ([]profile.Record, error) {
	records, err := s.runner.Store().Load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []profile.Record{}
	}
	return records, nil
}

// Plan computes a sync without writing.
func (s *Service) Plan(ctx context.Context) (*orchestrator.Result, error) {
	return s.runner.Plan(ctx)
}

// Sync plans and applies a sync. Plans that drop profiles are only applied
// when confirmDrop is set; otherwise the plan is returned with
// ErrDropNotConfirmed.
func (s *Service) Sync(ctx context.Context, confirmDrop bool) (*orchestrator.Result, error) {
	key := "sync:" + strconv.FormatBool(confirmDrop)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		res, err := s.runner.Plan(ctx)
		if err != nil {
			return nil, err
		}
		if res.Plan.Summary.Dropped > 0 && !confirmDrop {
			return res, ErrDropNotConfirmed
		}
		if err := s.runner.Apply(ctx, res.Plan); err != nil {
			return nil, err
		}
		return res, nil
	})
	if shared {
		s.logger.Debug("Sync request joined a running sync")
	}

	res, _ := v.(*orchestrator.Result)
	return res, err
}
