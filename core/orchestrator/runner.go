package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"profile-sync/core/identity"
	"profile-sync/core/inventory"
	"profile-sync/core/reconcile"
	"profile-sync/core/storage"
	"profile-sync/core/store"

	"go.uber.org/zap"
)

// Runner loads inventories and the profile store, plans and persists syncs.
type Runner struct {
	sources []string
	store   store.Store
	gen     identity.Generator
	client  storage.Client
	logger  *zap.Logger
}

// NewRunner creates a runner. client is only needed for s3:// inventories and
// may be nil.
func NewRunner(sources []string, st store.Store, gen identity.Generator, client storage.Client, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		sources: sources,
		store:   st,
		gen:     gen,
		client:  client,
		logger:  logger,
	}
}

// Store returns the profile store the runner writes to.
func (r *Runner) Store() store.Store {
	return r.store
}

// Documents loads the configured inventories.
func (r *Runner) Documents(ctx context.Context) ([]*inventory.Document, error) {
	if len(r.sources) == 0 {
		return nil, fmt.Errorf("%w: no inventory sources configured", ErrEmptyInventory)
	}
	return inventory.Load(ctx, r.sources, r.client)
}

// Plan loads inputs and computes the sync result without writing anything.
func (r *Runner) Plan(ctx context.Context) (*Result, error) {
	docs, err := r.Documents(ctx)
	if err != nil {
		return nil, err
	}

	prior, err := r.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		r.logger.Warn("Profile store is corrupt, treating it as empty",
			zap.String("store", r.store.Location()),
			zap.Error(err))
		prior = nil
	}

	res, err := Plan(docs, prior, r.gen)
	if err != nil {
		return nil, err
	}

	for host, groups := range res.UnknownGroups() {
		r.logger.Warn("Host references undefined groups",
			zap.String("host", host),
			zap.Strings("groups", groups))
	}
	if res.Plan.Summary.Duplicates > 0 {
		r.logger.Warn("Duplicate hostnames across inventories",
			zap.Int("duplicates", res.Plan.Summary.Duplicates))
	}

	r.logger.Debug("Sync planned",
		zap.Int("documents", len(docs)),
		zap.Int("prior", len(prior)),
		zap.Int("total", res.Plan.Summary.Total),
		zap.Int("kept", res.Plan.Summary.Kept),
		zap.Int("created", res.Plan.Summary.Created),
		zap.Int("dropped", res.Plan.Summary.Dropped))

	return res, nil
}

// Apply persists the records of plan, replacing the stored list.
func (r *Runner) Apply(ctx context.Context, plan *reconcile.Plan) error {
	if err := r.store.Save(ctx, plan.Records); err != nil {
		return fmt.Errorf("saving profiles to %s: %w", r.store.Location(), err)
	}

	r.logger.Info("Profiles synced",
		zap.String("store", r.store.Location()),
		zap.Int("total", plan.Summary.Total),
		zap.Int("created", plan.Summary.Created),
		zap.Int("dropped", plan.Summary.Dropped))
	return nil
}

// Run plans and, unless dryRun is set, applies the sync.
func (r *Runner) Run(ctx context.Context, dryRun bool) (*Result, error) {
	res, err := r.Plan(ctx)
	if err != nil {
		return nil, err
	}
	if dryRun {
		return res, nil
	}
	if err := r.Apply(ctx, res.Plan); err != nil {
		return nil, err
	}
	return res, nil
}
