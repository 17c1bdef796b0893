// Package reconcile assigns stable identities to freshly built profiles.
//
// Each run rebuilds every profile from the inventory, so the only state carried
// across runs is the profile identifier (Guid). Reconciliation matches the new
// candidates against the previously persisted records by name:
//
//   - A candidate whose name matches a prior record keeps that record's Guid.
//     When the prior set contains the name more than once, the first record wins.
//   - A candidate without a match, or whose match has an empty Guid, gets a new
//     identifier from the injected identity.Generator.
//   - Prior records whose name no longer appears among the candidates are dropped.
//
// Output order is candidate order, never prior order. A nil prior set is valid
// and makes every candidate new.
//
// # Plans
//
// BuildPlan returns the reconciled records together with one Action per
// decision (keep, create, drop) and a Summary, so callers can report what a sync
// will change before persisting it.
//
// # Usage
//
//	plan, err := reconcile.BuildPlan(candidates, prior, identity.UUIDGenerator{})
//	if err != nil {
//	    return err
//	}
//	err = store.Save(ctx, plan.Records)
package reconcile
