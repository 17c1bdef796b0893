package orchestrator

import (
	"errors"
	"fmt"

	"profile-sync/core/identity"
	"profile-sync/core/inventory"
	"profile-sync/core/profile"
	"profile-sync/core/reconcile"
	"profile-sync/core/resolver"
)

// ErrEmptyInventory is returned when there are no documents or a document has
// no hosts.
var ErrEmptyInventory = errors.New("empty inventory")

// Result is the outcome of planning a sync.
type Result struct {
	// Plan holds the reconciled records and decisions.
	Plan *reconcile.Plan
	// Resolved holds the resolved configuration of every host, in output order.
	Resolved []resolver.Resolved
}

// UnknownGroups returns hostname -> undefined group names that were skipped.
func (r *Result) UnknownGroups() map[string][]string {
	out := make(map[string][]string)
	for _, res := range r.Resolved {
		if len(res.UnknownGroups) > 0 {
			out[res.Hostname] = res.UnknownGroups
		}
	}
	return out
}

// Sync returns the complete replacement profile list for docs.
func Sync(docs []*inventory.Document, prior []profile.Record, gen identity.Generator) ([]profile.Record, error) {
	res, err := Plan(docs, prior, gen)
	if err != nil {
		return nil, err
	}
	return res.Plan.Records, nil
}

// Plan is Sync with the reconciliation decisions and resolved hosts attached.
func Plan(docs []*inventory.Document, prior []profile.Record, gen identity.Generator) (*Result, error) {
	if err := CheckDocuments(docs); err != nil {
		return nil, err
	}

	resolved, err := ResolveAll(docs)
	if err != nil {
		return nil, err
	}

	plan, err := reconcile.BuildPlan(profile.BuildAll(resolved), prior, gen)
	if err != nil {
		return nil, err
	}
	return &Result{Plan: plan, Resolved: resolved}, nil
}

// CheckDocuments fails when docs is empty or any document has no hosts.
func CheckDocuments(docs []*inventory.Document) error {
	if len(docs) == 0 {
		return fmt.Errorf("%w: no inventory documents", ErrEmptyInventory)
	}
	for _, doc := range docs {
		if doc == nil || doc.HostCount() == 0 {
			name := "<nil>"
			if doc != nil {
				name = doc.Name
			}
			return fmt.Errorf("%w: %s has no hosts", ErrEmptyInventory, name)
		}
	}
	return nil
}

// ResolveAll resolves every host of every document, flattened in order.
func ResolveAll(docs []*inventory.Document) ([]resolver.Resolved, error) {
	var out []resolver.Resolved
	for _, doc := range docs {
		resolved, err := resolver.ResolveDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved...)
	}
	return out, nil
}
