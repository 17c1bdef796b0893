package reconcile

import (
	"errors"
	"fmt"

	"profile-sync/core/identity"
	"profile-sync/core/profile"
)

// Reconcile returns the candidates as records with identifiers assigned.
func Reconcile(candidates []profile.Candidate, prior []profile.Record, gen identity.Generator) ([]profile.Record, error) {
	plan, err := BuildPlan(candidates, prior, gen)
	if err != nil {
		return nil, err
	}
	return plan.Records, nil
}

// BuildPlan reconciles candidates against prior and records every decision.
// Any generator failure aborts the plan.
func BuildPlan(candidates []profile.Candidate, prior []profile.Record, gen identity.Generator) (*Plan, error) {
	priorIDs := indexPrior(prior)

	plan := &Plan{
		Records: make([]profile.Record, 0, len(candidates)),
		Actions: make([]Action, 0, len(candidates)),
	}

	seen := make(map[string]int, len(candidates))
	for _, c := range candidates {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			plan.Summary.Duplicates++
		}

		action := Action{Type: ActionKeep, Name: c.Name, Reason: "matched existing profile"}
		id, matched := priorIDs[c.Name]
		if id == "" {
			newID, err := newID(gen)
			if err != nil {
				return nil, fmt.Errorf("assigning identifier to %q: %w", c.Name, err)
			}
			id = newID
			action.Type = ActionCreate
			action.Reason = "new profile"
			if matched {
				action.Reason = "existing profile has no identifier"
			}
		}

		action.ID = id
		plan.Actions = append(plan.Actions, action)
		plan.Records = append(plan.Records, c.WithID(id))

		if action.Type == ActionKeep {
			plan.Summary.Kept++
		} else {
			plan.Summary.Created++
		}
	}

	dropped := make(map[string]bool)
	for _, r := range prior {
		if seen[r.Name] > 0 || dropped[r.Name] {
			continue
		}
		dropped[r.Name] = true
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionDrop,
			Name:   r.Name,
			ID:     r.Guid,
			Reason: "no longer in inventory",
		})
		plan.Summary.Dropped++
	}

	plan.Summary.Total = len(plan.Records)
	return plan, nil
}

// indexPrior maps each name to the identifier of its first prior record. A name
// is present in the map even when that record's identifier is empty.
func indexPrior(prior []profile.Record) map[string]string {
	ids := make(map[string]string, len(prior))
	for _, r := range prior {
		if _, exists := ids[r.Name]; !exists {
			ids[r.Name] = r.Guid
		}
	}
	return ids
}

func newID(gen identity.Generator) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("%w: no generator configured", identity.ErrGeneration)
	}
	id, err := gen.NewID()
	if err != nil {
		if errors.Is(err, identity.ErrGeneration) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", identity.ErrGeneration, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: generator returned an empty identifier", identity.ErrGeneration)
	}
	return id, nil
}
