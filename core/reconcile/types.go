package reconcile

import "profile-sync/core/profile"

// ActionType represents the outcome of reconciling one profile name.
type ActionType string

const (
	// ActionKeep carries an existing identifier forward.
	ActionKeep ActionType = "keep"
	// ActionCreate assigns a newly generated identifier.
	ActionCreate ActionType = "create"
	// ActionDrop removes a persisted profile that is no longer in the inventory.
	ActionDrop ActionType = "drop"
)

// Action records one reconciliation decision.
type Action struct {
	// Type specifies the decision.
	Type ActionType `json:"type"`

	// Name is the profile name.
	Name string `json:"name"`

	// ID is the identifier the profile ends up with (or had, for drops).
	ID string `json:"id"`

	// Reason explains the decision.
	Reason string `json:"reason"`
}

// Plan contains reconciled records and the decisions that produced them.
type Plan struct {
	// Records is the complete replacement profile list, in candidate order.
	Records []profile.Record `json:"records"`

	// Actions lists decisions: candidates in order, then drops in prior order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	// Total is the number of output records.
	Total int `json:"total"`

	// Kept counts records that carried their identifier forward.
	Kept int `json:"kept"`

	// Created counts records with a new identifier.
	Created int `json:"created"`

	// Dropped counts prior records absent from the candidates.
	Dropped int `json:"dropped"`

	// Duplicates counts candidate names that appeared more than once.
	Duplicates int `json:"duplicates"`
}

// Dropped returns the drop actions of the plan.
func (p *Plan) Dropped() []Action {
	var out []Action
	for _, a := range p.Actions {
		if a.Type == ActionDrop {
			out = append(out, a)
		}
	}
	return out
}
