// Package orchestrator drives one sync run.
//
// Sync is the pure core: it checks that every document has hosts, resolves and
// builds a candidate for every host across every document, then reconciles the
// whole batch once against the prior records. Hostnames that appear in more
// than one document therefore reconcile against the same prior list.
//
// Runner wraps Sync with I/O: it loads the configured inventories, reads the
// prior records from a store.Store (a corrupt store is logged and treated as
// empty) and writes the result back. Planning and applying are separate steps
// so callers can confirm destructive plans before anything is written.
package orchestrator
