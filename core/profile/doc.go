// Package profile turns resolved host configurations into terminal profiles.
//
// A Record is serialized with the exact keys the terminal application reads
// from its dynamic profile files ("Name", "Guid", "Custom Command", ...).
// Build produces a Candidate: a Record whose Guid is still empty. The reconcile
// package assigns identities.
//
// # Command rendering
//
// The connection command is rendered without any shell escaping. Inventory
// strings come from the local operator and are used as-is:
//
//	<transport> [user@]<ip>[ -p <port>][ <extra args>]
//
// An unset or "ssh2" transport renders as "ssh". Any other transport is used
// verbatim, so tools like mosh or et work without changes here.
package profile
