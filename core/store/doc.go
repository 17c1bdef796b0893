// Package store persists the profile list between sync runs.
//
// The persisted form is the dynamic profiles document the terminal reads:
//
//	{"Profiles": [ {...}, {...} ]}
//
// Every backend stores the complete list; Save always replaces it as a whole.
//
// # Backends
//
//   - FileStore: a local JSON file, replaced with write-to-temp-then-rename so a
//     crash never leaves a half-written document behind.
//   - ObjectStore: the same document as an S3/MinIO object.
//   - DatabaseStore: one row per profile in a "profiles" table, replaced inside
//     a single transaction.
//
// # Absent and corrupt stores
//
// Load returns (nil, nil) when nothing has been persisted yet. Content that
// cannot be decoded is reported wrapped in ErrCorrupt; callers treat that as an
// empty store so a damaged file never blocks a sync.
package store
