// Package identity mints the opaque, globally unique identifiers assigned to
// newly created profiles.
//
// # Generators
//
// The Generator interface has a single operation returning one identifier per
// call. Two implementations are provided:
//   - UUIDGenerator: random (v4) UUIDs from github.com/google/uuid. This is the default.
//   - CommandGenerator: runs an external command (uuidgen by default) and uses its
//     trimmed stdout, for installations that want identifiers from the system tool.
//
// Any failure to produce an identifier is reported wrapped in ErrGeneration and is
// fatal to the sync run that requested it.
//
// # Usage
//
//	gen, err := identity.New(cfg.Sync.IDGenerator)
//	id, err := gen.NewID()
package identity
