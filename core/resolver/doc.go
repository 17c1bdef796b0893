// Package resolver computes the effective connection options for a host.
//
// Options are applied as an ordered list of patches, lowest priority first:
//
//  1. Built-in defaults (keepalive interval 0, terminal type "xterm-256color").
//  2. The document's defaults.
//  3. Each group in the host's group list, in the listed order.
//  4. The host's own options.
//
// A patch overrides exactly the keys it contains (see inventory.Field), so an
// explicit false, 0 or "" wins over a non-empty value from an earlier stage.
// Every group that exists in the document is recorded as a tag, in order, even
// if it changed nothing. Groups the document does not define are skipped and
// reported in Resolved.UnknownGroups.
package resolver
