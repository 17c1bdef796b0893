// Package inventory defines the host inventory documents and parses them.
//
// An inventory document is YAML (or JSON, which YAML accepts) with three
// top-level keys:
//
//	defaults:            # optional OptionSet applied to every host
//	  user: admin
//	groups:              # optional named OptionSets
//	  lab:
//	    port: 2222
//	hosts:               # required, hostname -> host spec
//	  web1:
//	    ip: 10.0.0.1
//	    groups: [lab]
//	    extra_args: -v
//
// # Key presence
//
// Every option is a Field, which remembers whether its key appeared in the
// document at all. A key set to false, 0 or "" is still present and overrides
// lower-priority stages; a key set to null is present with no value and resets
// the option. Host order follows the document so that output is deterministic.
//
// # Sources
//
// Documents are read from local paths or from object storage using
// "s3://bucket/key" sources (see Load).
package inventory
