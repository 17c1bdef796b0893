package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"profile-sync/core/profile"
)

// ErrCorrupt is returned (wrapped) when persisted profiles cannot be decoded.
var ErrCorrupt = errors.New("profile store is corrupt")

const (
	BackendFile     = "file"
	BackendObject   = "s3"
	BackendDatabase = "database"
)

// Store loads and saves the complete profile list.
type Store interface {
	// Load returns the persisted records, or nil when nothing was persisted.
	Load(ctx context.Context) ([]profile.Record, error)
	// Save replaces the persisted records.
	Save(ctx context.Context, records []profile.Record) error
	// Location describes where the records live, for logs.
	Location() string
}

// Snapshot is the on-disk document shape.
type Snapshot struct {
	Profiles []profile.Record `json:"Profiles"`
}

// Decode parses a snapshot document. A document without a "Profiles" key is
// corrupt; a null "Profiles" value is an empty list.
func Decode(data []byte) ([]profile.Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	profiles, ok := raw["Profiles"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"Profiles\" key", ErrCorrupt)
	}

	var records []profile.Record
	if err := json.Unmarshal(profiles, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}

// Encode renders records as an indented snapshot document.
func Encode(records []profile.Record) ([]byte, error) {
	if records == nil {
		records = []profile.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot{Profiles: records}); err != nil {
		return nil, fmt.Errorf("encoding profiles: %w", err)
	}
	return buf.Bytes(), nil
}
