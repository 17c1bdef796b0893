package store

import (
	"context"
	"encoding/json"
	"fmt"

	"profile-sync/core/profile"

	"gorm.io/gorm"
)

// ProfileRow is one persisted profile in the "profiles" table.
type ProfileRow struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Position int    `gorm:"column:position;not null"`
	Name     string `gorm:"column:name;size:255;not null;index"`
	Guid     string `gorm:"column:guid;size:64"`
	Document string `gorm:"column:document;type:text;not null"`
}

// TableName overrides the table name.
func (ProfileRow) TableName() string {
	return "profiles"
}

// DatabaseStore keeps one row per profile.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore returns a store on db. Call Migrate before first use.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Migrate creates or updates the profiles table.
func (s *DatabaseStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&ProfileRow{}); err != nil {
		return fmt.Errorf("migrating profiles table: %w", err)
	}
	return nil
}

// Location names the database dialect and table.
func (s *DatabaseStore) Location() string {
	return s.db.Dialector.Name() + ":" + ProfileRow{}.TableName()
}

// Load reads every row in position order. An empty table is an empty store.
func (s *DatabaseStore) Load(ctx context.Context) ([]profile.Record, error) {
	var rows []ProfileRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Location(), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]profile.Record, 0, len(rows))
	for _, row := range rows {
		var rec profile.Record
		if err := json.Unmarshal([]byte(row.Document), &rec); err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): %v", ErrCorrupt, row.ID, row.Name, err)
		}
		// The indexed columns are authoritative.
		rec.Name = row.Name
		rec.Guid = row.Guid
		records = append(records, rec)
	}
	return records, nil
}

// Save replaces all rows in one transaction.
func (s *DatabaseStore) Save(ctx context.Context, records []profile.Record) error {
	rows := make([]ProfileRow, 0, len(records))
	for i, rec := range records {
		doc, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding profile %q: %w", rec.Name, err)
		}
		rows = append(rows, ProfileRow{
			Position: i,
			Name:     rec.Name,
			Guid:     rec.Guid,
			Document: string(doc),
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ProfileRow{}).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", s.Location(), err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
			return fmt.Errorf("writing %s: %w", s.Location(), err)
		}
		return nil
	})
}
