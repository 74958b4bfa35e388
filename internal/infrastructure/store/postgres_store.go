package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is the single-row key/value table holding the serialized state
// document.
type StateRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Document  []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for the StateRecord model.
func (StateRecord) TableName() string {
	return "app_states"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a postgres-backed state store and migrates its
// table.
func NewPostgresStore(db *gorm.DB) (repository.StateRepository, error) {
	if err := db.AutoMigrate(&StateRecord{}); err != nil {
		return nil, fmt.Errorf("migrate state table: %w", err)
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Load(ctx context.Context) (*entity.AppState, error) {
	var record StateRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", StateKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state record: %w", err)
	}
	return Decode(record.Document)
}

func (s *postgresStore) Save(ctx context.Context, state *entity.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	record := StateRecord{Key: StateKey, Document: data, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("save state record: %w", err)
	}
	return nil
}

func (s *postgresStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Delete(&StateRecord{}, "key = ?", StateKey).Error
	if err != nil {
		return fmt.Errorf("clear state record: %w", err)
	}
	return nil
}
