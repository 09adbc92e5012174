package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the row holding a persisted session record
type Record struct {
	RecordKey string    `gorm:"primaryKey;size:64"` // Fixed session key
	Value     []byte    `gorm:"type:blob;not null"` // Serialized user
	UpdatedAt time.Time // Last login
}

// TableName pins the table name used by migrations and queries
func (Record) TableName() string { return "session_records" }

// SQL keeps session records in a relational table through gorm
type SQL struct {
	db *gorm.DB
}

// NewSQL creates a gorm backed Backend
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("record_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

// Set upserts the record so a new login overwrites the previous one
func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{RecordKey: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("record_key = ?", key).Delete(&Record{}).Error
}
