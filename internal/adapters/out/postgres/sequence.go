package postgres

import (
	"context"

	"gorm.io/gorm"
)

const orderCounterName = "order_number"

// CounterDTO is a named monotonic counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName returns the name of the table for GORM.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderNumberSequence hands out order sequence numbers backed by a
// counter row. The upsert increments and reads in a single statement, so
// concurrent callers never observe the same value.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a new GORM order number sequence.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next returns the next order sequence number.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, orderCounterName).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
