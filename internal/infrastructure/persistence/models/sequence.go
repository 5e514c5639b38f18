package models

import "time"

// SequenceCounterModel is the persistence model for a named monotonic
// counter. One row per prefix; Value holds the last handed-out number.
type SequenceCounterModel struct {
	Prefix    string    `gorm:"type:varchar(10);primary_key"`
	Value     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SequenceCounterModel) TableName() string {
	return "sequence_counters"
}
