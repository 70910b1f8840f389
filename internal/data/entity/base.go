package entity

import (
	"time"

	"github.com/google/uuid"
)

// Model is a mutable row that is soft-deleted through deleted_at.
type Model struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// NewModel returns a fresh identity stamped at now.
func NewModel(now time.Time) Model {
	return Model{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func (m *Model) IsDeleted() bool {
	return m.DeletedAt != nil
}

// Touch records a write at now.
func (m *Model) Touch(now time.Time) {
	m.UpdatedAt = now
}

// Timestamped is a mutable row that is never deleted.
type Timestamped struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (t *Timestamped) Touch(now time.Time) {
	t.UpdatedAt = now
}

// Record is an insert-only row.
type Record struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
