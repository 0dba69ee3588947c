package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the administrator credential record.
// The store holds a single record in practice, but keeps its own id space
// so multi-admin support would not require a schema rework.
type Admin struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
