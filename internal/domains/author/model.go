package author

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity backing the authors table
type Author struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"` // Required
	Bio  *string   `json:"bio,omitempty" db:"bio"`
	Dob  *Date     `json:"dob,omitempty" db:"dob"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Date is a calendar date without a time component.
// Accepts both "2006-01-02" and RFC3339 on the wire, marshals as "2006-01-02".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// DateOf wraps a time.Time, nil in nil out.
// Repositories use these to bridge Date and the driver's time.Time.
func DateOf(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// TimeOf unwraps a Date, nil in nil out
func TimeOf(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
