package identity

import (
	"strings"

	"github.com/schoolms/backend/internal/domain/shared"
)

// User is a school staff member or account holder. Payroll templates
// reference their author through created_by.
type User struct {
	shared.BaseEntity
	SchoolID uint64
	Name     string
	Email    string
}

// UserFillable lists the mass-assignable user attributes
var UserFillable = shared.Fillable{"school_id", "name", "email"}

// NewUser builds a user from an attribute bag
func NewUser(attrs shared.Attributes) (*User, error) {
	u := &User{BaseEntity: shared.NewBaseEntity()}
	if err := u.Fill(attrs); err != nil {
		return nil, err
	}
	return u, nil
}

// Fill bulk-assigns whitelisted attributes
func (u *User) Fill(attrs shared.Attributes) error {
	next := *u
	if err := shared.Assign(attrs, UserFillable, shared.Fields{
		"school_id": shared.Uint64Field(&next.SchoolID),
		"name":      shared.StringField(&next.Name),
		"email":     shared.StringField(&next.Email),
	}); err != nil {
		return err
	}
	next.Email = strings.ToLower(strings.TrimSpace(next.Email))
	*u = next
	return nil
}
