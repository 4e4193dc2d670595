package models

import (
	"github.com/schoolms/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity
type UserModel struct {
	BaseModel
	SchoolID uint64 `gorm:"not null;index"`
	Name     string `gorm:"type:varchar(191);not null"`
	Email    string `gorm:"type:varchar(191);not null;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: m.BaseModel.ToDomain(),
		SchoolID:   m.SchoolID,
		Name:       m.Name,
		Email:      m.Email,
	}
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.SchoolID = u.SchoolID
	m.Name = u.Name
	m.Email = u.Email
}
