package models

import (
	"github.com/schoolms/backend/internal/domain/setting"
)

// KeywordModel is the persistence model for the Keyword domain entity
type KeywordModel struct {
	BaseModel
	Name string `gorm:"type:varchar(191);not null"`
}

// TableName returns the table name for GORM
func (KeywordModel) TableName() string {
	return "keywords"
}

// ToDomain converts the persistence model to a domain Keyword
func (m *KeywordModel) ToDomain() *setting.Keyword {
	return &setting.Keyword{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Keyword
func (m *KeywordModel) FromDomain(k *setting.Keyword) {
	m.FromDomainBaseEntity(k.BaseEntity)
	m.Name = k.Name
}

// BackgroundImageModel is the persistence model for the BackgroundImage entity
type BackgroundImageModel struct {
	SoftDeleteModel
	BackgroundImage string `gorm:"column:background_image;type:varchar(255)"`
}

// TableName returns the table name for GORM
func (BackgroundImageModel) TableName() string {
	return "background_images"
}

// ToDomain converts the persistence model to a domain BackgroundImage
func (m *BackgroundImageModel) ToDomain() *setting.BackgroundImage {
	return &setting.BackgroundImage{
		BaseEntity:  m.BaseModel.ToDomain(),
		SoftDeletes: m.ToDomainSoftDeletes(),
		FileName:    m.BackgroundImage,
	}
}

// FromDomain populates the persistence model from a domain BackgroundImage
func (m *BackgroundImageModel) FromDomain(b *setting.BackgroundImage) {
	m.FromDomainSoftDelete(b.BaseEntity, b.SoftDeletes)
	m.BackgroundImage = b.FileName
}
