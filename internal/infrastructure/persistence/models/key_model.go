package models

import (
	"time"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"
)

// KeyModel is the GORM database model for stored RSA key halves
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	KeySize         int       `gorm:"not null;type:integer"`
	Material        string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Type:            m.Type,
		KeySize:         m.KeySize,
		Material:        m.Material,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Type = k.Type
	m.KeySize = k.KeySize
	m.Material = k.Material
	m.DateTimeCreated = k.DateTimeCreated
}
