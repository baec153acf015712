// Package model holds the GORM persistence models and their domain mappings.
package model

import (
	"time"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Accounts are owned by the account service.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []UserAddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the model to a domain user. Addresses keep insertion order.
func (m *UserModel) ToDomain() *entity.User {
	user := &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Addresses: make([]entity.Address, 0, len(m.Addresses)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Addresses {
		user.Addresses = append(user.Addresses, m.Addresses[i].ToDomain())
	}

	return user
}

// FromUserDomain maps a domain user to its model.
func FromUserDomain(user *entity.User) *UserModel {
	m := &UserModel{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	for _, address := range user.Addresses {
		m.Addresses = append(m.Addresses, FromAddressDomain(user.ID, address))
	}

	return m
}
