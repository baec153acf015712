package model

import (
	"time"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// UserAddressModel is the GORM-specific struct for the 'user_addresses' table.
// The serial ID preserves the order addresses were saved in.
type UserAddressModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_addresses_on_user"`
	Label     string    `gorm:"type:varchar(100)"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Line1     string    `gorm:"type:varchar(255);not null"`
	Line2     string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100)"`
	Pincode   string    `gorm:"type:varchar(6);not null"`
	Landmark  string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAddressModel) TableName() string {
	return "user_addresses"
}

// ToDomain maps the row to a domain address.
func (m *UserAddressModel) ToDomain() entity.Address {
	return entity.Address{
		Label:    m.Label,
		Name:     m.Name,
		Phone:    m.Phone,
		Line1:    m.Line1,
		Line2:    m.Line2,
		City:     m.City,
		State:    m.State,
		Pincode:  m.Pincode,
		Landmark: m.Landmark,
	}
}

// FromAddressDomain maps a domain address owned by userID to a row.
func FromAddressDomain(userID uuid.UUID, address entity.Address) UserAddressModel {
	return UserAddressModel{
		UserID:   userID,
		Label:    address.Label,
		Name:     address.Name,
		Phone:    address.Phone,
		Line1:    address.Line1,
		Line2:    address.Line2,
		City:     address.City,
		State:    address.State,
		Pincode:  address.Pincode,
		Landmark: address.Landmark,
	}
}
