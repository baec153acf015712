package model

import (
	"florist/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Amounts are stored in paise.
type ProductModel struct {
	ID         uuid.UUID                                        `gorm:"type:uuid;primary_key"`
	Name       string                                           `gorm:"type:varchar(255);not null"`
	PricePaise int64                                            `gorm:"not null;default:0"`
	Pricing    datatypes.JSONType[map[entity.Size]entity.Money] `gorm:"type:jsonb"`
	IsActive   bool                                             `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain maps the row to a catalog product.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:       m.ID,
		Name:     m.Name,
		Price:    entity.Money(m.PricePaise),
		Pricing:  m.Pricing.Data(),
		IsActive: m.IsActive,
	}
}

// FromProductDomain maps a catalog product to a row.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:         product.ID,
		Name:       product.Name,
		PricePaise: product.Price.Paise(),
		Pricing:    datatypes.NewJSONType(product.Pricing),
		IsActive:   product.IsActive,
	}
}

// DeliveryZoneModel mirrors the 'delivery_zones' table. Pincodes is a jsonb array.
type DeliveryZoneModel struct {
	ZoneID         string                      `gorm:"type:varchar(64);primaryKey"`
	Name           string                      `gorm:"type:varchar(255);not null"`
	Pincodes       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	FixedTimePaise int64                       `gorm:"not null"`
	MidnightPaise  int64                       `gorm:"not null"`
	ExpressPaise   int64                       `gorm:"not null"`
	IsActive       bool                        `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "delivery_zones"
}

// ToDomain maps the row to a delivery zone.
func (m *DeliveryZoneModel) ToDomain() *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ZoneID:   m.ZoneID,
		Name:     m.Name,
		Pincodes: []string(m.Pincodes),
		Pricing: entity.DeliveryPricing{
			FixedTime: entity.Money(m.FixedTimePaise),
			Midnight:  entity.Money(m.MidnightPaise),
			Express:   entity.Money(m.ExpressPaise),
		},
		IsActive: m.IsActive,
	}
}

// FromZoneDomain maps a delivery zone to a row.
func FromZoneDomain(zone *entity.DeliveryZone) *DeliveryZoneModel {
	return &DeliveryZoneModel{
		ZoneID:         zone.ZoneID,
		Name:           zone.Name,
		Pincodes:       datatypes.JSONSlice[string](zone.Pincodes),
		FixedTimePaise: zone.Pricing.FixedTime.Paise(),
		MidnightPaise:  zone.Pricing.Midnight.Paise(),
		ExpressPaise:   zone.Pricing.Express.Paise(),
		IsActive:       zone.IsActive,
	}
}
