package entity

import "slices"

// DeliveryType is the delivery slot a customer picks.
type DeliveryType string

const (
	DeliveryFixed    DeliveryType = "fixed"
	DeliveryMidnight DeliveryType = "midnight"
	DeliveryExpress  DeliveryType = "express"
)

// IsValid checks if the DeliveryType is a valid value.
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryFixed, DeliveryMidnight, DeliveryExpress:
		return true
	default:
		return false
	}
}

// DeliveryPricing holds the per-slot fee a zone charges.
type DeliveryPricing struct {
	FixedTime Money `json:"fixed_time"`
	Midnight  Money `json:"midnight"`
	Express   Money `json:"express"`
}

// DeliveryZone is reference data maintained by back-office tooling.
type DeliveryZone struct {
	ZoneID   string          `json:"zone_id"`
	Name     string          `json:"name"`
	Pincodes []string        `json:"pincodes"`
	Pricing  DeliveryPricing `json:"pricing"`
	IsActive bool            `json:"is_active"`
}

// Serves reports whether the zone delivers to pincode.
func (z *DeliveryZone) Serves(pincode string) bool {
	return z.IsActive && slices.Contains(z.Pincodes, pincode)
}

// FeeFor returns the zone tier price for a delivery type.
func (z *DeliveryZone) FeeFor(t DeliveryType) (Money, bool) {
	switch t {
	case DeliveryFixed:
		return z.Pricing.FixedTime, true
	case DeliveryMidnight:
		return z.Pricing.Midnight, true
	case DeliveryExpress:
		return z.Pricing.Express, true
	default:
		return 0, false
	}
}
