package usecase

import (
	"context"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryUsecase prices delivery for the caller's current cart.
type DeliveryUsecase interface {
	Quote(ctx context.Context, userID uuid.UUID, input *DeliveryQuoteInput) (*DeliveryQuote, error)
}

// DeliveryQuoteInput selects the destination and slot.
type DeliveryQuoteInput struct {
	Pincode string              `json:"pincode"`
	Type    entity.DeliveryType `json:"type"`
	SameDay bool                `json:"same_day"`
}

// DeliveryQuote is the fee the cart would be charged at checkout.
type DeliveryQuote struct {
	Pincode      string              `json:"pincode"`
	ZoneID       string              `json:"zone_id"`
	ZoneName     string              `json:"zone_name"`
	Type         entity.DeliveryType `json:"type"`
	SameDay      bool                `json:"same_day"`
	CartSubtotal entity.Money        `json:"cart_subtotal"`
	Threshold    entity.Money        `json:"free_delivery_threshold"`
	Fee          entity.Money        `json:"fee"`
	FreeDelivery bool                `json:"free_delivery"`
}
