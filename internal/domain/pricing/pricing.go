// Package pricing resolves item, combo and delivery prices from catalog and zone snapshots.
// Every function here is pure.
package pricing

import (
	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Free-delivery thresholds apply to fixed-time delivery only.
// They are global policy, not zone data.
var (
	StandardFreeDeliveryThreshold = entity.Rupees(1500)
	SameDayFreeDeliveryThreshold  = entity.Rupees(2000)
)

// DefaultComboDiscountPercentage is used when configuration does not set one.
const DefaultComboDiscountPercentage = 20

var hundred = decimal.NewFromInt(100)

// ComboPick is one requested combo component with its catalog snapshot.
type ComboPick struct {
	Product  *entity.Product
	Size     entity.Size
	Color    string
	Quantity int
}

// PriceSimpleItem returns the unit price and the line total for qty units of product in size.
func PriceSimpleItem(product *entity.Product, size entity.Size, qty int) (unit, total entity.Money, err error) {
	if product == nil {
		return 0, 0, domainerrors.ErrPricingFailed.WrapMessage("product snapshot missing")
	}
	if qty < 1 || qty > entity.MaxLineQuantity {
		return 0, 0, errors.Wrapf(domainerrors.ErrValidationFailed, "quantity must be between 1 and %d", entity.MaxLineQuantity)
	}
	if !product.IsActive {
		return 0, 0, domainerrors.ErrPricingFailed.WrapMessage("product " + product.ID.String() + " is not available")
	}

	unit, ok := product.PriceFor(size)
	if !ok {
		return 0, 0, errors.Wrapf(domainerrors.ErrPricingFailed, "product %s has no price for size %q", product.ID, size)
	}

	total, err = unit.Times(qty)
	if err != nil {
		return 0, 0, err
	}

	return unit, total, nil
}

// PriceCombo prices every pick and applies discountPct to the combined subtotal.
// The discount is rounded half-up to the nearest paisa.
func PriceCombo(picks []ComboPick, discountPct decimal.Decimal) (entity.ComboDetails, error) {
	if len(picks) == 0 {
		return entity.ComboDetails{}, domainerrors.ErrPricingFailed.WrapMessage("combo has no items")
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return entity.ComboDetails{}, domainerrors.ErrPricingFailed.WrapMessage("combo discount out of range")
	}

	items := make([]entity.ComboItem, 0, len(picks))
	var subtotal entity.Money
	for _, pick := range picks {
		unit, lineTotal, err := PriceSimpleItem(pick.Product, pick.Size, pick.Quantity)
		if err != nil {
			return entity.ComboDetails{}, err
		}
		items = append(items, entity.ComboItem{
			ProductID:   pick.Product.ID,
			ProductName: pick.Product.Name,
			Size:        pick.Size,
			Color:       pick.Color,
			Quantity:    pick.Quantity,
			UnitPrice:   unit,
		})
		if subtotal, err = subtotal.Add(lineTotal); err != nil {
			return entity.ComboDetails{}, err
		}
	}

	discount := entity.Money(decimal.NewFromInt(subtotal.Paise()).
		Mul(discountPct).
		Div(hundred).
		Round(0).
		IntPart())

	return entity.ComboDetails{
		Items:              items,
		Subtotal:           subtotal,
		DiscountPercentage: discountPct,
		Discount:           discount,
		FinalPrice:         subtotal - discount,
	}, nil
}

// FreeDeliveryThreshold returns the subtotal from which fixed-time delivery is free.
func FreeDeliveryThreshold(isSameDay bool) entity.Money {
	if isSameDay {
		return SameDayFreeDeliveryThreshold
	}

	return StandardFreeDeliveryThreshold
}

// ResolveDeliveryFee returns zero when the subtotal reaches the threshold and the slot is fixed-time.
// Midnight and express slots are always charged at the zone tier price.
func ResolveDeliveryFee(zone *entity.DeliveryZone, deliveryType entity.DeliveryType, subtotalBeforeDiscount entity.Money, isSameDay bool) (entity.Money, error) {
	if zone == nil || !zone.IsActive {
		return 0, domainerrors.ErrPricingFailed.WrapMessage("delivery zone is not active")
	}

	fee, ok := zone.FeeFor(deliveryType)
	if !ok {
		return 0, errors.Wrapf(domainerrors.ErrPricingFailed, "unknown delivery type %q", deliveryType)
	}

	if deliveryType == entity.DeliveryFixed && subtotalBeforeDiscount >= FreeDeliveryThreshold(isSameDay) {
		return 0, nil
	}

	return fee, nil
}
