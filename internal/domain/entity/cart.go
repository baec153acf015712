package entity

import (
	"fmt"
	"slices"
	"time"

	domainerrors "florist/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineKind distinguishes single products from discounted bundles.
type LineKind string

const (
	LineSimple LineKind = "simple"
	LineCombo  LineKind = "combo"
)

// MaxLineQuantity caps the units on one cart line or combo pick.
const MaxLineQuantity = 99

// ComboItem is one product inside a combo, priced when the combo was added.
type ComboItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Size        Size      `json:"size,omitempty"`
	Color       string    `json:"color,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Money     `json:"unit_price"`
}

// ComboDetails is the frozen pricing of a combo line.
type ComboDetails struct {
	Items              []ComboItem     `json:"items"`
	Subtotal           Money           `json:"subtotal"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Discount           Money           `json:"discount"`
	FinalPrice         Money           `json:"final_price"`
	DeliveryPincode    string          `json:"delivery_pincode,omitempty"`
}

// CartLine is a cart entry. Simple lines use the product fields, combo lines use Combo.
type CartLine struct {
	LineID      uuid.UUID     `json:"line_id"`
	Kind        LineKind      `json:"kind"`
	ProductID   uuid.UUID     `json:"product_id,omitempty"`
	ProductName string        `json:"product_name,omitempty"`
	Size        Size          `json:"size,omitempty"`
	Quantity    int           `json:"quantity"`
	UnitPrice   Money         `json:"unit_price"`
	Combo       *ComboDetails `json:"combo,omitempty"`
}

// Price is the per-unit price of the line. Combos count as one package.
func (l *CartLine) Price() Money {
	if l.Kind == LineCombo && l.Combo != nil {
		return l.Combo.FinalPrice
	}

	return l.UnitPrice
}

// Total is price times quantity.
func (l *CartLine) Total() (Money, error) {
	return l.Price().Times(l.Quantity)
}

// Clone returns a deep copy that shares no slices with l.
func (l *CartLine) Clone() CartLine {
	cp := *l
	if l.Combo != nil {
		combo := *l.Combo
		combo.Items = slices.Clone(l.Combo.Items)
		cp.Combo = &combo
	}

	return cp
}

// Cart is the per-user mutable basket.
// Version is bumped by the repository on every successful save.
type Cart struct {
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartLine `json:"items"`
	Version   int64      `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for a user that has none yet.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []CartLine{},
	}
}

// Total sums price x quantity over every line.
func (c *Cart) Total() (Money, error) {
	var total Money
	for i := range c.Items {
		lineTotal, err := c.Items[i].Total()
		if err != nil {
			return 0, err
		}
		if total, err = total.Add(lineTotal); err != nil {
			return 0, err
		}
	}

	return total, nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddSimple merges qty into the existing (product, size) line or appends a new line priced at unitPrice.
// The price of an existing line is never touched. The merged quantity may not exceed MaxLineQuantity.
func (c *Cart) AddSimple(product *Product, size Size, qty int, unitPrice Money) (CartLine, error) {
	if err := checkLineQuantity(qty); err != nil {
		return CartLine{}, err
	}
	if idx := c.findSimple(product.ID, size); idx >= 0 {
		if err := checkLineQuantity(c.Items[idx].Quantity + qty); err != nil {
			return CartLine{}, err
		}
		c.Items[idx].Quantity += qty

		return c.Items[idx], nil
	}

	line := CartLine{
		LineID:      uuid.New(),
		Kind:        LineSimple,
		ProductID:   product.ID,
		ProductName: product.Name,
		Size:        size,
		Quantity:    qty,
		UnitPrice:   unitPrice,
	}
	c.Items = append(c.Items, line)

	return line, nil
}

// AddCombo appends a combo line. Combos are never merged.
func (c *Cart) AddCombo(details ComboDetails) CartLine {
	line := CartLine{
		LineID:    uuid.New(),
		Kind:      LineCombo,
		Quantity:  1,
		UnitPrice: details.FinalPrice,
		Combo:     &details,
	}
	c.Items = append(c.Items, line)

	return line
}

// UpdateQuantity sets the quantity of the simple line matching product and size.
// It reports false when no such line exists.
func (c *Cart) UpdateQuantity(productID uuid.UUID, size Size, qty int) (bool, error) {
	if err := checkLineQuantity(qty); err != nil {
		return false, err
	}
	idx := c.findSimple(productID, size)
	if idx < 0 {
		return false, nil
	}
	c.Items[idx].Quantity = qty

	return true, nil
}

func checkLineQuantity(qty int) error {
	if qty < 1 || qty > MaxLineQuantity {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("quantity must be between 1 and %d", MaxLineQuantity))
	}

	return nil
}

// Remove drops the first simple line for productID.
func (c *Cart) Remove(productID uuid.UUID) bool {
	idx := slices.IndexFunc(c.Items, func(l CartLine) bool {
		return l.Kind == LineSimple && l.ProductID == productID
	})
	if idx < 0 {
		return false
	}
	c.Items = slices.Delete(c.Items, idx, idx+1)

	return true
}

// RemoveLine drops the line with the given id, simple or combo.
func (c *Cart) RemoveLine(lineID uuid.UUID) bool {
	idx := slices.IndexFunc(c.Items, func(l CartLine) bool { return l.LineID == lineID })
	if idx < 0 {
		return false
	}
	c.Items = slices.Delete(c.Items, idx, idx+1)

	return true
}

// Clear empties the cart. The cart itself survives checkout.
func (c *Cart) Clear() {
	c.Items = []CartLine{}
}

// Snapshot deep-copies the lines for an order.
func (c *Cart) Snapshot() []CartLine {
	lines := make([]CartLine, 0, len(c.Items))
	for i := range c.Items {
		lines = append(lines, c.Items[i].Clone())
	}

	return lines
}

// Clone deep-copies the whole cart.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = c.Snapshot()

	return &cp
}

func (c *Cart) findSimple(productID uuid.UUID, size Size) int {
	return slices.IndexFunc(c.Items, func(l CartLine) bool {
		return l.Kind == LineSimple && l.ProductID == productID && l.Size == size
	})
}
