package mongodb

import (
	"time"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collection names.
const (
	usersCollection    = "users"
	productsCollection = "products"
	zonesCollection    = "delivery_zones"
	cartsCollection    = "carts"
	ordersCollection   = "orders"
)

// Ids are stored as canonical UUID strings so documents stay readable in the shell.

type addressDoc struct {
	Label    string `bson:"label,omitempty"`
	Name     string `bson:"name"`
	Phone    string `bson:"phone"`
	Line1    string `bson:"line1"`
	Line2    string `bson:"line2,omitempty"`
	City     string `bson:"city"`
	State    string `bson:"state"`
	Pincode  string `bson:"pincode"`
	Landmark string `bson:"landmark,omitempty"`
}

type userDoc struct {
	ID        string       `bson:"_id"`
	Name      string       `bson:"name"`
	Email     string       `bson:"email"`
	Addresses []addressDoc `bson:"addresses"`
	CreatedAt time.Time    `bson:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at"`
}

type productDoc struct {
	ID         string           `bson:"_id"`
	Name       string           `bson:"name"`
	PricePaise int64            `bson:"price_paise"`
	Pricing    map[string]int64 `bson:"pricing,omitempty"`
	IsActive   bool             `bson:"is_active"`
}

type zoneDoc struct {
	ID             string   `bson:"_id"`
	Name           string   `bson:"name"`
	Pincodes       []string `bson:"pincodes"`
	FixedTimePaise int64    `bson:"fixed_time_paise"`
	MidnightPaise  int64    `bson:"midnight_paise"`
	ExpressPaise   int64    `bson:"express_paise"`
	IsActive       bool     `bson:"is_active"`
}

type comboItemDoc struct {
	ProductID   string `bson:"product_id"`
	ProductName string `bson:"product_name"`
	Size        string `bson:"size,omitempty"`
	Color       string `bson:"color,omitempty"`
	Quantity    int    `bson:"quantity"`
	UnitPrice   int64  `bson:"unit_price"`
}

type comboDoc struct {
	Items              []comboItemDoc `bson:"items"`
	Subtotal           int64          `bson:"subtotal"`
	DiscountPercentage string         `bson:"discount_percentage"`
	Discount           int64          `bson:"discount"`
	FinalPrice         int64          `bson:"final_price"`
	DeliveryPincode    string         `bson:"delivery_pincode,omitempty"`
}

type lineDoc struct {
	LineID      string    `bson:"line_id"`
	Kind        string    `bson:"kind"`
	ProductID   string    `bson:"product_id,omitempty"`
	ProductName string    `bson:"product_name,omitempty"`
	Size        string    `bson:"size,omitempty"`
	Quantity    int       `bson:"quantity"`
	UnitPrice   int64     `bson:"unit_price"`
	Combo       *comboDoc `bson:"combo,omitempty"`
}

type cartDoc struct {
	UserID    string    `bson:"_id"`
	Items     []lineDoc `bson:"items"`
	Version   int64     `bson:"version"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type deliveryDoc struct {
	Pincode string `bson:"pincode"`
	ZoneID  string `bson:"zone_id"`
	Type    string `bson:"type"`
	SameDay bool   `bson:"same_day"`
	Fee     int64  `bson:"fee"`
}

type paymentInfoDoc struct {
	GatewayOrderID string `bson:"gateway_order_id,omitempty"`
	PaymentID      string `bson:"payment_id,omitempty"`
	Signature      string `bson:"signature,omitempty"`
}

type orderDoc struct {
	ID              string         `bson:"_id"`
	UserID          string         `bson:"user_id"`
	CheckoutToken   string         `bson:"checkout_token,omitempty"`
	Items           []lineDoc      `bson:"items"`
	DeliveryAddress addressDoc     `bson:"delivery_address"`
	Delivery        *deliveryDoc   `bson:"delivery,omitempty"`
	TotalAmount     int64          `bson:"total_amount"`
	PaymentMethod   string         `bson:"payment_method"`
	Status          string         `bson:"status"`
	OrderStatus     string         `bson:"order_status"`
	PaymentInfo     paymentInfoDoc `bson:"payment_info"`
	CreatedAt       time.Time      `bson:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at"`
}

func fromAddress(a entity.Address) addressDoc {
	return addressDoc(a)
}

func (d addressDoc) toDomain() entity.Address {
	return entity.Address(d)
}

func fromUser(u *entity.User) *userDoc {
	doc := &userDoc{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Addresses: make([]addressDoc, 0, len(u.Addresses)),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	for _, a := range u.Addresses {
		doc.Addresses = append(doc.Addresses, fromAddress(a))
	}

	return doc
}

func (d *userDoc) toDomain() (*entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Addresses: make([]entity.Address, 0, len(d.Addresses)),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, a := range d.Addresses {
		user.Addresses = append(user.Addresses, a.toDomain())
	}

	return user, nil
}

func fromProduct(p *entity.Product) *productDoc {
	doc := &productDoc{
		ID:         p.ID.String(),
		Name:       p.Name,
		PricePaise: p.Price.Paise(),
		IsActive:   p.IsActive,
	}
	if len(p.Pricing) > 0 {
		doc.Pricing = make(map[string]int64, len(p.Pricing))
		for size, price := range p.Pricing {
			doc.Pricing[string(size)] = price.Paise()
		}
	}

	return doc
}

func (d *productDoc) toDomain() (*entity.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:       id,
		Name:     d.Name,
		Price:    entity.Money(d.PricePaise),
		IsActive: d.IsActive,
	}
	if len(d.Pricing) > 0 {
		product.Pricing = make(map[entity.Size]entity.Money, len(d.Pricing))
		for size, price := range d.Pricing {
			product.Pricing[entity.Size(size)] = entity.Money(price)
		}
	}

	return product, nil
}

func fromZone(z *entity.DeliveryZone) *zoneDoc {
	return &zoneDoc{
		ID:             z.ZoneID,
		Name:           z.Name,
		Pincodes:       z.Pincodes,
		FixedTimePaise: z.Pricing.FixedTime.Paise(),
		MidnightPaise:  z.Pricing.Midnight.Paise(),
		ExpressPaise:   z.Pricing.Express.Paise(),
		IsActive:       z.IsActive,
	}
}

func (d *zoneDoc) toDomain() *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ZoneID:   d.ID,
		Name:     d.Name,
		Pincodes: d.Pincodes,
		Pricing: entity.DeliveryPricing{
			FixedTime: entity.Money(d.FixedTimePaise),
			Midnight:  entity.Money(d.MidnightPaise),
			Express:   entity.Money(d.ExpressPaise),
		},
		IsActive: d.IsActive,
	}
}

func fromLines(lines []entity.CartLine) []lineDoc {
	docs := make([]lineDoc, 0, len(lines))
	for i := range lines {
		l := &lines[i]
		doc := lineDoc{
			LineID:      l.LineID.String(),
			Kind:        string(l.Kind),
			ProductName: l.ProductName,
			Size:        string(l.Size),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.Paise(),
		}
		if l.ProductID != uuid.Nil {
			doc.ProductID = l.ProductID.String()
		}
		if l.Combo != nil {
			combo := &comboDoc{
				Items:              make([]comboItemDoc, 0, len(l.Combo.Items)),
				Subtotal:           l.Combo.Subtotal.Paise(),
				DiscountPercentage: l.Combo.DiscountPercentage.String(),
				Discount:           l.Combo.Discount.Paise(),
				FinalPrice:         l.Combo.FinalPrice.Paise(),
				DeliveryPincode:    l.Combo.DeliveryPincode,
			}
			for _, item := range l.Combo.Items {
				combo.Items = append(combo.Items, comboItemDoc{
					ProductID:   item.ProductID.String(),
					ProductName: item.ProductName,
					Size:        string(item.Size),
					Color:       item.Color,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice.Paise(),
				})
			}
			doc.Combo = combo
		}
		docs = append(docs, doc)
	}

	return docs
}

func toLines(docs []lineDoc) ([]entity.CartLine, error) {
	lines := make([]entity.CartLine, 0, len(docs))
	for _, doc := range docs {
		lineID, err := uuid.Parse(doc.LineID)
		if err != nil {
			return nil, err
		}
		line := entity.CartLine{
			LineID:      lineID,
			Kind:        entity.LineKind(doc.Kind),
			ProductName: doc.ProductName,
			Size:        entity.Size(doc.Size),
			Quantity:    doc.Quantity,
			UnitPrice:   entity.Money(doc.UnitPrice),
		}
		if doc.ProductID != "" {
			if line.ProductID, err = uuid.Parse(doc.ProductID); err != nil {
				return nil, err
			}
		}
		if doc.Combo != nil {
			pct, err := decimal.NewFromString(doc.Combo.DiscountPercentage)
			if err != nil {
				return nil, err
			}
			combo := &entity.ComboDetails{
				Items:              make([]entity.ComboItem, 0, len(doc.Combo.Items)),
				Subtotal:           entity.Money(doc.Combo.Subtotal),
				DiscountPercentage: pct,
				Discount:           entity.Money(doc.Combo.Discount),
				FinalPrice:         entity.Money(doc.Combo.FinalPrice),
				DeliveryPincode:    doc.Combo.DeliveryPincode,
			}
			for _, item := range doc.Combo.Items {
				productID, err := uuid.Parse(item.ProductID)
				if err != nil {
					return nil, err
				}
				combo.Items = append(combo.Items, entity.ComboItem{
					ProductID:   productID,
					ProductName: item.ProductName,
					Size:        entity.Size(item.Size),
					Color:       item.Color,
					Quantity:    item.Quantity,
					UnitPrice:   entity.Money(item.UnitPrice),
				})
			}
			line.Combo = combo
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (d *cartDoc) toDomain() (*entity.Cart, error) {
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	items, err := toLines(d.Items)
	if err != nil {
		return nil, err
	}

	return &entity.Cart{
		UserID:    userID,
		Items:     items,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func fromOrder(o *entity.Order) *orderDoc {
	doc := &orderDoc{
		ID:              o.ID.String(),
		UserID:          o.UserID.String(),
		CheckoutToken:   o.CheckoutToken,
		Items:           fromLines(o.Items),
		DeliveryAddress: fromAddress(o.DeliveryAddress),
		TotalAmount:     o.TotalAmount.Paise(),
		PaymentMethod:   string(o.PaymentMethod),
		Status:          string(o.Status),
		OrderStatus:     string(o.OrderStatus),
		PaymentInfo:     paymentInfoDoc(o.PaymentInfo),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Delivery != nil {
		doc.Delivery = &deliveryDoc{
			Pincode: o.Delivery.Pincode,
			ZoneID:  o.Delivery.ZoneID,
			Type:    string(o.Delivery.Type),
			SameDay: o.Delivery.SameDay,
			Fee:     o.Delivery.Fee.Paise(),
		}
	}

	return doc
}

func (d *orderDoc) toDomain() (*entity.Order, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	items, err := toLines(d.Items)
	if err != nil {
		return nil, err
	}
	order := &entity.Order{
		ID:              id,
		UserID:          userID,
		CheckoutToken:   d.CheckoutToken,
		Items:           items,
		DeliveryAddress: d.DeliveryAddress.toDomain(),
		TotalAmount:     entity.Money(d.TotalAmount),
		PaymentMethod:   entity.PaymentMethod(d.PaymentMethod),
		Status:          entity.PaymentStatus(d.Status),
		OrderStatus:     entity.FulfillmentStatus(d.OrderStatus),
		PaymentInfo:     entity.PaymentInfo(d.PaymentInfo),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Delivery != nil {
		order.Delivery = &entity.DeliveryCharge{
			Pincode: d.Delivery.Pincode,
			ZoneID:  d.Delivery.ZoneID,
			Type:    entity.DeliveryType(d.Delivery.Type),
			SameDay: d.Delivery.SameDay,
			Fee:     entity.Money(d.Delivery.Fee),
		}
	}

	return order, nil
}
