package impl

import (
	"context"
	"math"
	"testing"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/repository"
	mockRepo "florist/internal/mocks/repository"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddSimple_MergesSameProductAndSize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: entity.SizeSmall, Quantity: 1})
	require.NoError(t, err)
	_, err = f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: entity.SizeMedium, Quantity: 1})
	require.NoError(t, err)
	view, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: entity.SizeSmall, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, entity.Rupees(800), view.Items[0].UnitPrice)
	assert.Equal(t, entity.Rupees(800*3+1200), view.Total)
	assert.Equal(t, int64(3), view.Version)
}

func TestCartService_AddSimple_KeepsPriceOfExistingLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 1})
	require.NoError(t, err)

	repriced := *f.rose
	repriced.Price = entity.Rupees(900)
	f.store.PutProduct(&repriced)

	view, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, entity.Rupees(500), view.Items[0].UnitPrice)
	assert.Equal(t, entity.Rupees(1000), view.Total)
}

func TestCartService_AddSimple_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.AddSimpleItemInput
		want  error
	}{
		{name: "zero quantity", input: &usecase.AddSimpleItemInput{ProductID: f.rose.ID}, want: domainerrors.ErrValidationFailed},
		{name: "quantity over line limit", input: &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: entity.MaxLineQuantity + 1}, want: domainerrors.ErrValidationFailed},
		{name: "quantity that would overflow the total", input: &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 200_000_000_000_000}, want: domainerrors.ErrValidationFailed},
		{name: "unknown size", input: &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: "huge", Quantity: 1}, want: domainerrors.ErrValidationFailed},
		{name: "unknown product", input: &usecase.AddSimpleItemInput{ProductID: uuid.New(), Quantity: 1}, want: domainerrors.ErrProductNotFound},
		{name: "inactive product", input: &usecase.AddSimpleItemInput{ProductID: f.lily.ID, Quantity: 1}, want: domainerrors.ErrPricingFailed},
		{name: "size not offered", input: &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: entity.SizeLarge, Quantity: 1}, want: domainerrors.ErrPricingFailed},
		{name: "flat price for sized product", input: &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Quantity: 1}, want: domainerrors.ErrPricingFailed},
		{name: "nil input", input: nil, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.carts.AddSimple(ctx, f.userID, tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	view, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_AddCombo_FreezesDiscountedPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{
		Items: []usecase.ComboItemInput{
			{ProductID: f.rose.ID, Quantity: 1, Color: "red"},
			{ProductID: f.orchid.ID, Size: entity.SizeSmall, Quantity: 1},
		},
		DeliveryPincode: testPincode,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	line := view.Items[0]
	require.NotNil(t, line.Combo)
	assert.Equal(t, entity.LineCombo, line.Kind)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, entity.Rupees(1300), line.Combo.Subtotal)
	assert.True(t, decimal.NewFromInt(20).Equal(line.Combo.DiscountPercentage))
	assert.Equal(t, entity.Rupees(260), line.Combo.Discount)
	assert.Equal(t, entity.Rupees(1040), line.Combo.FinalPrice)
	assert.Equal(t, testPincode, line.Combo.DeliveryPincode)
	assert.Equal(t, "red", line.Combo.Items[0].Color)

	repriced := *f.rose
	repriced.Price = entity.Rupees(5000)
	f.store.PutProduct(&repriced)

	view, err = f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, entity.Rupees(1040), view.Total, "combo price survives catalog changes")
}

func TestCartService_AddCombo_NeverMerges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	input := &usecase.AddComboInput{Items: []usecase.ComboItemInput{{ProductID: f.rose.ID, Quantity: 2}}}

	_, err := f.carts.AddCombo(ctx, f.userID, input)
	require.NoError(t, err)
	view, err := f.carts.AddCombo(ctx, f.userID, input)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.NotEqual(t, view.Items[0].LineID, view.Items[1].LineID)
	assert.Equal(t, entity.Rupees(1600), view.Total)
}

func TestCartService_AddCombo_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{
		Items:           []usecase.ComboItemInput{{ProductID: f.rose.ID, Quantity: 1}},
		DeliveryPincode: "999999",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrZoneNotFound), "got %v", err)

	_, err = f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{
		Items: []usecase.ComboItemInput{{ProductID: f.rose.ID, Quantity: 1}, {ProductID: f.lily.ID, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPricingFailed), "got %v", err)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.orchid.ID, Size: entity.SizeSmall, Quantity: 1})
	require.NoError(t, err)
	_, err = f.carts.AddCombo(ctx, f.userID, &usecase.AddComboInput{Items: []usecase.ComboItemInput{{ProductID: f.rose.ID, Quantity: 1}}})
	require.NoError(t, err)

	view, err := f.carts.UpdateQuantity(ctx, f.userID, &usecase.UpdateQuantityInput{ProductID: f.orchid.ID, Size: entity.SizeSmall, Color: "ignored", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, view.Items[0].Quantity)

	_, err = f.carts.UpdateQuantity(ctx, f.userID, &usecase.UpdateQuantityInput{ProductID: f.orchid.ID, Size: entity.SizeMedium, Quantity: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound), "size must match")

	_, err = f.carts.UpdateQuantity(ctx, f.userID, &usecase.UpdateQuantityInput{ProductID: f.rose.ID, Quantity: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound), "combos are excluded")

	_, err = f.carts.UpdateQuantity(ctx, f.userID, &usecase.UpdateQuantityInput{ProductID: f.orchid.ID, Size: entity.SizeSmall, Quantity: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_RemoveAndRemoveLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fillExampleCart(t)

	view, err := f.carts.Remove(ctx, f.userID, f.rose.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, entity.LineCombo, view.Items[0].Kind, "remove skips combos")

	_, err = f.carts.Remove(ctx, f.userID, f.rose.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	view, err = f.carts.RemoveLine(ctx, f.userID, view.Items[0].LineID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, entity.Money(0), view.Total)

	_, err = f.carts.RemoveLine(ctx, f.userID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_Get_AbsentCartIsEmpty(t *testing.T) {
	f := newFixture(t)

	view, err := f.carts.Get(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, f.userID, view.UserID)
	assert.Empty(t, view.Items)
	assert.Equal(t, int64(0), view.Version)
}

func TestCartService_RetriesVersionConflicts(t *testing.T) {
	carts := mockRepo.NewMockCartRepository(t)
	products := mockRepo.NewMockProductRepository(t)
	zones := mockRepo.NewMockZoneRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    carts,
		ProductRepo: products,
		ZoneRepo:    zones,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Rose", Price: entity.Rupees(500), IsActive: true}

	products.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Once()
	carts.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrCartNotFound).Times(2)
	carts.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(repository.ErrCartVersionConflict).Once()
	carts.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil).Once()

	view, err := service.AddSimple(ctx, userID, &usecase.AddSimpleItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCartService_GivesUpAfterRetries(t *testing.T) {
	carts := mockRepo.NewMockCartRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    carts,
		ProductRepo: mockRepo.NewMockProductRepository(t),
		ZoneRepo:    mockRepo.NewMockZoneRepository(t),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cart := entity.NewCart(userID)
	_, err := cart.AddSimple(&entity.Product{ID: productID}, "", 1, entity.Rupees(100))
	require.NoError(t, err)
	cart.Version = 7

	attempts := cartSaveRetries + 1
	carts.EXPECT().FindByUser(ctx, userID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Cart, error) {
		return cart.Clone(), nil
	}).Times(attempts)
	carts.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(repository.ErrCartVersionConflict).Times(attempts)

	_, err = service.Remove(ctx, userID, productID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartConflict), "got %v", err)
}

func TestCartService_SaveErrorIsNotRetried(t *testing.T) {
	carts := mockRepo.NewMockCartRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    carts,
		ProductRepo: mockRepo.NewMockProductRepository(t),
		ZoneRepo:    mockRepo.NewMockZoneRepository(t),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()
	userID := uuid.New()
	cart := entity.NewCart(userID)
	line := cart.AddCombo(entity.ComboDetails{FinalPrice: entity.Rupees(800)})
	boom := errors.New("connection reset")

	carts.EXPECT().FindByUser(ctx, userID).Return(cart, nil).Once()
	carts.EXPECT().Save(ctx, cart).Return(boom).Once()

	_, err := service.RemoveLine(ctx, userID, line.LineID)
	assert.ErrorIs(t, err, boom)
}

func TestCartService_QuantityMergeIsCapped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: entity.MaxLineQuantity - 1})
	require.NoError(t, err)

	_, err = f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: f.rose.ID, Quantity: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "merge past the limit, got %v", err)

	_, err = f.carts.UpdateQuantity(ctx, f.userID, &usecase.UpdateQuantityInput{ProductID: f.rose.ID, Quantity: entity.MaxLineQuantity + 1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "update past the limit, got %v", err)

	view, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, entity.MaxLineQuantity-1, view.Items[0].Quantity)
	assert.Equal(t, entity.Rupees(500).Paise()*int64(entity.MaxLineQuantity-1), view.Total.Paise())
}

func TestCartService_RejectsTotalsThatOverflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pricey := func(name string) *entity.Product {
		p := &entity.Product{ID: uuid.New(), Name: name, Price: entity.Money(math.MaxInt64 / 3), IsActive: true}
		f.store.PutProduct(p)

		return p
	}
	first, second := pricey("Gilded Rose"), pricey("Gilded Orchid")

	_, err := f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: first.ID, Quantity: 4})
	assert.True(t, errors.Is(err, domainerrors.ErrPricingFailed), "line total overflow, got %v", err)

	_, err = f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: first.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.carts.AddSimple(ctx, f.userID, &usecase.AddSimpleItemInput{ProductID: second.ID, Quantity: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrPricingFailed), "cart total overflow, got %v", err)

	view, err := f.carts.Get(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1, "the overflowing line is not saved")
	assert.Positive(t, view.Total.Paise())
}

func TestCartService_OverflowingCartCannotCheckOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart := entity.NewCart(f.userID)
	huge := entity.Money(math.MaxInt64 / 2)
	for _, name := range []string{"a", "b", "c"} {
		_, err := cart.AddSimple(&entity.Product{ID: uuid.New(), Name: name}, "", 1, huge)
		require.NoError(t, err)
	}
	require.NoError(t, f.cartRepo.Save(ctx, cart))

	_, err := f.orders.Checkout(ctx, f.userID, &usecase.CheckoutInput{Address: testAddress()})
	assert.True(t, errors.Is(err, domainerrors.ErrPricingFailed), "got %v", err)

	orders, err := f.orderRepo.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
