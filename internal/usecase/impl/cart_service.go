package impl

import (
	"context"
	"log/slog"

	"florist/config"
	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/pricing"
	"florist/internal/domain/repository"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartSaveRetries is how many times a write is retried after a version conflict.
const cartSaveRetries = 3

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	zoneRepo    repository.ZoneRepository
	discountPct decimal.Decimal
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	ZoneRepo    repository.ZoneRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	discount := decimal.NewFromInt(pricing.DefaultComboDiscountPercentage)
	if params.Config != nil && params.Config.Pricing != nil && params.Config.Pricing.ComboDiscountPercentage > 0 {
		discount = decimal.NewFromFloat(params.Config.Pricing.ComboDiscountPercentage)
	}

	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		zoneRepo:    params.ZoneRepo,
		discountPct: discount,
		logger:      params.Logger,
	}
}

// AddSimple adds qty units of a product, merging into an existing line of the same size
func (s *cartService) AddSimple(ctx context.Context, userID uuid.UUID, input *usecase.AddSimpleItemInput) (*usecase.CartView, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}
	if !input.Size.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown size %q", input.Size)
	}
	if input.Quantity < 1 || input.Quantity > entity.MaxLineQuantity {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "quantity must be between 1 and %d", entity.MaxLineQuantity)
	}

	product, err := s.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	unitPrice, _, err := pricing.PriceSimpleItem(product, input.Size, input.Quantity)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(cart *entity.Cart) error {
		_, err := cart.AddSimple(product, input.Size, input.Quantity, unitPrice)

		return err
	})
}

// AddCombo prices a bundle once and appends it as a single line
func (s *cartService) AddCombo(ctx context.Context, userID uuid.UUID, input *usecase.AddComboInput) (*usecase.CartView, error) {
	if input == nil || len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("combo requires at least one item")
	}

	if input.DeliveryPincode != "" {
		if _, err := s.zoneRepo.FindByPincode(ctx, input.DeliveryPincode); err != nil {
			if errors.Is(err, repository.ErrZoneNotFound) {
				return nil, domainerrors.ErrZoneNotFound.WrapMessage("no active zone serves pincode " + input.DeliveryPincode)
			}

			return nil, errors.Wrap(err, "failed to find delivery zone")
		}
	}

	picks := make([]pricing.ComboPick, 0, len(input.Items))
	for _, item := range input.Items {
		if !item.Size.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown size %q", item.Size)
		}
		product, err := s.findProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		picks = append(picks, pricing.ComboPick{
			Product:  product,
			Size:     item.Size,
			Color:    item.Color,
			Quantity: item.Quantity,
		})
	}

	details, err := pricing.PriceCombo(picks, s.discountPct)
	if err != nil {
		return nil, err
	}
	details.DeliveryPincode = input.DeliveryPincode

	return s.mutate(ctx, userID, func(cart *entity.Cart) error {
		cart.AddCombo(details)

		return nil
	})
}

// UpdateQuantity sets the quantity of a simple line; color is ignored
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, input *usecase.UpdateQuantityInput) (*usecase.CartView, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}
	if input.Quantity < 1 || input.Quantity > entity.MaxLineQuantity {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "quantity must be between 1 and %d", entity.MaxLineQuantity)
	}

	return s.mutate(ctx, userID, func(cart *entity.Cart) error {
		found, err := cart.UpdateQuantity(input.ProductID, input.Size, input.Quantity)
		if err != nil {
			return err
		}
		if !found {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no matching item for product " + input.ProductID.String())
		}

		return nil
	})
}

// Remove drops the first simple line for a product
func (s *cartService) Remove(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartView, error) {
	return s.mutate(ctx, userID, func(cart *entity.Cart) error {
		if !cart.Remove(productID) {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no item for product " + productID.String())
		}

		return nil
	})
}

// RemoveLine drops any line, simple or combo, by its line id
func (s *cartService) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) (*usecase.CartView, error) {
	return s.mutate(ctx, userID, func(cart *entity.Cart) error {
		if !cart.RemoveLine(lineID) {
			return domainerrors.ErrCartItemNotFound.WrapMessage("no cart line " + lineID.String())
		}

		return nil
	})
}

// Get returns the user's cart; an absent cart reads as empty
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return usecase.NewCartView(userID, cart)
}

// mutate reloads and re-applies change until the versioned save succeeds
func (s *cartService) mutate(ctx context.Context, userID uuid.UUID, change func(cart *entity.Cart) error) (*usecase.CartView, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for attempt := 0; attempt <= cartSaveRetries; attempt++ {
		cart, err := s.loadCart(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := change(cart); err != nil {
			return nil, err
		}
		view, err := usecase.NewCartView(userID, cart)
		if err != nil {
			return nil, err
		}

		err = s.cartRepo.Save(ctx, cart)
		if err == nil {
			return view, nil
		}
		if !errors.Is(err, repository.ErrCartVersionConflict) {
			return nil, errors.Wrap(err, "failed to save cart")
		}
		logger.Debug("Cart version conflict, retrying",
			slog.String("userID", userID.String()),
			slog.Int("attempt", attempt+1),
		)
	}

	logger.Warn("Cart write gave up after version conflicts", slog.String("userID", userID.String()))

	return nil, domainerrors.ErrCartConflict.WrapMessage("cart changed concurrently")
}

func (s *cartService) loadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return entity.NewCart(userID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func (s *cartService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product " + productID.String() + " not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
