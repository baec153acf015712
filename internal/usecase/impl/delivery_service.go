package impl

import (
	"context"

	"florist/internal/domain/entity"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/pricing"
	"florist/internal/domain/repository"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deliveryService struct {
	cartRepo repository.CartRepository
	zoneRepo repository.ZoneRepository
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	ZoneRepo repository.ZoneRepository
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		cartRepo: params.CartRepo,
		zoneRepo: params.ZoneRepo,
	}
}

// Quote prices delivery for the current cart the same way checkout will
func (s *deliveryService) Quote(ctx context.Context, userID uuid.UUID, input *usecase.DeliveryQuoteInput) (*usecase.DeliveryQuote, error) {
	if input == nil || input.Pincode == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("pincode is required")
	}
	if !input.Type.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown delivery type %q", input.Type)
	}

	zone, err := s.zoneRepo.FindByPincode(ctx, input.Pincode)
	if err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return nil, domainerrors.ErrZoneNotFound.WrapMessage("no active zone serves pincode " + input.Pincode)
		}

		return nil, errors.Wrap(err, "failed to find delivery zone")
	}

	var subtotal entity.Money
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	switch {
	case err == nil:
		if subtotal, err = cart.Total(); err != nil {
			return nil, err
		}
	case !errors.Is(err, repository.ErrCartNotFound):
		return nil, errors.Wrap(err, "failed to find cart")
	}

	fee, err := pricing.ResolveDeliveryFee(zone, input.Type, subtotal, input.SameDay)
	if err != nil {
		return nil, err
	}

	return &usecase.DeliveryQuote{
		Pincode:      input.Pincode,
		ZoneID:       zone.ZoneID,
		ZoneName:     zone.Name,
		Type:         input.Type,
		SameDay:      input.SameDay,
		CartSubtotal: subtotal,
		Threshold:    pricing.FreeDeliveryThreshold(input.SameDay),
		Fee:          fee,
		FreeDelivery: fee == 0,
	}, nil
}
