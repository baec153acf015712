package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	"florist/internal/domain/service"

	"github.com/google/uuid"
)

const eventPublishTimeout = 5 * time.Second

// orderEventPublisher publishes lifecycle events best-effort: failures are logged, never returned.
type orderEventPublisher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newOrderEvent(eventType service.OrderEventType, order *entity.Order, requestID string) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		RequestID:   requestID,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		Status:      string(order.Status),
		OrderStatus: string(order.OrderStatus),
		AmountPaise: order.AmountDue().Paise(),
		OccurredAt:  time.Now().UTC(),
	}
}

func (p *orderEventPublisher) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	if p.publisher == nil || order == nil {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	// The request may already be finished; the event must still go out.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	event := newOrderEvent(eventType, order, deliverycontext.GetRequestIDFromContext(ctx))
	if err := p.publisher.PublishOrderEvent(publishCtx, event); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("eventType", string(eventType)),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
