package razorpay

import (
	"log/slog"

	"florist/config"
	"florist/internal/domain/constants"
	"florist/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the gateway adapters, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func checkProvider(cfg *config.Config) error {
	if cfg.Payment == nil {
		return errors.New("payment configuration is required")
	}
	if cfg.Payment.Provider != "" && cfg.Payment.Provider != constants.PaymentProviderRazorpay {
		return errors.Errorf("unknown payment provider: %s", cfg.Payment.Provider)
	}

	return nil
}

// NewPaymentGateway provides the configured PaymentGateway
func NewPaymentGateway(params Params) (service.PaymentGateway, error) {
	if err := checkProvider(params.Config); err != nil {
		return nil, err
	}

	return NewClient(params.Config.Payment, params.Logger)
}

// NewSignatureVerifier provides the configured SignatureVerifier
func NewSignatureVerifier(params Params) (service.SignatureVerifier, error) {
	if err := checkProvider(params.Config); err != nil {
		return nil, err
	}

	return NewSigner(params.Config.Payment)
}

// Module provides the payment gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway, NewSignatureVerifier),
)
