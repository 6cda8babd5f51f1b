package usecase

import (
	"context"

	"ecycle/internal/domain/entity"
)

// EstimateInput carries the estimator page's lookup form.
type EstimateInput struct {
	Brand string
	Model string
}

// EstimateOutput reports the matched device and its derived rewards.
type EstimateOutput struct {
	Device     *entity.Device
	Points     int
	CO2SavedKg string // formatted decimal, e.g. "1.25"
}

// EstimateUsecase defines the device value estimation operation.
type EstimateUsecase interface {
	// Estimate normalizes the brand and model inputs and looks up the catalog.
	// A miss returns ErrDeviceNotFound for the page to render as a friendly message.
	Estimate(ctx context.Context, input EstimateInput) (*EstimateOutput, error)
}
