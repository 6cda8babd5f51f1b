// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeviceType classifies a catalog device.
type DeviceType string

const (
	DeviceTypeLaptop     DeviceType = "laptop"
	DeviceTypeSmartphone DeviceType = "smartphone"
	DeviceTypeTablet     DeviceType = "tablet"
	DeviceTypeDesktop    DeviceType = "desktop"
	DeviceTypeMonitor    DeviceType = "monitor"
	DeviceTypeKeyboard   DeviceType = "keyboard"
	DeviceTypeMouse      DeviceType = "mouse"
	DeviceTypePrinter    DeviceType = "printer"
	DeviceTypeOther      DeviceType = "other"
)

// String returns the string representation of the DeviceType.
func (t DeviceType) String() string {
	return string(t)
}

// IsValid checks if the DeviceType is a valid value.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceTypeLaptop, DeviceTypeSmartphone, DeviceTypeTablet, DeviceTypeDesktop,
		DeviceTypeMonitor, DeviceTypeKeyboard, DeviceTypeMouse, DeviceTypePrinter, DeviceTypeOther:
		return true
	default:
		return false
	}
}

// pointDivisor converts an estimated recovery value into points: one point per 10 currency units.
var pointDivisor = decimal.NewFromInt(10)

// co2PerPoint is the CO2 savings attributed to one recycling point, in kilograms.
var co2PerPoint = decimal.New(5, -2) // 0.05

// Device is a catalog entry describing a specific brand/model's recoverable
// metal content and estimated recovery value. The (Brand, ModelName) pair is unique.
type Device struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the device.
	Brand          string          // The manufacturer brand, e.g., "Apple".
	ModelName      string          // The model name, e.g., "iPhone 12 Pro".
	DeviceType     DeviceType      // The device category.
	GoldMg         decimal.Decimal // Gold content in milligrams.
	CopperMg       decimal.Decimal // Copper content in milligrams.
	SilverMg       decimal.Decimal // Silver content in milligrams.
	EstimatedValue decimal.Decimal // Estimated recovery value in INR, never negative.
	CreatedAt      time.Time       // Timestamp of when the catalog entry was created.
	UpdatedAt      time.Time       // Timestamp of the last modification.
}

// PointValue returns the points awarded for recycling this device:
// the estimated value divided by ten, truncated toward zero.
// The value is derived on demand and never stored.
func (d *Device) PointValue() int {
	return int(d.EstimatedValue.Div(pointDivisor).IntPart())
}

// CO2ForPoints returns the exact CO2 savings in kilograms attributed to a
// points-earned amount from one recycle event. Decimal arithmetic keeps
// repeated accruals free of binary floating point drift.
func CO2ForPoints(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points)).Mul(co2PerPoint)
}
