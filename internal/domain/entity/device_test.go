package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_PointValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "zero value", value: "0", want: 0},
		{name: "below one point", value: "9.99", want: 0},
		{name: "exact multiple", value: "100", want: 10},
		{name: "truncates toward zero", value: "259.90", want: 25},
		{name: "large value", value: "12500", want: 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			device := &Device{EstimatedValue: decimal.RequireFromString(tt.value)}
			assert.Equal(t, tt.want, device.PointValue())
		})
	}
}

func TestCO2ForPoints_Exact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points int
		want   string
	}{
		{points: 0, want: "0"},
		{points: 3, want: "0.15"},
		{points: 10, want: "0.5"},
		{points: 25, want: "1.25"},
	}

	for _, tt := range tests {
		got := CO2ForPoints(tt.points)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"CO2ForPoints(%d) = %s, want %s", tt.points, got, tt.want)
	}
}

func TestCO2ForPoints_NoDriftOverManyAccruals(t *testing.T) {
	t.Parallel()

	// 1000 accruals of 3 points each must sum to exactly 150 kg.
	total := decimal.Zero
	for range 1000 {
		total = total.Add(CO2ForPoints(3))
	}

	require.True(t, total.Equal(decimal.RequireFromString("150")),
		"accumulated CO2 drifted: %s", total)
}

func TestAccrualFor(t *testing.T) {
	t.Parallel()

	device := &Device{EstimatedValue: decimal.RequireFromString("250")}
	accrual := AccrualFor(device)

	assert.Equal(t, 25, accrual.Points)
	assert.True(t, accrual.CO2SavedKg.Equal(decimal.RequireFromString("1.25")))
}

func TestDeviceType_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, DeviceTypeSmartphone.IsValid())
	assert.True(t, DeviceTypeOther.IsValid())
	assert.False(t, DeviceType("toaster").IsValid())
}
