package repository

import (
	"testing"

	"ecycle/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func facilityIn(city, pincode string) *entity.Facility {
	return &entity.Facility{Name: "EcoDrop", City: city, Pincode: pincode}
}

func TestFacilityFilter_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   FacilityFilter
		facility *entity.Facility
		want     bool
	}{
		{
			name:     "zero filter matches everything",
			filter:   FacilityFilter{},
			facility: facilityIn("Pune", "411001"),
			want:     true,
		},
		{
			name:     "city mode case-insensitive substring",
			filter:   FacilityFilter{Mode: FacilitySearchCity, Query: "pune"},
			facility: facilityIn("Pune", "411001"),
			want:     true,
		},
		{
			name:     "city mode rejects other cities",
			filter:   FacilityFilter{Mode: FacilitySearchCity, Query: "pune"},
			facility: facilityIn("Mumbai", "400001"),
			want:     false,
		},
		{
			name:     "mode with empty query is a no-op filter",
			filter:   FacilityFilter{Mode: FacilitySearchCity, Query: ""},
			facility: facilityIn("Mumbai", "400001"),
			want:     true,
		},
		{
			name:     "pincode mode substring",
			filter:   FacilityFilter{Mode: FacilitySearchPincode, Query: "4110"},
			facility: facilityIn("Pune", "411001"),
			want:     true,
		},
		{
			name:     "feed params are ANDed",
			filter:   FacilityFilter{City: "pune", Pincode: "400"},
			facility: facilityIn("Pune", "411001"),
			want:     false,
		},
		{
			name:     "feed params both matching",
			filter:   FacilityFilter{City: "pun", Pincode: "411"},
			facility: facilityIn("Pune", "411001"),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.filter.Matches(tt.facility))
		})
	}
}

func TestFacilitySearchMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, FacilitySearchAll.IsValid())
	assert.True(t, FacilitySearchCity.IsValid())
	assert.True(t, FacilitySearchPincode.IsValid())
	assert.False(t, FacilitySearchMode("state").IsValid())
}
