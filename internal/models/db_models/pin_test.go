package db_models

import "testing"

func TestNormalizePinType(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want PinType
	}{
		{"exact match", "HOTEL", PinTypeHotel},
		{"lowercase", "food", PinTypeFood},
		{"mixed case with spaces", "  Attraction ", PinTypeAttraction},
		{"car", "CAR", PinTypeCar},
		{"pin", "pin", PinTypePin},
		{"unknown falls back to custom", "SPACESHIP", PinTypeCustom},
		{"empty falls back to custom", "", PinTypeCustom},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePinType(tc.in); got != tc.want {
				t.Fatalf("NormalizePinType(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePinIcon(t *testing.T) {
	cases := []struct {
		name    string
		icon    string
		pinType PinType
		want    PinIcon
	}{
		{"explicit icon wins", "CAR", PinTypeHotel, PinIconCar},
		{"no icon uses type", "", PinTypeHotel, PinIconHotel},
		{"no icon with food type", "", PinTypeFood, PinIconFood},
		{"rickshaw maps to pin via fallback table", "RICKSHAW", PinTypeCustom, PinIconPin},
		{"plane maps to pin", "plane", PinTypeAttraction, PinIconPin},
		{"entirely unknown maps to pin", "ZEPPELIN", PinTypeCustom, PinIconPin},
		{"custom type has no icon so pin", "", PinTypeCustom, PinIconPin},
		{"lowercase icon", "hotel", PinTypeFood, PinIconHotel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePinIcon(tc.icon, tc.pinType); got != tc.want {
				t.Fatalf("NormalizePinIcon(%q, %q) = %q, want %q", tc.icon, tc.pinType, got, tc.want)
			}
		})
	}
}
