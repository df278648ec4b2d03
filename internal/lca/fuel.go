package lca

import (
	"fmt"
	"strings"
)

// FuelType identifies a vehicle's propulsion type. The set is closed: every
// switch over FuelType ends in a default that reports ErrUnknownFuelType.
type FuelType int

const (
	// FuelPetrol burns petrol; efficiency in km/L.
	FuelPetrol FuelType = iota + 1

	// FuelDiesel burns diesel; efficiency in km/L.
	FuelDiesel

	// FuelCNG burns compressed natural gas; efficiency in km/kg.
	FuelCNG

	// FuelElectric is a battery electric vehicle; efficiency in km/kWh.
	FuelElectric

	// FuelHybrid blends a petrol engine with a battery; efficiency in km/L.
	FuelHybrid
)

// String returns the canonical upper-case name of the fuel type.
func (f FuelType) String() string {
	switch f {
	case FuelPetrol:
		return "PETROL"
	case FuelDiesel:
		return "DIESEL"
	case FuelCNG:
		return "CNG"
	case FuelElectric:
		return "ELECTRIC"
	case FuelHybrid:
		return "HYBRID"
	default:
		return fmt.Sprintf("FuelType(%d)", f)
	}
}

// EfficiencyUnit returns the unit the MIDC efficiency figure is quoted in.
func (f FuelType) EfficiencyUnit() string {
	switch f {
	case FuelPetrol, FuelDiesel, FuelHybrid:
		return "km/L"
	case FuelCNG:
		return "km/kg"
	case FuelElectric:
		return "km/kWh"
	default:
		return ""
	}
}

// IsCombustion reports whether the fuel type has no grid-charged component.
func (f FuelType) IsCombustion() bool {
	return f == FuelPetrol || f == FuelDiesel || f == FuelCNG
}

// Valid reports whether f is one of the five recognized fuel types.
func (f FuelType) Valid() bool {
	return f >= FuelPetrol && f <= FuelHybrid
}

// FuelTypes returns every recognized fuel type in declaration order.
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelCNG, FuelElectric, FuelHybrid}
}

// ParseFuelType converts a name such as "ELECTRIC" (case-insensitive) into a
// FuelType. Unrecognized names return ErrUnknownFuelType.
func ParseFuelType(s string) (FuelType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, f := range FuelTypes() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFuelType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FuelType) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFuelType, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FuelType) UnmarshalText(text []byte) error {
	parsed, err := ParseFuelType(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UsagePattern describes how a vehicle is driven relative to the MIDC cycle.
// The zero value is UsageMixed.
type UsagePattern int

const (
	// UsageMixed matches the MIDC blend.
	UsageMixed UsagePattern = iota

	// UsageCity is stop-and-go driving.
	UsageCity

	// UsageHighway is sustained cruising.
	UsageHighway
)

// String returns the canonical upper-case name of the usage pattern.
func (u UsagePattern) String() string {
	switch u {
	case UsageMixed:
		return "MIXED"
	case UsageCity:
		return "CITY"
	case UsageHighway:
		return "HIGHWAY"
	default:
		return fmt.Sprintf("UsagePattern(%d)", u)
	}
}

// Multiplier returns the adjustment applied to the per-km operational rate.
func (u UsagePattern) Multiplier() (float64, error) {
	switch u {
	case UsageMixed:
		return MixedMultiplier, nil
	case UsageCity:
		return CityMultiplier, nil
	case UsageHighway:
		return HighwayMultiplier, nil
	default:
		return 0, fmt.Errorf("%w: usage pattern %d", ErrInvalidInput, int(u))
	}
}

// ParseUsagePattern converts "CITY", "HIGHWAY" or "MIXED" (case-insensitive)
// into a UsagePattern. An empty string yields UsageMixed.
func ParseUsagePattern(s string) (UsagePattern, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "MIXED":
		return UsageMixed, nil
	case "CITY":
		return UsageCity, nil
	case "HIGHWAY":
		return UsageHighway, nil
	default:
		return 0, fmt.Errorf("%w: usage pattern %q", ErrInvalidInput, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u UsagePattern) MarshalText() ([]byte, error) {
	if _, err := u.Multiplier(); err != nil {
		return nil, err
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UsagePattern) UnmarshalText(text []byte) error {
	parsed, err := ParseUsagePattern(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
