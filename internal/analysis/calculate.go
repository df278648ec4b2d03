package analysis

import (
	"context"
	"fmt"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/greenops"
	"github.com/rshade/carbonwise/internal/lca"
)

// CalculateRequest asks for the lifecycle footprint of one catalog vehicle.
type CalculateRequest struct {
	VehicleID string `json:"vehicle_id"`
	Usage
}

// CalculateResponse is a single-vehicle lifecycle report.
type CalculateResponse struct {
	Vehicle        catalog.Vehicle            `json:"vehicle"`
	Grid           GridContext                `json:"grid"`
	Emissions      lca.EmissionsResult        `json:"emissions"`
	Equivalency    greenops.EquivalencyOutput `json:"equivalency"`
	GreenwashFlags []lca.GreenwashFlag        `json:"greenwash_flags"`
}

// Calculate evaluates one vehicle.
func (s *Service) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error) {
	logger := operationLogger(ctx, "Calculate")

	vehicle, err := s.catalog.Vehicle(req.VehicleID)
	if err != nil {
		return nil, err
	}
	usage, err := s.resolveUsage(logger, req.Usage)
	if err != nil {
		return nil, err
	}

	emissions, err := lca.CalculateLifecycleEmissions(vehicle.Profile(), usage.profile())
	if err != nil {
		return nil, fmt.Errorf("calculating %s: %w", vehicle.ID, err)
	}

	equivalency, err := greenops.Calculate(float64(emissions.TotalKg))
	if err != nil {
		logger.Debug().Err(err).Msg("equivalency unavailable")
	}

	logger.Debug().
		Str("vehicle_id", vehicle.ID).
		Int64("total_kg", emissions.TotalKg).
		Str("grid_source", usage.grid.Source).
		Msg("lifecycle emissions calculated")

	return &CalculateResponse{
		Vehicle:        vehicle,
		Grid:           usage.grid,
		Emissions:      emissions,
		Equivalency:    equivalency,
		GreenwashFlags: lca.DetectGreenwashFlags(vehicle.Profile(), usage.grid.Intensity),
	}, nil
}

// AuditRequest asks for the greenwashing audit of one vehicle.
type AuditRequest struct {
	VehicleID     string  `json:"vehicle_id"`
	State         string  `json:"state,omitempty"`
	GridIntensity float64 `json:"grid_intensity,omitempty"`
}

// AuditResponse lists the flags raised for a vehicle on a grid.
type AuditResponse struct {
	Vehicle        catalog.Vehicle     `json:"vehicle"`
	Grid           GridContext         `json:"grid"`
	GreenwashFlags []lca.GreenwashFlag `json:"greenwash_flags"`
}

// Audit runs the greenwashing rules for one vehicle.
func (s *Service) Audit(ctx context.Context, req AuditRequest) (*AuditResponse, error) {
	logger := operationLogger(ctx, "Audit")

	vehicle, err := s.catalog.Vehicle(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if req.GridIntensity < 0 {
		return nil, fmt.Errorf("%w: grid intensity must not be negative", ErrInvalidRequest)
	}
	grid := s.resolveGrid(logger, req.State, req.GridIntensity)
	flags := lca.DetectGreenwashFlags(vehicle.Profile(), grid.Intensity)

	logger.Debug().Str("vehicle_id", vehicle.ID).Int("flags", len(flags)).Msg("audit complete")

	return &AuditResponse{Vehicle: vehicle, Grid: grid, GreenwashFlags: flags}, nil
}

// TCORequest asks for the cost of ownership of one vehicle. Zero prices are
// looked up in the catalog for the state, then taken from the defaults.
type TCORequest struct {
	VehicleID        string  `json:"vehicle_id"`
	State            string  `json:"state,omitempty"`
	DailyKm          float64 `json:"daily_km,omitempty"`
	Years            float64 `json:"years,omitempty"`
	FuelPrice        float64 `json:"fuel_price,omitempty"`
	ElectricityPrice float64 `json:"electricity_price,omitempty"`
}

// TCOResponse is a cost of ownership report.
type TCOResponse struct {
	Vehicle          catalog.Vehicle `json:"vehicle"`
	State            string          `json:"state,omitempty"`
	FuelPrice        float64         `json:"fuel_price"`
	ElectricityPrice float64         `json:"electricity_price"`
	TCO              lca.TCOResult   `json:"tco"`
}

// TCO computes the cost of ownership of one vehicle.
func (s *Service) TCO(ctx context.Context, req TCORequest) (*TCOResponse, error) {
	logger := operationLogger(ctx, "TCO")

	vehicle, err := s.catalog.Vehicle(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if req.FuelPrice < 0 || req.ElectricityPrice < 0 {
		return nil, fmt.Errorf("%w: prices must not be negative", ErrInvalidRequest)
	}

	fuel, electricity := s.energyPrices(vehicle, req.State)
	if req.FuelPrice > 0 {
		fuel = req.FuelPrice
	}
	if req.ElectricityPrice > 0 {
		electricity = req.ElectricityPrice
	}

	tco, err := lca.CalculateTCO(vehicle.Profile(), lca.TCOInput{
		DailyKm:          orDefault(req.DailyKm, s.defaults.DailyKm),
		Years:            orDefault(req.Years, s.defaults.Years),
		FuelPrice:        fuel,
		ElectricityPrice: electricity,
	})
	if err != nil {
		return nil, fmt.Errorf("calculating cost of %s: %w", vehicle.ID, err)
	}

	logger.Debug().Str("vehicle_id", vehicle.ID).Int64("total_cost", tco.TotalCost).Msg("cost of ownership calculated")

	return &TCOResponse{
		Vehicle:          vehicle,
		State:            req.State,
		FuelPrice:        fuel,
		ElectricityPrice: electricity,
		TCO:              tco,
	}, nil
}
