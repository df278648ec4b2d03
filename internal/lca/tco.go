package lca

import "fmt"

// TCOInput is the usage and price context for a cost of ownership calculation.
type TCOInput struct {
	DailyKm float64
	Years   float64

	// FuelPrice is rupees per litre (or per kg for CNG).
	FuelPrice float64

	// ElectricityPrice is rupees per kWh.
	ElectricityPrice float64
}

// CalculateTCO returns purchase, energy, insurance and maintenance costs over
// the ownership period.
//
// Energy cost follows the same split as the operational model: electricity
// is scaled by ChargingLossFactor and a hybrid drives HybridElectricFraction
// of its distance on battery at a HybridEfficiencyPenalty-scaled efficiency.
// The caller supplies prices; the engine never defaults them.
func CalculateTCO(vehicle VehicleProfile, in TCOInput) (TCOResult, error) {
	if err := requirePositive("daily km", in.DailyKm); err != nil {
		return TCOResult{}, err
	}
	if err := requirePositive("years", in.Years); err != nil {
		return TCOResult{}, err
	}
	if err := requirePositive("efficiency", vehicle.MIDCEfficiency); err != nil {
		return TCOResult{}, err
	}
	if err := requireNonNegative("fuel price", in.FuelPrice); err != nil {
		return TCOResult{}, err
	}
	if err := requireNonNegative("electricity price", in.ElectricityPrice); err != nil {
		return TCOResult{}, err
	}

	distance := TotalDistanceKm(in.DailyKm, in.Years)
	eff := vehicle.MIDCEfficiency

	var energy float64
	switch vehicle.FuelType {
	case FuelPetrol, FuelDiesel, FuelCNG:
		energy = distance / eff * in.FuelPrice
	case FuelElectric:
		energy = distance / eff * in.ElectricityPrice * ChargingLossFactor
	case FuelHybrid:
		petrol := (1 - HybridElectricFraction) * distance / eff * in.FuelPrice
		electric := HybridElectricFraction * distance / (eff * HybridEfficiencyPenalty) *
			in.ElectricityPrice * ChargingLossFactor
		energy = petrol + electric
	default:
		return TCOResult{}, fmt.Errorf("%w: %s", ErrUnknownFuelType, vehicle.FuelType)
	}

	maintenancePerYear := CombustionMaintenancePerYear
	if vehicle.FuelType == FuelElectric {
		maintenancePerYear = ElectricMaintenancePerYear
	}

	purchase := vehicle.PurchasePrice()
	insurance := purchase * InsuranceRatePerYear * in.Years
	maintenance := maintenancePerYear * in.Years
	total := purchase + energy + insurance + maintenance

	return TCOResult{
		PurchaseCost:    roundInt(purchase),
		FuelCost:        roundInt(energy),
		InsuranceCost:   roundInt(insurance),
		MaintenanceCost: roundInt(maintenance),
		TotalCost:       roundInt(total),
		CostPerKm:       roundTo(total/distance, costPerKmDecimal),
		TotalDistanceKm: distance,
	}, nil
}
