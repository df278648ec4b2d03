package lca

// Shared vehicle fixtures for engine tests.

func nexonEV() VehicleProfile {
	return VehicleProfile{
		Make:                     "Tata",
		Model:                    "Nexon EV",
		FuelType:                 FuelElectric,
		MIDCEfficiency:           6,
		BatteryCapacityKWh:       30,
		KerbWeightKg:             1400,
		ManufacturingEmissionsKg: 7000,
		HasRecyclingProgram:      true,
		PriceLakh:                15,
		DataSource:               "Manufacturer (MIDC)",
	}
}

func swiftPetrol() VehicleProfile {
	return VehicleProfile{
		Make:           "Maruti Suzuki",
		Model:          "Swift",
		FuelType:       FuelPetrol,
		MIDCEfficiency: 18,
		KerbWeightKg:   900,
		PriceLakh:      7,
		DataSource:     "ARAI (MIDC)",
	}
}

func mixedUsage(grid float64) UsageProfile {
	return UsageProfile{DailyKm: 40, Years: 8, Pattern: UsageMixed, GridIntensity: grid}
}
