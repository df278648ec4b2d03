package analysis

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fleetFile is the YAML form of a fleet: shared usage plus one entry per
// vehicle line.
type fleetFile struct {
	State         string       `yaml:"state"`
	DailyKm       float64      `yaml:"daily_km"`
	Years         float64      `yaml:"years"`
	UsagePattern  string       `yaml:"usage_pattern"`
	GridIntensity float64      `yaml:"grid_intensity"`
	Vehicles      []FleetEntry `yaml:"vehicles"`
}

// fleetCSVColumns is the required CSV header. daily_km and state may be empty.
//
//nolint:gochecknoglobals // Fixed header layout.
var fleetCSVColumns = []string{"vehicle_id", "count", "daily_km", "state"}

// LoadFleetFile reads a fleet from a .csv file or a YAML file.
func LoadFleetFile(path string) (FleetRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FleetRequest{}, fmt.Errorf("reading fleet file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseFleetCSV(bytes.NewReader(data))
	}
	return ParseFleetYAML(data)
}

// ParseFleetYAML decodes the YAML fleet format.
func ParseFleetYAML(data []byte) (FleetRequest, error) {
	var f fleetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return FleetRequest{}, fmt.Errorf("%w: parsing fleet yaml: %w", ErrInvalidRequest, err)
	}
	return FleetRequest{
		Entries: f.Vehicles,
		Usage: Usage{
			State:         f.State,
			DailyKm:       f.DailyKm,
			Years:         f.Years,
			UsagePattern:  f.UsagePattern,
			GridIntensity: f.GridIntensity,
		},
	}, nil
}

// ParseFleetCSV decodes a headed CSV with the columns vehicle_id, count,
// daily_km and state, in any order.
func ParseFleetCSV(r io.Reader) (FleetRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return FleetRequest{}, fmt.Errorf("%w: reading fleet csv header: %w", ErrInvalidRequest, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range fleetCSVColumns[:2] {
		if _, ok := index[col]; !ok {
			return FleetRequest{}, fmt.Errorf("%w: fleet csv is missing column %q", ErrInvalidRequest, col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var entries []FleetEntry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return FleetRequest{}, fmt.Errorf("%w: fleet csv line %d: %w", ErrInvalidRequest, line, err)
		}

		entry := FleetEntry{
			VehicleID: field(record, "vehicle_id"),
			State:     field(record, "state"),
		}
		if entry.Count, err = strconv.Atoi(field(record, "count")); err != nil {
			return FleetRequest{}, fmt.Errorf("%w: fleet csv line %d: count: %w", ErrInvalidRequest, line, err)
		}
		if raw := field(record, "daily_km"); raw != "" {
			if entry.DailyKm, err = strconv.ParseFloat(raw, 64); err != nil {
				return FleetRequest{}, fmt.Errorf("%w: fleet csv line %d: daily_km: %w", ErrInvalidRequest, line, err)
			}
		}
		entries = append(entries, entry)
	}
	return FleetRequest{Entries: entries}, nil
}
