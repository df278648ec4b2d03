// Package pagination provides paging and sorting for CLI listings.
//
// It contains:
//   - Params: --limit/--offset and --page/--page-size parsing and validation
//   - Meta: paging metadata included in JSON listings
//   - VehicleSorter: field-validated stable sorting of catalog vehicles
//
// Offset-based and page-based modes are mutually exclusive.
package pagination
