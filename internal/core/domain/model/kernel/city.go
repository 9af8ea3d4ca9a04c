package kernel

import (
	"strings"

	"agrilink/internal/pkg/errs"
)

// ErrCityNameIsRequired indicates an empty city name.
var ErrCityNameIsRequired = errs.NewValueIsRequiredError("city name")

// cityZones maps well-known market cities to their geopolitical zone.
// Cities missing from the table still form valid City values; they simply
// never count as "same zone" for ranking purposes.
var cityZones = map[string]string{
	"abuja":         "north-central",
	"benin city":    "south-south",
	"calabar":       "south-south",
	"enugu":         "south-east",
	"ibadan":        "south-west",
	"jos":           "north-central",
	"kaduna":        "north-west",
	"kano":          "north-west",
	"lagos":         "south-west",
	"maiduguri":     "north-east",
	"makurdi":       "north-central",
	"onitsha":       "south-east",
	"port harcourt": "south-south",
	"sokoto":        "north-west",
}

// City is a value object naming a market location. Two lots or offers in the
// same city are the cheapest to pair; cities in the same geopolitical zone are
// the next best, and everything else is treated as equally far. That coarse
// 0/1/2 ordering is all the matching ranking needs, so no coordinates or road
// distances are modelled here.
type City struct {
	name string
	zone string
}

// NewCity creates a City from its name. The name must be non-empty; it is
// matched case-insensitively against the zone table, but the original spelling
// is preserved for display and persistence.
func NewCity(name string) (City, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return City{}, ErrCityNameIsRequired
	}

	return City{
		name: trimmed,
		zone: cityZones[strings.ToLower(trimmed)],
	}, nil
}

// Name returns the city's name as provided at construction.
func (c City) Name() string {
	return c.name
}

// Zone returns the city's geopolitical zone, or "" if unknown.
func (c City) Zone() string {
	return c.zone
}

// IsEqual compares two cities by case-insensitive name.
func (c City) IsEqual(other City) bool {
	return strings.EqualFold(c.name, other.name)
}

// DistanceProxy returns the coarse distance ranking between two cities:
// 0 for the same city, 1 for distinct cities in the same zone, 2 otherwise.
func (c City) DistanceProxy(other City) int {
	if c.IsEqual(other) {
		return 0
	}
	if c.zone != "" && c.zone == other.zone {
		return 1
	}
	return 2
}

// Validate checks that the City was built through NewCity.
func (c City) Validate() error {
	if c.name == "" {
		return ErrCityNameIsRequired
	}
	return nil
}
