package convert

import (
	"slices"
	"strings"

	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
)

// Conversion is one row of the formula table.
type Conversion struct {
	Category  Category
	Direction Direction
	From      string // source unit symbol
	To        string // target unit symbol
	Formula   string // human-readable formula in terms of v
	Func      func(float64) float64
}

// Apply runs the conversion formula on v.
func (c Conversion) Apply(v float64) float64 {
	return c.Func(v)
}

// table lists every supported conversion in menu order.
var table = []Conversion{
	{Temperature, C2F, "°C", "°F", "v*1.8 + 32", CelsiusToFahrenheit},
	{Temperature, F2C, "°F", "°C", "(v-32) / 1.8", FahrenheitToCelsius},
	{Distance, Mi2Km, "mi", "km", "v*1.60934", MilesToKilometers},
	{Distance, Km2Mi, "km", "mi", "v / 1.60934", KilometersToMiles},
	{Weight, Lb2Kg, "lb", "kg", "v*0.453592", PoundsToKilograms},
	{Weight, Kg2Lb, "kg", "lb", "v / 0.453592", KilogramsToPounds},
}

// Table returns a copy of the formula table in menu order.
func Table() []Conversion {
	return slices.Clone(table)
}

// Lookup returns the conversion for the given pair. It fails with
// UNKNOWN_CONVERSION when d does not belong to c.
func Lookup(c Category, d Direction) (Conversion, error) {
	for _, conv := range table {
		if conv.Category == c && conv.Direction == d {
			return conv, nil
		}
	}
	return Conversion{}, errors.New(errors.ErrCodeUnknownConversion,
		"no %s conversion named %s", c, d)
}

// ParseCategory resolves a category by name, case-insensitively.
// Prefixes of at least four letters are accepted ("temp", "dist").
func ParseCategory(s string) (Category, error) {
	name := normalizeName(s)
	for _, c := range Categories() {
		if name == c.String() || (len(name) >= 4 && strings.HasPrefix(c.String(), name)) {
			return c, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidCategory,
		"unknown category %q (want temperature, distance or weight)", s)
}

// ParseDirection resolves a direction of category c by its short name
// ("c2f") or long form ("celsius-to-fahrenheit").
func ParseDirection(c Category, s string) (Direction, error) {
	name := normalizeName(s)
	d, ok := directionAliases[name]
	if !ok {
		for dir, short := range directionNames {
			if short == name {
				d, ok = dir, true
				break
			}
		}
	}
	if !ok || d.Category() != c {
		names := make([]string, 0, 2)
		for _, cd := range c.Directions() {
			names = append(names, cd.String())
		}
		return 0, errors.New(errors.ErrCodeInvalidDirection,
			"unknown %s direction %q (want one of %s)", c, s, strings.Join(names, ", "))
	}
	return d, nil
}
