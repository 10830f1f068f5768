package convert

import "strings"

// Category is a measurement domain offered by the top-level menu.
type Category int

const (
	Temperature Category = iota + 1
	Distance
	Weight
)

// Categories returns all categories in menu order.
func Categories() []Category {
	return []Category{Temperature, Distance, Weight}
}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case Distance:
		return "distance"
	case Weight:
		return "weight"
	default:
		return "unknown"
	}
}

// Title returns the category name as shown in the menu.
func (c Category) Title() string {
	switch c {
	case Temperature:
		return "Temperature"
	case Distance:
		return "Distance"
	case Weight:
		return "Weight"
	default:
		return "Unknown"
	}
}

// Directions returns the two directions of c in menu order, or nil for an
// unknown category.
func (c Category) Directions() []Direction {
	switch c {
	case Temperature:
		return []Direction{C2F, F2C}
	case Distance:
		return []Direction{Mi2Km, Km2Mi}
	case Weight:
		return []Direction{Lb2Kg, Kg2Lb}
	default:
		return nil
	}
}

// Direction is an ordered pair of units within one category.
type Direction int

// Directions are named after their command-line spelling; the formula
// functions carry the long names.
const (
	C2F Direction = iota + 1
	F2C
	Mi2Km
	Km2Mi
	Lb2Kg
	Kg2Lb
)

var directionNames = map[Direction]string{
	C2F:   "c2f",
	F2C:   "f2c",
	Mi2Km: "mi2km",
	Km2Mi: "km2mi",
	Lb2Kg: "lb2kg",
	Kg2Lb: "kg2lb",
}

var directionLabels = map[Direction]string{
	C2F:   "C to F",
	F2C:   "F to C",
	Mi2Km: "Miles to KM",
	Km2Mi: "KM to Miles",
	Lb2Kg: "LBS to KG",
	Kg2Lb: "KG to LBS",
}

// Long-form aliases accepted by ParseDirection.
var directionAliases = map[string]Direction{
	"celsius-to-fahrenheit": C2F,
	"fahrenheit-to-celsius": F2C,
	"miles-to-kilometers":   Mi2Km,
	"kilometers-to-miles":   Km2Mi,
	"pounds-to-kilograms":   Lb2Kg,
	"kilograms-to-pounds":   Kg2Lb,
}

// String returns the short direction name used on the command line (e.g. "c2f").
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "unknown"
}

// Label returns the menu label (e.g. "C to F").
func (d Direction) Label() string {
	if s, ok := directionLabels[d]; ok {
		return s
	}
	return "Unknown"
}

// Category returns the category d belongs to, or 0 for an unknown direction.
func (d Direction) Category() Category {
	for _, c := range Categories() {
		for _, cd := range c.Directions() {
			if cd == d {
				return c
			}
		}
	}
	return 0
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}
