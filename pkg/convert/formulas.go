package convert

const (
	fahrenheitScale   = 1.8
	fahrenheitOffset  = 32
	kilometersPerMile = 1.60934
	kilogramsPerPound = 0.453592
)

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(v float64) float64 {
	return v*fahrenheitScale + fahrenheitOffset
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(v float64) float64 {
	return (v - fahrenheitOffset) / fahrenheitScale
}

// MilesToKilometers converts miles to kilometers.
func MilesToKilometers(v float64) float64 {
	return v * kilometersPerMile
}

// KilometersToMiles converts kilometers to miles.
func KilometersToMiles(v float64) float64 {
	return v / kilometersPerMile
}

// PoundsToKilograms converts pounds to kilograms.
func PoundsToKilograms(v float64) float64 {
	return v * kilogramsPerPound
}

// KilogramsToPounds converts kilograms to pounds.
func KilogramsToPounds(v float64) float64 {
	return v / kilogramsPerPound
}
