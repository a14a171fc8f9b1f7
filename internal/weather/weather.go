// Package weather derives meteorological quantities from decoded
// temperature and relative-humidity readings.
package weather

import "math"

// Magnus-form saturation vapor pressure constants (Alduchov & Eskridge).
const (
	magnusC1 = 243.04
	magnusC2 = 17.625
)

// DewPoint returns the dew point in degrees Celsius for a temperature in
// degrees Celsius and a relative humidity percentage. Humidity below 1% is
// treated as 1% so the logarithm stays defined; values above 100% clamp
// to 100%.
func DewPoint(tempC, rh float64) float64 {
	h := rh / 100.0
	if h <= 0.01 {
		h = 0.01
	} else if h > 1.0 {
		h = 1.0
	}
	lnh := math.Log(h)
	scaled := tempC * magnusC2 / (tempC + magnusC1)
	return magnusC1 * (lnh + scaled) / (magnusC2 - lnh - scaled)
}

// Bounds holds the empirical validity limits of the heat index regression.
// The NWS table the polynomial was fitted to covers roughly 76..126 degF
// inputs and results below 183.5 degF; outside those the formula has no
// meaning.
type Bounds struct {
	MinTempF float64
	MaxTempF float64
	MaxHeatF float64
}

// DefaultBounds are the limits of the published NWS reference table.
var DefaultBounds = Bounds{MinTempF: 76, MaxTempF: 126, MaxHeatF: 183.5}

// HeatIndex returns the apparent temperature in degrees Fahrenheit for a
// temperature in degrees Fahrenheit and a relative humidity percentage,
// using DefaultBounds. ok is false when the inputs or the result fall
// outside the fitted range.
func HeatIndex(tempF, rh float64) (float64, bool) {
	return DefaultBounds.HeatIndex(tempF, rh)
}

// HeatIndex computes the NWS heat index within the receiver's bounds.
// The cheap linear estimate is used on its own whenever its average with
// the input temperature stays below 80 degF; otherwise the Rothfusz
// regression applies, with the two NWS correction terms for hot-and-dry
// and mild-and-humid conditions.
func (b Bounds) HeatIndex(tempF, rh float64) (float64, bool) {
	rounded := math.Floor(tempF + 0.5)
	if rounded < b.MinTempF || rounded > b.MaxTempF {
		return 0, false
	}
	if rh < 0 || rh > 100 {
		return 0, false
	}

	simple := 0.5 * (tempF + 61.0 + (tempF-68.0)*1.2 + rh*0.094)
	if (simple+tempF)/2 < 80.0 {
		return simple, true
	}

	t2 := tempF * tempF
	rh2 := rh * rh
	hi := -42.379 +
		2.04901523*tempF +
		10.14333127*rh -
		0.22475541*tempF*rh -
		0.00683783*t2 -
		0.05481717*rh2 +
		0.00122874*t2*rh +
		0.00085282*tempF*rh2 -
		0.00000199*t2*rh2

	switch {
	case rh < 13.0 && tempF >= 80.0 && tempF <= 112.0:
		hi -= ((13.0 - rh) / 4.0) * math.Sqrt((17.0-math.Abs(tempF-95.0))/17.0)
	case rh > 85.0 && tempF >= 80.0 && tempF <= 87.0:
		hi += ((rh - 85.0) / 10.0) * ((87.0 - tempF) / 5.0)
	}

	if hi >= b.MaxHeatF {
		return 0, false
	}
	return hi, true
}

// HeatIndexCelsius is HeatIndex with the result converted to degrees
// Celsius. The temperature input stays in degrees Fahrenheit; ok carries
// through unchanged.
func HeatIndexCelsius(tempF, rh float64) (float64, bool) {
	hi, ok := HeatIndex(tempF, rh)
	if !ok {
		return 0, false
	}
	return FahrenheitToCelsius(hi), true
}

// CelsiusToFahrenheit converts a temperature between scales.
func CelsiusToFahrenheit(c float64) float64 { return c*9.0/5.0 + 32.0 }

// FahrenheitToCelsius converts a temperature between scales.
func FahrenheitToCelsius(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }
