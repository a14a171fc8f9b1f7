package uplink

// Record holds one decoded telemetry message. A nil field means the
// corresponding flag bit was clear and the message carried no bytes for it.
type Record struct {
	VBat *float64 // battery voltage, V
	VBus *float64 // USB/bus voltage, V
	VSys *float64 // system rail voltage, V

	Version *string // firmware version, "major.minor.patch.local"
	Boot    *uint8  // boot counter, wraps at 256

	TempC *float64 // degrees Celsius
	RH    *float64 // relative humidity, percent

	Lux *float64 // ambient light, lux

	Tap *uint8 // accelerometer tap/event code

	// Derived from TempC and RH when both are present.
	DewPointC  *float64
	HeatIndexC *float64
}

// Fields renders the record as a flat field map. Only fields decoded from
// the message (or derived from them) appear.
func (r *Record) Fields() map[string]any {
	fields := make(map[string]any)
	if r.VBat != nil {
		fields["vBat"] = *r.VBat
	}
	if r.VBus != nil {
		fields["vBus"] = *r.VBus
	}
	if r.VSys != nil {
		fields["vSys"] = *r.VSys
	}
	if r.Version != nil {
		fields["version"] = *r.Version
	}
	if r.Boot != nil {
		fields["boot"] = *r.Boot
	}
	if r.TempC != nil {
		fields["t"] = *r.TempC
	}
	if r.RH != nil {
		fields["rh"] = *r.RH
	}
	if r.Lux != nil {
		fields["lux"] = *r.Lux
	}
	if r.Tap != nil {
		fields["tap"] = *r.Tap
	}
	if r.DewPointC != nil {
		fields["tDewC"] = *r.DewPointC
	}
	if r.HeatIndexC != nil {
		fields["tHeatIndexC"] = *r.HeatIndexC
	}
	return fields
}
