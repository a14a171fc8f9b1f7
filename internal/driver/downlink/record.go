package downlink

import "encoding/hex"

// Record holds one decoded command response. Optional fields stay nil when
// the response did not carry them, or carried values outside the mapped
// ranges.
type Record struct {
	Command Command

	Status *string // "Success", "Invalid Length" or "Failure"

	// Device version response only.
	AppVersion *string // firmware version, "major.minor.patch.local"
	Model      *uint16
	Revision   *string // hardware revision letter "A".."E"

	// Uplink interval response only.
	IntervalSec *uint32

	// Application response only; raw, undecoded.
	Payload []byte
}

// Fields renders the record as a flat field map.
func (r *Record) Fields() map[string]any {
	fields := map[string]any{
		"ResponseType": r.Command.String(),
	}
	if r.Status != nil {
		fields["Response"] = *r.Status
	}
	if r.AppVersion != nil {
		fields["AppVersion"] = *r.AppVersion
	}
	if r.Model != nil {
		fields["Model"] = *r.Model
	}
	if r.Revision != nil {
		fields["Rev"] = *r.Revision
	}
	if r.IntervalSec != nil {
		fields["UplinkInterval"] = *r.IntervalSec
	}
	if len(r.Payload) > 0 {
		fields["Payload"] = hex.EncodeToString(r.Payload)
	}
	return fields
}
