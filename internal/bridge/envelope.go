package bridge

import "time"

// UplinkEnvelope is the subset of the TTN v3 application-server uplink
// message the bridge needs: device identity, port, and the raw payload.
// frm_payload arrives base64-encoded and unmarshals straight into bytes.
type UplinkEnvelope struct {
	EndDeviceIDs  EndDeviceIDs  `json:"end_device_ids"`
	ReceivedAt    time.Time     `json:"received_at"`
	UplinkMessage UplinkMessage `json:"uplink_message"`
}

// EndDeviceIDs identifies the transmitting device.
type EndDeviceIDs struct {
	DeviceID       string         `json:"device_id"`
	ApplicationIDs ApplicationIDs `json:"application_ids"`
	DevEUI         string         `json:"dev_eui"`
}

// ApplicationIDs identifies the owning application.
type ApplicationIDs struct {
	ApplicationID string `json:"application_id"`
}

// UplinkMessage carries the transmission itself.
type UplinkMessage struct {
	FPort      uint8     `json:"f_port"`
	FCnt       uint32    `json:"f_cnt"`
	FRMPayload []byte    `json:"frm_payload"`
	ReceivedAt time.Time `json:"received_at"`
}

// DecodedRecord is the outbound message the bridge publishes for every
// successfully decoded uplink.
type DecodedRecord struct {
	DeviceID   string         `json:"device_id"`
	DevEUI     string         `json:"dev_eui,omitempty"`
	Port       uint8          `json:"port"`
	FCnt       uint32         `json:"f_cnt"`
	ReceivedAt time.Time      `json:"received_at"`
	Driver     string         `json:"driver"`
	Fields     map[string]any `json:"fields"`
}
