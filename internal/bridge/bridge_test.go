package bridge

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const sampleUplink = `{
  "end_device_ids": {
    "device_id": "catena-5230-office",
    "application_ids": {"application_id": "environment-monitor"},
    "dev_eui": "0004A30B001C0530"
  },
  "received_at": "2024-05-14T09:30:12.345Z",
  "uplink_message": {
    "f_port": 1,
    "f_cnt": 118,
    "frm_payload": "FT88AFAANAABAgMEKhmAgABI9AAB",
    "received_at": "2024-05-14T09:30:12.101Z"
  }
}`

func testBridge() *Bridge {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(DefaultConfig(), log)
}

func TestDecodeEnvelope(t *testing.T) {
	rec, err := testBridge().DecodeEnvelope([]byte(sampleUplink))
	require.NoError(t, err)
	require.Equal(t, "catena-5230-office", rec.DeviceID)
	require.Equal(t, "0004A30B001C0530", rec.DevEUI)
	require.EqualValues(t, 1, rec.Port)
	require.EqualValues(t, 118, rec.FCnt)
	require.Equal(t, "telemetry", rec.Driver)
	require.Equal(t, "2024-05-14T09:30:12.101Z", rec.ReceivedAt.Format("2006-01-02T15:04:05.000Z07:00"))

	require.InDelta(t, 25.5, rec.Fields["t"].(float64), 1e-9)
	require.InDelta(t, 3.75, rec.Fields["vBat"].(float64), 1e-9)
	require.Equal(t, "1.2.3.4", rec.Fields["version"])
}

func TestDecodeEnvelopeUndecodablePort(t *testing.T) {
	payload := []byte(`{
	  "end_device_ids": {"device_id": "dev"},
	  "uplink_message": {"f_port": 2, "frm_payload": "FQA="}
	}`)
	_, err := testBridge().DecodeEnvelope(payload)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported port")
}

func TestDecodeEnvelopeMissingDeviceID(t *testing.T) {
	_, err := testBridge().DecodeEnvelope([]byte(`{"uplink_message": {"f_port": 1}}`))
	require.Error(t, err)
}

func TestDecodeEnvelopeMalformedJSON(t *testing.T) {
	_, err := testBridge().DecodeEnvelope([]byte(`{not json`))
	require.Error(t, err)
}
