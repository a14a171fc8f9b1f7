// Package bridge subscribes to application-server uplink topics, decodes
// each payload with pkg/catena, and republishes the structured record. A
// payload that fails to decode is logged and dropped; there is no retry.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/muralisundaramoorthi/Catena5230/pkg/catena"
)

// Bridge connects the MQTT broker to the payload decoder.
type Bridge struct {
	cfg Config
	log *logrus.Logger
}

// New returns an unconnected bridge.
func New(cfg Config, log *logrus.Logger) *Bridge {
	return &Bridge{cfg: cfg, log: log}
}

// Run connects to the broker, subscribes to the uplink topic, and blocks
// until the context is canceled.
func (b *Bridge) Run(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(b.cfg.Broker.URL).
		SetClientID(b.cfg.Broker.ClientID).
		SetAutoReconnect(true).
		SetOrderMatters(false)
	if b.cfg.Broker.Username != "" {
		opts.SetUsername(b.cfg.Broker.Username)
		opts.SetPassword(b.cfg.Broker.Password)
	}
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		// Subscribing here restores the subscription after a reconnect.
		token := client.Subscribe(b.cfg.Topics.Uplink, b.cfg.Broker.QoS, b.handleUplink)
		token.Wait()
		if err := token.Error(); err != nil {
			b.log.WithError(err).WithField("topic", b.cfg.Topics.Uplink).Error("subscribe failed")
			return
		}
		b.log.WithField("topic", b.cfg.Topics.Uplink).Info("subscribed to uplinks")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		b.log.WithError(err).Warn("broker connection lost")
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(b.cfg.Broker.ConnectTimeout()) {
		return fmt.Errorf("connect to %s: timeout after %v", b.cfg.Broker.URL, b.cfg.Broker.ConnectTimeout())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect to %s: %w", b.cfg.Broker.URL, err)
	}
	b.log.WithField("broker", b.cfg.Broker.URL).Info("connected")

	<-ctx.Done()
	client.Disconnect(250)
	return nil
}

func (b *Bridge) handleUplink(client mqtt.Client, msg mqtt.Message) {
	record, err := b.DecodeEnvelope(msg.Payload())
	if err != nil {
		b.log.WithError(err).WithField("topic", msg.Topic()).Warn("uplink not decodable")
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		b.log.WithError(err).Error("marshal decoded record")
		return
	}
	topic := fmt.Sprintf("%s/%s", b.cfg.Topics.DecodedPrefix, record.DeviceID)
	token := client.Publish(topic, b.cfg.Broker.QoS, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		b.log.WithError(err).WithField("topic", topic).Error("publish decoded record")
		return
	}
	b.log.WithFields(logrus.Fields{
		"device": record.DeviceID,
		"port":   record.Port,
		"driver": record.Driver,
	}).Debug("uplink decoded")
}

// DecodeEnvelope parses an application-server uplink envelope and decodes
// its payload.
func (b *Bridge) DecodeEnvelope(data []byte) (*DecodedRecord, error) {
	var env UplinkEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse uplink envelope: %w", err)
	}
	if env.EndDeviceIDs.DeviceID == "" {
		return nil, fmt.Errorf("uplink envelope missing device id")
	}
	result, err := catena.Decode(context.Background(), env.UplinkMessage.FPort, env.UplinkMessage.FRMPayload)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", env.EndDeviceIDs.DeviceID, err)
	}
	receivedAt := env.UplinkMessage.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = env.ReceivedAt
	}
	return &DecodedRecord{
		DeviceID:   env.EndDeviceIDs.DeviceID,
		DevEUI:     env.EndDeviceIDs.DevEUI,
		Port:       env.UplinkMessage.FPort,
		FCnt:       env.UplinkMessage.FCnt,
		ReceivedAt: receivedAt,
		Driver:     result.Driver,
		Fields:     result.Fields,
	}, nil
}
