package bridge

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the bridge configuration, loaded from a YAML file.
type Config struct {
	Broker BrokerConfig `yaml:"broker"`
	Topics TopicsConfig `yaml:"topics"`
}

// BrokerConfig describes the MQTT broker connection.
type BrokerConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	QoS      uint8  `yaml:"qos"`
	// ConnectTimeoutSeconds is the initial connection timeout in seconds.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"`
}

// ConnectTimeout returns the connection timeout as a Duration.
func (b BrokerConfig) ConnectTimeout() time.Duration {
	return time.Duration(b.ConnectTimeoutSeconds) * time.Second
}

// TopicsConfig describes where uplinks arrive and decoded records go.
type TopicsConfig struct {
	// Uplink is the subscription filter for application-server uplinks,
	// one message per device transmission.
	Uplink string `yaml:"uplink"`
	// DecodedPrefix prefixes the publish topic; the device id is appended.
	DecodedPrefix string `yaml:"decoded_prefix"`
}

// DefaultConfig returns the configuration used when a field is left unset.
func DefaultConfig() Config {
	return Config{
		Broker: BrokerConfig{
			URL:                   "tcp://localhost:1883",
			ClientID:              "catena-bridge",
			QoS:                   1,
			ConnectTimeoutSeconds: 30,
		},
		Topics: TopicsConfig{
			Uplink:        "v3/+/devices/+/up",
			DecodedPrefix: "catena/decoded",
		},
	}
}

// LoadConfig reads a YAML configuration file, filling unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Broker.URL == "" {
		return fmt.Errorf("broker.url must not be empty")
	}
	if c.Broker.QoS > 2 {
		return fmt.Errorf("broker.qos must be 0, 1 or 2, got %d", c.Broker.QoS)
	}
	if c.Topics.Uplink == "" {
		return fmt.Errorf("topics.uplink must not be empty")
	}
	if c.Topics.DecodedPrefix == "" {
		return fmt.Errorf("topics.decoded_prefix must not be empty")
	}
	return nil
}
