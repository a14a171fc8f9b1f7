package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnsupportedChannel reports an FPort outside the set the device
// transmits on.
var ErrUnsupportedChannel = errors.New("unsupported port")

// Record is the decoded output of a driver.
type Record interface {
	Fields() map[string]any
}

// Driver decodes payloads arriving on the ports it registered for.
type Driver interface {
	Name() string
	Decode(context.Context, []byte) (Record, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredDriver
)

type registeredDriver struct {
	ports  []uint8
	driver Driver
}

// Register stores a driver for the given ports in memory.
func Register(ports []uint8, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredDriver{ports: ports, driver: drv})
}

// Lookup returns the first driver registered for the port.
func Lookup(port uint8) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rd := range registry {
		for _, p := range rd.ports {
			if p == port {
				return rd.driver, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannel, port)
}
