package musiccast

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"musiccast/internal/logger"
)

// Option configures a Device at construction.
type Option func(*deviceOptions)

type deviceOptions struct {
	eventPort int
}

// WithEventPort overrides the local UDP port the device is asked to push
// notifications to. Port 0 binds an ephemeral port.
func WithEventPort(port int) Option {
	return func(o *deviceOptions) {
		o.eventPort = port
	}
}

// Device is the single entry point for one receiver on the network: the six
// subsystem clients, the shared HTTP transport, and the UDP event receiver.
//
// Reconfiguration is atomic: SetAddress and SetEventPort swap the shared
// transport (and rebind the receiver) under one lock, so no subsystem client
// is ever left pointing at a stale address or advertising a stale callback
// port.
type Device struct {
	mu       sync.RWMutex
	client   *Client
	receiver *Receiver
	logger   zerolog.Logger

	system *System
	tuner  *Tuner
	netusb *NetUSB
	cd     *CD
	clock  *Clock
}

// New connects a Device facade to the receiver at address (IP or host:port)
// and binds the event receiver. The default event port is DefaultEventPort.
// Binding failures are returned immediately; the caller gets no half-built
// Device.
func New(address string, opts ...Option) (*Device, error) {
	options := deviceOptions{eventPort: DefaultEventPort}
	for _, opt := range opts {
		opt(&options)
	}

	d := &Device{
		receiver: NewReceiver(),
		logger:   logger.New(),
	}
	d.system = &System{d: d}
	d.tuner = &Tuner{d: d}
	d.netusb = &NetUSB{d: d}
	d.cd = &CD{d: d}
	d.clock = &Clock{d: d}

	addr, err := d.receiver.Bind(options.eventPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start event receiver: %w", err)
	}

	// The transport advertises the port actually bound, which differs from
	// the requested port when it was 0
	d.client = NewClient(address, addr.Port)

	d.logger.Info().
		Str("address", address).
		Int("event_port", addr.Port).
		Msg("Device client ready")

	return d, nil
}

// transport returns the current shared HTTP transport. Subsystem clients
// fetch it per call so reconfiguration reaches them immediately.
func (d *Device) transport() *Client {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.client
}

// Address returns the device address requests are sent to.
func (d *Device) Address() string {
	return d.transport().Host()
}

// EventPort returns the local UDP port advertised for notifications.
func (d *Device) EventPort() int {
	return d.transport().EventPort()
}

// EventAddr returns the receiver's bound address, or nil when events are
// down after a socket fault.
func (d *Device) EventAddr() *net.UDPAddr {
	return d.receiver.LocalAddr()
}

// SetAddress repoints every subsystem client at a new device address.
func (d *Device) SetAddress(address string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.client = NewClient(address, d.client.EventPort())
	d.logger.Info().Str("address", address).Msg("Device address changed")
}

// SetEventPort rebinds the event receiver to a new local port and updates
// the advertised callback port. On bind failure the old socket is already
// closed (rebinding closes it first) and the previous transport stays in
// place.
func (d *Device) SetEventPort(port int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	addr, err := d.receiver.Bind(port)
	if err != nil {
		return fmt.Errorf("failed to rebind event receiver: %w", err)
	}

	d.client = NewClient(d.client.Host(), addr.Port)
	d.logger.Info().Int("event_port", addr.Port).Msg("Event port changed")
	return nil
}

// Rebind restarts the event receiver on its current advertised port, for use
// after a socket fault.
func (d *Device) Rebind() error {
	return d.SetEventPort(d.EventPort())
}

// Notifications returns the stream of push events from the device.
func (d *Device) Notifications() <-chan Notification {
	return d.receiver.Notifications()
}

// Errors returns the stream of event-socket faults and malformed-payload
// reports.
func (d *Device) Errors() <-chan error {
	return d.receiver.Errors()
}

// System returns the system subsystem client.
func (d *Device) System() *System {
	return d.system
}

// Zone returns a client bound to one output zone.
func (d *Device) Zone(id ZoneID) *Zone {
	return &Zone{d: d, id: id}
}

// Tuner returns the tuner subsystem client.
func (d *Device) Tuner() *Tuner {
	return d.tuner
}

// NetUSB returns the network/USB subsystem client.
func (d *Device) NetUSB() *NetUSB {
	return d.netusb
}

// CD returns the CD subsystem client.
func (d *Device) CD() *CD {
	return d.cd
}

// Clock returns the clock subsystem client.
func (d *Device) Clock() *Clock {
	return d.clock
}

// Close shuts down the event receiver. HTTP calls remain possible but the
// device can no longer push notifications here.
func (d *Device) Close() {
	d.receiver.Close()
}
