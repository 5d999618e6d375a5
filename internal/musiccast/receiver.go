package musiccast

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"musiccast/internal/logger"
)

// maxDatagramSize bounds a single notification. The device sends one JSON
// document per datagram, well under this.
const maxDatagramSize = 4096

// Notification is one unsolicited state-change event pushed by the device.
type Notification struct {
	// Session identifies the socket generation that received the event.
	Session  string
	Sender   *net.UDPAddr
	Payload  map[string]interface{}
	Raw      json.RawMessage
	Received time.Time
}

// Receiver owns the UDP socket the device pushes notifications to. A socket
// fault closes the socket and is reported on Errors; the receiver does not
// rebind itself — callers decide when to Bind again. Bind and Close are safe
// for concurrent use.
type Receiver struct {
	mu      sync.Mutex
	conn    *net.UDPConn
	session string

	events chan Notification
	errs   chan error
	logger zerolog.Logger
}

// NewReceiver creates an unbound receiver. Call Bind to start listening.
func NewReceiver() *Receiver {
	return &Receiver{
		events: make(chan Notification, 32),
		errs:   make(chan error, 8),
		logger: logger.New(),
	}
}

// Notifications returns the channel notifications are delivered on. The
// channel is shared across rebinds; it is never closed.
func (r *Receiver) Notifications() <-chan Notification {
	return r.events
}

// Errors returns the channel socket faults and malformed-payload reports are
// delivered on.
func (r *Receiver) Errors() <-chan error {
	return r.errs
}

// Bind opens a UDP socket on the given local port and starts receiving. Any
// previously open socket is closed first, ignoring close errors. Port 0
// binds an ephemeral port; privileged ports are rejected. The bound local
// address is returned once the socket is listening.
func (r *Receiver) Bind(port int) (*net.UDPAddr, error) {
	if port != 0 && (port < 1024 || port > 65535) {
		return nil, fmt.Errorf("event port must be 0 or in 1024-65535, got %d", port)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: port})
	if err != nil {
		return nil, fmt.Errorf("failed to bind event port %d: %w", port, err)
	}

	r.conn = conn
	r.session = uuid.NewString()

	go r.readLoop(conn, r.session)

	addr := conn.LocalAddr().(*net.UDPAddr)
	r.logger.Info().
		Str("session", r.session).
		Str("addr", addr.String()).
		Msg("Event receiver listening")

	return addr, nil
}

// LocalAddr returns the bound address, or nil when the receiver is closed.
func (r *Receiver) LocalAddr() *net.UDPAddr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	return r.conn.LocalAddr().(*net.UDPAddr)
}

// Bound reports whether a socket is currently open.
func (r *Receiver) Bound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn != nil
}

// Close shuts the socket down. Safe to call repeatedly.
func (r *Receiver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
		r.logger.Info().Str("session", r.session).Msg("Event receiver closed")
	}
}

// readLoop receives datagrams until the socket is closed or faults. It runs
// once per bind; conn and session pin the generation it serves so a stale
// loop never touches a replacement socket.
func (r *Receiver) readLoop(conn *net.UDPConn, session string) {
	buf := make([]byte, maxDatagramSize)

	for {
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				// Deliberate close or rebind, not a fault
				return
			}
			r.fault(conn, session, err)
			return
		}

		raw := make([]byte, n)
		copy(raw, buf[:n])

		var payload map[string]interface{}
		if err := json.Unmarshal(raw, &payload); err != nil {
			// A bad datagram is not a socket fault; report and keep reading
			r.logger.Warn().
				Str("session", session).
				Str("sender", addr.String()).
				Err(err).
				Msg("Discarding malformed notification")
			r.emitError(fmt.Errorf("%w from %s: %v", ErrMalformedNotification, addr, err))
			continue
		}

		r.logger.Debug().
			Str("session", session).
			Str("sender", addr.String()).
			Int("size", n).
			Msg("Notification received")

		r.emit(Notification{
			Session:  session,
			Sender:   addr,
			Payload:  payload,
			Raw:      raw,
			Received: time.Now(),
		})
	}
}

// fault closes the socket after a runtime error and surfaces the error. The
// generation check keeps an old loop from tearing down a rebound socket.
func (r *Receiver) fault(conn *net.UDPConn, session string, err error) {
	r.mu.Lock()
	if r.conn == conn {
		conn.Close()
		r.conn = nil
	}
	r.mu.Unlock()

	r.logger.Error().
		Str("session", session).
		Err(err).
		Msg("Event socket failed")
	r.emitError(fmt.Errorf("event socket failed: %w", err))
}

func (r *Receiver) emit(n Notification) {
	select {
	case r.events <- n:
	default:
		r.logger.Warn().
			Str("session", n.Session).
			Msg("Notification channel full, dropping event")
	}
}

func (r *Receiver) emitError(err error) {
	select {
	case r.errs <- err:
	default:
	}
}
