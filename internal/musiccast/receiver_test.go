package musiccast_test

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"musiccast/internal/musiccast"
)

// sendDatagram pushes one payload at the receiver's bound port.
func sendDatagram(t *testing.T, addr *net.UDPAddr, payload []byte) {
	t.Helper()

	conn, err := net.DialUDP("udp4", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: addr.Port})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write(payload)
	require.NoError(t, err)
}

func waitNotification(t *testing.T, r *musiccast.Receiver) musiccast.Notification {
	t.Helper()

	select {
	case n := <-r.Notifications():
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return musiccast.Notification{}
	}
}

func waitError(t *testing.T, r *musiccast.Receiver) error {
	t.Helper()

	select {
	case err := <-r.Errors():
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for receiver error")
		return nil
	}
}

func TestReceiverBind(t *testing.T) {
	t.Run("delivers parsed notifications with sender info", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		defer receiver.Close()

		addr, err := receiver.Bind(0)
		require.NoError(t, err)
		require.NotZero(t, addr.Port)
		assert.True(t, receiver.Bound())

		sendDatagram(t, addr, []byte(`{"a":1}`))

		n := waitNotification(t, receiver)
		assert.Equal(t, float64(1), n.Payload["a"])
		require.NotNil(t, n.Sender)
		assert.Equal(t, "127.0.0.1", n.Sender.IP.String())
		assert.NotZero(t, n.Sender.Port)
		assert.NotEmpty(t, n.Session)
	})

	t.Run("rejects privileged ports", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		_, err := receiver.Bind(80)
		require.Error(t, err)
		assert.False(t, receiver.Bound())
	})

	t.Run("rebinding closes the prior socket first", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		defer receiver.Close()

		first, err := receiver.Bind(0)
		require.NoError(t, err)

		// Pick a second port while the first is still held so they differ
		scratch, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
		require.NoError(t, err)
		secondPort := scratch.LocalAddr().(*net.UDPAddr).Port
		scratch.Close()

		second, err := receiver.Bind(secondPort)
		require.NoError(t, err)
		assert.NotEqual(t, first.Port, second.Port)

		// The first port is free again, so a fresh bind on it succeeds
		reclaimed, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: first.Port})
		require.NoError(t, err, "prior socket should be closed after rebind")
		reclaimed.Close()

		// Only the new socket delivers
		sendDatagram(t, second, []byte(`{"gen":2}`))
		n := waitNotification(t, receiver)
		assert.Equal(t, float64(2), n.Payload["gen"])
	})

	t.Run("binding an in-use port fails and leaves the receiver closed", func(t *testing.T) {
		occupant, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
		require.NoError(t, err)
		defer occupant.Close()
		port := occupant.LocalAddr().(*net.UDPAddr).Port

		receiver := musiccast.NewReceiver()
		defer receiver.Close()
		_, err = receiver.Bind(0)
		require.NoError(t, err)

		_, err = receiver.Bind(port)
		require.Error(t, err)
		assert.False(t, receiver.Bound(), "failed rebind must not leave a half-bound receiver")
		assert.Nil(t, receiver.LocalAddr())
	})
}

func TestReceiverMalformedPayload(t *testing.T) {
	t.Run("reports a decode error and keeps listening", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		defer receiver.Close()

		addr, err := receiver.Bind(0)
		require.NoError(t, err)

		sendDatagram(t, addr, []byte(`not json at all`))

		err = waitError(t, receiver)
		assert.True(t, errors.Is(err, musiccast.ErrMalformedNotification))
		assert.True(t, receiver.Bound(), "a bad datagram must not close the socket")

		// Subsequent valid datagrams still arrive
		sendDatagram(t, addr, []byte(`{"volume":42}`))
		n := waitNotification(t, receiver)
		assert.Equal(t, float64(42), n.Payload["volume"])
	})
}

func TestReceiverClose(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		_, err := receiver.Bind(0)
		require.NoError(t, err)

		receiver.Close()
		receiver.Close()
		assert.False(t, receiver.Bound())
	})

	t.Run("closed receiver can bind again", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		_, err := receiver.Bind(0)
		require.NoError(t, err)
		receiver.Close()

		addr, err := receiver.Bind(0)
		require.NoError(t, err)
		defer receiver.Close()

		sendDatagram(t, addr, []byte(`{"back":true}`))
		n := waitNotification(t, receiver)
		assert.Equal(t, true, n.Payload["back"])
	})
}

func TestReceiverConcurrentRebind(t *testing.T) {
	t.Run("concurrent binds serialize without losing the socket", func(t *testing.T) {
		receiver := musiccast.NewReceiver()
		defer receiver.Close()

		done := make(chan struct{})
		for i := 0; i < 4; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				receiver.Bind(0)
			}()
		}
		for i := 0; i < 4; i++ {
			<-done
		}

		require.True(t, receiver.Bound())
		addr := receiver.LocalAddr()
		require.NotNil(t, addr)

		sendDatagram(t, addr, []byte(`{"ok":1}`))
		n := waitNotification(t, receiver)
		assert.Equal(t, float64(1), n.Payload["ok"])
	})
}
