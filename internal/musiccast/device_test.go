package musiccast_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"musiccast/internal/musiccast"
)

func TestDeviceConstruction(t *testing.T) {
	t.Run("binds the event receiver immediately", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code":0}`))
		})

		addr := device.EventAddr()
		require.NotNil(t, addr)
		assert.Equal(t, addr.Port, device.EventPort())
	})

	t.Run("surfaces bind failures instead of returning a half-built device", func(t *testing.T) {
		occupant := musiccast.NewReceiver()
		addr, err := occupant.Bind(0)
		require.NoError(t, err)
		defer occupant.Close()

		device, err := musiccast.New("192.0.2.1", musiccast.WithEventPort(addr.Port))
		require.Error(t, err)
		assert.Nil(t, device)
	})
}

func TestDeviceReconfiguration(t *testing.T) {
	t.Run("SetAddress repoints every subsystem client", func(t *testing.T) {
		var hitsA, hitsB int
		serverA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hitsA++
			w.Write([]byte(`{"response_code":0}`))
		}))
		defer serverA.Close()
		serverB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hitsB++
			w.Write([]byte(`{"response_code":0}`))
		}))
		defer serverB.Close()

		device, err := musiccast.New(strings.TrimPrefix(serverA.URL, "http://"), musiccast.WithEventPort(0))
		require.NoError(t, err)
		defer device.Close()

		// Hold subsystem clients from before the switch; they must follow it
		system := device.System()
		zone := device.Zone(musiccast.ZoneMain)

		require.NoError(t, zone.SetMute(false))
		assert.Equal(t, 1, hitsA)

		device.SetAddress(strings.TrimPrefix(serverB.URL, "http://"))

		_, err = system.GetDeviceInfo()
		require.NoError(t, err)
		require.NoError(t, zone.SetMute(true))
		assert.Equal(t, 1, hitsA, "old address must see no further traffic")
		assert.Equal(t, 2, hitsB)
	})

	t.Run("SetEventPort rebinds and updates the advertised port", func(t *testing.T) {
		var advertised []string
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			advertised = append(advertised, r.Header.Get("X-AppPort"))
			w.Write([]byte(`{"response_code":0}`))
		})

		require.NoError(t, device.System().SetPartyMode(true))
		before := device.EventPort()

		// Pick a fresh port while the current one is still held
		scratch, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
		require.NoError(t, err)
		after := scratch.LocalAddr().(*net.UDPAddr).Port
		scratch.Close()

		require.NoError(t, device.SetEventPort(after))
		assert.NotEqual(t, before, after)
		assert.Equal(t, after, device.EventPort())
		assert.Equal(t, after, device.EventAddr().Port)

		require.NoError(t, device.System().SetPartyMode(false))
		assert.Equal(t, []string{strconv.Itoa(before), strconv.Itoa(after)}, advertised)
	})

	t.Run("Rebind reuses the current port after the old socket closes", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code":0}`))
		})

		port := device.EventPort()
		require.NoError(t, device.Rebind())
		assert.Equal(t, port, device.EventPort())
		assert.Equal(t, port, device.EventAddr().Port)
	})
}

func TestDeviceEventForwarding(t *testing.T) {
	t.Run("receiver notifications surface unchanged on the facade", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code":0}`))
		})

		sendDatagram(t, device.EventAddr(), []byte(`{"main":{"volume":50}}`))

		select {
		case n := <-device.Notifications():
			main, ok := n.Payload["main"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, float64(50), main["volume"])
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for forwarded notification")
		}
	})

	t.Run("malformed payload reports surface on the facade error stream", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code":0}`))
		})

		sendDatagram(t, device.EventAddr(), []byte(`{{{`))

		select {
		case err := <-device.Errors():
			assert.ErrorIs(t, err, musiccast.ErrMalformedNotification)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for forwarded error")
		}
	})
}
