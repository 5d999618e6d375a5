package musiccast_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"musiccast/internal/musiccast"
)

func TestZonePaths(t *testing.T) {
	t.Run("zone ids are path segments", func(t *testing.T) {
		var paths []string
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.Write([]byte(`{"response_code":0}`))
		})

		for _, zone := range []musiccast.ZoneID{musiccast.ZoneMain, musiccast.Zone2, musiccast.Zone3, musiccast.Zone4} {
			require.NoError(t, device.Zone(zone).SetPower(musiccast.PowerOn))
		}

		assert.Equal(t, []string{
			"/YamahaExtendedControl/v1/main/setPower",
			"/YamahaExtendedControl/v1/zone2/setPower",
			"/YamahaExtendedControl/v1/zone3/setPower",
			"/YamahaExtendedControl/v1/zone4/setPower",
		}, paths)
	})
}

func TestZoneStatus(t *testing.T) {
	t.Run("decodes the full zone state", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"response_code": 0,
				"power": "on",
				"volume": 83,
				"max_volume": 161,
				"mute": false,
				"input": "net_radio",
				"sound_program": "5ch_stereo",
				"tone_control": {"mode": "manual", "bass": 2, "treble": -1}
			}`))
		})

		status, err := device.Zone(musiccast.ZoneMain).GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "on", status.Power)
		assert.Equal(t, 83, status.Volume)
		assert.Equal(t, 161, status.MaxVolume)
		assert.False(t, status.Mute)
		assert.Equal(t, "net_radio", status.Input)
		assert.Equal(t, 2, status.ToneControl.Bass)
		assert.Equal(t, -1, status.ToneControl.Treble)
	})
}

func TestZoneVolume(t *testing.T) {
	t.Run("stepped volume sends direction and step", func(t *testing.T) {
		var queries []string
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			queries = append(queries, r.URL.RawQuery)
			w.Write([]byte(`{"response_code":0}`))
		})

		zone := device.Zone(musiccast.ZoneMain)
		require.NoError(t, zone.VolumeUp(5))
		require.NoError(t, zone.VolumeDown(1))

		assert.Equal(t, "step=5&volume=up", queries[0])
		assert.Equal(t, "step=1&volume=down", queries[1])
	})
}

func TestSoundProgramList(t *testing.T) {
	t.Run("unwraps the nested sound_program_list field", func(t *testing.T) {
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code":0,"sound_program_list":["stereo","surr_decoder","straight"]}`))
		})

		programs, err := device.Zone(musiccast.ZoneMain).GetSoundProgramList()
		require.NoError(t, err)
		assert.Equal(t, []string{"stereo", "surr_decoder", "straight"}, programs)
	})
}

func TestTunerPresets(t *testing.T) {
	t.Run("unwraps preset_info and passes the band", func(t *testing.T) {
		var gotBand string
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			gotBand = r.URL.Query().Get("band")
			w.Write([]byte(`{"response_code":0,"preset_info":[{"band":"fm","number":1,"freq":101700,"text":"WHTZ"}]}`))
		})

		presets, err := device.Tuner().GetPresetInfo(musiccast.BandFM)
		require.NoError(t, err)
		assert.Equal(t, "fm", gotBand)
		require.Len(t, presets, 1)
		assert.Equal(t, 101700, presets[0].Freq)
		assert.Equal(t, "WHTZ", presets[0].Text)
	})
}

func TestPlaybackCommands(t *testing.T) {
	t.Run("netusb and cd share transport verbs on separate paths", func(t *testing.T) {
		var paths []string
		device, _ := newTestDevice(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
			w.Write([]byte(`{"response_code":0}`))
		})

		require.NoError(t, device.NetUSB().SetPlayback(musiccast.PlaybackPlay))
		require.NoError(t, device.CD().SetPlayback(musiccast.PlaybackPause))
		require.NoError(t, device.CD().ToggleTray())

		assert.Equal(t, []string{
			"/YamahaExtendedControl/v1/netusb/setPlayback?playback=play",
			"/YamahaExtendedControl/v1/cd/setPlayback?playback=pause",
			"/YamahaExtendedControl/v1/cd/toggleTray?",
		}, paths)
	})
}
