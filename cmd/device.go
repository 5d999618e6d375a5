package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"musiccast/internal/cli"
	"musiccast/internal/musiccast"
)

var (
	hostFlag   string
	deviceFlag string
	zoneFlag   string
	configPath string
)

// resolveDevice builds a Device from --host or a saved --device entry.
// One-shot commands bind an ephemeral event port so they never collide with
// a running monitor on the well-known port.
func resolveDevice() (*musiccast.Device, error) {
	address := hostFlag
	if address == "" && deviceFlag != "" {
		manager, err := cli.NewManager(configPath)
		if err != nil {
			return nil, err
		}
		saved, err := manager.GetDevice(deviceFlag)
		if err != nil {
			return nil, err
		}
		address = saved.Address
	}
	if address == "" {
		return nil, fmt.Errorf("no device specified (use --host or --device)")
	}

	return musiccast.New(address, musiccast.WithEventPort(0))
}

func resolveZone() musiccast.ZoneID {
	switch zoneFlag {
	case "", "main":
		return musiccast.ZoneMain
	default:
		return musiccast.ZoneID(zoneFlag)
	}
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show zone status",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		status, err := device.Zone(resolveZone()).GetStatus()
		if err != nil {
			return err
		}

		pretty, _ := json.MarshalIndent(status, "", "  ")
		fmt.Println(string(pretty))
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device information",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		info, err := device.System().GetDeviceInfo()
		if err != nil {
			return err
		}

		pretty, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(pretty))
		return nil
	},
}

var powerCmd = &cobra.Command{
	Use:   "power [on|standby|toggle]",
	Short: "Set zone power state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var power musiccast.Power
		switch args[0] {
		case "on":
			power = musiccast.PowerOn
		case "standby", "off":
			power = musiccast.PowerStandby
		case "toggle":
			power = musiccast.PowerToggle
		default:
			return fmt.Errorf("unknown power state: %s", args[0])
		}

		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		log.Info().
			Str("zone", string(resolveZone())).
			Str("power", string(power)).
			Msg("Setting power state")

		return device.Zone(resolveZone()).SetPower(power)
	},
}

var volumeCmd = &cobra.Command{
	Use:   "volume [level|up|down]",
	Short: "Set or step zone volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		zone := device.Zone(resolveZone())
		switch args[0] {
		case "up":
			return zone.VolumeUp(1)
		case "down":
			return zone.VolumeDown(1)
		default:
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("volume must be a number, 'up' or 'down': %s", args[0])
			}
			return zone.SetVolume(level)
		}
	},
}

var muteCmd = &cobra.Command{
	Use:   "mute [on|off]",
	Short: "Mute or unmute a zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mute bool
		switch args[0] {
		case "on":
			mute = true
		case "off":
			mute = false
		default:
			return fmt.Errorf("mute takes 'on' or 'off', got %s", args[0])
		}

		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		return device.Zone(resolveZone()).SetMute(mute)
	},
}

var inputCmd = &cobra.Command{
	Use:   "input [source]",
	Short: "Select a zone input source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		return device.Zone(resolveZone()).SetInput(args[0])
	},
}

var playbackCmd = &cobra.Command{
	Use:   "playback [play|pause|stop|next|previous]",
	Short: "Control network/USB playback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		playbacks := map[string]musiccast.Playback{
			"play":     musiccast.PlaybackPlay,
			"pause":    musiccast.PlaybackPause,
			"stop":     musiccast.PlaybackStop,
			"next":     musiccast.PlaybackNext,
			"previous": musiccast.PlaybackPrevious,
		}
		playback, ok := playbacks[args[0]]
		if !ok {
			return fmt.Errorf("unknown playback command: %s", args[0])
		}

		device, err := resolveDevice()
		if err != nil {
			return err
		}
		defer device.Close()

		return device.NetUSB().SetPlayback(playback)
	},
}

func init() {
	for _, c := range []*cobra.Command{statusCmd, infoCmd, powerCmd, volumeCmd, muteCmd, inputCmd, playbackCmd} {
		c.Flags().StringVarP(&hostFlag, "host", "H", "", "receiver address")
		c.Flags().StringVarP(&deviceFlag, "device", "D", "", "saved device name")
		c.Flags().StringVarP(&zoneFlag, "zone", "z", "main", "target zone (main, zone2, zone3, zone4)")
		c.Flags().StringVar(&configPath, "config", "", "config file path")
		rootCmd.AddCommand(c)
	}
}
