package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"musiccast/internal/cli"
	"musiccast/internal/musiccast"
)

var (
	monitorPort      int
	monitorKeepalive time.Duration
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Listen for push notifications from a receiver",
	Long: `Binds the UDP event port and prints every state-change notification the
receiver pushes. The receiver learns where to push from the headers of our
HTTP requests, so a lightweight request is repeated periodically to keep the
registration alive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		address := hostFlag
		if address == "" && deviceFlag != "" {
			manager, err := cli.NewManager(configPath)
			if err != nil {
				return err
			}
			saved, err := manager.GetDevice(deviceFlag)
			if err != nil {
				return err
			}
			address = saved.Address
			if !cmd.Flags().Changed("port") {
				monitorPort = saved.EventPortOrDefault()
			}
		}
		if address == "" {
			return fmt.Errorf("no device specified (use --host or --device)")
		}

		device, err := musiccast.New(address, musiccast.WithEventPort(monitorPort))
		if err != nil {
			return err
		}
		defer device.Close()

		// First request registers our callback port with the receiver
		if _, err := device.System().GetDeviceInfo(); err != nil {
			return fmt.Errorf("receiver not reachable at %s: %w", address, err)
		}

		log.Info().
			Str("address", address).
			Str("event_addr", device.EventAddr().String()).
			Msg("Monitoring receiver")

		keepalive := time.NewTicker(monitorKeepalive)
		defer keepalive.Stop()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case n := <-device.Notifications():
				pretty, err := json.Marshal(n.Payload)
				if err != nil {
					continue
				}
				fmt.Printf("%s %s %s\n", n.Received.Format(time.RFC3339), n.Sender, pretty)

			case err := <-device.Errors():
				log.Error().Err(err).Msg("Event receiver error")
				if device.EventAddr() == nil {
					// Socket fault closed the receiver; malformed payloads
					// leave it listening and we keep going
					return err
				}

			case <-keepalive.C:
				if _, err := device.System().GetDeviceInfo(); err != nil {
					log.Warn().Err(err).Msg("Keepalive request failed")
				}

			case <-interrupt:
				log.Info().Msg("Stopping monitor")
				return nil
			}
		}
	},
}

func init() {
	monitorCmd.Flags().StringVarP(&hostFlag, "host", "H", "", "receiver address")
	monitorCmd.Flags().StringVarP(&deviceFlag, "device", "D", "", "saved device name")
	monitorCmd.Flags().StringVar(&configPath, "config", "", "config file path")
	monitorCmd.Flags().IntVarP(&monitorPort, "port", "p", musiccast.DefaultEventPort, "local UDP event port")
	monitorCmd.Flags().DurationVar(&monitorKeepalive, "keepalive", 5*time.Minute, "callback registration refresh interval")
	rootCmd.AddCommand(monitorCmd)
}
