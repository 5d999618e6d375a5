package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"musiccast/internal/cli"
	"musiccast/internal/musiccast"
)

var (
	addAddress   string
	addEventPort int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved devices",
}

var configAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Save a device under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addAddress == "" {
			return fmt.Errorf("--host is required")
		}

		manager, err := cli.NewManager(configPath)
		if err != nil {
			return err
		}

		device := cli.DeviceConfig{
			Name:      args[0],
			Address:   addAddress,
			EventPort: addEventPort,
		}
		if err := manager.AddDevice(device); err != nil {
			return err
		}

		log.Info().Str("name", args[0]).Str("address", addAddress).Msg("Device saved")
		return nil
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Delete a saved device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := cli.NewManager(configPath)
		if err != nil {
			return err
		}
		if err := manager.RemoveDevice(args[0]); err != nil {
			return err
		}

		log.Info().Str("name", args[0]).Msg("Device removed")
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := cli.NewManager(configPath)
		if err != nil {
			return err
		}
		config, err := manager.Load()
		if err != nil {
			return err
		}

		if len(config.Devices) == 0 {
			fmt.Println("No saved devices.")
			return nil
		}
		for _, device := range config.Devices {
			fmt.Printf("%-20s %-22s event port %d\n", device.Name, device.Address, device.EventPortOrDefault())
		}
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVarP(&addAddress, "host", "H", "", "receiver address")
	configAddCmd.Flags().IntVarP(&addEventPort, "port", "p", musiccast.DefaultEventPort, "local UDP event port")
	configCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
