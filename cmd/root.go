package cmd

import (
	"github.com/spf13/cobra"
	"musiccast/internal/logger"
)

var (
	verbose bool
	log     = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "musiccast",
	Short: "Control Yamaha MusicCast receivers on the local network",
	Long: `musiccast is a command-line client for Yamaha's MusicCast Extended Control
protocol. It controls receivers over local HTTP and listens for the UDP
state-change notifications they push back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetSilentMode(false)
		if verbose {
			logger.SetLevel("debug")
		}
		log = logger.New()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
