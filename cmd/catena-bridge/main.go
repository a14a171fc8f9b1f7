package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/muralisundaramoorthi/Catena5230/internal/bridge"
)

var (
	rootCmd = &cobra.Command{
		Use:   "catena-bridge",
		Short: "Decode Catena 5230 uplinks from an MQTT broker",
		Long:  "catena-bridge subscribes to application-server uplink topics, decodes each payload, and republishes the structured record.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bridge.LoadConfig(configPath)
			if err != nil {
				return err
			}
			log := logrus.StandardLogger()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return bridge.New(cfg, log).Run(ctx)
		},
	}

	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "catena-bridge.yaml", "path to the bridge configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every decoded uplink")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}
