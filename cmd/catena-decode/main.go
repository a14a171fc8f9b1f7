package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/muralisundaramoorthi/Catena5230/pkg/catena"
)

var (
	rootCmd = &cobra.Command{
		Use:   "catena-decode [hex]",
		Short: "Decode Catena 5230 sensor payloads",
		Long:  "catena-decode turns raw Catena 5230 uplink and command-response payloads into structured records.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := catena.DecodeOptions{TapHoldsCursor: tapCompat}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return runDecode(ctx, opts, args[0])
		},
	}

	port      uint8
	tapCompat bool
)

func init() {
	rootCmd.PersistentFlags().Uint8Var(&port, "port", catena.PortTelemetry, "LoRaWAN port the payload arrived on (1/4 telemetry, 3 command response)")
	rootCmd.PersistentFlags().BoolVar(&tapCompat, "tap-compat", false, "replicate the firmware decoder's non-advancing tap read")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, opts catena.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Infof("catena-decode interactive mode, port %d. Paste a hex payload and press Enter (Ctrl+D to exit).", port)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, opts catena.DecodeOptions, hex string) error {
	result, err := catena.DecodeHexWithOptions(ctx, port, hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
