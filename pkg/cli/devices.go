package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdDevices() *cli.Command {
	var devicesCfg config.Devices

	return &cli.Command{
		Name:  "devices",
		Usage: "Validate the device list and print the openFDA queries it expands to",
		Flags: devicesCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			tracked, err := devicesCfg.Load()
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Device list is valid",
				"path", devicesCfg.Path,
				"devices", len(tracked.Devices),
				"aliases", tracked.AliasCount(),
			)

			w := c.Root().Writer
			for _, dev := range tracked.Devices {
				if _, err := fmt.Fprintf(w, "%s (%s)\n", dev.Manufacturer, strings.Join(dev.Aliases, ", ")); err != nil {
					return goerr.Wrap(err, "failed to write device list")
				}
				for _, alias := range dev.Aliases {
					if _, err := fmt.Fprintf(w, "  %s\n", dev.SearchQuery(alias)); err != nil {
						return goerr.Wrap(err, "failed to write device list")
					}
				}
			}
			return nil
		},
	}
}
