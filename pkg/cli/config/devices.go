package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Devices holds the device list location
type Devices struct {
	Path string
}

// Flags returns CLI flags for Devices configuration
func (d *Devices) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "devices",
			Aliases:     []string{"d"},
			Usage:       "Device list file (JSON, or YAML with .yaml/.yml extension)",
			Category:    "Devices",
			Value:       "devices.json",
			Sources:     cli.EnvVars("BENCHMARK510K_DEVICES"),
			Destination: &d.Path,
		},
	}
}

// Load reads, parses and validates the device list
func (d *Devices) Load() (*model.TrackedDevices, error) {
	return LoadDevicesFromFile(d.Path)
}

// LogValue returns structured log value
func (d Devices) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
	)
}

// LoadDevicesFromFile loads the tracked devices from a JSON or YAML file
func LoadDevicesFromFile(path string) (*model.TrackedDevices, error) {
	if path == "" {
		return nil, goerr.New("device file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "device file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read device file",
			goerr.V("path", path))
	}

	var tracked model.TrackedDevices
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tracked); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML device file",
				goerr.V("path", path))
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, goerr.New("device file is empty", goerr.V("path", path))
		}
		if err := json.Unmarshal(data, &tracked); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON device file",
				goerr.V("path", path))
		}
	}

	if err := tracked.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid device file",
			goerr.V("path", path))
	}

	return &tracked, nil
}
