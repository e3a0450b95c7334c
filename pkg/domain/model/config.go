package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// TrackedDevices is the device list loaded once at startup
type TrackedDevices struct {
	Devices []DeviceQuery `json:"devices" yaml:"devices"`
}

// Validate validates every configured device
func (c *TrackedDevices) Validate() error {
	for i, device := range c.Devices {
		if err := device.Validate(); err != nil {
			return goerr.Wrap(err, "invalid device at index",
				goerr.V("index", i),
				goerr.V("manufacturer", device.Manufacturer))
		}
	}
	return nil
}

// AliasCount returns the total number of aliases across all devices
func (c *TrackedDevices) AliasCount() int {
	n := 0
	for _, device := range c.Devices {
		n += len(device.Aliases)
	}
	return n
}

// DeviceQuery names a device by manufacturer and the spellings it is filed under
type DeviceQuery struct {
	Manufacturer string   `json:"manufacturer" yaml:"manufacturer"`
	Aliases      []string `json:"aliases" yaml:"aliases"`
}

// Validate validates the device query
func (q *DeviceQuery) Validate() error {
	if strings.TrimSpace(q.Manufacturer) == "" {
		return goerr.New("manufacturer is required")
	}
	for i, alias := range q.Aliases {
		if strings.TrimSpace(alias) == "" {
			return goerr.New("alias must not be blank", goerr.V("index", i))
		}
	}
	return nil
}

// SearchQuery builds the exact-match openFDA search expression for one alias.
// Embedded double quotes are not escaped.
func (q *DeviceQuery) SearchQuery(alias string) string {
	return `applicant:"` + q.Manufacturer + `" AND device_name:"` + alias + `"`
}
