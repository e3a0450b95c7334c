package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// RunID identifies one fetch-and-report run
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID using UUID v7
func NewRunID() (RunID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate run ID")
	}
	return RunID(id.String()), nil
}

// Validate checks the run ID is a UUID
func (id RunID) Validate() error {
	if id == "" {
		return goerr.New("run ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "run ID is not a UUID", goerr.V("id", id))
	}
	return nil
}

// DeviceKey identifies an aggregated device within a run
type DeviceKey string

// String returns the string representation
func (k DeviceKey) String() string {
	return string(k)
}

// NewDeviceKey builds a key from manufacturer and canonical device name.
// Slashes are replaced so the key can be used as a document ID.
func NewDeviceKey(manufacturer, deviceName string) DeviceKey {
	r := strings.NewReplacer("/", "_", " ", "_")
	return DeviceKey(strings.ToLower(r.Replace(manufacturer) + "--" + r.Replace(deviceName)))
}
