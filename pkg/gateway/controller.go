package gateway

import (
	"context"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// Controller is the fixed catalog of operations the bridge exposes.
// Both the MCP tool surface and the REST surface are built against this
// interface; adding or removing an operation is a compile-time-checked
// change across every consumer.
type Controller interface {
	// ListDevices returns every device of the account, order preserved
	// from the underlying listing
	ListDevices(ctx context.Context) ([]smartthings.Device, error)

	// ListTVDevices returns only TV/AV devices; an empty result is not
	// an error
	ListTVDevices(ctx context.Context) ([]smartthings.Device, error)

	// GetDeviceInfo returns the full descriptor including the
	// capability set
	GetDeviceInfo(ctx context.Context, deviceID string) (*smartthings.Device, error)

	// GetDeviceStatus returns current attribute values for the
	// capabilities the device supports
	GetDeviceStatus(ctx context.Context, deviceID string) (*smartthings.DeviceStatus, error)

	// SetPower turns the device on or off; idempotent
	SetPower(ctx context.Context, deviceID string, on bool) (*CommandOutcome, error)

	// SetVolume sets the volume level, valid range 0..100
	SetVolume(ctx context.Context, deviceID string, level int) (*CommandOutcome, error)

	// SetMute mutes or unmutes the device
	SetMute(ctx context.Context, deviceID string, muted bool) (*CommandOutcome, error)

	// SetChannel tunes to a channel, which must be a positive integer
	SetChannel(ctx context.Context, deviceID string, channel int) (*CommandOutcome, error)

	// SetInput switches the input source, validated against the
	// device's advertised sources when it publishes them
	SetInput(ctx context.Context, deviceID string, source string) (*CommandOutcome, error)
}

// CommandOutcome describes a command the gateway issued and the status the
// API reported for it.
type CommandOutcome struct {
	DeviceID   string `json:"device_id"`
	Capability string `json:"capability"`
	Command    string `json:"command"`
	Arguments  []any  `json:"arguments,omitempty"`
	Status     string `json:"status"`
}
