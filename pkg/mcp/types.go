package mcp

import (
	"encoding/json"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/capability"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	ID           string   `json:"id" jsonschema:"description=Unique device identifier"`
	Name         string   `json:"name" jsonschema:"description=Device name as registered with SmartThings"`
	Label        string   `json:"label,omitempty" jsonschema:"description=User-assigned label"`
	Manufacturer string   `json:"manufacturer,omitempty" jsonschema:"description=Device manufacturer"`
	Type         string   `json:"type,omitempty" jsonschema:"description=SmartThings device type name"`
	IsTV         bool     `json:"is_tv" jsonschema:"description=Whether the device is a TV/AV device"`
	Capabilities []string `json:"capabilities,omitempty" jsonschema:"description=Capability ids of the main component"`
}

// ListDevicesOutput is the output for list_devices and list_tv_devices
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Devices in listing order"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// GetDeviceInfoOutput is the output for get_device_info
type GetDeviceInfoOutput struct {
	Device DeviceInfo `json:"device" jsonschema:"description=Device information"`
}

// StatusSummary extracts the TV-relevant readings from a status document.
// Fields are pointers so capabilities the device lacks stay out of the JSON.
type StatusSummary struct {
	Power                 *string  `json:"power,omitempty" jsonschema:"description=Power state (on/off)"`
	Volume                *float64 `json:"volume,omitempty" jsonschema:"description=Volume level"`
	Muted                 *bool    `json:"muted,omitempty" jsonschema:"description=Whether audio is muted"`
	Channel               *string  `json:"channel,omitempty" jsonschema:"description=Current TV channel"`
	InputSource           *string  `json:"input_source,omitempty" jsonschema:"description=Active input source"`
	SupportedInputSources []string `json:"supported_input_sources,omitempty" jsonschema:"description=Input sources the device advertises"`
}

// GetDeviceStatusOutput is the output for get_device_status
type GetDeviceStatusOutput struct {
	DeviceID string          `json:"device_id" jsonschema:"description=Device identifier"`
	Summary  StatusSummary   `json:"summary" jsonschema:"description=TV-relevant readings"`
	Raw      json.RawMessage `json:"raw,omitempty" jsonschema:"description=Full status document as returned by SmartThings"`
}

// CommandOutput is the output for every command tool
type CommandOutput struct {
	DeviceID   string `json:"device_id" jsonschema:"description=Device identifier"`
	Capability string `json:"capability" jsonschema:"description=Capability the command targeted"`
	Command    string `json:"command" jsonschema:"description=Command name"`
	Arguments  []any  `json:"arguments,omitempty" jsonschema:"description=Command arguments as sent"`
	Status     string `json:"status" jsonschema:"description=Status reported by SmartThings (e.g. ACCEPTED)"`
	Message    string `json:"message" jsonschema:"description=Human-readable result"`
}

// --- Helper conversions ---

// deviceToInfo converts a smartthings.Device to DeviceInfo
func deviceToInfo(d *smartthings.Device) DeviceInfo {
	caps := d.CapabilityIDs()
	return DeviceInfo{
		ID:           d.DeviceID,
		Name:         d.Name,
		Label:        d.Label,
		Manufacturer: d.ManufacturerName,
		Type:         d.DeviceTypeName,
		IsTV:         capability.IsTVDevice(caps),
		Capabilities: caps,
	}
}

// summarize pulls the TV-relevant readings out of a status document.
func summarize(status *smartthings.DeviceStatus) StatusSummary {
	var s StatusSummary

	if v, ok := status.StringAttribute(capability.Switch, capability.AttrSwitch); ok {
		s.Power = &v
	}
	if v, ok := status.Attribute(capability.AudioVolume, capability.AttrVolume); ok {
		if f, ok := v.(float64); ok {
			s.Volume = &f
		}
	}
	if v, ok := status.StringAttribute(capability.AudioVolume, capability.AttrMute); ok {
		muted := v == "muted"
		s.Muted = &muted
	}
	if v, ok := status.StringAttribute(capability.TVChannel, capability.AttrTVChannel); ok {
		s.Channel = &v
	}
	if v, ok := status.StringAttribute(capability.MediaInputSource, capability.AttrInputSource); ok {
		s.InputSource = &v
	}
	s.SupportedInputSources = status.SupportedInputSources()

	return s
}

// commandOutput converts a gateway outcome into the shared command output.
func commandOutput(outcome *gateway.CommandOutcome, message string) CommandOutput {
	return CommandOutput{
		DeviceID:   outcome.DeviceID,
		Capability: outcome.Capability,
		Command:    outcome.Command,
		Arguments:  outcome.Arguments,
		Status:     outcome.Status,
		Message:    message,
	}
}
