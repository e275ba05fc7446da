package smartthings

// Device represents a device record returned by the SmartThings API.
// Device identifiers are opaque strings and are never interpreted.
type Device struct {
	DeviceID         string      `json:"deviceId"`
	Name             string      `json:"name"`
	Label            string      `json:"label,omitempty"`
	ManufacturerName string      `json:"manufacturerName,omitempty"`
	DeviceTypeName   string      `json:"deviceTypeName,omitempty"`
	Components       []Component `json:"components"`
}

// Component is a device component (almost always just "main").
type Component struct {
	ID           string          `json:"id"`
	Capabilities []CapabilityRef `json:"capabilities"`
	Categories   []Category      `json:"categories,omitempty"`
}

// CapabilityRef identifies a capability a component exposes.
type CapabilityRef struct {
	ID      string `json:"id"`
	Version int    `json:"version,omitempty"`
}

// Category tags a component with a device category (e.g. "Television").
type Category struct {
	Name string `json:"name"`
}

// DisplayName returns the user-facing name, preferring the label.
func (d *Device) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// MainComponent returns the "main" component, or the first one if no
// component carries that id.
func (d *Device) MainComponent() *Component {
	for i := range d.Components {
		if d.Components[i].ID == "main" {
			return &d.Components[i]
		}
	}
	if len(d.Components) > 0 {
		return &d.Components[0]
	}
	return nil
}

// HasCapability reports whether the device's main component exposes the
// given capability.
func (d *Device) HasCapability(capabilityID string) bool {
	c := d.MainComponent()
	if c == nil {
		return false
	}
	for _, cap := range c.Capabilities {
		if cap.ID == capabilityID {
			return true
		}
	}
	return false
}

// CapabilityIDs returns the capability ids of the main component.
func (d *Device) CapabilityIDs() []string {
	c := d.MainComponent()
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Capabilities))
	for _, cap := range c.Capabilities {
		ids = append(ids, cap.ID)
	}
	return ids
}

// AttributeValue is a single attribute reading from a device status.
type AttributeValue struct {
	Value any    `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// CapabilityStatus maps attribute name to its current value.
type CapabilityStatus map[string]AttributeValue

// ComponentStatus maps capability id to its attribute readings.
type ComponentStatus map[string]CapabilityStatus

// DeviceStatus is the full status document of a device.
type DeviceStatus struct {
	Components map[string]ComponentStatus `json:"components"`
}

// Attribute looks up a single attribute value on the main component.
func (s *DeviceStatus) Attribute(capabilityID, attribute string) (any, bool) {
	main, ok := s.Components["main"]
	if !ok {
		return nil, false
	}
	capStatus, ok := main[capabilityID]
	if !ok {
		return nil, false
	}
	av, ok := capStatus[attribute]
	if !ok {
		return nil, false
	}
	return av.Value, true
}

// StringAttribute returns an attribute value as a string, if present and
// actually a string.
func (s *DeviceStatus) StringAttribute(capabilityID, attribute string) (string, bool) {
	v, ok := s.Attribute(capabilityID, attribute)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// SupportedInputSources returns the input sources the device advertises,
// or nil when the status does not expose them.
func (s *DeviceStatus) SupportedInputSources() []string {
	v, ok := s.Attribute("mediaInputSource", "supportedInputSources")
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	sources := make([]string, 0, len(raw))
	for _, item := range raw {
		if str, ok := item.(string); ok {
			sources = append(sources, str)
		}
	}
	return sources
}

// Command is a single entry of a device command request.
type Command struct {
	Component  string `json:"component"`
	Capability string `json:"capability"`
	Command    string `json:"command"`
	Arguments  []any  `json:"arguments,omitempty"`
}

// CommandResult is the per-command outcome reported by the API.
type CommandResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CommandResponse is the body returned from the commands endpoint.
type CommandResponse struct {
	Results []CommandResult `json:"results"`
}
