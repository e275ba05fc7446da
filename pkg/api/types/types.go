package types

import (
	"time"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// --- Request DTOs ---

// PowerRequest is the request body for POST /devices/:id/power
type PowerRequest struct {
	Action string `json:"action" binding:"required,oneof=on off"`
}

// VolumeRequest is the request body for POST /devices/:id/volume
type VolumeRequest struct {
	Volume *int `json:"volume" binding:"required"`
}

// MuteRequest is the request body for POST /devices/:id/mute
type MuteRequest struct {
	Mute *bool `json:"mute" binding:"required"`
}

// ChannelRequest is the request body for POST /devices/:id/channel
type ChannelRequest struct {
	Channel *int `json:"channel" binding:"required"`
}

// InputRequest is the request body for POST /devices/:id/input
type InputRequest struct {
	Source string `json:"source" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// DeviceSummary describes one device in API responses
type DeviceSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Label        string   `json:"label,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Type         string   `json:"type,omitempty"`
	IsTV         bool     `json:"is_tv"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// ListDevicesResponse is returned from GET /devices and GET /devices/tvs
type ListDevicesResponse struct {
	Devices []DeviceSummary `json:"devices"`
	Count   int             `json:"count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceSummary `json:"device"`
}

// StatusResponse is returned from GET /devices/:id/status
type StatusResponse struct {
	DeviceID  string                    `json:"device_id"`
	Status    *smartthings.DeviceStatus `json:"status"`
	Timestamp time.Time                 `json:"timestamp"`
}

// CommandResponse is returned from every command endpoint
type CommandResponse struct {
	Outcome   *gateway.CommandOutcome `json:"outcome"`
	Timestamp time.Time               `json:"timestamp"`
}

// AuditEntry is one row of the command audit trail
type AuditEntry struct {
	IssuedAt   time.Time `json:"issued_at"`
	DeviceID   string    `json:"device_id"`
	Capability string    `json:"capability"`
	Command    string    `json:"command"`
	Arguments  string    `json:"arguments,omitempty"`
	Status     string    `json:"status,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// AuditResponse is returned from GET /audit
type AuditResponse struct {
	Commands []AuditEntry `json:"commands"`
	Count    int          `json:"count"`
}
