package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/types"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/capability"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// DevicesHandler handles device listing and status endpoints
type DevicesHandler struct {
	controller gateway.Controller
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(controller gateway.Controller) *DevicesHandler {
	return &DevicesHandler{controller: controller}
}

// ListDevices handles GET /devices
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	devices, err := h.controller.ListDevices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(devices))
}

// ListTVDevices handles GET /devices/tvs
func (h *DevicesHandler) ListTVDevices(c *gin.Context) {
	devices, err := h.controller.ListTVDevices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(devices))
}

// GetDevice handles GET /devices/:id
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	id := c.Param("id")

	d, err := h.controller.GetDeviceInfo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: deviceSummary(d),
	})
}

// GetStatus handles GET /devices/:id/status
func (h *DevicesHandler) GetStatus(c *gin.Context) {
	id := c.Param("id")

	status, err := h.controller.GetDeviceStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		DeviceID:  id,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

func listResponse(devices []smartthings.Device) types.ListDevicesResponse {
	summaries := make([]types.DeviceSummary, 0, len(devices))
	for i := range devices {
		summaries = append(summaries, deviceSummary(&devices[i]))
	}
	return types.ListDevicesResponse{
		Devices: summaries,
		Count:   len(summaries),
	}
}

func deviceSummary(d *smartthings.Device) types.DeviceSummary {
	caps := d.CapabilityIDs()
	return types.DeviceSummary{
		ID:           d.DeviceID,
		Name:         d.Name,
		Label:        d.Label,
		Manufacturer: d.ManufacturerName,
		Type:         d.DeviceTypeName,
		IsTV:         capability.IsTVDevice(caps),
		Capabilities: caps,
	}
}
