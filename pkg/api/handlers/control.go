package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/types"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

// ControlHandler handles the TV command endpoints
type ControlHandler struct {
	controller gateway.Controller
}

// NewControlHandler creates a new control handler
func NewControlHandler(controller gateway.Controller) *ControlHandler {
	return &ControlHandler{controller: controller}
}

// SetPower handles POST /devices/:id/power
func (h *ControlHandler) SetPower(c *gin.Context) {
	id := c.Param("id")

	var req types.PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: `action is required and must be "on" or "off"`,
		})
		return
	}

	outcome, err := h.controller.SetPower(c.Request.Context(), id, req.Action == "on")
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// SetVolume handles POST /devices/:id/volume
func (h *ControlHandler) SetVolume(c *gin.Context) {
	id := c.Param("id")

	var req types.VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "volume is required",
		})
		return
	}

	outcome, err := h.controller.SetVolume(c.Request.Context(), id, *req.Volume)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// SetMute handles POST /devices/:id/mute
func (h *ControlHandler) SetMute(c *gin.Context) {
	id := c.Param("id")

	var req types.MuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "mute is required",
		})
		return
	}

	outcome, err := h.controller.SetMute(c.Request.Context(), id, *req.Mute)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// SetChannel handles POST /devices/:id/channel
func (h *ControlHandler) SetChannel(c *gin.Context) {
	id := c.Param("id")

	var req types.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "channel is required",
		})
		return
	}

	outcome, err := h.controller.SetChannel(c.Request.Context(), id, *req.Channel)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// SetInput handles POST /devices/:id/input
func (h *ControlHandler) SetInput(c *gin.Context) {
	id := c.Param("id")

	var req types.InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "source is required",
		})
		return
	}

	outcome, err := h.controller.SetInput(c.Request.Context(), id, req.Source)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

func respondOutcome(c *gin.Context, outcome *gateway.CommandOutcome) {
	c.JSON(http.StatusOK, types.CommandResponse{
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}
