package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/types"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// respondError maps gateway errors onto HTTP status codes. Every error
// reaches the caller as a structured body; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, smartthings.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{
			Error:   "auth_error",
			Message: err.Error(),
		})
	case errors.Is(err, smartthings.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Device not found",
		})
	case errors.Is(err, gateway.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_argument",
			Message: err.Error(),
		})
	case errors.Is(err, gateway.ErrUnsupportedCapability):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "unsupported_capability",
			Message: err.Error(),
		})
	case errors.Is(err, smartthings.ErrNetwork):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "network_error",
			Message: "SmartThings did not respond in time",
		})
	default:
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "smartthings_error",
			Message: err.Error(),
		})
	}
}
