package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/types"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

// AuditReader reads the command audit trail.
type AuditReader interface {
	RecentCommands(ctx context.Context, limit int) ([]gateway.CommandRecord, error)
}

// AuditHandler handles the audit trail endpoint
type AuditHandler struct {
	reader AuditReader
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(reader AuditReader) *AuditHandler {
	return &AuditHandler{reader: reader}
}

// RecentCommands handles GET /audit
func (h *AuditHandler) RecentCommands(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.reader.RecentCommands(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "audit_error",
			Message: err.Error(),
		})
		return
	}

	entries := make([]types.AuditEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, types.AuditEntry{
			IssuedAt:   rec.IssuedAt,
			DeviceID:   rec.DeviceID,
			Capability: rec.Capability,
			Command:    rec.Command,
			Arguments:  rec.Arguments,
			Status:     rec.Status,
			Error:      rec.Error,
		})
	}

	c.JSON(http.StatusOK, types.AuditResponse{
		Commands: entries,
		Count:    len(entries),
	})
}
