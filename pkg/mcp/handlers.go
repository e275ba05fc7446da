package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.controller.ListDevices(ctx)
	if err != nil {
		return toolError("failed to list devices", err), nil
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for i := range devices {
		infos = append(infos, deviceToInfo(&devices[i]))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListTVDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := s.controller.ListTVDevices(ctx)
	if err != nil {
		return toolError("failed to list TV devices", err), nil
	}

	infos := make([]DeviceInfo, 0, len(devices))
	for i := range devices {
		infos = append(infos, deviceToInfo(&devices[i]))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDeviceInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := s.controller.GetDeviceInfo(ctx, deviceID)
	if err != nil {
		return toolError(fmt.Sprintf("failed to get device %s", deviceID), err), nil
	}

	out := GetDeviceInfoOutput{Device: deviceToInfo(d)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDeviceStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, err := s.controller.GetDeviceStatus(ctx, deviceID)
	if err != nil {
		return toolError(fmt.Sprintf("failed to get status for device %s", deviceID), err), nil
	}

	out := GetDeviceStatusOutput{
		DeviceID: deviceID,
		Summary:  summarize(status),
	}
	if raw, err := json.Marshal(status); err == nil {
		out.Raw = raw
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnTVOnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action, err := requiredString(request, "action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if action != "on" && action != "off" {
		return mcp.NewToolResultError(`parameter "action" must be "on" or "off"`), nil
	}

	outcome, err := s.controller.SetPower(ctx, deviceID, action == "on")
	if err != nil {
		return toolError(fmt.Sprintf("failed to turn TV %s", action), err), nil
	}

	out := commandOutput(outcome, fmt.Sprintf("TV turned %s", action))
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleChangeTVVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	volume, err := requiredInt(request, "volume")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := s.controller.SetVolume(ctx, deviceID, volume)
	if err != nil {
		return toolError("failed to change volume", err), nil
	}

	out := commandOutput(outcome, fmt.Sprintf("Volume set to %d", volume))
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleMuteTV(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	muted, err := requiredBool(request, "mute")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := s.controller.SetMute(ctx, deviceID, muted)
	if err != nil {
		return toolError("failed to change mute state", err), nil
	}

	message := "TV unmuted"
	if muted {
		message = "TV muted"
	}
	out := commandOutput(outcome, message)
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleChangeTVChannel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	channel, err := requiredInt(request, "channel")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := s.controller.SetChannel(ctx, deviceID, channel)
	if err != nil {
		return toolError("failed to change channel", err), nil
	}

	out := commandOutput(outcome, fmt.Sprintf("Channel changed to %d", channel))
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleChangeTVInput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deviceID, err := requiredString(request, "device_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	source, err := requiredString(request, "input_source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := s.controller.SetInput(ctx, deviceID, source)
	if err != nil {
		return toolError("failed to change input source", err), nil
	}

	out := commandOutput(outcome, fmt.Sprintf("Input changed to %s", source))
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

// errorKind maps the gateway error taxonomy to a stable machine-readable tag.
func errorKind(err error) string {
	switch {
	case errors.Is(err, smartthings.ErrConfig):
		return "config_error"
	case errors.Is(err, smartthings.ErrUnauthorized):
		return "auth_error"
	case errors.Is(err, smartthings.ErrDeviceNotFound):
		return "not_found"
	case errors.Is(err, gateway.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, gateway.ErrUnsupportedCapability):
		return "unsupported_capability"
	case errors.Is(err, smartthings.ErrNetwork):
		return "network_error"
	default:
		return "error"
	}
}

func toolError(context string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s: %s", errorKind(err), context, err))
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredInt(request mcp.CallToolRequest, key string) (int, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", key)
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return int(f), nil
}

func requiredBool(request mcp.CallToolRequest, key string) (bool, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return false, fmt.Errorf("required parameter %q is missing", key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q must be a boolean", key)
	}
	return b, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
