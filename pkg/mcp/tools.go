package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all SmartThings devices of the account"),
		),
		s.handleListDevices,
	)

	// List TV devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_tv_devices",
			mcp.WithDescription("List all TV devices in SmartThings"),
		),
		s.handleListTVDevices,
	)

	// Get device info
	s.mcpServer.AddTool(
		mcp.NewTool("get_device_info",
			mcp.WithDescription("Get detailed information about a specific device, including its capabilities"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The device ID"),
			),
		),
		s.handleGetDeviceInfo,
	)

	// Get device status
	s.mcpServer.AddTool(
		mcp.NewTool("get_device_status",
			mcp.WithDescription("Get the current status of a device (power, volume, mute, channel, input)"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The device ID"),
			),
		),
		s.handleGetDeviceStatus,
	)

	// Power
	s.mcpServer.AddTool(
		mcp.NewTool("turn_tv_on_off",
			mcp.WithDescription("Turn Samsung TV on or off"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The TV device ID"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Enum("on", "off"),
				mcp.Description("Turn the TV on or off"),
			),
		),
		s.handleTurnTVOnOff,
	)

	// Volume
	s.mcpServer.AddTool(
		mcp.NewTool("change_tv_volume",
			mcp.WithDescription("Change Samsung TV volume"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The TV device ID"),
			),
			mcp.WithNumber("volume",
				mcp.Required(),
				mcp.Min(0),
				mcp.Max(100),
				mcp.Description("Volume level (0-100)"),
			),
		),
		s.handleChangeTVVolume,
	)

	// Mute
	s.mcpServer.AddTool(
		mcp.NewTool("mute_tv",
			mcp.WithDescription("Mute or unmute Samsung TV"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The TV device ID"),
			),
			mcp.WithBoolean("mute",
				mcp.Required(),
				mcp.Description("True to mute, false to unmute"),
			),
		),
		s.handleMuteTV,
	)

	// Channel
	s.mcpServer.AddTool(
		mcp.NewTool("change_tv_channel",
			mcp.WithDescription("Change Samsung TV channel"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The TV device ID"),
			),
			mcp.WithNumber("channel",
				mcp.Required(),
				mcp.Min(1),
				mcp.Description("Channel number (positive integer)"),
			),
		),
		s.handleChangeTVChannel,
	)

	// Input source
	s.mcpServer.AddTool(
		mcp.NewTool("change_tv_input",
			mcp.WithDescription("Change Samsung TV input source"),
			mcp.WithString("device_id",
				mcp.Required(),
				mcp.Description("The TV device ID"),
			),
			mcp.WithString("input_source",
				mcp.Required(),
				mcp.Description("Input source (e.g. 'HDMI1', 'HDMI2', 'digitalTv')"),
			),
		),
		s.handleChangeTVInput,
	)
}
