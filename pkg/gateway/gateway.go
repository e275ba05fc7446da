// Package gateway translates the bridge's fixed operation catalog into
// authenticated SmartThings API calls and normalizes results and errors.
//
// Every operation is stateless relative to prior calls. Command operations
// resolve capability support first, so a command is never sent to a device
// that does not expose the capability; argument validation happens before
// any network round trip at all.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/capability"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

// API is the slice of the SmartThings client the gateway drives.
type API interface {
	ListDevices(ctx context.Context) ([]smartthings.Device, error)
	GetDevice(ctx context.Context, deviceID string) (*smartthings.Device, error)
	GetDeviceStatus(ctx context.Context, deviceID string) (*smartthings.DeviceStatus, error)
	ExecuteCommands(ctx context.Context, deviceID string, commands []smartthings.Command) (*smartthings.CommandResponse, error)
}

// Gateway implements Controller on top of the SmartThings API.
type Gateway struct {
	api       API
	validator *capability.Validator
	auditor   Auditor
	log       zerolog.Logger
}

var _ Controller = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithAuditor wires a command audit trail.
func WithAuditor(a Auditor) Option {
	return func(g *Gateway) { g.auditor = a }
}

// WithLogger sets the gateway logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

// New creates a Gateway over the given API client.
func New(api API, opts ...Option) *Gateway {
	g := &Gateway{
		api:       api,
		validator: capability.NewValidator(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ListDevices returns every device of the account.
func (g *Gateway) ListDevices(ctx context.Context) ([]smartthings.Device, error) {
	return g.api.ListDevices(ctx)
}

// ListTVDevices filters the listing down to TV/AV devices, preserving the
// order the API reported.
func (g *Gateway) ListTVDevices(ctx context.Context) ([]smartthings.Device, error) {
	devices, err := g.api.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	tvs := make([]smartthings.Device, 0, len(devices))
	for _, d := range devices {
		if capability.IsTVDevice(d.CapabilityIDs()) {
			tvs = append(tvs, d)
		}
	}
	return tvs, nil
}

// GetDeviceInfo returns the full descriptor of a device.
func (g *Gateway) GetDeviceInfo(ctx context.Context, deviceID string) (*smartthings.Device, error) {
	return g.api.GetDevice(ctx, deviceID)
}

// GetDeviceStatus returns the current attribute values of a device.
func (g *Gateway) GetDeviceStatus(ctx context.Context, deviceID string) (*smartthings.DeviceStatus, error) {
	return g.api.GetDeviceStatus(ctx, deviceID)
}

// SetPower issues a switch on/off command. Turning on an already-on device
// succeeds; the operation is idempotent on the SmartThings side.
func (g *Gateway) SetPower(ctx context.Context, deviceID string, on bool) (*CommandOutcome, error) {
	cmd := capability.CmdOff
	if on {
		cmd = capability.CmdOn
	}
	return g.sendCommand(ctx, deviceID, capability.Switch, cmd, nil)
}

// SetVolume sets the volume level. Levels outside [0,100] are rejected
// before any network call.
func (g *Gateway) SetVolume(ctx context.Context, deviceID string, level int) (*CommandOutcome, error) {
	return g.sendCommand(ctx, deviceID, capability.AudioVolume, capability.CmdSetVolume, []any{level})
}

// SetMute mutes or unmutes the device.
func (g *Gateway) SetMute(ctx context.Context, deviceID string, muted bool) (*CommandOutcome, error) {
	cmd := capability.CmdUnmute
	if muted {
		cmd = capability.CmdMute
	}
	return g.sendCommand(ctx, deviceID, capability.AudioVolume, cmd, nil)
}

// SetChannel tunes to a channel. The tvChannel capability takes the channel
// as a string, so the validated positive integer is forwarded in that form.
func (g *Gateway) SetChannel(ctx context.Context, deviceID string, channel int) (*CommandOutcome, error) {
	return g.sendCommand(ctx, deviceID, capability.TVChannel, capability.CmdSetTVChannel, []any{strconv.Itoa(channel)})
}

// SetInput switches the input source. When the device status advertises
// supportedInputSources, the source is checked against that list before the
// command goes out; devices that publish no list get the command forwarded
// and the remote API is the authority.
func (g *Gateway) SetInput(ctx context.Context, deviceID string, source string) (*CommandOutcome, error) {
	args := []any{source}
	if err := g.validator.ValidateArguments(capability.MediaInputSource, capability.CmdSetInputSource, args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	// The status document both proves capability support and carries the
	// advertised source list, so one read covers both checks.
	status, err := g.api.GetDeviceStatus(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if _, ok := status.Components["main"][capability.MediaInputSource]; !ok {
		return nil, fmt.Errorf("%w: device %s does not expose %s", ErrUnsupportedCapability, deviceID, capability.MediaInputSource)
	}
	if supported := status.SupportedInputSources(); len(supported) > 0 && !contains(supported, source) {
		return nil, fmt.Errorf("%w: input source %q not among supported sources %v", ErrInvalidArgument, source, supported)
	}

	return g.execute(ctx, deviceID, capability.MediaInputSource, capability.CmdSetInputSource, args)
}

// sendCommand is the common command path: validate arguments, resolve
// capability support, then execute. At most two network round trips.
func (g *Gateway) sendCommand(ctx context.Context, deviceID, capabilityID, command string, args []any) (*CommandOutcome, error) {
	if err := g.validator.ValidateArguments(capabilityID, command, args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	d, err := g.api.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !d.HasCapability(capabilityID) {
		return nil, fmt.Errorf("%w: device %s does not expose %s", ErrUnsupportedCapability, deviceID, capabilityID)
	}

	return g.execute(ctx, deviceID, capabilityID, command, args)
}

func (g *Gateway) execute(ctx context.Context, deviceID, capabilityID, command string, args []any) (*CommandOutcome, error) {
	resp, err := g.api.ExecuteCommands(ctx, deviceID, []smartthings.Command{{
		Component:  "main",
		Capability: capabilityID,
		Command:    command,
		Arguments:  args,
	}})

	outcome := &CommandOutcome{
		DeviceID:   deviceID,
		Capability: capabilityID,
		Command:    command,
		Arguments:  args,
	}
	if resp != nil && len(resp.Results) > 0 {
		outcome.Status = resp.Results[0].Status
	}

	g.audit(ctx, outcome, err)

	if err != nil {
		g.log.Warn().Err(err).
			Str("device_id", deviceID).
			Str("capability", capabilityID).
			Str("command", command).
			Msg("command failed")
		return nil, err
	}

	g.log.Info().
		Str("device_id", deviceID).
		Str("capability", capabilityID).
		Str("command", command).
		Str("status", outcome.Status).
		Msg("command executed")
	return outcome, nil
}

func (g *Gateway) audit(ctx context.Context, outcome *CommandOutcome, cmdErr error) {
	if g.auditor == nil {
		return
	}

	rec := CommandRecord{
		IssuedAt:   time.Now().UTC(),
		DeviceID:   outcome.DeviceID,
		Capability: outcome.Capability,
		Command:    outcome.Command,
		Status:     outcome.Status,
	}
	if raw, err := json.Marshal(outcome.Arguments); err == nil {
		rec.Arguments = string(raw)
	}
	if cmdErr != nil {
		rec.Error = cmdErr.Error()
	}

	if err := g.auditor.RecordCommand(ctx, rec); err != nil {
		g.log.Warn().Err(err).Msg("failed to record command audit entry")
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
