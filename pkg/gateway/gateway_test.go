package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListDevices(ctx context.Context) ([]smartthings.Device, error) {
	args := m.Called(ctx)

	var devices []smartthings.Device
	if v := args.Get(0); v != nil {
		devices = v.([]smartthings.Device)
	}
	return devices, args.Error(1)
}

func (m *MockAPI) GetDevice(ctx context.Context, deviceID string) (*smartthings.Device, error) {
	args := m.Called(ctx, deviceID)

	var d *smartthings.Device
	if v := args.Get(0); v != nil {
		d = v.(*smartthings.Device)
	}
	return d, args.Error(1)
}

func (m *MockAPI) GetDeviceStatus(ctx context.Context, deviceID string) (*smartthings.DeviceStatus, error) {
	args := m.Called(ctx, deviceID)

	var s *smartthings.DeviceStatus
	if v := args.Get(0); v != nil {
		s = v.(*smartthings.DeviceStatus)
	}
	return s, args.Error(1)
}

func (m *MockAPI) ExecuteCommands(ctx context.Context, deviceID string, commands []smartthings.Command) (*smartthings.CommandResponse, error) {
	args := m.Called(ctx, deviceID, commands)

	var resp *smartthings.CommandResponse
	if v := args.Get(0); v != nil {
		resp = v.(*smartthings.CommandResponse)
	}
	return resp, args.Error(1)
}

var _ gateway.API = &MockAPI{}

type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) RecordCommand(ctx context.Context, rec gateway.CommandRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

var _ gateway.Auditor = &MockAuditor{}

func tvDevice(id, label string, capabilities ...string) smartthings.Device {
	refs := make([]smartthings.CapabilityRef, 0, len(capabilities))
	for _, c := range capabilities {
		refs = append(refs, smartthings.CapabilityRef{ID: c, Version: 1})
	}
	return smartthings.Device{
		DeviceID: id,
		Name:     "[TV] Samsung",
		Label:    label,
		Components: []smartthings.Component{
			{ID: "main", Capabilities: refs},
		},
	}
}

func accepted() *smartthings.CommandResponse {
	return &smartthings.CommandResponse{
		Results: []smartthings.CommandResult{{ID: "cmd-1", Status: "ACCEPTED"}},
	}
}

func fixtureDevices() []smartthings.Device {
	return []smartthings.Device{
		tvDevice("tv-1", "Living Room TV", "switch", "audioVolume", "tvChannel", "mediaInputSource"),
		tvDevice("sensor-1", "Front Door", "contactSensor", "battery"),
		tvDevice("tv-2", "Bedroom TV", "switch", "audioVolume"),
		tvDevice("thermostat-1", "Hallway", "thermostatMode", "temperatureMeasurement"),
		tvDevice("tv-3", "Kitchen TV", "mediaInputSource"),
	}
}

func TestListTVDevices_FiltersAndPreservesOrder(t *testing.T) {
	api := &MockAPI{}
	api.On("ListDevices", mock.Anything).Return(fixtureDevices(), nil)

	g := gateway.New(api)
	tvs, err := g.ListTVDevices(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(tvs))
	for _, d := range tvs {
		ids = append(ids, d.DeviceID)
	}
	assert.Equal(t, []string{"tv-1", "tv-2", "tv-3"}, ids)
}

func TestListTVDevices_Empty(t *testing.T) {
	api := &MockAPI{}
	api.On("ListDevices", mock.Anything).Return([]smartthings.Device{
		tvDevice("sensor-1", "Front Door", "contactSensor"),
	}, nil)

	g := gateway.New(api)
	tvs, err := g.ListTVDevices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tvs)
}

func TestSetVolume_OutOfRangeMakesNoNetworkCall(t *testing.T) {
	for _, level := range []int{-1, 101, 1000} {
		api := &MockAPI{}
		g := gateway.New(api)

		_, err := g.SetVolume(context.Background(), "tv-1", level)
		require.Error(t, err)
		assert.ErrorIs(t, err, gateway.ErrInvalidArgument)

		api.AssertNotCalled(t, "GetDevice", mock.Anything, mock.Anything)
		api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestSetVolume_ForwardsLevelVerbatim(t *testing.T) {
	api := &MockAPI{}
	d := tvDevice("tv-1", "Living Room TV", "switch", "audioVolume")
	api.On("GetDevice", mock.Anything, "tv-1").Return(&d, nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", []smartthings.Command{{
		Component:  "main",
		Capability: "audioVolume",
		Command:    "setVolume",
		Arguments:  []any{37},
	}}).Return(accepted(), nil)

	g := gateway.New(api)
	outcome, err := g.SetVolume(context.Background(), "tv-1", 37)
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", outcome.Status)
	api.AssertExpectations(t)
}

func TestSetChannel_RejectsNonPositive(t *testing.T) {
	api := &MockAPI{}
	g := gateway.New(api)

	for _, ch := range []int{0, -5} {
		_, err := g.SetChannel(context.Background(), "tv-1", ch)
		assert.ErrorIs(t, err, gateway.ErrInvalidArgument)
	}
	api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetChannel_SendsChannelAsString(t *testing.T) {
	api := &MockAPI{}
	d := tvDevice("tv-1", "Living Room TV", "tvChannel")
	api.On("GetDevice", mock.Anything, "tv-1").Return(&d, nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", []smartthings.Command{{
		Component:  "main",
		Capability: "tvChannel",
		Command:    "setTvChannel",
		Arguments:  []any{"12"},
	}}).Return(accepted(), nil)

	g := gateway.New(api)
	_, err := g.SetChannel(context.Background(), "tv-1", 12)
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestSendCommand_UnsupportedCapability(t *testing.T) {
	api := &MockAPI{}
	d := tvDevice("plug-1", "Desk Plug", "switch")
	api.On("GetDevice", mock.Anything, "plug-1").Return(&d, nil)

	g := gateway.New(api)
	_, err := g.SetChannel(context.Background(), "plug-1", 7)
	assert.ErrorIs(t, err, gateway.ErrUnsupportedCapability)
	api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetPower_IdempotentOnAlreadyOnDevice(t *testing.T) {
	api := &MockAPI{}
	d := tvDevice("tv-1", "Living Room TV", "switch")
	api.On("GetDevice", mock.Anything, "tv-1").Return(&d, nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", mock.Anything).Return(accepted(), nil)

	g := gateway.New(api)

	// Issuing "on" twice in sequence must yield two successes.
	for i := 0; i < 2; i++ {
		outcome, err := g.SetPower(context.Background(), "tv-1", true)
		require.NoError(t, err)
		assert.Equal(t, "on", outcome.Command)
	}
	api.AssertNumberOfCalls(t, "ExecuteCommands", 2)
}

func TestCommands_UnknownDevice(t *testing.T) {
	api := &MockAPI{}
	api.On("GetDevice", mock.Anything, "missing").Return(nil, smartthings.ErrDeviceNotFound)
	api.On("GetDeviceStatus", mock.Anything, "missing").Return(nil, smartthings.ErrDeviceNotFound)

	g := gateway.New(api)
	ctx := context.Background()

	_, err := g.SetPower(ctx, "missing", true)
	assert.ErrorIs(t, err, smartthings.ErrDeviceNotFound)

	_, err = g.SetVolume(ctx, "missing", 10)
	assert.ErrorIs(t, err, smartthings.ErrDeviceNotFound)

	_, err = g.SetInput(ctx, "missing", "HDMI1")
	assert.ErrorIs(t, err, smartthings.ErrDeviceNotFound)

	api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
}

func statusWithInputs(sources ...any) *smartthings.DeviceStatus {
	return &smartthings.DeviceStatus{
		Components: map[string]smartthings.ComponentStatus{
			"main": {
				"mediaInputSource": {
					"inputSource":           {Value: "digitalTv"},
					"supportedInputSources": {Value: sources},
				},
			},
		},
	}
}

func TestSetInput_RejectsUnadvertisedSource(t *testing.T) {
	api := &MockAPI{}
	api.On("GetDeviceStatus", mock.Anything, "tv-1").
		Return(statusWithInputs("digitalTv", "HDMI1", "HDMI2"), nil)

	g := gateway.New(api)
	_, err := g.SetInput(context.Background(), "tv-1", "HDMI4")
	assert.ErrorIs(t, err, gateway.ErrInvalidArgument)
	api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetInput_AdvertisedSource(t *testing.T) {
	api := &MockAPI{}
	api.On("GetDeviceStatus", mock.Anything, "tv-1").
		Return(statusWithInputs("digitalTv", "HDMI1"), nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", []smartthings.Command{{
		Component:  "main",
		Capability: "mediaInputSource",
		Command:    "setInputSource",
		Arguments:  []any{"HDMI1"},
	}}).Return(accepted(), nil)

	g := gateway.New(api)
	outcome, err := g.SetInput(context.Background(), "tv-1", "HDMI1")
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", outcome.Status)
	api.AssertExpectations(t)
}

func TestSetInput_NoAdvertisedListForwards(t *testing.T) {
	api := &MockAPI{}
	status := &smartthings.DeviceStatus{
		Components: map[string]smartthings.ComponentStatus{
			"main": {
				"mediaInputSource": {
					"inputSource": {Value: "HDMI1"},
				},
			},
		},
	}
	api.On("GetDeviceStatus", mock.Anything, "tv-1").Return(status, nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", mock.Anything).Return(accepted(), nil)

	g := gateway.New(api)
	_, err := g.SetInput(context.Background(), "tv-1", "AV1")
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestSetInput_DeviceWithoutInputCapability(t *testing.T) {
	api := &MockAPI{}
	status := &smartthings.DeviceStatus{
		Components: map[string]smartthings.ComponentStatus{
			"main": {
				"switch": {"switch": {Value: "on"}},
			},
		},
	}
	api.On("GetDeviceStatus", mock.Anything, "plug-1").Return(status, nil)

	g := gateway.New(api)
	_, err := g.SetInput(context.Background(), "plug-1", "HDMI1")
	assert.ErrorIs(t, err, gateway.ErrUnsupportedCapability)
	api.AssertNotCalled(t, "ExecuteCommands", mock.Anything, mock.Anything, mock.Anything)
}

func TestAudit_RecordsSuccessAndFailure(t *testing.T) {
	api := &MockAPI{}
	auditor := &MockAuditor{}
	d := tvDevice("tv-1", "Living Room TV", "switch")
	api.On("GetDevice", mock.Anything, "tv-1").Return(&d, nil)

	api.On("ExecuteCommands", mock.Anything, "tv-1", mock.Anything).
		Return(accepted(), nil).Once()
	api.On("ExecuteCommands", mock.Anything, "tv-1", mock.Anything).
		Return(nil, smartthings.ErrNetwork).Once()

	auditor.On("RecordCommand", mock.Anything, mock.MatchedBy(func(rec gateway.CommandRecord) bool {
		return rec.DeviceID == "tv-1" && rec.Capability == "switch" && rec.Error == ""
	})).Return(nil).Once()
	auditor.On("RecordCommand", mock.Anything, mock.MatchedBy(func(rec gateway.CommandRecord) bool {
		return rec.DeviceID == "tv-1" && rec.Error != ""
	})).Return(nil).Once()

	g := gateway.New(api, gateway.WithAuditor(auditor))
	ctx := context.Background()

	_, err := g.SetPower(ctx, "tv-1", true)
	require.NoError(t, err)

	_, err = g.SetPower(ctx, "tv-1", false)
	assert.ErrorIs(t, err, smartthings.ErrNetwork)

	auditor.AssertExpectations(t)
}

func TestAudit_FailureDoesNotFailCommand(t *testing.T) {
	api := &MockAPI{}
	auditor := &MockAuditor{}
	d := tvDevice("tv-1", "Living Room TV", "switch")
	api.On("GetDevice", mock.Anything, "tv-1").Return(&d, nil)
	api.On("ExecuteCommands", mock.Anything, "tv-1", mock.Anything).Return(accepted(), nil)
	auditor.On("RecordCommand", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	g := gateway.New(api, gateway.WithAuditor(auditor))
	_, err := g.SetPower(context.Background(), "tv-1", true)
	require.NoError(t, err)
}
