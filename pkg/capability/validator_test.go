package capability

import "testing"

func TestValidateArguments_VolumeInRange(t *testing.T) {
	v := NewValidator()

	for _, level := range []int{0, 50, 100} {
		if err := v.ValidateArguments(AudioVolume, CmdSetVolume, []any{level}); err != nil {
			t.Errorf("volume %d should be valid, got: %v", level, err)
		}
	}
}

func TestValidateArguments_VolumeOutOfRange(t *testing.T) {
	v := NewValidator()

	for _, level := range []int{-1, 101, 500} {
		if err := v.ValidateArguments(AudioVolume, CmdSetVolume, []any{level}); err == nil {
			t.Errorf("volume %d should be rejected", level)
		}
	}
}

func TestValidateArguments_VolumeWrongType(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateArguments(AudioVolume, CmdSetVolume, []any{"loud"}); err == nil {
		t.Error("non-integer volume should be rejected")
	}
}

func TestValidateArguments_Channel(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateArguments(TVChannel, CmdSetTVChannel, []any{"7"}); err != nil {
		t.Errorf("channel \"7\" should be valid, got: %v", err)
	}
	for _, ch := range []string{"0", "-3", "abc", ""} {
		if err := v.ValidateArguments(TVChannel, CmdSetTVChannel, []any{ch}); err == nil {
			t.Errorf("channel %q should be rejected", ch)
		}
	}
}

func TestValidateArguments_InputSource(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateArguments(MediaInputSource, CmdSetInputSource, []any{"HDMI1"}); err != nil {
		t.Errorf("input source should be valid, got: %v", err)
	}
	if err := v.ValidateArguments(MediaInputSource, CmdSetInputSource, []any{""}); err == nil {
		t.Error("empty input source should be rejected")
	}
}

func TestValidateArguments_NoArgumentCommands(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateArguments(Switch, CmdOn, nil); err != nil {
		t.Errorf("switch on takes no arguments, got: %v", err)
	}
	if err := v.ValidateArguments(Switch, CmdOn, []any{1}); err == nil {
		t.Error("switch on with arguments should be rejected")
	}
	if err := v.ValidateArguments(AudioVolume, CmdMute, nil); err != nil {
		t.Errorf("mute takes no arguments, got: %v", err)
	}
}

func TestValidateArguments_UnknownCommandSkipsValidation(t *testing.T) {
	v := NewValidator()

	// Commands outside the catalog are the remote API's problem.
	if err := v.ValidateArguments("custom", "doThing", []any{"anything"}); err != nil {
		t.Errorf("unknown command should skip validation, got: %v", err)
	}
}

func TestValidateArguments_CachesCompiledSchemas(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateArguments(AudioVolume, CmdSetVolume, []any{10}); err != nil {
		t.Fatal(err)
	}
	if err := v.ValidateArguments(AudioVolume, CmdSetVolume, []any{20}); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	cacheSize := len(v.cache)
	v.mu.RUnlock()
	if cacheSize != 1 {
		t.Errorf("expected 1 cached schema, got %d", cacheSize)
	}
}

func TestIsTVDevice(t *testing.T) {
	if !IsTVDevice([]string{"ocf", AudioVolume, "custom.launchapp"}) {
		t.Error("device with audioVolume should be a TV device")
	}
	if IsTVDevice([]string{"contactSensor", "battery"}) {
		t.Error("sensor should not be a TV device")
	}
	if IsTVDevice(nil) {
		t.Error("empty capability set should not be a TV device")
	}
}
