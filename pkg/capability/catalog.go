// Package capability catalogs the SmartThings capabilities and commands the
// bridge drives, and validates command arguments before anything goes on
// the wire.
package capability

import "encoding/json"

// Capability ids used by Samsung TVs.
const (
	Switch           = "switch"
	AudioVolume      = "audioVolume"
	TVChannel        = "tvChannel"
	MediaInputSource = "mediaInputSource"
)

// Command names per capability.
const (
	CmdOn             = "on"
	CmdOff            = "off"
	CmdSetVolume      = "setVolume"
	CmdMute           = "mute"
	CmdUnmute         = "unmute"
	CmdSetTVChannel   = "setTvChannel"
	CmdSetInputSource = "setInputSource"
)

// Attribute names read from device status documents.
const (
	AttrSwitch                = "switch"
	AttrVolume                = "volume"
	AttrMute                  = "mute"
	AttrTVChannel             = "tvChannel"
	AttrInputSource           = "inputSource"
	AttrSupportedInputSources = "supportedInputSources"
)

// TVCapabilities marks a device as a TV/AV device when any of these appear
// on its main component.
var TVCapabilities = []string{Switch, AudioVolume, MediaInputSource, TVChannel}

// IsTVDevice reports whether any of ids marks a TV/AV device.
func IsTVDevice(ids []string) bool {
	for _, id := range ids {
		for _, tv := range TVCapabilities {
			if id == tv {
				return true
			}
		}
	}
	return false
}

// argumentSchemas holds the JSON Schema each command's positional argument
// list must satisfy. Commands without an entry take no arguments.
var argumentSchemas = map[string]json.RawMessage{
	schemaKey(AudioVolume, CmdSetVolume): json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"prefixItems": [{"type": "integer", "minimum": 0, "maximum": 100}],
		"items": false,
		"minItems": 1
	}`),
	schemaKey(TVChannel, CmdSetTVChannel): json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"prefixItems": [{"type": "string", "pattern": "^[1-9][0-9]*$"}],
		"items": false,
		"minItems": 1
	}`),
	schemaKey(MediaInputSource, CmdSetInputSource): json.RawMessage(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"prefixItems": [{"type": "string", "minLength": 1}],
		"items": false,
		"minItems": 1
	}`),
	schemaKey(Switch, CmdOn):          noArguments,
	schemaKey(Switch, CmdOff):         noArguments,
	schemaKey(AudioVolume, CmdMute):   noArguments,
	schemaKey(AudioVolume, CmdUnmute): noArguments,
}

var noArguments = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"maxItems": 0
}`)

// ArgumentSchema returns the argument schema for a capability command.
func ArgumentSchema(capabilityID, command string) (json.RawMessage, bool) {
	s, ok := argumentSchemas[schemaKey(capabilityID, command)]
	return s, ok
}

func schemaKey(capabilityID, command string) string {
	return capabilityID + "/" + command
}
