package capability

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator validates command arguments against the catalog's schemas.
// Compiled schemas are cached keyed by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// ValidateArguments checks args against the schema registered for the
// capability command. Commands not present in the catalog are passed
// through unvalidated; the remote API is the authority for those.
func (v *Validator) ValidateArguments(capabilityID, command string, args []any) error {
	schemaDoc, ok := ArgumentSchema(capabilityID, command)
	if !ok {
		return nil
	}

	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("compile argument schema for %s.%s: %w", capabilityID, command, err)
	}

	// Round-trip through JSON so numeric types match what the schema
	// library expects regardless of how the caller built the arguments.
	payload, err := normalize(args)
	if err != nil {
		return fmt.Errorf("encode arguments for %s.%s: %w", capabilityID, command, err)
	}

	if err := compiled.Validate(payload); err != nil {
		return fmt.Errorf("arguments for %s.%s: %w", capabilityID, command, err)
	}
	return nil
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaDocAny any
	if err := json.Unmarshal(schemaDoc, &schemaDocAny); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("arguments.json", schemaDocAny); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("arguments.json")
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}

func normalize(args []any) (any, error) {
	if args == nil {
		args = []any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
