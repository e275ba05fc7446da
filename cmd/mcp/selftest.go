package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sourcegraph/conc"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/capability"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

type selfTestOutput struct {
	Server struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"server"`
	SmartThings struct {
		BaseURL     string `json:"base_url"`
		Reachable   bool   `json:"reachable"`
		Error       string `json:"error,omitempty"`
		DeviceCount int    `json:"device_count"`
		TVCount     int    `json:"tv_count"`
	} `json:"smartthings"`
	TVs []tvProbe `json:"tvs"`
}

type tvProbe struct {
	DeviceID     string   `json:"device_id"`
	Label        string   `json:"label"`
	Capabilities []string `json:"capabilities"`
	StatusOK     bool     `json:"status_ok"`
	Power        string   `json:"power,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// runSelfTest lists the account's devices, probes the status of every
// detected TV and prints a JSON report to stdout.
func runSelfTest(ctx context.Context, gw *gateway.Gateway, baseURL string) error {
	var out selfTestOutput
	out.Server.Name = "smartthings-mcp"
	out.Server.Version = "1.0.0"
	out.SmartThings.BaseURL = baseURL
	out.TVs = []tvProbe{}

	devices, err := gw.ListDevices(ctx)
	if err != nil {
		out.SmartThings.Error = err.Error()
		if encErr := writeReport(out); encErr != nil {
			return encErr
		}
		return fmt.Errorf("self-test failed: %w", err)
	}

	out.SmartThings.Reachable = true
	out.SmartThings.DeviceCount = len(devices)

	tvs, err := gw.ListTVDevices(ctx)
	if err != nil {
		out.SmartThings.Error = err.Error()
		if encErr := writeReport(out); encErr != nil {
			return encErr
		}
		return fmt.Errorf("self-test failed: %w", err)
	}
	out.SmartThings.TVCount = len(tvs)

	probes := make([]tvProbe, len(tvs))
	var wg conc.WaitGroup
	for i := range tvs {
		i := i
		wg.Go(func() {
			tv := &tvs[i]
			probe := tvProbe{
				DeviceID:     tv.DeviceID,
				Label:        tv.DisplayName(),
				Capabilities: tv.CapabilityIDs(),
			}

			status, err := gw.GetDeviceStatus(ctx, tv.DeviceID)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.StatusOK = true
				if power, ok := status.StringAttribute(capability.Switch, capability.AttrSwitch); ok {
					probe.Power = power
				}
			}
			probes[i] = probe
		})
	}
	wg.Wait()
	out.TVs = probes

	return writeReport(out)
}

func writeReport(out selfTestOutput) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
