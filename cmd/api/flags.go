package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

var FlagLogLevel = &cli.StringFlag{
	Name:     "log-level",
	EnvVars:  []string{"LOG_LEVEL"},
	Value:    "info",
	Required: false,
}

var FlagLogWriter = &cli.StringFlag{
	Name:     "log-writer",
	Usage:    "one of: [console, json]",
	EnvVars:  []string{"LOG_WRITER"},
	Value:    "console",
	Required: false,
}

var FlagToken = &cli.StringFlag{
	Name:     "token",
	Usage:    "SmartThings personal access token",
	EnvVars:  []string{"SMARTTHINGS_ACCESS_TOKEN"},
	Required: false,
}

var FlagBaseURL = &cli.StringFlag{
	Name:     "base-url",
	Usage:    "SmartThings API base URL",
	EnvVars:  []string{"SMARTTHINGS_BASE_URL"},
	Value:    "https://api.smartthings.com/v1",
	Required: false,
}

var FlagTimeout = &cli.DurationFlag{
	Name:     "timeout",
	Usage:    "per-request timeout for SmartThings API calls",
	EnvVars:  []string{"SMARTTHINGS_TIMEOUT"},
	Value:    15 * time.Second,
	Required: false,
}

var FlagAuditDB = &cli.StringFlag{
	Name:     "audit-db",
	Usage:    "path to the command audit database (empty disables auditing)",
	EnvVars:  []string{"AUDIT_DB_PATH"},
	Required: false,
}

var FlagListen = &cli.StringFlag{
	Name:     "listen",
	Usage:    "address for the REST API to listen on",
	EnvVars:  []string{"API_LISTEN_ADDR"},
	Value:    ":8080",
	Required: false,
}
