package common

import "strings"

// Application name constants
const (
	// AppName is the main application name
	AppName = "juration"
)

// Environment variable names
var (
	EnvPrefix     = strings.ToUpper(AppName) + "_"
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Binary names used for symlinks
const (
	ParseBinary    = "jparse"
	HumanizeBinary = "jhumanize"
)
