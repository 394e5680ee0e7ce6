package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/juration"
	"github.com/nmeilick/juration/common"
	convertconfig "github.com/nmeilick/juration/convert/config"
	serverconfig "github.com/nmeilick/juration/server/config"
	"github.com/urfave/cli/v2"
)

// EmbeddedPath names the embedded configuration in messages
const EmbeddedPath = "<embedded>"

// Config holds the application configuration
type Config struct {
	Convert *convertconfig.Config `hcl:"convert,block"`
	Server  *serverconfig.Config  `hcl:"server,block"`
}

// getConfigLocations returns all standard locations where config files are searched
func getConfigLocations() []string {
	var locations []string
	name := common.AppName

	// Next to the executable
	if execPath, err := os.Executable(); err == nil {
		locations = append(locations, filepath.Join(filepath.Dir(execPath), name+".hcl"))
	}

	// XDG paths for Linux, appropriate equivalents for Windows and macOS
	if userConfigFile, err := xdg.ConfigFile(name + ".hcl"); err == nil {
		locations = append(locations, userConfigFile)
	}
	if userConfigDir, err := xdg.ConfigFile(name); err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "config.hcl"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, "."+name, "config.hcl"),
			filepath.Join(homeDir, "."+name+".hcl"),
		)
	}

	switch runtime.GOOS {
	case "windows":
		if programData := os.Getenv("ProgramData"); programData != "" {
			locations = append(locations, filepath.Join(programData, name, "config.hcl"))
		}
	case "darwin":
		locations = append(locations,
			"/Library/Application Support/"+name+"/config.hcl",
			"/etc/"+name+"/config.hcl",
			"/etc/"+name+".hcl",
		)
	default:
		locations = append(locations,
			"/etc/"+name+"/config.hcl",
			"/etc/"+name+".hcl",
		)
	}

	return locations
}

// FindConfigFile looks for the configuration file in standard locations
func FindConfigFile() string {
	for _, loc := range getConfigLocations() {
		if stat, err := os.Stat(loc); err == nil && stat.Mode().IsRegular() {
			return loc
		}
	}
	return ""
}

// LoadConfig loads the configuration from the --config flag, a standard
// location or the embedded default, in that order.
func LoadConfig(c *cli.Context) (*Config, string, error) {
	path := c.String("config")
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		cfg, err := Decode(EmbeddedPath, juration.EmbeddedConfig)
		return cfg, EmbeddedPath, err
	}

	cfg, err := LoadFile(path)
	return cfg, path, err
}

// LoadFile decodes the configuration file at path
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return cfg, nil
}

// Decode decodes HCL source, name is used in diagnostics and must end in .hcl
func Decode(name string, src []byte) (*Config, error) {
	cfg := &Config{}
	if len(src) == 0 {
		return cfg, nil
	}
	if filepath.Ext(name) != ".hcl" {
		name = "config.hcl"
	}
	if err := hclsimple.Decode(name, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return cfg, nil
}
