package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nmeilick/juration"
	"github.com/nmeilick/juration/common"
	"github.com/nmeilick/juration/config"
	convertconfig "github.com/nmeilick/juration/convert/config"
	serverconfig "github.com/nmeilick/juration/server/config"
	"github.com/urfave/cli/v2"
)

// Links are the symlink names that run a single command directly
var Links = []string{common.ParseBinary, common.HumanizeBinary}

// Commands returns the CLI commands for setup tasks
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Perform setup tasks",
		Subcommands: []*cli.Command{
			{
				Name:   "links",
				Usage:  "Setup symbolic links for " + strings.Join(Links, ", "),
				Action: runSetupLinks,
			},
			{
				Name:   "sample-config",
				Usage:  "Print a sample configuration file to stdout",
				Action: runSampleConfig,
			},
			{
				Name:   "embedded-config",
				Usage:  "Print the embedded configuration to stdout",
				Action: runEmbeddedConfig,
			},
		},
	}
}

// SampleConfig returns a commented sample configuration file
func SampleConfig() string {
	return strings.Join([]string{
		"# " + common.AppName + " configuration",
		"",
		convertconfig.GetSampleConfig(),
		"",
		serverconfig.GetSampleConfig(),
		"",
	}, "\n")
}

func runSetupLinks(c *cli.Context) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	execDir := filepath.Dir(execPath)
	execName := filepath.Base(execPath)

	for _, link := range Links {
		linkPath := filepath.Join(execDir, link)

		fileInfo, err := os.Lstat(linkPath)
		if err == nil {
			if fileInfo.Mode()&os.ModeSymlink == 0 {
				fmt.Printf("Skipping %s: file exists and is not a symlink\n", link)
				continue
			}
			if err := os.Remove(linkPath); err != nil {
				return fmt.Errorf("failed to remove existing symlink %s: %w", link, err)
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check if %s exists: %w", link, err)
		}

		if err := os.Symlink(execName, linkPath); err != nil {
			return fmt.Errorf("failed to create symlink %s: %w", link, err)
		}

		fmt.Printf("Created symlink: %s -> %s\n", link, execName)
	}

	return nil
}

func runSampleConfig(c *cli.Context) error {
	sample := SampleConfig()
	// Never hand out a sample that does not load
	if _, err := config.Decode("sample.hcl", []byte(sample)); err != nil {
		return fmt.Errorf("sample configuration is invalid: %w", err)
	}
	fmt.Print(sample)
	return nil
}

func runEmbeddedConfig(c *cli.Context) error {
	if len(juration.EmbeddedConfig) == 0 {
		return fmt.Errorf("no embedded configuration available")
	}
	fmt.Print(string(juration.EmbeddedConfig))
	return nil
}
