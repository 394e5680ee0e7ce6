package convert

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/juration/common"
	"github.com/nmeilick/juration/common/duration"
	"github.com/nmeilick/juration/config"
	"github.com/nmeilick/juration/format"
	"github.com/nmeilick/juration/parse"
	"github.com/nmeilick/juration/response"
	"github.com/nmeilick/juration/units"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file",
			EnvVars: []string{common.EnvConfigPath},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose output",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Print results as JSON, one object per line",
		},
	}
}

// ParseCommand returns the CLI command converting text to seconds
func ParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "Convert a Norwegian duration to seconds",
		ArgsUsage: "[TEXT...]",
		Description: "Joins the arguments into one expression, e.g. \"1 time og 30 minutter\".\n" +
			"Without arguments every line read from stdin is converted.",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:    "fallback",
				Aliases: []string{"f"},
				Usage:   "Also accept Go notation such as 1h30m or 2w",
			},
			&cli.BoolFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "Print a Go duration instead of seconds",
			},
			&cli.BoolFlag{
				Name:    "human",
				Aliases: []string{"H"},
				Usage:   "Print seconds with thousands separators",
			},
		),
		Action: runParse,
	}
}

// StringifyCommand returns the CLI command converting seconds to text
func StringifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "stringify",
		Aliases:   []string{"humanize", "s"},
		Usage:     "Convert seconds to a Norwegian duration",
		ArgsUsage: "[SECONDS...]",
		Description: "Each argument is rendered on its own line. Arguments that are not numbers\n" +
			"are parsed as Norwegian durations first. Without arguments stdin is read.",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "Output format: chrono, micro, short or long",
			},
			&cli.IntFlag{
				Name:    "units",
				Aliases: []string{"u"},
				Usage:   "Maximum number of units to render, 0 renders all",
			},
			&cli.BoolFlag{
				Name:    "weeks",
				Aliases: []string{"w"},
				Usage:   "Include weeks",
			},
			&cli.BoolFlag{
				Name:    "english",
				Aliases: []string{"e"},
				Usage:   "Also print an English rendering",
			},
		),
		Action: runStringify,
	}
}

// inputs returns the arguments joined into one expression, or the non-empty
// lines of stdin when no arguments are given and stdin is not a terminal
func inputs(c *cli.Context, join bool) ([]string, error) {
	if args := c.Args().Slice(); len(args) > 0 {
		if join {
			return []string{common.JoinArgs(args)}, nil
		}
		return args, nil
	}

	reader := c.App.Reader
	if reader == nil {
		reader = os.Stdin
	}
	if f, ok := reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("missing argument")
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("missing argument")
	}
	return lines, nil
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func runParse(c *cli.Context) error {
	log := common.NewLogger(c)

	cfg, path, err := config.LoadConvertConfig(c)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log.Debug().Str("config", path).Msg("Configuration loaded")

	list, err := inputs(c, true)
	if err != nil {
		return err
	}

	fallback := cfg.Fallback || c.Bool("fallback")
	out := writer(c)
	enc := json.NewEncoder(out)

	for _, input := range list {
		secs, err := parseInput(input, fallback)
		if err != nil {
			log.Error().Err(err).Str("input", input).Msg("Failed to parse")
			return fmt.Errorf("%q: %w", input, err)
		}
		log.Info().Str("input", input).Float64("seconds", secs).Msg("Parsed")

		switch {
		case c.Bool("json"):
			if err := enc.Encode(response.NewParse(input, secs)); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		case c.Bool("duration"):
			fmt.Fprintln(out, response.NewParse(input, secs).Duration)
		case c.Bool("human"):
			fmt.Fprintln(out, humanize.Commaf(secs))
		default:
			fmt.Fprintln(out, strconv.FormatFloat(secs, 'f', -1, 64))
		}
	}
	return nil
}

func parseInput(input string, fallback bool) (float64, error) {
	if !fallback {
		return parse.Parse(input)
	}
	d, err := duration.ParseNorwegian(input)
	if err != nil {
		return 0, err
	}
	return d.Seconds(), nil
}

func stringifyOptions(c *cli.Context, defaults *format.Options) *format.Options {
	opts := *defaults
	if c.IsSet("format") {
		opts.Format = units.Format(strings.ToLower(c.String("format")))
	}
	if c.IsSet("units") {
		opts.UnitCount = c.Int("units")
	}
	if c.IsSet("weeks") {
		opts.Weeks = c.Bool("weeks")
	}
	return &opts
}

func runStringify(c *cli.Context) error {
	log := common.NewLogger(c)

	cfg, path, err := config.LoadConvertConfig(c)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log.Debug().Str("config", path).Msg("Configuration loaded")

	list, err := inputs(c, false)
	if err != nil {
		return err
	}

	opts := stringifyOptions(c, cfg.Options())
	out := writer(c)
	enc := json.NewEncoder(out)

	for _, input := range list {
		secs, err := seconds(input, log)
		if err != nil {
			return err
		}

		text, err := format.Stringify(secs, opts)
		if err != nil {
			log.Error().Err(err).Float64("seconds", secs).Msg("Failed to stringify")
			return err
		}

		resp := response.StringifyResponse{
			Seconds: secs,
			Format:  string(opts.Format),
			Text:    text,
		}
		if c.Bool("english") {
			resp.English = duration.String(time.Duration(secs * float64(time.Second)))
		}

		switch {
		case c.Bool("json"):
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		case resp.English != "":
			fmt.Fprintf(out, "%s (%s)\n", text, resp.English)
		default:
			fmt.Fprintln(out, text)
		}
	}
	return nil
}

// seconds reads a number of seconds, falling back to a Norwegian expression
func seconds(input string, log zerolog.Logger) (float64, error) {
	if v, err := strconv.ParseFloat(input, 64); err == nil {
		return v, nil
	}
	v, err := parse.Parse(input)
	if err != nil {
		log.Error().Err(err).Str("input", input).Msg("Not a number of seconds")
		return 0, fmt.Errorf("%q is neither seconds nor a duration: %w", input, err)
	}
	log.Debug().Str("input", input).Float64("seconds", v).Msg("Parsed input")
	return v, nil
}
