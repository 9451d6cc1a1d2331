package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/msto63/strkit/foundation/core/config"
	skerror "github.com/msto63/strkit/foundation/core/error"
	skerrors "github.com/msto63/strkit/foundation/core/errors"
	sklog "github.com/msto63/strkit/foundation/core/log"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

// envPrefix is the prefix of environment variables overriding config keys.
const envPrefix = "STRKIT"

// errNotFound ends a command whose lookup found nothing. It is reported on
// stdout and exits with status 1 without an error message.
var errNotFound = skerror.New("not found").WithCode(skerror.CodeNotFound)

var configDefaults = map[string]interface{}{
	"log.level":    "warn",
	"log.format":   "text",
	"output.color": true,
}

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
	color     bool

	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *sklog.Logger
	styles   styles
	entities stringx.EntityTable
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		styles:   newStyles(stderr, false),
		entities: stringx.DefaultEntities(),
	}
}

// Execute runs the command line of the current process.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	a := newApp(stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errNotFound):
		fmt.Fprintln(stdout, "not found")
	default:
		if a.logger != nil {
			a.logger.LogError(err)
		}
		a.printError(err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strkit",
		Short: "strkit - string toolkit",
		Long: `strkit exposes the stringx helpers on the command line.

Indices count characters (runes), not bytes. Commands print their result on
stdout; lookups that find nothing print "not found" and exit with status 1.

Configuration is read from --config (TOML or YAML) and STRKIT_* environment
variables, e.g. STRKIT_LOG_LEVEL=debug.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, console, logfmt")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(
		newLengthCmd(a),
		newCharCmd(a),
		newSliceCmd(a),
		newIndexCmd(a),
		newCutCmd(a),
		newSearchCmd(a),
		newHasCmd(a),
		newEmailCmd(a),
		newBase64Cmd(a),
		newCapitalizeCmd(a),
		newDateCmd(a),
		newReplaceCmd(a),
		newURLEncodeCmd(a),
		newEntitiesCmd(a),
		newHashCmd(a),
		newFloatCmd(a),
		newUUIDCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger, styles and entity
// table. Flags take precedence over environment and file values.
func (a *app) setup() error {
	options := config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: envPrefix,
		Defaults:  configDefaults,
	}

	if a.cfgFile != "" {
		cfg, err := config.LoadWithOptions(a.cfgFile, options)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		a.cfg = config.Empty(options)
	}

	levelName := a.cfg.GetString("log.level")
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := sklog.ParseLevel(levelName)
	if err != nil {
		return skerrors.ConfigInvalidValue("log.level", levelName, "trace, debug, info, warn, error or fatal")
	}

	formatName := a.cfg.GetString("log.format")
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	format, err := sklog.ParseFormat(formatName)
	if err != nil {
		return skerrors.ConfigInvalidValue("log.format", formatName, "text, json, console or logfmt")
	}

	a.logger = sklog.NewWithConfig(sklog.Config{
		Level:  level,
		Format: format,
		Output: a.stderr,
		Name:   "strkit",
	})
	sklog.SetDefault(a.logger)
	a.color = !a.noColor && a.cfg.GetBool("output.color", true)
	a.styles = newStyles(a.stderr, a.color)

	extra := a.cfg.GetStringMap("entities")
	a.entities = stringx.DefaultEntities().WithMap(extra)

	if a.logger.IsLevelEnabled(sklog.LevelDebug) {
		a.logger.Debug("configuration loaded", sklog.Fields{
			"config":         a.cfg.FilePath(),
			"keys":           strings.Join(a.cfg.Keys(), ","),
			"level":          level.String(),
			"format":         format.String(),
			"extra_entities": len(extra),
		})
	}
	return nil
}

// timed runs fn under a debug-level timer on a logger named after the
// command, e.g. strkit.search.
func (a *app) timed(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.WithName("strkit." + cmd.Name()).StartTimer(cmd.Name())
		err := fn(cmd, args)
		timer.WithField("success", err == nil).Stop()
		return err
	}
}

func (a *app) println(v interface{}) {
	fmt.Fprintln(a.stdout, v)
}

func (a *app) printError(err error) {
	fmt.Fprintln(a.stderr, a.styles.renderError(err))
}

// parseIndex converts a command argument to a character index.
func parseIndex(op, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, skerrors.InvalidInput("cli", op, arg, "integer index")
	}
	return n, nil
}

// parseRune converts a command argument holding exactly one character.
func parseRune(op, arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, skerrors.InvalidInput("cli", op, arg, "single character")
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}
