package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/msto63/exline/excmd"
	"github.com/msto63/exline/excmd/mapfile"
)

var (
	mapfilePath string
	scopeFlag   string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "exline",
	Short: "exline - ex-style command line playground",
	Long: `exline hosts an ex-style command map and lets you explore it.

Without a subcommand an interactive prompt starts: type a command name
or any unambiguous prefix and exline shows, live, how the token
resolves and which syntax the command accepts.

Subcommands:
  hint    - print the syntax hint for one command
  list    - list all commands with their hints

Extra commands can be loaded from a map file (TOML or YAML), see
--mapfile. Settings can also come from the environment: EXLINE_PROMPT,
EXLINE_SCOPE, EXLINE_MAPFILE (a .env file is honored).`,
	RunE: runPrompt,
}

// Settings are read from the environment; flags win over them.
type Settings struct {
	Prompt  string `env:"EXLINE_PROMPT" envDefault:":"`
	Scope   string `env:"EXLINE_SCOPE"`
	Mapfile string `env:"EXLINE_MAPFILE"`
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mapfilePath, "mapfile", "", "Map file with extra command definitions (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "", "Scope context for lookups (e.g. \"source.go\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func loadSettings() (Settings, error) {
	_ = godotenv.Load()

	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return settings, fmt.Errorf("parsing environment: %w", err)
	}
	if scopeFlag != "" {
		settings.Scope = scopeFlag
	}
	if mapfilePath != "" {
		settings.Mapfile = mapfilePath
	}
	return settings, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)
}

// buildMap assembles the command map: the default ex command set plus
// any map file definitions.
func buildMap(settings Settings) (*excmd.Map, error) {
	logger := newLogger()
	m, err := excmd.DefaultMap(excmd.Options{Logger: &logger})
	if err != nil {
		return nil, err
	}
	if settings.Mapfile != "" {
		if err := mapfile.LoadInto(m, settings.Mapfile); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// lookup resolves a token in the configured scope.
func lookup(m *excmd.Map, token, scope string) (*excmd.Mapping, error) {
	if scope != "" {
		return m.LookupScope(token, scope)
	}
	return m.Lookup(token)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
