package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kpauljoseph/vocabankify/internal/config"
	"github.com/kpauljoseph/vocabankify/pkg/logger"
)

const logPrefix = "[vocabankify] "

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "vocabankify",
		Short: "Turn vocabulary tables in Word documents into Anki flashcards",
		Long: `vocabankify reads the first table of a .docx file (vocabulary, annotation,
translation) and adds one Basic note per row to an Anki deck through
AnkiConnect. The same table can be exported to CSV.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: ./vocabankify.yaml or ~/.config/vocabankify/vocabankify.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.Bool("debug", false, "enable debug mode with trace logging")
	flags.String("log-dir", "", "directory for the log files of interactive runs")
	a.bind("log.verbose", flags.Lookup("verbose"))
	a.bind("log.debug", flags.Lookup("debug"))
	a.bind("log.dir", flags.Lookup("log-dir"))

	rootCmd.AddCommand(
		newImportCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// loadConfig reads the config file, then lets VOCABANKIFY_* variables and
// explicitly set flags win over it.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	cfg := config.Default()
	path := a.configPath
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		loaded, err := config.Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case a.configPath == "" && errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	cfg.ApplyOverrides(a.v)
	a.cfg = cfg
	return nil
}

func findConfigFile() string {
	candidates := []string{config.DefaultFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "vocabankify", config.DefaultFileName))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// newLogger writes to w, or to a timestamped file when toFile is set so a
// terminal UI can own the screen. The returned func closes the file.
func (a *app) newLogger(w io.Writer, toFile bool) (*logger.Logger, func(), error) {
	var (
		log  *logger.Logger
		path string
		err  error
	)
	if toFile {
		dir := a.cfg.Log.Dir
		if dir == "" {
			dir = logger.DefaultLogDir()
		}
		log, path, err = logger.NewFileLogger(dir, logPrefix)
		if err != nil {
			return nil, nil, err
		}
		fmt.Fprintf(w, "Logging to %s\n", path)
	} else {
		log = logger.New(logger.WithOutput(w), logger.WithPrefix(logPrefix))
	}

	log.SetVerbose(a.cfg.Log.Verbose)
	if a.cfg.Log.Debug {
		log.SetLevel(logger.LevelTrace)
	}
	log.Debug("Verbose logging enabled")

	return log, func() { log.Close() }, nil
}
