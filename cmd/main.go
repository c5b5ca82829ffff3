package main

import (
	"fmt"
	"os"

	"minuteclock/internal/logging"
	"minuteclock/internal/storage"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	appName = "MinuteClock"
	appID   = "com.minuteclock.app"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "minuteclock",
		Short:         "Show the time as minutes, seconds or hundred microdays since midnight",
		Long:          `MinuteClock shows how many minutes, seconds or hundred-microday units have passed since local midnight, or remain until the next one. Without a subcommand it opens the desktop clock.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := options.logger(cmd)
			store, err := options.store(logger)
			if err != nil {
				return err
			}
			return runGUI(logger, store)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&options.configPath, "config", "", "settings file (default is <user config dir>/MinuteClock/settings.yaml)")
	flags.StringVar(&options.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&options.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(newNowCommand(options), newWatchCommand(options))
	return root
}

func (options *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logging.New(logging.Options{
		Name:   "minuteclock",
		Level:  options.logLevel,
		JSON:   options.logJSON,
		Output: cmd.ErrOrStderr(),
	})
}

func (options *rootOptions) store(logger hclog.Logger) (*storage.Store, error) {
	storeLogger := logger.Named("storage")
	if options.configPath != "" {
		return storage.NewStoreAt(options.configPath, storeLogger), nil
	}
	store, err := storage.NewStore(appName, storeLogger)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return store, nil
}
