package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minuteclock/internal/core/daytime"
	"minuteclock/internal/core/model"
	"minuteclock/internal/core/timekeeper"
	"minuteclock/internal/storage"
	"minuteclock/internal/ui/preferences"
	"minuteclock/internal/ui/term"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

type displayFlags struct {
	countdown bool
	color     string
}

func (flags *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flags.countdown, "countdown", false, "count down to the next midnight instead of up from the last")
	cmd.Flags().StringVar(&flags.color, "color", "", "text colour: default, red, yellow, green, blue")
}

// apply layers explicitly set flags over the stored settings.
func (flags *displayFlags) apply(cmd *cobra.Command, settings preferences.Settings) (preferences.Settings, error) {
	if cmd.Flags().Changed("countdown") {
		settings.Countdown = flags.countdown
	}
	if cmd.Flags().Changed("color") {
		choice, ok := model.ParseColorChoice(flags.color)
		if !ok {
			return settings, fmt.Errorf("unknown color %q", flags.color)
		}
		settings.ColorChoice = choice
	}
	return settings, nil
}

func loadSettings(logger hclog.Logger, store *storage.Store) preferences.Settings {
	settings, err := store.Load()
	if err != nil {
		logger.Warn("could not read settings, using defaults", "path", store.Path(), "error", err)
	}
	return settings
}

func newNowCommand(options *rootOptions) *cobra.Command {
	flags := &displayFlags{}
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current reading once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := options.logger(cmd)
			store, err := options.store(logger)
			if err != nil {
				return err
			}
			settings, err := flags.apply(cmd, loadSettings(logger, store))
			if err != nil {
				return err
			}

			snapshot := daytime.DetectFormatter().Snapshot(time.Now(), settings.Countdown)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), term.Render(snapshot, settings.ClockConfig().Color))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newWatchCommand(options *rootOptions) *cobra.Command {
	flags := &displayFlags{}
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw the reading in the terminal until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := options.logger(cmd)
			store, err := options.store(logger)
			if err != nil {
				return err
			}
			settings, err := flags.apply(cmd, loadSettings(logger, store))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch(ctx, cmd, logger, store, flags, settings, interval)
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", timekeeper.DefaultTickInterval, "polling interval")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, logger hclog.Logger, store *storage.Store, flags *displayFlags, settings preferences.Settings, interval time.Duration) error {
	keeper := timekeeper.New(settings.ClockConfig(), timekeeper.Config{
		TickInterval: interval,
		Logger:       logger.Named("timekeeper"),
	})
	events := keeper.Subscribe(4)
	keeper.Start()
	defer keeper.Stop()

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	done, err := store.Watch(watchCtx, func(updated preferences.Settings) {
		updated, err := flags.apply(cmd, updated)
		if err != nil {
			return
		}
		keeper.UpdateConfig(updated.ClockConfig())
	})
	if err != nil {
		logger.Warn("settings changes will not be picked up", "error", err)
	} else {
		defer func() {
			cancelWatch()
			<-done
		}()
	}

	printer := term.NewPrinter(cmd.OutOrStdout())
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := printer.Print(event.Snapshot, event.Config.Color); err != nil {
				return err
			}
		}
	}
}
