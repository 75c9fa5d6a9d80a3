package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dragboard/internal/app"
	"dragboard/internal/config"
	"dragboard/internal/logging"
	"dragboard/internal/seed"
)

type flags struct {
	configFile string
	seedFile   string
	logFile    string
	logLevel   string
	noMouse    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "kanban",
		Short:         "kanban - a terminal kanban board with drag and drop",
		Long:          `kanban shows a board of columns and cards. Drag cards with the mouse or move around with the keyboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			logPath := cfg.LogFile
			if logPath == "" {
				if logPath, err = logging.DefaultPath(); err != nil {
					return fmt.Errorf("log path: %w", err)
				}
			}
			log, file, err := logging.Open(logPath, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer file.Close()

			return app.Run(cfg, log)
		},
	}

	root.PersistentFlags().StringVar(&f.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/kanban/config.yaml)")
	root.Flags().StringVar(&f.seedFile, "seed", "", "seed board file (.yaml or .md)")
	root.Flags().StringVar(&f.logFile, "log-file", "", "log file (default $XDG_STATE_HOME/kanban/kanban.log)")
	root.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse support")

	root.AddCommand(newValidateCmd())
	return root
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = f.seedFile
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("no-mouse") {
		cfg.NoMouse = f.noMouse
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a seed board file without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate(cmd.OutOrStdout(), args[0])
		},
	}
}

func validate(w io.Writer, path string) error {
	b, err := seed.Load(path, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: ok (%d columns, %d cards)\n", path, len(b.Columns), b.CardCount())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
