// Command bbedit is a terminal editor for breadboards.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/bbfile"
	"github.com/ha1tch/breadboard/pkg/editor"
)

var (
	configPath    string
	logFile       string
	logLevel      string
	confirmDelete bool
	workDir       string
	saveConfig    bool
)

var rootCmd = &cobra.Command{
	Use:   "bbedit [file]",
	Short: "Edit breadboards in the terminal",
	Long: `bbedit edits breadboards: places, the affordances on them and the
connections between them. Files are TOML by default; .json and .yaml
are read and written as well.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", ConfigPath(), "Path to the config file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write a JSON log to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&confirmDelete, "confirm-delete", false, "Ask before deleting")
	rootCmd.Flags().StringVar(&workDir, "dir", "", "Directory listed by the open dialog")
	rootCmd.Flags().BoolVar(&saveConfig, "save-config", false, "Write the effective settings to the config file")
}

// app couples the editor with the terminal it is drawn on.
type app struct {
	screen tcell.Screen
	ed     *editor.Editor
	logger *zap.Logger
	poll   time.Duration
	now    func() time.Time
	scroll int
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if saveConfig {
		if err := SaveConfig(configPath, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	logger, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ed := editor.New(nil,
		editor.WithLogger(logger),
		editor.WithStore(bbfile.NewDirStore(cfg.LastDir, cfg.Extension)),
		editor.WithConfirmDelete(cfg.ConfirmDelete),
		editor.WithDefaultFilename(cfg.DefaultFile),
		editor.WithExtension(cfg.Extension),
	)

	if len(args) == 1 {
		name, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if _, err := os.Stat(name); err == nil {
			if err := ed.LoadFile(name); err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
		} else if errors.Is(err, os.ErrNotExist) {
			ed.SetFilename(name)
		} else {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	a := &app{
		screen: screen,
		ed:     ed,
		logger: logger,
		poll:   time.Duration(cfg.PollIntervalMs) * time.Millisecond,
		now:    time.Now,
	}
	logger.Info("editor started", zap.String("dir", cfg.LastDir), zap.String("file", ed.Filename()))
	a.run()
	logger.Info("editor stopped")
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("confirm-delete") {
		cfg.ConfirmDelete = confirmDelete
	}
	if flags.Changed("dir") {
		cfg.LastDir = workDir
	}
	return cfg.Validate()
}

// run draws, then waits at most one poll interval for the next event, until
// the editor has been told to quit. The timeout keeps message flashes moving.
func (a *app) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for !a.ed.Done() {
		a.draw()
		a.screen.Show()

		select {
		case ev := <-events:
			a.handleEvent(ev)
		case <-time.After(a.poll):
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.logger.Debug("resize", zap.Int("w", w), zap.Int("h", h))
		a.screen.Sync()
	case *tcell.EventKey:
		a.ed.Dispatch(mapKey(ev, a.ed.Mode(), a.ed.Jumping()))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
