package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/peternagy/pdfbinder/internal/appearance"
	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/settings"
	"github.com/peternagy/pdfbinder/internal/storage"
	"github.com/peternagy/pdfbinder/internal/theme"
)

// env carries what every command needs to open the services.
type env struct {
	fs        afero.Fs
	accent    theme.AccentSource
	configDir string
	debug     bool
}

type services struct {
	settings   *settings.Manager
	appearance *appearance.Manager
	selector   *theme.Selector
}

func (e *env) open() (*services, error) {
	dir := e.configDir
	if dir == "" {
		dir = storage.InitConfigDir()
	}
	store := storage.NewServiceWithFs(e.fs, dir)

	settingsSvc, err := settings.NewManager(store)
	if err != nil {
		return nil, err
	}

	state := core.NewAppState()
	state.Emitter = &core.NoopEventEmitter{}
	appearanceSvc := appearance.NewManager(state, store, appearance.NoopWindowThemer{})

	return &services{
		settings:   settingsSvc,
		appearance: appearanceSvc,
		selector:   theme.NewSelector(state, settingsSvc, appearanceSvc, e.accent),
	}, nil
}

// NewRootCmd builds the binderctl command tree on the given filesystem.
func NewRootCmd(fs afero.Fs, accent theme.AccentSource) *cobra.Command {
	e := &env{fs: fs, accent: accent}

	root := &cobra.Command{
		Use:   "binderctl",
		Short: "Manage PDF Binder themes, accent colors and file filters",
		Long: `binderctl reads and changes the appearance settings used by PDF Binder.

Examples:
  binderctl themes list
  binderctl themes apply Light
  binderctl accent --set "#2D7D9A"
  binderctl filter "*.pdf" "*.txt"`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if e.debug {
				debug.SetOutput(cmd.ErrOrStderr())
				debug.SetEnabled(true)
			}
		},
	}

	root.PersistentFlags().StringVar(&e.configDir, "config-dir", "", "config directory (default: user config dir)")
	root.PersistentFlags().BoolVar(&e.debug, "debug", false, "print debug log lines to stderr")

	root.AddCommand(newThemesCmd(e), newAccentCmd(e), newFilterCmd())
	return root
}
