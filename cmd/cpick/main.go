package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/color-picker/internal/picker"
	"github.com/lunit-heesungyang/color-picker/internal/storage"
	"github.com/lunit-heesungyang/color-picker/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "cpick",
	Short: "Terminal color picker with synchronized HSL, RGB and HEX views",
	Long: `cpick is a terminal color picker.

Every edit, whether it comes from the HSL sliders, the HEX field, the RGB
fields or a preset, updates all three views of the color at once.

Features:
  - Hue, saturation and lightness sliders with live gradients
  - Controlled HEX and RGB inputs
  - Preset palette loaded from a YAML config, reloaded on change
  - Copy HEX or rgb() to the clipboard`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		color, _ := cmd.Flags().GetString("color")
		logPath, _ := cmd.Flags().GetString("log")

		if logPath != "" {
			f, err := tea.LogToFile(logPath, "cpick")
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}

		logger := log.Default()
		store := storage.New(configPath)
		store.Logger = logger
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		if color != "" {
			hex, err := resolveColor(color)
			if err != nil {
				return err
			}
			cfg.Color = hex
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		changes, err := store.Watch(ctx)
		if err != nil {
			// the picker still works without live reload
			logger.Printf("config watch disabled: %v", err)
		}

		model := tui.New(tui.Options{
			Config:  cfg,
			Storage: store,
			Changes: changes,
			Logger:  logger,
		})
		p := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

// resolveColor turns any supported notation into a #rrggbb value
func resolveColor(value string) (string, error) {
	engine := picker.New(picker.DefaultHex)
	if err := engine.SetString(value); err != nil {
		return "", err
	}
	return engine.Canonical().Hex, nil
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default: user config dir)")
	rootCmd.Flags().String("color", "", "Initial color (#rrggbb, rgb(...) or hsl(...))")
	rootCmd.Flags().String("log", "", "Write debug log to this file")

	rootCmd.AddCommand(newConvertCmd(), newPresetsCmd(), newConfigCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
