package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/color-picker/internal/picker"
	"github.com/lunit-heesungyang/color-picker/internal/storage"
	"github.com/lunit-heesungyang/color-picker/internal/ui"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Print the HEX, RGB and HSL views of a color",
		Example: `  cpick convert '#667eea'
  cpick convert 'rgb(255, 0, 255)' --yaml
  cpick convert 'hsl(210, 50%, 40%)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asYAML, _ := cmd.Flags().GetBool("yaml")

			engine := picker.New(picker.DefaultHex)
			if err := engine.SetString(args[0]); err != nil {
				return err
			}
			c := engine.Canonical()

			out := cmd.OutOrStdout()
			if asYAML {
				data, err := yaml.Marshal(c)
				if err != nil {
					return fmt.Errorf("encoding color: %w", err)
				}
				_, err = out.Write(data)
				return err
			}
			fmt.Fprintf(out, "HEX  %s\n", c.DisplayHex())
			fmt.Fprintf(out, "RGB  %s\n", c.RGBString())
			fmt.Fprintf(out, "HSL  %s\n", c.HSLString())
			return nil
		},
	}
	cmd.Flags().Bool("yaml", false, "Print as YAML")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the configured preset colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := storage.New(configPath).Load()
			if err != nil {
				return err
			}
			palette, err := cfg.Palette()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < palette.Len(); i++ {
				p := palette.Get(i)
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(p.Hex)).
					Render(ui.SwatchCell)
				fmt.Fprintf(out, "%2d %s %s  %s\n", i+1, swatch, strings.ToUpper(p.Hex), p.RGB)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			store := storage.New(configPath)
			if store.Exists() && !force {
				return errors.New("config file already exists at " + store.ConfigPath() + " (use --force to overwrite)")
			}
			if err := store.Save(storage.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.ConfigPath())
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
