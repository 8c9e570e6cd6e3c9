package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/gompei/internal/config"
	"github.com/diogo/gompei/internal/render"
)

var (
	configInitTOML  bool
	configInitForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration gompei runs with, after the config file,
environment overrides and the --endpoint flag have been applied.

The config file is ~/.gompei/config.toml or ~/.gompei/config.json
(the TOML file wins when both exist).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd.OutOrStdout(), configInitTOML, configInitForce)
	},
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available chat themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigThemes(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitTOML, "toml", false, "Write config.toml instead of config.json")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configThemesCmd)
}

func runConfigShow(out, errOut io.Writer) error {
	cfg, err := loadConfig(errOut)
	if err != nil {
		return err
	}

	dim := lipgloss.NewStyle().Foreground(colorTextDim)
	if path := config.ActiveConfigPath(); path != "" {
		fmt.Fprintln(out, dim.Render("# "+path))
	} else {
		fmt.Fprintln(out, dim.Render("# no config file, using defaults"))
	}

	if err := toml.NewEncoder(out).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func runConfigInit(out io.Writer, asTOML, force bool) error {
	pathFn := config.GetConfigPath
	save := config.SaveConfig
	if asTOML {
		pathFn = config.GetTOMLConfigPath
		save = config.SaveTOMLConfig
	}

	path, err := pathFn()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := save(config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle().Render(fmt.Sprintf("✓ Wrote %s", path)))
	return nil
}

func runConfigThemes(out, errOut io.Writer) error {
	cfg, err := loadConfig(errOut)
	if err != nil {
		return err
	}

	name := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(colorTextDim)

	for _, theme := range render.AvailableTUIThemes() {
		marker := "  "
		if theme.Name == cfg.TUITheme {
			marker = "* "
		}
		swatch := lipgloss.NewStyle().Foreground(theme.Primary).Render("●") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("●")
		fmt.Fprintf(out, "%s%s %s  %s\n", marker, swatch, name.Render(fmt.Sprintf("%-18s", theme.Name)), dim.Render(theme.Description))
	}
	return nil
}
