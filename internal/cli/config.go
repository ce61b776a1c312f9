package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JichouP/csvcat/internal/config"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect csvcat.yaml configuration",
	Long: `Configuration commands.

Available commands:
  init  Write a csvcat.yaml with default values
  show  Print the effective configuration (file, environment, defaults)

Examples:
  csvcat config init
  csvcat config init ./samples --force
  CSVCAT_DELIMITER=';' csvcat config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a csvcat.yaml with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing csvcat.yaml")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	path := filepath.Join(targetDir, csvcat.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	newLogger(cmd).Info("Wrote %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
