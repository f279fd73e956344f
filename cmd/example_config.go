package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rallyforge/benefits-engine/internal/config"
)

var flagExampleFormat string

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [FILE]",
	Short: "Print or write an example scenario configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExampleConfig,
}

func init() {
	exampleConfigCmd.Flags().StringVarP(&flagExampleFormat, "format", "f", "", "yaml or toml (default from the file extension, else yaml)")
	rootCmd.AddCommand(exampleConfigCmd)
}

func runExampleConfig(cmd *cobra.Command, args []string) error {
	format := config.FormatYAML
	if len(args) == 1 {
		format = config.FormatFor(args[0])
	}
	switch flagExampleFormat {
	case "":
	case string(config.FormatYAML), string(config.FormatTOML):
		format = config.Format(flagExampleFormat)
	default:
		return fmt.Errorf("--format must be yaml or toml, got %q", flagExampleFormat)
	}

	parser := config.NewInputParser()
	data, err := parser.Marshal(parser.CreateExampleConfiguration(), format)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Example configuration written to %s\n", args[0])
	return nil
}
