package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/orchestrator"
	"github.com/goliatone/go-formwidgets/pkg/render"
)

var rootCmd = &cobra.Command{
	Use:   "formwidgets",
	Short: "Phone mask and option group form widgets",
	Long:  `formwidgets formats phone numbers and renders forms with masked phone inputs and single-choice option groups for the browser, the terminal and HTTP.`,
}

func main() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addFormFlags registers the flags shared by commands that load a form.
func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "form definition (.yaml, .yml, .toml or .json); built-in contact form when empty")
	cmd.Flags().String("preset", "", "JSON preset applied on top of the form definition")
}

// formPipeline builds an orchestrator for the form flags of cmd and the
// request that renders it with the named renderer.
func formPipeline(cmd *cobra.Command, registry *render.Registry, renderer string) (*orchestrator.Orchestrator, orchestrator.Request, error) {
	source, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, orchestrator.Request{}, err
	}
	preset, err := cmd.Flags().GetString("preset")
	if err != nil {
		return nil, orchestrator.Request{}, err
	}

	opts := []orchestrator.Option{
		orchestrator.WithDefaultRenderer(renderer),
	}
	if registry != nil {
		opts = append(opts, orchestrator.WithRegistry(registry))
	}
	if preset != "" {
		data, err := os.ReadFile(preset)
		if err != nil {
			return nil, orchestrator.Request{}, fmt.Errorf("read preset: %w", err)
		}
		transformer, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			return nil, orchestrator.Request{}, err
		}
		opts = append(opts, orchestrator.WithSchemaTransformer(transformer))
	}

	return orchestrator.New(opts...), orchestrator.Request{Source: source, Renderer: renderer}, nil
}
