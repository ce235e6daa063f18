package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/tui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in a form with terminal prompts",
	RunE:  runPrompt,
}

func init() {
	addFormFlags(promptCmd)
	promptCmd.Flags().String("format", string(tui.OutputFormatJSON), "output format (json|form|pretty)")
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	raw, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, ok := tui.ParseOutputFormat(raw)
	if !ok {
		return fmt.Errorf("prompt: unknown format %q", raw)
	}

	renderer, err := tui.New(
		tui.WithOutputFormat(format),
		tui.WithTheme(tui.Theme{ErrorPrefix: "✗ "}),
	)
	if err != nil {
		return err
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch, req, err := formPipeline(cmd, registry, renderer.Name())
	if err != nil {
		return err
	}
	out, err := orch.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
