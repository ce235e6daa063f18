package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a form as HTML",
	RunE:  runRender,
}

func init() {
	addFormFlags(renderCmd)
	renderCmd.Flags().String("output", "", "output file (stdout if empty)")
	renderCmd.Flags().String("runtime-script", vanilla.DefaultRuntimeScript, "URL of the behaviors bundle; empty to omit the script tag")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	script, err := cmd.Flags().GetString("runtime-script")
	if err != nil {
		return err
	}

	renderer, err := vanilla.New(vanilla.WithRuntimeScript(script))
	if err != nil {
		return err
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch, req, err := formPipeline(cmd, registry, renderer.Name())
	if err != nil {
		return err
	}
	html, err := orch.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(html)
		return err
	}
	if err := os.WriteFile(output, html, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
	return nil
}
