package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/live"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Edit a form interactively with keystroke-level masking",
	RunE:  runLive,
}

func init() {
	addFormFlags(liveCmd)
}

func runLive(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	renderer := live.New()
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
