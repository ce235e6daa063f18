package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	formwidgets "github.com/goliatone/go-formwidgets"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Copy the behaviors bundle and stylesheet to a directory",
	RunE:  runAssets,
}

func init() {
	assetsCmd.Flags().String("output", "static", "destination directory")
}

func runAssets(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	dir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: %w", err)
	}

	sources := []struct {
		fsys fs.FS
		name string
	}{
		{fsys: formwidgets.RuntimeAssetsFS(), name: formwidgets.RuntimeScriptName},
		{fsys: vanilla.AssetsFS(), name: vanilla.StylesheetName},
	}
	for _, src := range sources {
		data, err := fs.ReadFile(src.fsys, src.name)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", src.name, err)
		}
		target := filepath.Join(dir, src.name)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("assets: write %s: %w", target, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), target)
	}
	return nil
}
