package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/pkg/phonemask"
)

var formatCmd = &cobra.Command{
	Use:   "format [value...]",
	Short: "Format phone numbers with the input mask",
	Long:  `Format each argument, or each line of stdin when no arguments are given, the way the browser input would display it.`,
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().String("pattern", phonemask.DefaultPattern, "mask pattern; D marks a digit slot")
	formatCmd.Flags().Bool("validate", false, "report values that are not complete numbers")
	formatCmd.Flags().Bool("no-color", false, "disable colored output")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	pattern, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return err
	}
	validate, err := cmd.Flags().GetBool("validate")
	if err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}

	mask, err := phonemask.ParsePattern(pattern)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	values := args
	if len(values) == 0 {
		values, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("format: read stdin: %w", err)
		}
	}

	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	if noColor {
		ok.DisableColor()
		bad.DisableColor()
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, value := range values {
		formatted := mask.Format(value)
		if !validate {
			fmt.Fprintln(out, formatted)
			continue
		}
		if err := mask.Validate(formatted); err != nil {
			invalid++
			bad.Fprintf(out, "%s\t%v\n", formatted, err)
			continue
		}
		ok.Fprintln(out, formatted)
	}

	if invalid > 0 {
		return fmt.Errorf("format: %d of %d values invalid", invalid, len(values))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
