package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/bbfile"
	"github.com/ha1tch/breadboard/pkg/breadboard"
)

var (
	convertOutput string
	dotOutput     string
	dotTitle      string
	lsExt         string
)

var errInvalid = errors.New("validation failed")

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a summary of a breadboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check ids and report connections that do not resolve",
	Long: `Check that place ids and affordance ids are unique and list every
connection whose target place no longer exists. Dangling connections are
reported but do not fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert between TOML, JSON and YAML",
	Long: `Convert a breadboard file to another format. The output format is
chosen by the extension of --output. Without --output, TOML becomes JSON
and everything else becomes TOML.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "Export a breadboard as a Graphviz graph",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List breadboard files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func runInfo(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	connected := 0
	groups := map[string]bool{}
	for _, p := range b.Places {
		if g := p.GroupName(); g != "" {
			groups[g] = true
		}
		for _, a := range p.Affordances {
			if a.Connected() {
				connected++
			}
		}
	}

	fmt.Fprintf(out, "Name:         %s\n", b.Name)
	if b.Created != "" {
		fmt.Fprintf(out, "Created:      %s\n", b.Created)
	}
	fmt.Fprintf(out, "Places:       %d\n", len(b.Places))
	fmt.Fprintf(out, "Affordances:  %d\n", b.AffordanceCount())
	fmt.Fprintf(out, "Connections:  %d\n", connected)
	if len(groups) > 0 {
		fmt.Fprintf(out, "Groups:       %d\n", len(groups))
	}
	if n := len(b.DanglingConnections()); n > 0 {
		fmt.Fprintf(out, "Dangling:     %d\n", n)
	}
	fmt.Fprintln(out)
	for _, p := range b.Places {
		fmt.Fprintf(out, "  %d  %s (%d)\n", p.ID, p.Name, len(p.Affordances))
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := args[0]
	b, err := loadBoard(input)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for _, c := range b.DanglingConnections() {
		fmt.Fprintf(out, "warning: %s / %s -> %d does not resolve\n",
			c.Place.Name, c.Affordance.Name, *c.Affordance.ConnectsTo)
	}

	if err := b.Validate(); err != nil {
		logger.Warn("invalid breadboard", zap.String("path", input), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", errInvalid, input, err)
	}

	fmt.Fprintf(out, "%s: valid breadboard with %d places, %d affordances\n",
		input, len(b.Places), b.AffordanceCount())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	b, err := loadBoard(input)
	if err != nil {
		return err
	}

	output := convertOutput
	if output == "" {
		output = defaultConvertOutput(input)
	}
	if err := bbfile.WriteFile(output, b); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Debug("converted", zap.String("from", input), zap.String("to", output))
	fmt.Fprintf(cmd.OutOrStdout(), "Written: %s\n", output)
	return nil
}

func defaultConvertOutput(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if strings.EqualFold(ext, ".toml") {
		return base + ".json"
	}
	return base + ".toml"
}

func runDot(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	dot := bbfile.GenerateDOT(b, dotTitle)

	if dotOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), dot)
		return nil
	}
	if err := os.WriteFile(dotOutput, []byte(dot), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dotOutput, err)
	}
	return nil
}

func runLs(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	names, err := bbfile.ListFiles(dir, lsExt)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

// placeLabel names a place for walk output.
func placeLabel(b *breadboard.Breadboard, id breadboard.ID) string {
	if p := b.FindPlace(id); p != nil {
		return p.Name
	}
	return fmt.Sprintf("#%d", id)
}
