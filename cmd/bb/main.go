// Command bb inspects, converts and walks breadboard files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ha1tch/breadboard/pkg/bbfile"
	"github.com/ha1tch/breadboard/pkg/breadboard"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bb",
	Short: "Breadboard file tools",
	Long: `bb works on breadboard files (.toml, .json, .yaml) without the editor:
print summaries, check references, convert between formats, export
Graphviz and click through the flow from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: input with the other extension)")
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "Output file (default: stdout)")
	dotCmd.Flags().StringVarP(&dotTitle, "title", "t", "", "Graph title (default: board name)")
	lsCmd.Flags().StringVar(&lsExt, "ext", bbfile.DefaultExtension, "Extension to list")
	walkCmd.Flags().Uint32Var(&walkStart, "start", 0, "Id of the start place (default: first place)")

	rootCmd.AddCommand(infoCmd, validateCmd, convertCmd, dotCmd, lsCmd, walkCmd)
}

func loadBoard(path string) (*breadboard.Breadboard, error) {
	b, err := bbfile.ReadFile(path)
	if err != nil {
		logger.Debug("load failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded", zap.String("path", path), zap.Int("places", len(b.Places)))
	return b, nil
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
