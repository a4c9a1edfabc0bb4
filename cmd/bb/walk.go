package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/breadboard/pkg/breadboard"
)

var walkStart uint32

var walkCmd = &cobra.Command{
	Use:   "walk <file>",
	Short: "Click through a breadboard interactively",
	Long: `Start at a place and follow affordances by number, the way a user
would click through the finished product.

Commands: <n>, back, reset, status, history, quit`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func runWalk(cmd *cobra.Command, args []string) error {
	b, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	w, err := breadboard.NewWalker(b, breadboard.ID(walkStart))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Breadboard: %s\n", b.Name)
	fmt.Fprintln(cmd.OutOrStdout(), "Commands: <n>, back, reset, status, history, quit")
	fmt.Fprintln(cmd.OutOrStdout())
	walkLoop(b, w, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}

// walkLoop reads commands until EOF or quit.
func walkLoop(b *breadboard.Breadboard, w *breadboard.Walker, in io.Reader, out, errOut io.Writer) {
	printPlace(out, w.Current())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch cmd {
		case "quit", "exit", "q":
			return
		case "back", "b":
			if !w.Back() {
				fmt.Fprintln(out, "Already at the start")
				continue
			}
			printPlace(out, w.Current())
		case "reset":
			w.Reset()
			fmt.Fprintln(out, "Back to the start place")
			printPlace(out, w.Current())
		case "status":
			printPlace(out, w.Current())
		case "history":
			printHistory(out, b, w.History())
		case "help", "?":
			fmt.Fprintln(out, "Commands:")
			fmt.Fprintln(out, "  <n>      - Follow affordance n")
			fmt.Fprintln(out, "  back     - Undo the last step")
			fmt.Fprintln(out, "  reset    - Return to the start place")
			fmt.Fprintln(out, "  status   - Show the current place")
			fmt.Fprintln(out, "  history  - Show the steps taken")
			fmt.Fprintln(out, "  quit     - Exit")
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil {
				fmt.Fprintf(errOut, "Unknown command: %s\n", cmd)
				continue
			}
			if _, err := w.Follow(n - 1); err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
				continue
			}
			printPlace(out, w.Current())
		}
	}
}

func printPlace(out io.Writer, p *breadboard.Place) {
	fmt.Fprintf(out, "Place: %s\n", p.Name)
	if len(p.Affordances) == 0 {
		fmt.Fprintln(out, "  (no affordances)")
		return
	}
	for i, a := range p.Affordances {
		line := fmt.Sprintf("  %d. %s", i+1, a.Name)
		if !a.Connected() {
			line += " (not connected)"
		}
		fmt.Fprintln(out, line)
	}
}

func printHistory(out io.Writer, b *breadboard.Breadboard, steps []breadboard.Step) {
	if len(steps) == 0 {
		fmt.Fprintln(out, "No history yet")
		return
	}
	fmt.Fprintln(out, "History:")
	for i, s := range steps {
		fmt.Fprintf(out, "  %d: %s --%s--> %s\n",
			i+1, placeLabel(b, s.From), s.Affordance, placeLabel(b, s.To))
	}
}
