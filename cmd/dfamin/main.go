package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dfakit/dfa"
	"github.com/spf13/cobra"
)

var printClasses bool

var rootCmd = &cobra.Command{
	Use:   "dfamin [file]",
	Short: "Find equivalent DFA state pairs via table filling",
	Long: `Reads one automaton description (state count, alphabet, final states,
one transition row per state) from a file or stdin ("-") and prints the
pairs of states no input string can distinguish.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMinimize(args); err != nil {
			fmt.Fprintf(os.Stderr, "dfamin: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().BoolVar(&printClasses, "classes", false, "also print the equivalence class partition")
}

func runMinimize(args []string) error {
	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	d, err := dfa.Decode(in)
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	table := dfa.BuildTable(d)
	pairs := table.EquivalentPairs()
	fmt.Println(dfa.FormatPairs(pairs))

	if printClasses {
		for _, class := range table.Classes() {
			parts := make([]string, 0, len(class))
			for _, s := range class {
				parts = append(parts, fmt.Sprintf("%d", s))
			}
			fmt.Printf("{%s}\n", strings.Join(parts, " "))
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
