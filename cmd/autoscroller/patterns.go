package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autoscroller/internal/pattern"
)

var flagPatternsExport bool

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the terrain pattern catalog",
	Long: `Shows the pattern catalog the world generator draws from: the built-in
catalog, or the file given with --patterns.

Use --export to print the catalog as YAML, a starting point for a custom
catalog.

Examples:
  autoscroller patterns
  autoscroller patterns --export > my-patterns.yaml
  autoscroller patterns --patterns ./my-patterns.yaml`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().BoolVar(&flagPatternsExport, "export", false, "Print the catalog as YAML")
}

func runPatterns(_ *cobra.Command, _ []string) error {
	lib, err := loadPatterns()
	if err != nil {
		return err
	}

	if flagPatternsExport {
		data, err := pattern.Marshal(lib)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if lib.Len() == 0 {
		fmt.Println("No patterns available.")
		return nil
	}

	fmt.Println("Patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range lib.All() {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %5s  %9s  %7s\n", maxIDLen, "ID", "Tier", "Width", "Platforms", "Sockets")
	fmt.Printf("  %-*s  %-6s  %5s  %9s  %7s\n", maxIDLen, "--", "----", "-----", "---------", "-------")
	for _, p := range lib.All() {
		fmt.Printf("  %-*s  %-6s  %5.0f  %9d  %7d\n", maxIDLen, p.ID, p.Difficulty, p.Width, len(p.Platforms), len(p.Sockets))
	}

	fmt.Println()
	for _, d := range pattern.Difficulties {
		fmt.Printf("%s: %d  ", d, lib.CountByDifficulty(d))
	}
	fmt.Println()
	return nil
}
