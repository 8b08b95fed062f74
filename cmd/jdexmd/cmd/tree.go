package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graysonarts/jdexmd/internal/application"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the resolved hierarchy",
	Long: `Display the parsed and resolved hierarchy with full identifiers,
without touching the filesystem.

Example:
  jdexmd -c jdex.toml tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, system := range systems {
			printTree(system, 0)
		}
		return nil
	},
}

func printTree(n *application.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s\n", indent, n.DisplayName(cfg.Separator))
	for _, child := range n.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
