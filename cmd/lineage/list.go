// List command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

var flagListBase string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		seq := rtti.All()
		if flagListBase != "" {
			base, err := rtti.Lookup(flagListBase)
			if err != nil {
				fmt.Fprintf(os.Stderr, "class %q not found\n", flagListBase)
				os.Exit(exitUserError)
			}
			seq = rtti.ChildrenOf(base)
		}

		var rows []classRow
		for d := range seq {
			rows = append(rows, rowFor(d))
		}

		if flagJSON {
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, row := range rows {
			if row.Base == "" {
				fmt.Printf("%s (%s, root)\n", row.Name, kindOf(row))
			} else {
				fmt.Printf("%s (%s, base: %s)\n", row.Name, kindOf(row), row.Base)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListBase, "base", "", "only classes descending from this base, inclusive")
}
