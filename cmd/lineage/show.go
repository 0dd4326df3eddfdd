// Show command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

// showDetail is the JSON projection of one class and its relatives.
type showDetail struct {
	classRow
	Ancestry []string `json:"ancestry,omitempty"` // base chain, nearest first
	Children []string `json:"children,omitempty"` // descendants, self excluded
}

var showCmd = &cobra.Command{
	Use:   "show <class>",
	Short: "Show a class, its ancestry, and its descendants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		d, err := rtti.Lookup(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "class %q not found\n", name)
			os.Exit(exitUserError)
		}

		detail := showDetail{classRow: rowFor(d)}
		for b := d.Base(); b != nil; b = b.Base() {
			detail.Ancestry = append(detail.Ancestry, b.Name())
		}
		for c := range rtti.ChildrenOf(d) {
			if c != d {
				detail.Children = append(detail.Children, c.Name())
			}
		}

		if flagJSON {
			out, err := json.MarshalIndent(detail, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("name: %s\n", detail.Name)
		fmt.Printf("kind: %s\n", kindOf(detail.classRow))
		if len(detail.Ancestry) > 0 {
			fmt.Printf("ancestry: %s\n", strings.Join(detail.Ancestry, " -> "))
		} else {
			fmt.Println("ancestry: (root)")
		}
		if len(detail.Children) > 0 {
			fmt.Printf("children: %s\n", strings.Join(detail.Children, ", "))
		}
		return nil
	},
}
