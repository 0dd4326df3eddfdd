// Tree command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

// treeNode is the JSON projection of one hierarchy subtree.
type treeNode struct {
	Name     string      `json:"name"`
	Children []*treeNode `json:"children,omitempty"`
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the registered class hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		children := make(map[*rtti.Descriptor][]*rtti.Descriptor)
		var roots []*rtti.Descriptor
		for d := range rtti.All() {
			if b := d.Base(); b != nil {
				children[b] = append(children[b], d)
			} else {
				roots = append(roots, d)
			}
		}

		if flagJSON {
			var out []*treeNode
			for _, root := range roots {
				out = append(out, buildTree(root, children))
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, root := range roots {
			printTree(root, children, 0)
		}
		return nil
	},
}

// buildTree assembles the JSON subtree rooted at d.
func buildTree(d *rtti.Descriptor, children map[*rtti.Descriptor][]*rtti.Descriptor) *treeNode {
	node := &treeNode{Name: d.Name()}
	for _, c := range children[d] {
		node.Children = append(node.Children, buildTree(c, children))
	}
	return node
}

// printTree writes the subtree rooted at d with two-space indentation.
func printTree(d *rtti.Descriptor, children map[*rtti.Descriptor][]*rtti.Descriptor, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), d.Name())
	for _, c := range children[d] {
		printTree(c, children, depth+1)
	}
}
