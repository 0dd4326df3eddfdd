// New command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

var newCmd = &cobra.Command{
	Use:   "new <class>",
	Short: "Construct a class instance by name and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		obj, err := rtti.NewByName(name)
		if err != nil {
			// An unknown name and an abstract class are different user
			// mistakes; report them distinctly.
			switch {
			case isNotRegistered(err):
				fmt.Fprintf(os.Stderr, "class %q not found\n", name)
			case isNotConstructible(err):
				fmt.Fprintf(os.Stderr, "class %q is abstract and cannot be constructed\n", name)
			default:
				fmt.Fprintln(os.Stderr, "new:", err)
			}
			os.Exit(exitUserError)
		}

		out, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			fmt.Println(string(out))
		} else {
			fmt.Printf("%s %s\n", obj.RuntimeType().Name(), string(out))
		}
		return nil
	},
}
