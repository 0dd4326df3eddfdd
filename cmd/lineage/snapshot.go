// Snapshot command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record the current registry to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "snapshot:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		snap, err := store.Record(rtti.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, "record snapshot:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Recorded snapshot %s (%d classes)\n", snap.SnapshotID, snap.ClassCount)
		return nil
	},
}
