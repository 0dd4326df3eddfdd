// History command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded catalog snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		snaps, err := store.Snapshots()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list snapshots:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(snaps, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(snaps) == 0 {
			fmt.Println("No snapshots recorded")
			return nil
		}
		for _, snap := range snaps {
			fmt.Printf("%s  %s  %d classes\n",
				snap.SnapshotID, snap.CreatedAt.Format(time.RFC3339), snap.ClassCount)
		}
		return nil
	},
}
