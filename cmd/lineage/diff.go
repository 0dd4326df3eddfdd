// Diff command for the lineage CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [older newer]",
	Short: "Compare two catalog snapshots",
	Long: `Compare the classes of two catalog snapshots. With no arguments the
latest two snapshots are compared. A removed or rebased class means data
recorded by the older build may no longer resolve.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts no args or exactly 2 snapshot IDs, received %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "diff:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		var olderID, newerID string
		if len(args) == 2 {
			olderID, newerID = args[0], args[1]
		} else {
			snaps, err := store.Snapshots()
			if err != nil {
				fmt.Fprintln(os.Stderr, "list snapshots:", err)
				os.Exit(exitSysError)
			}
			if len(snaps) < 2 {
				fmt.Fprintln(os.Stderr, "diff: need at least two recorded snapshots")
				os.Exit(exitUserError)
			}
			newerID = snaps[0].SnapshotID
			olderID = snaps[1].SnapshotID
		}

		diff, err := store.Diff(olderID, newerID)
		if err != nil {
			if isSnapshotNotFound(err) {
				fmt.Fprintln(os.Stderr, "diff:", err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "diff:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(diff, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if diff.Empty() {
			fmt.Println("No class changes")
			return nil
		}
		if len(diff.Added) > 0 {
			fmt.Printf("added: %s\n", strings.Join(diff.Added, ", "))
		}
		if len(diff.Removed) > 0 {
			fmt.Printf("removed: %s\n", strings.Join(diff.Removed, ", "))
		}
		if len(diff.Rebased) > 0 {
			fmt.Printf("rebased: %s\n", strings.Join(diff.Rebased, ", "))
		}
		return nil
	},
}
