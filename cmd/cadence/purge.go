// Purge command: delete all tasks and day blocks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeForce bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all tasks and day blocks",
	Long: `Purge deletes every task and day block in one transaction.
Settings are kept. A timestamped backup of the database file is taken on
every start, including this one.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeForce, "force", false, "confirm the purge")
}

func runPurge(cmd *cobra.Command, args []string) error {
	if !purgeForce {
		return fmt.Errorf("refusing to purge without --force")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Purge(); err != nil {
		return fmt.Errorf("purge: %w", err)
	}
	fmt.Println("Purged all tasks and day blocks")
	return nil
}
