// Day commands: show and set the block plan for a date.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cadence/pkg/types"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Manage the day plan",
}

var (
	dayDate   string
	dayBlocks []string
)

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the blocks scheduled for a date",
	Args:  cobra.NoArgs,
	RunE:  runDayShow,
}

var daySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the full block set for a date",
	Long: `Set replaces the entire plan for a date. Every --block is
start:end[:task-id] with slots counted in 30-minute units from midnight,
so 9:00 is slot 18. Passing no --block clears the date.

Example:
  cadence day set --date 2026-09-01 --block 18:19:TASKID --block 20:22`,
	Args: cobra.NoArgs,
	RunE: runDaySet,
}

func init() {
	dayShowCmd.Flags().StringVar(&dayDate, "date", "", "date (YYYY-MM-DD, default today)")
	daySetCmd.Flags().StringVar(&dayDate, "date", "", "date (YYYY-MM-DD, default today)")
	daySetCmd.Flags().StringArrayVar(&dayBlocks, "block", nil, "block as start:end[:task-id] (repeatable)")

	dayCmd.AddCommand(dayShowCmd)
	dayCmd.AddCommand(daySetCmd)
}

func runDayShow(cmd *cobra.Command, args []string) error {
	date := dayDate
	if date == "" {
		date = today()
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	blocks, err := store.Blocks().ForDate(date)
	if err != nil {
		return fmt.Errorf("list blocks: %w", err)
	}

	if flagJSON {
		return printJSON(blocks)
	}
	fmt.Printf("Plan for %s:\n", date)
	for _, block := range blocks {
		label := block.TaskID
		if label == "" {
			label = "(unassigned)"
		}
		fmt.Printf("  %s–%s  %s\n", slotClock(block.StartSlot), slotClock(block.EndSlot), label)
	}
	return nil
}

func runDaySet(cmd *cobra.Command, args []string) error {
	date := dayDate
	if date == "" {
		date = today()
	}

	blocks := make([]types.DayBlock, 0, len(dayBlocks))
	for _, spec := range dayBlocks {
		block, err := parseBlockSpec(spec, date)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Blocks().ReplaceForDate(date, blocks); err != nil {
		return fmt.Errorf("replace blocks: %w", err)
	}
	fmt.Printf("Set %d block(s) for %s\n", len(blocks), date)
	return nil
}
