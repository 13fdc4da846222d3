// Assist commands: enrich a task, plan a day, refine a plan. The model
// call happens between store operations, never while holding the
// connection.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cadence/internal/sqlite"
	"github.com/dukaforge/cadence/pkg/types"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "AI-assisted planning",
}

var (
	assistDate  string
	assistApply bool
)

var assistEnrichCmd = &cobra.Command{
	Use:   "enrich <task-id>",
	Short: "Generate notes and tags for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistEnrich,
}

var assistPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Propose a schedule for today's tasks",
	Args:  cobra.NoArgs,
	RunE:  runAssistPlan,
}

var assistRefineCmd = &cobra.Command{
	Use:   "refine <instruction>",
	Short: "Adjust an existing day plan per an instruction",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistRefine,
}

func init() {
	assistPlanCmd.Flags().StringVar(&assistDate, "date", "", "date to plan (YYYY-MM-DD, default today)")
	assistPlanCmd.Flags().BoolVar(&assistApply, "apply", false, "write the proposed blocks")
	assistRefineCmd.Flags().StringVar(&assistDate, "date", "", "date to refine (YYYY-MM-DD, default today)")
	assistRefineCmd.Flags().BoolVar(&assistApply, "apply", false, "write the refined blocks")

	assistCmd.AddCommand(assistEnrichCmd)
	assistCmd.AddCommand(assistPlanCmd)
	assistCmd.AddCommand(assistRefineCmd)
}

func runAssistEnrich(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	task, err := store.Tasks().Get(args[0])
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	client, err := assistClient(store)
	if err != nil {
		return err
	}

	enrichment, err := client.Enrich(cmd.Context(), task.Title)
	if err != nil {
		return fmt.Errorf("enrich: %w", err)
	}

	if enrichment.Notes != "" {
		task.Notes = enrichment.Notes
	}
	if len(enrichment.Tags) > 0 {
		task.Tags = enrichment.Tags
	}
	if err := store.Tasks().Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	if flagJSON {
		return printJSON(task)
	}
	fmt.Printf("Enriched %s: %s (tags: %v)\n", task.ID, task.Notes, task.Tags)
	return nil
}

func runAssistPlan(cmd *cobra.Command, args []string) error {
	date := assistDate
	if date == "" {
		date = today()
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Tasks().List()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	candidates := make([]types.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsToday && !task.Done {
			candidates = append(candidates, task)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no open tasks marked for today; use: cadence task add --today")
	}

	client, err := assistClient(store)
	if err != nil {
		return err
	}

	plan, err := client.Plan(cmd.Context(), candidates)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	return emitPlan(store, plan, date)
}

func runAssistRefine(cmd *cobra.Command, args []string) error {
	date := assistDate
	if date == "" {
		date = today()
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	existing, err := store.Blocks().ForDate(date)
	if err != nil {
		return fmt.Errorf("list blocks: %w", err)
	}
	payload, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}

	client, err := assistClient(store)
	if err != nil {
		return err
	}

	plan, err := client.Refine(cmd.Context(), string(payload), args[0])
	if err != nil {
		return fmt.Errorf("refine: %w", err)
	}

	return emitPlan(store, plan, date)
}

// emitPlan prints a proposed plan and, with --apply, replaces the date's
// block set with it.
func emitPlan(store *sqlite.Store, plan types.PlanResult, date string) error {
	if assistApply {
		blocks := make([]types.DayBlock, 0, len(plan.Blocks))
		for _, planned := range plan.Blocks {
			blocks = append(blocks, types.DayBlock{
				ID:        newID(),
				TaskID:    planned.TaskID,
				Date:      date,
				StartSlot: planned.StartSlot,
				EndSlot:   planned.EndSlot,
			})
		}
		if err := store.Blocks().ReplaceForDate(date, blocks); err != nil {
			return fmt.Errorf("apply plan: %w", err)
		}
	}

	if flagJSON {
		return printJSON(plan)
	}
	fmt.Printf("Proposed plan for %s:\n", date)
	for _, planned := range plan.Blocks {
		label := planned.TaskID
		if label == "" {
			label = "(unassigned)"
		}
		fmt.Printf("  %s–%s  %s\n", slotClock(planned.StartSlot), slotClock(planned.EndSlot), label)
	}
	if !assistApply {
		fmt.Println("(dry run; pass --apply to write)")
	}
	return nil
}
