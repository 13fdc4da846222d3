// Task commands: add, list, done, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cadence/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskTitle   string
	taskEst     int64
	taskNotes   string
	taskProject string
	taskTags    []string
	taskDue     string
	taskToday   bool
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task with the given title.

Example:
  cadence task add --title "Write report" --est 60 --tags deep,writing
  cadence task add --title "Call dentist" --today --due 2026-09-15`,
	Args: cobra.NoArgs,
	RunE: runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task and its scheduled blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDelete,
}

func init() {
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	taskAddCmd.Flags().Int64Var(&taskEst, "est", 0, "estimated minutes")
	taskAddCmd.Flags().StringVar(&taskNotes, "notes", "", "free-form notes")
	taskAddCmd.Flags().StringVar(&taskProject, "project", "", "project label")
	taskAddCmd.Flags().StringSliceVar(&taskTags, "tags", nil, "comma-separated tags")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.Flags().BoolVar(&taskToday, "today", false, "put the task on today's plan")
	_ = taskAddCmd.MarkFlagRequired("title")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	task := types.Task{
		ID:      newID(),
		Title:   taskTitle,
		IsToday: taskToday,
		Notes:   taskNotes,
		Project: taskProject,
		Tags:    taskTags,
		Due:     taskDue,
	}
	if cmd.Flags().Changed("est") {
		est := taskEst
		task.EstMinutes = &est
	}

	if err := store.Tasks().Save(task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	if flagJSON {
		saved, err := store.Tasks().Get(task.ID)
		if err != nil {
			return fmt.Errorf("read back task: %w", err)
		}
		return printJSON(saved)
	}
	fmt.Printf("Created task: %s\n", task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tasks, err := store.Tasks().List()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if flagJSON {
		return printJSON(tasks)
	}
	for _, task := range tasks {
		marker := " "
		if task.Done {
			marker = "x"
		}
		fmt.Printf("[%s] %s  %s\n", marker, task.ID, task.Title)
	}
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	task, err := store.Tasks().Get(args[0])
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	task.Done = true

	if err := store.Tasks().Save(task); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	fmt.Printf("Done: %s\n", task.Title)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Tasks().Delete(args[0]); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	fmt.Printf("Deleted task: %s\n", args[0])
	return nil
}
