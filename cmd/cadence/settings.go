// Settings commands: get and set key/value pairs.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print all settings, or one key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		value, err := store.Settings().Get(args[0])
		if err != nil {
			return fmt.Errorf("get setting: %w", err)
		}
		fmt.Println(value)
		return nil
	}

	settings, err := store.Settings().All()
	if err != nil {
		return fmt.Errorf("list settings: %w", err)
	}

	if flagJSON {
		return printJSON(settings)
	}
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, settings[key])
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Settings().Set(args[0], args[1]); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	fmt.Printf("Set %s\n", args[0])
	return nil
}
