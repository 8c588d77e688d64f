package main

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the session in this directory",
	Long:  "Removes all recorded vibes and the export target. There is no undo.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}

		log := appLog.Component("clear")
		log.Info().Msg("session cleared")
		printSuccess("Session cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
