package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add -- DESCRIPTION",
	Short: "Add a paper vibe (natural-language description)",
	Long: `Records a natural-language description of a paper you want to cite.

Usage: vc add -- "description of the paper you want"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if !store.Exists() {
			return fmt.Errorf("no session in this directory; run 'vc init' first")
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}

		description := strings.TrimSpace(strings.Join(args, " "))
		if description == "" {
			return fmt.Errorf("please provide a description after --, e.g. vc add -- \"transformer attention paper\"")
		}

		r, err := sess.Add(description)
		if err != nil {
			return err
		}
		if err := store.Save(sess); err != nil {
			return err
		}

		log := appLog.Component("add")
		log.Info().Str("id", r.ID).Msg("vibe added")

		printSuccess("Added vibe " + r.ShortID())
		printKeyValue("Description", r.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
