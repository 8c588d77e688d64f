package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initBib string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize or continue a bibliography session",
	Long: `Creates a session in the working directory, or updates the bibliography
target of an existing one. Running init twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}

		target := initBib
		if target == "" {
			if sess.BibPath != "" {
				target = sess.BibPath
			} else {
				target = toolConfig.Export.DefaultBib
			}
		}
		abs, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolving bibliography path: %w", err)
		}

		// Touch the file now so an unwritable target fails at init, not at export.
		created := false
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			created = true
		}
		f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("bibliography path is not writable: %w", err)
		}
		f.Close()

		sess.BibPath = abs
		if err := store.Save(sess); err != nil {
			return err
		}

		log := appLog.Component("init")
		log.Info().Str("bib", abs).Bool("created", created).Msg("session initialized")

		if created {
			printInfo("Created " + filepath.Base(abs))
		}
		printSuccess("Session initialized")
		printKeyValue("Bibliography", abs)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initBib, "bib", "", "BibTeX file path")
	rootCmd.AddCommand(initCmd)
}
