package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jusjinuk/vibecite/internal/bib"
)

var exportBib string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export resolved citations as BibTeX",
	Long: `Writes every resolved citation to the bibliography file, overwriting it
with the full current set so repeated exports stay idempotent. Pending and
failed vibes are skipped and reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}

		target := exportBib
		if target == "" {
			target = sess.BibPath
		}
		if target == "" {
			target = toolConfig.Export.DefaultBib
		}
		abs, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolving bibliography path: %w", err)
		}

		resolved := sess.Resolved()
		citations := make([]*bib.Citation, 0, len(resolved))
		for _, r := range resolved {
			citations = append(citations, r.Citation)
		}

		if err := bib.Export(abs, citations); err != nil {
			return err
		}

		skipped := len(sess.Records) - len(resolved)
		log := appLog.Component("export")
		log.Info().
			Str("bib", abs).
			Int("exported", len(resolved)).
			Int("skipped", skipped).
			Msg("export complete")

		printSuccess(fmt.Sprintf("Exported %d citation(s) to %s", len(resolved), abs))
		if skipped > 0 {
			printWarning(fmt.Sprintf("Skipped %d unresolved vibe(s); run 'vc search' to resolve them", skipped))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportBib, "bib", "", "output BibTeX file (defaults to the session target)")
	rootCmd.AddCommand(exportCmd)
}
