package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/jusjinuk/vibecite/internal/session"
)

var lsVerbose bool

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"status"},
	Short:   "Show recorded vibes and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}

		if len(sess.Records) == 0 {
			printInfo("No vibes recorded. Use 'vc add -- \"description\"' to add one.")
			return nil
		}

		printTitle("📚", "SESSION")
		if sess.BibPath != "" {
			printKeyValue("Bibliography", sess.BibPath)
			printNewline()
		}

		var pending, resolved, failed int
		for _, r := range sess.Records {
			switch r.Status {
			case session.StatusResolved:
				resolved++
			case session.StatusFailed:
				failed++
			default:
				pending++
			}

			desc := runewidth.Truncate(r.Description, 56, "…")
			fmt.Printf("%s  %s  %s\n",
				cliMuted.Render(r.ShortID()),
				renderStatus(r.Status),
				cliValue.Render(desc))

			if lsVerbose {
				printVerboseDetail(r)
			}
		}

		printNewline()
		fmt.Printf("%s %s\n",
			cliLabel.Render("Totals:"),
			cliValue.Render(fmt.Sprintf("%d pending, %d resolved, %d failed", pending, resolved, failed)))
		return nil
	},
}

func printVerboseDetail(r *session.Record) {
	if r.FailReason != "" {
		fmt.Printf("          %s\n", cliError.Render(r.FailReason))
	}
	if r.RawResponse != "" {
		raw := r.RawResponse
		if len(raw) > 500 {
			raw = raw[:500] + "..."
		}
		fmt.Printf("          %s\n", cliMuted.Render(raw))
	}
	if r.Citation != nil {
		fmt.Println(cliSubtitle.Render(r.Citation.Render("")))
	}
	printNewline()
}

func init() {
	lsCmd.Flags().BoolVarP(&lsVerbose, "verbose", "v", false, "show raw agent responses and parsed BibTeX")
	rootCmd.AddCommand(lsCmd)
}
