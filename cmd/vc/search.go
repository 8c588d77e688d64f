package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jusjinuk/vibecite/internal/agent"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Resolve vibes into citations via the search agent",
	Long: `Hands every pending (and previously failed) vibe to the external search
agent, one at a time in insertion order. A vibe the agent cannot resolve is
marked failed and the run continues; only a completely unreachable agent
aborts the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		sess, err := store.Load()
		if err != nil {
			return err
		}

		candidates := sess.Searchable()
		if len(candidates) == 0 {
			printInfo("Nothing to search. Use 'vc add -- \"description\"' first.")
			return nil
		}

		delegate, err := agent.New(toolConfig)
		if err != nil {
			return err
		}

		// The Claude CLI only reaches the web when the project settings allow
		// its search tools. Degrade with a warning rather than refuse to run.
		if toolConfig.Agent.Provider == "" || toolConfig.Agent.Provider == "claude" {
			if cwd, err := os.Getwd(); err == nil {
				if err := agent.EnsureSearchTools(cwd); err != nil {
					printWarning("Could not enable web search tools: " + err.Error())
				}
			}
		}

		log := appLog.Component("search")
		p := tea.NewProgram(newSearchModel(len(candidates)))

		go func() {
			var outcome searchDoneMsg
			defer func() { p.Send(outcome) }()

			for i, r := range candidates {
				p.Send(recordStartMsg{index: i + 1, description: r.Description})

				res, err := delegate.Resolve(context.Background(), r.Description, func(s string) {
					p.Send(agentProgressMsg(s))
				})
				switch {
				case err == nil:
					r.MarkResolved(res.Citation, res.Raw)
					outcome.resolved++
					log.Info().Str("id", r.ID).Str("key", res.Citation.Key).Msg("vibe resolved")
					p.Send(recordDoneMsg{record: r, detail: res.Citation.Key})
				case errors.Is(err, agent.ErrUnavailable):
					// Total inability to reach the agent: stop the batch,
					// leaving unattempted records untouched.
					outcome.fatal = err
					return
				default:
					r.MarkFailed(err.Error(), "")
					outcome.failed++
					log.Warn().Str("id", r.ID).Err(err).Msg("vibe failed")
					p.Send(recordDoneMsg{record: r, detail: err.Error()})
				}

				if err := store.Save(sess); err != nil {
					outcome.fatal = err
					return
				}
			}
		}()

		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("progress display: %w", err)
		}

		m, ok := finalModel.(searchModel)
		if !ok || !m.done {
			return fmt.Errorf("search interrupted")
		}
		if m.fatal != nil {
			return m.fatal
		}

		printNewline()
		if m.failed == 0 {
			printSuccess(fmt.Sprintf("Resolved %d of %d vibe(s)", m.resolved, len(candidates)))
		} else {
			printWarning(fmt.Sprintf("Resolved %d of %d vibe(s); %d failed (see 'vc ls --verbose')",
				m.resolved, len(candidates), m.failed))
		}
		if m.resolved > 0 {
			printInfo("Run 'vc export' to write the bibliography.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
