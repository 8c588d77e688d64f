package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/jusjinuk/vibecite/internal/logging"
	"github.com/jusjinuk/vibecite/internal/session"
	"github.com/jusjinuk/vibecite/internal/sys"
)

var (
	Version = "dev"
	Commit  = "none"
)

func init() {
	// Try to populate Version and Commit from build info if they are defaults
	if info, ok := debug.ReadBuildInfo(); ok {
		if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && Commit == "none" {
				Commit = setting.Value
			}
		}
	}
	rootCmd.Version = Version
}

var (
	toolConfig *sys.Config
	appLog     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:     "vc",
	Version: Version,
	Short:   "Turn natural-language paper descriptions into curated citations",
	Long: `vibecite keeps a small per-directory session of paper "vibes" — informal
natural-language descriptions of papers you want to cite — and delegates the
actual literature search to an external AI agent, exporting the resolved
citations as BibTeX.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cm, err := sys.NewConfigManager()
		if err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		toolConfig, err = cm.Load()
		if err != nil {
			return err
		}
		appLog, err = logging.New(toolConfig.DataDir, toolConfig.Log.Level, toolConfig.Log.Console)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		return nil
	},
}

// openStore returns the session store for the working directory.
func openStore() (*session.Store, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return session.NewStore(cwd), nil
}

func main() {
	err := rootCmd.Execute()
	if appLog != nil {
		appLog.Close()
	}
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
