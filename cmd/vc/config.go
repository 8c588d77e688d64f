package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jusjinuk/vibecite/internal/sys"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or update tool configuration",
	Long: `View or update configuration settings for vibecite.
If no arguments are provided, it lists all current settings.
If only a key is provided, it shows the current value for that key.
If both key and value are provided, it updates the setting.

Keys:
  agent.provider         search agent backend (claude, ollama)
  agent.command          agent CLI binary (default: claude)
  agent.timeout_seconds  per-vibe agent timeout
  model.endpoint         Ollama endpoint (ollama provider only)
  model.name             Ollama model name (ollama provider only)
  export.default_bib     bibliography file used when init has no --bib
  log.level              log verbosity (debug, info, warn, error)
  log.console            echo log entries to stderr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := sys.NewConfigManager()
		if err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		cfg, err := cm.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) == 0 {
			printTitle("⚙️", "CONFIGURATION")
			printKeyValueHighlight("agent.provider       ", cfg.Agent.Provider)
			printKeyValue("agent.command        ", cfg.Agent.Command)
			printKeyValue("agent.timeout_seconds", strconv.Itoa(cfg.Agent.TimeoutSeconds))
			printKeyValue("model.endpoint       ", cfg.Model.Endpoint)
			printKeyValue("model.name           ", cfg.Model.Name)
			printKeyValue("export.default_bib   ", cfg.Export.DefaultBib)
			printKeyValue("log.level            ", cfg.Log.Level)
			printKeyValue("log.console          ", fmt.Sprintf("%v", cfg.Log.Console))
			printNewline()
			return nil
		}

		key := args[0]
		if len(args) == 1 {
			switch key {
			case "agent.provider":
				fmt.Println(cfg.Agent.Provider)
			case "agent.command":
				fmt.Println(cfg.Agent.Command)
			case "agent.timeout_seconds":
				fmt.Println(cfg.Agent.TimeoutSeconds)
			case "model.endpoint":
				fmt.Println(cfg.Model.Endpoint)
			case "model.name":
				fmt.Println(cfg.Model.Name)
			case "export.default_bib":
				fmt.Println(cfg.Export.DefaultBib)
			case "log.level":
				fmt.Println(cfg.Log.Level)
			case "log.console":
				fmt.Println(cfg.Log.Console)
			default:
				return fmt.Errorf("unknown config key: %s", key)
			}
			return nil
		}

		value := args[1]
		switch key {
		case "agent.provider":
			if value != "claude" && value != "ollama" {
				return fmt.Errorf("invalid provider %q (claude, ollama)", value)
			}
			cfg.Agent.Provider = value
		case "agent.command":
			cfg.Agent.Command = value
		case "agent.timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid timeout for %s: %s", key, value)
			}
			cfg.Agent.TimeoutSeconds = n
		case "model.endpoint":
			cfg.Model.Endpoint = value
		case "model.name":
			cfg.Model.Name = value
		case "export.default_bib":
			cfg.Export.DefaultBib = value
		case "log.level":
			cfg.Log.Level = value
		case "log.console":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean value for %s: %s", key, value)
			}
			cfg.Log.Console = b
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := cm.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Println(cliBadgeSuccess.Render("SET") + " " + cliLabel.Render(key) + " → " + cliHighlight.Render(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
