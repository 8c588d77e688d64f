package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

var searchTools = []string{"WebSearch", "WebFetch"}

// EnsureSearchTools makes sure the Claude CLI is allowed to use its web
// search tools in this project, creating or amending
// .claude/settings.local.json. Without this the agent answers from memory
// and citation quality drops sharply.
func EnsureSearchTools(dir string) error {
	settingsPath := filepath.Join(dir, ".claude", "settings.local.json")

	settings := map[string]interface{}{}
	if data, err := os.ReadFile(settingsPath); err == nil {
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("parsing %s: %w", settingsPath, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", settingsPath, err)
	}

	permissions, _ := settings["permissions"].(map[string]interface{})
	if permissions == nil {
		permissions = map[string]interface{}{
			"allow": []interface{}{},
			"deny":  []interface{}{},
			"ask":   []interface{}{},
		}
		settings["permissions"] = permissions
	}

	allow, _ := permissions["allow"].([]interface{})
	changed := false
	for _, tool := range searchTools {
		found := false
		for _, entry := range allow {
			if entry == tool {
				found = true
				break
			}
		}
		if !found {
			allow = append(allow, tool)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	permissions["allow"] = allow

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return fmt.Errorf("creating .claude directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", settingsPath, err)
	}
	return nil
}
