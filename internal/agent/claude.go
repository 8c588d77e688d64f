package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ClaudeDelegate shells out to the Claude CLI in print mode with
// stream-json output, so the long-running search surfaces incremental
// progress instead of going silent for minutes.
type ClaudeDelegate struct {
	command string
	timeout time.Duration
}

// NewClaude returns a delegate invoking the given CLI binary.
func NewClaude(command string, timeout time.Duration) *ClaudeDelegate {
	if command == "" {
		command = "claude"
	}
	return &ClaudeDelegate{command: command, timeout: timeout}
}

// Resolve runs one agent invocation for one vibe.
func (d *ClaudeDelegate) Resolve(ctx context.Context, description string, onProgress func(string)) (*Result, error) {
	if _, err := exec.LookPath(d.command); err != nil {
		return nil, fmt.Errorf("%w: %q not found in PATH", ErrUnavailable, d.command)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, d.command, "-p", "--output-format", "stream-json", "--verbose")
	cmd.Stdin = strings.NewReader(BuildPrompt(description))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("wiring agent stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: starting %q: %v", ErrUnavailable, d.command, err)
	}

	var final string
	var agentErr string

	scanner := bufio.NewScanner(stdout)
	// Assistant turns can be long single lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, ev := range parseStreamLine(scanner.Text()) {
			switch ev.kind {
			case eventProgress:
				if onProgress != nil {
					onProgress(ev.text)
				}
			case eventResult:
				final = ev.text
			case eventError:
				agentErr = ev.text
			}
		}
	}

	waitErr := cmd.Wait()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("agent timed out after %s", d.timeout)
	}
	if agentErr != "" {
		return nil, fmt.Errorf("agent error: %s", condense(agentErr, 200))
	}
	if waitErr != nil {
		detail := condense(stderr.String(), 200)
		if detail == "" {
			detail = waitErr.Error()
		}
		return nil, fmt.Errorf("agent exited abnormally: %s", detail)
	}
	if strings.TrimSpace(final) == "" {
		return nil, fmt.Errorf("agent produced no final answer")
	}

	c, err := ParseAnswer(final)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%v (raw answer kept for 'vc ls --verbose')", err)
	}
	return &Result{Citation: c, Raw: final}, nil
}

const (
	eventProgress = "progress"
	eventResult   = "result"
	eventError    = "error"
)

type streamEvent struct {
	kind string
	text string
}

// parseStreamLine decodes one NDJSON line from the Claude CLI. Assistant
// text and tool invocations become progress events; the final result event
// carries the answer. Non-JSON lines are ignored.
func parseStreamLine(line string) []streamEvent {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		return nil
	}

	eventType, _ := data["type"].(string)
	switch eventType {
	case "assistant":
		message, ok := data["message"].(map[string]interface{})
		if !ok {
			return nil
		}
		content, ok := message["content"].([]interface{})
		if !ok {
			return nil
		}
		var events []streamEvent
		for _, c := range content {
			block, ok := c.(map[string]interface{})
			if !ok {
				continue
			}
			switch block["type"] {
			case "text":
				if text, _ := block["text"].(string); strings.TrimSpace(text) != "" {
					events = append(events, streamEvent{eventProgress, condense(text, 80)})
				}
			case "tool_use":
				name, _ := block["name"].(string)
				input, _ := block["input"].(map[string]interface{})
				detail := toolDetail(input)
				text := name
				if detail != "" {
					text += " " + detail
				}
				events = append(events, streamEvent{eventProgress, text})
			}
		}
		return events

	case "result":
		subtype, _ := data["subtype"].(string)
		isError, _ := data["is_error"].(bool)
		result, _ := data["result"].(string)
		if isError || (subtype != "" && subtype != "success") {
			if result == "" {
				result = subtype
			}
			return []streamEvent{{eventError, result}}
		}
		return []streamEvent{{eventResult, result}}

	case "error":
		if errData, ok := data["error"].(map[string]interface{}); ok {
			if msg, _ := errData["message"].(string); msg != "" {
				return []streamEvent{{eventError, msg}}
			}
		}
	}

	return nil
}

// toolDetail extracts the most telling argument of a tool call for display.
func toolDetail(input map[string]interface{}) string {
	for _, key := range []string{"query", "url", "pattern", "prompt"} {
		if v, ok := input[key].(string); ok && v != "" {
			return condense(v, 60)
		}
	}
	return ""
}

// condense collapses a block of text to a single truncated line.
func condense(s string, max int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
