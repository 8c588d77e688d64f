package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jusjinuk/vibecite/internal/bib"
	"github.com/jusjinuk/vibecite/internal/sys"
)

// Result carries the delegate's final answer for one vibe.
type Result struct {
	Citation *bib.Citation
	Raw      string
}

// Delegate resolves a natural-language paper description into a citation.
// How the search happens is opaque: the default implementation shells out
// to the Claude CLI, an alternative asks a local Ollama model, and tests
// substitute a fake.
type Delegate interface {
	Resolve(ctx context.Context, description string, onProgress func(string)) (*Result, error)
}

var (
	// ErrNotFound means the agent answered but explicitly found no match.
	ErrNotFound = errors.New("agent found no matching paper")

	// ErrUnavailable means the agent could not be reached at all.
	ErrUnavailable = errors.New("search agent is not available")
)

// New builds the delegate selected by the tool configuration.
func New(cfg *sys.Config) (Delegate, error) {
	switch cfg.Agent.Provider {
	case "", "claude":
		return NewClaude(cfg.Agent.Command, cfg.AgentTimeout()), nil
	case "ollama":
		return NewOllama(cfg.Model.Endpoint, cfg.Model.Name, cfg.AgentTimeout())
	default:
		return nil, fmt.Errorf("unknown agent provider %q", cfg.Agent.Provider)
	}
}
