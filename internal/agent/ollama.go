package agent

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaDelegate asks a local Ollama model instead of shelling out to the
// Claude CLI. A local model has no web access, so it answers from training
// data: recall is worse, but it works offline and costs nothing. Selected
// with `vc config agent.provider ollama`.
type OllamaDelegate struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// NewOllama creates an Ollama-backed delegate.
// endpoint is the Ollama server URL (e.g., "http://localhost:11434")
// and model the model to use (e.g., "llama3").
func NewOllama(endpoint string, model string, timeout time.Duration) (*OllamaDelegate, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		// Fall back to the configured endpoint if env vars are not set.
		u, perr := url.Parse(endpoint)
		if perr != nil {
			return nil, fmt.Errorf("invalid ollama endpoint %q: %w", endpoint, perr)
		}
		client = api.NewClient(u, http.DefaultClient)
	}

	return &OllamaDelegate{client: client, model: model, timeout: timeout}, nil
}

// Resolve sends the vibe prompt to the model and parses the answer.
func (d *OllamaDelegate) Resolve(ctx context.Context, description string, onProgress func(string)) (*Result, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if onProgress != nil {
		onProgress("asking " + d.model)
	}

	var response string
	req := &api.GenerateRequest{
		Model:  d.model,
		Prompt: BuildPrompt(description),
		Stream: new(bool), // false
	}
	fn := func(resp api.GenerateResponse) error {
		response += resp.Response
		return nil
	}

	if err := d.client.Generate(ctx, req, fn); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("agent timed out after %s", d.timeout)
		}
		return nil, fmt.Errorf("%w: ollama generate: %v", ErrUnavailable, err)
	}

	c, err := ParseAnswer(response)
	if err != nil {
		return nil, err
	}
	return &Result{Citation: c, Raw: response}, nil
}
