package agent

import (
	"fmt"
	"strings"

	"github.com/jusjinuk/vibecite/internal/bib"
)

// The agent answers with this marker when it has no confident match.
const notFoundMarker = "NOT_FOUND"

// BuildPrompt constructs the task prompt for one vibe. The contract: one
// paper, venue publication preferred over arXiv, DOI when available, BibTeX
// inside a fenced code block, or the NOT_FOUND marker.
func BuildPrompt(description string) string {
	return fmt.Sprintf(`You have access to search tools including WebSearch and WebFetch. Use these tools to search for academic papers.

Please search for an academic paper matching this description: %q

Find ONLY ONE most relevant paper and return it in BibTeX format. IMPORTANT: when choosing between multiple versions of the same paper, prioritize the conference/journal publication over the arXiv version. Include the DOI when available. Format your response with the BibTeX entry inside a %s code block.

If you cannot find a paper that confidently matches the description, reply with the single word %s instead.`,
		description, "```bibtex```", notFoundMarker)
}

// ParseAnswer turns the agent's final answer into a structured citation.
// An explicit no-match yields ErrNotFound; anything unparseable is an error
// the caller records as the record's failure reason.
func ParseAnswer(raw string) (*bib.Citation, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("agent returned an empty answer")
	}
	if strings.Contains(trimmed, notFoundMarker) {
		return nil, ErrNotFound
	}

	entries := bib.ExtractEntries(raw)
	if len(entries) == 0 {
		// Some models skip the code fence and answer with a bare entry.
		if !strings.Contains(trimmed, "@") {
			return nil, fmt.Errorf("no BibTeX entry in agent answer")
		}
		entries = []string{trimmed}
	}

	c, err := bib.ParseEntry(entries[0])
	if err != nil {
		return nil, fmt.Errorf("parsing agent BibTeX: %w", err)
	}
	return c, nil
}
