package agent

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("transformer attention paper")

	if !strings.Contains(p, `"transformer attention paper"`) {
		t.Errorf("prompt missing description: %s", p)
	}
	if !strings.Contains(p, "ONLY ONE") {
		t.Error("prompt missing single-paper instruction")
	}
	if !strings.Contains(p, "NOT_FOUND") {
		t.Error("prompt missing no-match contract")
	}
	if !strings.Contains(p, "bibtex") {
		t.Error("prompt missing BibTeX formatting instruction")
	}
}

func TestParseAnswer_FencedEntry(t *testing.T) {
	raw := "Found it!\n\n```bibtex\n@inproceedings{vaswani2017attention,\n  title = {Attention Is All You Need},\n  year = {2017}\n}\n```"

	c, err := ParseAnswer(raw)
	if err != nil {
		t.Fatalf("ParseAnswer failed: %v", err)
	}
	if c.Key != "vaswani2017attention" {
		t.Errorf("got key %q", c.Key)
	}
}

func TestParseAnswer_BareEntry(t *testing.T) {
	raw := "@article{smith2020deep, title = {Deep Things}, year = {2020}}"
	c, err := ParseAnswer(raw)
	if err != nil {
		t.Fatalf("ParseAnswer failed: %v", err)
	}
	if c.Key != "smith2020deep" {
		t.Errorf("got key %q", c.Key)
	}
}

func TestParseAnswer_NotFound(t *testing.T) {
	_, err := ParseAnswer("NOT_FOUND")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestParseAnswer_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "I could not format this properly."} {
		if _, err := ParseAnswer(raw); err == nil {
			t.Errorf("ParseAnswer(%q) succeeded, want error", raw)
		}
	}
}
