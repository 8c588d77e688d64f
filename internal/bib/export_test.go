package bib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Citation {
	t.Helper()
	c, err := ParseEntry(text)
	if err != nil {
		t.Fatalf("ParseEntry failed: %v", err)
	}
	return c
}

func TestExport_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	cites := []*Citation{
		mustParse(t, `@inproceedings{vaswani2017attention, title = {Attention Is All You Need}, year = {2017}}`),
	}

	if err := Export(path, cites); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "@inproceedings{vaswani2017attention,") {
		t.Errorf("exported file missing entry:\n%s", data)
	}
}

func TestExport_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	cites := []*Citation{
		mustParse(t, `@article{a2020, title = {First}, year = {2020}}`),
		mustParse(t, `@article{b2021, title = {Second}, year = {2021}}`),
	}

	if err := Export(path, cites); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)

	if err := Export(path, cites); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("two exports differ:\n%s\n---\n%s", first, second)
	}
}

func TestExport_DisambiguatesDuplicateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	entry := `@article{same2019, title = {Same Paper}}`
	cites := []*Citation{mustParse(t, entry), mustParse(t, entry)}

	if err := Export(path, cites); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	content := string(data)
	if !strings.Contains(content, "@article{same2019,") {
		t.Errorf("missing original key:\n%s", content)
	}
	if !strings.Contains(content, "@article{same2019-2,") {
		t.Errorf("missing disambiguated key:\n%s", content)
	}
}

func TestExport_EmptySetTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.bib")
	if err := os.WriteFile(path, []byte("@stale{old,}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Export(path, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}
