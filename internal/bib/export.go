package bib

import (
	"fmt"
	"os"
	"strings"
)

// Export writes the citations to path as BibTeX text, overwriting whatever
// was there. Overwrite-with-the-full-set keeps export idempotent: running it
// twice with the same session produces byte-identical files.
//
// Duplicate citation keys are disambiguated deterministically with -2, -3,
// ... suffixes in input order. The stored citations are never mutated.
func Export(path string, citations []*Citation) error {
	var entries []string
	used := make(map[string]bool)

	for _, c := range citations {
		key := c.Key
		for n := 2; used[key]; n++ {
			key = fmt.Sprintf("%s-%d", c.Key, n)
		}
		used[key] = true
		entries = append(entries, c.Render(key))
	}

	var content string
	if len(entries) > 0 {
		content = strings.Join(entries, "\n\n") + "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
