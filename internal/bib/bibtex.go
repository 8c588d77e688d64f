package bib

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Citation is a single structured bibliographic record, parsed out of the
// agent's answer and re-rendered deterministically on export.
type Citation struct {
	EntryType string            `json:"entry_type"`
	Key       string            `json:"key"`
	Fields    map[string]string `json:"fields"`
	Raw       string            `json:"raw"`
}

// Title returns the title field, if present.
func (c *Citation) Title() string { return c.Fields["title"] }

// Authors returns the author field, if present.
func (c *Citation) Authors() string { return c.Fields["author"] }

// Year returns the year field, if present.
func (c *Citation) Year() string { return c.Fields["year"] }

// Venue returns the booktitle or journal field, whichever is set.
func (c *Citation) Venue() string {
	if v := c.Fields["booktitle"]; v != "" {
		return v
	}
	return c.Fields["journal"]
}

// Fenced ```bibtex ... ``` code blocks in the agent's response.
var fenceRegex = regexp.MustCompile("(?is)```(?:bibtex)?\\s*\n(.*?)\n\\s*```")

// ExtractEntries pulls BibTeX entry text out of fenced code blocks in an
// agent response. Blocks without an '@' are discarded.
func ExtractEntries(response string) []string {
	var entries []string
	for _, m := range fenceRegex.FindAllStringSubmatch(response, -1) {
		cleaned := strings.TrimSpace(m[1])
		if cleaned != "" && strings.Contains(cleaned, "@") {
			entries = append(entries, cleaned)
		}
	}
	return entries
}

// ParseEntry parses a single @type{key, field = {value}, ...} entry.
// The parser is intentionally tolerant: agent output is semi-structured,
// so it accepts {...} values, "..." values and bare words, and ignores
// anything before the first '@'.
func ParseEntry(text string) (*Citation, error) {
	at := strings.Index(text, "@")
	if at < 0 {
		return nil, fmt.Errorf("no @entry found")
	}
	rest := text[at+1:]

	open := strings.Index(rest, "{")
	if open < 0 {
		return nil, fmt.Errorf("malformed entry: missing '{'")
	}
	entryType := strings.ToLower(strings.TrimSpace(rest[:open]))
	if entryType == "" {
		return nil, fmt.Errorf("malformed entry: empty type")
	}
	rest = rest[open+1:]

	comma := strings.Index(rest, ",")
	if comma < 0 {
		return nil, fmt.Errorf("malformed entry: missing citation key")
	}
	key := strings.TrimSpace(rest[:comma])
	if key == "" || strings.ContainsAny(key, "{}") {
		return nil, fmt.Errorf("malformed entry: bad citation key %q", key)
	}
	rest = rest[comma+1:]

	fields, err := parseFields(rest)
	if err != nil {
		return nil, err
	}

	return &Citation{
		EntryType: entryType,
		Key:       key,
		Fields:    fields,
		Raw:       strings.TrimSpace(text[at:]),
	}, nil
}

// parseFields scans "name = value" pairs until the entry's closing brace.
func parseFields(s string) (map[string]string, error) {
	fields := make(map[string]string)
	i := 0
	for i < len(s) {
		// Skip separators and whitespace.
		for i < len(s) && (s[i] == ',' || s[i] == ' ' || s[i] == '\n' || s[i] == '\t' || s[i] == '\r') {
			i++
		}
		if i >= len(s) || s[i] == '}' {
			break
		}

		eq := strings.IndexByte(s[i:], '=')
		if eq < 0 {
			break
		}
		name := strings.ToLower(strings.TrimSpace(s[i : i+eq]))
		i += eq + 1

		for i < len(s) && (s[i] == ' ' || s[i] == '\n' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}

		var value string
		switch s[i] {
		case '{':
			depth := 0
			start := i
			for ; i < len(s); i++ {
				if s[i] == '{' {
					depth++
				} else if s[i] == '}' {
					depth--
					if depth == 0 {
						i++
						break
					}
				}
			}
			if depth != 0 {
				return nil, fmt.Errorf("unbalanced braces in field %q", name)
			}
			value = s[start+1 : i-1]
		case '"':
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in field %q", name)
			}
			value = s[i+1 : i+1+end]
			i += end + 2
		default:
			end := strings.IndexAny(s[i:], ",}\n")
			if end < 0 {
				end = len(s) - i
			}
			value = strings.TrimSpace(s[i : i+end])
			i += end
		}

		if name != "" {
			fields[name] = strings.TrimSpace(value)
		}
	}
	return fields, nil
}

// Field order on export: the fields a reader scans for first, then the rest
// alphabetically so repeated exports diff cleanly.
var leadingFields = []string{"author", "title", "booktitle", "journal", "year"}

// Render produces the canonical BibTeX text for the citation, optionally
// under a different key (used for collision disambiguation).
func (c *Citation) Render(key string) string {
	if key == "" {
		key = c.Key
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s{%s,\n", c.EntryType, key)

	seen := make(map[string]bool)
	for _, name := range leadingFields {
		if v, ok := c.Fields[name]; ok && v != "" {
			fmt.Fprintf(&sb, "  %s = {%s},\n", name, v)
			seen[name] = true
		}
	}

	var rest []string
	for name, v := range c.Fields {
		if !seen[name] && v != "" {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		fmt.Fprintf(&sb, "  %s = {%s},\n", name, c.Fields[name])
	}

	sb.WriteString("}")
	return sb.String()
}
