package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jusjinuk/vibecite/internal/bib"
)

// Status is the lifecycle state of a vibe record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusFailed   Status = "failed"
)

// Record is a single vibe: a natural-language paper description and, once
// the agent has resolved it, the resulting citation.
type Record struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Status      Status        `json:"status"`
	Citation    *bib.Citation `json:"citation,omitempty"`
	RawResponse string        `json:"raw_response,omitempty"`
	FailReason  string        `json:"fail_reason,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

// ShortID returns the first UUID segment, enough to tell records apart in a table.
func (r *Record) ShortID() string {
	if i := strings.IndexByte(r.ID, '-'); i > 0 {
		return r.ID[:i]
	}
	return r.ID
}

// MarkResolved transitions the record to resolved with the given citation.
func (r *Record) MarkResolved(c *bib.Citation, raw string) {
	now := time.Now().UTC()
	r.Status = StatusResolved
	r.Citation = c
	r.RawResponse = raw
	r.FailReason = ""
	r.ResolvedAt = &now
}

// MarkFailed transitions the record to failed with a human-readable reason.
func (r *Record) MarkFailed(reason string, raw string) {
	r.Status = StatusFailed
	r.Citation = nil
	r.FailReason = reason
	if raw != "" {
		r.RawResponse = raw
	}
	r.ResolvedAt = nil
}

// Session holds the export target and the ordered vibe records for one
// working directory.
type Session struct {
	BibPath string    `json:"bib_path,omitempty"`
	Records []*Record `json:"records"`
}

// Add appends a new pending record and returns it.
func (s *Session) Add(description string) (*Record, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description must not be empty")
	}

	r := &Record{
		ID:          uuid.NewString(),
		Description: description,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.Records = append(s.Records, r)
	return r, nil
}

// Resolved returns the resolved records in insertion order.
func (s *Session) Resolved() []*Record {
	var out []*Record
	for _, r := range s.Records {
		if r.Status == StatusResolved {
			out = append(out, r)
		}
	}
	return out
}

// Searchable returns the records a search run should process, in insertion
// order. Failed records are retried: only already-resolved records are
// skipped, matching how search has always behaved.
func (s *Session) Searchable() []*Record {
	var out []*Record
	for _, r := range s.Records {
		if r.Status != StatusResolved {
			out = append(out, r)
		}
	}
	return out
}
