package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// StateFileName is the per-directory session state file.
const StateFileName = ".vc_state.json"

// ErrCorrupt marks a state file that exists but cannot be decoded. The user
// has to clear or re-init; silently starting over would lose their session.
var ErrCorrupt = errors.New("session state is corrupt")

// Store persists a Session to a JSON file in a working directory.
type Store struct {
	path string
}

// NewStore returns a store rooted at dir. An empty dir means the current
// working directory.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, StateFileName)}
}

// Path returns the state file location.
func (st *Store) Path() string { return st.path }

// Exists reports whether a session has been persisted.
func (st *Store) Exists() bool {
	_, err := os.Stat(st.path)
	return err == nil
}

// Load reads the persisted session. A missing state file is not an error:
// it yields an empty session, matching first use before init.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("reading session state: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w (%s): %v; run 'vc clear' and 'vc init' to start over", ErrCorrupt, st.path, err)
	}
	return &s, nil
}

// Save persists the session atomically: write a temp file next to the
// target, then rename over it, so a crash mid-write never corrupts the
// previously saved state.
func (st *Store) Save(s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}

	dir := filepath.Dir(st.path)
	tmp, err := os.CreateTemp(dir, ".vc_state-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing session state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp state file: %w", err)
	}

	if err := os.Rename(tmpName, st.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing session state: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing a session that was never
// saved is fine.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session state: %w", err)
	}
	return nil
}
