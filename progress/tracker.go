// Package progress tracks per-item collection completeness in a JSON state
// file and snapshots collected data into version control.
package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// Buckets are mutually exclusive: an item lives in at most one at a time.
var Buckets = []string{"basic", "completed", "partial", "failed"}

// State is the on-disk progress document.
type State struct {
	Basic       []string `json:"basic"`
	Completed   []string `json:"completed"`
	Partial     []string `json:"partial"`
	Failed      []string `json:"failed"`
	RetryQueue  []string `json:"retry_queue"`
	LastUpdated string   `json:"last_updated"`
}

func newState() *State {
	return &State{
		Basic:      []string{},
		Completed:  []string{},
		Partial:    []string{},
		Failed:     []string{},
		RetryQueue: []string{},
	}
}

func (s *State) bucket(name string) *[]string {
	switch name {
	case "basic":
		return &s.Basic
	case "completed":
		return &s.Completed
	case "partial":
		return &s.Partial
	case "failed":
		return &s.Failed
	}
	return nil
}

// Tracker binds the state document to a file path.
type Tracker struct {
	path string
	now  func() time.Time
}

func NewTracker(path string) *Tracker {
	return &Tracker{path: path, now: time.Now}
}

// Update moves item into the bucket named by status. The item is removed
// from every bucket first, so membership stays exclusive; an unknown status
// only removes. The state file is rewritten in place.
func (t *Tracker) Update(item, status string) error {
	state := t.Load()

	for _, name := range Buckets {
		b := state.bucket(name)
		*b = remove(*b, item)
	}

	if b := state.bucket(status); b != nil {
		*b = append(*b, item)
	} else {
		log.Warn().Str("item", item).Str("status", status).Msg("<Progress> unknown status, item removed from all buckets")
	}

	state.LastUpdated = t.now().Format(time.RFC3339)
	return t.save(state)
}

// Load reads the state file. A missing or unreadable file yields a fresh
// empty state.
func (t *Tracker) Load() *State {
	state := newState()

	data, err := os.ReadFile(t.path)
	if err != nil {
		return state
	}
	if err := sonic.Unmarshal(data, state); err != nil {
		log.Warn().Err(err).Str("file", t.path).Msg("<Progress> invalid state file, starting fresh")
		return newState()
	}

	// Buckets decoded as null would break exclusivity bookkeeping.
	for _, name := range Buckets {
		if b := state.bucket(name); *b == nil {
			*b = []string{}
		}
	}
	if state.RetryQueue == nil {
		state.RetryQueue = []string{}
	}
	return state
}

func (t *Tracker) save(state *State) error {
	data, err := sonic.ConfigDefault.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create progress dir: %w", err)
		}
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func remove(items []string, target string) []string {
	out := items[:0]
	for _, item := range items {
		if item != target {
			out = append(out, item)
		}
	}
	return out
}
