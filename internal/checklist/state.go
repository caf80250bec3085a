package checklist

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Key identifies one boss by region and name. On disk it is a two-element
// JSON array, matching the save-file format.
type Key struct {
	Region string
	Name   string
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{k.Region, k.Name})
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	k.Region, k.Name = pair[0], pair[1]
	return nil
}

// State is the completion set, the only persisted mutable state.
type State struct {
	Completed map[Key]struct{}
}

// stateFile is the on-disk shape: {"completed": [["region","name"], ...]}.
type stateFile struct {
	Completed []Key `json:"completed"`
}

// NewState returns an empty completion set.
func NewState() *State {
	return &State{Completed: make(map[Key]struct{})}
}

// Contains reports whether the given boss is marked completed.
func (s *State) Contains(region, name string) bool {
	_, ok := s.Completed[Key{Region: region, Name: name}]
	return ok
}

// Keys returns the set members sorted by region, then name. Sorting keeps
// the save file deterministic; readers treat it as a set either way.
func (s *State) Keys() []Key {
	keys := make([]Key, 0, len(s.Completed))
	for k := range s.Completed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Region != keys[j].Region {
			return keys[i].Region < keys[j].Region
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}

// LoadState reads the save file, creating an empty one first if it does not
// exist. Every I/O failure is returned to the caller, including failures
// writing the first-run default.
func LoadState(path string) (*State, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeState(path, NewState()); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save file %s: %w", path, err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse save file %s: %w", path, err)
	}

	state := NewState()
	for _, k := range sf.Completed {
		state.Completed[k] = struct{}{}
	}
	return state, nil
}

// StateFromRows derives the completion set from the checked rows.
func StateFromRows(rows []Row) *State {
	state := NewState()
	for _, r := range rows {
		if r.Checked {
			state.Completed[Key{Region: r.Region, Name: r.Name}] = struct{}{}
		}
	}
	return state
}

// SaveState recomputes the completion set from the rows and overwrites the
// save file with it. The write replaces the whole file; the set is never
// patched incrementally.
func SaveState(path string, rows []Row) error {
	return writeState(path, StateFromRows(rows))
}

func writeState(path string, state *State) error {
	data, err := json.Marshal(stateFile{Completed: state.Keys()})
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write save file %s: %w", path, err)
	}
	return nil
}
