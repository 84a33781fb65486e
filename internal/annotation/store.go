package annotation

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// FormatVersion is written to every settings file
const FormatVersion = "1.0"

// ErrNotFound is returned when no annotation exists for a uid
var ErrNotFound = errors.New("annotation not found")

type file struct {
	Version     string     `toml:"version"`
	Annotations []Settings `toml:"annotations"`
}

// SidecarPath returns the default settings file stored next to a model
func SidecarPath(model string) string {
	return model + ".annotations.toml"
}

// Store keeps annotation settings in memory, backed by a TOML file
type Store struct {
	path     string
	settings []Settings
}

// NewStore creates an empty store that saves to path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Reload replaces the in-memory settings with the file contents
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.settings = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read annotations: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse annotations %s: %w", s.path, err)
	}
	for i, an := range f.Annotations {
		if an.UID == "" {
			return fmt.Errorf("annotation %d in %s has no uid", i, s.path)
		}
		if an.Display == "" {
			f.Annotations[i].Display = DisplayLabel
		}
	}
	s.settings = f.Annotations
	return nil
}

// Save writes the settings file. An empty store removes it.
func (s *Store) Save() error {
	if len(s.settings) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove annotations: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file{Version: FormatVersion, Annotations: s.settings}); err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write annotations: %w", err)
	}
	return nil
}

// All returns copies of all settings in file order
func (s *Store) All() []Settings {
	out := make([]Settings, len(s.settings))
	for i, an := range s.settings {
		out[i] = an.Clone()
	}
	return out
}

// Get returns a copy of the settings for uid
func (s *Store) Get(uid string) (Settings, error) {
	i := s.index(uid)
	if i < 0 {
		return Settings{}, fmt.Errorf("%s: %w", uid, ErrNotFound)
	}
	return s.settings[i].Clone(), nil
}

// Put inserts or replaces the settings for an.UID
func (s *Store) Put(an Settings) {
	if i := s.index(an.UID); i >= 0 {
		s.settings[i] = an.Clone()
		return
	}
	s.settings = append(s.settings, an.Clone())
}

// Update applies fn to the stored settings for uid
func (s *Store) Update(uid string, fn func(*Settings)) error {
	i := s.index(uid)
	if i < 0 {
		return fmt.Errorf("%s: %w", uid, ErrNotFound)
	}
	fn(&s.settings[i])
	return nil
}

// ApplyLayout copies the cells of layout into the window annotations whose
// cell differs. It reports whether anything changed. Windows missing from
// layout keep their cell.
func (s *Store) ApplyLayout(layout gridlayout.Layout) bool {
	changed := false
	for i := range s.settings {
		an := &s.settings[i]
		if an.Display != DisplayWindow {
			continue
		}
		it := layout.Get(an.UID)
		if it == nil {
			continue
		}
		pos := GridPosFromItem(it)
		if an.GridPos != nil {
			pos.MinW, pos.MinH = an.GridPos.MinW, an.GridPos.MinH
			if an.GridPos.Equal(pos) {
				continue
			}
		}
		an.GridPos = &pos
		changed = true
	}
	return changed
}

// PinWithNoPosition docks uid with the default window span in the first
// free cell of the left column, creating the annotation when it does not
// exist yet. It is the way in for anchors that never got a floating
// position to pin from.
func (s *Store) PinWithNoPosition(uid string) {
	var dock gridlayout.Layout
	for _, an := range s.settings {
		if an.UID != uid && an.IsPinnedWindow() {
			dock = append(dock, an.GridPos.Item(an.UID))
		}
	}
	it := &gridlayout.Item{ID: uid, W: gridlayout.DefaultWindowSpan, H: gridlayout.DefaultWindowSpan}
	gridlayout.FirstAvailable(dock, it)
	pos := GridPosFromItem(it)

	if i := s.index(uid); i >= 0 {
		s.settings[i].Display = DisplayWindow
		s.settings[i].GridPos = &pos
		if s.settings[i].Title == "" {
			s.settings[i].Title = uid
		}
		return
	}
	s.settings = append(s.settings, Settings{UID: uid, Display: DisplayWindow, Title: uid, GridPos: &pos})
}

func (s *Store) index(uid string) int {
	for i, an := range s.settings {
		if an.UID == uid {
			return i
		}
	}
	return -1
}
