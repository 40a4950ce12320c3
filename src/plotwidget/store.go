package plotwidget

import "github.com/iafilius/fyneplot/src/plot"

// StringPreferences is the subset of fyne.Preferences the store needs; the
// narrow interface keeps it testable without an app instance.
type StringPreferences interface {
	String(key string) string
	SetString(key, value string)
}

// PrefStore persists plot memory through Fyne preferences, so pan/zoom state
// survives application restarts. Records are stored as JSON strings under
// "fyneplot/<id>".
type PrefStore struct {
	prefs StringPreferences
}

// NewPrefStore returns a store backed by the given preferences, typically
// app.Preferences().
func NewPrefStore(prefs StringPreferences) *PrefStore {
	return &PrefStore{prefs: prefs}
}

func prefKey(id string) string { return "fyneplot/" + id }

// Get implements plot.Store. A missing or corrupt record reports ok=false,
// which makes the engine start from the documented first-draw default.
func (s *PrefStore) Get(id string) (plot.Memory, bool) {
	raw := s.prefs.String(prefKey(id))
	if raw == "" {
		return plot.Memory{}, false
	}
	m, err := plot.DecodeMemory([]byte(raw))
	if err != nil {
		return plot.Memory{}, false
	}
	return m, true
}

// Put implements plot.Store. An encode failure drops the update but keeps
// the previous record.
func (s *PrefStore) Put(id string, m plot.Memory) {
	data, err := plot.EncodeMemory(m)
	if err != nil {
		plot.Warnf("pref store: encode %q: %v", id, err)
		return
	}
	s.prefs.SetString(prefKey(id), string(data))
}

var _ plot.Store = (*PrefStore)(nil)
