package gamedata

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// Loader resolves table file names against a data snapshot directory. Every
// failure mode collapses to an empty table plus a logged diagnostic: source
// tables are optional and versioned independently, so a missing document and
// an empty document must look identical to callers.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads and decodes one record table. It never returns an error.
func (l *Loader) Load(name string) Table {
	data, ok := l.read(name)
	if !ok {
		return Table{}
	}
	var table Table
	if err := sonic.Unmarshal(data, &table); err != nil {
		log.Error().Err(err).Str("table", name).Msg("<Loader> invalid JSON")
		return Table{}
	}
	return table
}

// LoadNames reads an id -> display-name table. Non-numeric keys are dropped.
// Values are either bare strings or objects carrying a "name" field.
func (l *Loader) LoadNames(name string) map[int]string {
	out := make(map[int]string)

	data, ok := l.read(name)
	if !ok {
		return out
	}
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		log.Error().Err(err).Str("table", name).Msg("<Loader> invalid JSON")
		return out
	}

	for key, value := range raw {
		if !digitsOnly(key) {
			continue
		}
		id, ok := numericKey(key)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			out[id] = v
		case map[string]any:
			if s, ok := v["name"].(string); ok {
				out[id] = s
			}
		}
	}
	return out
}

// digitsOnly reports whether key is a bare unsigned decimal number. Name
// tables may carry signed or otherwise decorated keys that are not IDs.
func digitsOnly(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (l *Loader) read(name string) ([]byte, bool) {
	path := filepath.Join(l.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("table", name).Msg("<Loader> table not found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("table", name).Msg("<Loader> read failed")
		return nil, false
	}
	return data, true
}
