package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed municipios.yaml
var defaultMunicipalities []byte

// MunicipalityIndex resolves a municipality name to the state it belongs to.
//
// Names may be qualified with the UF ("Campinas/SP", "Campinas - SP"), in which
// case the UF decides. A name registered in more than one state is ambiguous
// and only resolves when qualified.
type MunicipalityIndex struct {
	mu        sync.RWMutex
	byName    map[string]string
	ambiguous map[string]bool
}

// NewMunicipalityIndex returns an index seeded with the state capitals.
func NewMunicipalityIndex() *MunicipalityIndex {
	idx := &MunicipalityIndex{byName: map[string]string{}, ambiguous: map[string]bool{}}
	if err := idx.LoadYAML(defaultMunicipalities); err != nil {
		panic(fmt.Sprintf("catalog: embedded municipalities: %v", err))
	}
	return idx
}

// LoadMunicipalityIndex seeds an index and extends it with the YAML file at
// path (UF -> list of names). An empty path only loads the defaults.
func LoadMunicipalityIndex(path string) (*MunicipalityIndex, error) {
	idx := NewMunicipalityIndex()
	if strings.TrimSpace(path) == "" {
		return idx, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read municipalities file: %w", err)
	}
	if err := idx.LoadYAML(raw); err != nil {
		return nil, fmt.Errorf("parse municipalities file %s: %w", path, err)
	}
	return idx, nil
}

func (m *MunicipalityIndex) LoadYAML(raw []byte) error {
	var byUF map[string][]string
	if err := yaml.Unmarshal(raw, &byUF); err != nil {
		return err
	}
	for uf, names := range byUF {
		st, ok := StateByUF(uf)
		if !ok {
			return fmt.Errorf("unknown UF %q", uf)
		}
		for _, n := range names {
			m.Add(n, st.Nome)
		}
	}
	return nil
}

// Add registers name as a municipality of state.
func (m *MunicipalityIndex) Add(name, state string) {
	key := Slugify(name)
	if key == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ambiguous[key] {
		return
	}
	if prev, ok := m.byName[key]; ok && !SameState(prev, state) {
		delete(m.byName, key)
		m.ambiguous[key] = true
		return
	}
	m.byName[key] = state
}

// StateOf returns the state name municipio belongs to.
func (m *MunicipalityIndex) StateOf(municipio string) (string, bool) {
	if name, uf, ok := splitQualified(municipio); ok {
		if st, found := StateByUF(uf); found {
			return st.Nome, true
		}
		municipio = name
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.byName[Slugify(municipio)]
	return st, ok
}

func splitQualified(s string) (name, uf string, ok bool) {
	for _, sep := range []string{"/", " - "} {
		i := strings.LastIndex(s, sep)
		if i <= 0 {
			continue
		}
		tail := strings.TrimSpace(s[i+len(sep):])
		if len(tail) == 2 {
			return strings.TrimSpace(s[:i]), tail, true
		}
	}
	return "", "", false
}
