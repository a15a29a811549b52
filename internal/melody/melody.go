// Package melody holds the fixed table of JR East departure melodies that can be
// referenced by id from a project configuration.
package melody

import "strings"

// BaseURL is where every predefined melody is downloaded from.
const BaseURL = "https://yamanot.es/audio/"

// MelodyInfo describes one predefined melody. Values are never mutated.
type MelodyInfo struct {
	ID         string // e.g. "JY-Tokyo"
	Line       string // line code, e.g. "JY"
	LineName   string
	Station    string
	StationJP  string
	MelodyName string
	Filename   string // audio file name relative to BaseURL
}

// URL returns the download location of the melody.
func (m MelodyInfo) URL() string {
	return BaseURL + m.Filename
}

// Line pairs a line code with its display name.
type Line struct {
	Code string
	Name string
}

var lines = []Line{
	{"JY", "Yamanote"},
	{"JK", "Keihin-Tohoku"},
	{"JB", "Sobu"},
	{"JA", "Saikyo"},
	{"JU", "Ueno-Tokyo"},
	{"NEX", "Narita Express"},
}

// Lines returns the supported lines in table order.
func Lines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Melodies returns a copy of the full table in declaration order.
func Melodies() []MelodyInfo {
	out := make([]MelodyInfo, len(table))
	copy(out, table[:])
	return out
}

// Registry indexes the table by id and by lowercased id.
type Registry struct {
	byID map[string]*MelodyInfo
}

// NewRegistry builds the lookup index over the fixed table.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]*MelodyInfo, 2*len(table))}
	for i := range table {
		m := &table[i]
		r.byID[m.ID] = m
		r.byID[strings.ToLower(m.ID)] = m
	}
	return r
}

// Lookup finds a melody by id. An exact match wins, otherwise the lowercased id is tried.
func (r *Registry) Lookup(id string) (MelodyInfo, bool) {
	if m, ok := r.byID[id]; ok {
		return *m, true
	}
	if m, ok := r.byID[strings.ToLower(id)]; ok {
		return *m, true
	}
	return MelodyInfo{}, false
}

// All returns every melody in table order.
func (r *Registry) All() []MelodyInfo {
	return Melodies()
}
