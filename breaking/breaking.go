/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package breaking compares two token trees and classifies the differences
// as breaking (removals, type changes) or not (additions).
package breaking

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	angelfs "bennypowers.dev/angel/fs"
	"bennypowers.dev/angel/schema"
	"bennypowers.dev/angel/validator"
)

// ErrNoBaseline is returned when the baseline directory does not exist.
var ErrNoBaseline = errors.New("no baseline directory")

// RenameThreshold is the similarity above which a removed and an added
// path of the same type are reported as a probable rename.
const RenameThreshold = 0.7

// Entry is one token in a snapshot.
type Entry struct {
	Path  string
	Type  string
	Value any
}

// Snapshot is the set of tokens in a directory, in first-seen order.
// A path defined by several files keeps the last definition.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

func newSnapshot() *Snapshot {
	return &Snapshot{index: map[string]int{}}
}

func (s *Snapshot) add(e Entry) {
	if i, ok := s.index[e.Path]; ok {
		s.entries[i] = e
		return
	}
	s.index[e.Path] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Entries returns the tokens in order.
func (s *Snapshot) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of tokens.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Lookup returns the token at path.
func (s *Snapshot) Lookup(path string) (Entry, bool) {
	i, ok := s.index[path]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Load reads every token file under dir. Comments and trailing commas are
// tolerated. A file that cannot be read or is not a JSON object fails the
// whole load.
func Load(filesystem angelfs.FileSystem, dir string) (*Snapshot, error) {
	files, err := validator.FindTokenFiles(filesystem, dir)
	if err != nil {
		return nil, err
	}

	snap := newSnapshot()
	for _, path := range files {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		data = jsonc.ToJSON(data)
		if !json.Valid(data) {
			return nil, fmt.Errorf("%s: %w: malformed JSON", path, schema.ErrInvalidDocument)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", path, schema.ErrInvalidDocument, err)
		}
		if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s: %w: root must be an object", path, schema.ErrInvalidDocument)
		}
		extract(doc.Content[0], nil, "", snap)
	}
	return snap, nil
}

func extract(node *yaml.Node, path []string, inherited string, snap *Snapshot) {
	if t := field(node, "$type", "type"); t != nil && t.Kind == yaml.ScalarNode {
		inherited = t.Value
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.MappingNode || strings.HasPrefix(key.Value, "$") {
			continue
		}
		current := append(path[:len(path):len(path)], key.Value)

		v := field(value, "$value", "value")
		if v == nil {
			extract(value, current, inherited, snap)
			continue
		}

		entry := Entry{Path: strings.Join(current, "."), Type: inherited}
		if t := field(value, "$type", "type"); t != nil {
			entry.Type = t.Value
		}
		if err := v.Decode(&entry.Value); err != nil {
			entry.Value = v.Value
		}
		snap.add(entry)
	}
}

func field(node *yaml.Node, keys ...string) *yaml.Node {
	for _, want := range keys {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == want {
				return node.Content[i+1]
			}
		}
	}
	return nil
}

// Removal is a baseline token missing from the current tree.
type Removal struct {
	Entry
	// RenamedTo is the most likely new path, if any.
	RenamedTo string
}

// TypeChange is a token whose type differs between the trees.
type TypeChange struct {
	Path string
	From string
	To   string
}

// Rename pairs a removed path with a similar added path of the same type.
type Rename struct {
	From       string
	To         string
	Similarity float64
}

// Report is the outcome of Compare.
type Report struct {
	Baseline    int
	Current     int
	Removed     []Removal
	TypeChanged []TypeChange
	Added       []Entry
	Renames     []Rename
}

// Breaking reports whether any change requires a major version.
func (r *Report) Breaking() bool {
	return len(r.Removed) > 0 || len(r.TypeChanged) > 0
}

// Changed reports whether the trees differ at all.
func (r *Report) Changed() bool {
	return r.Breaking() || len(r.Added) > 0
}

// Compare diffs two snapshots. Output lists follow snapshot order.
func Compare(baseline, current *Snapshot) *Report {
	report := &Report{Baseline: baseline.Len(), Current: current.Len()}

	for _, e := range current.entries {
		if _, ok := baseline.Lookup(e.Path); !ok {
			report.Added = append(report.Added, e)
		}
	}

	for _, e := range baseline.entries {
		now, ok := current.Lookup(e.Path)
		if !ok {
			removal := Removal{Entry: e}
			for _, added := range report.Added {
				if added.Type != e.Type {
					continue
				}
				sim := Similarity(e.Path, added.Path)
				if sim <= RenameThreshold {
					continue
				}
				report.Renames = append(report.Renames, Rename{From: e.Path, To: added.Path, Similarity: sim})
				if removal.RenamedTo == "" {
					removal.RenamedTo = added.Path
				}
			}
			report.Removed = append(report.Removed, removal)
			continue
		}
		if now.Type != e.Type {
			report.TypeChanged = append(report.TypeChanged, TypeChange{Path: e.Path, From: e.Type, To: now.Type})
		}
	}

	return report
}

// Similarity is 1 minus the edit distance over the longer length.
func Similarity(a, b string) float64 {
	longer := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longer == 0 {
		return 1
	}
	return float64(longer-levenshtein.ComputeDistance(a, b)) / float64(longer)
}

// Check loads both directories and compares them. A missing baseline
// directory is ErrNoBaseline.
func Check(filesystem angelfs.FileSystem, baselineDir, currentDir string) (*Report, error) {
	if !filesystem.Exists(baselineDir) {
		return nil, fmt.Errorf("%w: %s", ErrNoBaseline, baselineDir)
	}

	baseline, err := Load(filesystem, baselineDir)
	if err != nil {
		return nil, fmt.Errorf("loading baseline: %w", err)
	}
	current, err := Load(filesystem, currentDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			current = newSnapshot()
		} else {
			return nil, fmt.Errorf("loading current tokens: %w", err)
		}
	}
	return Compare(baseline, current), nil
}
