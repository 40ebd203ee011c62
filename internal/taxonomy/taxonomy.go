// Package taxonomy provides the static skill taxonomy: a directed graph
// mapping canonical skill names to a category and to adjacent skills
// that represent natural growth paths.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

type entry struct {
	category schema.SkillCategory
	adjacent []string
}

// Taxonomy is an immutable skill graph with a case-insensitive index.
// It is built once and safe for concurrent reads.
type Taxonomy struct {
	entries   map[string]entry
	canonical map[string]string
}

// New builds a Taxonomy from the built-in skill data.
func New() *Taxonomy {
	return build(builtin)
}

// FromEntries builds a Taxonomy from caller-supplied data. Used by tests
// that need a small, controlled graph.
func FromEntries(data map[string]Entry) *Taxonomy {
	return build(data)
}

// Entry is the public shape of a single taxonomy record.
type Entry struct {
	Category schema.SkillCategory
	Adjacent []string
}

func build(data map[string]Entry) *Taxonomy {
	t := &Taxonomy{
		entries:   make(map[string]entry, len(data)),
		canonical: make(map[string]string, len(data)),
	}
	for name, e := range data {
		adj := make([]string, len(e.Adjacent))
		copy(adj, e.Adjacent)
		t.entries[name] = entry{category: e.Category, adjacent: adj}
		t.canonical[fold(name)] = name
	}
	return t
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Canonicalize returns the canonical taxonomy spelling for name, or the
// input unchanged when the skill is not catalogued.
func (t *Taxonomy) Canonicalize(name string) string {
	if canon, ok := t.canonical[fold(name)]; ok {
		return canon
	}
	return name
}

// Known reports whether name resolves to a taxonomy entry.
func (t *Taxonomy) Known(name string) bool {
	_, ok := t.canonical[fold(name)]
	return ok
}

// Category returns the category for a known skill. The second return is
// false for skills outside the taxonomy.
func (t *Taxonomy) Category(name string) (schema.SkillCategory, bool) {
	canon, ok := t.canonical[fold(name)]
	if !ok {
		return "", false
	}
	return t.entries[canon].category, true
}

// Adjacent returns the ordered adjacency list for name, or an empty
// slice for unknown skills. The returned slice is a copy.
func (t *Taxonomy) Adjacent(name string) []string {
	canon, ok := t.canonical[fold(name)]
	if !ok {
		return nil
	}
	adj := t.entries[canon].adjacent
	out := make([]string, len(adj))
	copy(out, adj)
	return out
}

// Skill builds a schema.Skill for name, defaulting the category to
// concept for uncatalogued skills.
func (t *Taxonomy) Skill(name string) schema.Skill {
	cat, ok := t.Category(name)
	if !ok {
		cat = schema.CategoryConcept
	}
	return schema.Skill{Name: name, Category: cat}
}

// Names returns all canonical skill names, sorted.
func (t *Taxonomy) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of catalogued skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}
