// Package category owns the set of user-defined task categories.
//
// "All" (in any casing) is a reserved filter-only option: it is offered when
// building filter choices but is never stored, and no operation can create a
// category by that name.
package category

import (
	"sort"
	"strings"
)

// Reserved is the pseudo-category shown first in filter choices.
const Reserved = "All"

// Defaults seed the registry on first run or when the persisted set is lost.
var Defaults = []string{"Personal", "Work", "School"}

// Reassigner moves tasks between categories during rename/delete cascades.
// *task.Store satisfies it.
type Reassigner interface {
	ReplaceCategory(from, to string) int
}

// Registry is the ordered set of category names. Every successful mutation
// is persisted through the save hook; a failed save is swallowed and the
// in-memory set stays authoritative for the session.
type Registry struct {
	names []string
	save  func(names []string) error
}

// New builds a registry from persisted names, dropping blanks, duplicates
// and the reserved name. An empty result falls back to Defaults. The save
// hook may be nil.
func New(names []string, save func(names []string) error) *Registry {
	r := &Registry{save: save}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || isReserved(n) {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		r.names = append(r.names, n)
	}
	if len(r.names) == 0 {
		r.names = append(r.names, Defaults...)
		sort.Strings(r.names)
		r.persist()
		return r
	}
	sort.Strings(r.names)
	return r
}

// TaskCategories returns the persisted names, sorted ascending.
func (r *Registry) TaskCategories() []string {
	return append([]string(nil), r.names...)
}

// AllCategories returns the filter choices: the reserved "All" followed by
// the task categories.
func (r *Registry) AllCategories() []string {
	return append([]string{Reserved}, r.names...)
}

// Has reports whether name is a stored category (the reserved name is not).
func (r *Registry) Has(name string) bool {
	return r.contains(strings.TrimSpace(name))
}

// Add inserts a new category name. Blank names, the reserved name and
// duplicates are rejected without mutating the set.
func (r *Registry) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || isReserved(name) || r.contains(name) {
		return false
	}
	r.names = append(r.names, name)
	sort.Strings(r.names)
	r.persist()
	return true
}

// Rename replaces old with newName, reassigning every task in old first so
// no task is left pointing at a name the registry no longer lists. If old
// is missing from the set, newName is appended instead.
func (r *Registry) Rename(old, newName string, tasks Reassigner) bool {
	old = strings.TrimSpace(old)
	newName = strings.TrimSpace(newName)
	if old == "" || newName == "" || isReserved(newName) {
		return false
	}
	if newName != old && r.contains(newName) {
		return false
	}
	if tasks != nil {
		tasks.ReplaceCategory(old, newName)
	}
	if i := r.index(old); i >= 0 {
		r.names[i] = newName
	} else if !r.contains(newName) {
		r.names = append(r.names, newName)
	}
	sort.Strings(r.names)
	r.persist()
	return true
}

// Delete removes name from the set, moving its tasks to replacement first.
// The caller is responsible for picking a sensible replacement; an empty one
// is applied as-is. A non-empty replacement not yet in the set is added.
func (r *Registry) Delete(name, replacement string, tasks Reassigner) bool {
	name = strings.TrimSpace(name)
	replacement = strings.TrimSpace(replacement)
	if name == "" || isReserved(name) {
		return false
	}
	if tasks != nil {
		tasks.ReplaceCategory(name, replacement)
	}
	if i := r.index(name); i >= 0 {
		r.names = append(r.names[:i], r.names[i+1:]...)
	}
	if replacement != "" && !isReserved(replacement) && !r.contains(replacement) {
		r.names = append(r.names, replacement)
	}
	sort.Strings(r.names)
	r.persist()
	return true
}

func (r *Registry) persist() {
	if r.save == nil {
		return
	}
	// Write failures are non-fatal; the session keeps the in-memory set.
	_ = r.save(r.TaskCategories())
}

func (r *Registry) index(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (r *Registry) contains(name string) bool {
	return r.index(name) >= 0
}

func isReserved(name string) bool {
	return strings.EqualFold(name, Reserved)
}
