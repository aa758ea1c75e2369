package model

import (
	"github.com/addrbook/addrbook-cli/internal/person"
)

// Model is what commands operate on: the full contact collection plus the
// view currently shown to the user.
type Model interface {
	PersonList() []person.Person
	FilteredPersonList() []person.Person
	UpdateFilteredPersonList(p person.Predicate)
}

// Manager keeps contacts in memory. Not safe for concurrent use; commands run
// one at a time.
type Manager struct {
	persons  []person.Person
	filtered []person.Person
}

func New(persons []person.Person) *Manager {
	m := &Manager{persons: append([]person.Person(nil), persons...)}
	m.UpdateFilteredPersonList(person.ShowAll)
	return m
}

func (m *Manager) PersonList() []person.Person {
	if m == nil {
		return nil
	}
	return append([]person.Person(nil), m.persons...)
}

func (m *Manager) FilteredPersonList() []person.Person {
	if m == nil {
		return nil
	}
	return append([]person.Person(nil), m.filtered...)
}

// UpdateFilteredPersonList replaces the filtered view with every person that
// satisfies p. A nil predicate shows everyone; a nil Manager does nothing.
func (m *Manager) UpdateFilteredPersonList(p person.Predicate) {
	if m == nil {
		return
	}
	if p == nil {
		p = person.ShowAll
	}
	out := make([]person.Person, 0, len(m.persons))
	for _, x := range m.persons {
		if p.Test(x) {
			out = append(out, x)
		}
	}
	m.filtered = out
}
