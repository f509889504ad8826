package statemachine

import (
	"errors"

	"laundry-api/models"
)

// Transition defines a valid state change and which role can perform it
type Transition[S ~string] struct {
	From  S
	To    S
	Actor models.UserRole
}

// Machine is the authoritative definition of one lifecycle: the full
// transition table plus an O(1) lookup for validation. Handlers and the
// public docs endpoint share the same table so the two cannot drift.
type Machine[S ~string] struct {
	name        string
	transitions []Transition[S]
	lookup      map[Transition[S]]bool
}

func newMachine[S ~string](name string, transitions []Transition[S]) *Machine[S] {
	m := &Machine[S]{
		name:        name,
		transitions: transitions,
		lookup:      make(map[Transition[S]]bool, len(transitions)),
	}
	for _, t := range transitions {
		m.lookup[t] = true
	}
	return m
}

// CanTransition checks if a given role can move from one state to another
func (m *Machine[S]) CanTransition(from, to S, actor models.UserRole) error {
	if m.lookup[Transition[S]{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid " + m.name + " transition: " + string(from) + " → " + string(to) +
			" is not allowed for role '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + m.describeValidFrom(from),
	)
}

// ValidTransitionsFrom returns all legal next states from a given state,
// regardless of actor
func (m *Machine[S]) ValidTransitionsFrom(from S) []S {
	var nexts []S
	seen := map[S]bool{}
	for _, t := range m.transitions {
		if t.From == from && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

func (m *Machine[S]) describeValidFrom(from S) string {
	nexts := m.ValidTransitionsFrom(from)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// Table returns the full transition table for documentation
func (m *Machine[S]) Table() []Transition[S] {
	return m.transitions
}
