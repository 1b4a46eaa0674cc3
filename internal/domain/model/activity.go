// Package model contains domain models passed between layers.
package model

// Activity represents a named extracurricular offering with a capacity
// and a roster of signed-up participants.
type Activity struct {
	Name            string // unique key, case-sensitive, may contain spaces
	Description     string
	Schedule        string
	MaxParticipants int
	Roster          Roster
}

// AtCapacity reports whether the roster has reached MaxParticipants.
// A non-positive capacity means unlimited.
func (a *Activity) AtCapacity() bool {
	return a.MaxParticipants > 0 && a.Roster.Len() >= a.MaxParticipants
}
