package entities

import "slices"

// Activity is an extracurricular offering students can sign up for.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int // advisory capacity; signup does not enforce it
	Participants    []string
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a copy whose roster is independent of the original.
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return c
}
