// Package seed holds the fixed set of activities the registry starts with.
package seed

import "mergington/internal/domain/entities"

// Activities returns a fresh copy of the seed roster on every call so
// callers can mutate the result without affecting each other.
func Activities() []entities.Activity {
	return []entities.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Competitive soccer team practicing tactics and fitness",
			Schedule:        "Mondays, Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu", "maria@mergington.edu"},
		},
		{
			Name:            "Track and Field",
			Description:     "Running, jumping, and throwing events training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"liam@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting workshops and productions for stage performance",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Practice public speaking and competitive debating skills",
			Schedule:        "Tuesdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Problem solving, math competitions, and enrichment",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"sophia@mergington.edu", "oliver@mergington.edu"},
		},
	}
}
