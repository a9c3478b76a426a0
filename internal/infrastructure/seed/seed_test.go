package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivities(t *testing.T) {
	activities := Activities()
	require.Len(t, activities, 9)

	names := make(map[string]bool, len(activities))
	for _, a := range activities {
		assert.False(t, names[a.Name], "duplicate activity %q", a.Name)
		names[a.Name] = true

		assert.NotEmpty(t, a.Description, "%s description", a.Name)
		assert.NotEmpty(t, a.Schedule, "%s schedule", a.Name)
		assert.Positive(t, a.MaxParticipants, "%s max participants", a.Name)
		assert.NotNil(t, a.Participants, "%s participants", a.Name)
	}
	assert.True(t, names["Chess Club"])
}

func TestActivities_ReturnsFreshCopies(t *testing.T) {
	first := Activities()
	first[0].Participants[0] = "clobbered@mergington.edu"

	second := Activities()
	assert.Equal(t, "michael@mergington.edu", second[0].Participants[0])
}
