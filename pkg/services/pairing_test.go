package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/ent"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/pkg/models"
)

func human(id string, windows ...models.AvailabilityWindow) *ent.Participant {
	return &ent.Participant{
		ID:           id,
		ActorType:    participant.ActorType(models.ActorHuman),
		Availability: windows,
	}
}

func synthetic(id string) *ent.Participant {
	return &ent.Participant{
		ID:        id,
		ActorType: participant.ActorType(models.ActorSynthetic),
	}
}

func pairIDs(pairs [][2]*ent.Participant) [][2]string {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]string{p[0].ID, p[1].ID})
	}
	return out
}

func TestAvailabilityOverlap(t *testing.T) {
	monMorning := models.AvailabilityWindow{DayOfWeek: 1, StartHour: 9, EndHour: 12}
	monLate := models.AvailabilityWindow{DayOfWeek: 1, StartHour: 11, EndHour: 15}
	tueMorning := models.AvailabilityWindow{DayOfWeek: 2, StartHour: 9, EndHour: 12}

	assert.Equal(t, 1, availabilityOverlap(
		[]models.AvailabilityWindow{monMorning},
		[]models.AvailabilityWindow{monLate},
	))
	assert.Equal(t, 0, availabilityOverlap(
		[]models.AvailabilityWindow{monMorning},
		[]models.AvailabilityWindow{tueMorning},
	))
	assert.Equal(t, 3, availabilityOverlap(
		[]models.AvailabilityWindow{monMorning, tueMorning},
		[]models.AvailabilityWindow{monMorning},
	))
	assert.Equal(t, 0, availabilityOverlap(nil, []models.AvailabilityWindow{monMorning}))
}

func TestMatchSequential(t *testing.T) {
	rows := []*ent.Participant{synthetic("s1"), synthetic("s2"), synthetic("s3"), synthetic("s4"), synthetic("s5")}
	pairs := matchSequential(rows)

	assert.Equal(t, [][2]string{{"s1", "s2"}, {"s3", "s4"}}, pairIDs(pairs))

	assert.Empty(t, matchSequential([]*ent.Participant{synthetic("only")}))
	assert.Empty(t, matchSequential(nil))
}

func TestMatchZip(t *testing.T) {
	humans := []*ent.Participant{human("h1"), human("h2"), human("h3")}
	synthetics := []*ent.Participant{synthetic("s1"), synthetic("s2")}

	pairs := matchZip(humans, synthetics)
	assert.Equal(t, [][2]string{{"h1", "s1"}, {"h2", "s2"}}, pairIDs(pairs))

	assert.Empty(t, matchZip(humans, nil))
}

func TestMatchHumans_PrefersHighestOverlap(t *testing.T) {
	mon := func(start, end int) models.AvailabilityWindow {
		return models.AvailabilityWindow{DayOfWeek: 1, StartHour: start, EndHour: end}
	}
	// h1-h3 overlap 6h, h1-h2 overlap 2h, h2-h3 overlap 2h.
	h1 := human("h1", mon(9, 15))
	h2 := human("h2", mon(13, 17))
	h3 := human("h3", mon(9, 15))
	h4 := human("h4", mon(15, 17))

	pairs := matchHumans([]*ent.Participant{h1, h2, h3, h4}, false, 0)
	require.Len(t, pairs, 2)
	assert.Equal(t, [2]string{"h1", "h3"}, [2]string{pairs[0][0].ID, pairs[0][1].ID})
	assert.Equal(t, [2]string{"h2", "h4"}, [2]string{pairs[1][0].ID, pairs[1][1].ID})
}

func TestMatchHumans_TiesByEnrollmentOrder(t *testing.T) {
	// No availability anywhere: all overlaps are 0, so pairing falls back to
	// enrollment order.
	pairs := matchHumans([]*ent.Participant{human("h1"), human("h2"), human("h3"), human("h4")}, false, 0)
	assert.Equal(t, [][2]string{{"h1", "h2"}, {"h3", "h4"}}, pairIDs(pairs))
}

func TestMatchHumans_RequireOverlap(t *testing.T) {
	mon := func(start, end int) models.AvailabilityWindow {
		return models.AvailabilityWindow{DayOfWeek: 1, StartHour: start, EndHour: end}
	}
	h1 := human("h1", mon(9, 12))
	h2 := human("h2", mon(11, 12)) // 1h with h1, below the minimum
	h3 := human("h3", mon(9, 12))  // 3h with h1

	pairs := matchHumans([]*ent.Participant{h1, h2, h3}, true, 2)
	require.Len(t, pairs, 1)
	assert.Equal(t, [2]string{"h1", "h3"}, [2]string{pairs[0][0].ID, pairs[0][1].ID})

	// With no qualifying pair nobody is matched.
	pairs = matchHumans([]*ent.Participant{h1, h2}, true, 2)
	assert.Empty(t, pairs)
}

func TestMatchAuto_Residuals(t *testing.T) {
	mon := models.AvailabilityWindow{DayOfWeek: 1, StartHour: 9, EndHour: 12}
	rows := []*ent.Participant{
		human("h1", mon),
		human("h2", mon),
		human("h3", mon),
		synthetic("s1"),
		synthetic("s2"),
		synthetic("s3"),
	}

	pairs := matchAuto(rows, false, 0)
	require.Len(t, pairs, 3)

	// Human-human first, then the leftover human with a synthetic, then the
	// remaining synthetics with each other.
	assert.Equal(t, [2]string{"h1", "h2"}, [2]string{pairs[0][0].ID, pairs[0][1].ID})
	assert.Equal(t, [2]string{"h3", "s1"}, [2]string{pairs[1][0].ID, pairs[1][1].ID})
	assert.Equal(t, [2]string{"s2", "s3"}, [2]string{pairs[2][0].ID, pairs[2][1].ID})
}

func TestMatchAuto_NoParticipantPairedTwice(t *testing.T) {
	rows := []*ent.Participant{
		human("h1"), human("h2"), human("h3"),
		synthetic("s1"), synthetic("s2"),
	}

	pairs := matchAuto(rows, false, 0)
	seen := make(map[string]bool)
	for _, p := range pairs {
		assert.False(t, seen[p[0].ID], "participant %s paired twice", p[0].ID)
		assert.False(t, seen[p[1].ID], "participant %s paired twice", p[1].ID)
		seen[p[0].ID] = true
		seen[p[1].ID] = true
	}
	assert.Len(t, pairs, 2)
}
