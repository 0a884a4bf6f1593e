package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources_CountAndUniqueTags(t *testing.T) {
	rs := Resources()
	require.Len(t, rs, 20)

	seen := make(map[string]bool)
	for _, r := range rs {
		assert.NotEmpty(t, r.Tag)
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Body)
		assert.False(t, seen[r.Tag], "duplicate resource tag %q", r.Tag)
		seen[r.Tag] = true
	}
}

func TestResourceByIndex_MatchesDeclarationOrder(t *testing.T) {
	rs := Resources()
	for i, want := range rs {
		got, ok := ResourceByIndex(i + 1)
		require.True(t, ok)
		assert.Equal(t, want.Tag, got.Tag)
	}

	_, ok := ResourceByIndex(0)
	assert.False(t, ok)
	_, ok = ResourceByIndex(len(rs) + 1)
	assert.False(t, ok)
}

func TestChallenges_CoverThirtyDays(t *testing.T) {
	cs := Challenges()
	require.Len(t, cs, ChallengeDays)

	for i, c := range cs {
		assert.Equal(t, i+1, c.Day)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Task)
		assert.NotEmpty(t, c.Category)
	}

	_, ok := ChallengeForDay(0)
	assert.False(t, ok)
	_, ok = ChallengeForDay(31)
	assert.False(t, ok)

	day7, ok := ChallengeForDay(7)
	require.True(t, ok)
	assert.Equal(t, 7, day7.Day)
}

func TestScenarios_UniqueTagsWithKeywords(t *testing.T) {
	ss := Scenarios()
	require.Len(t, ss, 10)

	seen := make(map[ScenarioTag]bool)
	for _, s := range ss {
		assert.NotEmpty(t, s.Keywords, "scenario %q has no keywords", s.Tag)
		assert.NotEmpty(t, s.Guidance, "scenario %q has no guidance", s.Tag)
		assert.False(t, seen[s.Tag], "duplicate scenario tag %q", s.Tag)
		seen[s.Tag] = true
	}
}

func TestCopingStrategies_FallsBackToGeneral(t *testing.T) {
	name, strategies := CopingStrategies("jealousy")
	assert.Equal(t, "general", name)
	assert.NotEmpty(t, strategies)

	name, strategies = CopingStrategies("anxiety")
	assert.Equal(t, "anxiety", name)
	assert.NotEmpty(t, strategies)
}

func TestStaticTables_Populated(t *testing.T) {
	assert.Len(t, Affirmations, 20)
	assert.Len(t, JournalPrompts, 10)
	assert.Len(t, BreathingExercises(), 3)
	assert.Len(t, Meditations(), 3)
	assert.NotEmpty(t, SelfHarmKeywords)
	assert.Contains(t, CrisisResources, "988")
}
