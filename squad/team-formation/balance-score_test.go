package teamFormation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	teamFormation "teamforge/squad/team-formation"
)

func TestCalculateBalanceScoreIdenticalMembers(t *testing.T) {
	members := []teamFormation.SkillVector{
		{Leadership: 70, AnalyticalThinking: 70, Creativity: 70, ExecutionStrength: 70, Communication: 70, Teamwork: 70},
		{Leadership: 70, AnalyticalThinking: 70, Creativity: 70, ExecutionStrength: 70, Communication: 70, Teamwork: 70},
		{Leadership: 70, AnalyticalThinking: 70, Creativity: 70, ExecutionStrength: 70, Communication: 70, Teamwork: 70},
	}

	score, err := teamFormation.CalculateBalanceScore(members)
	require.NoError(t, err)
	require.InDelta(t, 100, score, 1e-9, "zero dispersion should score 100")
}

func TestCalculateBalanceScoreMaximalDispersion(t *testing.T) {
	members := []teamFormation.SkillVector{
		{},
		{Leadership: 100, AnalyticalThinking: 100, Creativity: 100, ExecutionStrength: 100, Communication: 100, Teamwork: 100},
	}

	score, err := teamFormation.CalculateBalanceScore(members)
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9, "maximal dispersion on every dimension should score 0")
}

func TestCalculateBalanceScoreBoundsAndDeterminism(t *testing.T) {
	cases := [][]teamFormation.SkillVector{
		{{Leadership: 10}, {Teamwork: 90}},
		{{Leadership: 55, Teamwork: 20}, {Leadership: 45, Teamwork: 25}, {Leadership: 50, Teamwork: 30}},
		{{Creativity: 100}, {Creativity: 100}, {Creativity: 99}},
	}

	for _, members := range cases {
		first, err := teamFormation.CalculateBalanceScore(members)
		require.NoError(t, err)
		require.GreaterOrEqual(t, first, 0.0)
		require.LessOrEqual(t, first, 100.0)

		second, err := teamFormation.CalculateBalanceScore(members)
		require.NoError(t, err)
		require.Equal(t, first, second, "same member set must always score the same")
	}
}

func TestCalculateBalanceScoreMonotonicity(t *testing.T) {
	flat := teamFormation.SkillVector{Leadership: 60, AnalyticalThinking: 60, Creativity: 60, ExecutionStrength: 60, Communication: 60, Teamwork: 60}
	divergent := teamFormation.SkillVector{Leadership: 100, AnalyticalThinking: 0, Creativity: 100, ExecutionStrength: 0, Communication: 100, Teamwork: 0}

	uniformScore, err := teamFormation.CalculateBalanceScore([]teamFormation.SkillVector{flat, flat, flat})
	require.NoError(t, err)

	swappedScore, err := teamFormation.CalculateBalanceScore([]teamFormation.SkillVector{flat, flat, divergent})
	require.NoError(t, err)

	require.Greater(t, uniformScore, swappedScore, "swapping in a maximally divergent member must lower the score")
}

func TestCalculateBalanceScoreTooFewMembers(t *testing.T) {
	_, err := teamFormation.CalculateBalanceScore(nil)
	require.ErrorIs(t, err, teamFormation.ErrNotEnoughMembers)

	_, err = teamFormation.CalculateBalanceScore([]teamFormation.SkillVector{{Leadership: 50}})
	require.ErrorIs(t, err, teamFormation.ErrNotEnoughMembers, "single member has no measurable spread")
}
