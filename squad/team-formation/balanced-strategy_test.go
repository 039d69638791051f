package teamFormation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	teamFormation "teamforge/squad/team-formation"
)

func TestBalancedPartitionCompleteness(t *testing.T) {
	students := make([]teamFormation.StudentWithSkills, 0, 10)
	for i := int64(1); i <= 10; i++ {
		students = append(students, uniformStudent(i, float64(i*7%100)))
	}

	result, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 4)
	require.NoError(t, err)

	require.Len(t, result.Teams, 2, "10 students at size 4 form exactly 2 complete teams")
	require.Len(t, result.Unassigned, 2, "remainder is never force-fit into an undersized team")
	for _, team := range result.Teams {
		require.Len(t, team.Members, 4)
		require.Equal(t, teamFormation.StrategyTypeBalanced, team.FormationMethod)
		require.Equal(t, teamFormation.TeamStatusDraft, team.Status)
	}

	ids := collectIds(result)
	require.Len(t, ids, len(students), "every student appears exactly once across teams and unassigned")
	seen := map[int64]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "student %d placed twice", id)
		seen[id] = true
	}
}

func TestBalancedHomogeneousPoolScoresHigh(t *testing.T) {
	// 12 estudantes com overall 50 +/- 5
	students := make([]teamFormation.StudentWithSkills, 0, 12)
	for i := 0; i < 12; i++ {
		students = append(students, uniformStudent(int64(i+1), 45+float64(i)*0.9))
	}

	result, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 4)
	require.NoError(t, err)

	require.Len(t, result.Teams, 3)
	for _, team := range result.Teams {
		require.Greater(t, team.BalanceScore, 90.0, "homogeneous pool should produce well-balanced teams")
	}
	require.Greater(t, result.AverageBalanceScore, 90.0)
}

func TestBalancedSnakeDraftFairness(t *testing.T) {
	// overalls distintos: id i tem rank de draft i
	students := make([]teamFormation.StudentWithSkills, 0, 12)
	for i := int64(1); i <= 12; i++ {
		students = append(students, uniformStudent(i, 100-float64(i)))
	}

	result, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 4)
	require.NoError(t, err)
	require.Len(t, result.Teams, 3)

	// soma dos ranks por time; serpente não pode favorecer nenhum
	rankSums := make([]int64, 0, 3)
	for _, team := range result.Teams {
		var sum int64
		for _, member := range team.Members {
			sum += member.StudentId // id == rank nesta massa de teste
		}
		rankSums = append(rankSums, sum)
	}

	minSum, maxSum := rankSums[0], rankSums[0]
	for _, sum := range rankSums[1:] {
		minSum = min(minSum, sum)
		maxSum = max(maxSum, sum)
	}
	require.LessOrEqual(t, maxSum-minSum, int64(3), "no team may draft systematically from the bottom")
}

func TestBalancedPoolSmallerThanTeamSize(t *testing.T) {
	students := []teamFormation.StudentWithSkills{
		uniformStudent(1, 80),
		uniformStudent(2, 60),
	}

	result, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 4)
	require.NoError(t, err, "a pool smaller than the team size is a valid empty result, not an error")
	require.Empty(t, result.Teams)
	require.Len(t, result.Unassigned, 2)
	require.Zero(t, result.AverageBalanceScore)
}

func TestBalancedDeterminism(t *testing.T) {
	students := make([]teamFormation.StudentWithSkills, 0, 9)
	for i := int64(1); i <= 9; i++ {
		students = append(students, uniformStudent(i, float64((i*37)%100)))
	}
	// empates de overall de propósito
	students = append(students, uniformStudent(10, students[0].Skills.Overall()))

	first, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 5)
	require.NoError(t, err)
	second, err := (&teamFormation.BalancedStrategy{}).GenerateTeams(students, 5)
	require.NoError(t, err)

	require.Equal(t, memberIdsByTeam(first), memberIdsByTeam(second))
	require.Equal(t, first.AverageBalanceScore, second.AverageBalanceScore)
}
