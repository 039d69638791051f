package squad_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"teamforge/squad"
	teamFormation "teamforge/squad/team-formation"
)

// os caminhos que dependem de Postgres não são cobertos aqui; estes
// testes exercem só a validação que roda antes de qualquer transação

func draftTeam(name string, studentIds ...int64) *teamFormation.Team {
	team := &teamFormation.Team{
		Id:     name,
		Name:   name,
		Status: teamFormation.TeamStatusDraft,
	}
	for _, id := range studentIds {
		team.Members = append(team.Members, teamFormation.TeamMember{
			StudentId: id,
			Skills:    teamFormation.SkillVector{Teamwork: float64(id)},
		})
	}
	return team
}

func TestCommitTeamsRejectsEmptyPartition(t *testing.T) {
	service := squad.NewService(nil)

	_, err := service.CommitTeams(context.Background(), 1, 1, nil)
	require.ErrorIs(t, err, squad.ErrNothingToCommit)
}

func TestCommitTeamsRejectsUndersizedTeam(t *testing.T) {
	service := squad.NewService(nil)

	_, err := service.CommitTeams(context.Background(), 1, 1, []*teamFormation.Team{
		draftTeam("Team 1", 10),
	})
	require.ErrorIs(t, err, teamFormation.ErrInvalidTeamSize)
}

func TestCommitTeamsRejectsDuplicateStudents(t *testing.T) {
	service := squad.NewService(nil)

	_, err := service.CommitTeams(context.Background(), 1, 1, []*teamFormation.Team{
		draftTeam("Team 1", 10, 11, 12),
		draftTeam("Team 2", 13, 10, 14),
	})
	require.ErrorIs(t, err, squad.ErrDuplicateMember)
}
