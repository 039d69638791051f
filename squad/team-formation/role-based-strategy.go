package teamFormation

import (
	"fmt"

	otherUtils "teamforge/utils/other"
)

// RoleBasedStrategy aloca papéis explícitos ao invés de equilíbrio
// emergente: um leader, um coordinator e um specialist por time, e o
// resto como contributor. Cada fase atende todos os times antes da
// próxima começar (leaders em todos, depois coordinators em todos...),
// então nenhum time fica sem papel porque outro levou os melhores
// candidatos primeiro.
type RoleBasedStrategy struct{}

func (s *RoleBasedStrategy) Type() StrategyType {
	return StrategyTypeRoleBased
}

func (s *RoleBasedStrategy) GenerateTeams(students []StudentWithSkills, teamSize int) (*StrategyResult, error) {
	rationale := "Role-based assignment: each team is given exactly one leader (top leadership), one coordinator (top communication) and one specialist (top analytical thinking or creativity), assigned round-robin across all teams per role; remaining seats go to contributors in descending overall order."

	numTeams := len(students) / teamSize
	if numTeams == 0 {
		return emptyResult(students, rationale), nil
	}

	teams := makeTeams(numTeams)
	remaining := students

	phases := []struct {
		role  string
		score func(StudentWithSkills) float64
	}{
		{RoleLeader, func(s StudentWithSkills) float64 { return s.Skills.Leadership }},
		{RoleCoordinator, func(s StudentWithSkills) float64 { return s.Skills.Communication }},
		{RoleSpecialist, func(s StudentWithSkills) float64 {
			return max(s.Skills.AnalyticalThinking, s.Skills.Creativity)
		}},
	}

	for _, phase := range phases {
		for _, team := range teams {
			if len(team.Members) >= teamSize {
				continue
			}

			student, rest, ok := takeBest(remaining, phase.score)
			if !ok {
				break
			}

			remaining = rest
			team.Members = append(team.Members, newTeamMember(student, phase.role))
		}
	}

	unassigned := dealRoundRobin(rankByOverall(remaining), teams, teamSize, RoleContributor)

	for _, team := range teams {
		var leaderName, coordinatorName string
		var contributors int
		for _, member := range team.Members {
			switch member.Role {
			case RoleLeader:
				leaderName = member.Name
			case RoleCoordinator:
				coordinatorName = member.Name
			case RoleContributor:
				contributors++
			}
		}

		team.Rationale = fmt.Sprintf(
			"Led by %s with %s coordinating, completed by %d contributor%s picked by overall strength.",
			leaderName, coordinatorName,
			contributors, otherUtils.IIf(contributors == 1, "", "s"),
		)
	}

	return finishResult(teams, unassigned, s.Type(), rationale)
}
