package teamFormation

import (
	"fmt"
	"slices"

	otherUtils "teamforge/utils/other"
)

// BalancedStrategy distribui os estudantes por snake draft: ordena
// pela média geral e vai entregando 1..N, N..1, 1..N..., de forma que
// nenhum time fique sistematicamente com os melhores ou piores picks.
type BalancedStrategy struct{}

func (s *BalancedStrategy) Type() StrategyType {
	return StrategyTypeBalanced
}

func (s *BalancedStrategy) GenerateTeams(students []StudentWithSkills, teamSize int) (*StrategyResult, error) {
	rationale := "Balanced distribution: students are ranked by their overall skill average and dealt to teams in alternating snake-draft order, so high, medium and low performers spread evenly and no team is systematically stronger than another."

	numTeams := len(students) / teamSize
	if numTeams == 0 {
		return emptyResult(students, rationale), nil
	}

	ranked := rankByOverall(students)
	teams := makeTeams(numTeams)

	// só os numTeams*teamSize melhores entram; o resto fica de fora,
	// nunca é espremido num time incompleto
	dealSnake(ranked[:numTeams*teamSize], teams, teamSize, RoleMember)
	unassigned := slices.Clone(ranked[numTeams*teamSize:])

	for _, team := range teams {
		strongest := team.Members[0]
		weakest := team.Members[0]
		var sum float64
		for _, member := range team.Members {
			sum += member.Skills.Overall()
			if member.Skills.Overall() > strongest.Skills.Overall() {
				strongest = member
			}
			if member.Skills.Overall() < weakest.Skills.Overall() {
				weakest = member
			}
		}

		team.Rationale = fmt.Sprintf(
			"Snake draft dealt this team an average overall of %.1f, pairing %s (%.1f overall) with %s (%.1f overall) so draft position favors no one%s.",
			sum/float64(len(team.Members)),
			strongest.Name, strongest.Skills.Overall(),
			weakest.Name, weakest.Skills.Overall(),
			otherUtils.IIf(len(team.Members) > 2, " across the full roster", ""),
		)
	}

	return finishResult(teams, unassigned, s.Type(), rationale)
}
