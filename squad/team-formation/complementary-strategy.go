package teamFormation

import (
	"fmt"
	"strings"
)

// ComplementaryStrategy monta times de especialistas: cada dimensão de
// habilidade ganha, por time, o melhor estudante ainda disponível nela.
// A semeadura percorre dimensão por dimensão e, dentro de cada uma,
// todos os times em sequência, então nenhum time fica sem especialista
// de uma dimensão só porque outro time levou todos os melhores.
// Vagas que sobram são preenchidas por snake draft, como na
// BalancedStrategy, pra não deixar buraco.
type ComplementaryStrategy struct{}

func (s *ComplementaryStrategy) Type() StrategyType {
	return StrategyTypeComplementary
}

func (s *ComplementaryStrategy) GenerateTeams(students []StudentWithSkills, teamSize int) (*StrategyResult, error) {
	rationale := "Complementary skills: every team is seeded with a distinct specialist per skill dimension (the best still-unassigned student in that dimension), cycling dimensions across all teams before moving on; leftover seats are filled by snake draft. Coverage of all six dimensions is preferred over internal balance."

	numTeams := len(students) / teamSize
	if numTeams == 0 {
		return emptyResult(students, rationale), nil
	}

	teams := makeTeams(numTeams)
	remaining := students

	for d := 0; d < NumDimensions; d++ {
		for _, team := range teams {
			if len(team.Members) >= teamSize {
				continue
			}

			dimension := d
			student, rest, ok := takeBest(remaining, func(s StudentWithSkills) float64 {
				return s.Skills.Values()[dimension]
			})
			if !ok || student.Skills.Values()[dimension] <= 0 {
				// ninguém pontua nessa dimensão; pula ela inteira
				break
			}

			remaining = rest
			team.Members = append(team.Members, newTeamMember(student, DimensionNames[dimension]+" specialist"))
		}
	}

	// preenche o que faltou com snake draft sobre o restante
	ranked := rankByOverall(remaining)
	unassigned := dealSnake(ranked, teams, teamSize, RoleGeneralist)

	for _, team := range teams {
		var specialists []string
		for _, member := range team.Members {
			if strings.HasSuffix(member.Role, " specialist") {
				specialists = append(specialists, fmt.Sprintf("%s as the %s", member.Name, member.Role))
			}
		}

		if len(specialists) == 0 {
			team.Rationale = "Filled entirely from the generalist pool; no unassigned specialist remained for this team."
			continue
		}
		team.Rationale = fmt.Sprintf(
			"Covers %d of the %d skill dimensions with dedicated specialists: %s.",
			len(specialists), NumDimensions, strings.Join(specialists, ", "),
		)
	}

	return finishResult(teams, unassigned, s.Type(), rationale)
}
