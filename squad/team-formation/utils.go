package teamFormation

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// rankByOverall retorna uma cópia ordenada por Overall decrescente.
// Empate resolve pelo id crescente, pra manter o resultado reproduzível.
func rankByOverall(students []StudentWithSkills) []StudentWithSkills {
	ranked := slices.Clone(students)
	slices.SortStableFunc(ranked, func(a, b StudentWithSkills) int {
		if a.Skills.Overall() != b.Skills.Overall() {
			if a.Skills.Overall() > b.Skills.Overall() {
				return -1
			}
			return 1
		}
		switch {
		case a.Id < b.Id:
			return -1
		case a.Id > b.Id:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// takeBest remove e retorna o estudante com maior valor segundo score.
// Empate resolve pelo menor id. ok == false quando a lista está vazia.
func takeBest(students []StudentWithSkills, score func(StudentWithSkills) float64) (StudentWithSkills, []StudentWithSkills, bool) {
	if len(students) == 0 {
		return StudentWithSkills{}, students, false
	}

	best := 0
	for i := 1; i < len(students); i++ {
		if score(students[i]) > score(students[best]) {
			best = i
			continue
		}
		if score(students[i]) == score(students[best]) && students[i].Id < students[best].Id {
			best = i
		}
	}

	student := students[best]
	return student, slices.Delete(slices.Clone(students), best, best+1), true
}

func makeTeams(numTeams int) []*Team {
	teams := make([]*Team, numTeams)
	for i := range teams {
		teams[i] = &Team{
			Id:     uuid.NewString(),
			Name:   fmt.Sprintf("Team %d", i+1),
			Status: TeamStatusDraft,
		}
	}
	return teams
}

func newTeamMember(student StudentWithSkills, role string) TeamMember {
	// JoinedAt fica zerado no rascunho; o commit carimba a hora real
	return TeamMember{
		StudentId: student.Id,
		Name:      student.Name,
		Email:     student.Email,
		Role:      role,
		Skills:    student.Skills,
	}
}

// dealSnake distribui os estudantes (já ordenados) nas vagas abertas
// dos times em ordem serpenteada: 1..N, N..1, 1..N, ...
// Times cheios são pulados. Retorna os estudantes que sobraram.
func dealSnake(ranked []StudentWithSkills, teams []*Team, teamSize int, role string) []StudentWithSkills {
	next := 0
	for pass := 0; next < len(ranked); pass++ {
		assignedInPass := false
		for i := range teams {
			if next >= len(ranked) {
				break
			}

			team := teams[i]
			if pass%2 == 1 {
				// passada de volta
				team = teams[len(teams)-1-i]
			}

			if len(team.Members) >= teamSize {
				continue
			}

			team.Members = append(team.Members, newTeamMember(ranked[next], role))
			next++
			assignedInPass = true
		}
		if !assignedInPass {
			// todos os times cheios
			break
		}
	}
	return ranked[next:]
}

// dealRoundRobin é a variação sem serpente, usada pra preencher os
// contributors na estratégia por papéis.
func dealRoundRobin(ranked []StudentWithSkills, teams []*Team, teamSize int, role string) []StudentWithSkills {
	next := 0
	for next < len(ranked) {
		assignedInPass := false
		for _, team := range teams {
			if next >= len(ranked) {
				break
			}
			if len(team.Members) >= teamSize {
				continue
			}

			team.Members = append(team.Members, newTeamMember(ranked[next], role))
			next++
			assignedInPass = true
		}
		if !assignedInPass {
			break
		}
	}
	return ranked[next:]
}

// finishResult calcula o balance score de cada time e a média geral.
// Score em time com menos de 2 membros indica estratégia quebrada,
// então o erro sobe sem tratamento.
func finishResult(teams []*Team, unassigned []StudentWithSkills, strategyType StrategyType, rationale string) (*StrategyResult, error) {
	var totalScore float64
	for _, team := range teams {
		vectors := make([]SkillVector, 0, len(team.Members))
		for _, member := range team.Members {
			vectors = append(vectors, member.Skills)
		}

		score, err := CalculateBalanceScore(vectors)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", team.Name, err)
		}

		team.BalanceScore = score
		team.FormationMethod = strategyType
		totalScore += score
	}

	result := &StrategyResult{
		Teams:      teams,
		Unassigned: unassigned,
		Rationale:  rationale,
	}
	if len(teams) > 0 {
		result.AverageBalanceScore = totalScore / float64(len(teams))
	}
	return result, nil
}

// emptyResult é o caso válido de "menos estudantes que o tamanho do
// time": nenhum time formado, todo mundo sem alocação.
func emptyResult(students []StudentWithSkills, rationale string) *StrategyResult {
	return &StrategyResult{
		Unassigned: slices.Clone(students),
		Rationale:  rationale,
	}
}
