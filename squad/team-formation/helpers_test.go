package teamFormation_test

import (
	teamFormation "teamforge/squad/team-formation"
)

// uniformStudent cria um estudante com a mesma nota nas seis dimensões.
func uniformStudent(id int64, score float64) teamFormation.StudentWithSkills {
	return teamFormation.StudentWithSkills{
		Id:   id,
		Name: "student",
		Skills: teamFormation.SkillVector{
			Leadership:         score,
			AnalyticalThinking: score,
			Creativity:         score,
			ExecutionStrength:  score,
			Communication:      score,
			Teamwork:           score,
		},
	}
}

func vecStudent(id int64, skills teamFormation.SkillVector) teamFormation.StudentWithSkills {
	return teamFormation.StudentWithSkills{Id: id, Name: "student", Skills: skills}
}

// collectIds devolve todos os ids do resultado, times e não alocados.
func collectIds(result *teamFormation.StrategyResult) []int64 {
	var ids []int64
	for _, team := range result.Teams {
		for _, member := range team.Members {
			ids = append(ids, member.StudentId)
		}
	}
	for _, student := range result.Unassigned {
		ids = append(ids, student.Id)
	}
	return ids
}

// memberIdsByTeam devolve a atribuição como matriz de ids, na ordem
// dos times, pra comparar execuções entre si.
func memberIdsByTeam(result *teamFormation.StrategyResult) [][]int64 {
	teams := make([][]int64, 0, len(result.Teams))
	for _, team := range result.Teams {
		ids := make([]int64, 0, len(team.Members))
		for _, member := range team.Members {
			ids = append(ids, member.StudentId)
		}
		teams = append(teams, ids)
	}
	return teams
}
