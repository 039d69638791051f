package squad

import (
	"math"

	"teamforge/models"
	teamFormation "teamforge/squad/team-formation"
)

// BuildStudentWithSkills projeta a matrícula crua do banco no vetor
// fixo de seis dimensões usado pelas estratégias.
//
// Retorna nil quando não há perfil utilizável (matrícula inexistente,
// usuário deletado ou que não é estudante). Quem nunca fez avaliação
// NÃO é descartado: sai com vetor zerado, que é nota baixa válida.
//
// Não filtra por HasTeam; isso é decisão de quem consome, já que a
// mesma projeção serve pra listar quem pode ser alocado e quem já tem
// time.
func BuildStudentWithSkills(profile *models.SkillProfile, teamMemberships int64) *teamFormation.StudentWithSkills {
	if profile == nil || profile.Student == nil {
		return nil
	}
	if profile.Student.Type != models.UserTypeStudent {
		return nil
	}

	return &teamFormation.StudentWithSkills{
		Id:    profile.StudentId,
		Name:  profile.Student.Name,
		Email: profile.Student.Email,
		Skills: teamFormation.SkillVector{
			Leadership:         sanitizeScore(profile.Leadership),
			AnalyticalThinking: sanitizeScore(profile.AnalyticalThinking),
			Creativity:         sanitizeScore(profile.Creativity),
			ExecutionStrength:  sanitizeScore(profile.ExecutionStrength),
			Communication:      sanitizeScore(profile.Communication),
			Teamwork:           sanitizeScore(profile.Teamwork),
		},
		HasTeam: teamMemberships > 0,
	}
}

// sanitizeScore garante o invariante [0, 100]: valor não numérico vira
// 0 e nada fora da faixa passa adiante pro scorer.
func sanitizeScore(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value > teamFormation.MaxSkillScore {
		return teamFormation.MaxSkillScore
	}
	return value
}
