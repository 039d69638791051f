package teamFormation

import (
	"errors"
	"time"
)

var (
	ErrNotEnoughMembers   = errors.New("balance score needs at least 2 members")
	ErrInvalidTeamSize    = errors.New("team size is outside the configured bounds")
	ErrNoEligibleStudents = errors.New("no eligible students to partition")
)

const (
	// MaxSkillScore é o teto de qualquer dimensão de habilidade.
	// Também é o maior spread possível dentro de um time (0 vs 100).
	MaxSkillScore = 100.0

	NumDimensions = 6
)

// DimensionNames segue sempre esta ordem; os índices são usados
// tanto pelo scorer quanto pela estratégia de especialistas.
var DimensionNames = [NumDimensions]string{
	"leadership",
	"analyticalThinking",
	"creativity",
	"executionStrength",
	"communication",
	"teamwork",
}

// SkillVector é o vetor fixo de seis dimensões de um estudante.
// Campos nunca são nulos; ausência de avaliação vira 0 no extractor.
type SkillVector struct {
	Leadership         float64
	AnalyticalThinking float64
	Creativity         float64
	ExecutionStrength  float64
	Communication      float64
	Teamwork           float64
}

// Values retorna as dimensões na ordem de DimensionNames.
func (v SkillVector) Values() [NumDimensions]float64 {
	return [NumDimensions]float64{
		v.Leadership,
		v.AnalyticalThinking,
		v.Creativity,
		v.ExecutionStrength,
		v.Communication,
		v.Teamwork,
	}
}

// Overall é a média simples das seis dimensões.
func (v SkillVector) Overall() float64 {
	var sum float64
	for _, value := range v.Values() {
		sum += value
	}
	return sum / NumDimensions
}

// StrongestDimension retorna o índice da maior dimensão.
// Empate resolve pela primeira na ordem de DimensionNames.
func (v SkillVector) StrongestDimension() int {
	values := v.Values()
	strongest := 0
	for d := 1; d < NumDimensions; d++ {
		if values[d] > values[strongest] {
			strongest = d
		}
	}
	return strongest
}

type StudentWithSkills struct {
	Id      int64
	Name    string
	Email   string
	Skills  SkillVector
	HasTeam bool
}

const (
	RoleLeader      = "leader"
	RoleCoordinator = "coordinator"
	RoleSpecialist  = "specialist"
	RoleContributor = "contributor"
	RoleMember      = "member"
	RoleGeneralist  = "generalist"
)

type TeamMember struct {
	StudentId int64
	Name      string
	Email     string
	Role      string
	// snapshot das habilidades no momento da formação
	Skills   SkillVector
	JoinedAt time.Time
}

type TeamStatus string

const (
	TeamStatusDraft     TeamStatus = "draft"
	TeamStatusCommitted TeamStatus = "committed"
)

type Team struct {
	// Id é um uuid temporário; o id definitivo vem do banco no commit
	Id              string
	Name            string
	Members         []TeamMember
	BalanceScore    float64
	FormationMethod StrategyType
	Rationale       string
	Status          TeamStatus
}

// HasMember reporta se o estudante já está no time.
func (t *Team) HasMember(studentId int64) bool {
	for _, member := range t.Members {
		if member.StudentId == studentId {
			return true
		}
	}
	return false
}

type StrategyResult struct {
	Teams               []*Team
	Unassigned          []StudentWithSkills
	AverageBalanceScore float64
	Rationale           string
}

type StrategyType int32

const (
	StrategyTypeBalanced StrategyType = iota
	StrategyTypeComplementary
	StrategyTypeRoleBased
)

func (t StrategyType) String() string {
	switch t {
	case StrategyTypeBalanced:
		return "balanced"
	case StrategyTypeComplementary:
		return "complementary"
	case StrategyTypeRoleBased:
		return "roleBased"
	default:
		return "unknown"
	}
}

type Strategy interface {
	// Type identifica a estratégia nos resultados da comparação.
	Type() StrategyType

	// GenerateTeams particiona os estudantes em times completos de
	// exatamente teamSize membros, deixando o resto em Unassigned.
	//
	// Espera que a lista já esteja filtrada para estudantes sem time
	// (HasTeam == false). Não modifica o slice de entrada.
	GenerateTeams(students []StudentWithSkills, teamSize int) (*StrategyResult, error)
}

func GetStrategy(strategyType StrategyType) Strategy {
	switch strategyType {
	case StrategyTypeComplementary:
		return &ComplementaryStrategy{}
	case StrategyTypeRoleBased:
		return &RoleBasedStrategy{}
	case StrategyTypeBalanced:
		return &BalancedStrategy{}
	default:
		return &BalancedStrategy{}
	}
}

// AllStrategies retorna uma instância de cada estratégia, na ordem
// em que aparecem na comparação.
func AllStrategies() []Strategy {
	return []Strategy{
		&BalancedStrategy{},
		&ComplementaryStrategy{},
		&RoleBasedStrategy{},
	}
}
