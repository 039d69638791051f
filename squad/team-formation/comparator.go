package teamFormation

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Limites padrão pro tamanho de time; podem ser sobrescritos por env
// na camada de serviço.
const (
	DefaultMinTeamSize = 2
	DefaultMaxTeamSize = 8
)

type TeamSizeBounds struct {
	Min int
	Max int
}

func DefaultTeamSizeBounds() TeamSizeBounds {
	return TeamSizeBounds{Min: DefaultMinTeamSize, Max: DefaultMaxTeamSize}
}

// CompareStrategies roda as três estratégias sobre o mesmo snapshot de
// estudantes e devolve os resultados lado a lado.
//
// A validação acontece antes de qualquer estratégia executar: teamSize
// fora dos limites ou pool vazio falham na hora. Cada estratégia recebe
// uma cópia independente da lista, então nenhuma enxerga mutação das
// outras; elas rodam em paralelo e a latência fica limitada pela mais
// lenta. Se uma falhar, a comparação inteira falha; quem escolhe entre
// três opções nunca deve ver menos que três.
func CompareStrategies(ctx context.Context, students []StudentWithSkills, teamSize int, bounds TeamSizeBounds) (map[StrategyType]*StrategyResult, error) {
	if teamSize < bounds.Min || teamSize > bounds.Max {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidTeamSize, teamSize, bounds.Min, bounds.Max)
	}
	if len(students) == 0 {
		return nil, ErrNoEligibleStudents
	}

	results := make(map[StrategyType]*StrategyResult, len(AllStrategies()))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, strategy := range AllStrategies() {
		strategy := strategy
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := strategy.GenerateTeams(slices.Clone(students), teamSize)
			if err != nil {
				return fmt.Errorf("strategy %s: %w", strategy.Type(), err)
			}

			mu.Lock()
			results[strategy.Type()] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FilterEligible devolve só quem ainda não tem time.
func FilterEligible(students []StudentWithSkills) []StudentWithSkills {
	eligible := make([]StudentWithSkills, 0, len(students))
	for _, student := range students {
		if !student.HasTeam {
			eligible = append(eligible, student)
		}
	}
	return eligible
}
