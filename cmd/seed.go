package main

import (
	"context"
	"fmt"
	"math/rand"

	"teamforge/database"
	"teamforge/models"
	"teamforge/utils/env"
	otherUtils "teamforge/utils/other"

	"github.com/lib/pq"
	"github.com/mroth/weightedrand/v2"
	"gorm.io/gorm"
)

type skillTier struct {
	base float64
	span float64
}

// seedDemoStudents cria estudantes de demonstração no curso padrão.
// A distribuição de senioridade é pesada: mais intermediários que
// iniciantes, poucos avançados, parecido com uma turma real.
func seedDemoStudents(ctx context.Context) error {
	count := env.GetIntOrDefault("SEED_STUDENT_COUNT", 24)
	courseId := int64(env.GetIntOrDefault("SEED_COURSE_ID", 1))

	chooser, err := weightedrand.NewChooser(
		weightedrand.NewChoice(skillTier{base: 10, span: 40}, 3),
		weightedrand.NewChoice(skillTier{base: 40, span: 35}, 5),
		weightedrand.NewChoice(skillTier{base: 70, span: 30}, 2),
	)
	if err != nil {
		return err
	}

	// sufixos únicos em ordem aleatória, pra não sair tudo sequencial
	nameRand := &otherUtils.MapRand[int]{}
	nameRand.InitializeInterval(1, count*10)

	dbCon, err := database.GetConnectionWithContext(ctx)
	if err != nil {
		return err
	}

	return dbCon.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			suffix, ok := nameRand.GetRandomAndPop()
			if !ok {
				return fmt.Errorf("ran out of name suffixes after %d students", i)
			}

			user := &models.User{
				Type:  models.UserTypeStudent,
				Name:  fmt.Sprintf("Demo Student %03d", suffix),
				Email: fmt.Sprintf("student%03d@example.com", suffix),
			}
			if r := tx.Create(user); r.Error != nil {
				return r.Error
			}

			tier := chooser.Pick()
			profile := &models.SkillProfile{
				StudentId:          user.Id,
				CourseId:           courseId,
				Tools:              pq.StringArray{"git"},
				Leadership:         tierScore(tier),
				AnalyticalThinking: tierScore(tier),
				Creativity:         tierScore(tier),
				ExecutionStrength:  tierScore(tier),
				Communication:      tierScore(tier),
				Teamwork:           tierScore(tier),
				HadFirstUpdate:     true,
			}
			if r := tx.Create(profile); r.Error != nil {
				return r.Error
			}
		}
		return nil
	})
}

func tierScore(t skillTier) float64 {
	return t.base + rand.Float64()*t.span
}
