package squad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamforge/database"
	"teamforge/models"
	teamFormation "teamforge/squad/team-formation"
	"teamforge/utils/env"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

var (
	ErrProfessorNotFound  = errors.New("requesting professor not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseClosed       = errors.New("course term has already ended")
	ErrStudentNotEnrolled = errors.New("student is not enrolled in the course")
	ErrStudentHasTeam     = errors.New("student already belongs to a team in this course")
	ErrNothingToCommit    = errors.New("no teams to commit")
	ErrDuplicateMember    = errors.New("student appears more than once in the partition")
)

type Service struct {
	db     *gorm.DB
	bounds teamFormation.TeamSizeBounds
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db: db,
		bounds: teamFormation.TeamSizeBounds{
			Min: env.GetIntOrDefault("TEAM_SIZE_MIN", teamFormation.DefaultMinTeamSize),
			Max: env.GetIntOrDefault("TEAM_SIZE_MAX", teamFormation.DefaultMaxTeamSize),
		},
	}
}

// ListStudents carrega todas as matrículas do curso já projetadas em
// StudentWithSkills, inclusive quem já tem time (HasTeam == true).
func (s *Service) ListStudents(ctx context.Context, courseId int64) ([]teamFormation.StudentWithSkills, error) {
	tx := s.db.WithContext(ctx)

	if _, err := s.loadActiveCourse(tx, courseId); err != nil {
		return nil, err
	}

	var profiles []*models.SkillProfile
	r := tx.InnerJoins("Student").Where(models.SkillProfile{
		CourseId: courseId,
	}, "CourseId").Find(&profiles)
	if r.Error != nil {
		return nil, r.Error
	}

	assignedIds, err := listAssignedStudentIds(tx, courseId)
	if err != nil {
		return nil, err
	}

	students := make([]teamFormation.StudentWithSkills, 0, len(profiles))
	for _, profile := range profiles {
		student := BuildStudentWithSkills(profile, assignedIds[profile.StudentId])
		if student == nil {
			continue
		}
		students = append(students, *student)
	}
	return students, nil
}

// CompareStrategies busca o pool elegível uma única vez e roda as três
// estratégias sobre o mesmo snapshot. Validação (professor, curso,
// tamanho de time, pool vazio) acontece antes de qualquer estratégia
// executar.
func (s *Service) CompareStrategies(ctx context.Context, courseId, requestedById int64, teamSize int) (map[teamFormation.StrategyType]*teamFormation.StrategyResult, error) {
	if err := s.checkProfessor(s.db.WithContext(ctx), requestedById); err != nil {
		return nil, err
	}

	students, err := s.ListStudents(ctx, courseId)
	if err != nil {
		return nil, err
	}

	eligible := teamFormation.FilterEligible(students)
	return teamFormation.CompareStrategies(ctx, eligible, teamSize, s.bounds)
}

// CommitTeams persiste a partição escolhida de forma atômica: ou todos
// os times entram, ou nenhum. Os estudantes envolvidos passam a ler
// HasTeam == true na próxima listagem.
func (s *Service) CommitTeams(ctx context.Context, courseId, committedById int64, teams []*teamFormation.Team) ([]int64, error) {
	if len(teams) == 0 {
		return nil, ErrNothingToCommit
	}

	studentIds := make([]int64, 0, len(teams)*s.bounds.Max)
	seen := map[int64]struct{}{}
	for _, team := range teams {
		if len(team.Members) < s.bounds.Min || len(team.Members) > s.bounds.Max {
			return nil, fmt.Errorf("%w: team %q has %d members", teamFormation.ErrInvalidTeamSize, team.Name, len(team.Members))
		}
		for _, member := range team.Members {
			if _, ok := seen[member.StudentId]; ok {
				return nil, fmt.Errorf("%w: student %d", ErrDuplicateMember, member.StudentId)
			}
			seen[member.StudentId] = struct{}{}
			studentIds = append(studentIds, member.StudentId)
		}
	}

	var committedIds []int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkProfessor(tx, committedById); err != nil {
			return err
		}
		if _, err := s.loadActiveCourse(tx, courseId); err != nil {
			return err
		}

		// trava as matrículas envolvidas pra dois commits concorrentes
		// não disputarem os mesmos estudantes
		var profiles []*models.SkillProfile
		r := tx.Clauses(database.GetLockForUpdateClause(tx.Dialector.Name(), false)).
			Where("course_id = ? AND student_id IN ?", courseId, studentIds).
			Find(&profiles)
		if r.Error != nil {
			return r.Error
		}
		if len(profiles) != len(studentIds) {
			return fmt.Errorf("%w: expected %d enrollments, found %d", ErrStudentNotEnrolled, len(studentIds), len(profiles))
		}

		var alreadyAssigned int64
		r = tx.Model(&models.TeamMember{}).
			Joins("INNER JOIN teams ON teams.id = team_members.team_id").
			Where("teams.course_id = ? AND teams.deleted_at IS NULL AND team_members.student_id IN ?", courseId, studentIds).
			Count(&alreadyAssigned)
		if r.Error != nil {
			return r.Error
		}
		if alreadyAssigned > 0 {
			return ErrStudentHasTeam
		}

		joinedAt := time.Now()
		for _, team := range teams {
			// reconfere o score contra o snapshot persistido; como o
			// scorer é determinístico, só diverge se o rascunho foi
			// adulterado entre a comparação e o commit
			vectors := make([]teamFormation.SkillVector, 0, len(team.Members))
			for _, member := range team.Members {
				vectors = append(vectors, member.Skills)
			}
			score, err := teamFormation.CalculateBalanceScore(vectors)
			if err != nil {
				return err
			}

			row := &models.Team{
				CourseId:        courseId,
				Name:            team.Name,
				FormationMethod: team.FormationMethod.String(),
				BalanceScore:    score,
				Rationale:       team.Rationale,
				Status:          string(teamFormation.TeamStatusCommitted),
				CreatedById:     committedById,
			}
			r := tx.Create(row)
			if r.Error != nil {
				return r.Error
			}

			for _, member := range team.Members {
				memberRow := &models.TeamMember{
					TeamId:             row.Id,
					StudentId:          member.StudentId,
					Role:               member.Role,
					Leadership:         member.Skills.Leadership,
					AnalyticalThinking: member.Skills.AnalyticalThinking,
					Creativity:         member.Skills.Creativity,
					ExecutionStrength:  member.Skills.ExecutionStrength,
					JoinedAt:           joinedAt,
				}
				r := tx.Create(memberRow)
				if r.Error != nil {
					return r.Error
				}
			}

			committedIds = append(committedIds, row.Id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// notificação é melhor esforço, fora da transação; falha de SMTP
	// não desfaz um commit que já aconteceu
	s.notifyCommittedTeams(teams)

	return committedIds, nil
}

// checkProfessor valida a referência de quem está pedindo a operação;
// estudante não compara nem comita time.
func (s *Service) checkProfessor(tx *gorm.DB, userId int64) error {
	if userId == 0 {
		return fmt.Errorf("%w: id cannot be zero", ErrProfessorNotFound)
	}

	user := &models.User{}
	r := tx.First(user, userId)
	if r.Error != nil {
		if errors.Is(r.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrProfessorNotFound, userId)
		}
		return r.Error
	}
	if user.Type != models.UserTypeProfessor {
		return fmt.Errorf("%w: user %d is not a professor", ErrProfessorNotFound, userId)
	}
	return nil
}

func (s *Service) loadActiveCourse(tx *gorm.DB, courseId int64) (*models.Course, error) {
	if courseId == 0 {
		return nil, fmt.Errorf("%w: id cannot be zero", ErrCourseNotFound)
	}

	course := &models.Course{}
	r := tx.First(course, courseId)
	if r.Error != nil {
		if errors.Is(r.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCourseNotFound, courseId)
		}
		return nil, r.Error
	}

	if course.TermEnd.Before(now.BeginningOfDay()) {
		return nil, fmt.Errorf("%w: %s ended %s", ErrCourseClosed, course.Name, course.TermEnd.Format(time.DateOnly))
	}

	return course, nil
}

// listAssignedStudentIds conta as participações em times (não
// deletados) do curso, por estudante.
func listAssignedStudentIds(tx *gorm.DB, courseId int64) (map[int64]int64, error) {
	var members []*models.TeamMember
	r := tx.
		Joins("INNER JOIN teams ON teams.id = team_members.team_id").
		Where("teams.course_id = ? AND teams.deleted_at IS NULL", courseId).
		Find(&members)
	if r.Error != nil {
		return nil, r.Error
	}

	counts := make(map[int64]int64, len(members))
	for _, member := range members {
		counts[member.StudentId]++
	}
	return counts, nil
}
