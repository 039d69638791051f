package squad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"teamforge/models"
	"teamforge/squad"
	teamFormation "teamforge/squad/team-formation"
)

func studentProfile(scores [6]float64) *models.SkillProfile {
	profile := &models.SkillProfile{
		StudentId:          42,
		CourseId:           1,
		Leadership:         scores[0],
		AnalyticalThinking: scores[1],
		Creativity:         scores[2],
		ExecutionStrength:  scores[3],
		Communication:      scores[4],
		Teamwork:           scores[5],
	}
	profile.Student = &models.User{
		Type:  models.UserTypeStudent,
		Name:  "Maria",
		Email: "maria@example.com",
	}
	profile.Student.Id = 42
	return profile
}

func TestBuildStudentWithSkillsProjection(t *testing.T) {
	student := squad.BuildStudentWithSkills(studentProfile([6]float64{90, 80, 70, 60, 50, 40}), 0)
	require.NotNil(t, student)
	require.Equal(t, int64(42), student.Id)
	require.Equal(t, "Maria", student.Name)
	require.Equal(t, "maria@example.com", student.Email)
	require.False(t, student.HasTeam)
	require.Equal(t, teamFormation.SkillVector{
		Leadership:         90,
		AnalyticalThinking: 80,
		Creativity:         70,
		ExecutionStrength:  60,
		Communication:      50,
		Teamwork:           40,
	}, student.Skills)
}

func TestBuildStudentWithSkillsMissingOrWrongProfile(t *testing.T) {
	require.Nil(t, squad.BuildStudentWithSkills(nil, 0), "no enrollment record means no candidate")

	orphan := studentProfile([6]float64{})
	orphan.Student = nil
	require.Nil(t, squad.BuildStudentWithSkills(orphan, 0), "deleted user is skipped")

	professor := studentProfile([6]float64{})
	professor.Student.Type = models.UserTypeProfessor
	require.Nil(t, squad.BuildStudentWithSkills(professor, 0), "only students are candidates")
}

func TestBuildStudentWithSkillsUnassessedIsNotExcluded(t *testing.T) {
	student := squad.BuildStudentWithSkills(studentProfile([6]float64{}), 0)
	require.NotNil(t, student, "zero is a valid low signal, not a sentinel for missing")
	require.Equal(t, teamFormation.SkillVector{}, student.Skills)
	require.Zero(t, student.Skills.Overall())
}

func TestBuildStudentWithSkillsSanitizesScores(t *testing.T) {
	student := squad.BuildStudentWithSkills(studentProfile([6]float64{
		math.NaN(), math.Inf(1), math.Inf(-1), -10, 250, 60,
	}), 0)
	require.NotNil(t, student)
	require.Equal(t, teamFormation.SkillVector{
		Leadership:         0,
		AnalyticalThinking: 0,
		Creativity:         0,
		ExecutionStrength:  0,
		Communication:      100,
		Teamwork:           60,
	}, student.Skills, "every score must come out finite and inside [0, 100]")
}

func TestBuildStudentWithSkillsHasTeam(t *testing.T) {
	require.False(t, squad.BuildStudentWithSkills(studentProfile([6]float64{}), 0).HasTeam)
	require.True(t, squad.BuildStudentWithSkills(studentProfile([6]float64{}), 1).HasTeam)
	require.True(t, squad.BuildStudentWithSkills(studentProfile([6]float64{}), 3).HasTeam)
}
