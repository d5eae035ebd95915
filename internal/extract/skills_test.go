package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pradeepreddy0/CampusHireAI/internal/entity"
)

// stubRecognizer returns a fixed entity list or a fixed error.
type stubRecognizer struct {
	entities []entity.Entity
	err      error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string) ([]entity.Entity, error) {
	return s.entities, s.err
}

func TestExtractSkills_KeywordMatches(t *testing.T) {
	text := "Experienced in Python and SQL. Built dashboards with React."

	skills := ExtractSkills(text, nil)

	assert.Equal(t, []string{"Python", "React", "Sql"}, skills)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "c" must not match inside "react" or "contract".
	text := "Signed a contract to react quickly."
	skills := ExtractSkills(text, nil)
	assert.NotContains(t, skills, "C")

	skills = ExtractSkills("Wrote firmware in C for microcontrollers.", nil)
	assert.Contains(t, skills, "C")
}

func TestExtractSkills_CaseInsensitiveAndDeduplicated(t *testing.T) {
	text := "PYTHON, python and Python are all the same skill."

	skills := ExtractSkills(text, nil)

	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills("", nil))
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Docker, Kubernetes, machine learning and Git."

	first := ExtractSkills(text, nil)
	second := ExtractSkills(text, nil)

	assert.Equal(t, first, second)
}

func TestExtractSkills_MultiWordPhrases(t *testing.T) {
	text := "Coursework covered machine learning and data analysis using pandas."

	skills := ExtractSkills(text, nil)

	assert.Contains(t, skills, "Machine Learning")
	assert.Contains(t, skills, "Data Analysis")
	assert.Contains(t, skills, "Pandas")
}

func TestExtractSkillsWithRecognizer_AugmentsFromEntities(t *testing.T) {
	rec := &stubRecognizer{entities: []entity.Entity{
		{Text: "Docker", Label: entity.LabelOrg},
		{Text: "Tableau", Label: entity.LabelProduct},
		{Text: "Acme Corp", Label: entity.LabelOrg}, // not in vocabulary
		{Text: "AWS", Label: "PERSON"},              // wrong label
	}}

	skills := ExtractSkillsWithRecognizer(context.Background(), "Plain text without keywords.", nil, rec)

	assert.ElementsMatch(t, []string{"Docker", "Tableau"}, skills)
}

func TestExtractSkillsWithRecognizer_NoDuplicateFromEntities(t *testing.T) {
	rec := &stubRecognizer{entities: []entity.Entity{
		{Text: "Python", Label: entity.LabelOrg},
	}}

	skills := ExtractSkillsWithRecognizer(context.Background(), "Python developer.", nil, rec)

	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkillsWithRecognizer_ErrorFallsBackToKeywords(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("model unavailable")}

	skills := ExtractSkillsWithRecognizer(context.Background(), "Python developer.", nil, rec)

	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkillsWithRecognizer_NilRecognizer(t *testing.T) {
	skills := ExtractSkillsWithRecognizer(context.Background(), "Python developer.", nil, nil)

	assert.Equal(t, []string{"Python"}, skills)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Python", TitleCase("python"))
	assert.Equal(t, "Machine Learning", TitleCase("machine learning"))
	assert.Equal(t, "Node.Js", TitleCase("node.js"))
	assert.Equal(t, "Sql", TitleCase("SQL"))
	assert.Equal(t, "Ui/Ux", TitleCase("ui/ux"))
}
