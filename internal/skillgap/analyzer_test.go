package skillgap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves canned resources per lowercased skill and records the
// order of lookups.
type fakeCatalog struct {
	resources map[string][]Resource
	err       error
	lookups   []string
}

func (f *fakeCatalog) FindBySkill(_ context.Context, skill string) ([]Resource, error) {
	f.lookups = append(f.lookups, skill)
	if f.err != nil {
		return nil, f.err
	}
	return f.resources[skill], nil
}

func TestAnalyze_SplitsMatchedAndMissing(t *testing.T) {
	a := Analyze([]string{"Python", "SQL"}, []string{"Python", "SQL", "React", "Docker"})

	assert.Equal(t, []string{"Python", "SQL"}, a.Matched)
	assert.Equal(t, []string{"React", "Docker"}, a.Missing)
	assert.Equal(t, 50.0, a.MatchPercentage)
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	a := Analyze([]string{"python", "REACT"}, []string{"Python", "React"})

	assert.Equal(t, []string{"Python", "React"}, a.Matched)
	assert.Empty(t, a.Missing)
	assert.Equal(t, 100.0, a.MatchPercentage)
}

func TestAnalyze_PreservesRequirementOrder(t *testing.T) {
	a := Analyze([]string{"Docker", "Python"}, []string{"React", "Python", "SQL", "Docker"})

	assert.Equal(t, []string{"Python", "Docker"}, a.Matched)
	assert.Equal(t, []string{"React", "SQL"}, a.Missing)
}

func TestAnalyze_EmptyRequirementIsFullMatch(t *testing.T) {
	a := Analyze([]string{"Python"}, nil)

	assert.Empty(t, a.Matched)
	assert.Empty(t, a.Missing)
	assert.Equal(t, 100.0, a.MatchPercentage)
}

func TestAnalyze_NoCandidateSkills(t *testing.T) {
	a := Analyze(nil, []string{"Python", "SQL"})

	assert.Empty(t, a.Matched)
	assert.Equal(t, []string{"Python", "SQL"}, a.Missing)
	assert.Equal(t, 0.0, a.MatchPercentage)
}

func TestAnalyze_PercentageRoundedToTwoPlaces(t *testing.T) {
	// 1 of 3 matched is 33.333..., rounded to 33.33.
	a := Analyze([]string{"Python"}, []string{"Python", "SQL", "React"})

	assert.Equal(t, 33.33, a.MatchPercentage)
}

func TestAnalyzeWithResources_LooksUpMissingInOrder(t *testing.T) {
	catalog := &fakeCatalog{resources: map[string][]Resource{
		"React":  {{Skill: "React", Title: "React Basics", URL: "https://example.com/react"}},
		"Docker": {{Skill: "Docker", Title: "Docker 101", URL: "https://example.com/docker"}},
	}}

	a, err := AnalyzeWithResources(context.Background(), catalog,
		[]string{"Python"}, []string{"Python", "React", "Docker"})
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Docker"}, catalog.lookups)
	require.Len(t, a.Resources, 2)
	assert.Equal(t, "React Basics", a.Resources[0].Title)
	assert.Equal(t, "Docker 101", a.Resources[1].Title)
}

func TestAnalyzeWithResources_DuplicatesKept(t *testing.T) {
	shared := Resource{Skill: "Web", Title: "Full Stack Path", URL: "https://example.com/fullstack"}
	catalog := &fakeCatalog{resources: map[string][]Resource{
		"React":   {shared},
		"Node.js": {shared},
	}}

	a, err := AnalyzeWithResources(context.Background(), catalog,
		nil, []string{"React", "Node.js"})
	require.NoError(t, err)

	assert.Len(t, a.Resources, 2)
}

func TestAnalyzeWithResources_NoMissingSkipsCatalog(t *testing.T) {
	catalog := &fakeCatalog{}

	a, err := AnalyzeWithResources(context.Background(), catalog,
		[]string{"Python"}, []string{"Python"})
	require.NoError(t, err)

	assert.Empty(t, catalog.lookups)
	assert.Empty(t, a.Resources)
}

func TestAnalyzeWithResources_NilCatalog(t *testing.T) {
	a, err := AnalyzeWithResources(context.Background(), nil,
		nil, []string{"Python"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Python"}, a.Missing)
	assert.Empty(t, a.Resources)
}

func TestAnalyzeWithResources_CatalogError(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection refused")}

	_, err := AnalyzeWithResources(context.Background(), catalog,
		nil, []string{"Python"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Python")
}
