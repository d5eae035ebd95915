package extract

import (
	"strings"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

const (
	// maxProjectNameLen caps a project title, matching the column width of
	// the resumes table.
	maxProjectNameLen = 150
	// descSeparator joins bullet fragments into one description string.
	descSeparator = " • "
)

// ExtractProjects scans resume text for a projects section and groups its
// lines into project records. A line matching a project-section alias opens
// the region and any other known section header closes it. Inside the region,
// title lines start a new project and description lines are appended to the
// current one with their bullet markers stripped.
//
// Extraction is a pure function of (text, vocab): re-running it on the same
// text yields an identical sequence. Malformed or empty text produces an
// empty slice, never an error.
func ExtractProjects(text string, vocab *Vocabulary) []types.Project {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	projects := []types.Project{}
	inProjects := false
	var current *types.Project

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if matchesSection(stripped, vocab.ProjectSections) {
			inProjects = true
			continue
		}
		if !inProjects {
			continue
		}
		if matchesSection(stripped, vocab.OtherSections) {
			inProjects = false
			continue
		}

		if ClassifyLine(line, vocab.ActionVerbs) == LineDescription {
			clean := strings.TrimSpace(bulletPrefix.ReplaceAllString(stripped, ""))
			if current != nil && clean != "" {
				if current.Desc != "" {
					current.Desc += descSeparator + clean
				} else {
					current.Desc = clean
				}
			}
			continue
		}

		// Title line: finalize the in-progress project and start a new one.
		if current != nil {
			projects = append(projects, *current)
		}
		current = &types.Project{Name: truncate(stripped, maxProjectNameLen)}
	}

	if current != nil {
		projects = append(projects, *current)
	}

	return projects
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
