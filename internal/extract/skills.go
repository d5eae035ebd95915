package extract

import (
	"context"
	"log"
	"regexp"
	"strings"
	"unicode"

	"github.com/pradeepreddy0/CampusHireAI/internal/entity"
)

// ExtractSkills matches the vocabulary's skill phrases against resume text
// and returns the matches in canonical title-cased form, deduplicated.
// Matching is case-insensitive and anchored on word boundaries so a short
// token like "c" cannot match inside "react".
func ExtractSkills(text string, vocab *Vocabulary) []string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	lower := strings.ToLower(text)
	found := []string{}
	seen := map[string]bool{}

	for _, skill := range vocab.Skills {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
		if pattern.MatchString(lower) {
			name := TitleCase(skill)
			if !seen[name] {
				seen[name] = true
				found = append(found, name)
			}
		}
	}

	return found
}

// ExtractSkillsWithRecognizer runs keyword extraction and then augments the
// result with a named-entity pass over the original-case text: organization
// and product entities whose text equals a vocabulary phrase are added if the
// keyword pass missed them. Recognizer failures are logged and ignored so
// extraction degrades to keyword-only rather than erroring.
func ExtractSkillsWithRecognizer(ctx context.Context, text string, vocab *Vocabulary, rec entity.Recognizer) []string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	found := ExtractSkills(text, vocab)
	if rec == nil {
		return found
	}

	entities, err := rec.Recognize(ctx, text)
	if err != nil {
		log.Printf("entity recognition failed, keeping keyword matches: %v", err)
		return found
	}

	vocabSet := map[string]bool{}
	for _, skill := range vocab.Skills {
		vocabSet[strings.ToLower(skill)] = true
	}
	seen := map[string]bool{}
	for _, name := range found {
		seen[name] = true
	}

	for _, ent := range entities {
		if ent.Label != entity.LabelOrg && ent.Label != entity.LabelProduct {
			continue
		}
		text := strings.TrimSpace(ent.Text)
		if text == "" || !vocabSet[strings.ToLower(text)] {
			continue
		}
		name := TitleCase(text)
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}

	return found
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, the canonical display form for extracted skills ("node.js" becomes
// "Node.Js", "sql" becomes "Sql").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
