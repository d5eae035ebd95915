package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine_BlankLine(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	assert.Equal(t, LineDescription, ClassifyLine("", verbs))
	assert.Equal(t, LineDescription, ClassifyLine("   \t", verbs))
}

func TestClassifyLine_BulletMarkers(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	for _, line := range []string{
		"• Built using Java and MySQL",
		"- reduced latency by 40%",
		"* Added caching layer",
		"► Deployment scripts",
	} {
		assert.Equal(t, LineDescription, ClassifyLine(line, verbs), "line: %s", line)
	}
}

func TestClassifyLine_LowercaseStart(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	assert.Equal(t, LineDescription, ClassifyLine("continued from the previous bullet", verbs))
}

func TestClassifyLine_ActionVerbStart(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	for _, line := range []string{
		"Developed a course registration portal",
		"Implemented role-based access control",
		"The system indexes uploaded documents",
		"A lightweight service for notifications",
	} {
		assert.Equal(t, LineDescription, ClassifyLine(line, verbs), "line: %s", line)
	}
}

func TestClassifyLine_LongLineWithoutSeparators(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	long := "Smart Attendance Tracker For University Lectures Based On Face Recognition And QR Codes Rolled Out Campus Wide"
	assert.Greater(t, len(long), longLineThreshold)
	assert.Equal(t, LineDescription, ClassifyLine(long, verbs))

	// The same length with a separator reads as a title.
	withSep := "Smart Attendance Tracker | Face Recognition And QR Codes Rolled Out Campus Wide Across Departments"
	assert.Equal(t, LineTitle, ClassifyLine(withSep, verbs))
}

func TestClassifyLine_Title(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	for _, line := range []string{
		"Library Management System",
		"Chat Application – Go, WebSockets",
		"Portfolio Website: React + Tailwind",
	} {
		assert.Equal(t, LineTitle, ClassifyLine(line, verbs), "line: %s", line)
	}
}

func TestClassifyLine_RuleOrderIsFixed(t *testing.T) {
	verbs := DefaultVocabulary().ActionVerbs

	// A bulleted line that also starts with a verb after the marker stays a
	// description via the bullet rule, regardless of later rules.
	line := "• " + strings.Repeat("Developed things. ", 10)
	assert.Equal(t, LineDescription, ClassifyLine(line, verbs))
}

func TestClassifyLine_CustomVerbList(t *testing.T) {
	// With an empty verb list, verb-led lines become titles.
	assert.Equal(t, LineTitle, ClassifyLine("Developed a portal", nil))
}
