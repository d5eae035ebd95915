// Package extract turns raw resume text into structured skills and projects
// using deterministic, rule-based heuristics over an injected vocabulary.
package extract

// Vocabulary holds the curated word lists the extractors match against.
// All matching driven by these lists is case-insensitive; callers can swap
// in domain-specific lists without touching extraction logic.
type Vocabulary struct {
	// Skills are lowercase phrases matched as whole words against resume text.
	Skills []string
	// ActionVerbs mark a line as a description when it starts with one.
	// Entries with a trailing space ("It ", "A ") only match as full words.
	ActionVerbs []string
	// ProjectSections are header prefixes that open the projects region.
	ProjectSections []string
	// OtherSections are header prefixes that close the projects region.
	OtherSections []string
}

// DefaultVocabulary returns the built-in lists tuned for university resumes.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Skills:          defaultSkills,
		ActionVerbs:     defaultActionVerbs,
		ProjectSections: defaultProjectSections,
		OtherSections:   defaultOtherSections,
	}
}

var defaultSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "c",
	"react", "angular", "vue", "node.js", "express", "fastapi", "django",
	"flask", "spring boot", "html", "css", "tailwind",
	"sql", "postgresql", "mysql", "mongodb", "redis", "firebase",
	"supabase", "aws", "azure", "gcp", "docker", "kubernetes",
	"git", "github", "linux", "rest api", "graphql",
	"machine learning", "deep learning", "nlp", "computer vision",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"data analysis", "data science", "power bi", "tableau",
	"figma", "ui/ux", "agile", "scrum", "jira",
	"communication", "teamwork", "leadership", "problem solving",
}

var defaultActionVerbs = []string{
	"Developed", "Built", "Created", "Implemented", "Designed",
	"Integrated", "Used", "Utilized", "Deployed", "Configured",
	"Managed", "Led", "Worked", "Collaborated", "Improved",
	"Optimized", "Reduced", "Increased", "Achieved", "Established",
	"Wrote", "Tested", "Debugged", "Resolved", "Fixed",
	"Added", "Updated", "Maintained", "Migrated", "Refactored",
	"Automated", "Analyzed", "Researched", "Conducted", "Performed",
	"Ensured", "Enhanced", "Enabled", "Generated", "Processed",
	"Transformed", "Applied", "Leveraged", "Incorporated",
	"Responsible", "Assisted", "Supported", "Contributed",
	"Constructed", "Programmed", "Engineered", "Architected",
	"Streamlined", "Spearheaded", "Initiated", "Orchestrated",
	"Secured", "Handled", "Executed", "Delivered", "Published",
	"Presented", "Trained", "Mentored", "Supervised",
	"The", "This", "It ", "A ", "An ",
}

var defaultProjectSections = []string{
	"projects", "academic projects", "personal projects", "major projects",
	"mini projects", "key projects", "selected projects",
}

var defaultOtherSections = []string{
	"education", "experience", "work experience", "skills",
	"technical skills", "certifications", "achievements", "awards",
	"hobbies", "interests", "references", "publications", "summary",
	"objective", "contact", "extra-curricular", "extracurricular",
	"co-curricular", "cocurricular", "activities",
}
