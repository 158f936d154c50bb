// Package lexicon holds the fixed skill vocabulary used for rule-based
// extraction. Entries carry one canonical display casing; all lookups and
// set operations run on the lowercase form.
package lexicon

import "strings"

// skillsDB is the canonical skill phrase list. Matching is case-insensitive;
// the casing here is what extraction results display.
var skillsDB = []string{
	"python", "java", "c++", "c#", "javascript", "js", "html", "css", "php", "ruby", "swift", "kotlin",
	"sql", "mysql", "postgresql", "sqlite", "mongodb", "cassandra", "redis", "oracle", "sql server",
	"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "terraform", "ansible", "jenkins", "git",
	"linux", "unix", "windows", "macos",
	"react", "angular", "vue", "nodejs", "django", "flask", "spring", "ruby on rails", ".net",
	"pandas", "numpy", "scipy", "scikit-learn", "sklearn", "tensorflow", "keras", "pytorch", "matplotlib", "seaborn", "plotly",
	"machine learning", "deep learning", "data science", "data analysis", "data visualization", "nlp", "natural language processing",
	"computer vision", "big data", "hadoop", "spark", "kafka", "hive", "hbase", "spacy", "nltk",
	"agile", "scrum", "jira", "project management", "product management",
	"communication", "teamwork", "leadership", "problem solving", "critical thinking",
	"customer service", "sales", "marketing", "seo", "sem", "content creation",
	"ui/ux", "design", "photoshop", "illustrator", "figma",
	"devops", "automation testing", "selenium", "cybersecurity", "network security",
	"sap", "etl", "power bi", "tableau", "excel", "word", "powerpoint",
	"blockchain", "solidity", "ethereum", "hyperledger",
	"mechanical engineering", "electrical engineering", "civil engineering",
	"hr", "recruitment", "talent acquisition", "employee relations",
	"health", "fitness", "nutrition",
	"advocate", "legal", "law",
	"jquery", "bootstrap", "d3.js", "dc.js", "logstash", "kibana", "r", "sap hana",
	"rest", "soap", "api", "microservices",
	"pmo", "operations management", "business analysis", "dotnet",
}

// Lexicon is a case-insensitive set of skill phrases with canonical display
// casing. It is immutable after construction.
type Lexicon struct {
	canonical map[string]string // lowercase -> canonical casing
	entries   []string          // canonical forms in source order
}

// New builds a lexicon from the built-in skill list.
func New() *Lexicon {
	return FromSkills(skillsDB)
}

// FromSkills builds a lexicon from an explicit skill list, deduplicating
// case-insensitively. The first casing seen for a phrase wins.
func FromSkills(skills []string) *Lexicon {
	lex := &Lexicon{canonical: make(map[string]string, len(skills))}
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		if _, seen := lex.canonical[lower]; seen {
			continue
		}
		lex.canonical[lower] = s
		lex.entries = append(lex.entries, s)
	}
	return lex
}

// Canonical returns the display casing for a phrase and whether the phrase
// is a known skill. Input casing is ignored.
func (l *Lexicon) Canonical(phrase string) (string, bool) {
	c, ok := l.canonical[strings.ToLower(strings.TrimSpace(phrase))]
	return c, ok
}

// Contains reports whether the phrase is a known skill, ignoring case.
func (l *Lexicon) Contains(phrase string) bool {
	_, ok := l.Canonical(phrase)
	return ok
}

// Entries returns the canonical skill phrases in their source order. The
// returned slice is a copy.
func (l *Lexicon) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of distinct skills in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
