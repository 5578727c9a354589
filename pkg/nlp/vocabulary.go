package nlp

// Vocabulary holds the stop-word list and the curated set of technical terms
// that bias keyword selection toward skills.
type Vocabulary struct {
	stop  map[string]struct{}
	terms map[string]struct{}
}

// NewVocabulary builds a vocabulary from plain lists. Terms may be phrases.
func NewVocabulary(stopWords, terms []string) *Vocabulary {
	v := &Vocabulary{
		stop:  make(map[string]struct{}, len(stopWords)),
		terms: make(map[string]struct{}, len(terms)),
	}
	for _, w := range stopWords {
		v.stop[NormalizeText(w)] = struct{}{}
	}
	for _, t := range terms {
		v.terms[NormalizeText(t)] = struct{}{}
	}
	return v
}

func (v *Vocabulary) IsStopWord(w string) bool {
	_, ok := v.stop[w]
	return ok
}

func (v *Vocabulary) IsTerm(w string) bool {
	_, ok := v.terms[w]
	return ok
}

// DefaultVocabulary — словарь по умолчанию.
var DefaultVocabulary = NewVocabulary(defaultStopWords, defaultTechnicalTerms)

var defaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for", "with",
	"by", "about", "as", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "shall", "should",
	"can", "could", "may", "might", "must", "of", "from", "we", "our", "you", "your",
	"they", "their", "he", "she", "it", "his", "her", "its",
}

var defaultTechnicalTerms = []string{
	// языки и фреймворки
	"javascript", "typescript", "react", "angular", "vue", "node", "express",
	"java", "python", "ruby", "php", "go", "rust", "swift", "kotlin", "csharp",
	"dotnet", "scala", "html", "css", "sass", "less", "webpack", "babel", "redux",
	"graphql", "rest", "api",
	// данные
	"mongodb", "sql", "mysql", "postgresql", "database", "nosql", "redis",
	"elasticsearch", "kibana", "logstash",
	// инфраструктура
	"aws", "azure", "gcp", "docker", "kubernetes", "cicd", "devops", "linux",
	"bash", "shell", "cloud", "serverless", "microservices",
	// процессы и инструменты
	"agile", "scrum", "git", "github", "gitlab", "bitbucket", "jira", "confluence",
	"testing", "jest", "mocha", "cypress", "selenium",
	// безопасность
	"oauth", "jwt", "authentication", "authorization", "security",
	"penetration testing", "ethical hacking", "cybersecurity",
	// дизайн
	"figma", "sketch", "adobe", "photoshop", "illustrator", "xd", "ui", "ux",
	"responsive", "mobile", "accessibility",
	// инженерные практики
	"algorithms", "data structures", "architecture", "design patterns", "solid",
	"frontend", "backend", "fullstack", "monitoring", "logging", "performance",
	"optimization", "scalability", "high availability", "distributed systems",
	"caching", "load balancing", "networking",
	// продукт
	"i18n", "l10n", "internationalization", "localization", "seo", "analytics",
	"marketing", "saas",
}
