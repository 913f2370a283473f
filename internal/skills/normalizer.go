// Package skills provides canonical skill name normalization shared by
// JD and CV extraction so that skill overlap works by exact set intersection.
package skills

import (
	"sort"
	"strings"
)

// defaultCanonical maps lowercased skill aliases to canonical display forms.
// Both sides of a match run through the same table, so unknown tokens still
// intersect as long as they share a raw spelling.
var defaultCanonical = map[string]string{
	"golang":        "Go",
	"go lang":       "Go",
	"python":        "Python",
	"python3":       "Python",
	"javascript":    "JavaScript",
	"js":            "JavaScript",
	"typescript":    "TypeScript",
	"ts":            "TypeScript",
	"java":          "Java",
	"c#":            "C#",
	"c++":           "C++",
	"fastapi":       "FastAPI",
	"fast api":      "FastAPI",
	"django":        "Django",
	"flask":         "Flask",
	"react":         "React",
	"react.js":      "React",
	"reactjs":       "React",
	"vue":           "Vue",
	"vue.js":        "Vue",
	"vuejs":         "Vue",
	"node":          "Node.js",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"psql":          "PostgreSQL",
	"mysql":         "MySQL",
	"mongo":         "MongoDB",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",
	"kafka":         "Kafka",
	"rabbitmq":      "RabbitMQ",
	"git":           "Git",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"docker":        "Docker",
	"k8s":           "Kubernetes",
	"kubernetes":    "Kubernetes",
	"terraform":     "Terraform",
	"ansible":       "Ansible",
	"aws":           "AWS",
	"amazon web services": "AWS",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"azure":               "Azure",
	"ci/cd":               "CI/CD",
	"cicd":                "CI/CD",
	"rest":                "REST",
	"rest api":            "REST",
	"graphql":             "GraphQL",
	"grpc":                "gRPC",
	"sql":                 "SQL",
	"nosql":               "NoSQL",
	"linux":               "Linux",
	"bash":                "Bash",
	"machine learning":    "Machine Learning",
	"ml":                  "Machine Learning",
	"deep learning":       "Deep Learning",
	"nlp":                 "NLP",
	"pytorch":             "PyTorch",
	"tensorflow":          "TensorFlow",
	"pandas":              "Pandas",
	"numpy":               "NumPy",
	"spark":               "Spark",
	"airflow":             "Airflow",
}

// Normalizer maps free-text skill tokens to a controlled vocabulary.
// The mapping is fixed at construction time; a Normalizer is safe for
// concurrent use by multiple goroutines.
type Normalizer struct {
	canonical map[string]string
}

// NewNormalizer returns a Normalizer backed by the built-in canonical map.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithMap(defaultCanonical)
}

// NewNormalizerWithMap returns a Normalizer backed by the given mapping of
// lowercased aliases to canonical display forms. The map is copied, so the
// caller may mutate its copy freely afterwards.
func NewNormalizerWithMap(mapping map[string]string) *Normalizer {
	canonical := make(map[string]string, len(mapping))
	for alias, name := range mapping {
		canonical[strings.ToLower(strings.TrimSpace(alias))] = name
	}
	return &Normalizer{canonical: canonical}
}

// Normalize lowercases and trims raw, then resolves it against the canonical
// map. Unknown tokens pass through lower-cased and trimmed so that identical
// raw spellings on the JD and CV side still match.
func (n *Normalizer) Normalize(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return ""
	}
	if canonical, ok := n.canonical[token]; ok {
		return canonical
	}
	return token
}

// NormalizeAll normalizes, deduplicates, and sorts a list of raw skill
// tokens. Empty tokens are dropped.
func (n *Normalizer) NormalizeAll(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(raw))
	normalized := make([]string, 0, len(raw))
	for _, skill := range raw {
		norm := n.Normalize(skill)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		normalized = append(normalized, norm)
	}

	sort.Strings(normalized)
	return normalized
}
