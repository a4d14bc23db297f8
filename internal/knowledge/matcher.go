package knowledge

import (
	"strings"

	"lobsum/internal/models"
)

type keywordRule struct {
	keyword   string
	issueType string
}

// Ordered keyword rules, first match wins. These short-circuit the
// fuzzy scoring below and do not consult the knowledge base, so a
// keyword hit can name an issue type the base does not carry.
var keywordRules = []keywordRule{
	{"mistake", "Ordered by Mistake"},
	{"accidentally", "Ordered by Mistake"},
	{"wrong product", "Ordered by Mistake"},
	{"size", "Expectation Mismatch"},
	{"color", "Expectation Mismatch"},
	{"quality", "Expectation Mismatch"},
	{"defective", "The item(s) are defective"},
	{"damaged", "The item(s) are physically damaged"},
	{"missing", "The item(s) are missing"},
	{"empty box", "Empty Box received"},
	{"wrong item", "Wrong Item"},
	{"pdp", "PDP Issues"},
}

// FindBestMatch classifies free text against the knowledge base.
// Keyword rules are checked first; otherwise every VOC example is scored
// by word overlap with the input and the issue type with the strictly
// greatest nonzero score wins. Ties keep the earliest issue type in
// knowledge-base insertion order.
func FindBestMatch(text string, kb *models.KnowledgeBase) (string, bool) {
	lowered := strings.ToLower(text)

	for _, rule := range keywordRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.issueType, true
		}
	}

	inputWords := wordSet(lowered)
	bestMatch := ""
	bestScore := 0
	for _, issueType := range kb.IssueTypes() {
		entry, ok := kb.Entry(issueType)
		if !ok {
			continue
		}
		for _, example := range entry.VOCExamples {
			if score := overlap(inputWords, wordSet(strings.ToLower(example))); score > bestScore {
				bestScore = score
				bestMatch = issueType
			}
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return bestMatch, true
}

func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		words[w] = struct{}{}
	}
	return words
}

func overlap(a, b map[string]struct{}) int {
	count := 0
	for w := range a {
		if _, ok := b[w]; ok {
			count++
		}
	}
	return count
}
