package knowledge

import (
	"regexp"
	"strings"

	"lobsum/internal/models"
)

// Canonical issue-type phrases, scanned in order; the first phrase found
// as a case-insensitive substring of the row text wins.
var issueTypePhrases = []string{
	"Expectation Mismatch",
	"Ordered by Mistake",
	"Wrong Item",
	"PDP Issues",
	"Compatibility Issues",
	"Part(s) Missing",
	"Empty Box received",
	"Different item received",
	"The item(s) are defective",
	"The item(s) are physically damaged",
	"The item(s) are not packed or sealed properly",
	"The item(s) are missing",
}

const (
	maxExamplesPerRow  = 5
	minExampleLength   = 10
	maxIssueTypeLength = 100
)

var (
	vocMarkerRe  = regexp.MustCompile(`(?i)voc:`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]\s*`)
)

// Build turns SOP rows into a knowledge base. It never fails: rows that
// carry no usable text are skipped, everything else is merged with
// first-row-wins semantics for resolutions and SOP details.
func Build(rows []models.SOPRow) *models.KnowledgeBase {
	kb := models.NewKnowledgeBase()
	for _, row := range rows {
		nodes := strings.TrimSpace(row.Nodes)
		if nodes == "" || nodes == "nan" {
			continue
		}
		issueType, ok := extractIssueType(nodes)
		if !ok {
			continue
		}
		kb.Merge(issueType, extractVOCExamples(row.SubTypeVOC), models.Resolutions{
			Gold:         strings.TrimSpace(row.Gold),
			SilverBronze: strings.TrimSpace(row.SilverBronze),
			NewIron:      strings.TrimSpace(row.NewIron),
		}, nodes)
	}
	return kb
}

// extractIssueType derives the issue-type label for a row. Canonical
// phrases take precedence; otherwise the row's first line is accepted
// when it is short enough to be a label.
func extractIssueType(nodes string) (string, bool) {
	lowered := strings.ToLower(nodes)
	for _, phrase := range issueTypePhrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return phrase, true
		}
	}
	first, _, _ := strings.Cut(nodes, "\n")
	first = strings.TrimSpace(first)
	if first != "" && len(first) < maxIssueTypeLength {
		return first, true
	}
	return "", false
}

// extractVOCExamples pulls customer-statement excerpts out of the
// free-text cell. Blocks introduced by a "VOC:" marker are collected
// first; the marker scan runs twice and duplicate examples are kept.
// When no marker is present the text is split into sentences instead.
// At most five examples are kept per row.
func extractVOCExamples(vocText string) []string {
	text := strings.TrimSpace(vocText)
	if text == "" || text == "nan" {
		return nil
	}

	var examples []string
	for pass := 0; pass < 2; pass++ {
		for _, loc := range vocMarkerRe.FindAllStringIndex(text, -1) {
			cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(markerBlock(text[loc[1]:])), " ")
			if len(cleaned) > minExampleLength {
				examples = append(examples, cleaned)
			}
		}
	}

	if len(examples) == 0 {
		for _, sentence := range sentenceRe.Split(text, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > minExampleLength {
				examples = append(examples, sentence)
			}
		}
	}

	if len(examples) > maxExamplesPerRow {
		examples = examples[:maxExamplesPerRow]
	}
	return examples
}

// markerBlock returns the text after a marker up to a blank line, the
// next capitalized line, or the end of the cell.
func markerBlock(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		next := s[i+1]
		if next == '\n' || (next >= 'A' && next <= 'Z') {
			return s[:i]
		}
	}
	return s
}

// Fallback returns the fixed minimal knowledge base used whenever the
// SOP source cannot be parsed. Never empty: callers rely on the matcher
// having at least these two entries to work with.
func Fallback() *models.KnowledgeBase {
	kb := models.NewKnowledgeBase()
	kb.Merge("Ordered by Mistake",
		[]string{
			"I accidentally ordered the wrong product",
			"I ordered by mistake",
			"I did not mean to order this",
		},
		models.Resolutions{
			Gold:         "Service No",
			SilverBronze: "Service No",
			NewIron:      "Service No",
		},
		"Ordered by Mistake - Service No as per SOP")
	kb.Merge("Expectation Mismatch",
		[]string{
			"The size is too small/big",
			"I don't like the quality",
			"I received different color",
		},
		models.Resolutions{
			Gold:         "Replacement/RPU",
			SilverBronze: "Service No",
			NewIron:      "Service No",
		},
		"Expectation Mismatch - Check product details")
	return kb
}
