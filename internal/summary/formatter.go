package summary

import (
	"fmt"
	"strings"
	"time"

	"lobsum/internal/models"
)

const placeholderNA = "NA"

var truthyTokens = map[string]bool{
	"y":    true,
	"yes":  true,
	"true": true,
	"1":    true,
}

// Accepted follow-up date layouts, tried in order. Output is always the
// first layout.
var followUpLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
}

// NormalizeYesNo maps a bool or a yes/no-like string to "Yes"/"No".
// Anything absent or unrecognized is "No".
func NormalizeYesNo(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case nil:
		return "No"
	case string:
		if truthyTokens[strings.ToLower(strings.TrimSpace(v))] {
			return "Yes"
		}
		return "No"
	default:
		if truthyTokens[strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))] {
			return "Yes"
		}
		return "No"
	}
}

// FormatFollowUp renders a follow-up date in DD-MM-YYYY. Text that
// matches none of the accepted layouts passes through trimmed rather
// than being guessed at; absent input becomes "NA".
func FormatFollowUp(dateText string) string {
	if dateText == "" {
		return placeholderNA
	}
	cleaned := strings.TrimSpace(dateText)
	for _, layout := range followUpLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.Format(followUpLayouts[0])
		}
	}
	return cleaned
}

// Generate renders the full summary for a request: normalize, decide,
// render.
func Generate(req *models.SummaryRequest) string {
	stockYesNo := NormalizeYesNo(req.StockAvailable)
	resolution, reason := Decide(req.IssueType, req.VOC, stockYesNo)
	return Render(req, resolution, reason)
}

// Render assembles the seven-field summary block. Field labels, order
// and the blank line between fields are part of the output contract.
func Render(req *models.SummaryRequest, resolution, reason string) string {
	dpSMCall := strings.TrimSpace(req.DPSMCall)
	if dpSMCall == "" {
		dpSMCall = placeholderNA
	}

	lines := []string{
		"Brief summary of customer concern: " + concernHeadline(req.IssueType, req.VOC),
		"\nDP/SM call: " + dpSMCall,
		"\nResolution shared along with the reason: " + reason,
		"\nStock/Slot Available: " + NormalizeYesNo(req.StockAvailable),
		"\nOffered resolution: " + resolution,
		// The customer's reaction is never derived from input.
		"\nCustomer response: Pending",
		"\nFollow up – date and time: " + FormatFollowUp(req.FollowUpDate),
	}
	return strings.Join(lines, "\n")
}

// concernHeadline picks the first summary field: a fixed compound phrase
// for accidental orders, otherwise the issue type itself.
func concernHeadline(issueType, voc string) string {
	if detectTags(issueType + " " + voc)[tagOrderedByMistake] {
		return "Ordered by Mistake / By mistake ordered / Service No"
	}
	if trimmed := strings.TrimSpace(issueType); trimmed != "" {
		return trimmed
	}
	return ResolutionServiceNo
}
