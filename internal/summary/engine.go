package summary

import "strings"

// The only resolutions the engine ever offers.
const (
	ResolutionReplacement = "Replacement"
	ResolutionServiceNo   = "Service No"
)

type tag string

const (
	tagOrderedByMistake tag = "ordered_by_mistake"
	tagOpened           tag = "opened"
	tagPDPMismatch      tag = "pdp_mismatch"
	tagDefective        tag = "defective"
)

type tagRule struct {
	tag      tag
	keywords []string
}

// tagRules maps keyword groups to issue tags. A text may carry several
// tags at once. tagOpened is detected but not consumed by the decision
// rule; it stays here pending an SOP clarification.
var tagRules = []tagRule{
	{tagOrderedByMistake, []string{"ordered by mistake", "by mistake", "accidentally ordered", "wrong product"}},
	{tagOpened, []string{"open", "opened", "unboxed"}},
	{tagPDPMismatch, []string{"wrong item", "expectation mismatch", "mismatch", "different from pdp", "pdp", "product mismatch"}},
	{tagDefective, []string{"defect", "defective", "damaged", "not working", "faulty"}},
}

func detectTags(text string) map[tag]bool {
	lowered := strings.ToLower(text)
	tags := make(map[tag]bool)
	for _, rule := range tagRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				tags[rule.tag] = true
				break
			}
		}
	}
	return tags
}

// Decide maps an interaction to the offered resolution and its reason
// text. Pure and deterministic; it never consults the knowledge base.
// stockYesNo must already be normalized to "Yes"/"No".
func Decide(issueType, voc, stockYesNo string) (resolution, reason string) {
	tags := detectTags(issueType + " " + voc)
	resolution = chooseResolution(tags, stockYesNo)
	return resolution, resolutionReason(resolution, tags)
}

// chooseResolution applies the SOP decision rules in priority order:
// an accidental order always ends in Service No regardless of stock;
// otherwise stock availability decides.
func chooseResolution(tags map[tag]bool, stockYesNo string) string {
	if tags[tagOrderedByMistake] {
		return ResolutionServiceNo
	}
	if tags[tagPDPMismatch] {
		return replacementIfInStock(stockYesNo)
	}
	if tags[tagDefective] {
		return replacementIfInStock(stockYesNo)
	}
	// No tag matched: same stock rule as above, kept as its own branch.
	if stockYesNo == "No" {
		return ResolutionServiceNo
	}
	return ResolutionReplacement
}

func replacementIfInStock(stockYesNo string) string {
	if stockYesNo == "Yes" {
		return ResolutionReplacement
	}
	return ResolutionServiceNo
}

// resolutionReason returns the justification text for a resolution and
// the tag that drove it. Combinations without a specific template fall
// back to a generic per-resolution reason.
func resolutionReason(resolution string, tags map[tag]bool) string {
	switch {
	case resolution == ResolutionServiceNo && tags[tagOrderedByMistake]:
		return "Service No – As per SOP for accidental orders, no RPU is initiated for unintended purchases. Customer advised politely."
	case resolution == ResolutionServiceNo && tags[tagPDPMismatch]:
		return "Service No – Replacement not possible due to stock/slot unavailability as per SOP."
	case resolution == ResolutionReplacement && tags[tagPDPMismatch]:
		return "Replacement – As per Wrong Item / Expectation Mismatch SOP where stock is available."
	case resolution == ResolutionReplacement && tags[tagDefective]:
		return "Replacement – As per SOP for defective/damaged items when stock is available."
	case resolution == ResolutionServiceNo && tags[tagDefective]:
		return "Service No – Stock/slot unavailable for replacement as per SOP."
	case resolution == ResolutionServiceNo:
		return "Service No – Applied per SOP based on the provided scenario."
	case resolution == ResolutionReplacement:
		return "Replacement – Applied per SOP when stock/slot is available."
	}
	return resolution + " – Applied per SOP."
}
