package models

import "encoding/json"

type Tier string

const (
	TierGold         Tier = "gold"
	TierSilverBronze Tier = "silver_bronze"
	TierNewIron      Tier = "new_iron"
)

// Resolutions holds the policy text for each service tier.
type Resolutions struct {
	Gold         string `json:"gold"`
	SilverBronze string `json:"silver_bronze"`
	NewIron      string `json:"new_iron"`
}

// ForTier returns the policy text for a tier, defaulting to "Service No"
// for unrecognized tiers.
func (r Resolutions) ForTier(tier Tier) string {
	switch tier {
	case TierGold:
		return r.Gold
	case TierSilverBronze:
		return r.SilverBronze
	case TierNewIron:
		return r.NewIron
	default:
		return "Service No"
	}
}

// KnowledgeEntry is everything the knowledge base holds for one issue type.
type KnowledgeEntry struct {
	VOCExamples []string    `json:"voc_examples"`
	Resolutions Resolutions `json:"resolutions"`
	SOPDetails  string      `json:"sop_details"`
}

// KnowledgeBase maps issue-type labels to their SOP-derived entries.
// Insertion order is preserved; the matcher's tie-breaking depends on it.
// A built knowledge base is treated as immutable: reloads construct a new
// instance rather than mutating one that may be concurrently read.
type KnowledgeBase struct {
	order   []string
	entries map[string]*KnowledgeEntry
}

func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{entries: make(map[string]*KnowledgeEntry)}
}

// Merge folds one source row's worth of data into the base. The first row
// to introduce an issue type fixes its resolutions and SOP details;
// later rows for the same issue type only extend the VOC examples.
func (kb *KnowledgeBase) Merge(issueType string, examples []string, resolutions Resolutions, sopDetails string) {
	entry, ok := kb.entries[issueType]
	if !ok {
		entry = &KnowledgeEntry{
			VOCExamples: []string{},
			Resolutions: resolutions,
			SOPDetails:  sopDetails,
		}
		kb.entries[issueType] = entry
		kb.order = append(kb.order, issueType)
	}
	entry.VOCExamples = append(entry.VOCExamples, examples...)
}

// Entry returns the entry for an issue type, if present.
func (kb *KnowledgeBase) Entry(issueType string) (*KnowledgeEntry, bool) {
	entry, ok := kb.entries[issueType]
	return entry, ok
}

// IssueTypes returns all issue-type labels in insertion order.
func (kb *KnowledgeBase) IssueTypes() []string {
	out := make([]string, len(kb.order))
	copy(out, kb.order)
	return out
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.order)
}

func (kb *KnowledgeBase) MarshalJSON() ([]byte, error) {
	return json.Marshal(kb.entries)
}
