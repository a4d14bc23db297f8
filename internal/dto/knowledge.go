package dto

import "lobsum/internal/models"

type IssueTypesResponse struct {
	IssueTypes    []string              `json:"issue_types"`
	KnowledgeBase *models.KnowledgeBase `json:"knowledge_base"`
}

type SourceInfoResponse struct {
	TotalIssueTypes int      `json:"total_issue_types"`
	CSVFile         string   `json:"csv_file"`
	IssueTypes      []string `json:"issue_types"`
	Status          string   `json:"status"`
}

type UploadCSVResponse struct {
	Message         string `json:"message"`
	CSVFile         string `json:"csv_file"`
	TotalIssueTypes int    `json:"total_issue_types"`
}

// ValidateIssueTypeResponse reports either the full knowledge-base entry
// for a label, or Exists=false with the known labels as suggestions.
type ValidateIssueTypeResponse struct {
	IssueType   string              `json:"issue_type"`
	Exists      bool                `json:"exists"`
	VOCExamples []string            `json:"voc_examples,omitempty"`
	Resolutions *models.Resolutions `json:"resolutions,omitempty"`
	SOPDetails  string              `json:"sop_details,omitempty"`
	Suggestions []string            `json:"suggestions,omitempty"`
}
