package dto

type GenerateRequest struct {
	IssueType      string      `json:"issue_type"`
	VOC            string      `json:"voc"`
	StockAvailable interface{} `json:"stock_available"`
	FollowUpDate   string      `json:"follow_up_date,omitempty"`
	DPSMCall       string      `json:"dp_sm_call,omitempty"`
}

// ValidationResponse is the advisory cross-check of a request against
// the knowledge base. It never feeds back into the offered resolution.
type ValidationResponse struct {
	MatchedIssueType    string   `json:"matched_issue_type"`
	SuggestedResolution string   `json:"suggested_resolution"`
	SOPDetails          string   `json:"sop_details"`
	VOCExamples         []string `json:"voc_examples"`
}

type GenerateResponse struct {
	Summary       string              `json:"summary"`
	CSVValidation *ValidationResponse `json:"csv_validation,omitempty"`
}
