package models

// SummaryRequest is the input to the summary generation path.
// StockAvailable accepts a bool or a yes/no-like string; FollowUpDate and
// DPSMCall are optional.
type SummaryRequest struct {
	IssueType      string
	VOC            string
	StockAvailable interface{}
	FollowUpDate   string
	DPSMCall       string
}
