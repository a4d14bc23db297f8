package models

// SOPRow is one row of the tabular SOP source, cell text verbatim.
type SOPRow struct {
	Nodes        string
	SubTypeVOC   string
	Gold         string
	SilverBronze string
	NewIron      string
}
