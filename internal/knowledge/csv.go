package knowledge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"lobsum/internal/models"
)

// Fixed column names of the SOP export. Header cells are trimmed before
// matching; cells in unknown columns are ignored, missing columns read
// as empty.
const (
	colNodes        = "Nodes"
	colSubTypeVOC   = "Sub-type / VOC"
	colGold         = "Gold"
	colSilverBronze = "Silver & Bronze"
	colNewIron      = "New & Iron"
)

var (
	// ErrSourceUnreadable means the source file could not be opened.
	ErrSourceUnreadable = errors.New("sop source unreadable")
	// ErrSourceMalformed means the source file is not valid CSV.
	ErrSourceMalformed = errors.New("sop source malformed")
)

// ReadRows reads the tabular SOP source. Cell text is returned verbatim;
// all skipping and normalization happens in Build. Both error kinds
// degrade to the fallback knowledge base at the service layer.
func ReadRows(path string) ([]models.SOPRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrSourceMalformed)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]models.SOPRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, models.SOPRow{
			Nodes:        cell(record, colNodes),
			SubTypeVOC:   cell(record, colSubTypeVOC),
			Gold:         cell(record, colGold),
			SilverBronze: cell(record, colSilverBronze),
			NewIron:      cell(record, colNewIron),
		})
	}
	return rows, nil
}
