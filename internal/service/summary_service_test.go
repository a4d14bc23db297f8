package service

import (
	"path/filepath"
	"strings"
	"testing"

	"lobsum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSummaryService(t *testing.T) *SummaryService {
	t.Helper()
	knowledgeService := newTestService(t, writeSampleCSV(t, sampleCSV))
	return NewSummaryService(knowledgeService, zap.NewNop())
}

func TestSummaryService_Generate(t *testing.T) {
	svc := newTestSummaryService(t)

	t.Run("pdp issue without stock", func(t *testing.T) {
		resp := svc.Generate(&models.SummaryRequest{
			IssueType:      "PDP Issues",
			VOC:            "item looks different from pdp",
			StockAvailable: "No",
		})

		assert.Contains(t, resp.Summary, "Offered resolution: Service No")
		assert.Contains(t, resp.Summary, "stock/slot unavailability")

		require.NotNil(t, resp.CSVValidation)
		assert.Equal(t, "PDP Issues", resp.CSVValidation.MatchedIssueType)
		assert.Equal(t, "Replacement", resp.CSVValidation.SuggestedResolution)
	})

	t.Run("mistake rule beats stock availability", func(t *testing.T) {
		resp := svc.Generate(&models.SummaryRequest{
			IssueType:      "Ordered by Mistake",
			VOC:            "I accidentally ordered the wrong product",
			StockAvailable: "Yes",
		})

		assert.Contains(t, resp.Summary, "Offered resolution: Service No")
		require.NotNil(t, resp.CSVValidation)
		assert.Equal(t, "Ordered by Mistake", resp.CSVValidation.MatchedIssueType)
	})

	t.Run("validation is advisory only", func(t *testing.T) {
		// No match for the advisory path, summary still renders.
		resp := svc.Generate(&models.SummaryRequest{
			IssueType:      "zzz",
			VOC:            "qqq",
			StockAvailable: true,
		})

		assert.Nil(t, resp.CSVValidation)
		assert.Contains(t, resp.Summary, "Offered resolution: Replacement")
	})

	t.Run("boolean stock accepted", func(t *testing.T) {
		resp := svc.Generate(&models.SummaryRequest{
			IssueType:      "PDP Issues",
			VOC:            "item looks different from pdp",
			StockAvailable: true,
		})
		assert.Contains(t, resp.Summary, "Stock/Slot Available: Yes")
		assert.Contains(t, resp.Summary, "Offered resolution: Replacement")
	})
}

func TestSummaryService_GenerateWithFallbackBase(t *testing.T) {
	knowledgeService := newTestService(t, filepath.Join(t.TempDir(), "missing.csv"))
	svc := NewSummaryService(knowledgeService, zap.NewNop())

	resp := svc.Generate(&models.SummaryRequest{
		IssueType:      "Ordered by Mistake",
		VOC:            "I accidentally ordered the wrong product",
		StockAvailable: "Yes",
		FollowUpDate:   "2024-01-05",
	})

	assert.Contains(t, resp.Summary, "Follow up – date and time: 05-01-2024")
	require.NotNil(t, resp.CSVValidation)
	assert.Equal(t, "Ordered by Mistake", resp.CSVValidation.MatchedIssueType)
	assert.Equal(t, "Service No", resp.CSVValidation.SuggestedResolution)
	assert.Len(t, resp.CSVValidation.VOCExamples, 3)

	// Field count sanity: seven labeled fields separated by blank lines.
	assert.Equal(t, 7, len(strings.Split(resp.Summary, "\n\n")))
}
