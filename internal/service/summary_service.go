package service

import (
	"lobsum/internal/dto"
	"lobsum/internal/metrics"
	"lobsum/internal/models"
	"lobsum/internal/summary"

	"go.uber.org/zap"
)

// SummaryService produces the rendered summary plus the advisory
// knowledge-base validation. The two paths are independent heuristics
// over the same text: the validation result never changes the summary.
type SummaryService struct {
	knowledgeService *KnowledgeService
	logger           *zap.Logger
}

func NewSummaryService(knowledgeService *KnowledgeService, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// Generate renders the summary for a request. Always succeeds: the
// decision and formatting are total functions over their inputs.
func (s *SummaryService) Generate(req *models.SummaryRequest) *dto.GenerateResponse {
	stockYesNo := summary.NormalizeYesNo(req.StockAvailable)
	resolution, reason := summary.Decide(req.IssueType, req.VOC, stockYesNo)
	rendered := summary.Render(req, resolution, reason)

	validation := s.knowledgeService.Validation(req.IssueType, req.VOC)

	metrics.SummariesGenerated.WithLabelValues(resolution).Inc()
	s.logger.Info("Summary generated",
		zap.String("issue_type", req.IssueType),
		zap.String("resolution", resolution),
		zap.Bool("matched", validation != nil),
	)

	return &dto.GenerateResponse{
		Summary:       rendered,
		CSVValidation: validation,
	}
}
