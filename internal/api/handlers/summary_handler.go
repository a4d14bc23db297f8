package handlers

import (
	"lobsum/internal/dto"
	"lobsum/internal/models"
	"lobsum/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Generate renders the LOB summary for an interaction and attaches the
// advisory knowledge-base validation.
func (h *SummaryHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp := h.summaryService.Generate(&models.SummaryRequest{
		IssueType:      req.IssueType,
		VOC:            req.VOC,
		StockAvailable: req.StockAvailable,
		FollowUpDate:   req.FollowUpDate,
		DPSMCall:       req.DPSMCall,
	})
	return c.JSON(resp)
}
