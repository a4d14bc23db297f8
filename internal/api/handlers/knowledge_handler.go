package handlers

import (
	"path/filepath"
	"strings"

	"lobsum/internal/dto"
	"lobsum/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// IssueTypes returns all issue types together with the full knowledge base.
func (h *KnowledgeHandler) IssueTypes(c *fiber.Ctx) error {
	return c.JSON(&dto.IssueTypesResponse{
		IssueTypes:    h.knowledgeService.IssueTypes(),
		KnowledgeBase: h.knowledgeService.Current(),
	})
}

// SourceInfo describes the loaded SOP source.
func (h *KnowledgeHandler) SourceInfo(c *fiber.Ctx) error {
	return c.JSON(h.knowledgeService.Info())
}

// UploadCSV accepts a new SOP export and reloads the knowledge base from it.
func (h *KnowledgeHandler) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".csv" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only .csv files are supported",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.knowledgeService.UploadSource(src, file.Filename)
	if err != nil {
		h.logger.Error("Failed to upload SOP source", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload CSV",
		})
	}
	return c.JSON(resp)
}

// ValidateIssueType looks up one issue-type label in the knowledge base.
func (h *KnowledgeHandler) ValidateIssueType(c *fiber.Ctx) error {
	issueType, err := unescapeParam(c, "issueType")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid issue type",
		})
	}
	return c.JSON(h.knowledgeService.Validate(issueType))
}
