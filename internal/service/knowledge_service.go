package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"lobsum/internal/dto"
	"lobsum/internal/knowledge"
	"lobsum/internal/metrics"
	"lobsum/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxValidationExamples = 3

// KnowledgeService owns the active knowledge base. The base itself is
// immutable; Reload builds a complete new instance and publishes it with
// a single atomic swap, so concurrent readers never observe a partially
// built base.
type KnowledgeService struct {
	kb         atomic.Pointer[models.KnowledgeBase]
	mu         sync.Mutex // guards sourcePath
	sourcePath string
	uploadDir  string
	logger     *zap.Logger
}

func NewKnowledgeService(sourcePath, uploadDir string, logger *zap.Logger) *KnowledgeService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	s := &KnowledgeService{
		uploadDir: uploadDir,
		logger:    logger,
	}
	s.publish(resolveSourcePath(sourcePath))
	return s
}

// Current returns the active knowledge base.
func (s *KnowledgeService) Current() *models.KnowledgeBase {
	return s.kb.Load()
}

// SourcePath returns the path of the source the active base was built from.
func (s *KnowledgeService) SourcePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourcePath
}

// Reload rebuilds the knowledge base from a new source file and swaps it
// in. Unlike the initial load, a missing file is an error here: callers
// explicitly named the file, so degrading silently would hide their mistake.
func (s *KnowledgeService) Reload(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sop source not found at %s: %w", path, err)
	}
	s.publish(path)
	return nil
}

// publish builds a fresh base from path and atomically replaces the
// active instance. Parse failures degrade to the fixed fallback base.
func (s *KnowledgeService) publish(path string) {
	kb := s.build(path)

	s.mu.Lock()
	s.sourcePath = path
	s.mu.Unlock()
	s.kb.Store(kb)
}

func (s *KnowledgeService) build(path string) *models.KnowledgeBase {
	rows, err := knowledge.ReadRows(path)
	if err != nil {
		if errors.Is(err, knowledge.ErrSourceUnreadable) {
			s.logger.Warn("SOP source unreadable, using fallback knowledge base",
				zap.String("path", path), zap.Error(err))
		} else {
			s.logger.Warn("SOP source malformed, using fallback knowledge base",
				zap.String("path", path), zap.Error(err))
		}
		metrics.KnowledgeReloads.WithLabelValues("fallback").Inc()
		return knowledge.Fallback()
	}

	kb := knowledge.Build(rows)
	s.logger.Info("Knowledge base built",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
		zap.Int("issue_types", kb.Len()),
	)
	metrics.KnowledgeReloads.WithLabelValues("loaded").Inc()
	return kb
}

// IssueTypes returns all known issue-type labels.
func (s *KnowledgeService) IssueTypes() []string {
	return s.Current().IssueTypes()
}

// Info describes the active knowledge base and its source.
func (s *KnowledgeService) Info() *dto.SourceInfoResponse {
	kb := s.Current()
	return &dto.SourceInfoResponse{
		TotalIssueTypes: kb.Len(),
		CSVFile:         s.SourcePath(),
		IssueTypes:      kb.IssueTypes(),
		Status:          "loaded",
	}
}

// Validate looks up a single issue-type label. An unknown label is not
// an error: the response carries the known labels as suggestions.
func (s *KnowledgeService) Validate(issueType string) *dto.ValidateIssueTypeResponse {
	kb := s.Current()
	entry, ok := kb.Entry(issueType)
	if !ok {
		return &dto.ValidateIssueTypeResponse{
			IssueType:   issueType,
			Suggestions: kb.IssueTypes(),
		}
	}
	return &dto.ValidateIssueTypeResponse{
		IssueType:   issueType,
		Exists:      true,
		VOCExamples: entry.VOCExamples,
		Resolutions: &entry.Resolutions,
		SOPDetails:  entry.SOPDetails,
	}
}

// Validation cross-checks an interaction against the knowledge base and
// returns the advisory record, or nil when nothing matches. The matcher
// result is for human review only and never drives the resolution.
func (s *KnowledgeService) Validation(issueType, voc string) *dto.ValidationResponse {
	kb := s.Current()
	match, ok := knowledge.FindBestMatch(issueType+" "+voc, kb)
	if !ok {
		metrics.MatchLookups.WithLabelValues("unmatched").Inc()
		return nil
	}
	metrics.MatchLookups.WithLabelValues("matched").Inc()

	resp := &dto.ValidationResponse{
		MatchedIssueType:    match,
		SuggestedResolution: "Service No",
		VOCExamples:         []string{},
	}
	// A keyword hit can name an issue type the base does not carry;
	// the suggested resolution then stays at the default.
	if entry, ok := kb.Entry(match); ok {
		resp.SuggestedResolution = entry.Resolutions.ForTier(models.TierGold)
		resp.SOPDetails = entry.SOPDetails
		examples := entry.VOCExamples
		if len(examples) > maxValidationExamples {
			examples = examples[:maxValidationExamples]
		}
		resp.VOCExamples = append(resp.VOCExamples, examples...)
	}
	return resp
}

// UploadSource stores an uploaded SOP file and reloads the knowledge
// base from it.
func (s *KnowledgeService) UploadSource(file io.Reader, fileName string) (*dto.UploadCSVResponse, error) {
	storedName := uuid.New().String() + filepath.Ext(fileName)
	destination := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(destination)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(destination)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	if err := s.Reload(destination); err != nil {
		os.Remove(destination)
		return nil, err
	}

	return &dto.UploadCSVResponse{
		Message:         "CSV uploaded and loaded successfully",
		CSVFile:         destination,
		TotalIssueTypes: s.Current().Len(),
	}, nil
}

// resolveSourcePath probes the usual locations for the SOP source and
// returns the first one that exists. The input path is returned
// unchanged when nothing is found; the load then degrades to the
// fallback knowledge base.
func resolveSourcePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	candidates := []string{path, filepath.Join("..", path), filepath.Join("..", "..", path)}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
