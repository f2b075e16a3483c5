// Package paperwork orchestrates document extraction and action-step
// synthesis into the operations a transport layer exposes.
package paperwork

import (
	"context"
	"fmt"

	"github.com/paperpilot/paperpilot/internal/analysis"
	"github.com/paperpilot/paperpilot/internal/extract"
)

// Service wires the extractor to the analysis pipeline. Every request is a
// self-contained synchronous run; no state is shared across calls beyond the
// OCR engine singleton inside the extractor.
type Service struct {
	extractor *extract.Service
}

// NewService creates a paperwork service.
func NewService(extractor *extract.Service) *Service {
	return &Service{extractor: extractor}
}

// AnalyzeDocumentRequest asks for a full pipeline run over one document.
type AnalyzeDocumentRequest struct {
	Path      string
	Extension string
	Context   *analysis.Context
}

// AnalyzeDocumentResult is the pipeline output plus extraction provenance.
type AnalyzeDocumentResult struct {
	Path   string               `json:"path"`
	Method extract.Method       `json:"method"`
	Plan   *analysis.ActionPlan `json:"plan"`
}

// AnalyzeDocument extracts the document and synthesizes an action plan,
// tagged with applicability from the supplied context answers. Extraction
// that yields nothing is not an error: the plan comes back with zero steps.
func (s *Service) AnalyzeDocument(ctx context.Context, req AnalyzeDocumentRequest) (*AnalyzeDocumentResult, error) {
	result, err := s.extractor.Extract(ctx, req.Path, req.Extension)
	if err != nil {
		return nil, err
	}

	var plan *analysis.ActionPlan
	if result.IsFields() {
		plan = analysis.SynthesizeFormFields(result.Fields)
	} else {
		plan = analysis.Analyze(result.Text, req.Context)
	}
	plan.Steps = analysis.TagApplicability(plan.Steps, req.Context)

	return &AnalyzeDocumentResult{
		Path:   req.Path,
		Method: result.Method,
		Plan:   plan,
	}, nil
}

// ExtractDocumentRequest asks for raw extraction only.
type ExtractDocumentRequest struct {
	Path      string
	Extension string
}

// ExtractDocument runs only the extraction fallback chain, for callers that
// want the raw text or field structure without synthesis.
func (s *Service) ExtractDocument(ctx context.Context, req ExtractDocumentRequest) (*extract.Result, error) {
	return s.extractor.Extract(ctx, req.Path, req.Extension)
}

// ValidateAnswerRequest carries one field answer to check.
type ValidateAnswerRequest struct {
	Field  string
	Answer string
}

// ValidateAnswer checks one submitted answer. Validation failures are
// values, never errors.
func (s *Service) ValidateAnswer(req ValidateAnswerRequest) (analysis.Validation, error) {
	if req.Field == "" {
		return analysis.Validation{}, fmt.Errorf("field cannot be empty")
	}
	return analysis.ValidateAnswer(req.Field, req.Answer), nil
}

// ContextQuestions returns the fixed applicability questionnaire.
func (s *Service) ContextQuestions() []analysis.Question {
	return analysis.Questions()
}
