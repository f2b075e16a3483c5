// Package extract recovers raw text or fillable-field structure from an
// uploaded document using an ordered chain of strategies.
//
// For PDFs the chain is: AcroForm widgets, then the embedded text layer,
// then OCR over rasterized pages. Images go straight to OCR and .docx files
// are read paragraph by paragraph. The first strategy that yields content
// wins and tags the result with its method.
package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/paperpilot/paperpilot/internal/ocr"
)

const (
	// maxOCRPages bounds how many pages are rasterized during OCR fallback.
	maxOCRPages = 10

	// enoughOCRText stops the page scan early once this much text has
	// accumulated.
	enoughOCRText = 4000
)

// Service performs document extraction. The zero-value engine means the
// process-wide OCR default is used, initialized lazily on first OCR call.
type Service struct {
	engine ocr.Engine
	raster *rasterizer
}

// NewService creates an extraction service using the default OCR engine and
// the given pdftoppm binary (empty means "pdftoppm" from PATH).
func NewService(pdftoppmBinary string) *Service {
	return &Service{raster: newRasterizer(pdftoppmBinary)}
}

// NewServiceWithEngine creates an extraction service with an explicit OCR
// engine. Used by tests and callers embedding their own recognition backend.
func NewServiceWithEngine(engine ocr.Engine, pdftoppmBinary string) *Service {
	return &Service{engine: engine, raster: newRasterizer(pdftoppmBinary)}
}

// Extract runs the fallback chain for the document at path. The declared
// extension decides the strategy set; extensions outside {pdf, png, jpg,
// jpeg, docx} fail with ErrUnsupportedFormat.
func (s *Service) Extract(ctx context.Context, path, declaredExtension string) (*Result, error) {
	ext := strings.ToLower(strings.TrimPrefix(declaredExtension, "."))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	switch ext {
	case "pdf":
		return s.extractPDF(ctx, path)
	case "png", "jpg", "jpeg":
		return s.extractImage(ctx, path)
	case "docx":
		return s.extractDocx(path)
	}
	return nil, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
}

// extractPDF applies the three-step fallback chain.
func (s *Service) extractPDF(ctx context.Context, path string) (*Result, error) {
	fields, formsErr := extractAcroFormFields(path)
	if formsErr == nil && len(fields) > 0 {
		return &Result{Method: MethodAcroForm, Fields: fields}, nil
	}

	text, textErr := extractTextLayer(path)
	if textErr != nil && formsErr != nil {
		// Neither backend could open the document.
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, textErr)
	}
	if textErr == nil && strings.TrimSpace(text) != "" {
		return &Result{Method: MethodTextLayer, Text: text}, nil
	}

	ocrText, err := s.ocrPDF(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Result{Method: MethodOCRPDF, Text: ocrText}, nil
}

// ocrPDF rasterizes a bounded number of pages and runs OCR on each. All
// raster artifacts live in one scratch directory removed on every exit path.
func (s *Service) ocrPDF(ctx context.Context, path string) (string, error) {
	pages, err := pageCount(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if pages > maxOCRPages {
		pages = maxOCRPages
	}

	engine, err := s.ocrEngine()
	if err != nil {
		return "", err
	}

	scratch, err := makeScratchDir()
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(scratch)

	var pageTexts []string
	total := 0
	for page := 1; page <= pages; page++ {
		imagePath, err := s.raster.renderPage(ctx, path, scratch, page)
		if err != nil {
			// A page that cannot be rendered contributes nothing.
			continue
		}

		words, err := engine.ReadText(ctx, imagePath)
		if err != nil {
			continue
		}

		text := ocr.FilterText(words)
		if text != "" {
			pageTexts = append(pageTexts, text)
			total += len(text)
		}
		if total > enoughOCRText {
			break
		}
	}

	return strings.Join(pageTexts, "\n"), nil
}

// extractImage runs OCR directly on the image file.
func (s *Service) extractImage(ctx context.Context, path string) (*Result, error) {
	engine, err := s.ocrEngine()
	if err != nil {
		return nil, err
	}

	words, err := engine.ReadText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	return &Result{Method: MethodOCRImage, Text: ocr.FilterText(words)}, nil
}

// extractDocx reads paragraph text from a .docx archive.
func (s *Service) extractDocx(path string) (*Result, error) {
	text, err := extractDocxText(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return &Result{Method: MethodDocxText, Text: text}, nil
}

func (s *Service) ocrEngine() (ocr.Engine, error) {
	if s.engine != nil {
		return s.engine, nil
	}
	return ocr.Default()
}
