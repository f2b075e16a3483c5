// Package ocr provides optical character recognition for raster images.
//
// Recognition is delegated to an Engine implementation. The process-wide
// default engine is constructed lazily on first use and reused across calls
// because engine initialization is expensive relative to a single read.
package ocr

import (
	"context"
	"strings"
	"sync"
)

const (
	// MinConfidence is the lowest recognition confidence kept by FilterText.
	MinConfidence = 0.5

	// ShortTokenLimit is the text length below which a segment is kept
	// regardless of confidence. Confidence is unreliable on short strings
	// such as single form labels.
	ShortTokenLimit = 40
)

// Word is one recognized text segment with its bounding box and confidence.
// Box holds left, top, width, height in pixels. Confidence is in [0,1].
type Word struct {
	Box        [4]float64 `json:"box"`
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
}

// Engine recognizes text in a raster image file.
type Engine interface {
	ReadText(ctx context.Context, imagePath string) ([]Word, error)
}

// EngineFactory constructs an Engine. Replaceable for tests.
type EngineFactory func() (Engine, error)

var (
	defaultMu      sync.Mutex
	defaultEngine  Engine
	defaultFactory EngineFactory = func() (Engine, error) {
		return NewTesseract(""), nil
	}
)

// Default returns the process-wide engine, constructing it on first use.
// The guard prevents concurrent first calls from double-initializing.
func Default() (Engine, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine != nil {
		return defaultEngine, nil
	}

	engine, err := defaultFactory()
	if err != nil {
		return nil, err
	}
	defaultEngine = engine
	return defaultEngine, nil
}

// SetFactory replaces the engine factory and discards any constructed engine.
func SetFactory(factory EngineFactory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = factory
	defaultEngine = nil
}

// Reset discards the constructed engine so the next Default call rebuilds it.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = nil
}

// FilterText joins recognized segments into newline-separated text, dropping
// low-confidence segments. Short segments are kept unconditionally.
func FilterText(words []Word) string {
	var lines []string
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		if w.Confidence >= MinConfidence || len(text) < ShortTokenLimit {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
