package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Tesseract runs the tesseract CLI and parses its TSV output into line
// segments. One Word is emitted per recognized line, with the line's words
// joined by spaces and the confidence averaged over them.
type Tesseract struct {
	binary string
}

// NewTesseract creates a tesseract-backed engine. An empty binary name uses
// "tesseract" from PATH.
func NewTesseract(binary string) *Tesseract {
	if binary == "" {
		binary = "tesseract"
	}
	return &Tesseract{binary: binary}
}

// ReadText recognizes text in the given image file.
func (t *Tesseract) ReadText(ctx context.Context, imagePath string) ([]Word, error) {
	cmd := exec.CommandContext(ctx, t.binary, imagePath, "stdout", "tsv")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tesseract failed: %w (output: %s)", err, stderr.String())
	}

	return parseTSV(stdout.String()), nil
}

// tsv column indices for tesseract's TSV output format.
const (
	tsvBlockNum = 2
	tsvParNum   = 3
	tsvLineNum  = 4
	tsvLeft     = 6
	tsvTop      = 7
	tsvWidth    = 8
	tsvHeight   = 9
	tsvConf     = 10
	tsvText     = 11
)

type lineAccum struct {
	key   string
	words []string
	conf  float64
	count int
	box   [4]float64
}

// parseTSV groups word rows by (block, paragraph, line) and merges each
// group into one segment.
func parseTSV(output string) []Word {
	var (
		segments []Word
		current  *lineAccum
	)

	flush := func() {
		if current == nil || current.count == 0 {
			return
		}
		segments = append(segments, Word{
			Box:        current.box,
			Text:       strings.Join(current.words, " "),
			Confidence: current.conf / float64(current.count) / 100.0,
		})
		current = nil
	}

	for i, line := range strings.Split(output, "\n") {
		if i == 0 {
			// Header row.
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) <= tsvText {
			continue
		}

		conf, err := strconv.ParseFloat(cols[tsvConf], 64)
		if err != nil || conf < 0 {
			// Non-word rows (page/block/line markers) carry conf -1.
			continue
		}

		text := strings.TrimSpace(cols[tsvText])
		if text == "" {
			continue
		}

		key := cols[tsvBlockNum] + "/" + cols[tsvParNum] + "/" + cols[tsvLineNum]
		if current == nil || current.key != key {
			flush()
			current = &lineAccum{key: key, box: parseBox(cols)}
		}
		current.words = append(current.words, text)
		current.conf += conf
		current.count++
	}
	flush()

	return segments
}

func parseBox(cols []string) [4]float64 {
	var box [4]float64
	for i, col := range []int{tsvLeft, tsvTop, tsvWidth, tsvHeight} {
		if v, err := strconv.ParseFloat(cols[col], 64); err == nil {
			box[i] = v
		}
	}
	return box
}
