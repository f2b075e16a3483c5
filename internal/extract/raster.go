package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// rasterizer renders PDF pages to PNG files using pdftoppm (poppler-utils).
type rasterizer struct {
	binary string
	dpi    int
}

func newRasterizer(binary string) *rasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return &rasterizer{binary: binary, dpi: 150}
}

// renderPage renders a single page into dir and returns the PNG path.
// The caller owns dir and removes it when the extraction call ends.
func (r *rasterizer) renderPage(ctx context.Context, pdfPath, dir string, page int) (string, error) {
	outputPrefix := filepath.Join(dir, fmt.Sprintf("page_%04d", page))

	// -singlefile keeps pdftoppm from appending a page number suffix.
	pageStr := fmt.Sprintf("%d", page)
	cmd := exec.CommandContext(ctx, r.binary,
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", fmt.Sprintf("%d", r.dpi),
		"-singlefile",
		pdfPath,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	imagePath := outputPrefix + ".png"
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}

	return imagePath, nil
}

// makeScratchDir creates a uniquely named temp directory for one extraction
// call's raster artifacts.
func makeScratchDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "paperpilot-raster-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create scratch dir: %w", err)
	}
	return dir, nil
}
