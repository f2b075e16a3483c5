package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractTextLayer pulls embedded text from every page, joining non-blank
// pages with a newline in page order.
func extractTextLayer(filePath string) (string, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails.
			continue
		}

		content = strings.TrimSpace(content)
		if content != "" {
			pages = append(pages, content)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// pageCount returns the number of pages via the text-layer reader.
func pageCount(filePath string) (int, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return pdfReader.NumPage(), nil
}
