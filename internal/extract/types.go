package extract

import "errors"

// Method identifies which extraction strategy produced a Result.
type Method string

const (
	MethodTextLayer Method = "text-layer"
	MethodOCRPDF    Method = "ocr-pdf"
	MethodOCRImage  Method = "ocr-image"
	MethodDocxText  Method = "docx-text"
	MethodAcroForm  Method = "acroform"
)

// Result is the outcome of document extraction. Exactly one of Text or
// Fields is populated: Fields when the document exposes fillable form
// widgets (Method == MethodAcroForm), Text otherwise.
type Result struct {
	Method Method      `json:"method"`
	Text   string      `json:"text,omitempty"`
	Fields []FormField `json:"fields,omitempty"`
}

// IsFields reports whether the result carries structured form fields.
func (r *Result) IsFields() bool {
	return r.Method == MethodAcroForm
}

// FormField is one fillable form widget recovered from document metadata.
type FormField struct {
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Label string     `json:"label"`
	Rect  [4]float64 `json:"rect"`
	Page  int        `json:"page"`
}

// Sentinel errors surfaced to callers. Both are wrapped with detail at the
// point of failure.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrCorruptDocument   = errors.New("document cannot be opened")
)

// supportedExtensions is the closed set of accepted declared extensions.
var supportedExtensions = map[string]bool{
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"docx": true,
}
