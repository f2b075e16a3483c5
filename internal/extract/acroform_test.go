package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAcroFormFieldsMultiPage(t *testing.T) {
	// One widget near the bottom of page 1, one near the top of page 2. The
	// page-2 widget has the larger Y coordinate, so a sort ignoring pages
	// would put it first.
	path := writeAcroFormFixture(t, []acroWidget{
		{name: "page1_bottom", page: 1, rect: [4]float64{100, 100, 300, 116}},
		{name: "page2_top", page: 2, rect: [4]float64{100, 700, 300, 716}},
	})

	fields, err := extractAcroFormFields(path)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "page1_bottom", fields[0].Name)
	assert.Equal(t, 1, fields[0].Page)
	assert.Equal(t, "page2_top", fields[1].Name)
	assert.Equal(t, 2, fields[1].Page)

	for _, f := range fields {
		assert.Equal(t, "text", f.Type)
		assert.Equal(t, f.Name, f.Label, "missing TU falls back to the widget name")
	}
}

func TestExtractAcroFormFieldsSamePageOrder(t *testing.T) {
	// Within one page: top-to-bottom, then left-to-right.
	path := writeAcroFormFixture(t, []acroWidget{
		{name: "lower", page: 1, rect: [4]float64{80, 500, 200, 516}},
		{name: "upper_right", page: 1, rect: [4]float64{300, 700, 420, 716}},
		{name: "upper_left", page: 1, rect: [4]float64{80, 700, 200, 716}},
	})

	fields, err := extractAcroFormFields(path)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"upper_left", "upper_right", "lower"}, names)
}

func TestExtractAcroFormFieldsNoForm(t *testing.T) {
	path := writeAcroFormFixture(t, nil)

	fields, err := extractAcroFormFields(path)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

// acroWidget describes one text widget for the fixture builder.
type acroWidget struct {
	name string
	page int
	rect [4]float64
}

// writeAcroFormFixture assembles a minimal two-page PDF with the given
// widgets, computing xref offsets as objects are emitted. Object layout:
// 1 catalog, 2 page tree, 3-4 pages, 5+ widgets.
func writeAcroFormFixture(t *testing.T, widgets []acroWidget) string {
	t.Helper()

	pageAnnots := map[int][]string{}
	var fieldRefs []string
	for i, w := range widgets {
		objNr := 5 + i
		ref := fmt.Sprintf("%d 0 R", objNr)
		fieldRefs = append(fieldRefs, ref)
		pageAnnots[w.page] = append(pageAnnots[w.page], ref)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	totalObjs := 5 + len(widgets)
	offsets := make([]int, totalObjs)
	writeObj := func(nr int, body string) {
		offsets[nr] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	catalog := "<< /Type /Catalog /Pages 2 0 R >>"
	if len(widgets) > 0 {
		catalog = fmt.Sprintf("<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [%s] >> >>",
			joinRefs(fieldRefs))
	}
	writeObj(1, catalog)
	writeObj(2, "<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 /MediaBox [0 0 612 792] >>")

	for pageNr, objNr := 1, 3; pageNr <= 2; pageNr, objNr = pageNr+1, objNr+1 {
		body := "<< /Type /Page /Parent 2 0 R"
		if annots := pageAnnots[pageNr]; len(annots) > 0 {
			body += fmt.Sprintf(" /Annots [%s]", joinRefs(annots))
		}
		body += " >>"
		writeObj(objNr, body)
	}

	for i, w := range widgets {
		pageObj := 2 + w.page
		writeObj(5+i, fmt.Sprintf(
			"<< /Type /Annot /Subtype /Widget /FT /Tx /T (%s) /Rect [%g %g %g %g] /P %d 0 R >>",
			w.name, w.rect[0], w.rect[1], w.rect[2], w.rect[3], pageObj))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", totalObjs)
	buf.WriteString("0000000000 65535 f \n")
	for nr := 1; nr < totalObjs; nr++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[nr])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		totalObjs, xrefOffset)

	path := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func joinRefs(refs []string) string {
	out := ""
	for i, r := range refs {
		if i > 0 {
			out += " "
		}
		out += r
	}
	return out
}
