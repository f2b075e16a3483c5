package extract

import (
	"fmt"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// extractAcroFormFields returns all named fillable form widgets in the PDF,
// in page-then-visual order. Widgets without a name entry are skipped.
// Returns nil, nil when the document has no AcroForm dictionary.
func extractAcroFormFields(filePath string) ([]FormField, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, nil
	}
	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return nil, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return nil, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	pages := buildPageIndex(ctx)

	var fields []FormField
	for _, fieldRef := range fieldsArray {
		fields = collectFields(ctx, pages, fieldRef, fields)
	}

	sortFieldsByPosition(fields)
	return fields, nil
}

// pageIndex resolves which page a widget annotation sits on. Widgets are
// listed in their page's Annots array; annotations may also point back at
// the page via their P entry.
type pageIndex struct {
	annotPage map[int]int
	pageNr    map[int]int
}

func buildPageIndex(ctx *model.Context) pageIndex {
	idx := pageIndex{annotPage: map[int]int{}, pageNr: map[int]int{}}

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageDict, pageRef, _, err := ctx.PageDict(pageNr, false)
		if err != nil || pageDict == nil {
			continue
		}
		if pageRef != nil {
			idx.pageNr[pageRef.ObjectNumber.Value()] = pageNr
		}

		annotsObj, found := pageDict.Find("Annots")
		if !found {
			continue
		}
		annots, err := ctx.DereferenceArray(annotsObj)
		if err != nil {
			continue
		}
		for _, annot := range annots {
			if ref, ok := annot.(types.IndirectRef); ok {
				idx.annotPage[ref.ObjectNumber.Value()] = pageNr
			}
		}
	}

	return idx
}

// pageFor locates the field's page: the field's own annotation ref first
// (merged field/widget), then its widget kids, then the P back-reference.
func (idx pageIndex) pageFor(ctx *model.Context, fieldObj types.Object, fieldDict types.Dict) int {
	if ref, ok := fieldObj.(types.IndirectRef); ok {
		if nr, ok := idx.annotPage[ref.ObjectNumber.Value()]; ok {
			return nr
		}
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil {
			for _, kid := range kidsArray {
				if ref, ok := kid.(types.IndirectRef); ok {
					if nr, ok := idx.annotPage[ref.ObjectNumber.Value()]; ok {
						return nr
					}
				}
			}
		}
	}

	if pObj, found := fieldDict.Find("P"); found {
		if ref, ok := pObj.(types.IndirectRef); ok {
			if nr, ok := idx.pageNr[ref.ObjectNumber.Value()]; ok {
				return nr
			}
		}
	}

	return 1
}

// collectFields walks one entry of the field tree, recursing into Kids that
// are themselves fields (they carry their own T entry).
func collectFields(ctx *model.Context, pages pageIndex, fieldObj types.Object, acc []FormField) []FormField {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil || fieldDict == nil {
		return acc
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil {
			recursed := false
			for _, kid := range kidsArray {
				if kidDict, err := ctx.DereferenceDict(kid); err == nil && kidDict != nil {
					if _, hasName := kidDict.Find("T"); hasName {
						acc = collectFields(ctx, pages, kid, acc)
						recursed = true
					}
				}
			}
			if recursed {
				return acc
			}
		}
	}

	if field := buildField(ctx, fieldDict); field != nil {
		field.Page = pages.pageFor(ctx, fieldObj, fieldDict)
		acc = append(acc, *field)
	}
	return acc
}

// buildField converts a terminal field dictionary into a FormField.
// Unnamed widgets return nil.
func buildField(ctx *model.Context, fieldDict types.Dict) *FormField {
	field := &FormField{Page: 1}

	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			field.Name = name
		}
	}
	if field.Name == "" {
		return nil
	}

	field.Type = fieldTypeName(ctx, fieldDict)

	// TU is the human-readable alternate name; fall back to the widget name.
	field.Label = field.Name
	if labelObj, found := fieldDict.Find("TU"); found {
		if label, err := ctx.DereferenceStringOrHexLiteral(labelObj, model.V10, nil); err == nil && label != "" {
			field.Label = label
		}
	}

	field.Rect = widgetRect(ctx, fieldDict)
	return field
}

// fieldTypeName resolves the FT entry, checking the parent when inherited.
func fieldTypeName(ctx *model.Context, fieldDict types.Dict) string {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return fieldTypeName(ctx, parentDict)
			}
		}
		return "unknown"
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return "unknown"
	}

	switch ftName {
	case "Tx":
		return "text"
	case "Btn":
		return "button"
	case "Ch":
		return "choice"
	case "Sig":
		return "signature"
	default:
		return "unknown"
	}
}

// widgetRect reads the field's Rect, falling back to its first widget kid.
func widgetRect(ctx *model.Context, fieldDict types.Dict) [4]float64 {
	if rectObj, found := fieldDict.Find("Rect"); found {
		if rect, ok := parseRect(ctx, rectObj); ok {
			return rect
		}
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil && len(kidsArray) > 0 {
			if widgetDict, err := ctx.DereferenceDict(kidsArray[0]); err == nil && widgetDict != nil {
				if rectObj, found := widgetDict.Find("Rect"); found {
					if rect, ok := parseRect(ctx, rectObj); ok {
						return rect
					}
				}
			}
		}
	}

	return [4]float64{}
}

func parseRect(ctx *model.Context, rectObj types.Object) ([4]float64, bool) {
	rectArray, err := ctx.DereferenceArray(rectObj)
	if err != nil || len(rectArray) != 4 {
		return [4]float64{}, false
	}

	var rect [4]float64
	for i, coord := range rectArray {
		if f, err := ctx.DereferenceNumber(coord); err == nil {
			rect[i] = f
		}
	}
	return rect, true
}

// sortFieldsByPosition orders fields by page, then top-to-bottom,
// left-to-right. PDF coordinates grow upward, so a larger upper Y sorts
// first within a page.
func sortFieldsByPosition(fields []FormField) {
	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i], fields[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Rect[3] != b.Rect[3] {
			return a.Rect[3] > b.Rect[3]
		}
		return a.Rect[0] < b.Rect[0]
	})
}
