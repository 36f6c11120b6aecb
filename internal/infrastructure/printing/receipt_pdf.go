package printing

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	DefaultBusinessName = "Graphic Designer Portfolio"

	pageMargin = 50.0
	fontFamily = "Helvetica"
)

// PDFReceiptRenderer paints receipt layouts onto a Letter page with core fonts.
//
// Core fonts only encode cp1252. Characters outside it (Cyrillic, CJK, emoji)
// are printed as '?' rather than embedding a UTF-8 font.
//
// Output is deterministic: compression is off and the PDF dates come from the
// record, so the same record always yields the same bytes.
type PDFReceiptRenderer struct {
	businessName string
}

var _ interfaces.IReceiptRenderer = (*PDFReceiptRenderer)(nil)

func NewPDFReceiptRenderer(businessName string) *PDFReceiptRenderer {
	if businessName == "" {
		businessName = DefaultBusinessName
	}
	return &PDFReceiptRenderer{businessName: businessName}
}

func (p *PDFReceiptRenderer) Render(r entities.ReceiptRequest) ([]byte, error) {
	lines, err := Layout(r, p.businessName)
	if err != nil {
		return nil, err
	}

	stamp := r.CreatedAt.UTC()
	if stamp.IsZero() {
		stamp = time.Unix(0, 0).UTC()
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle("Receipt "+r.ReceiptNumber(), true)
	pdf.SetCreator(p.businessName, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range lines {
		paintLine(pdf, tr, line)
	}

	if err := pdf.Error(); err != nil {
		return nil, &RenderError{Field: "document", Reason: "layout failed", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func paintLine(pdf *fpdf.Fpdf, tr func(string) string, line Line) {
	if line.SpaceBefore > 0 {
		pdf.Ln(line.SpaceBefore)
	}
	style := ""
	if line.Bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, line.Size)
	height := line.Size * 1.4
	if line.Wrap {
		pdf.MultiCell(0, height, tr(coreFontText(line.Text)), "", string(line.Align), false)
		return
	}
	pdf.CellFormat(0, height, tr(coreFontText(line.Text)), "", 1, string(line.Align), false, 0, "")
}

// cp1252Specials are the non-Latin-1 runes cp1252 maps into 0x80-0x9F.
var cp1252Specials = map[rune]bool{
	'\u20AC': true, '\u201A': true, '\u0192': true, '\u201E': true, '\u2026': true,
	'\u2020': true, '\u2021': true, '\u02C6': true, '\u2030': true, '\u0160': true,
	'\u2039': true, '\u0152': true, '\u017D': true, '\u2018': true, '\u2019': true,
	'\u201C': true, '\u201D': true, '\u2022': true, '\u2013': true, '\u2014': true,
	'\u02DC': true, '\u2122': true, '\u0161': true, '\u203A': true, '\u0153': true,
	'\u017E': true, '\u0178': true,
}

// coreFontText replaces every rune cp1252 cannot encode with '?'.
func coreFontText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 || (r >= 0xA0 && r <= 0xFF) || cp1252Specials[r] {
			return r
		}
		return '?'
	}, s)
}
