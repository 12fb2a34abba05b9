package certificate

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/go-playground/validator/v10"
)

// CertificateData is the resolved input for one rendered certificate.
// IssueDate is injected by the caller so rendering stays a pure function
// of its inputs.
type CertificateData struct {
	RecipientName    string `validate:"required"`
	ClubName         string `validate:"required"`
	LevelNumber      int
	LevelTitle       string `validate:"required"`
	LevelDescription string `validate:"required"`
	IssueDate        time.Time
}

var validate = validator.New()

// snake-case names reported in ValidationError, keyed by struct field
var fieldNames = map[string]string{
	"RecipientName":    "recipient_name",
	"ClubName":         "club_name",
	"LevelTitle":       "level_title",
	"LevelDescription": "level_description",
}

// Render produces the fixed single-page A4 landscape certificate as PDF bytes.
// All coordinates are constants; there is no dynamic layout beyond wrapping
// the level description inside a fixed-width box.
func Render(data CertificateData) ([]byte, error) {
	trimmed := data
	trimmed.RecipientName = strings.TrimSpace(data.RecipientName)
	trimmed.ClubName = strings.TrimSpace(data.ClubName)
	trimmed.LevelTitle = strings.TrimSpace(data.LevelTitle)
	trimmed.LevelDescription = strings.TrimSpace(data.LevelDescription)

	if err := validate.Struct(trimmed); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			name := fieldNames[verrs[0].StructField()]
			if name == "" {
				name = verrs[0].StructField()
			}
			return nil, &ValidationError{Field: name}
		}
		return nil, &RenderError{Err: err}
	}

	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	// Identical inputs must produce identical bytes: pin the embedded metadata
	// dates and sort the internal resource catalogs, which fpdf otherwise
	// writes in map iteration order
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(trimmed.IssueDate)
	pdf.SetModificationDate(trimmed.IssueDate)
	pdf.SetTitle("Certificate of Achievement", false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Page background
	pdf.SetFillColor(102, 126, 234)
	pdf.Rect(0, 0, pageW, pageH, "F")

	// White panel with gold border frame
	pdf.SetLineWidth(10)
	pdf.SetDrawColor(240, 230, 140)
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(40, 40, pageW-80, pageH-80, "FD")

	centered := func(y, size float64, style string, r, g, b int, text string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.SetTextColor(r, g, b)
		pdf.SetXY(0, y)
		pdf.CellFormat(pageW, size+4, text, "", 0, "C", false, 0, "")
	}

	centered(80, 48, "", 44, 62, 80, "Certificate of Achievement")
	centered(140, 20, "", 127, 140, 141, "This is to certify that")
	centered(180, 42, "B", 102, 126, 234, trimmed.RecipientName)
	centered(240, 18, "", 52, 73, 94, "has successfully completed")
	centered(280, 32, "B", 231, 76, 60, fmt.Sprintf("Level %d: %s", trimmed.LevelNumber, trimmed.LevelTitle))

	// Level description wraps inside a fixed 400pt box centered on the page
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(52, 73, 94)
	pdf.SetXY((pageW-400)/2, 330)
	pdf.MultiCell(400, 22, trimmed.LevelDescription, "", "C", false)

	centered(380, 24, "B", 44, 62, 80, trimmed.ClubName)
	centered(450, 16, "", 127, 140, 141, "Issued on "+trimmed.IssueDate.Format("January 2, 2006"))

	// Signature rules with fixed captions
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(44, 62, 80)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(44, 62, 80)

	pdf.Line(50, 495, 250, 495)
	pdf.SetXY(50, 500)
	pdf.CellFormat(200, 18, "Club Admin", "", 0, "C", false, 0, "")

	pdf.Line(pageW-250, 495, pageW-50, 495)
	pdf.SetXY(pageW-250, 500)
	pdf.CellFormat(200, 18, "Platform Director", "", 0, "C", false, 0, "")

	// Seal
	pdf.SetLineWidth(3)
	pdf.SetDrawColor(218, 165, 32)
	pdf.SetFillColor(240, 230, 140)
	pdf.Circle(pageW-120, pageH-120, 50, "FD")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(44, 62, 80)
	pdf.SetXY(pageW-160, pageH-126)
	pdf.CellFormat(80, 14, "VERIFIED", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}
