package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageName = "quote-link"

const (
	pdfMargin   = 18.0
	pdfAmountW  = 32.0
	pdfLineH    = 5.0
	pdfLineSkip = 2.0
)

// PDF writes the quote as a Letter-size PDF. When the invoice carries a
// QuoteURL a QR code linking to it is placed in the header.
func PDF(w io.Writer, inv *Invoice) error {
	pdf, err := buildPDF(inv)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(inv *Invoice) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetCreationDate(inv.Date)
	pdf.SetTitle(fmt.Sprintf("Quote %s", inv.Number()), true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	if inv.QuoteURL != "" {
		png, err := qrcode.Encode(inv.QuoteURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("failed to encode quote QR code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
		pdf.ImageOptions(qrImageName, pageW-right-28, 14, 28, 28, false, opts, 0, inv.QuoteURL)
	}

	if inv.BusinessName != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW, 6, tr(inv.BusinessName), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr("Quote "+inv.Number()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Date: "+inv.DateDisplay()), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, v := range []string{inv.Customer.Name, inv.Customer.Company, inv.Customer.Address, inv.Customer.Phone, inv.Customer.Email} {
		if v != "" {
			pdf.CellFormat(contentW, 5, tr(v), "", 1, "L", false, 0, "")
		}
	}
	if inv.Customer.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(contentW, pdfLineH, tr("Notes: "+inv.Customer.Notes), "", "L", false)
	}

	amountW := pdfAmountW
	for _, g := range inv.Groups {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 7, tr(g.Title), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range g.Lines {
			lineItemRow(pdf, tr(strings.TrimSpace(line.Content)), line.Amount, contentW)
		}
	}

	pdf.Ln(4)
	labelW := contentW - amountW
	for _, row := range [][2]string{
		{"Subtotal:", inv.SubtotalDisplay},
		{inv.TaxLabel + ":", inv.TaxDisplay},
		{"Total:", inv.TotalDisplay},
	} {
		style := ""
		if row[0] == "Total:" {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(labelW, 6, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(amountW, 6, row[1], "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Payment Instructions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, p := range inv.PaymentInstructions {
		pdf.MultiCell(contentW, 5, tr("- "+p), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to build quote PDF: %w", err)
	}
	return pdf, nil
}

// lineItemRow draws the amount beside the first line of content. The first
// line must fit on the current page so both land together; the content may
// then wrap onto following pages.
func lineItemRow(pdf *gofpdf.Fpdf, content, amount string, contentW float64) {
	_, pageH := pdf.GetPageSize()
	left, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+pdfLineH > pageH-bottom {
		pdf.AddPage()
	}
	y := pdf.GetY()
	pdf.SetXY(left+contentW-pdfAmountW, y)
	pdf.CellFormat(pdfAmountW, pdfLineH, amount, "", 0, "R", false, 0, "")
	pdf.SetXY(left, y)
	pdf.MultiCell(contentW-pdfAmountW, pdfLineH, content, "", "L", false)
	pdf.Ln(pdfLineSkip)
}
