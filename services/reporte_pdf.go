package services

import (
	"bytes"
	"context"
	"fmt"
	"gestion_casos_go/models"
	"html"
	"os"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"gorm.io/gorm"
)

// getChromePath returns the Chrome executable path from environment variable
func getChromePath() string {
	return os.Getenv("CHROME_PATH")
}

// PDFOptions contains options for PDF generation
type PDFOptions struct {
	PageOrientation string // portrait, landscape
	PageSize        string // letter, legal, A4
	MarginTop       int    // points (72 = 1 inch)
	MarginBottom    int
	MarginLeft      int
	MarginRight     int
}

// DefaultPDFOptions returns default options for legal documents
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PageOrientation: "portrait",
		PageSize:        "letter",
		MarginTop:       72,
		MarginBottom:    72,
		MarginLeft:      72,
		MarginRight:     72,
	}
}

// GeneratePDF renders HTML content to PDF using headless Chrome
func GeneratePDF(htmlContent string, options PDFOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)

	// Custom Chrome path (headless-shell in Docker)
	if chromePath := getChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var paperWidth, paperHeight float64
	switch options.PageSize {
	case "legal":
		paperWidth = 8.5
		paperHeight = 14.0
	case "A4":
		paperWidth = 8.27
		paperHeight = 11.69
	default: // letter
		paperWidth = 8.5
		paperHeight = 11.0
	}

	if options.PageOrientation == "landscape" {
		paperWidth, paperHeight = paperHeight, paperWidth
	}

	marginTop := float64(options.MarginTop) / 72.0
	marginBottom := float64(options.MarginBottom) / 72.0
	marginLeft := float64(options.MarginLeft) / 72.0
	marginRight := float64(options.MarginRight) / 72.0

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.Sleep(100),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginTop).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithMarginRight(marginRight).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// BuildReporteHTML renders the case report document: case header, client
// block and the full stage history table
func BuildReporteHTML(caso models.Caso, cliente *models.Cliente, expedientes []models.Expediente) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>
body { font-family: Georgia, serif; color: #1a1a1a; }
h1 { font-size: 20px; border-bottom: 2px solid #1a1a1a; padding-bottom: 6px; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { border: 1px solid #999; padding: 6px 8px; font-size: 12px; text-align: left; }
th { background: #eee; }
.meta { font-size: 13px; margin: 4px 0; }
</style></head><body>`)

	fmt.Fprintf(&b, "<h1>Reporte del Caso #%d</h1>", caso.NoCaso)

	if cliente != nil {
		fmt.Fprintf(&b, `<p class="meta">Cliente: %s %s (%s)</p>`,
			html.EscapeString(cliente.NomCliente),
			html.EscapeString(cliente.ApeCliente),
			html.EscapeString(cliente.CodCliente))
	}

	fmt.Fprintf(&b, `<p class="meta">Especialización: %s</p>`, html.EscapeString(caso.CodEspecializacion))
	fmt.Fprintf(&b, `<p class="meta">Fecha de inicio: %s</p>`, FormatFecha(caso.FchInicio))

	estado := "Activo"
	if caso.FchFin != nil {
		estado = fmt.Sprintf("Cerrado el %s", FormatFecha(*caso.FchFin))
	}
	fmt.Fprintf(&b, `<p class="meta">Estado: %s</p>`, estado)

	if caso.Valor != nil {
		fmt.Fprintf(&b, `<p class="meta">Valor: %.2f</p>`, *caso.Valor)
	}

	b.WriteString("<table><tr><th>No.</th><th>Etapa</th><th>Lugar</th><th>Abogado</th><th>Fecha</th></tr>")
	for _, e := range expedientes {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			e.ConsecExpe,
			e.IDTipoCaso2,
			html.EscapeString(e.CodLugar),
			html.EscapeString(e.Cedula),
			FormatFecha(e.FchEtapa))
	}
	b.WriteString("</table></body></html>")

	return b.String()
}

// GenerarReporteCaso builds and renders the PDF report for a case
func GenerarReporteCaso(ctx context.Context, db *gorm.DB, noCaso int) ([]byte, error) {
	view, err := BuscarCaso(db, noCaso)
	if err != nil {
		return nil, err
	}

	var cliente *models.Cliente
	var c models.Cliente
	if err := db.First(&c, "CODCLIENTE = ?", view.Caso.CodCliente).Error; err == nil {
		cliente = &c
	}

	htmlContent := BuildReporteHTML(view.Caso, cliente, view.Expedientes)
	return GeneratePDF(htmlContent, DefaultPDFOptions())
}

// ArchivarReporte stores a generated report through the storage provider
// and returns the stored key and public URL
func ArchivarReporte(ctx context.Context, noCaso int, pdf []byte) (*StorageResult, error) {
	if Storage == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	key := GenerateReporteKey(noCaso)
	return Storage.UploadReader(ctx, bytes.NewReader(pdf), key, "application/pdf", int64(len(pdf)))
}
