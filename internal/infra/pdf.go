package infra

// pdf.go — Receipt generation using go-pdf/fpdf. Renders a thermal
// receipt-style ticket for a finished reservation:
//   - Business name header
//   - Room number, guest and stay dates
//   - Service line table (name, quantity, subtotal)
//   - Bold final total and payment method
//
// The output file is saved to storagePath/recibo_{reservaID}.pdf. Page width
// follows the target printer's paper width (74mm default thermal roll).

import (
	"fmt"
	"os"
	"path/filepath"

	"moteldb/internal/model"

	"github.com/go-pdf/fpdf"
)

// Recibo carries everything the renderer needs; it is assembled by the worker
// from the already-committed checkout so no further store reads can change it.
type Recibo struct {
	Negocio    string
	Reserva    *model.Reserva
	Habitacion *model.Habitacion
	Cliente    *model.Cliente
	Pago       *model.Pago
	Lineas     []ReciboLinea
	AnchoMM    int
}

type ReciboLinea struct {
	Nombre   string
	Cantidad int
	Subtotal string
}

// GenerateReciboPDF writes the receipt PDF and returns its absolute path.
func GenerateReciboPDF(r *Recibo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", r.Reserva.ID)
	filePath := filepath.Join(storagePath, fileName)

	ancho := float64(r.AnchoMM)
	if ancho < 40 {
		ancho = 74 // standard thermal roll
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ancho, Ht: 140},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, r.Negocio, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Estadia", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Stay info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Habitacion %d", r.Habitacion.Numero), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, r.Cliente.Nombre, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Ingreso: "+r.Reserva.CheckIn.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if r.Reserva.CheckOut != nil {
		pdf.CellFormat(contentW, 4, "Salida:  "+r.Reserva.CheckOut.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Service lines ────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 4, "Servicio", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 4, "Cant", "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 4, "Subtotal", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, l := range r.Lineas {
		pdf.CellFormat(col1, 4, l.Nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%d", l.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 4, l.Subtotal, "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total + payment ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "TOTAL  $"+r.Pago.Monto.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Pago: "+r.Pago.Metodo, "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 4, r.Pago.Fecha.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
