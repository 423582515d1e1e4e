package infra

import (
	"bytes"
	"fmt"

	"github.com/MotoWorkShop/MWSBackend/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// LineaFactura is one printable invoice row.
type LineaFactura struct {
	Descripcion string
	Cantidad    int
	Precio      decimal.Decimal
}

// DatosFactura is everything the PDF needs, pre-resolved by the caller.
type DatosFactura struct {
	Factura model.Factura
	Lineas  []LineaFactura
}

// GeneradorPDF renders invoices as A4 PDFs.
type GeneradorPDF struct {
	nombreTaller string
}

func NewGeneradorPDF(nombreTaller string) *GeneradorPDF {
	return &GeneradorPDF{nombreTaller: nombreTaller}
}

func (g *GeneradorPDF) Generar(d DatosFactura) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Factura %s", d.Factura.ID), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, g.nombreTaller, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Factura: %s", d.Factura.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", d.Factura.Fecha.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	if d.Factura.Cliente != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Cliente: %s (CC %s)", d.Factura.Cliente.NombreCliente, d.Factura.Cliente.Cedula), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, "Descripción", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Cantidad", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Precio", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Importe", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range d.Lineas {
		importe := l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		pdf.CellFormat(100, 8, l.Descripcion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", l.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, l.Precio.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, importe.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totales := []struct {
		etiqueta string
		valor    decimal.Decimal
	}{
		{"Subtotal", d.Factura.Subtotal},
		{"Descuento", d.Factura.Descuento},
		{"IVA", d.Factura.IVA},
		{"Total", d.Factura.Total},
	}
	for _, t := range totales {
		pdf.CellFormat(155, 7, t.etiqueta, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, t.valor.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Atendido por: %s", d.Factura.Vendedor), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
