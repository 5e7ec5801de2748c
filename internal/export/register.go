// Package export writes the invoice register in spreadsheet formats.
package export

import (
	"strconv"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/port"
)

// columns is the invoice register header shared by every format.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Invoice Type",
	"Status",
	"Customer Name",
	"Customer GSTIN",
	"Place of Supply",
	"Inter-State",
	"Reverse Charge",
	"Subtotal",
	"Discount",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"Total Tax",
	"Round Off",
	"Invoice Value",
	"Due Date",
	"Line Item Count",
}

// Columns returns a copy of the register header.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// cell is one register value; money and counts are kept numeric so the
// spreadsheet writer can store them as numbers.
type cell struct {
	text   string
	number float64
	isNum  bool
}

func textCell(s string) cell { return cell{text: s} }

func numberCell(v float64) cell { return cell{number: v, isNum: true} }

func (c cell) String() string {
	if c.isNum {
		return strconv.FormatFloat(c.number, 'f', 2, 64)
	}
	return c.text
}

// entryCells converts one register entry to len(columns) cells.
func entryCells(e *port.RegisterEntry) []cell {
	inv := &e.Invoice

	placeOfSupply := inv.PlaceOfSupply
	if name := gst.StateName(inv.PlaceOfSupply); name != "" {
		placeOfSupply = inv.PlaceOfSupply + "-" + name
	}
	dueDate := ""
	if inv.DueDate != nil {
		dueDate = inv.DueDate.Format("2006-01-02")
	}

	return []cell{
		textCell(inv.InvoiceNumber),
		textCell(inv.InvoiceDate.Format("2006-01-02")),
		textCell(string(inv.InvoiceType)),
		textCell(string(inv.Status)),
		textCell(e.CustomerName),
		textCell(e.CustomerGSTIN),
		textCell(placeOfSupply),
		textCell(formatBool(inv.IsInterState)),
		textCell(formatBool(inv.ReverseCharge)),
		numberCell(inv.Subtotal),
		numberCell(inv.TotalDiscount),
		numberCell(inv.TaxableAmount),
		numberCell(inv.CGSTAmount),
		numberCell(inv.SGSTAmount),
		numberCell(inv.IGSTAmount),
		numberCell(inv.CessAmount),
		numberCell(inv.TotalTax),
		numberCell(inv.RoundOff),
		numberCell(inv.FinalAmount),
		textCell(dueDate),
		textCell(strconv.Itoa(len(inv.Items))),
	}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Exporters returns every register format keyed by its name.
func Exporters() map[domain.ExportFormat]port.RegisterExporter {
	return map[domain.ExportFormat]port.RegisterExporter{
		domain.ExportFormatCSV:  NewCSVExporter(),
		domain.ExportFormatXLSX: NewXLSXExporter(),
	}
}
