// Package pdf renders tax invoices as A4 PDF documents.
//
// Page layout:
//
//	supplier name, GSTIN and invoice number/date
//	supplier address | bill-to party with GSTIN and state
//	line table: # | description | HSN/SAC | qty | rate | taxable | GST% | tax | total
//	totals block and amount in words
//	bank details, terms and the signature line
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/port"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 230, Green: 236, Blue: 245}
)

const dateLayout = "02/01/2006"

// Renderer implements port.InvoiceRenderer using Maroto v2.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) ContentType() string { return "application/pdf" }

func (r *Renderer) Extension() string { return ".pdf" }

// Render lays out doc and returns the PDF bytes.
func (r *Renderer) Render(doc port.InvoiceDocument) ([]byte, error) {
	if doc.Invoice == nil || doc.Company == nil || doc.Customer == nil {
		return nil, fmt.Errorf("pdf.Render: invoice, company and customer are required")
	}
	inv, company, customer := doc.Invoice, doc.Company, doc.Customer

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Tax Invoice "+inv.InvoiceNumber, true).
		WithAuthor(company.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(inv, company, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(inv.IsInterState))
	m.AddRows(itemRows(inv.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv)...)
	m.AddRows(wordsRow(inv))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(inv, company))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf.Render: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRow(inv *domain.Invoice, company *domain.CompanySettings) core.Row {
	title := "TAX INVOICE"
	switch inv.InvoiceType {
	case domain.InvoiceTypeExport:
		title = "EXPORT INVOICE"
	case domain.InvoiceTypeCreditNote:
		title = "CREDIT NOTE"
	case domain.InvoiceTypeDebitNote:
		title = "DEBIT NOTE"
	}

	right := []core.Component{
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1}),
		text.New(inv.InvoiceNumber, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
		text.New("Date: "+inv.InvoiceDate.Format(dateLayout), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
	}
	if inv.DueDate != nil {
		right = append(right, text.New("Due: "+inv.DueDate.Format(dateLayout), props.Text{
			Size: 8, Align: align.Right, Top: 17, Color: colorGray,
		}))
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(company.CompanyName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("GSTIN: "+company.GSTIN, props.Text{Size: 9, Top: 8}),
			text.New("PAN: "+nonEmpty(company.PAN, "-"), props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(5).Add(right...),
	)
}

func partiesRow(inv *domain.Invoice, company *domain.CompanySettings, customer *domain.Customer) core.Row {
	supply := gst.StateName(inv.PlaceOfSupply)
	if supply == "" {
		supply = inv.PlaceOfSupply
	} else {
		supply = fmt.Sprintf("%s (%s)", supply, inv.PlaceOfSupply)
	}

	return row.New(30).Add(
		col.New(6).Add(
			text.New("FROM", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(address(company.Address, company.City, company.State, company.Pincode), props.Text{Size: 8, Top: 6}),
			text.New(contact(company.Phone, company.Email), props.Text{Size: 8, Top: 16, Color: colorGray}),
			text.New("State code: "+nonEmpty(company.StateCode, "-"), props.Text{Size: 8, Top: 21, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(customer.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(address(customer.Address, customer.City, customer.State, customer.Pincode), props.Text{Size: 8, Top: 11}),
			text.New("GSTIN: "+nonEmpty(customer.GSTIN, "Unregistered"), props.Text{Size: 8, Top: 20}),
			text.New("Place of supply: "+nonEmpty(supply, "-"), props.Text{Size: 8, Top: 25, Color: colorGray}),
		),
	)
}

func tableHeaderRow(interState bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	taxLabel := "CGST+SGST"
	if interState {
		taxLabel = "IGST"
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorHeader}).Add(
		h("#", 1, align.Center),
		h("Description", 3, align.Left),
		h("HSN/SAC", 1, align.Center),
		h("Qty", 1, align.Right),
		h("Rate", 1, align.Right),
		h("Taxable", 2, align.Right),
		h("GST%", 1, align.Center),
		h(taxLabel, 1, align.Right),
		h("Total", 1, align.Right),
	)
}

func itemRows(items []domain.InvoiceItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		tax := it.CGSTAmount + it.SGSTAmount + it.IGSTAmount + it.CessAmount
		rows = append(rows, row.New(7).Add(
			cell(fmt.Sprintf("%d", it.LineNo), 1, align.Center),
			cell(it.Description, 3, align.Left),
			cell(it.HSNSACCode, 1, align.Center),
			cell(fmt.Sprintf("%s %s", trimQty(it.Quantity), it.Unit), 1, align.Right),
			cell(money(it.UnitPrice), 1, align.Right),
			cell(money(it.TaxableAmount), 2, align.Right),
			cell(trimQty(it.GSTRate), 1, align.Center),
			cell(money(tax), 1, align.Right),
			cell(money(it.TotalAmount), 1, align.Right),
		))
	}
	return rows
}

func totalsRows(inv *domain.Invoice) []core.Row {
	type entry struct {
		label string
		value float64
		grand bool
	}
	entries := []entry{{"Subtotal", inv.Subtotal, false}}
	if inv.TotalDiscount != 0 {
		entries = append(entries, entry{"Discount", -inv.TotalDiscount, false})
	}
	entries = append(entries, entry{"Taxable value", inv.TaxableAmount, false})
	if inv.IsInterState {
		entries = append(entries, entry{"IGST", inv.IGSTAmount, false})
	} else {
		entries = append(entries, entry{"CGST", inv.CGSTAmount, false}, entry{"SGST", inv.SGSTAmount, false})
	}
	if inv.CessAmount != 0 {
		entries = append(entries, entry{"Cess", inv.CessAmount, false})
	}
	if inv.RoundOff != 0 {
		entries = append(entries, entry{"Round off", inv.RoundOff, false})
	}
	entries = append(entries, entry{"TOTAL", inv.FinalAmount, true})

	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		style := props.Text{Size: 8, Align: align.Right, Right: 1}
		if e.grand {
			style = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Color: colorPrimary}
		}
		labelStyle := style
		labelStyle.Right = 2
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(e.label+":", labelStyle)),
			col.New(3).Add(text.New("Rs. "+money(e.value), style)),
		))
	}
	return rows
}

func wordsRow(inv *domain.Invoice) core.Row {
	words := inv.AmountInWords
	if words == "" {
		words = gst.AmountToWords(inv.FinalAmount)
	}
	return row.New(10).Add(col.New(12).Add(
		text.New("Amount in words: "+strings.ToUpper(words[:1])+words[1:], props.Text{
			Style: fontstyle.Italic, Size: 8, Top: 3,
		}),
	))
}

func footerRow(inv *domain.Invoice, company *domain.CompanySettings) core.Row {
	var notes []string
	if company.BankName != "" {
		notes = append(notes, fmt.Sprintf("Bank: %s  A/c: %s  IFSC: %s",
			company.BankName, nonEmpty(company.AccountNumber, "-"), nonEmpty(company.IFSCCode, "-")))
	}
	if inv.ReverseCharge {
		notes = append(notes, "Tax is payable on reverse charge basis.")
	}
	if inv.PaymentTerms != "" {
		notes = append(notes, "Payment terms: "+inv.PaymentTerms)
	}
	if inv.Notes != "" {
		notes = append(notes, inv.Notes)
	}
	if inv.TermsConditions != "" {
		notes = append(notes, inv.TermsConditions)
	}

	left := col.New(8)
	for i, n := range notes {
		left.Add(text.New(n, props.Text{Size: 7, Top: float64(i * 5), Color: colorGray}))
	}

	qr := fmt.Sprintf("%s|%s|%s|%s", company.GSTIN, inv.InvoiceNumber,
		inv.InvoiceDate.Format("2006-01-02"), gst.FormatIndianCurrency(inv.FinalAmount, false))

	return row.New(34).Add(
		left,
		col.New(2).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
		col.New(2).Add(
			text.New("For "+company.CompanyName, props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1}),
			text.New("Authorised Signatory", props.Text{Size: 7, Align: align.Right, Top: 26, Color: colorGray}),
		),
	)
}

func money(v float64) string {
	return gst.FormatIndianCurrency(v, false)
}

// trimQty prints up to three decimals without trailing zeros.
func trimQty(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func address(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return nonEmpty(strings.Join(kept, ", "), "-")
}

func contact(phone, email string) string {
	switch {
	case phone != "" && email != "":
		return phone + "  |  " + email
	case phone != "":
		return phone
	default:
		return nonEmpty(email, "")
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
