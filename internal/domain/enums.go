package domain

import "payvlo/internal/gst"

// CustomerType mirrors gst.CustomerType so that it can be scanned from the database.
type CustomerType = gst.CustomerType

const (
	CustomerTypeB2B    = gst.CustomerB2B
	CustomerTypeB2C    = gst.CustomerB2C
	CustomerTypeExport = gst.CustomerExport
)

// ProductType is the nature of a product or service line.
type ProductType string

const (
	ProductTypeGoods    ProductType = "GOODS"
	ProductTypeServices ProductType = "SERVICES"
)

// Valid reports whether p is a known product type.
func (p ProductType) Valid() bool {
	return p == ProductTypeGoods || p == ProductTypeServices
}

// SupplyType converts p for HSN/SAC classification.
func (p ProductType) SupplyType() gst.SupplyType {
	return gst.SupplyType(p)
}

// InvoiceType represents the kind of tax document issued.
type InvoiceType string

const (
	InvoiceTypeRegular    InvoiceType = "REGULAR"
	InvoiceTypeExport     InvoiceType = "EXPORT"
	InvoiceTypeDebitNote  InvoiceType = "DEBIT_NOTE"
	InvoiceTypeCreditNote InvoiceType = "CREDIT_NOTE"
)

// Valid reports whether t is a known invoice type.
func (t InvoiceType) Valid() bool {
	switch t {
	case InvoiceTypeRegular, InvoiceTypeExport, InvoiceTypeDebitNote, InvoiceTypeCreditNote:
		return true
	}
	return false
}

// InvoiceStatus represents the lifecycle of an issued invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// invoiceTransitions lists the statuses reachable from each status.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:   {InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPaid, InvoiceStatusCancelled},
}

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an invoice in status s may move to next.
// PAID and CANCELLED are terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ExportFormat selects the invoice register file type.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)
