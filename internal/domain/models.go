package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettings describes the supplier that issues every invoice.
type CompanySettings struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CompanyName   string    `db:"company_name" json:"company_name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	PAN           string    `db:"pan" json:"pan"`
	Address       string    `db:"address" json:"address"`
	City          string    `db:"city" json:"city"`
	State         string    `db:"state" json:"state"`
	StateCode     string    `db:"state_code" json:"state_code"`
	Pincode       string    `db:"pincode" json:"pincode"`
	Phone         string    `db:"phone" json:"phone"`
	Email         string    `db:"email" json:"email"`
	Website       string    `db:"website" json:"website"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	IFSCCode      string    `db:"ifsc_code" json:"ifsc_code"`
	LogoPath      string    `db:"logo_path" json:"logo_path"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a party invoices are billed to.
type Customer struct {
	ID               uuid.UUID    `db:"id" json:"id"`
	CustomerName     string       `db:"customer_name" json:"customer_name"`
	GSTIN            string       `db:"gstin" json:"gstin"`
	PAN              string       `db:"pan" json:"pan"`
	CustomerType     CustomerType `db:"customer_type" json:"customer_type"`
	Address          string       `db:"address" json:"address"`
	City             string       `db:"city" json:"city"`
	State            string       `db:"state" json:"state"`
	StateCode        string       `db:"state_code" json:"state_code"`
	Pincode          string       `db:"pincode" json:"pincode"`
	Phone            string       `db:"phone" json:"phone"`
	Email            string       `db:"email" json:"email"`
	CreditLimit      float64      `db:"credit_limit" json:"credit_limit"`
	CreditPeriodDays int          `db:"credit_period_days" json:"credit_period_days"`
	IsActive         bool         `db:"is_active" json:"is_active"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}

// Product is a catalogue entry that can be placed on an invoice line.
type Product struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	ProductCode       string      `db:"product_code" json:"product_code"`
	ProductName       string      `db:"product_name" json:"product_name"`
	Description       string      `db:"description" json:"description"`
	HSNSACCode        string      `db:"hsn_sac_code" json:"hsn_sac_code"`
	ProductType       ProductType `db:"product_type" json:"product_type"`
	UnitOfMeasurement string      `db:"unit_of_measurement" json:"unit_of_measurement"`
	Rate              float64     `db:"rate" json:"rate"`
	GSTRate           float64     `db:"gst_rate" json:"gst_rate"`
	CessRate          float64     `db:"cess_rate" json:"cess_rate"`
	IsActive          bool        `db:"is_active" json:"is_active"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
}

// Invoice is an issued tax invoice with its stored totals.
type Invoice struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	InvoiceNumber   string        `db:"invoice_number" json:"invoice_number"`
	InvoiceDate     time.Time     `db:"invoice_date" json:"invoice_date"`
	CustomerID      uuid.UUID     `db:"customer_id" json:"customer_id"`
	InvoiceType     InvoiceType   `db:"invoice_type" json:"invoice_type"`
	PlaceOfSupply   string        `db:"place_of_supply" json:"place_of_supply"`
	IsInterState    bool          `db:"is_inter_state" json:"is_inter_state"`
	ReverseCharge   bool          `db:"reverse_charge" json:"reverse_charge"`
	Subtotal        float64       `db:"subtotal" json:"subtotal"`
	TotalDiscount   float64       `db:"total_discount" json:"total_discount"`
	TaxableAmount   float64       `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount      float64       `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount      float64       `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount      float64       `db:"igst_amount" json:"igst_amount"`
	CessAmount      float64       `db:"cess_amount" json:"cess_amount"`
	TotalTax        float64       `db:"total_tax" json:"total_tax"`
	TotalAmount     float64       `db:"total_amount" json:"total_amount"`
	RoundOff        float64       `db:"round_off" json:"round_off"`
	FinalAmount     float64       `db:"final_amount" json:"final_amount"`
	AmountInWords   string        `db:"amount_in_words" json:"amount_in_words"`
	PaymentTerms    string        `db:"payment_terms" json:"payment_terms"`
	DueDate         *time.Time    `db:"due_date" json:"due_date"`
	Status          InvoiceStatus `db:"status" json:"status"`
	Notes           string        `db:"notes" json:"notes"`
	TermsConditions string        `db:"terms_conditions" json:"terms_conditions"`
	PDFPath         string        `db:"pdf_path" json:"pdf_path"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`

	Items []InvoiceItem `db:"-" json:"items,omitempty"`
}

// InvoiceItem is one calculated line of an invoice.
type InvoiceItem struct {
	ID              uuid.UUID `db:"id" json:"id"`
	InvoiceID       uuid.UUID `db:"invoice_id" json:"invoice_id"`
	ProductID       uuid.UUID `db:"product_id" json:"product_id"`
	LineNo          int       `db:"line_no" json:"line_no"`
	Description     string    `db:"description" json:"description"`
	HSNSACCode      string    `db:"hsn_sac_code" json:"hsn_sac_code"`
	Quantity        float64   `db:"quantity" json:"quantity"`
	Unit            string    `db:"unit" json:"unit"`
	UnitPrice       float64   `db:"unit_price" json:"unit_price"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	DiscountAmount  float64   `db:"discount_amount" json:"discount_amount"`
	TaxableAmount   float64   `db:"taxable_amount" json:"taxable_amount"`
	GSTRate         float64   `db:"gst_rate" json:"gst_rate"`
	CGSTRate        float64   `db:"cgst_rate" json:"cgst_rate"`
	SGSTRate        float64   `db:"sgst_rate" json:"sgst_rate"`
	IGSTRate        float64   `db:"igst_rate" json:"igst_rate"`
	CessRate        float64   `db:"cess_rate" json:"cess_rate"`
	CGSTAmount      float64   `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount      float64   `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount      float64   `db:"igst_amount" json:"igst_amount"`
	CessAmount      float64   `db:"cess_amount" json:"cess_amount"`
	TotalAmount     float64   `db:"total_amount" json:"total_amount"`
}

// IndianState is a row of the state master table.
type IndianState struct {
	StateCode        string `db:"state_code" json:"state_code"`
	StateName        string `db:"state_name" json:"state_name"`
	IsUnionTerritory bool   `db:"is_union_territory" json:"is_union_territory"`
	IsActive         bool   `db:"is_active" json:"is_active"`
}

// RecordCounts summarises the size of each master table.
type RecordCounts struct {
	Customers int `db:"customers" json:"customers"`
	Products  int `db:"products" json:"products"`
	Invoices  int `db:"invoices" json:"invoices"`
}

// InvoiceFilter narrows invoice listings. Zero values mean no constraint.
type InvoiceFilter struct {
	CustomerID *uuid.UUID
	Status     InvoiceStatus
	From       *time.Time
	To         *time.Time
}
