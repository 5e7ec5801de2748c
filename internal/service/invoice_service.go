package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/metrics"
	"payvlo/internal/port"
)

const dateLayout = "2006-01-02"

// InvoiceConfig carries the issuing settings used by InvoiceService.
type InvoiceConfig struct {
	NumberFormat  string
	RoundOff      bool
	PDFPrefix     string
	Bucket        string
	PresignExpiry int64
}

// CreateInvoiceItemInput is one requested line. UnitPrice defaults to the
// product's rate and Description to the product's name.
type CreateInvoiceItemInput struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	Description     string    `json:"description"`
	Quantity        float64   `json:"quantity" binding:"required"`
	UnitPrice       *float64  `json:"unit_price"`
	DiscountPercent float64   `json:"discount_percent"`
}

// CreateInvoiceInput is the DTO for issuing an invoice. Dates use
// YYYY-MM-DD; InvoiceDate defaults to today.
type CreateInvoiceInput struct {
	CustomerID      uuid.UUID                `json:"customer_id" binding:"required"`
	InvoiceDate     string                   `json:"invoice_date"`
	DueDate         string                   `json:"due_date"`
	InvoiceType     domain.InvoiceType       `json:"invoice_type"`
	PlaceOfSupply   string                   `json:"place_of_supply"`
	ReverseCharge   bool                     `json:"reverse_charge"`
	PaymentTerms    string                   `json:"payment_terms"`
	Notes           string                   `json:"notes"`
	TermsConditions string                   `json:"terms_conditions"`
	Items           []CreateInvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

// ExportResult is a rendered invoice register.
type ExportResult struct {
	Data        []byte
	ContentType string
	FileName    string
	Count       int
}

// DocumentFile is a stored invoice document.
type DocumentFile struct {
	Data        []byte
	ContentType string
	FileName    string
}

// InvoiceService defines the invoicing contract.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	GeneratePDF(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Download(ctx context.Context, id uuid.UUID) (*DocumentFile, error)
	Send(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Export(ctx context.Context, format domain.ExportFormat, from, to time.Time) (*ExportResult, error)
	RegeneratePending(ctx context.Context, limit int) (int, error)
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	productRepo  port.ProductRepository
	companyRepo  port.CompanyRepository
	renderer     port.InvoiceRenderer
	storage      port.ObjectStorage
	email        port.EmailSender
	exporters    map[domain.ExportFormat]port.RegisterExporter
	metrics      *metrics.Metrics
	cfg          InvoiceConfig
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	companyRepo port.CompanyRepository,
	renderer port.InvoiceRenderer,
	storage port.ObjectStorage,
	email port.EmailSender,
	exporters map[domain.ExportFormat]port.RegisterExporter,
	m *metrics.Metrics,
	cfg InvoiceConfig,
) InvoiceService {
	if cfg.NumberFormat == "" {
		cfg.NumberFormat = gst.DefaultInvoiceNumberFormat
	}
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		companyRepo:  companyRepo,
		renderer:     renderer,
		storage:      storage,
		email:        email,
		exporters:    exporters,
		metrics:      m,
		cfg:          cfg,
		now:          time.Now,
	}
}

func parseDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidDateRange, field)
	}
	return &t, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Create prices every line from its product, classifies the supply from
// the supplier and customer GSTINs and persists the invoice under the next
// number in the configured series.
func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	start := time.Now()
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	invoiceDate := truncateToDate(s.now().UTC())
	if d, err := parseDate("invoice_date", input.InvoiceDate); err != nil {
		return nil, err
	} else if d != nil {
		invoiceDate = *d
	}
	dueDate, err := parseDate("due_date", input.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate != nil && dueDate.Before(invoiceDate) {
		return nil, fmt.Errorf("%w: due_date is before invoice_date", domain.ErrInvalidDateRange)
	}

	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive {
		return nil, domain.ErrCustomerInactive
	}

	invoiceType := input.InvoiceType
	if invoiceType == "" {
		invoiceType = domain.InvoiceTypeRegular
		if customer.CustomerType == domain.CustomerTypeExport {
			invoiceType = domain.InvoiceTypeExport
		}
	}
	if !invoiceType.Valid() {
		return nil, domain.ErrInvalidInvoiceType
	}

	interState := gst.IsInterState(company.GSTIN, customer.GSTIN, customer.CustomerType)

	lineInputs := make([]gst.LineItemInput, 0, len(input.Items))
	items := make([]domain.InvoiceItem, 0, len(input.Items))
	for i, req := range input.Items {
		product, err := s.productRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrProductInactive)
		}
		unitPrice := product.Rate
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		description := strings.TrimSpace(req.Description)
		if description == "" {
			description = product.ProductName
		}

		lineInputs = append(lineInputs, gst.LineItemInput{
			Quantity:        req.Quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: req.DiscountPercent,
			GSTRate:         product.GSTRate,
			CessRate:        product.CessRate,
			InterState:      interState,
		})
		items = append(items, domain.InvoiceItem{
			ProductID:   product.ID,
			Description: description,
			HSNSACCode:  product.HSNSACCode,
			Unit:        product.UnitOfMeasurement,
		})
	}

	pricing, err := priceLines(lineInputs, s.cfg.RoundOff)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidLineItem, err)
	}
	for i, calc := range pricing.Items {
		applyLine(&items[i], calc)
	}

	if dueDate == nil && customer.CreditPeriodDays > 0 {
		d := invoiceDate.AddDate(0, 0, customer.CreditPeriodDays)
		dueDate = &d
	}

	placeOfSupply := strings.TrimSpace(input.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = customer.StateCode
		if placeOfSupply == "" && !interState {
			placeOfSupply = company.StateCode
		}
	}

	totals := pricing.Totals
	inv := &domain.Invoice{
		ID:              uuid.New(),
		InvoiceDate:     invoiceDate,
		CustomerID:      customer.ID,
		InvoiceType:     invoiceType,
		PlaceOfSupply:   placeOfSupply,
		IsInterState:    interState,
		ReverseCharge:   input.ReverseCharge,
		Subtotal:        totals.Subtotal,
		TotalDiscount:   totals.TotalDiscount,
		TaxableAmount:   totals.TaxableAmount,
		CGSTAmount:      totals.CGSTTotal,
		SGSTAmount:      totals.SGSTTotal,
		IGSTAmount:      totals.IGSTTotal,
		CessAmount:      totals.CessTotal,
		TotalTax:        totals.TotalTax,
		TotalAmount:     totals.TotalAmount,
		RoundOff:        totals.RoundOff,
		FinalAmount:     totals.FinalAmount,
		AmountInWords:   pricing.AmountInWords,
		PaymentTerms:    input.PaymentTerms,
		DueDate:         dueDate,
		Status:          domain.InvoiceStatusDraft,
		Notes:           input.Notes,
		TermsConditions: input.TermsConditions,
		Items:           items,
	}

	format := s.cfg.NumberFormat
	err = s.invoiceRepo.CreateWithNumber(ctx, inv, func(last string) string {
		return gst.GenerateInvoiceNumber(format, last, invoiceDate)
	})
	if err != nil {
		log.Error().Err(err).Str("customer_id", customer.ID.String()).
			Msg("invoiceService.Create: failed to persist invoice")
		return nil, err
	}

	s.metrics.IncInvoiceIssued(string(inv.InvoiceType), inv.IsInterState)
	s.metrics.ObserveInvoiceCreate(time.Since(start))
	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("customer_id", customer.ID.String()).
		Bool("inter_state", interState).
		Float64("final_amount", inv.FinalAmount).
		Msg("invoiceService.Create: invoice issued")
	return inv, nil
}

func applyLine(item *domain.InvoiceItem, calc gst.LineItemCalculation) {
	item.Quantity = calc.Quantity
	item.UnitPrice = calc.UnitPrice
	item.DiscountPercent = calc.DiscountPercent
	item.DiscountAmount = calc.DiscountAmount
	item.TaxableAmount = calc.TaxableAmount
	item.GSTRate = calc.GST.GSTRate
	item.CGSTRate = calc.GST.CGSTRate
	item.SGSTRate = calc.GST.SGSTRate
	item.IGSTRate = calc.GST.IGSTRate
	item.CessRate = calc.GST.CessRate
	item.CGSTAmount = calc.GST.CGSTAmount
	item.SGSTAmount = calc.GST.SGSTAmount
	item.IGSTAmount = calc.GST.IGSTAmount
	item.CessAmount = calc.GST.CessAmount
	item.TotalAmount = calc.LineTotal
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter domain.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrInvalidInvoiceStatus
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, 0, domain.ErrInvalidDateRange
	}
	return s.invoiceRepo.List(ctx, filter, offset, limit)
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidInvoiceStatus
	}
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, inv.Status, status)
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	log.Info().Str("invoice_number", inv.InvoiceNumber).
		Str("from", string(inv.Status)).Str("to", string(status)).
		Msg("invoiceService.UpdateStatus: status changed")
	inv.Status = status
	return inv, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// documentName is the file name an invoice document is offered under.
func (s *invoiceService) documentName(inv *domain.Invoice) string {
	return unsafeKeyChars.ReplaceAllString(inv.InvoiceNumber, "_") + s.renderer.Extension()
}

// documentKey derives the storage key for an invoice document.
func (s *invoiceService) documentKey(inv *domain.Invoice) string {
	return s.cfg.PDFPrefix + inv.InvoiceDate.Format("2006/01") + "/" + s.documentName(inv)
}

func (s *invoiceService) GeneratePDF(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.renderAndStore(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// renderAndStore renders inv, uploads the document and records its key.
func (s *invoiceService) renderAndStore(ctx context.Context, inv *domain.Invoice) error {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return err
	}
	customer, err := s.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return err
	}

	doc, err := s.renderer.Render(port.InvoiceDocument{Invoice: inv, Company: company, Customer: customer})
	s.metrics.IncDocumentRendered(strings.TrimPrefix(s.renderer.Extension(), "."), err == nil)
	if err != nil {
		log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).
			Msg("invoiceService.renderAndStore: render failed")
		return fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}

	key := s.documentKey(inv)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(doc),
		ContentType: s.renderer.ContentType(),
		Size:        int64(len(doc)),
		FileName:    s.documentName(inv),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("invoiceService.renderAndStore: upload failed")
		return domain.ErrUploadFailed
	}

	if err := s.invoiceRepo.SetPDFPath(ctx, inv.ID, key); err != nil {
		return err
	}
	inv.PDFPath = key
	log.Info().Str("invoice_number", inv.InvoiceNumber).Str("key", key).
		Msg("invoiceService.renderAndStore: document stored")
	return nil
}

// GetDownloadURL returns a presigned link, rendering the document first
// when it has not been stored yet.
func (s *invoiceService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.downloadURL(ctx, inv)
}

// Download returns the stored document bytes, rendering it first when it
// has not been stored yet.
func (s *invoiceService) Download(ctx context.Context, id uuid.UUID) (*DocumentFile, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.PDFPath == "" {
		if err := s.renderAndStore(ctx, inv); err != nil {
			return nil, err
		}
	}
	data, err := s.storage.Download(ctx, s.cfg.Bucket, inv.PDFPath)
	if err != nil {
		log.Error().Err(err).Str("key", inv.PDFPath).Msg("invoiceService.Download: fetch failed")
		return nil, err
	}
	return &DocumentFile{
		Data:        data,
		ContentType: s.renderer.ContentType(),
		FileName:    s.documentName(inv),
	}, nil
}

func (s *invoiceService) downloadURL(ctx context.Context, inv *domain.Invoice) (string, error) {
	if inv.PDFPath == "" {
		if err := s.renderAndStore(ctx, inv); err != nil {
			return "", err
		}
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, inv.PDFPath, s.cfg.PresignExpiry)
}

// Send e-mails the invoice link to the customer and marks it SENT. Sending
// again re-delivers without changing the status.
func (s *invoiceService) Send(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoiceStatusSent && !inv.Status.CanTransitionTo(domain.InvoiceStatusSent) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, inv.Status, domain.InvoiceStatusSent)
	}

	customer, err := s.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Email == "" {
		return nil, domain.ErrCustomerEmailMissing
	}
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	url, err := s.downloadURL(ctx, inv)
	if err != nil {
		return nil, err
	}

	err = s.email.SendInvoiceEmail(ctx, port.InvoiceEmail{
		ToEmail:       customer.Email,
		ToName:        customer.CustomerName,
		CompanyName:   company.CompanyName,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("02 Jan 2006"),
		Amount:        gst.FormatIndianCurrency(inv.FinalAmount, true),
		AmountInWords: inv.AmountInWords,
		DownloadURL:   url,
	})
	s.metrics.IncEmailSent(err == nil)
	if err != nil {
		log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).
			Msg("invoiceService.Send: email delivery failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrEmailFailed, err)
	}

	if inv.Status != domain.InvoiceStatusSent {
		if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, domain.InvoiceStatusSent); err != nil {
			return nil, err
		}
		inv.Status = domain.InvoiceStatusSent
	}
	return inv, nil
}

// Export renders the register of invoices dated within [from, to].
func (s *invoiceService) Export(ctx context.Context, format domain.ExportFormat, from, to time.Time) (*ExportResult, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, domain.ErrUnsupportedExportFormat
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}

	invoices, err := s.invoiceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	customers := make(map[uuid.UUID]*domain.Customer)
	entries := make([]port.RegisterEntry, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		customer, seen := customers[inv.CustomerID]
		if !seen {
			customer, err = s.customerRepo.GetByID(ctx, inv.CustomerID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			customers[inv.CustomerID] = customer
		}
		entry := port.RegisterEntry{Invoice: *inv}
		if customer != nil {
			entry.CustomerName = customer.CustomerName
			entry.CustomerGSTIN = customer.GSTIN
		}
		entries = append(entries, entry)
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, entries); err != nil {
		return nil, fmt.Errorf("invoiceService.Export: %w", err)
	}
	return &ExportResult{
		Data:        buf.Bytes(),
		ContentType: exporter.ContentType(),
		FileName: fmt.Sprintf("invoice-register_%s_%s%s",
			from.Format(dateLayout), to.Format(dateLayout), exporter.Extension()),
		Count: len(entries),
	}, nil
}

// RegeneratePending renders documents for up to limit invoices that have
// none. Individual failures are logged and skipped.
func (s *invoiceService) RegeneratePending(ctx context.Context, limit int) (int, error) {
	invoices, err := s.invoiceRepo.ListWithoutPDF(ctx, limit)
	if err != nil {
		return 0, err
	}

	done := 0
	for i := range invoices {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		inv, err := s.invoiceRepo.GetByID(ctx, invoices[i].ID)
		if err != nil {
			log.Warn().Err(err).Str("invoice_id", invoices[i].ID.String()).
				Msg("invoiceService.RegeneratePending: reload failed")
			continue
		}
		if err := s.renderAndStore(ctx, inv); err != nil {
			log.Warn().Err(err).Str("invoice_number", inv.InvoiceNumber).
				Msg("invoiceService.RegeneratePending: skipped")
			continue
		}
		done++
	}
	return done, nil
}
