// Package document composes the printable markup of invoices and order
// reports. It only produces HTML; rendering and storage happen elsewhere.
package document

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/view"

	"github.com/pkg/errors"
)

// Brand is the fixed document header.
const Brand = "Arya & Co"

// Media type of rendered documents.
const ContentTypePDF = "application/pdf"

const fileDateLayout = "2006-01-02"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("documents").Funcs(template.FuncMap{
	"date":     view.FormatDate,
	"currency": view.FormatCurrency,
	"orNA":     orNA,
	"quantity": func(q int, unit entity.Unit) string {
		return fmt.Sprintf("%d %s", q, unit)
	},
}).ParseFS(templateFS, "templates/*.html"))

// Document is composed markup ready for rendering.
type Document struct {
	FileName string
	Markup   string
}

// InvoiceInput is a single customer's orders for one delivery day.
type InvoiceInput struct {
	Customer     *entity.User // May be nil when the profile is missing.
	Orders       []*entity.Order
	InvoiceDate  time.Time
	DeliveryDate time.Time
	Reference    string // Optional invoice reference.
	QRCode       []byte // Optional PNG of the reference.
}

// ReportInput is the admin order list as currently filtered.
type ReportInput struct {
	Rows       []*entity.CustomerOrder
	ReportDate time.Time
	FilterDate *time.Time // Delivery day filter, if one is applied.
}

type invoiceData struct {
	Brand        string
	Accent       string
	InvoiceDate  time.Time
	DeliveryDate time.Time
	Reference    string
	QRCode       template.URL
	Name         string
	Phone        string
	Address      string
	Orders       []*entity.Order
	GrandTotal   float64
}

type reportData struct {
	Brand      string
	Accent     string
	ReportDate time.Time
	FilterDate *time.Time
	Rows       []*entity.CustomerOrder
	GrandTotal float64
}

// ComposeInvoice builds the invoice markup. An empty order set yields
// ErrNothingToInvoice and no document.
func ComposeInvoice(in InvoiceInput) (*Document, error) {
	if len(in.Orders) == 0 {
		return nil, domainerrors.ErrNothingToInvoice
	}

	data := invoiceData{
		Brand:        Brand,
		Accent:       view.ColorPrimary,
		InvoiceDate:  in.InvoiceDate,
		DeliveryDate: in.DeliveryDate,
		Reference:    in.Reference,
		Orders:       in.Orders,
		GrandTotal:   view.GrandTotal(in.Orders),
	}
	if in.Customer != nil {
		data.Name = in.Customer.Name
		data.Phone = in.Customer.Phone
		data.Address = in.Customer.Address
	}
	if len(in.QRCode) > 0 {
		// Built from encoded bytes, so safe to mark as a URL.
		data.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(in.QRCode))
	}

	markup, err := execute("invoice.html", data)
	if err != nil {
		return nil, err
	}

	return &Document{FileName: InvoiceFileName(in.DeliveryDate), Markup: markup}, nil
}

// ComposeReport builds the order report markup. An empty row set yields
// ErrNothingToExport and no document.
func ComposeReport(in ReportInput) (*Document, error) {
	if len(in.Rows) == 0 {
		return nil, domainerrors.ErrNothingToExport
	}

	markup, err := execute("report.html", reportData{
		Brand:      Brand,
		Accent:     view.ColorPrimary,
		ReportDate: in.ReportDate,
		FilterDate: in.FilterDate,
		Rows:       in.Rows,
		GrandTotal: view.GrandTotal(in.Rows),
	})
	if err != nil {
		return nil, err
	}

	return &Document{FileName: ReportFileName(in.ReportDate), Markup: markup}, nil
}

// InvoiceFileName names the invoice of a delivery day.
func InvoiceFileName(day time.Time) string {
	return "Invoice_" + day.Format(fileDateLayout) + ".pdf"
}

// ReportFileName names a report exported on day.
func ReportFileName(day time.Time) string {
	return "Orders_" + day.Format(fileDateLayout) + ".pdf"
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute %s", name)
	}

	return buf.String(), nil
}

func orNA(v any) string {
	s := fmt.Sprint(v)
	if s == "" {
		return view.NotAvailable
	}

	return s
}
