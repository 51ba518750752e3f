package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/document"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Object key prefixes in the export store.
const (
	InvoiceKeyPrefix = "invoices/"
	ReportKeyPrefix  = "reports/"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	orders    usecase.OrderUsecase
	qrCodes   service.QRCodeService
	renderer  service.DocumentRenderer
	files     service.FileStore
	location  *time.Location
	logger    *slog.Logger

	now func() time.Time
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Orders    usecase.OrderUsecase
	QRCodes   service.QRCodeService
	Renderer  service.DocumentRenderer
	Files     service.FileStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		orders:    params.Orders,
		qrCodes:   params.QRCodes,
		renderer:  params.Renderer,
		files:     params.Files,
		location:  params.Config.Location(),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Invoice renders the invoice of the customer's deliveries on the picked day.
func (srv *exportService) Invoice(ctx context.Context, uid string, picker service.DatePicker) (*usecase.ExportFile, error) {
	day, ok, err := picker.Pick(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick invoice date")
	}
	if !ok {
		return nil, nil
	}
	day = day.In(srv.location)

	orders, err := srv.orderRepo.Find(ctx, repository.OrderQuery{
		UserID:   uid,
		Delivery: view.DayRange(day, srv.location),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNothingToInvoice
	}

	customer, err := srv.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find customer")
		}
		customer = nil
	}

	reference := invoiceReference(uid, day)
	qrCode, err := srv.qrCodes.GenerateInvoiceQR(reference)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate invoice QR code", slog.String("reference", reference), slog.Any("error", err))
		qrCode = nil
	}

	doc, err := document.ComposeInvoice(document.InvoiceInput{
		Customer:     customer,
		Orders:       view.SortNewestFirst(orders),
		InvoiceDate:  srv.now().In(srv.location),
		DeliveryDate: day,
		Reference:    reference,
		QRCode:       qrCode,
	})
	if err != nil {
		return nil, err
	}

	return srv.publish(ctx, path.Join(InvoiceKeyPrefix+uid, uuid.NewString()), doc)
}

// Report renders the admin order list under filter.
func (srv *exportService) Report(ctx context.Context, filter *usecase.OrderFilter) (*usecase.ExportFile, error) {
	if filter == nil {
		filter = &usecase.OrderFilter{}
	}

	rows, err := srv.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	var filterDate *time.Time
	if filter.Day != nil {
		day := filter.Day.In(srv.location)
		filterDate = &day
	}

	doc, err := document.ComposeReport(document.ReportInput{
		Rows:       rows,
		ReportDate: srv.now().In(srv.location),
		FilterDate: filterDate,
	})
	if err != nil {
		return nil, err
	}

	return srv.publish(ctx, ReportKeyPrefix+uuid.NewString(), doc)
}

// Open fetches a previously exported document.
func (srv *exportService) Open(ctx context.Context, key string) (*usecase.ExportFile, error) {
	if !IsExportKey(key) {
		return nil, domainerrors.ErrExportNotFound
	}

	reader, err := srv.files.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return nil, domainerrors.ErrExportNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "failed to open export")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read export")
	}

	return &usecase.ExportFile{
		FileName:    path.Base(key),
		ContentType: document.ContentTypePDF,
		Key:         key,
		Data:        data,
	}, nil
}

// publish renders doc and stores it at dir/<file name>.
func (srv *exportService) publish(ctx context.Context, dir string, doc *document.Document) (*usecase.ExportFile, error) {
	pdf, err := srv.renderer.RenderPDF(ctx, doc.Markup)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRenderFailed.WithDetails(err.Error()), "failed to render document")
	}

	key := path.Join(dir, doc.FileName)
	uri, err := srv.files.Put(ctx, key, pdf, document.ContentTypePDF)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "failed to store document")
	}

	srv.log(ctx).Info("Document exported", slog.String("key", key), slog.Int("bytes", len(pdf)))

	return &usecase.ExportFile{
		FileName:    doc.FileName,
		ContentType: document.ContentTypePDF,
		Key:         key,
		URI:         uri,
		Data:        pdf,
	}, nil
}

// IsExportKey reports whether key names an object this service writes.
func IsExportKey(key string) bool {
	if strings.Contains(key, "..") || path.Clean(key) != key {
		return false
	}

	return strings.HasPrefix(key, InvoiceKeyPrefix) || strings.HasPrefix(key, ReportKeyPrefix)
}

// CanOpenExport reports whether a session may download key. Customers only
// reach their own invoices.
func CanOpenExport(session *entity.Session, key string) bool {
	if session == nil || !IsExportKey(key) {
		return false
	}
	if session.Role.IsAdmin() {
		return true
	}

	return strings.HasPrefix(key, InvoiceKeyPrefix+session.UID+"/")
}

func invoiceReference(uid string, day time.Time) string {
	short := uid
	if len(short) > 8 {
		short = short[:8]
	}

	return fmt.Sprintf("INV-%s-%s", day.Format("20060102"), strings.ToUpper(short))
}
