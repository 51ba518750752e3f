package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/form"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ExportUC usecase.ExportUsecase
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
}

// ExportHandler serves PDF invoices and order reports.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
	metrics  *metrics.Metrics
	loc      *time.Location
	logger   *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		exportUC: params.ExportUC,
		metrics:  params.Metrics,
		loc:      params.Config.Location(),
		logger:   params.Logger,
	}
}

// InvoiceRequest carries the picked delivery day. A blank date means the
// picker was dismissed.
type InvoiceRequest struct {
	Date string `json:"date"`
}

// ExportResponse points at a stored document.
type ExportResponse struct {
	*usecase.ExportFile
	DownloadPath string `json:"download_path"`
}

// Invoice renders the caller's invoice for one delivery day.
func (h *ExportHandler) Invoice(c echo.Context) error {
	uid, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
	}

	var req InvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid invoice input")
	}
	day, err := form.ParseDay(req.Date, h.loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var picker service.DatePicker = service.FixedDate{}
	if day != nil {
		picker = service.FixedDate(*day)
	}

	file, err := h.exportUC.Invoice(c.Request().Context(), uid, picker)

	return h.respond(c, metrics.ExportInvoice, file, err)
}

// Report renders the admin order list under the given filters.
func (h *ExportHandler) Report(c echo.Context) error {
	var query OrderListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid filter input")
	}
	filter, err := toFilter(query, h.loc)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.exportUC.Report(c.Request().Context(), filter)

	return h.respond(c, metrics.ExportReport, file, err)
}

// Download streams a stored document to a caller allowed to read it.
func (h *ExportHandler) Download(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrExportNotFound)
	}

	session, ok := currentSession(c)
	if !ok || !impl.CanOpenExport(session, key) {
		// Foreign documents are reported as missing.
		return response.HandleAppError(c, domainerrors.ErrExportNotFound)
	}

	file, err := h.exportUC.Open(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file.FileName, file.ContentType, file.Data)
}

func (h *ExportHandler) respond(c echo.Context, kind string, file *usecase.ExportFile, err error) error {
	h.metrics.RecordExport(kind, file != nil, err)

	switch {
	case err != nil:
		return response.HandleAppError(c, err)
	case file == nil:
		return c.NoContent(http.StatusNoContent)
	}

	return response.Created(c, ExportResponse{
		ExportFile:   file,
		DownloadPath: DownloadPath(file.Key),
	})
}

// DownloadPath is the API path serving key.
func DownloadPath(key string) string {
	return "/api/v1/exports/files/" + key
}
