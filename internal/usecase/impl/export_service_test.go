package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/document"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exportServiceFixtures struct {
	service   *exportService
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	orders    *mockUsecase.MockOrderUsecase
	qrCodes   *mockSvc.MockQRCodeService
	renderer  *mockSvc.MockDocumentRenderer
	files     *mockSvc.MockFileStore
	loc       *time.Location
	now       time.Time
}

func createTestExportService(t *testing.T) exportServiceFixtures {
	loc := testLocation(t)
	fx := exportServiceFixtures{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		orders:    mockUsecase.NewMockOrderUsecase(t),
		qrCodes:   mockSvc.NewMockQRCodeService(t),
		renderer:  mockSvc.NewMockDocumentRenderer(t),
		files:     mockSvc.NewMockFileStore(t),
		loc:       loc,
		now:       time.Date(2024, 3, 10, 12, 0, 0, 0, loc),
	}

	svc := NewExportService(ExportServiceParams{
		OrderRepo: fx.orderRepo,
		UserRepo:  fx.userRepo,
		Orders:    fx.orders,
		QRCodes:   fx.qrCodes,
		Renderer:  fx.renderer,
		Files:     fx.files,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*exportService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func TestExportService_Invoice_PickerDismissed(t *testing.T) {
	fx := createTestExportService(t)

	file, err := fx.service.Invoice(context.Background(), "uid-1", service.FixedDate{})
	assert.NoError(t, err)
	assert.Nil(t, file)
}

func TestExportService_Invoice_PickerError(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	picker := mockSvc.NewMockDatePicker(t)
	picker.EXPECT().Pick(ctx).Return(time.Time{}, false, errors.New("cancelled"))

	_, err := fx.service.Invoice(ctx, "uid-1", picker)
	assert.Error(t, err)
}

func TestExportService_Invoice_NothingToExport(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 12, 0, 0, 0, 0, fx.loc)
	fx.orderRepo.EXPECT().Find(ctx, mock.Anything).Return([]*entity.Order{}, nil)

	file, err := fx.service.Invoice(ctx, "uid-1", service.FixedDate(day))
	assert.Nil(t, file)
	assert.ErrorIs(t, err, domainerrors.ErrNothingToExport)
	assert.Equal(t, domainerrors.ErrNothingToInvoice.Message(), err.(domainerrors.AppError).Message())
}

func TestExportService_Invoice_RendersAndStores(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 12, 0, 0, 0, 0, fx.loc)
	orders := []*entity.Order{
		{ID: "o1", UserID: "uid-1", ProductName: "Rice", Price: 50, Quantity: 2, TotalPrice: 100, Unit: entity.UnitKilogram, DeliveryDate: day},
	}
	fx.orderRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(q repository.OrderQuery) bool {
			return q.UserID == "uid-1" && q.Delivery.From.Equal(day)
		})).
		Return(orders, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)
	fx.qrCodes.EXPECT().GenerateInvoiceQR("INV-20240312-UID-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.renderer.EXPECT().
		RenderPDF(ctx, mock.MatchedBy(func(markup string) bool {
			return strings.Contains(markup, "Arya &amp; Co") && strings.Contains(markup, "data:image/png;base64,")
		})).
		Return([]byte("%PDF-1.7"), nil)
	fx.files.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "invoices/uid-1/") && strings.HasSuffix(key, "/Invoice_2024-03-12.pdf")
		}), []byte("%PDF-1.7"), document.ContentTypePDF).
		Return("mem://invoices/uid-1/x/Invoice_2024-03-12.pdf", nil)

	file, err := fx.service.Invoice(ctx, "uid-1", service.FixedDate(day))
	require.NoError(t, err)
	assert.Equal(t, "Invoice_2024-03-12.pdf", file.FileName)
	assert.Equal(t, document.ContentTypePDF, file.ContentType)
	assert.True(t, IsExportKey(file.Key))
}

func TestExportService_Invoice_RenderFailure(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 12, 0, 0, 0, 0, fx.loc)
	fx.orderRepo.EXPECT().Find(ctx, mock.Anything).Return([]*entity.Order{{ID: "o1", DeliveryDate: day}}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.User{Name: "Asha"}, nil)
	fx.qrCodes.EXPECT().GenerateInvoiceQR(mock.Anything).Return(nil, errors.New("qr failed"))
	fx.renderer.EXPECT().RenderPDF(ctx, mock.Anything).Return(nil, errors.New("browser crashed"))

	_, err := fx.service.Invoice(ctx, "uid-1", service.FixedDate(day))
	assert.ErrorIs(t, err, domainerrors.ErrRenderFailed)
}

func TestExportService_Report_NothingToExportSkipsRenderer(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	filter := &usecase.OrderFilter{Payment: "paid"}
	fx.orders.EXPECT().ListOrders(ctx, filter).Return([]*entity.CustomerOrder{}, nil)

	file, err := fx.service.Report(ctx, filter)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, domainerrors.ErrNothingToExport)
}

func TestExportService_Report_NamedByExportDay(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, fx.loc)
	filter := &usecase.OrderFilter{Day: &day}
	rows := []*entity.CustomerOrder{
		{Order: &entity.Order{ID: "o1", ProductName: "Rice", TotalPrice: 10}, UserName: "Asha", UserPhone: "+91"},
	}
	fx.orders.EXPECT().ListOrders(ctx, filter).Return(rows, nil)
	fx.renderer.EXPECT().
		RenderPDF(ctx, mock.MatchedBy(func(markup string) bool { return strings.Contains(markup, "15 Mar 2024") })).
		Return([]byte("%PDF"), nil)
	fx.files.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "reports/") && strings.HasSuffix(key, "/Orders_2024-03-10.pdf")
		}), []byte("%PDF"), document.ContentTypePDF).
		Return("file:///exports/reports/x/Orders_2024-03-10.pdf", nil)

	file, err := fx.service.Report(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, "Orders_2024-03-10.pdf", file.FileName)
	assert.Equal(t, "file:///exports/reports/x/Orders_2024-03-10.pdf", file.URI)
}

func TestExportService_Open(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	key := "reports/abc/Orders_2024-03-10.pdf"
	fx.files.EXPECT().Open(ctx, key).Return(io.NopCloser(strings.NewReader("%PDF")), nil)
	fx.files.EXPECT().Open(ctx, "reports/missing.pdf").Return(nil, service.ErrFileNotFound)

	file, err := fx.service.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Orders_2024-03-10.pdf", file.FileName)
	assert.Equal(t, []byte("%PDF"), file.Data)

	_, err = fx.service.Open(ctx, "reports/missing.pdf")
	assert.ErrorIs(t, err, domainerrors.ErrExportNotFound)

	_, err = fx.service.Open(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, domainerrors.ErrExportNotFound)
}

func TestCanOpenExport(t *testing.T) {
	customer := &entity.Session{Identity: entity.Identity{UID: "u1"}, Role: entity.RoleUser}
	admin := &entity.Session{Identity: entity.Identity{UID: "a1"}, Role: entity.RoleAdmin}

	assert.True(t, CanOpenExport(customer, "invoices/u1/x/Invoice_2024-03-12.pdf"))
	assert.False(t, CanOpenExport(customer, "invoices/u2/x/Invoice_2024-03-12.pdf"))
	assert.False(t, CanOpenExport(customer, "reports/x/Orders_2024-03-10.pdf"))
	assert.True(t, CanOpenExport(admin, "reports/x/Orders_2024-03-10.pdf"))
	assert.True(t, CanOpenExport(admin, "invoices/u2/x/Invoice_2024-03-12.pdf"))
	assert.False(t, CanOpenExport(admin, "invoices/../secrets"))
	assert.False(t, CanOpenExport(nil, "reports/x.pdf"))
}
