package live

import (
	"context"
	"sync"
	"time"

	"storefront/internal/delivery/form"
	"storefront/internal/delivery/notice"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/view"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"
)

// Customer screen actions.
const (
	ActionSearch     = "search"
	ActionPlaceOrder = "place_order"
	ActionSetDay     = "set_day"
	ActionInvoice    = "invoice"
)

type searchPayload struct {
	Query string `json:"query"`
}

type dayPayload struct {
	Date string `json:"date"`
}

type placeOrderPayload struct {
	ProductID    string    `json:"product_id"`
	Quantity     form.Text `json:"quantity"`
	DeliveryDate string    `json:"delivery_date"`
}

// HomeData is the product catalog offered to a customer.
type HomeData struct {
	Products            []*entity.Product `json:"products"`
	Search              string            `json:"search"`
	DefaultDeliveryDate string            `json:"default_delivery_date"`
}

type homeScreen struct {
	s      *session
	mu     sync.Mutex
	search string
}

func newHomeScreen(s *session) screen {
	return &homeScreen{s: s, search: s.params["search"]}
}

func (h *homeScreen) open(ctx context.Context) error {
	h.mu.Lock()
	search := h.search
	h.mu.Unlock()

	return watch(h.s, "products", func(l repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
		return h.s.deps.products.WatchProducts(ctx, search, l)
	}, func(products []*entity.Product) {
		h.s.machine.Deliver(HomeData{
			Products:            products,
			Search:              search,
			DefaultDeliveryDate: view.DefaultDeliveryDate(h.s.deps.today()).Format(form.DayLayout),
		})
	})
}

func (h *homeScreen) handle(ctx context.Context, msg Message) error {
	switch msg.Action {
	case ActionSearch:
		var p searchPayload
		if !h.s.payload(msg, &p) {
			return nil
		}
		h.mu.Lock()
		h.search = p.Query
		h.mu.Unlock()

		return h.open(ctx)

	case ActionPlaceOrder:
		var p placeOrderPayload
		if !h.s.payload(msg, &p) {
			return nil
		}
		day, err := form.ParseDay(p.DeliveryDate, h.s.deps.loc)
		if err != nil {
			return err
		}
		h.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			order, err := h.s.deps.orders.PlaceOrder(ctx, h.s.auth.UID, &usecase.PlaceOrderInput{
				ProductID:    p.ProductID,
				Quantity:     string(p.Quantity),
				DeliveryDate: day,
			})
			if err != nil {
				return nil, "", err
			}

			return order, notice.OrderPlaced, nil
		})

		return nil
	}

	return errUnknownAction
}

// MyOrdersData is a customer's order history.
type MyOrdersData struct {
	Orders     []*entity.Order `json:"orders"`
	GrandTotal float64         `json:"grand_total"`
	Day        string          `json:"day,omitempty"`
}

// ExportResult points at a rendered document.
type ExportResult struct {
	*usecase.ExportFile
	Dismissed bool `json:"dismissed,omitempty"`
}

type myOrdersScreen struct {
	s   *session
	mu  sync.Mutex
	day *time.Time
}

func newMyOrdersScreen(s *session) screen {
	m := &myOrdersScreen{s: s}
	if day, err := form.ParseDay(s.params["day"], s.deps.loc); err == nil {
		m.day = day
	}

	return m
}

func (m *myOrdersScreen) open(ctx context.Context) error {
	m.mu.Lock()
	day := m.day
	m.mu.Unlock()

	return watch(m.s, "orders", func(l repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
		return m.s.deps.orders.WatchMyOrders(ctx, m.s.auth.UID, day, l)
	}, func(orders []*entity.Order) {
		m.s.machine.Deliver(MyOrdersData{
			Orders:     orders,
			GrandTotal: view.GrandTotal(orders),
			Day:        form.FormatDay(day),
		})
	})
}

func (m *myOrdersScreen) handle(ctx context.Context, msg Message) error {
	var p dayPayload
	if !m.s.payload(msg, &p) {
		return nil
	}

	switch msg.Action {
	case ActionSetDay:
		day, err := form.ParseDay(p.Date, m.s.deps.loc)
		if err != nil {
			return err
		}
		m.mu.Lock()
		m.day = day
		m.mu.Unlock()
		m.s.machine.Mount()

		return m.open(ctx)

	case ActionInvoice:
		day, err := form.ParseDay(p.Date, m.s.deps.loc)
		if err != nil {
			return err
		}
		var picker service.DatePicker = service.FixedDate{}
		if day != nil {
			picker = service.FixedDate(*day)
		}
		m.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			file, err := m.s.deps.exports.Invoice(ctx, m.s.auth.UID, picker)
			m.s.deps.metrics.RecordExport(metrics.ExportInvoice, file != nil, err)
			if err != nil {
				return nil, "", err
			}
			if file == nil {
				return ExportResult{Dismissed: true}, "", nil
			}

			return ExportResult{ExportFile: file}, notice.InvoiceReady, nil
		})

		return nil
	}

	return errUnknownAction
}

// ProfileData is the profile screen: the stored profile and today's deliveries.
type ProfileData struct {
	User       *entity.User    `json:"user"`
	Deliveries []*entity.Order `json:"deliveries"`
}

type profileScreen struct {
	s *session
}

func newProfileScreen(s *session) screen {
	return &profileScreen{s: s}
}

func (p *profileScreen) open(ctx context.Context) error {
	user, err := p.s.deps.profile.GetProfile(ctx, p.s.auth.UID)
	if err != nil {
		return err
	}

	return watch(p.s, "deliveries", func(l repository.Listener[[]*entity.Order]) (repository.Unsubscribe, error) {
		return p.s.deps.profile.WatchTodaysDeliveries(ctx, p.s.auth.UID, p.s.deps.today(), l)
	}, func(orders []*entity.Order) {
		p.s.machine.Deliver(ProfileData{User: user, Deliveries: orders})
	})
}

func (p *profileScreen) handle(context.Context, Message) error {
	return errUnknownAction
}
