package live

import (
	"context"
	"sync"

	"storefront/internal/delivery/form"
	"storefront/internal/delivery/notice"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/view"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"
)

// Admin screen actions.
const (
	ActionSetTab        = "set_tab"
	ActionUpdateStatus  = "update_status"
	ActionUpdatePayment = "update_payment"
	ActionDelete        = "delete"
	ActionSetFilter     = "set_filter"
	ActionReport        = "report"
	ActionCreate        = "create"
	ActionSave          = "save"
)

type tabPayload struct {
	Tab string `json:"tab"`
}

type orderChangePayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Payment string `json:"payment"`
}

type idPayload struct {
	ID string `json:"id"`
}

type filterPayload struct {
	Day     string `json:"day"`
	Payment string `json:"payment"`
	Search  string `json:"search"`
}

type createOrderPayload struct {
	UserID       string    `json:"user_id"`
	ProductID    string    `json:"product_id"`
	Quantity     form.Text `json:"quantity"`
	DeliveryDate string    `json:"delivery_date"`
	Payment      string    `json:"payment"`
}

type productPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Unit        string   `json:"unit"`
	ImageURL    string   `json:"image_url"`
}

// changeOrder applies a status or payment change shared by the dashboard and the order list.
func changeOrder(ctx context.Context, s *session, msg Message) bool {
	if msg.Action != ActionUpdateStatus && msg.Action != ActionUpdatePayment {
		return false
	}

	var p orderChangePayload
	if !s.payload(msg, &p) {
		return true
	}
	s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
		if msg.Action == ActionUpdateStatus {
			order, err := s.deps.orders.UpdateStatus(ctx, p.OrderID, entity.OrderStatus(p.Status))
			if err != nil {
				return nil, "", err
			}

			return order, notice.StatusUpdated, nil
		}

		order, err := s.deps.orders.UpdatePayment(ctx, p.OrderID, p.Payment)
		if err != nil {
			return nil, "", err
		}

		return order, notice.PaymentUpdated, nil
	})

	return true
}

type dashboardScreen struct {
	s   *session
	mu  sync.Mutex
	tab view.DashboardTab
}

func newDashboardScreen(s *session) screen {
	return &dashboardScreen{s: s, tab: view.ParseDashboardTab(s.params["tab"])}
}

func (d *dashboardScreen) open(ctx context.Context) error {
	d.mu.Lock()
	tab := d.tab
	d.mu.Unlock()

	return watch(d.s, "dashboard", func(l repository.Listener[*usecase.DashboardOutput]) (repository.Unsubscribe, error) {
		return d.s.deps.orders.WatchDashboard(ctx, tab, d.s.deps.today(), l)
	}, func(out *usecase.DashboardOutput) {
		d.s.machine.Deliver(out)
	})
}

func (d *dashboardScreen) handle(ctx context.Context, msg Message) error {
	if changeOrder(ctx, d.s, msg) {
		return nil
	}
	if msg.Action != ActionSetTab {
		return errUnknownAction
	}

	var p tabPayload
	if !d.s.payload(msg, &p) {
		return nil
	}
	d.mu.Lock()
	d.tab = view.ParseDashboardTab(p.Tab)
	d.mu.Unlock()

	return d.open(ctx)
}

// ProductsData is the admin catalog.
type ProductsData struct {
	Products []*entity.Product `json:"products"`
	Search   string            `json:"search"`
}

type productsScreen struct {
	s        *session
	mu       sync.Mutex
	search   string
	products []*entity.Product
}

func newProductsScreen(s *session) screen {
	return &productsScreen{s: s, search: s.params["search"]}
}

func (p *productsScreen) open(ctx context.Context) error {
	p.mu.Lock()
	search := p.search
	p.mu.Unlock()

	return watch(p.s, "products", func(l repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
		return p.s.deps.products.WatchProducts(ctx, search, l)
	}, func(products []*entity.Product) {
		p.mu.Lock()
		p.products = products
		p.mu.Unlock()
		p.s.machine.Deliver(ProductsData{Products: products, Search: search})
	})
}

func (p *productsScreen) nameOf(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, product := range p.products {
		if product.ID == id {
			return product.Name
		}
	}

	return ""
}

func (p *productsScreen) handle(ctx context.Context, msg Message) error {
	switch msg.Action {
	case ActionSearch:
		var payload searchPayload
		if !p.s.payload(msg, &payload) {
			return nil
		}
		p.mu.Lock()
		p.search = payload.Query
		p.mu.Unlock()

		return p.open(ctx)

	case ActionDelete:
		var payload idPayload
		if !p.s.payload(msg, &payload) {
			return nil
		}
		name := p.nameOf(payload.ID)
		p.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			if err := p.s.deps.products.DeleteProduct(ctx, payload.ID); err != nil {
				return nil, "", err
			}

			return nil, notice.ProductDeleted(name), nil
		})

		return nil
	}

	return errUnknownAction
}

// OrdersListData is the filtered admin order list.
type OrdersListData struct {
	Orders     []*entity.CustomerOrder `json:"orders"`
	GrandTotal float64                 `json:"grand_total"`
	Filter     filterPayload           `json:"filter"`
}

type ordersListScreen struct {
	s      *session
	mu     sync.Mutex
	filter filterPayload
}

func newOrdersListScreen(s *session) screen {
	return &ordersListScreen{s: s, filter: filterPayload{
		Day:     s.params["day"],
		Payment: s.params["payment"],
		Search:  s.params["search"],
	}}
}

func (o *ordersListScreen) current() (filterPayload, *usecase.OrderFilter, error) {
	o.mu.Lock()
	raw := o.filter
	o.mu.Unlock()

	day, err := form.ParseDay(raw.Day, o.s.deps.loc)
	if err != nil {
		return raw, nil, err
	}

	return raw, &usecase.OrderFilter{Day: day, Payment: raw.Payment, CustomerSearch: raw.Search}, nil
}

func (o *ordersListScreen) open(ctx context.Context) error {
	raw, filter, err := o.current()
	if err != nil {
		return err
	}

	return watch(o.s, "orders", func(l repository.Listener[[]*entity.CustomerOrder]) (repository.Unsubscribe, error) {
		return o.s.deps.orders.WatchOrders(ctx, filter, l)
	}, func(orders []*entity.CustomerOrder) {
		o.s.machine.Deliver(OrdersListData{Orders: orders, GrandTotal: view.GrandTotal(orders), Filter: raw})
	})
}

func (o *ordersListScreen) handle(ctx context.Context, msg Message) error {
	if changeOrder(ctx, o.s, msg) {
		return nil
	}

	switch msg.Action {
	case ActionSetFilter:
		var p filterPayload
		if !o.s.payload(msg, &p) {
			return nil
		}
		if _, err := form.ParseDay(p.Day, o.s.deps.loc); err != nil {
			return err
		}
		o.mu.Lock()
		o.filter = p
		o.mu.Unlock()
		o.s.machine.Mount()

		return o.open(ctx)

	case ActionReport:
		_, filter, err := o.current()
		if err != nil {
			return err
		}
		o.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			file, err := o.s.deps.exports.Report(ctx, filter)
			o.s.deps.metrics.RecordExport(metrics.ExportReport, file != nil, err)
			if err != nil {
				return nil, "", err
			}

			return ExportResult{ExportFile: file}, notice.ReportReady, nil
		})

		return nil
	}

	return errUnknownAction
}

// AddOrderData holds the pickers of the admin order form.
type AddOrderData struct {
	Customers           []*entity.User    `json:"customers"`
	Products            []*entity.Product `json:"products"`
	DefaultDeliveryDate string            `json:"default_delivery_date"`
}

type addOrderScreen struct {
	s         *session
	mu        sync.Mutex
	customers []*entity.User
	products  []*entity.Product
	loaded    int
}

const (
	addOrderCustomers = 1 << iota
	addOrderProducts
	addOrderAll = addOrderCustomers | addOrderProducts
)

func newAddOrderScreen(s *session) screen {
	return &addOrderScreen{s: s}
}

// publish delivers once both pickers have data.
func (a *addOrderScreen) publish(part int, apply func()) {
	a.mu.Lock()
	apply()
	a.loaded |= part
	ready := a.loaded == addOrderAll
	data := AddOrderData{
		Customers:           a.customers,
		Products:            a.products,
		DefaultDeliveryDate: view.DefaultDeliveryDate(a.s.deps.today()).Format(form.DayLayout),
	}
	a.mu.Unlock()

	if ready {
		a.s.machine.Deliver(data)
	}
}

func (a *addOrderScreen) open(ctx context.Context) error {
	a.mu.Lock()
	a.loaded = 0
	a.mu.Unlock()

	err := watch(a.s, "customers", func(l repository.Listener[[]*entity.User]) (repository.Unsubscribe, error) {
		return a.s.deps.orders.WatchCustomers(ctx, l)
	}, func(users []*entity.User) {
		a.publish(addOrderCustomers, func() { a.customers = users })
	})
	if err != nil {
		return err
	}

	return watch(a.s, "products", func(l repository.Listener[[]*entity.Product]) (repository.Unsubscribe, error) {
		return a.s.deps.products.WatchProducts(ctx, "", l)
	}, func(products []*entity.Product) {
		a.publish(addOrderProducts, func() { a.products = products })
	})
}

func (a *addOrderScreen) handle(ctx context.Context, msg Message) error {
	if msg.Action != ActionCreate {
		return errUnknownAction
	}

	var p createOrderPayload
	if !a.s.payload(msg, &p) {
		return nil
	}
	day, err := form.ParseDay(p.DeliveryDate, a.s.deps.loc)
	if err != nil {
		return err
	}
	a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
		order, err := a.s.deps.orders.CreateOrder(ctx, &usecase.CreateOrderInput{
			UserID:       p.UserID,
			ProductID:    p.ProductID,
			Quantity:     string(p.Quantity),
			DeliveryDate: day,
			Payment:      p.Payment,
		})
		if err != nil {
			return nil, "", err
		}

		return order, notice.OrderCreated, nil
	})

	return nil
}

// ProductEditorData is the product being edited, or nil for a new one.
type ProductEditorData struct {
	Product *entity.Product `json:"product"`
}

type productEditorScreen struct {
	s  *session
	id string
}

func newProductEditorScreen(s *session) screen {
	return &productEditorScreen{s: s, id: s.params["id"]}
}

func (e *productEditorScreen) open(ctx context.Context) error {
	if e.id == "" {
		e.s.machine.Deliver(ProductEditorData{})

		return nil
	}

	return watch(e.s, "product", func(l repository.Listener[*entity.Product]) (repository.Unsubscribe, error) {
		return e.s.deps.products.WatchProduct(ctx, e.id, l)
	}, func(product *entity.Product) {
		e.s.machine.Deliver(ProductEditorData{Product: product})
	})
}

func (e *productEditorScreen) handle(ctx context.Context, msg Message) error {
	if msg.Action != ActionSave {
		return errUnknownAction
	}

	var p productPayload
	if !e.s.payload(msg, &p) {
		return nil
	}
	input := &usecase.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		ImageURL:    p.ImageURL,
	}
	e.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
		if e.id == "" {
			product, err := e.s.deps.products.CreateProduct(ctx, input)
			if err != nil {
				return nil, "", err
			}

			return product, notice.ProductAdded, nil
		}

		product, err := e.s.deps.products.UpdateProduct(ctx, e.id, input)
		if err != nil {
			return nil, "", err
		}

		return product, notice.ProductUpdated, nil
	})

	return nil
}
