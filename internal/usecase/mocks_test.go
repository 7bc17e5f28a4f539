package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"
	"github.com/vandev268/fastfood-server/internal/usecase"
)

// txManagerStub runs fn against one fixed set of in-memory repos. Rollback
// is not simulated; tests assert on returned errors instead.
type txManagerStub struct {
	repos *txReposStub
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type txReposStub struct {
	orders       *orderRepoStub
	orderItems   *orderItemRepoStub
	variants     *variantRepoStub
	coupons      *couponRepoStub
	cartItems    *cartItemRepoStub
	draftItems   *draftItemRepoStub
	tables       *tableRepoStub
	reservations *reservationRepoStub
	addresses    *addressRepoStub
	users        *userRepoStub
	auditLogs    *auditLogRepoStub
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		orders:       &orderRepoStub{orders: map[int64]model.Order{}},
		orderItems:   &orderItemRepoStub{byOrder: map[int64][]model.OrderItem{}},
		variants:     &variantRepoStub{stock: map[int64]int64{}},
		coupons:      &couponRepoStub{coupons: map[int64]model.Coupon{}},
		cartItems:    &cartItemRepoStub{},
		draftItems:   &draftItemRepoStub{drafts: map[string][]model.DraftItem{}},
		tables:       &tableRepoStub{tables: map[int64]model.Table{}},
		reservations: &reservationRepoStub{reservations: map[int64]model.Reservation{}},
		addresses:    &addressRepoStub{addresses: map[int64]model.Address{}},
		users:        &userRepoStub{byEmail: map[string]model.User{}},
		auditLogs:    &auditLogRepoStub{},
	}
}

func (r *txReposStub) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposStub) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *txReposStub) Variants() repo.VariantRepository         { return r.variants }
func (r *txReposStub) Coupons() repo.CouponRepository           { return r.coupons }
func (r *txReposStub) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *txReposStub) DraftItems() repo.DraftItemRepository     { return r.draftItems }
func (r *txReposStub) Tables() repo.TableRepository             { return r.tables }
func (r *txReposStub) Reservations() repo.ReservationRepository { return r.reservations }
func (r *txReposStub) Addresses() repo.AddressRepository        { return r.addresses }
func (r *txReposStub) Users() repo.UserRepository               { return r.users }
func (r *txReposStub) AuditLogs() repo.AuditLogRepository       { return r.auditLogs }

type orderRepoStub struct {
	nextID        int64
	orders        map[int64]model.Order
	connectedTabs map[int64][]int64
}

func (s *orderRepoStub) Create(ctx context.Context, order model.Order) (int64, error) {
	s.nextID++
	order.ID = s.nextID
	s.orders[order.ID] = order
	return order.ID, nil
}

func (s *orderRepoStub) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (s *orderRepoStub) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if f.Channel != "" && o.Channel != f.Channel {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (s *orderRepoStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, handlerID int64) error {
	o, ok := s.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	o.HandlerID = &handlerID
	s.orders[orderID] = o
	return nil
}

func (s *orderRepoStub) UpdatePayment(ctx context.Context, orderID int64, status model.OrderStatus, payment model.Payment) error {
	o, ok := s.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Payment = payment
	if status != "" {
		o.Status = status
	}
	s.orders[orderID] = o
	return nil
}

func (s *orderRepoStub) ConnectTables(ctx context.Context, orderID int64, tableIDs []int64) error {
	if s.connectedTabs == nil {
		s.connectedTabs = map[int64][]int64{}
	}
	s.connectedTabs[orderID] = tableIDs
	return nil
}

type orderItemRepoStub struct {
	byOrder map[int64][]model.OrderItem
}

func (s *orderItemRepoStub) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	for i := range items {
		items[i].OrderID = orderID
	}
	s.byOrder[orderID] = append(s.byOrder[orderID], items...)
	return nil
}

func (s *orderItemRepoStub) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return s.byOrder[orderID], nil
}

type variantRepoStub struct {
	stock     map[int64]int64
	increases map[int64]int64
}

func (s *variantRepoStub) DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error) {
	if s.stock[variantID] < qty {
		return false, nil
	}
	s.stock[variantID] -= qty
	return true, nil
}

func (s *variantRepoStub) IncreaseStock(ctx context.Context, variantID int64, qty int64) error {
	s.stock[variantID] += qty
	if s.increases == nil {
		s.increases = map[int64]int64{}
	}
	s.increases[variantID] += qty
	return nil
}

type couponRepoStub struct {
	coupons map[int64]model.Coupon
	usage   map[int64]int64
}

func (s *couponRepoStub) FindActiveByID(ctx context.Context, couponID int64) (model.Coupon, error) {
	c, ok := s.coupons[couponID]
	if !ok || !c.IsActive {
		return model.Coupon{}, repo.ErrNotFound
	}
	return c, nil
}

func (s *couponRepoStub) IncrementUsage(ctx context.Context, couponID int64) error {
	if s.usage == nil {
		s.usage = map[int64]int64{}
	}
	s.usage[couponID]++
	return nil
}

type cartItemRepoStub struct {
	deleted []int64
}

func (s *cartItemRepoStub) DeleteByIDs(ctx context.Context, userID int64, ids []int64) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

type draftItemRepoStub struct {
	drafts  map[string][]model.DraftItem
	cleared []string
}

func (s *draftItemRepoStub) ListByCode(ctx context.Context, draftCode string) ([]model.DraftItem, error) {
	return s.drafts[draftCode], nil
}

func (s *draftItemRepoStub) DeleteByCode(ctx context.Context, draftCode string) (int64, error) {
	n := int64(len(s.drafts[draftCode]))
	delete(s.drafts, draftCode)
	s.cleared = append(s.cleared, draftCode)
	return n, nil
}

type tableRepoStub struct {
	tables        map[int64]model.Table
	statusUpdates map[int64]model.TableStatus
}

func (s *tableRepoStub) FindByID(ctx context.Context, tableID int64) (model.Table, error) {
	t, ok := s.tables[tableID]
	if !ok {
		return model.Table{}, repo.ErrNotFound
	}
	return t, nil
}

func (s *tableRepoStub) UpdateStatusBulk(ctx context.Context, tableIDs []int64, status model.TableStatus) error {
	if s.statusUpdates == nil {
		s.statusUpdates = map[int64]model.TableStatus{}
	}
	for _, id := range tableIDs {
		s.statusUpdates[id] = status
	}
	return nil
}

type reservationRepoStub struct {
	reservations  map[int64]model.Reservation
	statusUpdates map[int64]model.ReservationStatus
}

func (s *reservationRepoStub) FindByID(ctx context.Context, reservationID int64) (model.Reservation, error) {
	r, ok := s.reservations[reservationID]
	if !ok {
		return model.Reservation{}, repo.ErrNotFound
	}
	return r, nil
}

func (s *reservationRepoStub) UpdateStatus(ctx context.Context, reservationID int64, status model.ReservationStatus) error {
	if s.statusUpdates == nil {
		s.statusUpdates = map[int64]model.ReservationStatus{}
	}
	s.statusUpdates[reservationID] = status
	return nil
}

type addressRepoStub struct {
	nextID    int64
	addresses map[int64]model.Address
}

func (s *addressRepoStub) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	a, ok := s.addresses[addressID]
	if !ok {
		return model.Address{}, repo.ErrNotFound
	}
	return a, nil
}

func (s *addressRepoStub) Create(ctx context.Context, address model.Address) (int64, error) {
	s.nextID++
	address.ID = s.nextID
	s.addresses[address.ID] = address
	return address.ID, nil
}

type userRepoStub struct {
	nextID  int64
	byEmail map[string]model.User
}

func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) Create(ctx context.Context, user model.User) (int64, error) {
	s.nextID++
	user.ID = s.nextID
	s.byEmail[user.Email] = user
	return user.ID, nil
}

type auditLogRepoStub struct {
	logs []model.AuditLog
}

func (s *auditLogRepoStub) Create(ctx context.Context, log model.AuditLog) error {
	s.logs = append(s.logs, log)
	return nil
}

type schedulerStub struct {
	mu        sync.Mutex
	scheduled []int64
	cancelled []int64
}

func (s *schedulerStub) Schedule(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, orderID)
}

func (s *schedulerStub) Cancel(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = append(s.cancelled, orderID)
}

type gatewayStub struct {
	url        string
	err        error
	amounts    []int64
	orderInfos []string
}

func (g *gatewayStub) GeneratePaymentURL(ctx context.Context, amount int64, orderInfo string) (string, error) {
	g.amounts = append(g.amounts, amount)
	g.orderInfos = append(g.orderInfos, orderInfo)
	if g.err != nil {
		return "", g.err
	}
	return g.url, nil
}

type notifierStub struct {
	events []usecase.OrderEvent
}

func (n *notifierStub) PublishOrderEvent(ctx context.Context, ev usecase.OrderEvent) error {
	n.events = append(n.events, ev)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func repoFilter(page, limit int) repo.OrderListFilter {
	return repo.OrderListFilter{Page: page, Limit: limit}
}
