package service

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"grocery-store/internal/domain"
	"grocery-store/internal/repository"
	"grocery-store/internal/snapshot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreService is the single coordinating entry point for all business
// operations. It is the only component that orchestrates across the catalog,
// the member roster, the outstanding order queue, and the active cart.
type StoreService interface {
	AddProduct(ctx context.Context, name string, price float64, reorderLevel int) Result
	AddLineItem(ctx context.Context, productID uuid.UUID, quantity int) Result
	ProcessShipment(ctx context.Context, productID uuid.UUID) Result
	CreateOrder(ctx context.Context, productID uuid.UUID, quantity int) Result
	ChangePrice(ctx context.Context, productID uuid.UUID, newPrice float64) Result
	AddMember(ctx context.Context, name, address, phone string, dateJoined time.Time, fee float64) Result
	RemoveMember(ctx context.Context, memberID uuid.UUID) Result
	SearchMembership(ctx context.Context, name string) Result
	Checkout(ctx context.Context, memberID uuid.UUID) Result
	TransactionsOnDate(ctx context.Context, memberID uuid.UUID, date time.Time) iter.Seq[Result]
	RetrieveProductInfo(ctx context.Context, name string) Result
	RetrieveProduct(ctx context.Context, productID uuid.UUID) Result
	Products(ctx context.Context) iter.Seq[Result]
	Members(ctx context.Context) iter.Seq[Result]
	Orders(ctx context.Context) iter.Seq[Result]
	BuildSnapshot(ctx context.Context) *snapshot.Snapshot
	RestoreSnapshot(ctx context.Context, snap *snapshot.Snapshot)
}

type storeService struct {
	// mu serializes every operation. The reconciliation check-then-insert in
	// decreaseStock is only correct when operations run one at a time, and
	// the HTTP surface is a concurrent caller.
	mu      sync.Mutex
	catalog *repository.Catalog
	members *repository.MemberList
	orders  *repository.OrderList
	cart    *repository.Cart
	logger  *zap.Logger
}

// NewStoreService creates the store facade owning the given collections.
func NewStoreService(
	catalog *repository.Catalog,
	members *repository.MemberList,
	orders *repository.OrderList,
	cart *repository.Cart,
	logger *zap.Logger,
) StoreService {
	return &storeService{
		catalog: catalog,
		members: members,
		orders:  orders,
		cart:    cart,
		logger:  logger,
	}
}

// AddProduct creates a product with zero initial stock and inserts it into
// the catalog. A product whose name collides with an existing one is
// rejected, never overwritten. Negative prices and reorder levels are
// rejected.
func (s *storeService) AddProduct(ctx context.Context, name string, price float64, reorderLevel int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || price < 0 || reorderLevel < 0 {
		return failed(OperationFailed)
	}
	if _, err := s.catalog.FindByName(name); err == nil {
		s.logger.Debug("Product name collision", zap.String("name", name))
		return failed(OperationFailed)
	}

	product := domain.NewProduct(name, price, reorderLevel)
	if err := s.catalog.Insert(product); err != nil {
		return failed(OperationFailed)
	}

	s.logger.Info("Product added",
		zap.String("product_id", product.ID.String()),
		zap.String("name", name),
	)
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// AddLineItem records the purchase of a quantity of one product: the line
// item is appended to the active cart and the product's stock is decremented.
// Crossing the reorder threshold places an outstanding order as a side
// effect, reported via the ORDER_PLACED code.
func (s *storeService) AddLineItem(ctx context.Context, productID uuid.UUID, quantity int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return failed(ProductNotFound)
	}
	if quantity <= 0 {
		return failed(OperationFailed)
	}

	item := domain.LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	}
	s.cart.Add(item)

	result := s.decreaseStock(product, quantity)
	result.LineItem = lineItemFields(item)
	return result
}

// decreaseStock subtracts a purchased quantity from the product's stock and
// places a restock order when the result is at or below the reorder level.
// Stock is allowed to go negative. The order is for exactly twice the reorder
// level, and never placed while another order for the product is outstanding,
// so at most one order per product can ever exist.
func (s *storeService) decreaseStock(product *domain.Product, quantity int) Result {
	product.AdjustStock(-quantity)

	if product.NeedsReorder() {
		if _, err := s.orders.FindByProduct(product.ID); errors.Is(err, repository.ErrOrderNotFound) {
			order := domain.NewOrder(product.ID, product.Name, product.ReorderLevel*2)
			if err := s.orders.Add(order); err == nil {
				s.logger.Info("Reorder placed",
					zap.String("product_id", product.ID.String()),
					zap.Int("stock", product.Stock),
					zap.Int("quantity", order.Quantity),
				)
				return Result{Code: OrderPlaced, Product: productFields(product), Order: orderFields(order)}
			}
		}
	}
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// ProcessShipment closes the outstanding order for a product: the ordered
// quantity is credited back to stock and the order is removed from the
// queue. Calling it again for the same product fails cleanly rather than
// double-crediting stock.
func (s *storeService) ProcessShipment(ctx context.Context, productID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.FindByProduct(productID)
	if err != nil {
		return failed(OperationFailed)
	}
	product, err := s.catalog.FindByID(order.ProductID)
	if err != nil {
		return failed(ProductNotFound)
	}

	product.AdjustStock(order.Quantity)
	if err := s.orders.Remove(order.ProductID); err != nil {
		return failed(OperationFailed)
	}

	s.logger.Info("Shipment processed",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", order.Quantity),
		zap.Int("stock", product.Stock),
	)
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// CreateOrder is the manual restock path. Any existing outstanding order for
// the product blocks creation. The product name is denormalized from the
// catalog at placement time.
func (s *storeService) CreateOrder(ctx context.Context, productID uuid.UUID, quantity int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return failed(ProductNotFound)
	}
	if quantity <= 0 {
		return failed(OperationFailed)
	}
	if _, err := s.orders.FindByProduct(productID); err == nil {
		return failed(OperationFailed)
	}

	order := domain.NewOrder(product.ID, product.Name, quantity)
	if err := s.orders.Add(order); err != nil {
		return failed(OperationFailed)
	}

	s.logger.Info("Order created",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity),
	)
	return Result{Code: OperationCompleted, Order: orderFields(order)}
}

// ChangePrice updates a product's price in place.
func (s *storeService) ChangePrice(ctx context.Context, productID uuid.UUID, newPrice float64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return failed(OperationFailed)
	}
	if newPrice < 0 {
		return failed(OperationFailed)
	}

	product.Price = newPrice
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// AddMember enrolls a member.
func (s *storeService) AddMember(ctx context.Context, name, address, phone string, dateJoined time.Time, fee float64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || fee < 0 {
		return failed(OperationFailed)
	}

	member := domain.NewMember(name, address, phone, dateJoined, fee)
	if err := s.members.Add(member); err != nil {
		return failed(OperationFailed)
	}

	s.logger.Info("Member enrolled",
		zap.String("member_id", member.ID.String()),
		zap.String("name", name),
	)
	return Result{Code: OperationCompleted, Member: memberFields(member)}
}

// RemoveMember deletes a member by id.
func (s *storeService) RemoveMember(ctx context.Context, memberID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.members.Remove(memberID); err != nil {
		return failed(OperationFailed)
	}
	s.logger.Info("Member removed", zap.String("member_id", memberID.String()))
	return Result{Code: OperationCompleted}
}

// SearchMembership looks a member up by exact name.
func (s *storeService) SearchMembership(ctx context.Context, name string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.members.FindByName(name)
	if err != nil {
		return failed(NoSuchMember)
	}
	return Result{Code: OperationCompleted, Member: memberFields(member)}
}

// Checkout attributes the active cart to a member: every line item is
// appended to the member's transaction log with a single timestamp, then the
// cart is cleared. An empty cart checks out successfully with no
// transactions recorded.
func (s *storeService) Checkout(ctx context.Context, memberID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.members.FindByID(memberID)
	if err != nil {
		return failed(NoSuchMember)
	}

	now := time.Now()
	items := s.cart.Items()
	for _, item := range items {
		member.RecordTransaction(domain.Transaction{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Timestamp:   now,
		})
	}
	s.cart.Clear()

	s.logger.Info("Checkout completed",
		zap.String("member_id", memberID.String()),
		zap.Int("line_items", len(items)),
	)
	return Result{Code: OperationCompleted, Member: memberFields(member)}
}

// TransactionsOnDate returns the member's transactions on the given calendar
// day as a sequence of field copies. An unknown member yields an empty
// sequence, not an error.
func (s *storeService) TransactionsOnDate(ctx context.Context, memberID uuid.UUID, date time.Time) iter.Seq[Result] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Result
	if member, err := s.members.FindByID(memberID); err == nil {
		for _, t := range member.TransactionsOn(date) {
			results = append(results, Result{Code: OperationCompleted, Transaction: transactionFields(t)})
		}
	}
	return sequence(results)
}

// RetrieveProductInfo looks a product up by name with a linear scan.
func (s *storeService) RetrieveProductInfo(ctx context.Context, name string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByName(name)
	if err != nil {
		return failed(OperationFailed)
	}
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// RetrieveProduct looks a product up by id.
func (s *storeService) RetrieveProduct(ctx context.Context, productID uuid.UUID) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return failed(ProductNotFound)
	}
	return Result{Code: OperationCompleted, Product: productFields(product)}
}

// Products returns a safe iterator over the catalog: field copies are taken
// under the lock, and the sequence is lazy and restartable with no aliasing
// into live store state.
func (s *storeService) Products(ctx context.Context) iter.Seq[Result] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Result
	for p := range s.catalog.All() {
		results = append(results, Result{Code: OperationCompleted, Product: productFields(p)})
	}
	return sequence(results)
}

// Members returns a safe iterator over the member roster.
func (s *storeService) Members(ctx context.Context) iter.Seq[Result] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Result
	for m := range s.members.All() {
		results = append(results, Result{Code: OperationCompleted, Member: memberFields(m)})
	}
	return sequence(results)
}

// Orders returns a safe iterator over the outstanding order queue.
func (s *storeService) Orders(ctx context.Context) iter.Seq[Result] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []Result
	for o := range s.orders.All() {
		results = append(results, Result{Code: OperationCompleted, Order: orderFields(o)})
	}
	return sequence(results)
}

// BuildSnapshot copies the entire store state, members' transaction logs
// included, into a snapshot document. The active cart is transient and not
// captured.
func (s *storeService) BuildSnapshot(ctx context.Context) *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot.Snapshot{SavedAt: time.Now()}
	for p := range s.catalog.All() {
		snap.Products = append(snap.Products, *p)
	}
	for m := range s.members.All() {
		member := *m
		member.Transactions = make([]domain.Transaction, len(m.Transactions))
		copy(member.Transactions, m.Transactions)
		snap.Members = append(snap.Members, member)
	}
	for o := range s.orders.All() {
		snap.Orders = append(snap.Orders, *o)
	}
	return snap
}

// RestoreSnapshot replaces the entire store state with the snapshot contents.
func (s *storeService) RestoreSnapshot(ctx context.Context, snap *snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Replace(snap.Products)
	s.members.Replace(snap.Members)
	s.orders.Replace(snap.Orders)
	s.cart.Clear()

	s.logger.Info("Store restored from snapshot",
		zap.Int("products", len(snap.Products)),
		zap.Int("members", len(snap.Members)),
		zap.Int("orders", len(snap.Orders)),
	)
}

// sequence wraps already-copied results in a lazy, restartable iterator.
func sequence(results []Result) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	}
}
