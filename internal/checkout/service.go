// Package checkout turns the cart into an order and clears the cart after a
// simulated processing delay.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

// DefaultDelay is the simulated payment processing time.
const DefaultDelay = 1500 * time.Millisecond

// OrderPlacer is the part of the entity store checkout needs.
type OrderPlacer interface {
	CurrentUser() (models.User, bool)
	AddOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error)
}

// CartSource is the part of the cart checkout needs.
type CartSource interface {
	Items() []models.CartItem
	ClearCart(ctx context.Context)
}

type ServiceParams struct {
	Orders OrderPlacer
	Cart   CartSource
	Delay  time.Duration
	Logger *logger.Logger
}

// Input is what the shopper fills in on the checkout form.
type Input struct {
	ShippingAddress models.ShippingAddress
	PaymentMethod   enums.PaymentMethod
}

type Service struct {
	orders OrderPlacer
	cart   CartSource
	delay  time.Duration
	logg   *logger.Logger

	base    context.Context
	stopAll context.CancelFunc
	wg      sync.WaitGroup
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order placer is required")
	}
	if params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is required")
	}
	delay := params.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	base, stop := context.WithCancel(context.Background())
	return &Service{
		orders:  params.Orders,
		cart:    params.Cart,
		delay:   delay,
		logg:    logg,
		base:    base,
		stopAll: stop,
	}, nil
}

// PlaceOrder snapshots the cart into an order for the session user and
// schedules the cart clear. Cancelling ctx, the returned Pending or the
// service before the delay elapses leaves the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, in Input) (*Pending, error) {
	if _, ok := s.orders.CurrentUser(); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to check out")
	}
	if err := s.base.Err(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checkout is shutting down")
	}
	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make([]models.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(money.Line(line.Price, line.Quantity))
		items = append(items, models.OrderItem{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Size:      line.SelectedSize,
			Color:     line.SelectedColor,
		})
	}
	order, err := s.orders.AddOrder(ctx, models.OrderDraft{
		Items:           items,
		Total:           money.Float(total),
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	pending := &Pending{Order: order, done: make(chan struct{}), stop: make(chan struct{})}
	s.wg.Add(1)
	go s.finish(s.logg.WithOrderID(context.WithoutCancel(ctx), string(order.ID)), ctx, pending)
	return pending, nil
}

// Close cancels every pending cart clear and waits for them to stop.
func (s *Service) Close() {
	s.stopAll()
	s.wg.Wait()
}

func (s *Service) finish(logCtx, ctx context.Context, p *Pending) {
	defer s.wg.Done()
	defer close(p.done)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.cart.ClearCart(logCtx)
		p.mu.Lock()
		p.cleared = true
		p.mu.Unlock()
		s.logg.Info(logCtx, "checkout.cart_cleared")
	case <-p.stop:
		s.logg.Info(logCtx, "checkout.cancelled")
	case <-ctx.Done():
		s.logg.Info(logCtx, "checkout.abandoned")
	case <-s.base.Done():
		s.logg.Info(logCtx, "checkout.shutdown")
	}
}

// Pending is an order whose processing delay is still running.
type Pending struct {
	Order models.Order

	done     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	cleared bool
}

// Done is closed once the delay has finished or been cancelled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the pending work finishes or ctx ends.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel skips the cart clear if it has not happened yet.
func (p *Pending) Cancel() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Cleared reports whether the cart was cleared.
func (p *Pending) Cleared() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cleared
}
