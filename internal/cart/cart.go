// Package cart holds the pre-checkout selection of product variants. It is
// independent of the session and mirrors every change to durable storage.
package cart

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

// Persister mirrors the full cart list.
type Persister interface {
	SaveCart(ctx context.Context, items []models.CartItem) error
	LoadCart(ctx context.Context) ([]models.CartItem, error)
}

type Params struct {
	Persister Persister
	Logger    *logger.Logger
}

// Cart keys lines by (product id, size, color).
type Cart struct {
	mu        sync.Mutex
	items     []models.CartItem
	persister Persister
	logg      *logger.Logger
}

func New(params Params) *Cart {
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &Cart{items: []models.CartItem{}, persister: params.Persister, logg: logg}
}

// Hydrate loads the last persisted cart. A missing or unreadable snapshot
// leaves the cart empty.
func (c *Cart) Hydrate(ctx context.Context) {
	if c.persister == nil {
		return
	}
	items, err := c.persister.LoadCart(ctx)
	if err != nil {
		if !errors.Is(err, persistence.ErrNoSnapshot) {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "cart.hydrate_ignored")
		}
		return
	}

	restored := make([]models.CartItem, 0, len(items))
	seen := make(map[models.CartKey]int, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity <= 0 {
			c.logg.Warn(c.logg.WithField(ctx, "product_id", item.ID), "cart.hydrate_dropped_line")
			continue
		}
		if idx, ok := seen[item.Key()]; ok {
			restored[idx].Quantity += item.Quantity
			continue
		}
		seen[item.Key()] = len(restored)
		restored = append(restored, item.Clone())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = restored
}

// AddToCart merges into an existing line with the same variant or appends a
// new line carrying a snapshot of the product.
func (c *Cart) AddToCart(ctx context.Context, product models.Product, quantity int, size, color string) error {
	if product.ID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	size, color = strings.TrimSpace(size), strings.TrimSpace(color)
	if size == "" || color == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "size and color are required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := models.CartKey{ProductID: product.ID, Size: size, Color: color}
	if idx := c.indexLocked(key); idx >= 0 {
		c.items[idx].Quantity += quantity
	} else {
		c.items = append(c.items, models.CartItem{
			Product:       product.Clone(),
			Quantity:      quantity,
			SelectedSize:  size,
			SelectedColor: color,
		})
	}
	c.persistLocked(ctx)
	return nil
}

// RemoveFromCart deletes the matching line.
func (c *Cart) RemoveFromCart(ctx context.Context, productID models.ProductID, size, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(models.CartKey{ProductID: productID, Size: size, Color: color})
	if idx < 0 {
		return lineNotFound(productID)
	}
	c.items = slices.Delete(c.items, idx, idx+1)
	c.persistLocked(ctx)
	return nil
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, productID models.ProductID, size, color string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveFromCart(ctx, productID, size, color)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(models.CartKey{ProductID: productID, Size: size, Color: color})
	if idx < 0 {
		return lineNotFound(productID)
	}
	c.items[idx].Quantity = quantity
	c.persistLocked(ctx)
	return nil
}

func (c *Cart) ClearCart(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []models.CartItem{}
	c.persistLocked(ctx)
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out
}

// Count is the sum of line quantities.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(money.Line(item.Price, item.Quantity))
	}
	return total
}

func (c *Cart) indexLocked(key models.CartKey) int {
	return slices.IndexFunc(c.items, func(item models.CartItem) bool { return item.Key() == key })
}

func (c *Cart) persistLocked(ctx context.Context) {
	if c.persister == nil {
		return
	}
	if err := c.persister.SaveCart(ctx, c.items); err != nil {
		c.logg.Error(c.logg.WithField(ctx, "lines", len(c.items)), "cart.persist_failed", err)
	}
}

func lineNotFound(id models.ProductID) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "cart has no line for product %s with that size and color", id)
}
