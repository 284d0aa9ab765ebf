package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarnosh/My-E-comerce-Store/internal/cart"
	"github.com/zarnosh/My-E-comerce-Store/internal/seed"
	"github.com/zarnosh/My-E-comerce-Store/internal/store"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

var address = models.ShippingAddress{Name: "Jane Doe", Address: "123 Fashion Ave", City: "New York", Zip: "10001"}

func newCheckout(t *testing.T, delay time.Duration) (*Service, *store.Store, *cart.Cart) {
	t.Helper()
	st := store.New(store.Params{Dataset: seed.Dataset()})
	c := cart.New(cart.Params{})
	svc, err := NewService(ServiceParams{Orders: st, Cart: c, Delay: delay})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc, st, c
}

func fillCart(t *testing.T, st *store.Store, c *cart.Cart) {
	t.Helper()
	p1, err := st.Product("p1")
	require.NoError(t, err)
	require.NoError(t, c.AddToCart(context.Background(), p1, 2, "M", "White"))
	p3, err := st.Product("p3")
	require.NoError(t, err)
	require.NoError(t, c.AddToCart(context.Background(), p3, 1, "S", "Rose"))
}

func TestNewServiceValidatesDeps(t *testing.T) {
	_, err := NewService(ServiceParams{Cart: cart.New(cart.Params{})})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	_, err = NewService(ServiceParams{Orders: store.New(store.Params{})})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestPlaceOrderRequiresSessionAndItems(t *testing.T) {
	svc, st, _ := newCheckout(t, time.Millisecond)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized))

	_, err = st.Login(ctx, "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestPlaceOrderClearsCartAfterDelay(t *testing.T) {
	svc, st, c := newCheckout(t, 10*time.Millisecond)
	ctx := context.Background()
	_, err := st.Login(ctx, "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	fillCart(t, st, c)

	pending, err := svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodOnline})
	require.NoError(t, err)

	order := pending.Order
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, 189.97, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderItem{ProductID: "p1", Name: "Classic Crewneck T-Shirt", Price: 29.99, Quantity: 2, Size: "M", Color: "White"}, order.Items[0])
	assert.Equal(t, order.ID, st.Orders()[0].ID)

	lineTotal := 0.0
	for _, item := range order.Items {
		lineTotal += item.Price * float64(item.Quantity)
	}
	assert.InDelta(t, lineTotal, order.Total, 0.001)

	p1, _ := st.Product("p1")
	assert.Equal(t, 48, p1.Stock)

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, pending.Wait(waitCtx))
	assert.True(t, pending.Cleared())
	assert.Empty(t, c.Items())
}

func TestCancelledCheckoutKeepsCart(t *testing.T) {
	svc, st, c := newCheckout(t, time.Hour)
	ctx := context.Background()
	_, err := st.Login(ctx, "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	fillCart(t, st, c)

	pending, err := svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	require.NoError(t, err)
	pending.Cancel()
	pending.Cancel()

	<-pending.Done()
	assert.False(t, pending.Cleared())
	assert.Len(t, c.Items(), 2)
	assert.Len(t, st.Orders(), 5, "the order itself stands")
}

func TestContextEndAbandonsClear(t *testing.T) {
	svc, st, c := newCheckout(t, time.Hour)
	_, err := st.Login(context.Background(), "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	fillCart(t, st, c)

	ctx, cancel := context.WithCancel(context.Background())
	pending, err := svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	require.NoError(t, err)
	cancel()

	<-pending.Done()
	assert.False(t, pending.Cleared())
	assert.Len(t, c.Items(), 2)
}

func TestCloseStopsPendingAndRejectsNewOrders(t *testing.T) {
	svc, st, c := newCheckout(t, time.Hour)
	ctx := context.Background()
	_, err := st.Login(ctx, "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	fillCart(t, st, c)

	pending, err := svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	require.NoError(t, err)

	svc.Close()
	select {
	case <-pending.Done():
	default:
		t.Fatal("pending checkout should be finished after Close")
	}
	assert.False(t, pending.Cleared())

	_, err = svc.PlaceOrder(ctx, Input{ShippingAddress: address, PaymentMethod: enums.PaymentMethodCOD})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}
