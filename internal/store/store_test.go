package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarnosh/My-E-comerce-Store/internal/notifications"
	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	"github.com/zarnosh/My-E-comerce-Store/internal/seed"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/ids"
	"github.com/zarnosh/My-E-comerce-Store/pkg/kvstore"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

var fixedNow = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

type harness struct {
	store      *Store
	notifier   *notifications.Notifier
	bridge     *persistence.Bridge
	session    *kvstore.Memory
	persistent *kvstore.Memory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	session := kvstore.NewMemory()
	persistent := kvstore.NewMemory()
	return newHarnessWith(t, session, persistent)
}

func newHarnessWith(t *testing.T, session, persistent *kvstore.Memory) *harness {
	t.Helper()
	bridge, err := persistence.NewBridge(persistence.Params{Session: session, Persistent: persistent})
	require.NoError(t, err)
	clock := func() time.Time { return fixedNow }
	notifier := notifications.New(notifications.Params{TTL: time.Hour, Clock: clock})
	t.Cleanup(notifier.Close)

	st := New(Params{
		Dataset:   seed.Dataset(),
		Persister: bridge,
		Notifier:  notifier,
		IDs:       ids.NewGenerator(clock),
		Clock:     clock,
	})
	return &harness{store: st, notifier: notifier, bridge: bridge, session: session, persistent: persistent}
}

func (h *harness) login(t *testing.T, email string, role enums.UserRole) models.User {
	t.Helper()
	user, err := h.store.Login(context.Background(), email, role)
	require.NoError(t, err)
	return user
}

func toastMessage(t *testing.T, st *Store) string {
	t.Helper()
	toast, ok := st.Toast()
	require.True(t, ok, "expected a toast")
	return toast.Message
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	if !pkgerrors.IsCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestNewCopiesDataset(t *testing.T) {
	data := seed.Dataset()
	st := New(Params{Dataset: data})
	data.Products[0].Stock = 0

	p, err := st.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock)

	products := st.Products()
	products[0].Sizes[0] = "XXL"
	p, _ = st.Product("p1")
	assert.Equal(t, "S", p.Sizes[0])
}

func TestAddProductAssignsIDAndResetsRating(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.store.AddProduct(ctx, models.Product{
		Name:     "Wool Scarf",
		Price:    35,
		Category: "Accessories",
		Stock:    12,
		Rating:   4.9,
		Reviews:  []models.Review{{ID: "rX", Rating: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProductID("p1709631000000"), created.ID)
	assert.Zero(t, created.Rating)
	assert.Empty(t, created.Reviews)
	require.NotNil(t, created.Seo)

	products := h.store.Products()
	assert.Equal(t, created.ID, products[len(products)-1].ID)
}

func TestAddProductRejectsUnknownCategory(t *testing.T) {
	h := newHarness(t)
	_, err := h.store.AddProduct(context.Background(), models.Product{Name: "Cape", Category: "Capes", Price: 10})
	requireCode(t, err, pkgerrors.CodeValidation)
	details, ok := pkgerrors.As(err).Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "category")
}

func TestUpdateAndDeleteUnknownProduct(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	requireCode(t, h.store.UpdateProduct(ctx, models.Product{ID: "nope", Name: "x", Category: "Men"}), pkgerrors.CodeNotFound)
	requireCode(t, h.store.DeleteProduct(ctx, "nope"), pkgerrors.CodeNotFound)
	assert.Len(t, h.store.Products(), 8)
}

func TestUpdateProductReplacesInPlace(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.store.Product("p3")
	require.NoError(t, err)
	p.Price = 99.5
	require.NoError(t, h.store.UpdateProduct(ctx, p))

	products := h.store.Products()
	assert.Equal(t, models.ProductID("p3"), products[2].ID)
	assert.Equal(t, 99.5, products[2].Price)
}

func TestDeleteMultipleProductsCountsRemoved(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	removed, err := h.store.DeleteMultipleProducts(ctx, []models.ProductID{"p1", "p2", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "2 products deleted successfully.", toastMessage(t, h.store))
	assert.Len(t, h.store.Products(), 6)

	_, err = h.store.DeleteMultipleProducts(ctx, nil)
	requireCode(t, err, pkgerrors.CodeValidation)
	_, err = h.store.DeleteMultipleProducts(ctx, []models.ProductID{"ghost"})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateProductStock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.store.UpdateProductStock(ctx, "p5", 7))
	p, _ := h.store.Product("p5")
	assert.Equal(t, 7, p.Stock)

	requireCode(t, h.store.UpdateProductStock(ctx, "p5", -1), pkgerrors.CodeValidation)
	requireCode(t, h.store.UpdateProductStock(ctx, "nope", 1), pkgerrors.CodeNotFound)
}

func TestCategoryLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.store.AddCategory(ctx, models.Category{Name: " Footwear "})
	require.NoError(t, err)
	assert.Equal(t, "Footwear", created.Name)
	assert.Len(t, h.store.Categories(), 5)

	_, err = h.store.AddCategory(ctx, models.Category{Name: "men"})
	requireCode(t, err, pkgerrors.CodeConflict)

	renamed := models.Category{ID: "1", Name: "Gentlemen"}
	require.NoError(t, h.store.UpdateCategory(ctx, renamed))
	p, _ := h.store.Product("p1")
	assert.Equal(t, "Men", p.Category, "renaming a category does not cascade")

	requireCode(t, h.store.UpdateCategory(ctx, models.Category{ID: "2", Name: "gentlemen"}), pkgerrors.CodeConflict)
	require.NoError(t, h.store.DeleteCategory(ctx, created.ID))
	requireCode(t, h.store.DeleteCategory(ctx, created.ID), pkgerrors.CodeNotFound)
}

func TestDeleteTradeAreaCascadesToItsBranchesOnly(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.store.DeleteTradeArea(ctx, "ta1"))

	areas := h.store.TradeAreas()
	require.Len(t, areas, 1)
	assert.Equal(t, models.TradeAreaID("ta2"), areas[0].ID)

	branches := h.store.Branches()
	require.Len(t, branches, 1)
	assert.Equal(t, models.BranchID("b3"), branches[0].ID)

	requireCode(t, h.store.DeleteTradeArea(ctx, "ta1"), pkgerrors.CodeNotFound)
}

func TestBranchRequiresExistingTradeArea(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.store.AddBranch(ctx, models.Branch{Name: "Queens Corner", TradeAreaID: "ta9"})
	requireCode(t, err, pkgerrors.CodeNotFound)

	created, err := h.store.AddBranch(ctx, models.Branch{Name: "Queens Corner", City: "Queens", TradeAreaID: "ta1"})
	require.NoError(t, err)
	assert.Equal(t, models.BranchID("b1709631000000"), created.ID)

	created.TradeAreaID = "ta9"
	requireCode(t, h.store.UpdateBranch(ctx, created), pkgerrors.CodeNotFound)
	require.NoError(t, h.store.DeleteBranch(ctx, created.ID))
	assert.Len(t, h.store.Branches(), 3)
}

func TestTradeAreaValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.store.AddTradeArea(ctx, models.TradeArea{Name: "", DeliveryRadiusKm: 5})
	requireCode(t, err, pkgerrors.CodeValidation)

	area, err := h.store.AddTradeArea(ctx, models.TradeArea{Name: "Long Island", DeliveryRadiusKm: 40})
	require.NoError(t, err)
	assert.NotNil(t, area.Cities)

	area.Cities = []string{"Hempstead"}
	require.NoError(t, h.store.UpdateTradeArea(ctx, area))
	assert.Equal(t, []string{"Hempstead"}, h.store.TradeAreas()[2].Cities)
}

func TestPromotions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	promo, err := h.store.ActivePromotion("summer20")
	require.NoError(t, err)
	assert.Equal(t, 20, promo.DiscountPercent)

	_, err = h.store.ActivePromotion("EXPIRED5")
	requireCode(t, err, pkgerrors.CodeNotFound)

	_, err = h.store.AddPromotion(ctx, models.Promotion{Code: "HALF", DiscountPercent: 150})
	requireCode(t, err, pkgerrors.CodeValidation)
	_, err = h.store.AddPromotion(ctx, models.Promotion{Code: "newbie10", DiscountPercent: 5})
	requireCode(t, err, pkgerrors.CodeConflict)

	created, err := h.store.AddPromotion(ctx, models.Promotion{Code: "HALF", DiscountPercent: 50, IsActive: true})
	require.NoError(t, err)
	created.IsActive = false
	require.NoError(t, h.store.UpdatePromotion(ctx, created))
	_, err = h.store.ActivePromotion("HALF")
	requireCode(t, err, pkgerrors.CodeNotFound)

	require.NoError(t, h.store.DeletePromotion(ctx, created.ID))
	assert.Len(t, h.store.Promotions(), 3)
}

func TestLoginPersistsSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	user := h.login(t, "customer@example.com", enums.UserRoleCustomer)
	assert.Equal(t, models.UserID("u1"), user.ID)

	current, ok := h.store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	stored, err := h.bridge.LoadSessionUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestLoginRoleIsPartOfTheLookup(t *testing.T) {
	h := newHarness(t)
	_, err := h.store.Login(context.Background(), "customer@example.com", enums.UserRoleAdmin)
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = h.store.Login(context.Background(), "customer@example.com", "owner")
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestLoginMatchesTrimmedEmailExactly(t *testing.T) {
	h := newHarness(t)
	_, err := h.store.Login(context.Background(), "Customer@Example.com", enums.UserRoleCustomer)
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	u, err := h.store.Login(context.Background(), "  customer@example.com ", enums.UserRoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, models.UserID("u1"), u.ID)
}

func TestBlockedLoginLeavesPreviousSession(t *testing.T) {
	h := newHarness(t)

	h.login(t, "admin@example.com", enums.UserRoleAdmin)

	_, err := h.store.Login(context.Background(), "testuser@example.com", enums.UserRoleCustomer)
	requireCode(t, err, pkgerrors.CodeForbidden)
	assert.Equal(t, "This account has been blocked.", toastMessage(t, h.store))

	current, ok := h.store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.UserID("u2"), current.ID)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.login(t, "customer@example.com", enums.UserRoleCustomer)
	h.store.Logout(ctx)

	_, ok := h.store.CurrentUser()
	assert.False(t, ok)
	_, err := h.bridge.LoadSessionUser(ctx)
	assert.ErrorIs(t, err, persistence.ErrNoSnapshot)
}

func TestToggleWishlistWithoutSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.store.ToggleWishlist(context.Background(), "p1")
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	toast, ok := h.store.Toast()
	require.True(t, ok)
	assert.Equal(t, "Please log in to manage your wishlist.", toast.Message)
	assert.Equal(t, enums.ToastKindError, toast.Kind)
}

func TestToggleWishlistUpdatesUserRowAndSnapshot(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t, "customer@example.com", enums.UserRoleCustomer)

	added, err := h.store.ToggleWishlist(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "Added to wishlist", toastMessage(t, h.store))

	added, err = h.store.ToggleWishlist(ctx, "p4")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "Removed from wishlist", toastMessage(t, h.store))

	want := []models.ProductID{"p2", "p1"}
	assert.Equal(t, want, h.store.Users()[0].Wishlist)

	stored, err := h.bridge.LoadSessionUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stored.Wishlist)

	_, err = h.store.ToggleWishlist(ctx, "ghost")
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestWishlistRemovalSurvivesProductDeletion(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t, "customer@example.com", enums.UserRoleCustomer)

	require.NoError(t, h.store.DeleteProduct(ctx, "p4"))
	added, err := h.store.ToggleWishlist(ctx, "p4")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestAddReviewRecomputesRating(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.store.AddReview(ctx, "p1", 3, "ok")
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	h.login(t, "customer@example.com", enums.UserRoleCustomer)
	review, err := h.store.AddReview(ctx, "p1", 3, "Faded after a month.")
	require.NoError(t, err)
	assert.Equal(t, "customer", review.UserName)
	assert.Equal(t, fixedNow, review.Date)

	p, _ := h.store.Product("p1")
	assert.Len(t, p.Reviews, 3)
	assert.Equal(t, 4.0, p.Rating)
	assert.Equal(t, "Thank you for your review!", toastMessage(t, h.store))

	_, err = h.store.AddReview(ctx, "p1", 6, "")
	requireCode(t, err, pkgerrors.CodeValidation)
	_, err = h.store.AddReview(ctx, "ghost", 4, "")
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestAddReviewRoundsToOneDecimal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t, "customer@example.com", enums.UserRoleCustomer)

	_, err := h.store.AddReview(ctx, "p2", 4, "")
	require.NoError(t, err)
	_, err = h.store.AddReview(ctx, "p2", 4, "")
	require.NoError(t, err)

	p, _ := h.store.Product("p2")
	assert.Equal(t, 4.3, p.Rating)
}

func TestAddOrderPrependsAndDecrementsStock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	draft := models.OrderDraft{
		Items:           []models.OrderItem{{ProductID: "p1", Name: "Classic Crewneck T-Shirt", Price: 29.99, Quantity: 2, Size: "M", Color: "Black"}},
		Total:           59.98,
		ShippingAddress: models.ShippingAddress{Name: "Jane Doe", Address: "1 Main St", City: "Boston", Zip: "02101"},
		PaymentMethod:   enums.PaymentMethodCOD,
	}

	_, err := h.store.AddOrder(ctx, draft)
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	h.login(t, "customer@example.com", enums.UserRoleCustomer)
	order, err := h.store.AddOrder(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, models.UserID("u1"), order.UserID)
	assert.Equal(t, fixedNow, order.Date)

	orders := h.store.Orders()
	require.Len(t, orders, 5)
	assert.Equal(t, order.ID, orders[0].ID)

	p, _ := h.store.Product("p1")
	assert.Equal(t, 48, p.Stock)

	assert.Equal(t, []models.OrderID{"o1"}, h.store.Users()[0].Orders, "user order ids are informational only")
}

func TestAddOrderAllowsNegativeStock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t, "customer@example.com", enums.UserRoleCustomer)

	_, err := h.store.AddOrder(ctx, models.OrderDraft{
		Items:         []models.OrderItem{{ProductID: "p4", Quantity: 10}, {ProductID: "gone", Quantity: 1}},
		PaymentMethod: enums.PaymentMethodOnline,
	})
	require.NoError(t, err)

	p, _ := h.store.Product("p4")
	assert.Equal(t, -2, p.Stock)
}

func TestAddOrderValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.login(t, "customer@example.com", enums.UserRoleCustomer)

	_, err := h.store.AddOrder(ctx, models.OrderDraft{PaymentMethod: enums.PaymentMethodCOD})
	requireCode(t, err, pkgerrors.CodeValidation)
	_, err = h.store.AddOrder(ctx, models.OrderDraft{Items: []models.OrderItem{{ProductID: "p1", Quantity: 1}}, PaymentMethod: "Barter"})
	requireCode(t, err, pkgerrors.CodeValidation)
	_, err = h.store.AddOrder(ctx, models.OrderDraft{Items: []models.OrderItem{{ProductID: "p1", Quantity: 0}}, PaymentMethod: enums.PaymentMethodCOD})
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateOrderStatus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.store.UpdateOrderStatus(ctx, "o3", enums.OrderStatusShipped))
	assert.Equal(t, enums.OrderStatusShipped, h.store.Orders()[2].Status)

	requireCode(t, h.store.UpdateOrderStatus(ctx, "o3", "Lost"), pkgerrors.CodeValidation)
	requireCode(t, h.store.UpdateOrderStatus(ctx, "o9", enums.OrderStatusShipped), pkgerrors.CodeNotFound)
}

func TestToggleUserBlockedStatus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	blocked, err := h.store.ToggleUserBlockedStatus(ctx, "u3")
	require.NoError(t, err)
	assert.False(t, blocked)
	h.login(t, "testuser@example.com", enums.UserRoleCustomer)

	_, err = h.store.ToggleUserBlockedStatus(ctx, "u9")
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateFilterSettingsPersistsAndToasts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	assert.Equal(t, models.DefaultFilterSettings(), h.store.FilterSettings())

	settings := models.FilterSettings{Price: true}
	h.store.UpdateFilterSettings(ctx, settings)
	assert.Equal(t, settings, h.store.FilterSettings())
	assert.Equal(t, "Filter settings updated!", toastMessage(t, h.store))

	stored, err := h.bridge.LoadFilterSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, stored)
}

func TestHydrateRestoresSessionAndSettings(t *testing.T) {
	first := newHarness(t)
	ctx := context.Background()
	first.login(t, "customer@example.com", enums.UserRoleCustomer)
	_, err := first.store.ToggleWishlist(ctx, "p8")
	require.NoError(t, err)
	first.store.UpdateFilterSettings(ctx, models.FilterSettings{Size: true})

	restarted := newHarnessWith(t, first.session, first.persistent)
	restarted.store.Hydrate(ctx)

	current, ok := restarted.store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, models.UserID("u1"), current.ID)
	assert.Equal(t, []models.ProductID{"p4", "p2", "p8"}, current.Wishlist)
	assert.Equal(t, models.FilterSettings{Size: true}, restarted.store.FilterSettings())
}

func TestHydrateDropsBlockedOrCorruptSession(t *testing.T) {
	ctx := context.Background()

	session := kvstore.NewMemory()
	persistent := kvstore.NewMemory()
	bridge, err := persistence.NewBridge(persistence.Params{Session: session, Persistent: persistent})
	require.NoError(t, err)
	require.NoError(t, bridge.SaveSessionUser(ctx, models.User{ID: "u3"}))
	require.NoError(t, persistent.Set(ctx, persistence.KeyFilterSettings, []byte("garbage")))

	h := newHarnessWith(t, session, persistent)
	h.store.Hydrate(ctx)

	_, ok := h.store.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, models.DefaultFilterSettings(), h.store.FilterSettings())
	_, err = session.Get(ctx, persistence.KeyCurrentUser)
	assert.True(t, errors.Is(err, kvstore.ErrNotFound))
}

func TestPersistenceFailuresDoNotFailMutations(t *testing.T) {
	st := New(Params{Dataset: seed.Dataset(), Persister: brokenPersister{}})
	ctx := context.Background()

	_, err := st.Login(ctx, "customer@example.com", enums.UserRoleCustomer)
	require.NoError(t, err)
	st.UpdateFilterSettings(ctx, models.FilterSettings{})
	assert.Equal(t, models.FilterSettings{}, st.FilterSettings())
	st.Hydrate(ctx)
}

type brokenPersister struct{}

var errBroken = errors.New("storage offline")

func (brokenPersister) SaveSessionUser(context.Context, models.User) error { return errBroken }
func (brokenPersister) LoadSessionUser(context.Context) (models.User, error) {
	return models.User{}, errBroken
}
func (brokenPersister) ClearSessionUser(context.Context) error                        { return errBroken }
func (brokenPersister) SaveFilterSettings(context.Context, models.FilterSettings) error { return errBroken }
func (brokenPersister) LoadFilterSettings(context.Context) (models.FilterSettings, error) {
	return models.FilterSettings{}, errBroken
}
