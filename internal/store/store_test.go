package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/order"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
	"github.com/hbenomar/macstore-backend/internal/store"
)

func testSnapshot() *store.Snapshot {
	snap := store.Empty()
	snap.Products = []catalog.Product{
		{ID: "p1", Name: "iPhone 15 Pro Max", Category: catalog.CategoryIPhone, Price: 15990, Stock: 45, Specs: []string{"Titane"}},
		{ID: "p2", Name: "MacBook Air M2", Category: catalog.CategoryMacBook, Price: 13490, Stock: 3},
	}
	snap.Users = []user.Account{
		{ID: "r1", Name: "Reseller", Email: "reseller@macstore.ma", Role: user.RoleReseller, TotalPurchases: 1000, IsActive: true},
		{ID: "a1", Name: "Admin", Email: "admin@macstore.ma", Role: user.RoleAdmin, IsActive: true},
	}
	snap.HeroContent = site.HeroContent{Title: "iPhone 15 Pro", CTAText: "Acheter"}
	return snap
}

func placement(id string, date time.Time) *order.Order {
	return &order.Order{
		ID:     id,
		UserID: "r1",
		Items:  []order.Item{{ProductID: "p1", ProductName: "iPhone 15 Pro Max", Quantity: 1, UnitPrice: 12792, Total: 12792}},
		Status: order.StatusPending,
		Date:   date,
	}
}

func TestCommitOrderDecrementsStockAndAccumulatesTotals(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	o := placement("ord-1", time.Now().UTC())
	o.TotalAmount = 25584
	require.NoError(t, st.CommitOrder(ctx, o, map[string]int{"p1": 2}, "r1", 25584))

	p, err := st.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 43, p.Stock)

	r, err := st.GetUserByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1000+25584.0, r.TotalPurchases)

	orders, err := st.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
}

func TestCommitOrderAccumulatesAcrossPlacements(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	require.NoError(t, st.CommitOrder(ctx, placement("ord-1", time.Now().UTC()), map[string]int{"p1": 1}, "r1", 500))
	require.NoError(t, st.CommitOrder(ctx, placement("ord-2", time.Now().UTC()), map[string]int{"p1": 1}, "r1", 700))

	r, err := st.GetUserByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1000+500+700.0, r.TotalPurchases)
}

func TestCommitOrderClampsStockAtZero(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	// Oversell: stock 3, quantity 5. The order keeps the full quantity but
	// stock never goes negative.
	o := placement("ord-1", time.Now().UTC())
	o.Items = []order.Item{{ProductID: "p2", ProductName: "MacBook Air M2", Quantity: 5, UnitPrice: 13490, Total: 67450}}
	require.NoError(t, st.CommitOrder(ctx, o, map[string]int{"p2": 5}, "", 67450))

	p, err := st.GetProductByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	orders, _ := st.ListOrders(ctx)
	assert.Equal(t, 5, orders[0].Items[0].Quantity)
}

func TestCommitOrderUnknownProductChangesNothing(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	err := st.CommitOrder(ctx, placement("ord-1", time.Now().UTC()), map[string]int{"p1": 1, "ghost": 1}, "r1", 12792)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	p, _ := st.GetProductByID(ctx, "p1")
	assert.Equal(t, 45, p.Stock)
	r, _ := st.GetUserByID(ctx, "r1")
	assert.Equal(t, 1000.0, r.TotalPurchases)
	orders, _ := st.ListOrders(ctx)
	assert.Empty(t, orders)
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, st.CommitOrder(ctx, placement("ord-old", base.Add(-time.Hour)), map[string]int{}, "", 0))
	require.NoError(t, st.CommitOrder(ctx, placement("ord-new", base), map[string]int{}, "", 0))

	orders, err := st.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-new", orders[0].ID)
	assert.Equal(t, "ord-old", orders[1].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()
	require.NoError(t, st.CommitOrder(ctx, placement("ord-1", time.Now().UTC()), map[string]int{}, "", 0))

	require.NoError(t, st.UpdateOrderStatus(ctx, "ord-1", order.StatusCancelled))
	o, err := st.GetOrderByID(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status)

	assert.ErrorIs(t, st.UpdateOrderStatus(ctx, "ghost", order.StatusPending), order.ErrNotFound)
}

func TestGetUserByEmailIsCaseInsensitive(t *testing.T) {
	st := store.New(testSnapshot())

	a, err := st.GetUserByEmail(context.Background(), "ADMIN@MacStore.MA")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)

	_, err = st.GetUserByEmail(context.Background(), "nobody@macstore.ma")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	st := store.New(testSnapshot())

	err := st.CreateUser(context.Background(), &user.Account{ID: "x", Email: "Admin@MacStore.ma"})
	assert.ErrorIs(t, err, user.ErrInvalid)
}

func TestToggleUserActive(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	a, err := st.ToggleUserActive(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, a.IsActive)

	a, err = st.ToggleUserActive(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, a.IsActive)

	_, err = st.ToggleUserActive(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	st := store.New(testSnapshot())
	ctx := context.Background()

	require.NoError(t, st.DeleteProduct(ctx, "p2"))
	_, err := st.GetProductByID(ctx, "p2")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.ErrorIs(t, st.DeleteProduct(ctx, "p2"), catalog.ErrNotFound)
}

func TestExportIsADetachedCopy(t *testing.T) {
	st := store.New(testSnapshot())

	exported := st.Export()
	assert.False(t, exported.LastUpdated.IsZero())

	exported.Products[0].Stock = -999
	exported.Products[0].Specs[0] = "mutated"

	p, err := st.GetProductByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 45, p.Stock)
	assert.Equal(t, []string{"Titane"}, p.Specs)
}

type capturingPublisher struct{ pushed chan *store.Snapshot }

func (p *capturingPublisher) Push(_ context.Context, snap *store.Snapshot) error {
	p.pushed <- snap
	return nil
}

func TestCommitsArePublishedAsynchronously(t *testing.T) {
	st := store.New(testSnapshot())
	pub := &capturingPublisher{pushed: make(chan *store.Snapshot, 1)}
	st.SetPublisher(pub)

	require.NoError(t, st.CreateProduct(context.Background(), &catalog.Product{ID: "p9", Name: "iPad mini", Category: catalog.CategoryIPad}))

	select {
	case snap := <-pub.pushed:
		assert.False(t, snap.LastUpdated.IsZero())
		ids := make([]string, 0, len(snap.Products))
		for _, p := range snap.Products {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, "p9")
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was never pushed to the publisher")
	}
}

func TestSeedContainsBootstrapData(t *testing.T) {
	snap, err := store.Seed("admin@macstore.ma", "secret")
	require.NoError(t, err)

	assert.Len(t, snap.Products, 5)
	require.Len(t, snap.Users, 1)
	admin := snap.Users[0]
	assert.True(t, admin.Role.IsAdmin())
	assert.True(t, admin.IsActive)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "secret", admin.PasswordHash)
	assert.Equal(t, "Acheter", snap.HeroContent.CTAText)
}
