package pages

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/images"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

var all = utils.NewPagination(1, 0)

func TestUsers_VerifyPatchesInPlace(t *testing.T) {
	api := newFakeAPI()
	api.users = []models.User{
		{ID: "u1", Name: "Dilshod", Surname: "Umarov", IsVerified: false},
		{ID: "u2", Name: "Madina", Surname: "Aliyeva", IsVerified: true},
	}
	page := NewUsers(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.SetVerified(ctx, "u1", true))

	vm := page.View(all)
	require.Len(t, vm.Items, 2)
	for _, row := range vm.Items {
		assert.True(t, row.IsVerified, row.ID)
	}
	assert.Equal(t, 1, api.count("ListUsers"), "no refetch after a verify toggle")
}

func TestUsers_VerifyFailureLeavesState(t *testing.T) {
	api := newFakeAPI()
	api.users = []models.User{{ID: "u1", Name: "A", Surname: "B"}}
	page := NewUsers(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	api.fail["SetUserVerified"] = errBoom
	err := page.SetVerified(ctx, "u1", true)
	assert.Error(t, err)

	vm := page.View(all)
	assert.False(t, vm.Items[0].IsVerified)
	assert.Nil(t, vm.Error)
}

func TestUsers_DeleteRefetches(t *testing.T) {
	api := newFakeAPI()
	api.users = []models.User{{ID: "u1", Name: "A", Surname: "B"}, {ID: "u2", Name: "C", Surname: "D"}}
	audit := &auditLog{}
	page := NewUsers(api, Options{Notifier: audit})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.Delete(ctx, "u1"))
	assert.Equal(t, 2, api.count("ListUsers"))
	assert.Len(t, page.View(all).Items, 1)
	assert.Equal(t, []string{"Foydalanuvchi o'chirildi u1"}, audit.actions)
}

func TestUsers_SetFilter(t *testing.T) {
	api := newFakeAPI()
	api.users = []models.User{
		{ID: "u1", Name: "A", Surname: "B", IsVerified: true},
		{ID: "u2", Name: "C", Surname: "D"},
	}
	page := NewUsers(api, Options{})
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.SetFilter(view.UserUnverified))
	vm := page.View(all)
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "u2", vm.Items[0].ID)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, page.SetFilter("banned"), &verr)
}

func dashboardStats() *models.DashboardStats {
	return &models.DashboardStats{
		TenLastUsers: []models.User{
			{ID: "u1", Name: "A", Surname: "B", IsVerified: false},
			{ID: "u2", Name: "C", Surname: "D", IsVerified: true},
		},
		UsersDetails:       models.UserBreakdown{Active: 2, Inactive: 3},
		UsersDetailsLength: models.UserBreakdown{Active: 2, Inactive: 3},
	}
}

func TestDashboard_VerifyPatchesSnapshot(t *testing.T) {
	api := newFakeAPI()
	api.stats = dashboardStats()
	page := NewDashboard(api, api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.SetUserVerified(ctx, "u1", true))

	snap := page.Snapshot()
	assert.True(t, snap.TenLastUsers[0].IsVerified)
	assert.Equal(t, models.UserBreakdown{Active: 3, Inactive: 2}, snap.UsersDetails)
	assert.Equal(t, models.UserBreakdown{Active: 3, Inactive: 2}, snap.UsersDetailsLength)
	assert.Equal(t, 1, api.count("GetDashboardStats"))

	// Repeating the same state is a no-op for the counters.
	require.NoError(t, page.SetUserVerified(ctx, "u1", true))
	assert.Equal(t, models.UserBreakdown{Active: 3, Inactive: 2}, page.Snapshot().UsersDetails)

	require.NoError(t, page.SetUserVerified(ctx, "u2", false))
	assert.Equal(t, models.UserBreakdown{Active: 2, Inactive: 3}, page.Snapshot().UsersDetails)
}

func TestDashboard_VerifyFailureDoesNotPatch(t *testing.T) {
	api := newFakeAPI()
	api.stats = dashboardStats()
	page := NewDashboard(api, api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	api.fail["SetUserVerified"] = errBoom
	require.Error(t, page.SetUserVerified(ctx, "u1", true))

	snap := page.Snapshot()
	assert.False(t, snap.TenLastUsers[0].IsVerified)
	assert.Equal(t, models.UserBreakdown{Active: 2, Inactive: 3}, snap.UsersDetails)
}

func TestDashboard_PatchIsReplacedByRefetch(t *testing.T) {
	api := newFakeAPI()
	api.stats = dashboardStats()
	page := NewDashboard(api, api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))
	require.NoError(t, page.SetUserVerified(ctx, "u1", true))

	api.stats.UsersDetails = models.UserBreakdown{Active: 7, Inactive: 1}
	require.NoError(t, page.DeleteUser(ctx, "u2"))

	assert.Equal(t, 2, api.count("GetDashboardStats"))
	assert.Equal(t, models.UserBreakdown{Active: 7, Inactive: 1}, page.Snapshot().UsersDetails)
	assert.NotNil(t, page.View().Stats)
}

func TestDashboard_InvalidateRefetchesOnNextEnsure(t *testing.T) {
	api := newFakeAPI()
	api.stats = dashboardStats()
	page := NewDashboard(api, api, Options{})
	ctx := context.Background()

	require.NoError(t, page.Ensure(ctx))
	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 1, api.count("GetDashboardStats"))

	page.Invalidate()
	assert.NotNil(t, page.Snapshot(), "the snapshot is served until the refetch")
	require.NoError(t, page.Ensure(ctx))
	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 2, api.count("GetDashboardStats"))
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Telefon", Price: 500, Stock: 45, Images: []string{"a", "b", "c"}},
		{ID: "p2", Name: "Gilos", Price: 20, Stock: 0},
		{ID: "p3", Name: "Anor", Price: 20, Stock: 5},
	}
}

func TestProducts_ViewQueryAndPagination(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	page := NewProducts(api, Options{Assets: view.Assets{BaseURL: "http://cdn"}})
	require.NoError(t, page.Ensure(context.Background()))
	require.NoError(t, page.Ensure(context.Background()))
	assert.Equal(t, 1, api.count("ListProducts"))

	vm := page.View(all)
	assert.Equal(t, 3, vm.Total)
	assert.Equal(t, "Anor", vm.Items[0].Name)
	assert.Equal(t, view.FilterAll, vm.Query.Filter)

	s := page.Sort(view.ProductSortName)
	assert.Equal(t, view.Desc, s.Direction)
	assert.Equal(t, "Telefon", page.View(all).Items[0].Name)
	assert.Equal(t, "http://cdn/a", page.View(all).Items[0].Image)

	require.NoError(t, page.SetFilter(string(view.LowStock)))
	vm = page.View(all)
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "Anor", vm.Items[0].Name)

	require.NoError(t, page.SetFilter(view.FilterAll))
	page.Search("o")
	vm = page.View(utils.NewPagination(2, 1))
	assert.Equal(t, 3, vm.Total)
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "Gilos", vm.Items[0].Name)
}

func TestProducts_DeleteRefetchesAndAudits(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	audit := &auditLog{}
	page := NewProducts(api, Options{Notifier: audit})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.Delete(ctx, "p2"))
	assert.Equal(t, 2, api.count("ListProducts"))
	assert.Equal(t, 2, page.View(all).Total)
	assert.Len(t, audit.actions, 1)
}

func TestProducts_DeleteFailureKeepsList(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	audit := &auditLog{}
	page := NewProducts(api, Options{Notifier: audit})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	api.fail["DeleteProduct"] = errBoom
	assert.Error(t, page.Delete(ctx, "p2"))
	assert.Equal(t, 1, api.count("ListProducts"))
	assert.Equal(t, 3, page.View(all).Total)
	assert.Empty(t, audit.actions)
}

func TestProducts_CreateRejectsTooManyPhotos(t *testing.T) {
	api := newFakeAPI()
	page := NewProducts(api, Options{})

	photos := make([]models.Upload, images.DefaultMaxPhotos+1)
	err := page.Create(context.Background(), models.ProductInput{Name: "Choy", Photos: photos})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, api.count("CreateProduct"))
}

func TestProducts_CreateRefetches(t *testing.T) {
	api := newFakeAPI()
	page := NewProducts(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.Create(ctx, models.ProductInput{Name: "Choy", Stock: 3}))
	assert.Equal(t, 2, api.count("ListProducts"))
	assert.Equal(t, 1, page.View(all).Total)
}

func TestProducts_LoadFailureKeepsRecords(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	page := NewProducts(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	api.fail["ListProducts"] = errBoom
	require.Error(t, page.Load(ctx))
	vm := page.View(all)
	assert.Equal(t, 3, vm.Total)
	require.NotNil(t, vm.Error)
	assert.Equal(t, "Server xatosi", *vm.Error)
	assert.False(t, vm.Loading)

	delete(api.fail, "ListProducts")
	require.NoError(t, page.Load(ctx))
	assert.Nil(t, page.View(all).Error)
}

func TestProducts_StaleResponseIsDropped(t *testing.T) {
	api := newFakeAPI()
	api.products = []models.Product{{ID: "old", Name: "Old"}}
	block, entered := make(chan struct{}), make(chan struct{})
	api.block, api.entered = block, entered
	page := NewProducts(api, Options{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- page.Load(ctx) }()
	<-entered
	assert.True(t, page.View(all).Loading)

	api.mu.Lock()
	api.products = []models.Product{{ID: "fresh", Name: "Fresh"}}
	api.mu.Unlock()
	require.NoError(t, page.Load(ctx))

	api.mu.Lock()
	api.products = []models.Product{{ID: "stale", Name: "Stale"}}
	api.mu.Unlock()
	close(block)
	require.NoError(t, <-done)

	vm := page.View(all)
	require.Len(t, vm.Items, 1)
	assert.Equal(t, "fresh", vm.Items[0].ID)
	assert.False(t, vm.Loading)
}

func TestProducts_InvalidateDuringLoadKeepsListStale(t *testing.T) {
	api := newFakeAPI()
	api.products = []models.Product{{ID: "before", Name: "Before"}}
	block, entered := make(chan struct{}), make(chan struct{})
	api.block, api.entered = block, entered
	page := NewProducts(api, Options{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- page.Ensure(ctx) }()
	<-entered

	// An invalidate lands while the fetch is in flight.
	page.Invalidate()
	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.count("ListProducts"))

	api.mu.Lock()
	api.products = []models.Product{{ID: "after", Name: "After"}}
	api.mu.Unlock()
	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 2, api.count("ListProducts"))
	assert.Equal(t, "after", page.View(all).Items[0].ID)

	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 2, api.count("ListProducts"))
}

func TestDeletedProducts_RestoreRefetches(t *testing.T) {
	api := newFakeAPI()
	api.deleted = sampleProducts()
	page := NewDeletedProducts(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.Restore(ctx, "p1"))
	assert.Equal(t, 2, api.count("ListDeletedProducts"))
	assert.Equal(t, 2, page.View(all).Total)
}

func TestProductDetail_EditAndSave(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	previews := images.NewPreviews()
	details := NewProductDetails(api, previews, Options{})
	ctx := context.Background()

	page, err := details.Open(ctx, "p1", false)
	require.NoError(t, err)
	assert.ErrorIs(t, page.MarkDeleted(0), errNotEditing)

	require.NoError(t, page.StartEdit())
	require.NoError(t, page.MarkDeleted(1))
	require.NoError(t, page.Reorder(0, 2))
	require.NoError(t, page.Stage([]models.Upload{{Name: "new.jpg", Data: []byte("x")}}))
	assert.Equal(t, 1, previews.Len())

	v := page.View()
	require.NotNil(t, v.Editor)
	assert.Equal(t, "c", v.Editor.Primary)

	name := "Telefon X"
	require.NoError(t, page.Save(ctx, models.ProductUpdate{Name: &name}))

	require.Len(t, api.updates, 1)
	assert.Equal(t, []string{"c", "a"}, api.updates[0].ExistingPhotos)
	require.Len(t, api.updates[0].Photos, 1)
	assert.Equal(t, 2, api.count("GetProduct"))

	v = page.View()
	assert.False(t, v.Editing)
	assert.Equal(t, "Telefon X", v.Product.Name)
	assert.Equal(t, []string{"c", "a", "uploads/new.jpg"}, v.Product.Images)
	assert.Zero(t, previews.Len())
}

func TestProductDetail_SaveFailureKeepsEditor(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	details := NewProductDetails(api, nil, Options{})
	ctx := context.Background()

	page, err := details.Open(ctx, "p1", false)
	require.NoError(t, err)
	require.NoError(t, page.StartEdit())
	require.NoError(t, page.MarkDeleted(0))

	api.fail["UpdateProduct"] = errBoom
	require.Error(t, page.Save(ctx, models.ProductUpdate{}))

	v := page.View()
	assert.True(t, v.Editing)
	assert.True(t, v.Editor.Existing[0].Deleted)
	assert.Equal(t, []string{"a", "b", "c"}, v.Product.Images)
}

func TestProductDetail_DeleteImageRefetchesAndRebuildsEditor(t *testing.T) {
	api := newFakeAPI()
	api.products = sampleProducts()
	details := NewProductDetails(api, nil, Options{})
	ctx := context.Background()

	page, err := details.Open(ctx, "p1", false)
	require.NoError(t, err)
	require.NoError(t, page.StartEdit())
	require.NoError(t, page.MarkDeleted(2))

	require.NoError(t, page.DeleteImage(ctx, 0))
	v := page.View()
	assert.Equal(t, []string{"b", "c"}, v.Product.Images)
	require.True(t, v.Editing)
	assert.False(t, v.Editor.Modified)
}

func TestProductDetails_OpenNotFound(t *testing.T) {
	api := newFakeAPI()
	details := NewProductDetails(api, nil, Options{})

	page, err := details.Open(context.Background(), "missing", false)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, page.StartEdit(), apperrors.ErrNotFound)

	details.Close("missing")
	_, err = details.Open(context.Background(), "missing", false)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 2, api.count("GetProduct"), "a closed page is fetched again")
}

func sampleOrders() []models.Order {
	orders := make([]models.Order, 3)
	for i := range orders {
		orders[i] = models.Order{
			ID:          fmt.Sprintf("o%d", i+1),
			OrderNumber: models.FlexString(fmt.Sprint(100 + i)),
			UserName:    "Ali",
			Status:      models.OrderStatusNew,
		}
	}
	return orders
}

func TestOrders_DeleteRefetches(t *testing.T) {
	api := newFakeAPI()
	api.orders = sampleOrders()
	page := NewOrders(api, Options{})
	ctx := context.Background()
	require.NoError(t, page.Load(ctx))

	require.NoError(t, page.Delete(ctx, "o2"))
	assert.Equal(t, 2, api.count("ListOrders"))
	assert.Equal(t, 2, page.View(all).Total)
}

func TestOrders_SetFilter(t *testing.T) {
	api := newFakeAPI()
	api.orders = sampleOrders()
	api.orders[0].Status = models.OrderStatusSold
	page := NewOrders(api, Options{})
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.SetFilter(models.OrderStatusSold))
	assert.Equal(t, 1, page.View(all).Total)
	assert.Error(t, page.SetFilter("  "))
}

func TestOrders_FilterByStatusOutsideTable(t *testing.T) {
	api := newFakeAPI()
	api.orders = sampleOrders()
	api.orders[2].Status = "returned"
	page := NewOrders(api, Options{})
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.SetFilter("returned"))
	v := page.View(all)
	require.Equal(t, 1, v.Total)
	assert.Equal(t, "o3", v.Items[0].ID)
	assert.Equal(t, "returned", v.Items[0].Status.Label)
}

func TestOrders_InvalidateRefetchesOnNextEnsure(t *testing.T) {
	api := newFakeAPI()
	api.orders = sampleOrders()
	page := NewOrders(api, Options{})
	ctx := context.Background()

	require.NoError(t, page.Ensure(ctx))
	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 1, api.count("ListOrders"))

	page.Invalidate()
	assert.Equal(t, 3, page.View(all).Total, "records stay until the refetch")
	require.NoError(t, page.Ensure(ctx))
	assert.Equal(t, 2, api.count("ListOrders"))
}

func TestOrderDetail_UpdateStatus(t *testing.T) {
	api := newFakeAPI()
	api.orders = sampleOrders()
	audit := &auditLog{}
	page := NewOrderDetail(api, Options{Notifier: audit})
	ctx := context.Background()

	require.NoError(t, page.Open(ctx, "101"))
	assert.Equal(t, "Yangi", page.View().Order.Status.Label)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, page.UpdateStatus(ctx, "101", "lost"), &verr)
	assert.Zero(t, api.count("UpdateOrderStatus"))

	require.NoError(t, page.UpdateStatus(ctx, "101", models.OrderStatusDelivering))
	assert.Equal(t, 2, api.count("GetOrder"))
	assert.Equal(t, "Yetkazilmoqda", page.View().Order.Status.Label)
	assert.Len(t, audit.actions, 1)
}

func TestOrderDetail_NotFound(t *testing.T) {
	api := newFakeAPI()
	page := NewOrderDetail(api, Options{})

	err := page.Open(context.Background(), "404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	v := page.View()
	assert.Nil(t, v.Order)
	require.NotNil(t, v.Error)
	assert.Len(t, v.Statuses, 8)
}
