package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/persistence/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.ClientModel{},
		&model.ProductModel{},
		&model.ClassModel{},
		&model.GenreModel{},
		&model.OrderModel{},
		&model.UserModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testZone() *businesstime.Zone {
	return businesstime.NewZone("EAT", 3)
}

func seedClient(t *testing.T, db *gorm.DB, name string) *entity.Client {
	t.Helper()
	client := entity.NewClient(name, "Ridge University", "+254700000001", name+"@example.com")
	if err := NewClientRepository(db).Create(context.Background(), client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *entity.Product {
	t.Helper()
	product := entity.NewProduct(name, decimal.NewFromInt(price))
	if err := NewProductRepository(db).Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, client *entity.Client, product *entity.Product, quantity int, createdAt time.Time) *entity.Order {
	t.Helper()
	order := entity.NewOrder(
		client.ID, product.ID, nil, nil,
		"seed", "Week 1", quantity,
		product.PricePerUnit,
		createdAt,
	)
	if err := NewOrderRepository(db).Create(context.Background(), order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func utc(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", value, err)
	}
	return parsed.UTC()
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "otieno")
	product := seedProduct(t, db, "Assignment", 10)
	order := seedOrder(t, db, client, product, 5, utc(t, "2024-03-10T09:00:00Z"))

	repo := NewOrderRepository(db)

	refs, err := repo.FindByIDWithRefs(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("find with refs: %v", err)
	}
	if refs.Client == nil || refs.Client.Name != "otieno" {
		t.Error("client not preloaded")
	}
	if refs.Product == nil || !refs.Product.PricePerUnit.Equal(decimal.NewFromInt(10)) {
		t.Error("product not preloaded")
	}
	if !refs.Order.TotalCost.Equal(decimal.NewFromInt(50)) {
		t.Errorf("totalCost = %s, want 50", refs.Order.TotalCost)
	}

	_, err = repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepositoryListFilters(t *testing.T) {
	db := testDB(t)
	clientA := seedClient(t, db, "otieno")
	clientB := seedClient(t, db, "wanjiru")
	product := seedProduct(t, db, "Assignment", 10)

	seedOrder(t, db, clientA, product, 1, utc(t, "2024-03-01T09:00:00Z"))
	seedOrder(t, db, clientA, product, 2, utc(t, "2024-03-05T09:00:00Z"))
	seedOrder(t, db, clientB, product, 3, utc(t, "2024-03-09T09:00:00Z"))

	repo := NewOrderRepository(db)

	result, err := repo.List(context.Background(), adapter.OrderFilter{
		ClientID: &clientA.ID,
		SortBy:   "created_at",
	}, adapter.OrderPagination{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}

	// Search joins against client names.
	result, err = repo.List(context.Background(), adapter.OrderFilter{
		Search: "WANJ",
		SortBy: "created_at",
	}, adapter.OrderPagination{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("search total = %d, want 1", result.Total)
	}

	// Date window.
	start := utc(t, "2024-03-04T00:00:00Z")
	end := utc(t, "2024-03-06T00:00:00Z")
	result, err = repo.List(context.Background(), adapter.OrderFilter{
		StartDate: &start,
		EndDate:   &end,
		SortBy:    "created_at",
	}, adapter.OrderPagination{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("window total = %d, want 1", result.Total)
	}
}

func TestOrderRepositoryFindByClientInRangeOrdered(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "otieno")
	product := seedProduct(t, db, "Assignment", 10)

	// Insert out of chronological order.
	second := seedOrder(t, db, client, product, 2, utc(t, "2024-03-20T09:00:00Z"))
	first := seedOrder(t, db, client, product, 1, utc(t, "2024-03-10T09:00:00Z"))

	repo := NewOrderRepository(db)
	orders, err := repo.FindByClientInRange(
		context.Background(), client.ID,
		utc(t, "2024-03-01T00:00:00Z"), utc(t, "2024-03-31T23:59:59Z"),
	)
	if err != nil {
		t.Fatalf("find in range: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("len = %d, want 2", len(orders))
	}
	if orders[0].Order.ID != first.ID || orders[1].Order.ID != second.ID {
		t.Error("orders not in ascending creation order")
	}
}

func TestClientRepositoryDeleteCascades(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "otieno")
	product := seedProduct(t, db, "Assignment", 10)
	seedOrder(t, db, client, product, 1, utc(t, "2024-03-10T09:00:00Z"))

	if err := NewClientRepository(db).Delete(context.Background(), client.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Errorf("%d orders survived client deletion", count)
	}

	err := NewClientRepository(db).Delete(context.Background(), client.ID)
	if !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClassRepositoryUniqueName(t *testing.T) {
	db := testDB(t)
	repo := NewClassRepository(db)

	if err := repo.Create(context.Background(), entity.NewClass("Economics")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(context.Background(), entity.NewClass("Economics"))
	if !errors.Is(err, domainerror.ErrClassificationExists) {
		t.Fatalf("expected ErrClassificationExists, got %v", err)
	}

	_, err = repo.FindByName(context.Background(), "Philosophy")
	if !errors.Is(err, domainerror.ErrClassificationNotFound) {
		t.Fatalf("expected ErrClassificationNotFound, got %v", err)
	}
}

func TestUserRepositoryPasswordUpdate(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("Admin", "admin@example.com", "hash-1")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdatePassword(context.Background(), user.ID, "hash-2"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	found, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.PasswordHash != "hash-2" {
		t.Errorf("hash = %q, want hash-2", found.PasswordHash)
	}

	err = repo.UpdatePassword(context.Background(), uuid.New(), "hash-3")
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLedgerSumAndCountHalfOpen(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "otieno")
	product := seedProduct(t, db, "Assignment", 10)

	inside := utc(t, "2024-03-10T09:00:00Z")
	boundary := utc(t, "2024-03-20T00:00:00Z")
	seedOrder(t, db, client, product, 3, inside)
	seedOrder(t, db, client, product, 5, boundary)

	ledger := NewLedgerRepository(db, testZone())
	totals, err := ledger.SumAndCount(
		context.Background(),
		utc(t, "2024-03-01T00:00:00Z"), boundary,
	)
	if err != nil {
		t.Fatalf("sum and count: %v", err)
	}

	// The end bound is exclusive, so the boundary order is out.
	if totals.Orders != 1 {
		t.Errorf("orders = %d, want 1", totals.Orders)
	}
	if !totals.Revenue.Equal(decimal.NewFromInt(30)) {
		t.Errorf("revenue = %s, want 30", totals.Revenue)
	}
}

func TestLedgerDailyBucketsLocalDays(t *testing.T) {
	db := testDB(t)
	client := seedClient(t, db, "otieno")
	product := seedProduct(t, db, "Assignment", 10)

	// 22:30 UTC is 01:30 the next day in UTC+3.
	seedOrder(t, db, client, product, 1, utc(t, "2024-03-15T22:30:00Z"))
	seedOrder(t, db, client, product, 2, utc(t, "2024-03-16T08:00:00Z"))
	seedOrder(t, db, client, product, 4, utc(t, "2024-03-17T12:00:00Z"))

	ledger := NewLedgerRepository(db, testZone())
	buckets, err := ledger.DailyBuckets(
		context.Background(),
		utc(t, "2024-03-01T00:00:00Z"), utc(t, "2024-04-01T00:00:00Z"),
	)
	if err != nil {
		t.Fatalf("daily buckets: %v", err)
	}

	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	if buckets[0].Day != "2024-03-16" || buckets[0].Orders != 2 {
		t.Errorf("first bucket = %+v", buckets[0])
	}
	if !buckets[0].Revenue.Equal(decimal.NewFromInt(30)) {
		t.Errorf("first bucket revenue = %s, want 30", buckets[0].Revenue)
	}
	if buckets[1].Day != "2024-03-17" || buckets[1].Orders != 1 {
		t.Errorf("second bucket = %+v", buckets[1])
	}

	// Bucketed revenue matches the scalar aggregate over the same window.
	totals, err := ledger.SumAndCount(
		context.Background(),
		utc(t, "2024-03-01T00:00:00Z"), utc(t, "2024-04-01T00:00:00Z"),
	)
	if err != nil {
		t.Fatalf("sum and count: %v", err)
	}
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Revenue)
	}
	if !sum.Equal(totals.Revenue) {
		t.Errorf("bucket sum %s != window revenue %s", sum, totals.Revenue)
	}
}

func TestLedgerRankedClients(t *testing.T) {
	db := testDB(t)
	clientA := seedClient(t, db, "otieno")
	clientB := seedClient(t, db, "wanjiru")
	product := seedProduct(t, db, "Assignment", 10)

	seedOrder(t, db, clientA, product, 3, utc(t, "2024-03-10T09:00:00Z"))
	seedOrder(t, db, clientB, product, 30, utc(t, "2024-03-11T09:00:00Z"))
	seedOrder(t, db, clientB, product, 20, utc(t, "2024-03-12T09:00:00Z"))

	ledger := NewLedgerRepository(db, testZone())
	window := func() (time.Time, time.Time) {
		return utc(t, "2024-03-01T00:00:00Z"), utc(t, "2024-04-01T00:00:00Z")
	}

	start, end := window()
	ranked, err := ledger.RankedClients(context.Background(), start, end, nil, 10)
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
	if ranked[0].ClientID != clientB.ID || !ranked[0].Revenue.Equal(decimal.NewFromInt(500)) {
		t.Errorf("top client = %+v", ranked[0])
	}
	if ranked[0].Orders != 2 {
		t.Errorf("top client orders = %d, want 2", ranked[0].Orders)
	}

	// Limit truncates.
	ranked, err = ledger.RankedClients(context.Background(), start, end, nil, 1)
	if err != nil {
		t.Fatalf("ranked limit: %v", err)
	}
	if len(ranked) != 1 || ranked[0].ClientID != clientB.ID {
		t.Errorf("limited ranking = %+v", ranked)
	}

	// Client filter narrows to one group.
	ranked, err = ledger.RankedClients(context.Background(), start, end, &clientA.ID, 10)
	if err != nil {
		t.Fatalf("ranked filter: %v", err)
	}
	if len(ranked) != 1 || ranked[0].ClientID != clientA.ID {
		t.Errorf("filtered ranking = %+v", ranked)
	}
}
