package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// memCartRepo is a cart stub that actually stores item sets, unlike the
// bookkeeping-only stub used by the user service tests.
type memCartRepo struct {
	carts  map[int64]*domain.Cart
	nextID int64
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[int64]*domain.Cart)}
}

func (r *memCartRepo) Create(_ context.Context, userID int64) (*domain.Cart, error) {
	r.nextID++
	cart := &domain.Cart{CartID: r.nextID, UserID: userID, Items: []domain.CartItem{}}
	r.carts[userID] = cart
	return cart, nil
}

func (r *memCartRepo) FindByUserID(_ context.Context, userID int64) (*domain.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *cart
	clone.Items = append([]domain.CartItem{}, cart.Items...)
	return &clone, nil
}

func (r *memCartRepo) ReplaceItems(_ context.Context, userID int64, items []domain.CartItem) (int64, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return 0, nil
	}
	cart.Items = append([]domain.CartItem{}, items...)
	return 1, nil
}

type cartFixture struct {
	svc      *CartService
	carts    *memCartRepo
	products *stubProductRepo
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	carts := newMemCartRepo()
	products := newStubProductRepo()
	return &cartFixture{
		svc:      NewCartService(carts, products, zerolog.Nop()),
		carts:    carts,
		products: products,
	}
}

func (f *cartFixture) seedProduct(t *testing.T, title string, price float64, stock int) *domain.Product {
	t.Helper()
	p, err := f.products.Insert(context.Background(), &domain.Product{
		Title: title, Price: price, Stock: stock, CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return p
}

func TestCartService_Get_Empty(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	lines, err := f.svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCartService_Get_NotFound(t *testing.T) {
	f := newCartFixture(t)

	if _, err := f.svc.Get(context.Background(), 42); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartService_Update_JoinsProductData(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	widget := f.seedProduct(t, "Widget", 9.99, 10)

	lines, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Title != "Widget" || line.Price != 9.99 || line.Quantity != 3 {
		t.Fatalf("unexpected line: %+v", line)
	}

	// The replacement persisted.
	stored, err := f.carts.FindByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(stored.Items) != 1 || stored.Items[0].Quantity != 3 {
		t.Fatalf("unexpected stored items: %+v", stored.Items)
	}
}

func TestCartService_Update_ReplacesNotMerges(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	widget := f.seedProduct(t, "Widget", 9.99, 10)
	gizmo := f.seedProduct(t, "Gizmo", 4.50, 10)

	if _, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 2},
	}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	lines, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: gizmo.ProductID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != gizmo.ProductID {
		t.Fatalf("expected the item set replaced wholesale, got %+v", lines)
	}
}

func TestCartService_Update_UnknownProduct(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	_, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: 404, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_Update_InsufficientStock(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	widget := f.seedProduct(t, "Widget", 9.99, 2)

	_, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 3},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// A rejected update must not touch the stored items.
	stored, err := f.carts.FindByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(stored.Items) != 0 {
		t.Fatalf("expected cart unchanged, got %+v", stored.Items)
	}
}

func TestCartService_Update_NonPositiveQuantity(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	widget := f.seedProduct(t, "Widget", 9.99, 10)

	_, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 0},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected rejection of zero quantity, got %v", err)
	}
}

func TestCartService_Update_CartNotFound(t *testing.T) {
	f := newCartFixture(t)
	widget := f.seedProduct(t, "Widget", 9.99, 10)

	_, err := f.svc.Update(context.Background(), 42, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

// A product removed from the catalog after being added drops out of the
// cart's lines instead of failing the read.
func TestCartService_Get_SkipsRemovedProducts(t *testing.T) {
	f := newCartFixture(t)
	if _, err := f.carts.Create(context.Background(), 1); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	widget := f.seedProduct(t, "Widget", 9.99, 10)
	gizmo := f.seedProduct(t, "Gizmo", 4.50, 10)

	if _, err := f.svc.Update(context.Background(), 1, []ports.CartItemInput{
		{ProductID: widget.ProductID, Quantity: 1},
		{ProductID: gizmo.ProductID, Quantity: 1},
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := f.products.DeleteByID(context.Background(), widget.ProductID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	lines, err := f.svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != gizmo.ProductID {
		t.Fatalf("expected removed product skipped, got %+v", lines)
	}
}
