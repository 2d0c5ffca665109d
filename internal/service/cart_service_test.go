package service_test

import (
	"context"
	"errors"
	"testing"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	carts *stubCartRepo
	txns  *stubTxnRepo
	items *stubItemRepo
	sales *stubSaleRepo
	svc   service.CartService
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		carts: newStubCartRepo(),
		txns:  newStubTxnRepo(),
		items: newStubItemRepo(),
		sales: newStubSaleRepo(),
	}
	f.svc = service.NewCartService(f.carts, f.txns, f.items, f.sales)
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddLineRecomputesAmount(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Beras 5kg", "PCS", dec("1500"))

	// The client sends a bogus amount; the server must compute 3 × 1500.
	res := f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{
		ItemID:   itemID.String(),
		Quantity: dec("3"),
		Price:    dec("1500"),
		Amount:   dec("1"),
	})
	require.True(t, res.Success, res.Message)

	line := res.Data.(dto.CartLineResponse)
	assert.True(t, dec("4500").Equal(line.Amount), "got %s", line.Amount)
	assert.Equal(t, "Beras 5kg", line.ItemName)
}

func TestAddLineValidation(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Gula", "KG", dec("12000"))

	cases := []struct {
		name string
		req  dto.CartLineRequest
		msg  string
	}{
		{"zero quantity", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("0"), Price: dec("10")}, "quantity must be a positive number"},
		{"negative quantity", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("-2"), Price: dec("10")}, "quantity must be a positive number"},
		{"negative price", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("1"), Price: dec("-1")}, "price cannot be negative"},
		{"unknown item", dto.CartLineRequest{ItemID: uuid.NewString(), Quantity: dec("1"), Price: dec("10")}, "item not found"},
		{"bad item id", dto.CartLineRequest{ItemID: "nope", Quantity: dec("1"), Price: dec("10")}, "item is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := f.svc.AddLine(context.Background(), "sess-a", tc.req)
			assert.False(t, res.Success)
			assert.Equal(t, tc.msg, res.Message)
		})
	}

	// Zero price is allowed (free item / discount line).
	res := f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{
		ItemID: itemID.String(), Quantity: dec("1"), Price: dec("0"),
	})
	assert.True(t, res.Success)
}

func TestAddLineRequiresSession(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Teh", "BOX", dec("5000"))
	res := f.svc.AddLine(context.Background(), "", dto.CartLineRequest{
		ItemID: itemID.String(), Quantity: dec("1"), Price: dec("5000"),
	})
	assert.False(t, res.Success)
	assert.Equal(t, "session is required", res.Message)
}

func TestListLinesOrderAndTotal(t *testing.T) {
	f := newCartFixture()
	a := f.items.add("A", "PCS", dec("100"))
	b := f.items.add("B", "PCS", dec("200"))

	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: a.String(), Quantity: dec("2"), Price: dec("100")}).Success)
	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: b.String(), Quantity: dec("1"), Price: dec("200")}).Success)
	// A different session must not leak in.
	require.True(t, f.svc.AddLine(context.Background(), "sess-b", dto.CartLineRequest{ItemID: b.String(), Quantity: dec("9"), Price: dec("200")}).Success)

	res := f.svc.ListLines(context.Background(), "sess-a")
	require.True(t, res.Success)
	cart := res.Data.(dto.CartResponse)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, a.String(), cart.Lines[0].ItemID)
	assert.Equal(t, b.String(), cart.Lines[1].ItemID)
	assert.True(t, dec("400").Equal(cart.Total), "got %s", cart.Total)
}

func TestUpdateLine(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Kopi", "PCS", dec("300"))
	added := f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("1"), Price: dec("300")})
	require.True(t, added.Success)
	id := added.Data.(dto.CartLineResponse).ID

	res := f.svc.UpdateLine(context.Background(), id, dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("5"), Price: dec("300")})
	require.True(t, res.Success)
	assert.True(t, dec("1500").Equal(res.Data.(dto.CartLineResponse).Amount))

	res = f.svc.UpdateLine(context.Background(), id, dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("0"), Price: dec("300")})
	assert.False(t, res.Success)

	res = f.svc.UpdateLine(context.Background(), 9999, dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("1"), Price: dec("300")})
	assert.False(t, res.Success)
	assert.Equal(t, "cart line not found", res.Message)
}

func TestRemoveLine(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Susu", "PCS", dec("800"))
	added := f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("1"), Price: dec("800")})
	id := added.Data.(dto.CartLineResponse).ID

	assert.True(t, f.svc.RemoveLine(context.Background(), id).Success)
	res := f.svc.RemoveLine(context.Background(), id)
	assert.False(t, res.Success)
	assert.Equal(t, "cart line not found", res.Message)
}

func TestClearCartIdempotent(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("Roti", "PCS", dec("900"))
	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("1"), Price: dec("900")}).Success)

	assert.True(t, f.svc.ClearCart(context.Background(), "sess-a").Success)
	// Clearing an already-empty cart still reports success.
	assert.True(t, f.svc.ClearCart(context.Background(), "sess-a").Success)

	cart := f.svc.ListLines(context.Background(), "sess-a").Data.(dto.CartResponse)
	assert.Empty(t, cart.Lines)
}

func TestFinalizeMovesLinesInOrder(t *testing.T) {
	f := newCartFixture()
	a := f.items.add("A", "PCS", dec("100"))
	b := f.items.add("B", "PCS", dec("250"))
	saleID := f.sales.add(model.SaleStatusDraft)

	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: a.String(), Quantity: dec("2"), Price: dec("100")}).Success)
	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: b.String(), Quantity: dec("3"), Price: dec("250")}).Success)

	res := f.svc.Finalize(context.Background(), "sess-a", saleID)
	require.True(t, res.Success)
	assert.Equal(t, "transaction saved", res.Message)

	// The cart is empty afterwards.
	cart := f.svc.ListLines(context.Background(), "sess-a").Data.(dto.CartResponse)
	assert.Empty(t, cart.Lines)

	// Both lines landed under the sale, in insertion order, amounts recomputed.
	lines, err := f.txns.ListBySale(context.Background(), saleID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, a, lines[0].ItemID)
	assert.True(t, dec("200").Equal(lines[0].Amount))
	assert.Equal(t, b, lines[1].ItemID)
	assert.True(t, dec("750").Equal(lines[1].Amount))
}

func TestFinalizeEmptyCartRefused(t *testing.T) {
	f := newCartFixture()
	saleID := f.sales.add(model.SaleStatusDraft)

	res := f.svc.Finalize(context.Background(), "sess-a", saleID)
	assert.False(t, res.Success)
	assert.Equal(t, "cart is empty", res.Message)

	n, _ := f.txns.CountBySale(context.Background(), saleID)
	assert.Zero(t, n)
}

func TestFinalizeUnknownSale(t *testing.T) {
	f := newCartFixture()
	res := f.svc.Finalize(context.Background(), "sess-a", uuid.New())
	assert.False(t, res.Success)
	assert.Equal(t, "sales not found", res.Message)
}

func TestFinalizeFailureLeavesCartIntact(t *testing.T) {
	f := newCartFixture()
	itemID := f.items.add("A", "PCS", dec("100"))
	saleID := f.sales.add(model.SaleStatusDraft)

	require.True(t, f.svc.AddLine(context.Background(), "sess-a", dto.CartLineRequest{ItemID: itemID.String(), Quantity: dec("4"), Price: dec("100")}).Success)

	f.txns.batchErr = errors.New("connection reset")
	res := f.svc.Finalize(context.Background(), "sess-a", saleID)
	assert.False(t, res.Success)
	assert.Equal(t, "failed to save transaction", res.Message)

	// Nothing finalized, cart exactly as before.
	n, _ := f.txns.CountBySale(context.Background(), saleID)
	assert.Zero(t, n)
	cart := f.svc.ListLines(context.Background(), "sess-a").Data.(dto.CartResponse)
	require.Len(t, cart.Lines, 1)
	assert.True(t, dec("400").Equal(cart.Lines[0].Amount))

	// A retry after the fault clears succeeds.
	f.txns.batchErr = nil
	assert.True(t, f.svc.Finalize(context.Background(), "sess-a", saleID).Success)
}
