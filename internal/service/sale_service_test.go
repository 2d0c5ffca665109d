package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	sales     *stubSaleRepo
	txns      *stubTxnRepo
	customers *stubCustomerRepo
	svc       service.SaleService
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		sales:     newStubSaleRepo(),
		txns:      newStubTxnRepo(),
		customers: newStubCustomerRepo(),
	}
	f.svc = service.NewSaleService(f.sales, f.txns, f.customers)
	return f
}

func TestSaleCreateAndDateFormats(t *testing.T) {
	f := newSaleFixture()
	for _, date := range []string{"2026-08-30 14:05:00", "2026-08-30 14:05", "2026-08-30"} {
		resp, err := f.svc.Create(context.Background(), dto.SaleRequest{Date: date, Status: model.SaleStatusDraft})
		require.NoError(t, err, date)
		assert.Equal(t, model.SaleStatusDraft, resp.Status)
	}

	_, err := f.svc.Create(context.Background(), dto.SaleRequest{Date: "30/08/2026", Status: model.SaleStatusDraft})
	assert.EqualError(t, err, "invalid date format")
}

func TestSaleCreateValidation(t *testing.T) {
	f := newSaleFixture()

	_, err := f.svc.Create(context.Background(), dto.SaleRequest{Date: "2026-08-30", Status: "OPEN"})
	assert.EqualError(t, err, "status must be DRAFT, FINAL or CANCELED")

	ghost := uuid.NewString()
	_, err = f.svc.Create(context.Background(), dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft, CustomerID: &ghost})
	assert.EqualError(t, err, "customer not found")

	cid := f.customers.add("Koperasi Maju").String()
	resp, err := f.svc.Create(context.Background(), dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft, CustomerID: &cid})
	require.NoError(t, err)
	require.NotNil(t, resp.CustomerID)
	assert.Equal(t, cid, *resp.CustomerID)
}

func TestSaleDONumberUniqueness(t *testing.T) {
	f := newSaleFixture()
	do := "DO-20260830-001"

	_, err := f.svc.Create(context.Background(), dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft, DONumber: &do})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft, DONumber: &do})
	assert.EqualError(t, err, "DO number already in use")
}

func TestSaleUpdateRefusesFinal(t *testing.T) {
	f := newSaleFixture()
	id := f.sales.add(model.SaleStatusFinal)

	_, err := f.svc.Update(context.Background(), id, dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft})
	assert.EqualError(t, err, "sales with FINAL status cannot be modified")
}

func TestSaleUpdateDraftToFinal(t *testing.T) {
	f := newSaleFixture()
	id := f.sales.add(model.SaleStatusDraft)

	resp, err := f.svc.Update(context.Background(), id, dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusFinal})
	require.NoError(t, err)
	assert.Equal(t, model.SaleStatusFinal, resp.Status)

	// Now locked.
	_, err = f.svc.Update(context.Background(), id, dto.SaleRequest{Date: "2026-08-30", Status: model.SaleStatusDraft})
	assert.Error(t, err)
}

func TestSaleDeleteGuards(t *testing.T) {
	f := newSaleFixture()

	// FINAL refuses outright.
	finalID := f.sales.add(model.SaleStatusFinal)
	assert.EqualError(t, f.svc.Delete(context.Background(), finalID), "sales with FINAL status cannot be deleted")

	// DRAFT with lines refuses until the lines are gone.
	draftID := f.sales.add(model.SaleStatusDraft)
	require.NoError(t, f.txns.Create(context.Background(), &model.TransactionLine{SaleID: draftID, ItemID: uuid.New(), Quantity: dec("1"), Price: dec("10"), Amount: dec("10")}))
	err := f.svc.Delete(context.Background(), draftID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction lines")

	// Empty DRAFT deletes fine.
	emptyID := f.sales.add(model.SaleStatusDraft)
	assert.NoError(t, f.svc.Delete(context.Background(), emptyID))

	assert.EqualError(t, f.svc.Delete(context.Background(), uuid.New()), "sales not found")
}

func TestGenerateDONumber(t *testing.T) {
	f := newSaleFixture()
	f.sales.countByDate = 2

	number, err := f.svc.GenerateDONumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("DO-%s-003", time.Now().Format("20060102")), number)
}

func TestGenerateDONumberDegradesOnCountError(t *testing.T) {
	f := newSaleFixture()
	f.sales.countErr = fmt.Errorf("timeout")

	number, err := f.svc.GenerateDONumber(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^DO-\d{14}$`, number)
}

func TestSaleStatusOptions(t *testing.T) {
	f := newSaleFixture()
	opts := f.svc.StatusOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, model.SaleStatusDraft, opts[0].Value)
	assert.Equal(t, model.SaleStatusFinal, opts[1].Value)
	assert.Equal(t, model.SaleStatusCanceled, opts[2].Value)
	assert.Equal(t, "Dibatalkan", opts[2].Label)
}
