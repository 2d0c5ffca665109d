package service_test

import (
	"context"
	"testing"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCRUD(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewItemService(repo)

	created, err := svc.Create(context.Background(), dto.ItemRequest{
		Name: "Beras 5kg", UOM: "SAK", PurchasePrice: dec("52000"), SellPrice: dec("58000"), Stock: 40,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Beras 5kg", got.Name)
	assert.True(t, dec("58000").Equal(got.SellPrice))

	updated, err := svc.Update(context.Background(), id, dto.ItemRequest{
		Name: "Beras 5kg", UOM: "SAK", PurchasePrice: dec("52000"), SellPrice: dec("60000"), Stock: 35,
	})
	require.NoError(t, err)
	assert.True(t, dec("60000").Equal(updated.SellPrice))
	assert.Equal(t, 35, updated.Stock)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.EqualError(t, err, "item not found")
}

func TestItemDeleteGuardedByUse(t *testing.T) {
	repo := newStubItemRepo()
	svc := service.NewItemService(repo)
	id := repo.add("Gula", "KG", dec("14000"))

	repo.inUse[id] = true
	err := svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transactions reference it")

	repo.inUse[id] = false
	assert.NoError(t, svc.Delete(context.Background(), id))
	assert.EqualError(t, svc.Delete(context.Background(), id), "item not found")
}

func TestCustomerDeleteGuardedByUse(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := service.NewCustomerService(repo)
	id := repo.add("Koperasi Maju")

	repo.inUse[id] = true
	err := svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sales reference it")

	repo.inUse[id] = false
	assert.NoError(t, svc.Delete(context.Background(), id))
}
