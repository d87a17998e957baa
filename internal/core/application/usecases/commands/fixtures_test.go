package commands_test

import (
	"testing"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func verifiedAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(
		kernel.NewUUID(), role, "Test User", "user@example.com",
		"+15550100", "secret-password", nil, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, acc.Decide(account.Verified))
	return acc
}

func pendingAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(
		kernel.NewUUID(), role, "Test User", "pending@example.com",
		"+15550101", "secret-password", nil, time.Now(),
	)
	require.NoError(t, err)
	return acc
}

func catalogProduct(t *testing.T, vendorID kernel.UUID, stock int) *product.Product {
	t.Helper()
	prd, err := product.NewProduct(
		kernel.NewUUID(), vendorID, "Single Malt", "12 year old",
		"/uploads/malt.png", mustMoney(t, 4500), stock, time.Now(),
	)
	require.NoError(t, err)
	return prd
}

func pendingItem(t *testing.T, vendorID kernel.UUID) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), vendorID,
		"Single Malt", "/uploads/malt.png", mustMoney(t, 4500), 1,
	)
	require.NoError(t, err)
	return item
}

// handedOverItem walks an item through vendor acceptance and handover.
func handedOverItem(t *testing.T, vendorID kernel.UUID) *order.Item {
	t.Helper()
	item := pendingItem(t, vendorID)
	require.NoError(t, item.AcceptByVendor(vendorID))
	require.NoError(t, item.HandOver(vendorID))
	return item
}

func placedOrder(t *testing.T, customerID kernel.UUID, items ...*order.Item) *order.Order {
	t.Helper()
	address, err := order.NewAddress("12 Cask Lane", "Dublin", "D02", "+15550102")
	require.NoError(t, err)
	number, err := order.NewNumber(41)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, customerID, address, items, time.Now())
	require.NoError(t, err)
	return o
}
