package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

func TestRoleFromString(t *testing.T) {
	role, err := kernel.RoleFromString("customer")
	require.NoError(t, err)
	assert.Equal(t, kernel.Customer, role)

	role, err = kernel.RoleFromString("shopOwner")
	require.NoError(t, err)
	assert.Equal(t, kernel.ShopOwner, role)
	assert.Equal(t, "shopOwner", role.String())

	_, err = kernel.RoleFromString("admin")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestNewRequester(t *testing.T) {
	t.Run("valid requester", func(t *testing.T) {
		r, err := kernel.NewRequester(kernel.NewUUID(), kernel.Customer)
		require.NoError(t, err)
		assert.True(t, r.IsCustomer())
		assert.False(t, r.IsShopOwner())
		require.NoError(t, r.Validate())
	})

	t.Run("zero user id", func(t *testing.T) {
		_, err := kernel.NewRequester(kernel.UUID{}, kernel.Customer)
		require.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := kernel.NewRequester(kernel.NewUUID(), kernel.UnknownRole)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestAddress_Validate(t *testing.T) {
	lat := 95.0

	tests := []struct {
		name    string
		address kernel.Address
		wantErr bool
	}{
		{name: "street and city", address: kernel.Address{Street: "1 Main St", City: "Springfield"}},
		{name: "missing street", address: kernel.Address{City: "Springfield"}, wantErr: true},
		{name: "blank city", address: kernel.Address{Street: "1 Main St", City: "   "}, wantErr: true},
		{name: "latitude out of range", address: kernel.Address{Street: "1 Main St", City: "X", Lat: &lat}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.address.Validate("pickupAddress")
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}

	assert.Equal(t, "1 Main St, Springfield, US",
		kernel.Address{Street: "1 Main St", City: "Springfield", Country: "US"}.String())
}

func TestNewMoney(t *testing.T) {
	t.Run("keeps the amount exactly", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.50"))
		require.NoError(t, err)
		assert.Equal(t, "10.5", m.Decimal().String())
		require.NoError(t, m.Validate())
	})

	t.Run("sub-cent precision is invalid input", func(t *testing.T) {
		for _, raw := range []string{"10.125", "10.005", "0.001"} {
			_, err := kernel.NewMoney(decimal.RequireFromString(raw))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
			require.ErrorIs(t, err, errs.ErrInvalidInput, raw)
		}
	})

	t.Run("trailing zeros are not extra precision", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.500"))
		require.NoError(t, err)
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("column maximum is accepted", func(t *testing.T) {
		m, err := kernel.NewMoney(kernel.MaxMoneyAmount)
		require.NoError(t, err)
		assert.True(t, m.Decimal().Equal(kernel.MaxMoneyAmount))
	})

	t.Run("above column maximum is out of range", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("10000000000"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("totals may exceed the column maximum", func(t *testing.T) {
		m, err := kernel.NewMoneyTotal(decimal.RequireFromString("25000000000.10"))
		require.NoError(t, err)
		assert.Equal(t, "25000000000.10", m.String())

		_, err = kernel.NewMoneyTotal(decimal.RequireFromString("1.001"))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(0)
		require.NoError(t, err)
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("negative is invalid input", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("add", func(t *testing.T) {
		a, _ := kernel.MoneyFromFloat(100)
		b, _ := kernel.MoneyFromFloat(50.5)
		assert.Equal(t, "150.50", a.Add(b).String())
		assert.InDelta(t, 150.5, a.Add(b).Float64(), 1e-9)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}
