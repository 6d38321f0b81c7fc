package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		statuses []string
		matches  []order.Status
		excludes []order.Status
	}{
		{name: "empty means all", matches: order.AllStatuses()},
		{name: "all", group: "all", matches: order.AllStatuses()},
		{
			name:     "active",
			group:    "active",
			matches:  []order.Status{order.Pending, order.Accepted, order.PickedUp, order.InProgress, order.Completed},
			excludes: []order.Status{order.Delivered, order.Cancelled},
		},
		{
			name:     "history",
			group:    "history",
			matches:  []order.Status{order.Delivered, order.Cancelled},
			excludes: []order.Status{order.Pending, order.Completed},
		},
		{
			name:     "processing",
			group:    "processing",
			matches:  []order.Status{order.Accepted, order.PickedUp, order.InProgress},
			excludes: []order.Status{order.Pending, order.Completed},
		},
		{
			name:     "explicit set",
			statuses: []string{"pending", "delivered", "pending"},
			matches:  []order.Status{order.Pending, order.Delivered},
			excludes: []order.Status{order.Accepted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := order.NewFilter(tt.group, tt.statuses)
			require.NoError(t, err)

			for _, s := range tt.matches {
				assert.True(t, f.Matches(s), "%s should match", s)
			}
			for _, s := range tt.excludes {
				assert.False(t, f.Matches(s), "%s should not match", s)
			}
		})
	}

	t.Run("explicit set is deduplicated", func(t *testing.T) {
		f, err := order.NewFilter("", []string{"pending", "pending"})
		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.Pending}, f.Statuses())
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := order.NewFilter("archived", nil)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := order.NewFilter("", []string{"lost"})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("group and statuses together", func(t *testing.T) {
		_, err := order.NewFilter("active", []string{"pending"})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestGroupCounts_Add(t *testing.T) {
	var c order.GroupCounts
	for _, s := range order.AllStatuses() {
		c.Add(s, 1)
	}
	c.Add(order.Pending, 2)

	assert.Equal(t, order.GroupCounts{New: 3, Processing: 3, Ready: 1, History: 2}, c)
}
