package ticket_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func validContact() ticket.Contact {
	return ticket.Contact{Name: "Ann", Email: "ann@example.com"}
}

func TestNewTicket(t *testing.T) {
	t.Run("creates an open ticket", func(t *testing.T) {
		userID := kernel.NewUUID()

		tk, err := ticket.NewTicket(kernel.NewUUID(), userID, ticket.Bug, "App crashes", "on login", validContact(), testNow)

		require.NoError(t, err)
		require.NoError(t, tk.Validate())
		assert.Equal(t, ticket.Open, tk.Status())
		assert.Equal(t, ticket.Bug, tk.Type())
		assert.True(t, tk.IsOwnedBy(userID))
		assert.Equal(t, testNow, tk.CreatedAt())
	})

	tests := []struct {
		name    string
		kind    ticket.Type
		subject string
		message string
		contact ticket.Contact
	}{
		{"unknown type", ticket.UnknownType, "s", "m", validContact()},
		{"blank subject", ticket.General, " ", "m", validContact()},
		{"blank message", ticket.General, "s", "", validContact()},
		{"missing name", ticket.General, "s", "m", ticket.Contact{Email: "ann@example.com"}},
		{"missing email", ticket.General, "s", "m", ticket.Contact{Name: "Ann"}},
		{"malformed email", ticket.General, "s", "m", ticket.Contact{Name: "Ann", Email: "ann.example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), tt.kind, tt.subject, tt.message, tt.contact, testNow)

			assert.Nil(t, tk)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	newTicket := func(t *testing.T) *ticket.Ticket {
		t.Helper()
		tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), ticket.Account, "s", "m", validContact(), testNow)
		require.NoError(t, err)
		return tk
	}
	later := testNow.Add(time.Minute)

	t.Run("any change between distinct statuses before closing", func(t *testing.T) {
		tk := newTicket(t)
		for _, next := range []ticket.Status{ticket.Resolved, ticket.InProgress, ticket.Open, ticket.Closed} {
			require.NoError(t, tk.ChangeStatus(next, later))
			assert.Equal(t, next, tk.Status())
		}
		assert.Equal(t, later, tk.UpdatedAt())
	})

	t.Run("same status is an invalid transition", func(t *testing.T) {
		tk := newTicket(t)
		require.ErrorIs(t, tk.ChangeStatus(ticket.Open, later), errs.ErrInvalidTransition)
		assert.Equal(t, testNow, tk.UpdatedAt())
	})

	t.Run("closed is terminal", func(t *testing.T) {
		tk := newTicket(t)
		require.NoError(t, tk.ChangeStatus(ticket.Closed, later))

		for _, next := range []ticket.Status{ticket.Open, ticket.InProgress, ticket.Resolved, ticket.Closed} {
			require.ErrorIs(t, tk.ChangeStatus(next, later), errs.ErrInvalidTransition)
		}
	})

	t.Run("unknown target is invalid input", func(t *testing.T) {
		tk := newTicket(t)
		require.ErrorIs(t, tk.ChangeStatus(ticket.UnknownStatus, later), errs.ErrInvalidInput)
	})
}

func TestParsing(t *testing.T) {
	s, err := ticket.StatusFromString("in_progress")
	require.NoError(t, err)
	assert.Equal(t, ticket.InProgress, s)

	_, err = ticket.StatusFromString("pending")
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	k, err := ticket.TypeFromString("feature")
	require.NoError(t, err)
	assert.Equal(t, "feature", k.String())

	_, err = ticket.TypeFromString("complaint")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}
