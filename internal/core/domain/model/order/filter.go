package order

import (
	"fmt"
	"slices"

	"laundry/internal/pkg/errs"
)

// Group names a predefined set of statuses used to filter order listings.
type Group string

const (
	GroupAll     Group = "all"
	GroupActive  Group = "active"
	GroupHistory Group = "history"

	// Shop dashboard groups.
	GroupNew        Group = "new"
	GroupProcessing Group = "processing"
	GroupReady      Group = "ready"
)

func getGroupStatuses() map[Group][]Status {
	return map[Group][]Status{
		GroupAll:        AllStatuses(),
		GroupActive:     {Pending, Accepted, PickedUp, InProgress, Completed},
		GroupHistory:    {Delivered, Cancelled},
		GroupNew:        {Pending},
		GroupProcessing: {Accepted, PickedUp, InProgress},
		GroupReady:      {Completed},
	}
}

// GroupStatuses returns the statuses of g, or nil for an unknown group.
func GroupStatuses(g Group) []Status {
	return slices.Clone(getGroupStatuses()[g])
}

// Filter selects orders by status. The zero Filter matches every order.
type Filter struct {
	statuses []Status
}

// NewFilter builds a filter from a group name or an explicit status list.
// An empty group with no statuses means "all"; both at once is invalid input.
func NewFilter(group string, statuses []string) (Filter, error) {
	if group != "" && len(statuses) > 0 {
		return Filter{}, errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("group %q and explicit statuses are mutually exclusive", group))
	}

	if len(statuses) > 0 {
		set := make([]Status, 0, len(statuses))
		for _, s := range statuses {
			status, err := StatusFromString(s)
			if err != nil {
				return Filter{}, err
			}
			if !slices.Contains(set, status) {
				set = append(set, status)
			}
		}
		return Filter{statuses: set}, nil
	}

	if group == "" || Group(group) == GroupAll {
		return Filter{}, nil
	}
	set, ok := getGroupStatuses()[Group(group)]
	if !ok {
		return Filter{}, errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%q is not a known group", group))
	}
	return Filter{statuses: set}, nil
}

// FilterOf builds a filter from known statuses.
func FilterOf(statuses ...Status) Filter {
	return Filter{statuses: slices.Clone(statuses)}
}

// Statuses returns the selected statuses, or nil when the filter matches all.
func (f Filter) Statuses() []Status {
	return slices.Clone(f.statuses)
}

// IsAll reports whether the filter matches every status.
func (f Filter) IsAll() bool {
	return len(f.statuses) == 0
}

// Matches reports whether an order of status s passes the filter.
func (f Filter) Matches(s Status) bool {
	return f.IsAll() || slices.Contains(f.statuses, s)
}

// GroupCounts is the per-group breakdown shown on the shop order board.
type GroupCounts struct {
	New        int
	Processing int
	Ready      int
	History    int
}

// Add accounts one order of status s.
func (c *GroupCounts) Add(s Status, n int) {
	switch s {
	case Pending:
		c.New += n
	case Accepted, PickedUp, InProgress:
		c.Processing += n
	case Completed:
		c.Ready += n
	case Delivered, Cancelled:
		c.History += n
	case Unknown:
	}
}
