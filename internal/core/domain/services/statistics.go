package services

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// TopServicesLimit is the number of entries reported in DashboardStats.TopServices.
const TopServicesLimit = 5

// Window is the look-back period of the shop dashboard.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

func getWindowDays() map[Window]int {
	return map[Window]int{
		WindowWeek:  7,
		WindowMonth: 30,
		WindowYear:  365,
	}
}

// WindowFromString parses a window name. An empty name selects WindowWeek.
func WindowFromString(s string) (Window, error) {
	if s == "" {
		return WindowWeek, nil
	}
	if _, ok := getWindowDays()[Window(s)]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("timeRange", fmt.Errorf("%q is not one of week, month, year", s))
	}
	return Window(s), nil
}

// Range returns [now-window, now] in UTC.
func (w Window) Range(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	return now.AddDate(0, 0, -getWindowDays()[w]), now
}

// StatusTotal is one row of a store-side GROUP BY status aggregation.
type StatusTotal struct {
	Status order.Status
	Count  int
	Amount kernel.Money
}

// ShopStats is the lifetime summary of a shop's orders. TotalRevenue only
// counts Completed orders.
type ShopStats struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	TotalRevenue    kernel.Money
}

// Overview holds the headline figures of the dashboard. The order counts are
// split by board group.
type Overview struct {
	TotalOrders      int
	TotalRevenue     kernel.Money
	NewOrders        int
	ProcessingOrders int
	ReadyOrders      int
	HistoryOrders    int
}

// DailyRevenue is the revenue of one UTC day. Date uses the 2006-01-02 layout.
type DailyRevenue struct {
	Date    string
	Revenue kernel.Money
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status order.Status
	Count  int
}

// ServiceCount is how many order items used a service type.
type ServiceCount struct {
	ServiceType string
	Count       int
}

// DashboardStats summarizes the orders created within a window.
type DashboardStats struct {
	Window         Window
	From           time.Time
	To             time.Time
	Overview       Overview
	RevenueByDay   []DailyRevenue
	OrdersByStatus []StatusCount
	TopServices    []ServiceCount
}

// StatisticsCalculator turns raw order data into the figures shown to shop owners.
type StatisticsCalculator struct{}

// NewStatisticsCalculator creates a StatisticsCalculator.
func NewStatisticsCalculator() StatisticsCalculator {
	return StatisticsCalculator{}
}

// ShopStats folds per-status totals into the lifetime summary.
func (StatisticsCalculator) ShopStats(totals []StatusTotal) ShopStats {
	stats := ShopStats{TotalRevenue: kernel.ZeroMoney()}
	for _, t := range totals {
		stats.TotalOrders += t.Count
		switch t.Status {
		case order.Pending:
			stats.PendingOrders += t.Count
		case order.Completed:
			stats.CompletedOrders += t.Count
			if t.Amount.Validate() == nil {
				stats.TotalRevenue = stats.TotalRevenue.Add(t.Amount)
			}
		default:
		}
	}
	return stats
}

// Dashboard computes the window summary of orders. Orders created outside of
// [from, to] are ignored, so callers may pass a superset.
//
// Revenue figures of the dashboard include every status, unlike ShopStats.
func (StatisticsCalculator) Dashboard(orders []*order.Order, window Window, now time.Time) DashboardStats {
	from, to := window.Range(now)
	stats := DashboardStats{
		Window:         window,
		From:           from,
		To:             to,
		Overview:       Overview{TotalRevenue: kernel.ZeroMoney()},
		RevenueByDay:   []DailyRevenue{},
		OrdersByStatus: []StatusCount{},
		TopServices:    []ServiceCount{},
	}

	var groups order.GroupCounts
	revenue := map[string]kernel.Money{}
	byStatus := map[order.Status]int{}
	byService := map[string]int{}

	for _, o := range orders {
		created := o.CreatedAt()
		if created.Before(from) || created.After(to) {
			continue
		}

		stats.Overview.TotalOrders++
		stats.Overview.TotalRevenue = stats.Overview.TotalRevenue.Add(o.TotalAmount())
		groups.Add(o.Status(), 1)

		day := created.UTC().Format(time.DateOnly)
		if current, ok := revenue[day]; ok {
			revenue[day] = current.Add(o.TotalAmount())
		} else {
			revenue[day] = kernel.ZeroMoney().Add(o.TotalAmount())
		}

		byStatus[o.Status()]++
		for _, item := range o.Items() {
			byService[item.ServiceType()] += item.Count()
		}
	}

	stats.Overview.NewOrders = groups.New
	stats.Overview.ProcessingOrders = groups.Processing
	stats.Overview.ReadyOrders = groups.Ready
	stats.Overview.HistoryOrders = groups.History

	for day, amount := range revenue {
		stats.RevenueByDay = append(stats.RevenueByDay, DailyRevenue{Date: day, Revenue: amount})
	}
	slices.SortFunc(stats.RevenueByDay, func(a, b DailyRevenue) int {
		return cmp.Compare(a.Date, b.Date)
	})

	for _, s := range order.AllStatuses() {
		if n := byStatus[s]; n > 0 {
			stats.OrdersByStatus = append(stats.OrdersByStatus, StatusCount{Status: s, Count: n})
		}
	}

	for serviceType, n := range byService {
		stats.TopServices = append(stats.TopServices, ServiceCount{ServiceType: serviceType, Count: n})
	}
	slices.SortFunc(stats.TopServices, func(a, b ServiceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.ServiceType, b.ServiceType)
	})
	if len(stats.TopServices) > TopServicesLimit {
		stats.TopServices = stats.TopServices[:TopServicesLimit]
	}

	return stats
}
