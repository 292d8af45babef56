package roster

import (
	"fmt"
	"sort"

	"github.com/crosslog/dispatch-backend-go/internal/domain/document"
	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
)

// groupByDriver splits a month's assignments into per-driver slices,
// preserving the date/position order of the input.
func groupByDriver(assignments []roster.Assignment) map[string][]roster.Assignment {
	byDriver := make(map[string][]roster.Assignment)
	for _, a := range assignments {
		byDriver[a.DriverID] = append(byDriver[a.DriverID], a)
	}
	return byDriver
}

// buildPurchaseOrderLines renders one line per assignment, absences
// included: the purchase order records what was ordered, not what happened.
func buildPurchaseOrderLines(assignments []roster.Assignment) ([]document.LineItem, int) {
	lines := make([]document.LineItem, 0, len(assignments))
	total := 0
	for _, a := range assignments {
		lines = append(lines, document.LineItem{
			Label:  fmt.Sprintf("%s (%s)", a.ProjectName, a.Date),
			Amount: a.UnitPrice,
		})
		total += a.UnitPrice
	}
	return lines, total
}

// buildPaymentStatementLines aggregates one line per project over the
// driver's non-absent assignments, amounts from the price snapshots taken at
// assign time.
func buildPaymentStatementLines(assignments []roster.Assignment) ([]document.LineItem, int) {
	amounts := make(map[string]int)
	days := make(map[string]int)
	var order []string

	for _, a := range assignments {
		if a.Status == roster.StatusAbsent {
			continue
		}
		if _, seen := amounts[a.ProjectName]; !seen {
			order = append(order, a.ProjectName)
		}
		amounts[a.ProjectName] += a.UnitPrice
		days[a.ProjectName]++
	}
	sort.Strings(order)

	lines := make([]document.LineItem, 0, len(order))
	total := 0
	for _, name := range order {
		lines = append(lines, document.LineItem{
			Label:  fmt.Sprintf("%s x %d", name, days[name]),
			Amount: amounts[name],
		})
		total += amounts[name]
	}
	return lines, total
}
