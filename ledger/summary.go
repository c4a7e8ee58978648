// Package ledger builds the project money view (the dashboard numbers)
// and exports attendance facts and ledger history to CSV or Excel.
package ledger

import "sitepay/finance"

// ProjectSummary is the dashboard row for one project: contract value,
// what has been invoiced and received, what has been spent per category,
// and the resulting margin. RemainingToInvoice can go negative when more
// was received than the contract value; that is surfaced, not clamped.
type ProjectSummary struct {
	Project            finance.Project
	Received           int64
	RemainingToInvoice int64
	Spent              int64
	SpentLabor         int64
	SpentMaterial      int64
	SpentOther         int64
	Margin             int64
}

func BuildProjectSummary(project finance.Project, received, spent int64, byCategory map[finance.Category]int64) ProjectSummary {
	return ProjectSummary{
		Project:            project,
		Received:           received,
		RemainingToInvoice: project.ContractValue - received,
		Spent:              spent,
		SpentLabor:         byCategory[finance.CategoryLabor],
		SpentMaterial:      byCategory[finance.CategoryMaterial],
		SpentOther:         byCategory[finance.CategoryOther],
		Margin:             received - spent,
	}
}
