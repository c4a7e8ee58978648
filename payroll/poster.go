package payroll

import (
	"fmt"

	"sitepay/finance"
)

// Ledger is the slice of the store the poster needs. The implementation
// must reject a batch key that has already produced Labor postings for the
// project with finance.ErrBatchAlreadyPosted, and write all entries of one
// call atomically.
type Ledger interface {
	InsertPayrollExpenses(projectID int64, batch string, entries []finance.ExpenseEntry) (int, error)
}

type PostResult struct {
	Postings    []finance.ExpenseEntry
	Employees   int
	TotalAmount int64
}

// PostPerEmployee writes one Labor expense per employee summary. Repeated
// invocation for the same batch key is rejected by the ledger, so a period
// can never be double-counted by accident.
func PostPerEmployee(ledger Ledger, projectID int64, batch, date string, summaries []Summary) (*PostResult, error) {
	result := buildPostResult(summaries)
	for _, summary := range summaries {
		result.Postings = append(result.Postings, finance.ExpenseEntry{
			ProjectID: projectID,
			Category:  finance.CategoryLabor,
			Description: fmt.Sprintf("Payroll %s: %s (%s), %d days worked",
				batch, summary.EmployeeName, summary.EmployeeCode, summary.WorkedDays),
			Amount: summary.NetWage,
			Date:   date,
			Batch:  batch,
		})
	}

	if _, err := ledger.InsertPayrollExpenses(projectID, batch, result.Postings); err != nil {
		return nil, err
	}
	return result, nil
}

// PostBatch writes a single lump Labor expense summing net wages across
// all employees in the batch; the per-employee detail survives only in the
// attendance facts, not in the ledger.
func PostBatch(ledger Ledger, projectID int64, batch, date string, summaries []Summary) (*PostResult, error) {
	result := buildPostResult(summaries)
	result.Postings = append(result.Postings, finance.ExpenseEntry{
		ProjectID: projectID,
		Category:  finance.CategoryLabor,
		Description: fmt.Sprintf("Payroll %s: %d employees, net wages total",
			batch, result.Employees),
		Amount: result.TotalAmount,
		Date:   date,
		Batch:  batch,
	})

	if _, err := ledger.InsertPayrollExpenses(projectID, batch, result.Postings); err != nil {
		return nil, err
	}
	return result, nil
}

func buildPostResult(summaries []Summary) *PostResult {
	result := &PostResult{Employees: len(summaries)}
	for _, summary := range summaries {
		result.TotalAmount += summary.NetWage
	}
	return result
}
