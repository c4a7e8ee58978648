// Package payroll derives lateness, worked and overtime minutes from raw
// attendance punches and turns them into wage summaries and ledger
// postings.
package payroll

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"sitepay/config"
	"sitepay/finance"
	"sitepay/internal/timeutil"
)

type Policy struct {
	StandardStartMinutes   int
	StandardEndMinutes     int
	ShiftMinutes           int
	OvertimeMode           string
	OvertimeMultiplier     float64
	LateDeductionPerMinute int64
}

// PolicyFromConfig resolves the configured clock strings into minute
// offsets. Config validation has already vetted them, so a failure here
// means the caller bypassed LoadAndValidate.
func PolicyFromConfig(cfg config.PayrollConfig) (Policy, error) {
	start, ok := timeutil.ParseClock(cfg.StandardStart)
	if !ok {
		return Policy{}, fmt.Errorf("invalid standard start time %q", cfg.StandardStart)
	}
	end, ok := timeutil.ParseClock(cfg.StandardEnd)
	if !ok {
		return Policy{}, fmt.Errorf("invalid standard end time %q", cfg.StandardEnd)
	}

	return Policy{
		StandardStartMinutes:   start,
		StandardEndMinutes:     end,
		ShiftMinutes:           cfg.ShiftMinutes,
		OvertimeMode:           strings.ToLower(strings.TrimSpace(cfg.OvertimeMode)),
		OvertimeMultiplier:     cfg.OvertimeMultiplier,
		LateDeductionPerMinute: cfg.LateDeductionPerMinute,
	}, nil
}

// Derive fills in the derived minute counts for one fact. All counts stay
// at or above zero: an early arrival is zero lateness, and a check-out
// before check-in zeroes the worked and overtime minutes and flags the
// fact for manual review instead of going negative.
func (p Policy) Derive(fact finance.AttendanceFact) finance.AttendanceFact {
	fact.LateMinutes = 0
	fact.WorkedMinutes = 0
	fact.OvertimeMinutes = 0
	fact.Inverted = false

	if fact.CheckIn.Valid && fact.CheckIn.Minutes > p.StandardStartMinutes {
		fact.LateMinutes = fact.CheckIn.Minutes - p.StandardStartMinutes
	}

	if !fact.CheckIn.Valid || !fact.CheckOut.Valid {
		return fact
	}

	if fact.CheckOut.Minutes < fact.CheckIn.Minutes {
		fact.Inverted = true
		return fact
	}
	fact.WorkedMinutes = fact.CheckOut.Minutes - fact.CheckIn.Minutes

	switch p.OvertimeMode {
	case config.OvertimeModeShiftLength:
		if fact.WorkedMinutes > p.ShiftMinutes {
			fact.OvertimeMinutes = fact.WorkedMinutes - p.ShiftMinutes
		}
	default:
		if fact.CheckOut.Minutes > p.StandardEndMinutes {
			fact.OvertimeMinutes = fact.CheckOut.Minutes - p.StandardEndMinutes
		}
	}

	return fact
}

func (p Policy) DeriveAll(facts []finance.AttendanceFact) []finance.AttendanceFact {
	derived := make([]finance.AttendanceFact, len(facts))
	for i, fact := range facts {
		derived[i] = p.Derive(fact)
	}
	return derived
}

// Summary is one employee's wage computation over a batch of facts.
type Summary struct {
	EmployeeID      int64
	EmployeeCode    string
	EmployeeName    string
	DailyWage       int64
	WorkedDays      int
	LateMinutes     int
	OvertimeMinutes int
	InvertedPunches int
	GrossWage       int64
	OvertimePay     int64
	LateDeduction   int64
	NetWage         int64
}

// Summarize aggregates already-derived facts for one employee. A fact with
// no check-in contributes nothing to the worked-day count or lateness.
func (p Policy) Summarize(employee finance.Employee, facts []finance.AttendanceFact) Summary {
	summary := Summary{
		EmployeeID:   employee.ID,
		EmployeeCode: employee.Code,
		EmployeeName: employee.Name,
		DailyWage:    employee.DailyWage,
	}

	for _, fact := range facts {
		if !fact.CheckIn.Valid {
			continue
		}
		summary.WorkedDays++
		summary.LateMinutes += fact.LateMinutes
		summary.OvertimeMinutes += fact.OvertimeMinutes
		if fact.Inverted {
			summary.InvertedPunches++
		}
	}

	summary.GrossWage = int64(summary.WorkedDays) * employee.DailyWage
	summary.OvertimePay = p.overtimePay(summary.OvertimeMinutes, employee.DailyWage)
	summary.LateDeduction = int64(summary.LateMinutes) * p.LateDeductionPerMinute

	summary.NetWage = summary.GrossWage + summary.OvertimePay - summary.LateDeduction
	if summary.NetWage < 0 {
		summary.NetWage = 0
	}

	return summary
}

// overtimePay converts overtime minutes into whole currency units at the
// hourly rate implied by the daily wage and standard shift length.
func (p Policy) overtimePay(overtimeMinutes int, dailyWage int64) int64 {
	if overtimeMinutes <= 0 || p.ShiftMinutes <= 0 {
		return 0
	}
	hourlyRate := float64(dailyWage) / (float64(p.ShiftMinutes) / 60.0)
	pay := float64(overtimeMinutes) / 60.0 * hourlyRate * p.OvertimeMultiplier
	return int64(math.Round(pay))
}

// BuildSummaries groups derived facts by employee and summarizes each one,
// ordered by employee code for stable output.
func (p Policy) BuildSummaries(employees []finance.Employee, facts []finance.AttendanceFact) []Summary {
	byEmployee := make(map[int64][]finance.AttendanceFact, len(employees))
	for _, fact := range facts {
		byEmployee[fact.EmployeeID] = append(byEmployee[fact.EmployeeID], fact)
	}

	summaries := make([]Summary, 0, len(employees))
	for _, employee := range employees {
		employeeFacts := byEmployee[employee.ID]
		if len(employeeFacts) == 0 {
			continue
		}
		summaries = append(summaries, p.Summarize(employee, employeeFacts))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeCode < summaries[j].EmployeeCode
	})
	return summaries
}
