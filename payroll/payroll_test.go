package payroll

import (
	"testing"

	"sitepay/config"
	"sitepay/finance"
)

func testPolicy() Policy {
	return Policy{
		StandardStartMinutes:   8 * 60,
		StandardEndMinutes:     17 * 60,
		ShiftMinutes:           540,
		OvertimeMode:           config.OvertimeModeEndOfShift,
		OvertimeMultiplier:     1.5,
		LateDeductionPerMinute: 1,
	}
}

func TestDerive_LateArrivalAndOvertime(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	fact := policy.Derive(finance.AttendanceFact{
		Date:     "2026-08-03",
		CheckIn:  finance.PunchAt(8*60 + 15),
		CheckOut: finance.PunchAt(17*60 + 30),
	})

	if fact.LateMinutes != 15 {
		t.Fatalf("expected 15 late minutes, got %d", fact.LateMinutes)
	}
	if fact.WorkedMinutes != 555 {
		t.Fatalf("expected 555 worked minutes, got %d", fact.WorkedMinutes)
	}
	if fact.OvertimeMinutes != 30 {
		t.Fatalf("expected 30 overtime minutes past end of shift, got %d", fact.OvertimeMinutes)
	}
}

func TestDerive_ShiftLengthOvertimeMode(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	policy.OvertimeMode = config.OvertimeModeShiftLength
	fact := policy.Derive(finance.AttendanceFact{
		CheckIn:  finance.PunchAt(8*60 + 15),
		CheckOut: finance.PunchAt(17*60 + 30),
	})

	// 555 worked minus the 540-minute shift.
	if fact.OvertimeMinutes != 15 {
		t.Fatalf("expected 15 overtime minutes over shift length, got %d", fact.OvertimeMinutes)
	}
}

func TestDerive_EarlyArrivalIsNotNegativeLateness(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	fact := policy.Derive(finance.AttendanceFact{
		CheckIn:  finance.PunchAt(7 * 60),
		CheckOut: finance.PunchAt(17 * 60),
	})

	if fact.LateMinutes != 0 {
		t.Fatalf("expected 0 late minutes for early arrival, got %d", fact.LateMinutes)
	}
	if fact.WorkedMinutes != 600 {
		t.Fatalf("expected 600 worked minutes, got %d", fact.WorkedMinutes)
	}
}

func TestDerive_MissingPunchYieldsNoWorkedTime(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	fact := policy.Derive(finance.AttendanceFact{
		CheckIn: finance.PunchAt(8*60 + 20),
	})

	if fact.LateMinutes != 20 {
		t.Fatalf("lateness should still apply with a missing check-out, got %d", fact.LateMinutes)
	}
	if fact.WorkedMinutes != 0 || fact.OvertimeMinutes != 0 {
		t.Fatalf("missing check-out must not produce worked or overtime minutes: %+v", fact)
	}
}

func TestDerive_InvertedPunchPair(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	fact := policy.Derive(finance.AttendanceFact{
		CheckIn:  finance.PunchAt(17 * 60),
		CheckOut: finance.PunchAt(8 * 60),
	})

	if !fact.Inverted {
		t.Fatalf("expected the fact to be flagged inverted")
	}
	if fact.WorkedMinutes != 0 || fact.OvertimeMinutes != 0 {
		t.Fatalf("inverted pair must zero the derived minutes: %+v", fact)
	}
}

func TestSummarize_WageComputation(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	employee := finance.Employee{ID: 7, Code: "021", Name: "Somchai", DailyWage: 500}

	facts := policy.DeriveAll([]finance.AttendanceFact{
		{EmployeeID: 7, Date: "2026-08-03", CheckIn: finance.PunchAt(8*60 + 15), CheckOut: finance.PunchAt(17*60 + 30)},
		{EmployeeID: 7, Date: "2026-08-04", CheckIn: finance.PunchAt(8 * 60), CheckOut: finance.PunchAt(17 * 60)},
		{EmployeeID: 7, Date: "2026-08-05"},
	})

	summary := policy.Summarize(employee, facts)

	if summary.WorkedDays != 2 {
		t.Fatalf("a fact without check-in must not count as a worked day, got %d", summary.WorkedDays)
	}
	if summary.GrossWage != 1000 {
		t.Fatalf("expected gross 1000, got %d", summary.GrossWage)
	}
	if summary.LateMinutes != 15 || summary.LateDeduction != 15 {
		t.Fatalf("expected 15 late minutes deducting 15, got %d / %d", summary.LateMinutes, summary.LateDeduction)
	}
	// 30 overtime minutes at 500/9h * 1.5 rounds to 42.
	if summary.OvertimePay != 42 {
		t.Fatalf("expected overtime pay 42, got %d", summary.OvertimePay)
	}
	if summary.NetWage != 1000+42-15 {
		t.Fatalf("unexpected net wage %d", summary.NetWage)
	}
}

func TestSummarize_NetWageFloorsAtZero(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	policy.LateDeductionPerMinute = 100
	employee := finance.Employee{ID: 1, Code: "021", DailyWage: 100}

	facts := policy.DeriveAll([]finance.AttendanceFact{
		{EmployeeID: 1, CheckIn: finance.PunchAt(10 * 60), CheckOut: finance.PunchAt(17 * 60)},
	})

	summary := policy.Summarize(employee, facts)
	if summary.NetWage != 0 {
		t.Fatalf("net wage must floor at zero, got %d", summary.NetWage)
	}
}

func TestBuildSummaries_OrdersByCodeAndSkipsFactlessEmployees(t *testing.T) {
	t.Parallel()

	policy := testPolicy()
	employees := []finance.Employee{
		{ID: 2, Code: "022", Name: "Anan", DailyWage: 450},
		{ID: 1, Code: "021", Name: "Somchai", DailyWage: 500},
		{ID: 3, Code: "030", Name: "Idle", DailyWage: 400},
	}
	facts := policy.DeriveAll([]finance.AttendanceFact{
		{EmployeeID: 1, Date: "2026-08-03", CheckIn: finance.PunchAt(8 * 60), CheckOut: finance.PunchAt(17 * 60)},
		{EmployeeID: 2, Date: "2026-08-03", CheckIn: finance.PunchAt(8 * 60), CheckOut: finance.PunchAt(17 * 60)},
	})

	summaries := policy.BuildSummaries(employees, facts)
	if len(summaries) != 2 {
		t.Fatalf("employee without facts must be omitted, got %d summaries", len(summaries))
	}
	if summaries[0].EmployeeCode != "021" || summaries[1].EmployeeCode != "022" {
		t.Fatalf("expected code ordering, got %q then %q", summaries[0].EmployeeCode, summaries[1].EmployeeCode)
	}
}

func TestPolicyFromConfig(t *testing.T) {
	t.Parallel()

	policy, err := PolicyFromConfig(config.PayrollConfig{
		StandardStart:          "08:00",
		StandardEnd:            "17:00",
		ShiftMinutes:           540,
		OvertimeMode:           "End-Of-Shift",
		OvertimeMultiplier:     1.5,
		LateDeductionPerMinute: 1,
	})
	if err != nil {
		t.Fatalf("policy from config: %v", err)
	}
	if policy.StandardStartMinutes != 480 || policy.StandardEndMinutes != 1020 {
		t.Fatalf("unexpected clock offsets: %+v", policy)
	}
	if policy.OvertimeMode != config.OvertimeModeEndOfShift {
		t.Fatalf("mode should normalize to lower case, got %q", policy.OvertimeMode)
	}

	if _, err := PolicyFromConfig(config.PayrollConfig{StandardStart: "8am", StandardEnd: "17:00"}); err == nil {
		t.Fatalf("expected error for unparseable start clock")
	}
}
