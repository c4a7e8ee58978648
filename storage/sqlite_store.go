package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"sitepay/finance"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	contract_value INTEGER NOT NULL CHECK(contract_value >= 0),
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id),
	code TEXT NOT NULL,
	name TEXT NOT NULL,
	daily_wage INTEGER NOT NULL CHECK(daily_wage >= 0),
	UNIQUE(project_id, code)
);

CREATE TABLE IF NOT EXISTS attendance_facts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id INTEGER NOT NULL REFERENCES employees(id),
	work_date TEXT NOT NULL,
	check_in INTEGER,
	check_out INTEGER,
	late_minutes INTEGER NOT NULL DEFAULT 0 CHECK(late_minutes >= 0),
	worked_minutes INTEGER NOT NULL DEFAULT 0 CHECK(worked_minutes >= 0),
	overtime_minutes INTEGER NOT NULL DEFAULT 0 CHECK(overtime_minutes >= 0),
	inverted INTEGER NOT NULL DEFAULT 0,
	batch TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(employee_id, work_date)
);

CREATE TABLE IF NOT EXISTS incomes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id),
	phase TEXT NOT NULL,
	percent REAL NOT NULL CHECK(percent >= 0),
	amount INTEGER NOT NULL CHECK(amount >= 0),
	received_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id),
	category TEXT NOT NULL CHECK(category IN ('Labor', 'Material', 'Other')),
	description TEXT NOT NULL,
	amount INTEGER NOT NULL CHECK(amount >= 0),
	expense_date TEXT NOT NULL,
	batch TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) CreateProject(name string, contractValue int64) (int64, error) {
	if contractValue < 0 {
		return 0, fmt.Errorf("contract value must be >= 0")
	}

	res, err := s.db.Exec(`INSERT INTO projects (name, contract_value, active) VALUES (?, ?, 1);`, name, contractValue)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted project id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) GetProject(id int64) (finance.Project, error) {
	var project finance.Project
	var active int
	err := s.db.QueryRow(
		`SELECT id, name, contract_value, active FROM projects WHERE id = ?;`, id,
	).Scan(&project.ID, &project.Name, &project.ContractValue, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return finance.Project{}, ErrProjectNotFound
		}
		return finance.Project{}, fmt.Errorf("query project %d: %w", id, err)
	}
	project.Active = active != 0
	return project, nil
}

func (s *SQLiteStore) ListProjects(includeInactive bool) ([]finance.Project, error) {
	query := `SELECT id, name, contract_value, active FROM projects ORDER BY id;`
	if !includeInactive {
		query = `SELECT id, name, contract_value, active FROM projects WHERE active = 1 ORDER BY id;`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]finance.Project, 0, 8)
	for rows.Next() {
		var project finance.Project
		var active int
		if err := rows.Scan(&project.ID, &project.Name, &project.ContractValue, &active); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		project.Active = active != 0
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// DeactivateProject soft-deletes a project; its ledger history stays
// readable.
func (s *SQLiteStore) DeactivateProject(id int64) error {
	res, err := s.db.Exec(`UPDATE projects SET active = 0 WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("deactivate project %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (s *SQLiteStore) ListEmployees(projectID int64) ([]finance.Employee, error) {
	rows, err := s.db.Query(
		`SELECT id, project_id, code, name, daily_wage FROM employees WHERE project_id = ? ORDER BY code;`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]finance.Employee, 0, 16)
	for rows.Next() {
		var employee finance.Employee
		if err := rows.Scan(&employee.ID, &employee.ProjectID, &employee.Code, &employee.Name, &employee.DailyWage); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

func (s *SQLiteStore) GetEmployeeByCode(projectID int64, code string) (finance.Employee, error) {
	var employee finance.Employee
	err := s.db.QueryRow(
		`SELECT id, project_id, code, name, daily_wage FROM employees WHERE project_id = ? AND code = ?;`,
		projectID, code,
	).Scan(&employee.ID, &employee.ProjectID, &employee.Code, &employee.Name, &employee.DailyWage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return finance.Employee{}, ErrEmployeeNotFound
		}
		return finance.Employee{}, fmt.Errorf("query employee %s: %w", code, err)
	}
	return employee, nil
}

// EmployeeFacts is one upload block resolved against a project: the
// employee metadata discovered in the file plus that employee's facts.
type EmployeeFacts struct {
	Employee finance.Employee
	Facts    []finance.AttendanceFact
}

type ImportStats struct {
	EmployeesCreated int
	EmployeesReused  int
	EmployeesSkipped int
	FactsInserted    int
	DuplicateFacts   int
	Warnings         []string
}

// ImportAttendance persists one normalized upload in a single transaction.
// Employee identity is reconciled by (project, code): an existing record
// is reused (wage and name refreshed when the upload provides them), a new
// one requires both name and wage. Facts dedup by (employee, work_date)
// via INSERT OR IGNORE; the skipped count is reported so callers can
// detect an accidental re-import.
func (s *SQLiteStore) ImportAttendance(projectID int64, batch string, groups []EmployeeFacts) (*ImportStats, error) {
	if _, err := s.GetProject(projectID); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	stats := &ImportStats{}
	insertFact, err := tx.Prepare(`
INSERT OR IGNORE INTO attendance_facts (
	employee_id,
	work_date,
	check_in,
	check_out,
	late_minutes,
	worked_minutes,
	overtime_minutes,
	inverted,
	batch
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("prepare fact insert: %w", err)
	}
	defer insertFact.Close()

	for _, group := range groups {
		employeeID, err := s.resolveEmployee(tx, projectID, group.Employee, stats)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if employeeID == 0 {
			continue
		}

		for _, fact := range group.Facts {
			res, err := insertFact.Exec(
				employeeID,
				fact.Date,
				nullablePunch(fact.CheckIn),
				nullablePunch(fact.CheckOut),
				fact.LateMinutes,
				fact.WorkedMinutes,
				fact.OvertimeMinutes,
				boolToInt(fact.Inverted),
				batch,
			)
			if err != nil {
				_ = tx.Rollback()
				return nil, fmt.Errorf("insert attendance fact: %w", err)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				_ = tx.Rollback()
				return nil, fmt.Errorf("read inserted row count: %w", err)
			}
			if affected > 0 {
				stats.FactsInserted++
			} else {
				stats.DuplicateFacts++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return stats, nil
}

func (s *SQLiteStore) resolveEmployee(tx *sql.Tx, projectID int64, employee finance.Employee, stats *ImportStats) (int64, error) {
	var existingID int64
	var existingName string
	var existingWage int64
	err := tx.QueryRow(
		`SELECT id, name, daily_wage FROM employees WHERE project_id = ? AND code = ?;`,
		projectID, employee.Code,
	).Scan(&existingID, &existingName, &existingWage)

	switch {
	case err == nil:
		stats.EmployeesReused++
		name := existingName
		if employee.Name != "" {
			name = employee.Name
		}
		wage := existingWage
		if employee.DailyWage > 0 {
			wage = employee.DailyWage
		}
		if name != existingName || wage != existingWage {
			if _, err := tx.Exec(`UPDATE employees SET name = ?, daily_wage = ? WHERE id = ?;`, name, wage, existingID); err != nil {
				return 0, fmt.Errorf("update employee %s: %w", employee.Code, err)
			}
		}
		return existingID, nil

	case errors.Is(err, sql.ErrNoRows):
		if employee.Name == "" || employee.DailyWage <= 0 {
			stats.EmployeesSkipped++
			stats.Warnings = append(stats.Warnings, fmt.Sprintf(
				"skipped employee %q: unknown to project and upload carries no name or daily salary", employee.Code))
			return 0, nil
		}
		res, err := tx.Exec(
			`INSERT INTO employees (project_id, code, name, daily_wage) VALUES (?, ?, ?, ?);`,
			projectID, employee.Code, employee.Name, employee.DailyWage,
		)
		if err != nil {
			return 0, fmt.Errorf("insert employee %s: %w", employee.Code, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("read inserted employee id: %w", err)
		}
		stats.EmployeesCreated++
		return id, nil

	default:
		return 0, fmt.Errorf("query employee %s: %w", employee.Code, err)
	}
}

// FactFilter narrows ListFacts; zero values mean "no filter".
type FactFilter struct {
	EmployeeID int64
	Batch      string
}

func (s *SQLiteStore) ListFacts(projectID int64, filter FactFilter) ([]finance.AttendanceFact, error) {
	query := `
SELECT
	f.id,
	f.employee_id,
	f.work_date,
	f.check_in,
	f.check_out,
	f.late_minutes,
	f.worked_minutes,
	f.overtime_minutes,
	f.inverted,
	f.batch
FROM attendance_facts f
JOIN employees e ON e.id = f.employee_id
WHERE e.project_id = ?`
	args := []any{projectID}
	if filter.EmployeeID > 0 {
		query += ` AND f.employee_id = ?`
		args = append(args, filter.EmployeeID)
	}
	if filter.Batch != "" {
		query += ` AND f.batch = ?`
		args = append(args, filter.Batch)
	}
	query += ` ORDER BY f.work_date, e.code, f.id;`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance facts: %w", err)
	}
	defer rows.Close()

	facts := make([]finance.AttendanceFact, 0, 64)
	for rows.Next() {
		var fact finance.AttendanceFact
		var checkIn, checkOut sql.NullInt64
		var inverted int
		if err := rows.Scan(
			&fact.ID,
			&fact.EmployeeID,
			&fact.Date,
			&checkIn,
			&checkOut,
			&fact.LateMinutes,
			&fact.WorkedMinutes,
			&fact.OvertimeMinutes,
			&inverted,
			&fact.Batch,
		); err != nil {
			return nil, fmt.Errorf("scan attendance fact: %w", err)
		}
		fact.CheckIn = punchFromNullable(checkIn)
		fact.CheckOut = punchFromNullable(checkOut)
		fact.Inverted = inverted != 0
		facts = append(facts, fact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance facts: %w", err)
	}

	return facts, nil
}

func (s *SQLiteStore) InsertIncome(entry finance.IncomeEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO incomes (project_id, phase, percent, amount, received_date) VALUES (?, ?, ?, ?, ?);`,
		entry.ProjectID, entry.Phase, entry.Percent, entry.Amount, entry.ReceivedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert income: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted income id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) ListIncomes(projectID int64) ([]finance.IncomeEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, project_id, phase, percent, amount, received_date FROM incomes WHERE project_id = ? ORDER BY received_date, id;`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query incomes: %w", err)
	}
	defer rows.Close()

	entries := make([]finance.IncomeEntry, 0, 16)
	for rows.Next() {
		var entry finance.IncomeEntry
		if err := rows.Scan(&entry.ID, &entry.ProjectID, &entry.Phase, &entry.Percent, &entry.Amount, &entry.ReceivedDate); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incomes: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStore) InsertExpense(entry finance.ExpenseEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO expenses (project_id, category, description, amount, expense_date, batch) VALUES (?, ?, ?, ?, ?, ?);`,
		entry.ProjectID, string(entry.Category), entry.Description, entry.Amount, entry.Date, entry.Batch,
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted expense id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) ListExpenses(projectID int64) ([]finance.ExpenseEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, project_id, category, description, amount, expense_date, batch FROM expenses WHERE project_id = ? ORDER BY expense_date, id;`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	entries := make([]finance.ExpenseEntry, 0, 16)
	for rows.Next() {
		var entry finance.ExpenseEntry
		var category string
		if err := rows.Scan(&entry.ID, &entry.ProjectID, &category, &entry.Description, &entry.Amount, &entry.Date, &entry.Batch); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		entry.Category = finance.Category(category)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return entries, nil
}

// InsertPayrollExpenses writes all Labor postings of one payroll run
// atomically. A batch key that already produced Labor postings for the
// project is rejected with finance.ErrBatchAlreadyPosted.
func (s *SQLiteStore) InsertPayrollExpenses(projectID int64, batch string, entries []finance.ExpenseEntry) (int, error) {
	if batch == "" {
		return 0, fmt.Errorf("payroll batch key must not be empty")
	}
	if _, err := s.GetProject(projectID); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	var existing int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM expenses WHERE project_id = ? AND category = ? AND batch = ?;`,
		projectID, string(finance.CategoryLabor), batch,
	).Scan(&existing)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("check payroll batch: %w", err)
	}
	if existing > 0 {
		_ = tx.Rollback()
		return 0, finance.ErrBatchAlreadyPosted
	}

	stmt, err := tx.Prepare(
		`INSERT INTO expenses (project_id, category, description, amount, expense_date, batch) VALUES (?, ?, ?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare expense insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		if _, err := stmt.Exec(projectID, string(entry.Category), entry.Description, entry.Amount, entry.Date, batch); err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert payroll expense: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ProjectTotals sums the ledger for the dashboard: income received and
// expenses spent, with the per-category breakdown.
func (s *SQLiteStore) ProjectTotals(projectID int64) (received int64, spent int64, byCategory map[finance.Category]int64, err error) {
	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE project_id = ?;`, projectID,
	).Scan(&received)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("sum incomes: %w", err)
	}

	byCategory = make(map[finance.Category]int64, 3)
	rows, err := s.db.Query(
		`SELECT category, COALESCE(SUM(amount), 0) FROM expenses WHERE project_id = ? GROUP BY category;`, projectID,
	)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("sum expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var total int64
		if err := rows.Scan(&category, &total); err != nil {
			return 0, 0, nil, fmt.Errorf("scan expense total: %w", err)
		}
		byCategory[finance.Category(category)] = total
		spent += total
	}
	if err := rows.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("iterate expense totals: %w", err)
	}

	return received, spent, byCategory, nil
}

func nullablePunch(punch finance.Punch) any {
	if !punch.Valid {
		return nil
	}
	return punch.Minutes
}

func punchFromNullable(value sql.NullInt64) finance.Punch {
	if !value.Valid {
		return finance.Punch{}
	}
	return finance.PunchAt(int(value.Int64))
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
