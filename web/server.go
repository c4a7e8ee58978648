// Package web serves a localhost-only single-user UI. Login uses the one
// fixed credential pair from configuration; this gate keeps casual eyes
// out but is not a hardened auth system.
package web

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"sitepay/config"
	"sitepay/finance"
	"sitepay/importer"
	"sitepay/internal/timeutil"
	"sitepay/ledger"
	"sitepay/payroll"
	"sitepay/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store    *storage.SQLiteStore
	cfg      config.Config
	policy   payroll.Policy
	sessions *SessionManager
	mux      *http.ServeMux
}

func NewServer(store *storage.SQLiteStore, cfg config.Config, policy payroll.Policy) http.Handler {
	server := &Server{
		store:    store,
		cfg:      cfg,
		policy:   policy,
		sessions: NewSessionManager(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /login", server.handleLoginPage)
	mux.HandleFunc("POST /login", server.handleLogin)
	mux.HandleFunc("POST /logout", server.handleLogout)

	mux.HandleFunc("GET /{$}", server.authed(server.handleRoot))
	mux.HandleFunc("GET /projects", server.authed(server.handleProjects))
	mux.HandleFunc("POST /projects", server.authed(server.handleProjectCreate))
	mux.HandleFunc("GET /projects/{id}", server.authed(server.handleDashboard))
	mux.HandleFunc("POST /projects/{id}/close", server.authed(server.handleProjectClose))
	mux.HandleFunc("POST /projects/{id}/income", server.authed(server.handleIncomeCreate))
	mux.HandleFunc("POST /projects/{id}/expense", server.authed(server.handleExpenseCreate))
	mux.HandleFunc("GET /projects/{id}/attendance", server.authed(server.handleAttendance))
	mux.HandleFunc("POST /projects/{id}/attendance/upload", server.authed(server.handleAttendanceUpload))
	mux.HandleFunc("POST /projects/{id}/payroll", server.authed(server.handlePayrollRun))

	mux.HandleFunc("GET /api/projects/{id}/summary", server.authed(server.handleAPISummary))
	mux.HandleFunc("POST /api/projects/{id}/payroll/preview", server.authed(server.handleAPIPayrollPreview))

	server.mux = mux
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, session Session)

func (s *Server) authed(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromRequest(s.sessions, r)
		if !ok {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.Error(w, "not authenticated", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, session)
	}
}

type loginPageView struct {
	Title string
	Error string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionFromRequest(s.sessions, r); ok {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	if err := renderTemplate(w, "login.html", loginPageView{Title: "sitepay - login"}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username != s.cfg.Web.Username || password != s.cfg.Web.Password {
		w.WriteHeader(http.StatusUnauthorized)
		_ = renderTemplate(w, "login.html", loginPageView{
			Title: "sitepay - login",
			Error: "invalid username or password",
		})
		return
	}

	session, err := s.sessions.Create(username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, session)
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Destroy(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request, _ Session) {
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

type projectsPageView struct {
	Title    string
	Projects []finance.Project
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request, _ Session) {
	projects, err := s.store.ListProjects(true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	view := projectsPageView{Title: "sitepay - projects", Projects: projects}
	if err := renderTemplate(w, "projects.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request, _ Session) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "project name is required", http.StatusBadRequest)
		return
	}
	contract, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("contract_value")), 10, 64)
	if err != nil || contract < 0 {
		http.Error(w, "contract value must be a non-negative whole number", http.StatusBadRequest)
		return
	}

	id, err := s.store.CreateProject(name, contract)
	if err != nil {
		http.Error(w, fmt.Sprintf("create project: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/projects/%d", id), http.StatusSeeOther)
}

func (s *Server) handleProjectClose(w http.ResponseWriter, r *http.Request, _ Session) {
	projectID, err := parsePositiveInt64(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	if err := s.store.DeactivateProject(projectID); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

type dashboardPageView struct {
	Title    string
	Summary  ledger.ProjectSummary
	Incomes  []finance.IncomeEntry
	Expenses []finance.ExpenseEntry
	Today    string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	received, spent, byCategory, err := s.store.ProjectTotals(project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	incomes, err := s.store.ListIncomes(project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	expenses, err := s.store.ListExpenses(project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := dashboardPageView{
		Title:    "sitepay - " + project.Name,
		Summary:  ledger.BuildProjectSummary(project, received, spent, byCategory),
		Incomes:  incomes,
		Expenses: expenses,
		Today:    timeutil.Today(),
	}
	if err := renderTemplate(w, "dashboard.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleIncomeCreate(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("amount")), 10, 64)
	if err != nil || amount < 0 {
		http.Error(w, "amount must be a non-negative whole number", http.StatusBadRequest)
		return
	}
	percent, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("percent")), 64)
	if err != nil || percent < 0 || percent > 100 {
		http.Error(w, "percent must be between 0 and 100", http.StatusBadRequest)
		return
	}
	date, ok2 := timeutil.ParseDate(r.FormValue("received_date"))
	if !ok2 {
		date = timeutil.Today()
	}

	_, err = s.store.InsertIncome(finance.IncomeEntry{
		ProjectID:    project.ID,
		Phase:        strings.TrimSpace(r.FormValue("phase")),
		Percent:      percent,
		Amount:       amount,
		ReceivedDate: date,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("insert income: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/projects/%d", project.ID), http.StatusSeeOther)
}

func (s *Server) handleExpenseCreate(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	category, err := finance.ParseCategory(strings.TrimSpace(r.FormValue("category")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("amount")), 10, 64)
	if err != nil || amount < 0 {
		http.Error(w, "amount must be a non-negative whole number", http.StatusBadRequest)
		return
	}
	date, ok2 := timeutil.ParseDate(r.FormValue("expense_date"))
	if !ok2 {
		date = timeutil.Today()
	}

	_, err = s.store.InsertExpense(finance.ExpenseEntry{
		ProjectID:   project.ID,
		Category:    category,
		Description: strings.TrimSpace(r.FormValue("description")),
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("insert expense: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/projects/%d", project.ID), http.StatusSeeOther)
}

type attendancePageView struct {
	Title     string
	Project   finance.Project
	Rows      []ledger.FactRow
	Employees []finance.Employee
	Layouts   []string
	Today     string
}

func (s *Server) handleAttendance(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	employees, err := s.store.ListEmployees(project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	facts, err := s.store.ListFacts(project.ID, storage.FactFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := attendancePageView{
		Title:     "sitepay - attendance",
		Project:   project,
		Rows:      ledger.BuildFactRows(employees, facts),
		Employees: employees,
		Layouts:   importer.SupportedLayoutNames(),
		Today:     timeutil.Today(),
	}
	if err := renderTemplate(w, "attendance.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type uploadResponse struct {
	FilesProcessed   int      `json:"filesProcessed"`
	RowsRead         int      `json:"rowsRead"`
	RowsSkipped      int      `json:"rowsSkipped"`
	BlocksParsed     int      `json:"blocksParsed"`
	BlocksSkipped    int      `json:"blocksSkipped"`
	EmployeesCreated int      `json:"employeesCreated"`
	EmployeesReused  int      `json:"employeesReused"`
	FactsInserted    int      `json:"factsInserted"`
	DuplicateFacts   int      `json:"duplicateFacts"`
	Warnings         []string `json:"warnings,omitempty"`
}

func (s *Server) handleAttendanceUpload(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	batch := strings.TrimSpace(r.FormValue("batch"))
	if batch == "" {
		http.Error(w, "batch key is required (e.g. 2026-08)", http.StatusBadRequest)
		return
	}
	layoutName := strings.TrimSpace(r.FormValue("layout"))
	layout, err := importer.LayoutByName(layoutName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	upload, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "upload file is required", http.StatusBadRequest)
		return
	}
	defer upload.Close()

	tempFile, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		http.Error(w, fmt.Sprintf("create temp upload: %v", err), http.StatusInternalServerError)
		return
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := io.Copy(tempFile, upload); err != nil {
		_ = tempFile.Close()
		http.Error(w, fmt.Sprintf("store upload: %v", err), http.StatusInternalServerError)
		return
	}
	if err := tempFile.Close(); err != nil {
		http.Error(w, fmt.Sprintf("store upload: %v", err), http.StatusInternalServerError)
		return
	}

	result, err := importer.Run([]string{tempPath}, "", layout)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse upload: %v", err), http.StatusBadRequest)
		return
	}

	stats, err := s.ingest(project.ID, batch, result)
	if err != nil {
		http.Error(w, fmt.Sprintf("ingest upload: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		FilesProcessed:   result.FilesProcessed,
		RowsRead:         result.RowsRead,
		RowsSkipped:      result.RowsSkipped,
		BlocksParsed:     result.BlocksParsed,
		BlocksSkipped:    result.BlocksSkipped,
		EmployeesCreated: stats.EmployeesCreated,
		EmployeesReused:  stats.EmployeesReused,
		FactsInserted:    stats.FactsInserted,
		DuplicateFacts:   stats.DuplicateFacts,
		Warnings:         append(result.Warnings, stats.Warnings...),
	})
}

func (s *Server) ingest(projectID int64, batch string, result *importer.Result) (*storage.ImportStats, error) {
	groups := make([]storage.EmployeeFacts, 0, len(result.Blocks))
	for _, block := range result.Blocks {
		groups = append(groups, storage.EmployeeFacts{
			Employee: finance.Employee{
				Code:      block.Code,
				Name:      block.Name,
				DailyWage: block.DailyWage,
			},
			Facts: s.policy.DeriveAll(block.Facts),
		})
	}
	return s.store.ImportAttendance(projectID, batch, groups)
}

type payrollResponse struct {
	Batch       string            `json:"batch"`
	Mode        string            `json:"mode"`
	Employees   int               `json:"employees"`
	TotalAmount int64             `json:"totalAmount"`
	Summaries   []payroll.Summary `json:"summaries"`
	Posted      bool              `json:"posted"`
}

func (s *Server) handlePayrollRun(w http.ResponseWriter, r *http.Request, _ Session) {
	s.runPayroll(w, r, false)
}

func (s *Server) handleAPIPayrollPreview(w http.ResponseWriter, r *http.Request, _ Session) {
	s.runPayroll(w, r, true)
}

func (s *Server) runPayroll(w http.ResponseWriter, r *http.Request, dryRun bool) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	batch := strings.TrimSpace(r.FormValue("batch"))
	if batch == "" {
		http.Error(w, "batch key is required (e.g. 2026-08)", http.StatusBadRequest)
		return
	}
	mode := strings.TrimSpace(r.FormValue("mode"))
	if mode == "" {
		mode = "per-employee"
	}
	date, ok2 := timeutil.ParseDate(r.FormValue("date"))
	if !ok2 {
		date = timeutil.Today()
	}

	summaries, err := s.buildSummaries(project.ID, batch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(summaries) == 0 {
		http.Error(w, fmt.Sprintf("no attendance facts for batch %q", batch), http.StatusBadRequest)
		return
	}

	response := payrollResponse{Batch: batch, Mode: mode, Summaries: summaries, Employees: len(summaries)}
	for _, summary := range summaries {
		response.TotalAmount += summary.NetWage
	}

	if dryRun {
		writeJSON(w, http.StatusOK, response)
		return
	}

	var postErr error
	switch mode {
	case "per-employee":
		_, postErr = payroll.PostPerEmployee(s.store, project.ID, batch, date, summaries)
	case "batch":
		_, postErr = payroll.PostBatch(s.store, project.ID, batch, date, summaries)
	default:
		http.Error(w, fmt.Sprintf("unsupported payroll mode %q (valid: per-employee, batch)", mode), http.StatusBadRequest)
		return
	}
	if postErr != nil {
		if errors.Is(postErr, finance.ErrBatchAlreadyPosted) {
			http.Error(w, postErr.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("post payroll: %v", postErr), http.StatusInternalServerError)
		return
	}

	response.Posted = true
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) buildSummaries(projectID int64, batch string) ([]payroll.Summary, error) {
	employees, err := s.store.ListEmployees(projectID)
	if err != nil {
		return nil, err
	}
	facts, err := s.store.ListFacts(projectID, storage.FactFilter{Batch: batch})
	if err != nil {
		return nil, err
	}
	return s.policy.BuildSummaries(employees, facts), nil
}

type summaryResponse struct {
	ProjectID          int64  `json:"projectId"`
	ProjectName        string `json:"projectName"`
	ContractValue      int64  `json:"contractValue"`
	Received           int64  `json:"received"`
	RemainingToInvoice int64  `json:"remainingToInvoice"`
	Spent              int64  `json:"spent"`
	SpentLabor         int64  `json:"spentLabor"`
	SpentMaterial      int64  `json:"spentMaterial"`
	SpentOther         int64  `json:"spentOther"`
	Margin             int64  `json:"margin"`
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request, _ Session) {
	project, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	received, spent, byCategory, err := s.store.ProjectTotals(project.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	summary := ledger.BuildProjectSummary(project, received, spent, byCategory)

	writeJSON(w, http.StatusOK, summaryResponse{
		ProjectID:          project.ID,
		ProjectName:        project.Name,
		ContractValue:      project.ContractValue,
		Received:           summary.Received,
		RemainingToInvoice: summary.RemainingToInvoice,
		Spent:              summary.Spent,
		SpentLabor:         summary.SpentLabor,
		SpentMaterial:      summary.SpentMaterial,
		SpentOther:         summary.SpentOther,
		Margin:             summary.Margin,
	})
}

func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (finance.Project, bool) {
	projectID, err := parsePositiveInt64(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return finance.Project{}, false
	}
	project, err := s.store.GetProject(projectID)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return finance.Project{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return finance.Project{}, false
	}
	return project, true
}
