// Package web serves a localhost-only UI for the checkup database; the
// session mechanism of the hosted deployment is out of scope here, so the
// API trusts its caller the same way the CLI trusts its terminal.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"minimcu/config"
	"minimcu/importer"
	"minimcu/output"
	"minimcu/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"fmtFloat": func(value *float64) string {
			if value == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *value)
		},
		"fmtInt": func(value *int) string {
			if value == nil {
				return ""
			}
			return strconv.Itoa(*value)
		},
	}).ParseFS(templateFS, "templates/*.html"),
)

type Server struct {
	store *storage.SQLiteStore
	cfg   config.Config
	mux   *http.ServeMux
	now   func() time.Time
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) http.Handler {
	server := &Server{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleDashboardPage)
	mux.HandleFunc("GET /employee/{uid}", server.handleEmployeePage)
	mux.HandleFunc("GET /api/dashboard", server.handleAPIDashboard)
	mux.HandleFunc("GET /api/employee/{uid}", server.handleAPIEmployee)
	mux.HandleFunc("POST /api/import/master", server.handleAPIImportMaster)
	mux.HandleFunc("POST /api/import/checkup", server.handleAPIImportCheckup)
	mux.HandleFunc("GET /api/export", server.handleAPIExport)
	mux.HandleFunc("GET /api/template", server.handleAPITemplate)
	mux.HandleFunc("POST /api/login", server.handleAPILogin)
	mux.HandleFunc("GET /api/users", server.handleAPIUserList)
	mux.HandleFunc("POST /api/users", server.handleAPIUserCreate)
	mux.HandleFunc("DELETE /api/users/{username}", server.handleAPIUserDelete)
	mux.HandleFunc("GET /api/locations", server.handleAPILocationList)
	mux.HandleFunc("POST /api/locations", server.handleAPILocationAdd)
	mux.HandleFunc("DELETE /api/checkup/{id}", server.handleAPICheckupDelete)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) loadDashboard(location, status string) ([]DashboardRow, error) {
	employees, err := s.store.ListEmployees()
	if err != nil {
		return nil, err
	}
	latest, err := s.store.LatestCheckups()
	if err != nil {
		return nil, err
	}
	return FilterDashboard(BuildDashboard(employees, latest), location, status), nil
}

type dashboardPageView struct {
	Title     string
	Location  string
	Status    string
	Rows      []DashboardRow
	Locations []string
}

func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	status := r.URL.Query().Get("status")

	rows, err := s.loadDashboard(location, status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	locations, err := s.store.ListLocations()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := dashboardPageView{
		Title:     "minimcu - dashboard",
		Location:  location,
		Status:    status,
		Rows:      rows,
		Locations: locations,
	}
	if err := renderTemplate(w, "dashboard.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type employeePageView struct {
	Title    string
	Employee EmployeeView
}

func (s *Server) handleEmployeePage(w http.ResponseWriter, r *http.Request) {
	view, status, err := s.loadEmployeeView(r.PathValue("uid"))
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	page := employeePageView{Title: "minimcu - " + view.Name, Employee: view}
	if err := renderTemplate(w, "employee.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := s.loadDashboard(r.URL.Query().Get("location"), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAPIEmployee(w http.ResponseWriter, r *http.Request) {
	view, status, err := s.loadEmployeeView(r.PathValue("uid"))
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) loadEmployeeView(uid string) (EmployeeView, int, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return EmployeeView{}, http.StatusBadRequest, fmt.Errorf("employee uid is required")
	}

	employee, found, err := s.store.GetEmployeeByUID(uid)
	if err != nil {
		return EmployeeView{}, http.StatusInternalServerError, err
	}
	if !found {
		return EmployeeView{}, http.StatusNotFound, fmt.Errorf("employee %s not found", uid)
	}

	history, err := s.store.CheckupsByUID(uid)
	if err != nil {
		return EmployeeView{}, http.StatusInternalServerError, err
	}
	return BuildEmployeeView(employee, history), http.StatusOK, nil
}

type masterImportResponse struct {
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	BatchID  string `json:"batch_id"`
}

func (s *Server) handleAPIImportMaster(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	result, err := importer.RunMasterImport([]string{path}, s.store)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, masterImportResponse{
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
		BatchID:  result.BatchID,
	})
}

func (s *Server) handleAPIImportCheckup(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer cleanup()

	result, err := importer.RunCheckupImport([]string{path}, s.store, s.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// saveUpload stores the uploaded workbook under the configured upload dir
// so the file history survives the request, then hands back its path. The
// cleanup only closes handles; uploads are kept on disk.
func (s *Server) saveUpload(r *http.Request) (string, func(), error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return "", nil, fmt.Errorf("parse upload form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing file field: %w", err)
	}

	uploadDir := s.cfg.Import.UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		file.Close()
		return "", nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s", s.now().UnixNano(), filepath.Base(header.Filename))
	path := filepath.Join(uploadDir, name)

	out, err := os.Create(path)
	if err != nil {
		file.Close()
		return "", nil, fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		file.Close()
		out.Close()
		return "", nil, fmt.Errorf("store upload: %w", err)
	}

	cleanup := func() {
		file.Close()
		out.Close()
	}
	if err := out.Sync(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("flush upload: %w", err)
	}
	return path, cleanup, nil
}

func (s *Server) handleAPIExport(w http.ResponseWriter, r *http.Request) {
	uid := strings.TrimSpace(r.URL.Query().Get("uid"))

	var (
		details []storage.CheckupDetail
		err     error
	)
	if uid != "" {
		details, err = s.store.CheckupsByUID(uid)
	} else {
		details, err = s.store.ListCheckups()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="medical_checkup_data.xlsx"`)
	if err := output.WriteExcelTo(w, details); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPITemplate(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.ListEmployees()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="checkup_template.xlsx"`)
	if err := output.WriteTemplateTo(w, employees, r.URL.Query().Get("location")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s *Server) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Username: user.Username, Role: user.Role})
}

type userView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s *Server) handleAPIUserList(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, userView{Username: user.Username, Role: user.Role})
	}
	writeJSON(w, http.StatusOK, views)
}

type userCreateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) handleAPIUserCreate(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.store.CreateUser(req.Username, req.Password, req.Role); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, userView{Username: req.Username, Role: req.Role})
}

func (s *Server) handleAPIUserDelete(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PathValue("username"))
	if err := s.store.DeleteUser(username); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPILocationList(w http.ResponseWriter, r *http.Request) {
	locations, err := s.store.ListLocations()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

type locationAddRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAPILocationAdd(w http.ResponseWriter, r *http.Request) {
	var req locationAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := s.store.AddLocation(req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAPICheckupDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid checkup id", http.StatusBadRequest)
		return
	}

	deleted, err := s.store.DeleteCheckup(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, storage.ErrCheckupNotFound.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func renderTemplate(w http.ResponseWriter, name string, view any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return pageTemplates.ExecuteTemplate(w, name, view)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
