package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoolms/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	r.Register(group)

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	// Test the route was registered
	req := httptest.NewRequest("GET", "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("library", "/library")
		assert.Equal(t, "library", g.Name())
		assert.Equal(t, "/library", g.Prefix())
	})

	t.Run("registers GET route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "items")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers POST route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.POST("/items", func(c *gin.Context) {
			c.String(http.StatusCreated, "created")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("POST", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("registers PUT route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.PUT("/items/:id", func(c *gin.Context) {
			c.String(http.StatusOK, "updated")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("PUT", "/api/v1/test/items/123", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers PATCH route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.PATCH("/items/:id", func(c *gin.Context) {
			c.String(http.StatusOK, "patched")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("PATCH", "/api/v1/test/items/123", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers DELETE route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.DELETE("/items/:id", func(c *gin.Context) {
			c.String(http.StatusNoContent, "")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("DELETE", "/api/v1/test/items/123", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")

		// Add middleware that sets a header
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})

		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("payroll", "/payroll")

		templates := g.Group("templates", "/templates")
		templates.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "templates list")
		})

		items := g.Group("items", "/items")
		items.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "items list")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req1 := httptest.NewRequest("GET", "/api/v1/payroll/templates", nil)
		w1 := httptest.NewRecorder()
		engine.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, "templates list", w1.Body.String())

		req2 := httptest.NewRequest("GET", "/api/v1/payroll/items", nil)
		w2 := httptest.NewRecorder()
		engine.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, "items list", w2.Body.String())
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	library := NewDomainGroup("library", "/library-cards")
	library.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "cards")
	})

	frontoffice := NewDomainGroup("frontoffice", "/postal-records")
	frontoffice.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "postal")
	})

	r.Register(library).Register(frontoffice)
	r.Setup()

	req1 := httptest.NewRequest("GET", "/api/v1/library-cards", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "cards", w1.Body.String())

	req2 := httptest.NewRequest("GET", "/api/v1/postal-records", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "postal", w2.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PUT("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") })

	r.Register(g).Setup()

	// All routes should be registered
	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/test/a"},
		{"POST", "/api/v1/test/b"},
		{"PUT", "/api/v1/test/c"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}

// fakeRecords answers every endpoint with its own name
type fakeRecords struct{}

func reply(name string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, name+":"+c.Param("id")) }
}

func (fakeRecords) Create(c *gin.Context)      { reply("create")(c) }
func (fakeRecords) Get(c *gin.Context)         { reply("get")(c) }
func (fakeRecords) List(c *gin.Context)        { reply("list")(c) }
func (fakeRecords) Update(c *gin.Context)      { reply("update")(c) }
func (fakeRecords) Delete(c *gin.Context)      { reply("delete")(c) }
func (fakeRecords) Restore(c *gin.Context)     { reply("restore")(c) }
func (fakeRecords) ForceDelete(c *gin.Context) { reply("force")(c) }

func TestDomainGroup_SoftDeletes(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Register(NewDomainGroup("certificate", "/student-certificates").SoftDeletes(fakeRecords{})).Setup()

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/v1/student-certificates", "list:"},
		{http.MethodPost, "/api/v1/student-certificates", "create:"},
		{http.MethodGet, "/api/v1/student-certificates/4", "get:4"},
		{http.MethodPut, "/api/v1/student-certificates/4", "update:4"},
		{http.MethodPatch, "/api/v1/student-certificates/4", "update:4"},
		{http.MethodDelete, "/api/v1/student-certificates/4", "delete:4"},
		{http.MethodPost, "/api/v1/student-certificates/4/restore", "restore:4"},
		{http.MethodDelete, "/api/v1/student-certificates/4/force", "force:4"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.want, w.Body.String(), "%s %s", tt.method, tt.path)
	}
}

func TestDomainGroup_RecordsHasNoRestore(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Register(NewDomainGroup("setting", "/keywords").Records(fakeRecords{})).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/keywords/1/restore", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMount(t *testing.T) {
	engine := gin.New()
	engine.SetHTMLTemplate(handler.Templates())
	Mount(engine, Handlers{
		System:             handler.NewSystemHandler("school-backend", "test"),
		Welcome:            handler.NewWelcomeHandler("school-backend", "test", false),
		Keyword:            handler.NewKeywordHandler(nil),
		BackgroundImage:    handler.NewBackgroundImageHandler(nil),
		LibraryCard:        handler.NewLibraryCardHandler(nil),
		PayrollTemplate:    handler.NewPayrollTemplateHandler(nil),
		SalaryItem:         handler.NewSalaryItemHandler(nil),
		PayslipItem:        handler.NewPayslipItemHandler(nil),
		PostalRecord:       handler.NewPostalRecordHandler(nil),
		StudentCertificate: handler.NewStudentCertificateHandler(nil),
	})

	routes := map[string]bool{}
	for _, route := range engine.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /health",
		"GET /api/v1/system/info",
		"GET /api/v1/system/ping",
		"GET /api/v1/keywords/:id",
		"DELETE /api/v1/background-images/:id/force",
		"GET /api/v1/library-cards/by-card-no",
		"GET /api/v1/payroll-templates/:id/payroll-items",
		"GET /api/v1/payroll-templates/:id/salaries",
		"GET /api/v1/payroll-templates/:id/user",
		"POST /api/v1/payroll-templates/:id/restore",
		"GET /api/v1/salary-items/:id/salary",
		"GET /api/v1/payslip-items/:id/payroll",
		"PUT /api/v1/postal-records/:id/attachment",
		"POST /api/v1/student-certificates/:id/restore",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
	assert.False(t, routes["POST /api/v1/keywords/:id/restore"])

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "school-backend")
}
