package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// WelcomeTemplateName is the template rendered at GET /
const WelcomeTemplateName = "welcome"

// Templates parses the embedded HTML templates for gin's HTML renderer
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// WelcomeHandler serves the landing page
type WelcomeHandler struct {
	name        string
	version     string
	docsEnabled bool
}

// NewWelcomeHandler creates a new WelcomeHandler
func NewWelcomeHandler(name, version string, docsEnabled bool) *WelcomeHandler {
	return &WelcomeHandler{name: name, version: version, docsEnabled: docsEnabled}
}

// Index renders the landing page. The engine must have Templates loaded.
func (h *WelcomeHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, WelcomeTemplateName, gin.H{
		"Name":        h.name,
		"Version":     h.version,
		"DocsEnabled": h.docsEnabled,
	})
}
