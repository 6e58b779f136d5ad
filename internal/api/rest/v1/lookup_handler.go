package v1

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/AstraLuma/catfind/internal/domain/entries"
	"github.com/AstraLuma/catfind/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

//go:embed templates/multientry.html
var templateFS embed.FS

var multiEntryTemplate = template.Must(template.ParseFS(templateFS, "templates/multientry.html"))

// LookupHandler defines the interface for handling lookup requests
type LookupHandler interface {
	Lookup(ctx *gin.Context)
}

// LookupHandler struct holds the services
type lookupHandler struct {
	lookupService entries.LookupService
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(lookupService entries.LookupService) LookupHandler {
	return &lookupHandler{
		lookupService: lookupService,
	}
}

// Lookup handles the GET request to resolve an object name to documentation.
// A single match redirects with 303 See Other. Several matches produce a
// 300 Multiple Choices listing negotiated between plain text, HTML and JSON.
// @Summary Resolve an object name to its documentation URL
// @Produce plain
// @Produce html
// @Produce json
// @Param domain path string true "Sphinx domain, or * for any"
// @Param name path string true "Object name"
// @Success 303
// @Success 300 {array} EntryResponse
// @Failure 404 {string} string
// @Router /{domain}/{name} [get]
func (handler *lookupHandler) Lookup(ctx *gin.Context) {
	domain := ctx.Param("domain")
	name := strings.TrimPrefix(ctx.Param("name"), "/")
	if name == "" {
		metrics.RecordLookup("none")
		ctx.String(http.StatusNotFound, "Nothing found")
		return
	}

	entryMetas, err := handler.lookupService.Lookup(ctx, domain, name)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error looking up %s: %v", name, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	switch len(entryMetas) {
	case 0:
		metrics.RecordLookup("none")
		ctx.String(http.StatusNotFound, "Nothing found")
	case 1:
		metrics.RecordLookup("single")
		ctx.Redirect(http.StatusSeeOther, entryMetas[0].URL)
	default:
		metrics.RecordLookup("multiple")
		handler.listChoices(ctx, entryMetas)
	}
}

// listChoices renders a 300 Multiple Choices response in the best format
// the client accepts. Plain text wins ties, matching curl-style usage.
func (handler *lookupHandler) listChoices(ctx *gin.Context, entryMetas []*entries.EntryMeta) {
	switch ctx.NegotiateFormat(gin.MIMEPlain, gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEPlain:
		var lines []string
		for _, entry := range entryMetas {
			lines = append(lines, fmt.Sprintf("%s: %s: %s", entry.ProjectName, entry.Kind(), entry.URL))
		}
		ctx.String(http.StatusMultipleChoices, strings.Join(lines, "\n"))
	case gin.MIMEHTML:
		var buf bytes.Buffer
		if err := multiEntryTemplate.Execute(&buf, gin.H{"Entries": entryMetas}); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("error rendering choices: %v", err.Error())
			ctx.JSON(http.StatusInternalServerError, errorResponse)
			return
		}
		ctx.Data(http.StatusMultipleChoices, "text/html; charset=utf-8", buf.Bytes())
	case gin.MIMEJSON:
		listResponse := []EntryResponse{}
		for _, entry := range entryMetas {
			listResponse = append(listResponse, NewEntryResponse(entry))
		}
		ctx.JSON(http.StatusMultipleChoices, listResponse)
	default:
		var errorResponse ErrorResponse
		errorResponse.Message = "no acceptable listing format"
		ctx.JSON(http.StatusNotAcceptable, errorResponse)
	}
}
