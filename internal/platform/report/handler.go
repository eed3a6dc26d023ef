package report

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cardiorec/cardiorec/internal/domain/records"
)

const templateName = "report.html"

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Handler renders patient report PDFs from submitted record data.
type Handler struct {
	src      *Source
	renderer Renderer
	now      func() time.Time
}

func NewHandler(src *Source, renderer Renderer) *Handler {
	return &Handler{src: src, renderer: renderer, now: time.Now}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/generate-pdf", h.GeneratePDF)
}

// GeneratePDF fills the report template with the record in the request
// body and streams the printed PDF back as an attachment. Failures
// anywhere in the pipeline come back as a plain-text 500 so the front
// end can show the reason.
func (h *Handler) GeneratePDF(c echo.Context) error {
	var rec records.Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	tpl, err := h.src.Load(templateName)
	if err != nil {
		return c.String(http.StatusInternalServerError, "PDF generation failed: "+err.Error())
	}

	html := tpl.Bind(rec.TemplateData(h.now()))
	pdf, err := h.renderer.RenderPDF(c.Request().Context(), html)
	if err != nil {
		return c.String(http.StatusInternalServerError, "PDF generation failed: "+err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, downloadName(&rec)))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// downloadName builds "<patient_id>-<name>" with everything outside
// [a-zA-Z0-9] in the name collapsed to underscores.
func downloadName(rec *records.Record) string {
	id := rec.PatientID
	if id == "" {
		id = "Unknown"
	}
	return id + "-" + unsafeNameChars.ReplaceAllString(rec.Name, "_")
}
