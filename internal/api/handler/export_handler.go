package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/internal/service"
	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler registrations export
type ExportHandler struct {
	exportSvc    service.ExportService
	exposeDetail bool
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService, exposeDetail bool) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, exposeDetail: exposeDetail}
}

// ExportRegistrations downloads every registration as an xlsx workbook
// GET /api/registrations/export
func (h *ExportHandler) ExportRegistrations(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRegistrations(c.Request.Context())
	if err != nil {
		response.FromError(c, err, h.exposeDetail)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
