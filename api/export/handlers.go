package export

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
)

// Content types of the downloadable formats
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/x-yaml"
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DownloadCodebook sends the project codebook as a file
// @Summary      Download codebook
// @Tags         export
// @Produce      json
// @Produce      application/x-yaml
// @Param        project query string true "Project slug"
// @Param        format query string false "json (default) or yaml"
// @Success      200 {file} file "Codebook attachment"
// @Failure      400 {object} types.ErrorResponse "Missing project or unknown format"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/download-codebook [get]
func DownloadCodebook(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, format, ok := exportParams(c, "json")
		if !ok {
			return
		}

		var (
			data        []byte
			err         error
			contentType string
		)
		switch format {
		case "json":
			data, err = deps.ExportService.CodebookJSON(c.Request.Context(), project)
			contentType = ContentTypeJSON
		case "yaml":
			data, err = deps.ExportService.CodebookYAML(c.Request.Context(), project)
			contentType = ContentTypeYAML
		default:
			types.SendError(c, apperrors.ValidationError("format", "must be json or yaml"))
			return
		}
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendAttachment(c, fmt.Sprintf("%s_codebook.%s", project, format), contentType, data)
	}
}

// DownloadResults sends every stored annotation of a project as a file
// @Summary      Download results
// @Tags         export
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        project query string true "Project slug"
// @Param        format query string false "csv (default) or xlsx"
// @Success      200 {file} file "Results attachment"
// @Failure      400 {object} types.ErrorResponse "Missing project or unknown format"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/download-results [get]
func DownloadResults(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, format, ok := exportParams(c, "csv")
		if !ok {
			return
		}

		var (
			data        []byte
			err         error
			contentType string
		)
		switch format {
		case "csv":
			data, err = deps.ExportService.ResultsCSV(c.Request.Context(), project)
			contentType = ContentTypeCSV
		case "xlsx":
			data, err = deps.ExportService.ResultsXLSX(c.Request.Context(), project)
			contentType = ContentTypeXLSX
		default:
			types.SendError(c, apperrors.ValidationError("format", "must be csv or xlsx"))
			return
		}
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendAttachment(c, fmt.Sprintf("%s_results.%s", project, format), contentType, data)
	}
}

func exportParams(c *gin.Context, defaultFormat string) (string, string, bool) {
	project := strings.TrimSpace(c.Query("project"))
	if project == "" {
		types.SendError(c, apperrors.MissingFieldError("project"))
		return "", "", false
	}
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format == "" {
		format = defaultFormat
	}
	return project, format, true
}
