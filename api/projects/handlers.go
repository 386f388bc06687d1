package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/killallgit/vidcode-api/internal/services/projects"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
)

const defaultMaxUploadSize = 32 << 20

// CreateProject creates a project with its codebook and coders
// @Summary      Create project
// @Description  Create a coding project. The slug must match ^[a-z0-9][a-z0-9-]*$ and cannot change later.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project body projects.CreateRequest true "Project definition"
// @Success      201 {object} projects.ProjectView "Created project"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      409 {object} types.ErrorResponse "Slug already in use"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/projects [post]
func CreateProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projects.CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		view, err := deps.ProjectService.CreateProject(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, view)
	}
}

// ListProjects lists every project
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200 {object} ProjectListResponse "Projects ordered by slug"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/projects [get]
func ListProjects(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := deps.ProjectService.ListProjects(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, ProjectListResponse{Projects: views})
	}
}

// GetProject returns one project
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} projects.ProjectView "Project"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/project/{slug} [get]
func GetProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.ProjectService.GetProject(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, view)
	}
}

// UpdateProject renames a project and replaces its codebook
// @Summary      Update project
// @Description  Replace the name and codebook. Stored annotations are migrated to the new codebook in the same transaction.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        project body projects.UpdateRequest true "New name and codebook"
// @Success      200 {object} types.UpdateProjectResponse "Number of annotations rewritten"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/project/{slug} [put]
func UpdateProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projects.UpdateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		updated, err := deps.ProjectService.UpdateProject(c.Request.Context(), c.Param("slug"), req)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.UpdateProjectResponse{Success: true, UpdatedResults: updated})
	}
}

// DeleteProject removes a project with its coders, annotations and files
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} types.SuccessResponse "Deleted"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/project/{slug} [delete]
func DeleteProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ProjectService.DeleteProject(c.Request.Context(), c.Param("slug")); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.SuccessResponse{Success: true})
	}
}

// AddCoder adds a coder to a project
// @Summary      Add coder
// @Tags         coders
// @Accept       json
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        coder body AddCoderRequest true "Coder name"
// @Success      201 {object} models.Coder "Created coder"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Failure      409 {object} types.ErrorResponse "Coder already exists"
// @Router       /api/project/{slug}/coders [post]
func AddCoder(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCoderRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		coder, err := deps.ProjectService.AddCoder(c.Request.Context(), c.Param("slug"), req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, coder)
	}
}

// RemoveCoder removes a coder and their annotations
// @Summary      Remove coder
// @Tags         coders
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        name path string true "Coder name"
// @Success      200 {object} types.SuccessResponse "Removed"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/project/{slug}/coders/{name} [delete]
func RemoveCoder(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ProjectService.RemoveCoder(c.Request.Context(), c.Param("slug"), c.Param("name")); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.SuccessResponse{Success: true})
	}
}

// UploadFile stores a catalog source file
// @Summary      Upload catalog file
// @Description  Upload a .csv or .xlsx video catalog. Files are read in upload order.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        file formData file true "Catalog file"
// @Success      201 {object} models.ProjectFile "Stored file"
// @Failure      400 {object} types.ErrorResponse "Missing, unsupported or unreadable file"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Failure      413 {object} types.ErrorResponse "File too large"
// @Router       /api/project/{slug}/files [post]
func UploadFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSize := int64(defaultMaxUploadSize)
		if deps.Config != nil && deps.Config.Storage.MaxUploadSize > 0 {
			maxSize = deps.Config.Storage.MaxUploadSize
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

		header, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Error:   "PAYLOAD_TOO_LARGE",
					Message: "uploaded file exceeds the size limit",
					Details: map[string]any{"limit": maxSize},
				})
				return
			}
			types.SendError(c, apperrors.MissingFieldError("file"))
			return
		}

		src, err := header.Open()
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "cannot read uploaded file"))
			return
		}
		defer src.Close()

		file, err := deps.ProjectService.UploadFile(c.Request.Context(), c.Param("slug"), header.Filename, src)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, file)
	}
}

// ListFiles lists a project's catalog files in upload order
// @Summary      List catalog files
// @Tags         files
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} FileListResponse "Files"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/project/{slug}/files [get]
func ListFiles(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := deps.ProjectService.ListFiles(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		if files == nil {
			files = []models.ProjectFile{}
		}
		types.SendSuccess(c, FileListResponse{Files: files})
	}
}

// DeleteFile removes a catalog file
// @Summary      Delete catalog file
// @Tags         files
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        id path int true "File ID"
// @Success      200 {object} types.SuccessResponse "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid file ID"
// @Failure      404 {object} types.ErrorResponse "Project or file not found"
// @Router       /api/project/{slug}/files/{id} [delete]
func DeleteFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.ProjectService.DeleteFile(c.Request.Context(), c.Param("slug"), fileID); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.SuccessResponse{Success: true})
	}
}

// ListResults lists stored annotations, optionally for one coder
// @Summary      List annotations
// @Tags         results
// @Produce      json
// @Param        slug path string true "Project slug"
// @Param        coder query string false "Coder name"
// @Success      200 {object} ResultListResponse "Annotations"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/project/{slug}/results [get]
func ListResults(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := deps.CodingService.ListResults(c.Request.Context(), c.Param("slug"), c.Query("coder"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		views := make([]ResultView, len(results))
		for i := range results {
			views[i] = newResultView(&results[i])
		}
		types.SendSuccess(c, ResultListResponse{Results: views})
	}
}
