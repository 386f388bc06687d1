package coding

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api/types"
	apperrors "github.com/killallgit/vidcode-api/pkg/errors"
)

// NextVideo returns the video at the coder's cursor
// @Summary      Current video
// @Description  Returns the video at the coder's cursor with any saved answer, or {done:true} once every video is submitted.
// @Tags         coding
// @Produce      json
// @Param        project query string true "Project slug"
// @Param        coder query string true "Coder name"
// @Success      200 {object} coding.VideoView "Video or done marker"
// @Failure      400 {object} types.ErrorResponse "Missing parameter"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Failure      500 {object} types.ErrorResponse "Catalog unreadable"
// @Router       /api/next-video [get]
func NextVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.CodingService.Current(c.Request.Context(), c.Query("project"), c.Query("coder"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, view)
	}
}

// PreviousVideo returns the video before the coder's cursor without moving it
// @Summary      Previous video
// @Tags         coding
// @Produce      json
// @Param        project query string true "Project slug"
// @Param        coder query string true "Coder name"
// @Success      200 {object} coding.VideoView "Video or done marker"
// @Failure      400 {object} types.ErrorResponse "Missing parameter"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/previous-video [get]
func PreviousVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := deps.CodingService.Previous(c.Request.Context(), c.Query("project"), c.Query("coder"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, view)
	}
}

// VideoAtIndex returns the video at an arbitrary catalog position
// @Summary      Video at index
// @Tags         coding
// @Produce      json
// @Param        project query string true "Project slug"
// @Param        coder query string true "Coder name"
// @Param        index query int true "Zero-based catalog position"
// @Success      200 {object} coding.VideoView "Video"
// @Failure      400 {object} types.ErrorResponse "Missing parameter or index out of range"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/video-at-index [get]
func VideoAtIndex(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, present := c.GetQuery("index")
		if !present || raw == "" {
			types.SendError(c, apperrors.MissingFieldError("index"))
			return
		}
		index, err := strconv.Atoi(raw)
		if err != nil {
			types.SendError(c, apperrors.ValidationError("index", "must be an integer"))
			return
		}

		view, err := deps.CodingService.At(c.Request.Context(), c.Query("project"), c.Query("coder"), index)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, view)
	}
}

// SaveProgress stores a draft answer without moving the cursor
// @Summary      Save draft
// @Description  Stores the answer with status draft. The cursor does not move.
// @Tags         coding
// @Accept       json
// @Produce      json
// @Param        request body SaveProgressRequest true "Draft answer"
// @Success      200 {object} types.SuccessResponse "Saved"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/save-progress [post]
func SaveProgress(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveProgressRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.CodingService.SaveDraft(c.Request.Context(), req.toSaveRequest()); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.SuccessResponse{Success: true})
	}
}

// Submit finalizes an answer and advances the coder's cursor
// @Summary      Submit answer
// @Description  Stores the answer as submitted and moves the coder to the next video. Categories are required unless the video is excluded.
// @Tags         coding
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "Final answer"
// @Success      200 {object} types.SuccessResponse "Submitted"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Project or coder not found"
// @Router       /api/submit [post]
func Submit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.CodingService.Submit(c.Request.Context(), req.toSaveRequest()); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendSuccess(c, types.SuccessResponse{Success: true})
	}
}
