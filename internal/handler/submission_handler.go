package handler

import (
	"errors"
	"io"
	"net/http"

	"festfusion/internal/domain/submission"
	"festfusion/internal/services"
	"festfusion/internal/transport/httpdto"
	festfusion_errors "festfusion/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	service  *services.SubmissionService
	maxBytes int64
}

func NewSubmissionHandler(service *services.SubmissionService, maxBytes int64) *SubmissionHandler {
	return &SubmissionHandler{service: service, maxBytes: maxBytes}
}

// Create accepts the multipart submission form and runs the intake, archival
// and summary steps. The request body ceiling is enforced before any field is
// processed.
func (h *SubmissionHandler) Create(c *gin.Context) {
	// Leave headroom above the file ceiling for the other form fields.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)

	input := services.CreateInput{
		District:     c.PostForm("district"),
		FestivalName: c.PostForm("festival_name"),
		StoryText:    c.PostForm("story_text"),
		Language:     c.PostForm("language"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > h.maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, httpdto.NewErrorResponse("file too large", "FILE_TOO_LARGE"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("could not read file", "INVALID_REQUEST"))
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("could not read file", "INVALID_REQUEST"))
			return
		}
		input.Attachment = &submission.Attachment{
			RawBytes:     data,
			MimeType:     fileHeader.Header.Get("Content-Type"),
			OriginalName: fileHeader.Filename,
		}
	}

	draft, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponseWithWarnings(httpdto.FromDraft(draft), draft.Warnings))
}

func (h *SubmissionHandler) GetByID(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid submission id", "INVALID_REQUEST"))
		return
	}
	draft, err := h.service.Get(c.Request.Context(), draftID)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponseWithWarnings(httpdto.FromDraft(draft), draft.Warnings))
}

// EditSummaries is the explicit edit step between generation and persistence.
func (h *SubmissionHandler) EditSummaries(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid submission id", "INVALID_REQUEST"))
		return
	}
	var req httpdto.EditSummariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}
	draft, err := h.service.EditSummaries(c.Request.Context(), draftID, req.EnglishSummary, req.TeluguSummary)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromDraft(draft)))
}

// Confirm appends the draft to the permanent record.
func (h *SubmissionHandler) Confirm(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid submission id", "INVALID_REQUEST"))
		return
	}
	draft, err := h.service.Confirm(c.Request.Context(), draftID)
	if err != nil {
		status, code := statusForError(err)
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponseWithWarnings(httpdto.FromDraft(draft), draft.Warnings))
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, festfusion_errors.ErrInvalidCategory):
		return http.StatusBadRequest, "INVALID_DISTRICT"
	case errors.Is(err, festfusion_errors.ErrUnsupportedType):
		return http.StatusBadRequest, "UNSUPPORTED_TYPE"
	case errors.Is(err, festfusion_errors.ErrEmptyFile),
		errors.Is(err, festfusion_errors.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, festfusion_errors.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, festfusion_errors.ErrDraftExpired),
		errors.Is(err, festfusion_errors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, festfusion_errors.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_STATE"
	case errors.Is(err, festfusion_errors.ErrCredentialUnavailable):
		return http.StatusServiceUnavailable, "CREDENTIALS_UNAVAILABLE"
	case errors.Is(err, festfusion_errors.ErrLocalStorage):
		return http.StatusInternalServerError, "LOCAL_STORAGE_FAILURE"
	case errors.Is(err, festfusion_errors.ErrRecordAppend):
		return http.StatusBadGateway, "RECORD_APPEND_FAILURE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
