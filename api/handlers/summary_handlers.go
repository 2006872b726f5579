package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"summarly/dto"
	"summarly/repositories"
	"summarly/services"
)

// CreateSummaryHandler godoc
// @Summary      Submit a URL for summarization
// @Description  Creates a summary record and schedules background generation. The response echoes the request plus the assigned id; the generated text appears on the record later.
// @Tags         summaries
// @Accept       json
// @Param        payload  body  dto.SummaryPayloadDTO  true  "URL and generation parameters"
// @Produce      json
// @Success      201  {object}  dto.SummaryCreatedDTO
// @Failure      422  {object}  dto.ValidationErrorDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /summaries [post]
func CreateSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload dto.SummaryPayloadDTO
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithValidationError(c, err)
			return
		}

		out, err := svc.Create(c.Request.Context(), payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_create_summary"})
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// GetSummaryHandler godoc
// @Summary      Get a summary by id
// @Description  Returns the record as stored right now; the summary text may still be empty while generation is pending.
// @Tags         summaries
// @Param        id   path   int  true  "Summary id (positive integer)"
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      422  {object}  dto.ValidationErrorDTO
// @Router       /summaries/{id} [get]
func GetSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := summaryIDParam(c)
		if !ok {
			return
		}

		out, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListSummariesHandler godoc
// @Summary      List all summaries
// @Description  Returns every stored record in insertion order. No pagination.
// @Tags         summaries
// @Produce      json
// @Success      200  {array}  dto.SummaryDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /summaries [get]
func ListSummariesHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_list_summaries"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// UpdateSummaryHandler godoc
// @Summary      Update a summary
// @Description  Overwrites url and summary wholesale. Does not re-trigger generation.
// @Tags         summaries
// @Accept       json
// @Param        id       path  int                          true  "Summary id (positive integer)"
// @Param        payload  body  dto.SummaryUpdatePayloadDTO  true  "Replacement url and summary text"
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      422  {object}  dto.ValidationErrorDTO
// @Router       /summaries/{id} [put]
func UpdateSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := summaryIDParam(c)
		if !ok {
			return
		}

		var payload dto.SummaryUpdatePayloadDTO
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithValidationError(c, err)
			return
		}

		out, err := svc.Update(c.Request.Context(), id, payload)
		if err != nil {
			respondLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// DeleteSummaryHandler godoc
// @Summary      Delete a summary
// @Description  Removes the record and returns it as it existed right before deletion.
// @Tags         summaries
// @Param        id   path   int  true  "Summary id (positive integer)"
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      422  {object}  dto.ValidationErrorDTO
// @Router       /summaries/{id} [delete]
func DeleteSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := summaryIDParam(c)
		if !ok {
			return
		}

		out, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			respondLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateFromFeedHandler godoc
// @Summary      Submit a feed for summarization
// @Description  Fetches an RSS/Atom feed and creates one summary record per entry, each with its own scheduled generation.
// @Tags         summaries
// @Accept       json
// @Param        payload  body  dto.FeedPayloadDTO  true  "Feed URL and generation parameters"
// @Produce      json
// @Success      201  {array}  dto.SummaryCreatedDTO
// @Failure      422  {object}  dto.ValidationErrorDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /summaries/feed [post]
func CreateFromFeedHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload dto.FeedPayloadDTO
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithValidationError(c, err)
			return
		}

		created, err := svc.CreateFromFeed(c.Request.Context(), payload)
		if err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "failed_to_fetch_feed"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// summaryIDParam parses the path id. Malformed or non-positive ids are a
// validation error (422), distinct from the 404 used for absent records.
func summaryIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorDTO{
			Error: "validation_failed",
			Fields: []dto.FieldErrorDTO{
				{Field: "id", Message: "must be a positive integer"},
			},
		})
		return 0, false
	}
	return id, true
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "summary_not_found"})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
}

// abortWithValidationError maps binding errors to the 422 response with
// field-level detail.
func abortWithValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldErrorDTO, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldErrorDTO{
				Field:   fieldName(fe),
				Message: fieldMessage(fe),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorDTO{Error: "validation_failed", Fields: fields})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorDTO{
		Error:  "validation_failed",
		Fields: []dto.FieldErrorDTO{{Field: "body", Message: "malformed request body"}},
	})
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "URL":
		return "url"
	case "SummarizerSpecifier":
		return "summarizer_specifier"
	case "SentenceCount":
		return "sentence_count"
	case "Summary":
		return "summary"
	case "FeedURL":
		return "feed_url"
	case "Limit":
		return "limit"
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid absolute URL"
	case "gt":
		return "must be greater than " + fe.Param()
	}
	return "is invalid"
}
