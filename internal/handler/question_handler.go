package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qaforum/internal/auth"
	"qaforum/internal/errors"
	"qaforum/internal/service"
)

// QuestionHandler handles question endpoints. Every route it serves sits
// behind the auth gate.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRequest represents a question create or update payload.
type QuestionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Tag         string `json:"tag" validate:"required"`
}

func questionIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("questionid"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid question ID format")
	}
	return uint(id), nil
}

// Create godoc
// @Summary Create a new question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "Question fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /questions/create [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Msg:  "title, description, and tag are required: " + err.Error(),
			Code: "MISSING_FIELDS",
		})
	}

	question, err := h.questionService.Create(c.Request().Context(), claims.UserID, service.QuestionInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"msg":      "question created successfully",
		"question": question,
		"username": claims.Username,
	})
}

// List godoc
// @Summary List all questions with their authors
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.QuestionWithAuthor
// @Failure 401 {object} errors.ErrorResponse
// @Router /questions/all [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.questionService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{questionid} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := questionIDParam(c)
	if err != nil {
		return err
	}

	question, err := h.questionService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":  "question retrieved successfully",
		"data": question,
	})
}

// Update godoc
// @Summary Update a question you own
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Param request body QuestionRequest true "Question fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{questionid} [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	id, err := questionIDParam(c)
	if err != nil {
		return err
	}

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Msg:  "title, description, and tag are required: " + err.Error(),
			Code: "MISSING_FIELDS",
		})
	}

	if err := h.questionService.Update(c.Request().Context(), claims.UserID, id, service.QuestionInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
	}); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"msg": "question updated successfully",
	})
}

// Delete godoc
// @Summary Delete a question you own
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{questionid} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	id, err := questionIDParam(c)
	if err != nil {
		return err
	}

	if err := h.questionService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"msg": "question deleted successfully",
	})
}

// Like godoc
// @Summary Like a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/like/{questionid}/like [post]
func (h *QuestionHandler) Like(c echo.Context) error {
	id, err := questionIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.questionService.Like(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":        "liked successfully",
		"like_count": count,
	})
}

// Dislike godoc
// @Summary Dislike a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/like/{questionid}/dislike [post]
func (h *QuestionHandler) Dislike(c echo.Context) error {
	id, err := questionIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.questionService.Dislike(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":           "disliked successfully",
		"dislike_count": count,
	})
}
