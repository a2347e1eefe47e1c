package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qaforum/internal/auth"
	"qaforum/internal/errors"
	"qaforum/internal/service"
)

// AnswerHandler handles answer endpoints. Every route it serves sits behind
// the auth gate.
type AnswerHandler struct {
	answerService service.AnswerService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(answerService service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// AnswerRequest represents an answer create or update payload.
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

func answerIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("answerid"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid answer ID format")
	}
	return uint(id), nil
}

// Create godoc
// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Param request body AnswerRequest true "Answer text"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/questions/{questionid}/create [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	questionID, err := strconv.Atoi(c.Param("questionid"))
	if err != nil || questionID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question ID format")
	}

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Msg:  "question ID and answer text are required",
			Code: "MISSING_FIELDS",
		})
	}

	answer, err := h.answerService.Create(c.Request().Context(), claims.UserID, uint(questionID), req.Answer)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"msg":    "answer created successfully",
		"answer": answer,
	})
}

// ListAll godoc
// @Summary List every answer
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Answer
// @Failure 401 {object} errors.ErrorResponse
// @Router /answers/all [get]
func (h *AnswerHandler) ListAll(c echo.Context) error {
	answers, err := h.answerService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, answers)
}

// ListByQuestion godoc
// @Summary List the answers for a question
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param questionid path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{questionid} [get]
func (h *AnswerHandler) ListByQuestion(c echo.Context) error {
	questionID, err := strconv.Atoi(c.Param("questionid"))
	if err != nil || questionID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question ID format")
	}

	answers, err := h.answerService.ListByQuestion(c.Request().Context(), uint(questionID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusNotFound {
			return c.JSON(http.StatusNotFound, errors.ErrorResponse{
				Msg:  "no answers found for this question",
				Code: "NO_ANSWERS",
			})
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":     "answers retrieved successfully",
		"answers": answers,
	})
}

// Update godoc
// @Summary Update an answer you own
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answerid path int true "Answer ID"
// @Param request body AnswerRequest true "Answer text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{answerid} [put]
func (h *AnswerHandler) Update(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	id, err := answerIDParam(c)
	if err != nil {
		return err
	}

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Msg:  "answer ID and answer text are required",
			Code: "MISSING_FIELDS",
		})
	}

	updated, err := h.answerService.Update(c.Request().Context(), claims.UserID, id, req.Answer)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":    "answer updated successfully",
		"answer": updated,
	})
}

// Delete godoc
// @Summary Delete an answer you own
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param answerid path int true "Answer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{answerid} [delete]
func (h *AnswerHandler) Delete(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}

	id, err := answerIDParam(c)
	if err != nil {
		return err
	}

	deleted, err := h.answerService.Delete(c.Request().Context(), claims.UserID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":           "answer deleted successfully",
		"deletedAnswer": deleted,
	})
}
