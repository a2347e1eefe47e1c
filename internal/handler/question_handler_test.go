package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qaforum/internal/auth"
	apperrors "qaforum/internal/errors"
	"qaforum/internal/model"
	"qaforum/internal/service"
)

// MockQuestionService is a mock implementation of service.QuestionService.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Create(ctx context.Context, userID uint, in service.QuestionInput) (*model.Question, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) List(ctx context.Context) ([]model.QuestionWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestionWithAuthor), args.Error(1)
}

func (m *MockQuestionService) Get(ctx context.Context, id uint) (*model.QuestionWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestionWithAuthor), args.Error(1)
}

func (m *MockQuestionService) Update(ctx context.Context, userID, id uint, in service.QuestionInput) error {
	args := m.Called(ctx, userID, id, in)
	return args.Error(0)
}

func (m *MockQuestionService) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockQuestionService) Like(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockQuestionService) Dislike(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &auth.Claims{Username: "alice", UserID: 7})
	return c, rec
}

func TestQuestionHandler_CreateMissingTag(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	mockSvc := new(MockQuestionService)
	h := NewQuestionHandler(mockSvc)

	c, rec := newTestContext(e, http.MethodPost, "/api/questions/create",
		`{"title":"t","description":"d"}`)

	err := h.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tag")
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionHandler_GetNotFoundHasNoData(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	mockSvc := new(MockQuestionService)
	mockSvc.On("Get", mock.Anything, uint(99)).Return(nil, apperrors.ErrQuestionNotFound)
	h := NewQuestionHandler(mockSvc)

	c, rec := newTestContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/questions/:questionid")
	c.SetParamNames("questionid")
	c.SetParamValues("99")

	err := h.Get(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, hasData := body["data"]
	assert.False(t, hasData)
	mockSvc.AssertExpectations(t)
}

func TestQuestionHandler_DeleteByNonOwner(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	mockSvc := new(MockQuestionService)
	mockSvc.On("Delete", mock.Anything, uint(7), uint(10)).Return(apperrors.ErrNotOwner)
	h := NewQuestionHandler(mockSvc)

	c, rec := newTestContext(e, http.MethodDelete, "/", "")
	c.SetPath("/api/questions/:questionid")
	c.SetParamNames("questionid")
	c.SetParamValues("10")

	err := h.Delete(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestQuestionHandler_InvalidIDFormat(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewQuestionHandler(new(MockQuestionService))

	c, _ := newTestContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/questions/:questionid")
	c.SetParamNames("questionid")
	c.SetParamValues("abc")

	err := h.Get(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
