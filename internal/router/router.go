package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"qaforum/internal/auth"
	"qaforum/internal/handler"
)

// Register wires routes and middleware. The questions and answers groups are
// guarded wholesale by the auth gate; user routes are public except
// checkuser and profile.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	gate := auth.Middleware(jwtService)

	// User routes
	users := api.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout)
	users.GET("/checkuser", userHandler.CheckUser, gate)
	users.PUT("/profile", userHandler.UpdateProfile, gate)

	// Question routes
	questions := api.Group("/questions", gate)
	questions.POST("/create", questionHandler.Create)
	questions.GET("/all", questionHandler.List)
	questions.POST("/like/:questionid/like", questionHandler.Like)
	questions.POST("/like/:questionid/dislike", questionHandler.Dislike)
	questions.GET("/:questionid", questionHandler.Get)
	questions.PUT("/:questionid", questionHandler.Update)
	questions.DELETE("/:questionid", questionHandler.Delete)

	// Answer routes
	answers := api.Group("/answers", gate)
	answers.POST("/questions/:questionid/create", answerHandler.Create)
	answers.GET("/all", answerHandler.ListAll)
	answers.GET("/:questionid", answerHandler.ListByQuestion)
	answers.PUT("/:answerid", answerHandler.Update)
	answers.DELETE("/:answerid", answerHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
