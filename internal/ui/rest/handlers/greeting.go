// internal/ui/rest/handlers/greeting.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/greeter/internal/domain/greeting"
	"go.uber.org/zap"
)

// Recorder receives business counters from the greeting handlers.
type Recorder interface {
	GreetingServed(kind string)
	ValidationFailed(param string)
}

// Greeting exposes one gin handler per functional route.
type Greeting interface {
	Root() gin.HandlerFunc
	Welcome() gin.HandlerFunc
	SayHelloToName() gin.HandlerFunc
	SayHelloToGender() gin.HandlerFunc
}

// NewGreeting builds the greeting handlers. A nil recorder disables counters.
func NewGreeting(logger *zap.Logger, recorder Recorder) Greeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &greetingHandler{logger: logger, recorder: recorder}
}

type greetingHandler struct {
	logger   *zap.Logger
	recorder Recorder
}

type genderURI struct {
	Gender greeting.Gender `uri:"gender" binding:"required,gender"`
}

// Root godoc
// @Summary Root greeting
// @Description Returns the fixed root greeting.
// @Tags Greetings
// @Produce json
// @Success 200 {object} greeting.Greeting
// @Router / [get]
func (h *greetingHandler) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.recorder.GreetingServed("root")
		c.JSON(http.StatusOK, greeting.Root())
	}
}

// Welcome godoc
// @Summary Welcome greeting
// @Description Returns the fixed welcome greeting.
// @Tags Greetings
// @Produce json
// @Success 200 {object} greeting.Greeting
// @Router /hello/ [get]
func (h *greetingHandler) Welcome() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.recorder.GreetingServed("welcome")
		c.JSON(http.StatusOK, greeting.Welcome())
	}
}

// SayHelloToName godoc
// @Summary Named greeting
// @Description Greets the decoded path segment verbatim.
// @Tags Greetings
// @Produce json
// @Param name path string true "Name"
// @Success 200 {object} greeting.Greeting
// @Router /say_hello_to_name/{name} [get]
func (h *greetingHandler) SayHelloToName() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.recorder.GreetingServed("named")
		c.JSON(http.StatusOK, greeting.Named(c.Param("name")))
	}
}

// SayHelloToGender godoc
// @Summary Gender greeting
// @Description Greets according to gender. Only the exact lowercase tags are accepted.
// @Tags Greetings
// @Produce json
// @Param gender path string true "Gender" Enums(male, female)
// @Success 200 {object} greeting.Greeting
// @Failure 422 {object} ValidationError
// @Router /say_hello_to_gender/{gender} [get]
func (h *greetingHandler) SayHelloToGender() gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri genderURI
		if err := c.ShouldBindUri(&uri); err != nil {
			h.logger.Debug("rejected gender",
				zap.String("input", c.Param("gender")),
				zap.Error(err),
			)
			h.recorder.ValidationFailed("gender")
			c.JSON(http.StatusUnprocessableEntity, NewValidationError(err, &uri))
			return
		}

		msg, err := greeting.Gendered(uri.Gender)
		if err != nil {
			h.logger.Error("unhandled gender", zap.Stringer("gender", uri.Gender), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		h.recorder.GreetingServed("gendered")
		c.JSON(http.StatusOK, msg)
	}
}

type nopRecorder struct{}

func (nopRecorder) GreetingServed(string)   {}
func (nopRecorder) ValidationFailed(string) {}
