// Q&A HTTP handlers.
//
// This file holds the service contracts, handler wiring and request
// decoding shared by the question and answer endpoints. Handlers are
// transport-thin: they decode the JSON body, call the handler core and
// translate the outcome into an HTTP response.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-qa-backend/internal/domain"
	"github.com/tbourn/go-qa-backend/internal/http/middleware"
)

//
// Service contracts (context-aware)
//

// QuestionService defines question operations consumed by HTTP handlers.
// *services.QuestionService satisfies it.
type QuestionService interface {
	Create(ctx context.Context, q domain.NewQuestion) (domain.QuestionDetail, error)
	List(ctx context.Context) ([]domain.QuestionDetail, error)
	Delete(ctx context.Context, id domain.QuestionID) error
}

// AnswerService defines answer operations consumed by HTTP handlers.
// *services.AnswerService satisfies it.
type AnswerService interface {
	Create(ctx context.Context, a domain.NewAnswer) (domain.AnswerDetail, error)
	List(ctx context.Context, id domain.QuestionID) ([]domain.AnswerDetail, error)
	Delete(ctx context.Context, id domain.AnswerID) error
}

//
// Handler wiring
//

// Options tunes handler behavior.
type Options struct {
	// DeleteErrorDetail makes delete endpoints report failures like every
	// other endpoint (400 for a bad identifier, 500 otherwise, message in the
	// body). When false, any delete failure is a bare 500.
	DeleteErrorDetail bool
}

// Handlers groups the question and answer endpoints.
type Handlers struct {
	qSvc QuestionService
	aSvc AnswerService
	opts Options
}

// New constructs a Handlers instance bound to the given services.
func New(qSvc QuestionService, aSvc AnswerService, opts Options) *Handlers {
	return &Handlers{qSvc: qSvc, aSvc: aSvc, opts: opts}
}

func init() {
	// Report validation failures by JSON field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bind decodes the JSON body into req. On failure it writes a 400 plain-text
// response and returns false.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		text(c, http.StatusBadRequest, bindMessage(err))
		return false
	}
	return true
}

// bindMessage renders a decode or validation error for the client.
func bindMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return "missing required field: " + strings.Join(fields, ", ")
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "request body too large"
	}
	return "invalid JSON body: " + err.Error()
}

// deleted finishes a delete request. Success is 200 with no body; failure
// follows Options.DeleteErrorDetail.
func (h *Handlers) deleted(c *gin.Context, err error) {
	if err == nil {
		emptyOK(c)
		return
	}
	if h.opts.DeleteErrorDetail {
		writeHandlerError(c, err)
		return
	}
	middleware.LoggerFrom(c).Error().Err(err).Msg("delete failed")
	c.AbortWithStatus(http.StatusInternalServerError)
}
