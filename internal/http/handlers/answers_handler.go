// Answer HTTP handlers.
//
//   - POST   /answer                     (create)
//   - GET    /answers                    (list, body carries question_uuid)
//   - GET    /answers/{question_uuid}    (list, path form)
//   - DELETE /answer                     (delete, body carries answer_uuid)
//   - DELETE /answer/{answer_uuid}       (delete, path form)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateAnswerRequest is the JSON payload for answering a question.
type CreateAnswerRequest struct {
	QuestionUUID *string `json:"question_uuid" binding:"required" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
	Content      *string `json:"content"       binding:"required" example:"Send the question UUID in the body."`
}

// AnswerIDRequest names an answer in a request body.
type AnswerIDRequest struct {
	AnswerUUID *string `json:"answer_uuid" binding:"required" example:"1f7a1a0e-2d0b-4e8c-9a53-5b7f0c1d2e3f"`
}

// CreateAnswer godoc
// @ID          createAnswer
// @Summary     Answer a question
// @Description An unknown question UUID is rejected with 400.
// @Tags        Answers
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateAnswerRequest true "Answer"
// @Success     200   {object}  domain.AnswerDetail
// @Failure     400   {string}  string "Invalid payload or unknown question"
// @Failure     500   {string}  string "Store failure"
// @Router      /answer [post]
func (h *Handlers) CreateAnswer(c *gin.Context) {
	var req CreateAnswerRequest
	if !bind(c, &req) {
		return
	}
	a, err := h.aSvc.Create(c.Request.Context(), domain.NewAnswer{
		QuestionUUID: *req.QuestionUUID,
		Content:      *req.Content,
	})
	if err != nil {
		writeHandlerError(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// ListAnswers godoc
// @ID          listAnswers
// @Summary     List the answers of a question
// @Description The question is named in the request body.
// @Tags        Answers
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.QuestionIDRequest true "Question"
// @Success     200   {array}   domain.AnswerDetail
// @Failure     400   {string}  string "Invalid payload"
// @Failure     500   {string}  string "Store failure"
// @Router      /answers [get]
func (h *Handlers) ListAnswers(c *gin.Context) {
	var req QuestionIDRequest
	if !bind(c, &req) {
		return
	}
	h.listAnswers(c, *req.QuestionUUID)
}

// ListAnswersByPath godoc
// @ID          listAnswersByPath
// @Summary     List the answers of a question (path form)
// @Tags        Answers
// @Produce     json
// @Param       question_uuid  path      string  true  "Question UUID"  format(uuid)
// @Success     200            {array}   domain.AnswerDetail
// @Failure     400            {string}  string "Invalid question UUID"
// @Failure     500            {string}  string "Store failure"
// @Router      /answers/{question_uuid} [get]
func (h *Handlers) ListAnswersByPath(c *gin.Context) {
	h.listAnswers(c, c.Param("question_uuid"))
}

func (h *Handlers) listAnswers(c *gin.Context, questionUUID string) {
	items, err := h.aSvc.List(c.Request.Context(), domain.QuestionID{QuestionUUID: questionUUID})
	if err != nil {
		writeHandlerError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// DeleteAnswer godoc
// @ID          deleteAnswer
// @Summary     Delete an answer
// @Tags        Answers
// @Accept      json
// @Param       body  body  handlers.AnswerIDRequest true "Answer to delete"
// @Success     200
// @Failure     400   {string}  string "Invalid payload"
// @Failure     500
// @Router      /answer [delete]
func (h *Handlers) DeleteAnswer(c *gin.Context) {
	var req AnswerIDRequest
	if !bind(c, &req) {
		return
	}
	h.deleted(c, h.aSvc.Delete(c.Request.Context(), domain.AnswerID{AnswerUUID: *req.AnswerUUID}))
}

// DeleteAnswerByPath godoc
// @ID          deleteAnswerByPath
// @Summary     Delete an answer (path form)
// @Tags        Answers
// @Param       answer_uuid  path  string  true  "Answer UUID"  format(uuid)
// @Success     200
// @Failure     500
// @Router      /answer/{answer_uuid} [delete]
func (h *Handlers) DeleteAnswerByPath(c *gin.Context) {
	h.deleted(c, h.aSvc.Delete(c.Request.Context(), domain.AnswerID{AnswerUUID: c.Param("answer_uuid")}))
}
