// Question HTTP handlers.
//
//   - POST   /question                   (create)
//   - GET    /questions                  (list)
//   - DELETE /question                   (delete, body carries question_uuid)
//   - DELETE /question/{question_uuid}   (delete, path form)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateQuestionRequest is the JSON payload for creating a question. Both
// fields must be present; description may be empty.
type CreateQuestionRequest struct {
	Title       *string `json:"title"       binding:"required" example:"How do I list answers?"`
	Description *string `json:"description" binding:"required" example:"Looking for the endpoint shape."`
}

// QuestionIDRequest names a question in a request body.
type QuestionIDRequest struct {
	QuestionUUID *string `json:"question_uuid" binding:"required" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
}

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Create a question
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateQuestionRequest true "Question"
// @Success     200   {object}  domain.QuestionDetail
// @Failure     400   {string}  string "Invalid payload"
// @Failure     500   {string}  string "Store failure"
// @Router      /question [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if !bind(c, &req) {
		return
	}
	q, err := h.qSvc.Create(c.Request.Context(), domain.NewQuestion{
		Title:       *req.Title,
		Description: *req.Description,
	})
	if err != nil {
		writeHandlerError(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List questions
// @Tags        Questions
// @Produce     json
// @Success     200  {array}   domain.QuestionDetail
// @Failure     500  {string}  string "Store failure"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	items, err := h.qSvc.List(c.Request.Context())
	if err != nil {
		writeHandlerError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question and its answers
// @Description Deleting an unknown question succeeds.
// @Tags        Questions
// @Accept      json
// @Param       body  body  handlers.QuestionIDRequest true "Question to delete"
// @Success     200
// @Failure     400   {string}  string "Invalid payload"
// @Failure     500
// @Router      /question [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	var req QuestionIDRequest
	if !bind(c, &req) {
		return
	}
	h.deleted(c, h.qSvc.Delete(c.Request.Context(), domain.QuestionID{QuestionUUID: *req.QuestionUUID}))
}

// DeleteQuestionByPath godoc
// @ID          deleteQuestionByPath
// @Summary     Delete a question and its answers (path form)
// @Tags        Questions
// @Param       question_uuid  path  string  true  "Question UUID"  format(uuid)
// @Success     200
// @Failure     500
// @Router      /question/{question_uuid} [delete]
func (h *Handlers) DeleteQuestionByPath(c *gin.Context) {
	id := domain.QuestionID{QuestionUUID: c.Param("question_uuid")}
	h.deleted(c, h.qSvc.Delete(c.Request.Context(), id))
}
