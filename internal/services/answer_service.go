// Package services – AnswerService
//
// AnswerService validates answer input and delegates to an AnswersDAO. An
// answer naming a question that does not exist surfaces as BadRequest, the
// same as a malformed identifier.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// AnswersDAO is the storage capability AnswerService depends on.
// *repo.AnswersDAO satisfies it.
type AnswersDAO interface {
	// CreateAnswer inserts an answer under an existing question.
	CreateAnswer(ctx context.Context, a domain.NewAnswer) (domain.AnswerDetail, error)

	// GetAnswers returns the answers of one question.
	GetAnswers(ctx context.Context, questionUUID string) ([]domain.AnswerDetail, error)

	// DeleteAnswer removes an answer.
	DeleteAnswer(ctx context.Context, answerUUID string) error
}

// AnswerService implements create, read and delete for answers.
type AnswerService struct {
	DAO    AnswersDAO
	Limits Limits
}

// NewAnswerService constructs an AnswerService with DefaultLimits.
func NewAnswerService(dao AnswersDAO) *AnswerService {
	return &AnswerService{DAO: dao, Limits: DefaultLimits()}
}

// Create validates a and stores it. Content must be non-blank and within
// Limits.MaxContentRunes after NFC normalization. The question UUID is
// passed through untouched; the DAO owns its parsing.
func (s *AnswerService) Create(ctx context.Context, a domain.NewAnswer) (domain.AnswerDetail, error) {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "Create",
		trace.WithAttributes(attribute.String("question.uuid", a.QuestionUUID)),
	)
	defer span.End()

	a.Content = normalize(a.Content)
	if he := checkText("content", a.Content, true, s.Limits.MaxContentRunes); he != nil {
		return domain.AnswerDetail{}, fail(span, he)
	}

	out, err := s.DAO.CreateAnswer(ctx, a)
	if err != nil {
		return domain.AnswerDetail{}, fail(span, fromDAO(err))
	}
	span.SetAttributes(attribute.String("answer.uuid", out.AnswerUUID))
	return out, nil
}

// List returns the answers of the question named by id. The result is never
// nil on success.
func (s *AnswerService) List(ctx context.Context, id domain.QuestionID) ([]domain.AnswerDetail, error) {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "List",
		trace.WithAttributes(attribute.String("question.uuid", id.QuestionUUID)),
	)
	defer span.End()

	out, err := s.DAO.GetAnswers(ctx, id.QuestionUUID)
	if err != nil {
		return nil, fail(span, fromDAO(err))
	}
	if out == nil {
		out = []domain.AnswerDetail{}
	}
	span.SetAttributes(attribute.Int("answers.count", len(out)))
	return out, nil
}

// Delete removes the answer named by id.
func (s *AnswerService) Delete(ctx context.Context, id domain.AnswerID) error {
	ctx, span := otel.Tracer("services/AnswerService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("answer.uuid", id.AnswerUUID)),
	)
	defer span.End()

	if err := s.DAO.DeleteAnswer(ctx, id.AnswerUUID); err != nil {
		return fail(span, fromDAO(err))
	}
	return nil
}
