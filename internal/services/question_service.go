// Package services – QuestionService
//
// QuestionService validates and normalizes question input, then delegates to
// a QuestionsDAO. DAO failures are mapped with fromDAO.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// QuestionsDAO is the storage capability QuestionService depends on.
// *repo.QuestionsDAO satisfies it.
type QuestionsDAO interface {
	// CreateQuestion inserts a question and returns the stored record.
	CreateQuestion(ctx context.Context, q domain.NewQuestion) (domain.QuestionDetail, error)

	// GetQuestions returns every question.
	GetQuestions(ctx context.Context) ([]domain.QuestionDetail, error)

	// DeleteQuestion removes a question and, through the schema, its answers.
	DeleteQuestion(ctx context.Context, questionUUID string) error
}

// QuestionService implements create, read and delete for questions.
type QuestionService struct {
	DAO    QuestionsDAO
	Limits Limits
}

// NewQuestionService constructs a QuestionService with DefaultLimits.
func NewQuestionService(dao QuestionsDAO) *QuestionService {
	return &QuestionService{DAO: dao, Limits: DefaultLimits()}
}

// Create validates q and stores it. Title must be non-blank; description may
// be empty. Both are NFC-normalized and bounded by Limits.
func (s *QuestionService) Create(ctx context.Context, q domain.NewQuestion) (domain.QuestionDetail, error) {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "Create")
	defer span.End()

	q.Title = normalize(q.Title)
	q.Description = normalize(q.Description)
	if he := checkText("title", q.Title, true, s.Limits.MaxTitleRunes); he != nil {
		return domain.QuestionDetail{}, fail(span, he)
	}
	if he := checkText("description", q.Description, false, s.Limits.MaxDescriptionRunes); he != nil {
		return domain.QuestionDetail{}, fail(span, he)
	}

	out, err := s.DAO.CreateQuestion(ctx, q)
	if err != nil {
		return domain.QuestionDetail{}, fail(span, fromDAO(err))
	}
	span.SetAttributes(attribute.String("question.uuid", out.QuestionUUID))
	return out, nil
}

// List returns every question. The result is never nil on success.
func (s *QuestionService) List(ctx context.Context) ([]domain.QuestionDetail, error) {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "List")
	defer span.End()

	out, err := s.DAO.GetQuestions(ctx)
	if err != nil {
		return nil, fail(span, fromDAO(err))
	}
	if out == nil {
		out = []domain.QuestionDetail{}
	}
	span.SetAttributes(attribute.Int("questions.count", len(out)))
	return out, nil
}

// Delete removes the question named by id. Callers learn only whether the
// DAO reported an error, never whether a row existed.
func (s *QuestionService) Delete(ctx context.Context, id domain.QuestionID) error {
	ctx, span := otel.Tracer("services/QuestionService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("question.uuid", id.QuestionUUID)),
	)
	defer span.End()

	if err := s.DAO.DeleteQuestion(ctx, id.QuestionUUID); err != nil {
		return fail(span, fromDAO(err))
	}
	return nil
}

// fail records he on span and returns it.
func fail(span trace.Span, he *HandlerError) error {
	span.SetStatus(codes.Error, he.Kind.String())
	if he.Err != nil {
		span.RecordError(he.Err)
	}
	return he
}
