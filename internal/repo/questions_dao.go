// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the questions DAO.
//
// Every method issues a single statement against the shared pool and honors
// ctx for cancellation. Failures are returned as *DBError:
//
//   - KindInvalidUUID when the identifier argument does not parse; the store
//     is not touched in that case.
//   - KindOther for any store failure.
//
// Deleting an identifier that names no row is not an error. Answers of a
// deleted question are removed by the schema's ON DELETE CASCADE.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// QuestionsDAO creates, lists and deletes questions. It holds no state other
// than the pool handle and is safe for concurrent use.
type QuestionsDAO struct {
	db *gorm.DB
}

// NewQuestionsDAO returns a QuestionsDAO bound to db.
func NewQuestionsDAO(db *gorm.DB) *QuestionsDAO {
	return &QuestionsDAO{db: db}
}

// CreateQuestion inserts a question with a generated UUID and creation time
// and returns the stored record.
func (d *QuestionsDAO) CreateQuestion(ctx context.Context, q domain.NewQuestion) (domain.QuestionDetail, error) {
	row := &domain.Question{
		QuestionUUID: uuid.New(),
		Title:        q.Title,
		Description:  q.Description,
		CreatedAt:    domain.Now(),
	}
	if err := d.db.WithContext(ctx).Create(row).Error; err != nil {
		dbErr := other(err)
		observe("create_question", dbErr)
		return domain.QuestionDetail{}, dbErr
	}
	observe("create_question", nil)
	return row.Detail(), nil
}

// GetQuestions returns every question, oldest first. It returns an empty
// slice when there are none.
func (d *QuestionsDAO) GetQuestions(ctx context.Context) ([]domain.QuestionDetail, error) {
	var rows []domain.Question
	if err := d.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		dbErr := other(err)
		observe("get_questions", dbErr)
		return nil, dbErr
	}
	out := make([]domain.QuestionDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Detail())
	}
	observe("get_questions", nil)
	return out, nil
}

// DeleteQuestion removes the question named by questionUUID. The affected
// row count is ignored.
func (d *QuestionsDAO) DeleteQuestion(ctx context.Context, questionUUID string) error {
	id, err := parseUUID(questionUUID)
	if err != nil {
		observe("delete_question", err)
		return err
	}
	if err := d.db.WithContext(ctx).
		Where("question_uuid = ?", id).
		Delete(&domain.Question{}).Error; err != nil {
		dbErr := other(err)
		observe("delete_question", dbErr)
		return dbErr
	}
	observe("delete_question", nil)
	return nil
}
