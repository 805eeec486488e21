// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the answers DAO.
//
// Creating an answer under a question that does not exist fails the foreign
// key; that failure is reported as KindInvalidUUID, the same kind as a
// malformed identifier.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// AnswersDAO creates, lists and deletes answers. It is safe for concurrent use.
type AnswersDAO struct {
	db *gorm.DB
}

// NewAnswersDAO returns an AnswersDAO bound to db.
func NewAnswersDAO(db *gorm.DB) *AnswersDAO {
	return &AnswersDAO{db: db}
}

// CreateAnswer inserts an answer under the question named by a.QuestionUUID.
func (d *AnswersDAO) CreateAnswer(ctx context.Context, a domain.NewAnswer) (domain.AnswerDetail, error) {
	qid, err := parseUUID(a.QuestionUUID)
	if err != nil {
		observe("create_answer", err)
		return domain.AnswerDetail{}, err
	}
	row := &domain.Answer{
		AnswerUUID:   uuid.New(),
		QuestionUUID: qid,
		Content:      a.Content,
		CreatedAt:    domain.Now(),
	}
	if err := d.db.WithContext(ctx).Create(row).Error; err != nil {
		dbErr := classifyWrite(err)
		observe("create_answer", dbErr)
		return domain.AnswerDetail{}, dbErr
	}
	observe("create_answer", nil)
	return row.Detail(), nil
}

// GetAnswers returns the answers of the question named by questionUUID,
// oldest first. Unknown questions yield an empty slice.
func (d *AnswersDAO) GetAnswers(ctx context.Context, questionUUID string) ([]domain.AnswerDetail, error) {
	qid, err := parseUUID(questionUUID)
	if err != nil {
		observe("get_answers", err)
		return nil, err
	}
	var rows []domain.Answer
	if err := d.db.WithContext(ctx).
		Where("question_uuid = ?", qid).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		dbErr := other(err)
		observe("get_answers", dbErr)
		return nil, dbErr
	}
	out := make([]domain.AnswerDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Detail())
	}
	observe("get_answers", nil)
	return out, nil
}

// DeleteAnswer removes the answer named by answerUUID. Missing rows are not
// an error.
func (d *AnswersDAO) DeleteAnswer(ctx context.Context, answerUUID string) error {
	id, err := parseUUID(answerUUID)
	if err != nil {
		observe("delete_answer", err)
		return err
	}
	if err := d.db.WithContext(ctx).
		Where("answer_uuid = ?", id).
		Delete(&domain.Answer{}).Error; err != nil {
		dbErr := other(err)
		observe("delete_answer", dbErr)
		return dbErr
	}
	observe("delete_answer", nil)
	return nil
}
