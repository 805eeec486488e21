// Package domain defines the persistence models for questions and answers
// and the JSON records exchanged with HTTP clients. The row types are mapped
// with GORM; the record types are short-lived values built per request.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout renders created_at values: UTC, microsecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Question is a persisted question row.
//
// Fields:
//   - QuestionUUID: server-generated UUID primary key.
//   - Title: non-empty question title.
//   - Description: free text body (may be empty).
//   - CreatedAt: set once at insertion (UTC, truncated to microseconds).
type Question struct {
	QuestionUUID uuid.UUID `gorm:"column:question_uuid;type:uuid;primaryKey"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	// Answers anchors the FK on answers.question_uuid; deleting the question
	// removes them.
	Answers []Answer `gorm:"foreignKey:QuestionUUID;references:QuestionUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Answer is a persisted answer row. Answers are cascade-deleted with their
// parent question.
type Answer struct {
	AnswerUUID   uuid.UUID `gorm:"column:answer_uuid;type:uuid;primaryKey"`
	QuestionUUID uuid.UUID `gorm:"column:question_uuid;type:uuid;not null;index:idx_answers_question"`
	Content      string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the database table name for Answer.
func (Answer) TableName() string { return "answers" }

// Detail converts the row into its wire representation.
func (q Question) Detail() QuestionDetail {
	return QuestionDetail{
		QuestionUUID: q.QuestionUUID.String(),
		Title:        q.Title,
		Description:  q.Description,
		CreatedAt:    FormatTimestamp(q.CreatedAt),
	}
}

// Detail converts the row into its wire representation.
func (a Answer) Detail() AnswerDetail {
	return AnswerDetail{
		AnswerUUID:   a.AnswerUUID.String(),
		QuestionUUID: a.QuestionUUID.String(),
		Content:      a.Content,
		CreatedAt:    FormatTimestamp(a.CreatedAt),
	}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Now returns the current time in UTC truncated to microseconds, which is the
// precision both supported stores keep.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
