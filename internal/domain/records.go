package domain

// NewQuestion is the payload for creating a question.
type NewQuestion struct {
	Title       string `json:"title"       example:"How do I list answers?"`
	Description string `json:"description" example:"Looking for the endpoint shape."`
}

// QuestionDetail is a question as returned to clients.
type QuestionDetail struct {
	QuestionUUID string `json:"question_uuid" example:"b068cd2f-edac-479e-98f1-c5f91008dcbd"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"    example:"2024-05-01 10:20:30.123456"`
}

// QuestionID names a question by its UUID string.
type QuestionID struct {
	QuestionUUID string `json:"question_uuid"`
}

// NewAnswer is the payload for creating an answer to a question.
type NewAnswer struct {
	QuestionUUID string `json:"question_uuid"`
	Content      string `json:"content"`
}

// AnswerDetail is an answer as returned to clients.
type AnswerDetail struct {
	AnswerUUID   string `json:"answer_uuid"`
	QuestionUUID string `json:"question_uuid"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
}

// AnswerID names an answer by its UUID string.
type AnswerID struct {
	AnswerUUID string `json:"answer_uuid"`
}
