package dto

import (
	responsemodels "github.com/batkt/sudalgaaQRBackend/internal/api/response/models"
)

// FeedbackInput is the public feedback submission payload.
type FeedbackInput struct {
	EmployeeID     string                  `json:"employeeId" validate:"required,objectid"`
	QuestionSetID  string                  `json:"questionSetId" validate:"required,objectid"`
	Answers        []responsemodels.Answer `json:"answers" validate:"required,min=1"`
	Comment        string                  `json:"comment,omitempty"`
	SubmitterPhone string                  `json:"submitterPhone,omitempty"`
}

// RatingInput is the rating submission payload for the logged-in employee.
type RatingInput struct {
	QuestionSetID string                  `json:"questionSetId" validate:"required,objectid"`
	Answers       []responsemodels.Answer `json:"answers" validate:"required,min=1"`
	Comment       string                  `json:"comment,omitempty"`
}
