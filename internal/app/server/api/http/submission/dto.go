package submission

import (
	"wingmann/internal/domain/submission"
)

type submitInput struct {
	Body submitRequest
}

// All fields are schema-optional: presence is enforced by the service so a
// missing field answers with 400 rather than a schema-validation 422.
type submitRequest struct {
	PersonalInfo personalInfo `json:"personalInfo,omitempty" doc:"Identity fields of the applicant"`
	Answers      answers      `json:"answers,omitempty" doc:"The four questionnaire answers"`
	// Client-side timestamp; server time of receipt is used when absent.
	SubmissionDate string `json:"submissionDate,omitempty"`
}

type personalInfo struct {
	Name    string `json:"name,omitempty"`
	Age     string `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	City    string `json:"city,omitempty"`
	Contact string `json:"contact,omitempty" doc:"10-digit phone number or email"`
}

type answers struct {
	Question1 string `json:"question1,omitempty"`
	Question2 string `json:"question2,omitempty"`
	Question3 string `json:"question3,omitempty"`
	Question4 string `json:"question4,omitempty"`
}

type submitOutput struct {
	Body submitResponse
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type listInput struct {
	Page  string `query:"page" example:"1" doc:"Page number, defaults to 1"`
	Limit string `query:"limit" example:"100" doc:"Page size, defaults to 100"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Success    bool                    `json:"success"`
	Data       []submission.Submission `json:"data"`
	Pagination submission.Pagination   `json:"pagination"`
}
