package submission

import (
	"sort"
	"time"
)

// Submission is one completed questionnaire. Timestamps are stored as the
// RFC 3339 strings that end up in the canonical JSON blob; created_at is
// always server time and is the authoritative ordering key.
type Submission struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	City           string `json:"city"`
	Contact        string `json:"contact"`
	Answer1        string `json:"answer1"`
	Answer2        string `json:"answer2"`
	Answer3        string `json:"answer3"`
	Answer4        string `json:"answer4"`
	SubmissionDate string `json:"submission_date"`
	CreatedAt      string `json:"created_at"`
}

// PersonalInfo is the identity half of an incoming payload.
type PersonalInfo struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

// Answers holds the four free-text questionnaire answers.
type Answers struct {
	Question1 string `json:"question1"`
	Question2 string `json:"question2"`
	Question3 string `json:"question3"`
	Question4 string `json:"question4"`
}

// CreateRequest is an incoming submission before validation.
type CreateRequest struct {
	PersonalInfo   PersonalInfo
	Answers        Answers
	SubmissionDate string
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ListResponse struct {
	Records    []Submission
	Pagination Pagination
}

// SortByCreatedAtDesc orders most recent first. The sort is stable so
// records sharing a created_at keep their append order.
func SortByCreatedAtDesc(records []Submission) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseCreatedAt(records[i].CreatedAt).After(parseCreatedAt(records[j].CreatedAt))
	})
}

func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
