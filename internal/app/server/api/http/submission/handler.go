package submission

import (
	"context"
	"errors"
	"strconv"

	"wingmann/internal/domain/submission"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    submission.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service submission.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.submitOp(), h.submit)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) submit(ctx context.Context, input *submitInput) (*submitOutput, error) {
	req := submission.CreateRequest{
		PersonalInfo: submission.PersonalInfo{
			Name:    input.Body.PersonalInfo.Name,
			Age:     input.Body.PersonalInfo.Age,
			Gender:  input.Body.PersonalInfo.Gender,
			City:    input.Body.PersonalInfo.City,
			Contact: input.Body.PersonalInfo.Contact,
		},
		Answers: submission.Answers{
			Question1: input.Body.Answers.Question1,
			Question2: input.Body.Answers.Question2,
			Question3: input.Body.Answers.Question3,
			Question4: input.Body.Answers.Question4,
		},
		SubmissionDate: input.Body.SubmissionDate,
	}

	_, err := h.service.Submit(ctx, req)
	if err != nil {
		if errors.Is(err, submission.ErrMissingFields) {
			return nil, huma.Error400BadRequest("All fields are required")
		}
		h.log.Error("submit failed", "error", err)
		return nil, huma.Error500InternalServerError("Error saving data")
	}

	return &submitOutput{
		Body: submitResponse{
			Success: true,
			Message: "Data saved successfully",
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	// Lenient parsing: absent or non-numeric values fall back to defaults
	// instead of rejecting the request.
	page, _ := strconv.Atoi(input.Page)
	limit, _ := strconv.Atoi(input.Limit)

	resp, err := h.service.List(ctx, page, limit)
	if err != nil {
		h.log.Error("list failed", "error", err)
		return nil, huma.Error500InternalServerError("Error fetching data")
	}

	return &listOutput{
		Body: listResponse{
			Success:    true,
			Data:       resp.Records,
			Pagination: resp.Pagination,
		},
	}, nil
}
