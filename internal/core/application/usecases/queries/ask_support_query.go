package queries

import (
	"context"
	"errors"
	"strings"

	"levaai/internal/core/ports"
	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var (
	ErrAskSupportQueryIsNotConstructed = errors.New(
		"AskSupportQuery must be created via NewAskSupportQuery constructor",
	)
	ErrQuestionIsRequired = errs.NewValueIsRequiredError("question")
	ErrSupportUnavailable = errors.New("support assistant is unavailable")
)

type AskSupportQuery struct {
	question string

	guard guard.ConstructorGuard
}

func NewAskSupportQuery(question string) (AskSupportQuery, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return AskSupportQuery{}, ErrQuestionIsRequired
	}
	return AskSupportQuery{question: q, guard: guard.NewConstructorGuard()}, nil
}

func (q AskSupportQuery) Validate() error {
	return q.guard.Validate(ErrAskSupportQueryIsNotConstructed)
}

// AskSupportQueryHandler forwards a question to the support assistant. There
// is no fallback answer: failures surface as ErrSupportUnavailable.
type AskSupportQueryHandler struct {
	assistant ports.SupportAssistant
}

func NewAskSupportQueryHandler(assistant ports.SupportAssistant) AskSupportQueryHandler {
	return AskSupportQueryHandler{assistant: assistant}
}

func (h AskSupportQueryHandler) Handle(ctx context.Context, query AskSupportQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	answer, err := h.assistant.Ask(ctx, query.question)
	if err != nil {
		return "", errors.Join(ErrSupportUnavailable, err)
	}
	return answer, nil
}
