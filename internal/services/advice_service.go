package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/thrashered1/SmartSaveAI/internal/errors"
	"github.com/thrashered1/SmartSaveAI/internal/insights"
	"github.com/thrashered1/SmartSaveAI/internal/logger"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// FallbackAdvice is returned whenever the model is unreachable or
// unconfigured, so the endpoint always has something to say.
const FallbackAdvice = "Can't connect to AI right now. Keep it tight, you got this! 💪"

const adviceSystemPrompt = "You are a blunt, encouraging personal finance coach. " +
	"Reply in at most three short sentences. Be concrete about the numbers you are given. " +
	"No financial product recommendations."

// ChatCompleter is the slice of the OpenAI client the advice service
// needs. Tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AdviceService implements AdviceServicer over an OpenAI-compatible chat
// model. A nil client means no API key was configured and every request
// gets the fallback line.
type AdviceService struct {
	client   ChatCompleter
	model    string
	budgets  BudgetServicer
	expenses ExpenseServicer
	now      func() time.Time
}

func NewAdviceService(client ChatCompleter, model string, budgets BudgetServicer, expenses ExpenseServicer) *AdviceService {
	return &AdviceService{client: client, model: model, budgets: budgets, expenses: expenses, now: time.Now}
}

// Advise builds a snapshot of the current month from stored data and asks
// the model for guidance. The figures in the request are ignored in favor
// of the server's own numbers. Model failures degrade to the fallback line
// instead of failing the request; a missing budget is still an error
// because there is nothing to advise on.
func (s *AdviceService) Advise(ctx context.Context, userID string, _ AdviceRequest) (*AdviceResponse, error) {
	today := models.DateOf(s.now())
	month, year := int(today.Month()), today.Year()

	budget, err := s.budgets.Get(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	if s.client == nil {
		return &AdviceResponse{Advice: FallbackAdvice, Fallback: true}, nil
	}

	prompt := buildAdvicePrompt(budget, expenses, today)

	cctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(cctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: adviceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		logger.Get().Warnw("advice model unreachable", "error", err)
		return &AdviceResponse{Advice: FallbackAdvice, Fallback: true}, nil
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, errors.ErrAdviceUnavailable
	}

	return &AdviceResponse{Advice: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

// buildAdvicePrompt summarizes the month into a compact plain-text
// snapshot: totals, runway and the category split.
func buildAdvicePrompt(budget *models.Budget, expenses []models.Expense, today models.Date) string {
	summary := insights.ComputeRunway(budget.TotalIncome, expenses, today)

	var b strings.Builder
	fmt.Fprintf(&b, "Month: %s %d\n", today.Month(), today.Year())
	fmt.Fprintf(&b, "Income: %.2f, spent: %.2f, left: %.2f\n",
		float64(budget.TotalIncome)/100, float64(summary.TotalSpent)/100, float64(summary.MoneyLeft)/100)
	fmt.Fprintf(&b, "Days left: %d, safe daily spend: %.2f\n", summary.DaysLeft, summary.SafeDailySpend/100)

	if totals := insights.CategoryTotals(expenses); len(totals) > 0 {
		b.WriteString("Spending by category:\n")
		for _, t := range totals {
			fmt.Fprintf(&b, "  %s: %.2f (%.1f%%)\n", t.Category, float64(t.Amount)/100, t.Percentage)
		}
	} else {
		b.WriteString("No expenses recorded yet.\n")
	}
	b.WriteString("Give me advice for the rest of the month.")
	return b.String()
}
