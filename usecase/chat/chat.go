package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/usecase"
)

// Turn is one message of the conversation, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UseCase assembles chat prompts and relays them to the completion
// collaborator. One attempt per user message; no retries, no streaming.
type UseCase struct {
	completions usecase.CompletionClient
	logger      *zap.Logger
}

func New(completions usecase.CompletionClient, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		completions: completions,
		logger:      logger,
	}
}

// BuildPrompt renders the knowledge document, a blank line, the literal
// "Conversation history:" header and each turn in chronological order.
func BuildPrompt(turns []Turn) string {
	history := make([]string, 0, len(turns))
	for _, turn := range turns {
		speaker := "Assistant"
		if turn.Role == "user" {
			speaker = "User"
		}
		history = append(history, speaker+": "+turn.Content)
	}

	return knowledgeBase + "\n\nConversation history:\n" + strings.Join(history, "\n")
}

// Ask sends the assembled prompt and returns the completion verbatim as the
// next assistant turn. Collaborator failures surface as the generic chat
// error; the detail stays in the server log.
func (uc *UseCase) Ask(ctx context.Context, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", domain.NewError(domain.ErrCodeInvalid, "messages are required")
	}

	response, err := uc.completions.Complete(ctx, BuildPrompt(turns))
	if err != nil {
		uc.logger.Error("completion request failed", zap.Error(err))
		return "", domain.ErrCompletionFailed
	}
	return response, nil
}
