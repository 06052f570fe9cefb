package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	pkgLog "smart-task-assistant/pkg/log"
	pkgResponse "smart-task-assistant/pkg/response"
	pkgTelegram "smart-task-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; Telegram expects an answer within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.) and partial
	// messages without a sender or chat. The route is reachable without
	// Telegram's signature, so a forged body must never reach the
	// background goroutine where a nil dereference would kill the process.
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, msgProcessingError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	output, err := h.uc.Dispatch(ctx, sc, task.DispatchInput{Text: msg.Text})
	if err != nil {
		if errors.Is(err, task.ErrNoMatchingTask) {
			return h.bot.SendMessage(msg.Chat.ID, msgNoMatchingTask)
		}
		h.l.Errorf(ctx, "telegram handler: Dispatch failed: %v", err)
		return err
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, formatDispatchReply(output), "Markdown")
}
