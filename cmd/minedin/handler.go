package main

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"minedin_bot/internal/flow"
)

// handler adapts Telegram updates to flow events and flow replies back
// to Telegram send/edit calls.
type handler struct {
	machine *flow.Machine
	log     *zap.Logger
}

func newHandler(machine *flow.Machine, log *zap.Logger) *handler {
	return &handler{machine: machine, log: log}
}

func (h *handler) handleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	// Always answer the callback query, even when the update carries no
	// usable message; otherwise the client keeps showing a spinner.
	if update.CallbackQuery != nil {
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		}); err != nil {
			h.log.Warn("answer callback query failed",
				zap.String("callback_query_id", update.CallbackQuery.ID),
				zap.Error(err))
		}
	}

	ev, ok := eventFromUpdate(update)
	if !ok {
		return
	}

	reply := h.machine.Handle(ctx, ev)
	if reply == nil {
		return
	}
	h.render(ctx, b, reply)
}

func eventFromUpdate(update *models.Update) (flow.Event, bool) {
	if update.Message != nil {
		return flow.Event{
			ChatID:    update.Message.Chat.ID,
			MessageID: update.Message.ID,
			Text:      update.Message.Text,
		}, true
	}
	if update.CallbackQuery != nil {
		msg := update.CallbackQuery.Message.Message
		if msg == nil {
			return flow.Event{}, false
		}
		ev := flow.Event{
			ChatID:       msg.Chat.ID,
			MessageID:    msg.ID,
			CallbackData: update.CallbackQuery.Data,
			IsCallback:   true,
		}
		if msg.ReplyToMessage != nil {
			ev.RepliedToText = msg.ReplyToMessage.Text
		}
		return ev, true
	}
	return flow.Event{}, false
}

func (h *handler) render(ctx context.Context, b *bot.Bot, reply *flow.Reply) {
	markup := keyboardMarkup(reply.Keyboard)

	if reply.Edit {
		params := &bot.EditMessageTextParams{
			ChatID:    reply.ChatID,
			MessageID: reply.MessageID,
			Text:      reply.Text,
			ParseMode: models.ParseModeHTML,
		}
		if markup != nil {
			params.ReplyMarkup = *markup
		}
		if _, err := b.EditMessageText(ctx, params); err != nil {
			h.log.Error("edit message failed", zap.Int64("chat_id", reply.ChatID), zap.Error(err))
		}
		return
	}

	params := &bot.SendMessageParams{
		ChatID:    reply.ChatID,
		Text:      reply.Text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = *markup
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		h.log.Error("send message failed", zap.Int64("chat_id", reply.ChatID), zap.Error(err))
	}
}

// keyboardMarkup builds a one-column inline keyboard.
func keyboardMarkup(buttons []flow.Button) *models.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}
	rows := make([][]models.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: btn.Label, CallbackData: btn.Token},
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
