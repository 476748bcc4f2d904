// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/consts"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/dto"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/usecase/buissines"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/workers"
	pkgerrors "github.com/bibegs/dramawallah-bot/pkg/errors"
)

// RequestTimeout bounds every single Telegram API call
const RequestTimeout = 30 * time.Second

// Handlers contains Telegram command handlers.
// Implements deps.TelegramSender and workers.Deleter.
type Handlers struct {
	uc        *buissines.UseCase
	bot       *tgbot.Bot
	scheduler *workers.Scheduler
	logger    zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *buissines.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// SetScheduler sets the deletion scheduler after construction.
// The scheduler deletes through these handlers, so it is built second.
func (h *Handlers) SetScheduler(s *workers.Scheduler) {
	h.scheduler = s
}

// SendMessage implements deps.TelegramSender
func (h *Handlers) SendMessage(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		h.logger.Warn().Int64("chat_id", chatID).Msg("Attempt to send empty message")
		return fmt.Errorf("message text cannot be empty")
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send message")
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// CopyMessage implements deps.TelegramSender
func (h *Handlers) CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.CopyMessage(msgCtx, &tgbot.CopyMessageParams{
		ChatID:     toChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if err != nil {
		return fmt.Errorf("failed to copy message: %w", err)
	}

	return nil
}

// DeleteMessage implements workers.Deleter
func (h *Handlers) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.DeleteMessage(msgCtx, &tgbot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// HandleStart handles /start
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	from := update.Message.From
	if from == nil {
		return
	}

	h.logCommand(from.ID, consts.CmdStart)

	resp, err := h.uc.HandleStart(ctx, &dto.StartRequest{
		UserID:    from.ID,
		Username:  from.Username,
		FirstName: from.FirstName,
	})
	if err != nil {
		h.logError(from.ID, consts.CmdStart, err)
		h.sendResponse(ctx, chatID, consts.MsgStoreError)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleSearchDrama handles /search_drama: replies with a website button
func (h *Handlers) HandleSearchDrama(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), consts.CmdSearchDrama)

	resp, err := h.uc.HandleSearchDrama(ctx)
	if err != nil {
		h.logError(userID(update), consts.CmdSearchDrama, err)
		return
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: consts.BtnSearchOnWebsite, URL: resp.WebsiteURL}},
		},
	}
	h.sendWithKeyboard(ctx, chatID, resp.Message, keyboard)
}

// HandleAdd handles /add
func (h *Handlers) HandleAdd(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.startFlow(ctx, update, consts.CmdAdd, h.uc.StartAddDrama)
}

// HandleOngoing handles /ongoing
func (h *Handlers) HandleOngoing(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.startFlow(ctx, update, consts.CmdOngoing, h.uc.StartAddOngoing)
}

// HandleAddNews handles /add_news
func (h *Handlers) HandleAddNews(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.startFlow(ctx, update, consts.CmdAddNews, h.uc.StartAddNews)
}

// HandleForceSubOn handles /fs_on
func (h *Handlers) HandleForceSubOn(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	h.startFlow(ctx, update, consts.CmdForceSubOn, h.uc.StartForceSub)
}

func (h *Handlers) startFlow(
	ctx context.Context,
	update *models.Update,
	command string,
	start func(ctx context.Context, chatID, userID int64) (*dto.CommandResponse, error),
) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), command)

	resp, err := start(ctx, chatID, userID(update))
	if err != nil {
		h.replyError(ctx, chatID, userID(update), command, err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleBroadcast handles /broadcast
func (h *Handlers) HandleBroadcast(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), consts.CmdBroadcast)

	req := &dto.BroadcastRequest{
		UserID:     userID(update),
		FromChatID: chatID,
		HasReply:   update.Message.ReplyToMessage != nil,
	}
	if req.HasReply {
		req.MessageID = update.Message.ReplyToMessage.ID
	}

	resp, err := h.uc.HandleBroadcast(ctx, req)
	if err != nil {
		h.replyError(ctx, chatID, userID(update), consts.CmdBroadcast, err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleForceSubOff handles /fs_off
func (h *Handlers) HandleForceSubOff(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), consts.CmdForceSubOff)

	resp, err := h.uc.HandleForceSubOff(ctx, userID(update))
	if err != nil {
		h.replyError(ctx, chatID, userID(update), consts.CmdForceSubOff, err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleForceSubDelete handles /fs_dlt: replies with a confirmation button
func (h *Handlers) HandleForceSubDelete(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), consts.CmdForceSubDlt)

	resp, err := h.uc.HandleForceSubDeletePrompt(ctx, userID(update))
	if err != nil {
		h.replyError(ctx, chatID, userID(update), consts.CmdForceSubDlt, err)
		return
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: consts.BtnDeleteForceSub, CallbackData: consts.CallbackDeleteForceSub}},
		},
	}
	h.sendWithKeyboard(ctx, chatID, resp.Message, keyboard)
}

// HandleRemove handles /remove: lists records behind delete buttons
func (h *Handlers) HandleRemove(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	h.logCommand(userID(update), consts.CmdRemove)

	resp, err := h.uc.HandleRemoveList(ctx, userID(update))
	if err != nil {
		h.replyError(ctx, chatID, userID(update), consts.CmdRemove, err)
		return
	}

	if len(resp.Items) == 0 {
		h.sendResponse(ctx, chatID, consts.MsgNoDramasFound)
		return
	}

	rows := make([][]models.InlineKeyboardButton, len(resp.Items))
	for i, item := range resp.Items {
		rows[i] = []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("❌ %s", item.Name),
			CallbackData: consts.CallbackRemovePrefix + item.ID,
		}}
	}

	h.sendWithKeyboard(ctx, chatID, consts.MsgSelectDramaToRemove, &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

// HandleCancel handles /cancel issued as a bare command
func (h *Handlers) HandleCancel(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	resp, err := h.uc.CancelFlow(ctx, chatID)
	if err != nil || resp == nil {
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
}

// HandleDeleteForceSubCallback handles the delete_force_sub button
func (h *Handlers) HandleDeleteForceSubCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	h.answerCallback(ctx, query.ID)

	resp, err := h.uc.DeleteForceSub(ctx)
	if err != nil {
		h.logError(query.From.ID, consts.CallbackDeleteForceSub, err)
		h.editCallbackMessage(ctx, query, consts.MsgStoreError)
		return
	}

	h.editCallbackMessage(ctx, query, resp.Message)
}

// HandleRemoveCallback handles remove_<id> buttons
func (h *Handlers) HandleRemoveCallback(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	h.answerCallback(ctx, query.ID)

	id := strings.TrimPrefix(query.Data, consts.CallbackRemovePrefix)
	resp, err := h.uc.RemoveDrama(ctx, id)
	if err != nil {
		h.logError(query.From.ID, consts.CmdRemove, err)
		h.editCallbackMessage(ctx, query, consts.MsgStoreError)
		return
	}

	h.editCallbackMessage(ctx, query, resp.Message)
}

// HandleUpdate is the default handler for updates no command route matched:
// group messages go to catalog search, private messages feed the active
// upload conversation.
func (h *Handlers) HandleUpdate(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	switch msg.Chat.Type {
	case "group", "supergroup":
		h.handleGroupMessage(ctx, msg)
	case "private":
		h.handleFlowMessage(ctx, msg)
	}
}

func (h *Handlers) handleGroupMessage(ctx context.Context, msg *models.Message) {
	if msg.Text == "" {
		return
	}

	result, err := h.uc.HandleGroupSearch(ctx, &dto.GroupSearchRequest{
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	})
	if err != nil || result == nil {
		return
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: fmt.Sprintf("📥 %s", result.Name), URL: result.ChannelLink}},
		},
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	reply, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		Text:            strings.ToLower(fmt.Sprintf("found: %s", result.Name)),
		ReplyMarkup:     keyboard,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", msg.Chat.ID).Err(err).Msg("Failed to send search reply")
		return
	}

	h.scheduler.Schedule(msg.Chat.ID, reply.ID, workers.DefaultDeleteDelay)
}

func (h *Handlers) handleFlowMessage(ctx context.Context, msg *models.Message) {
	if msg.From == nil {
		return
	}

	input := &dto.FlowInput{
		ChatID: msg.Chat.ID,
		UserID: msg.From.ID,
		Text:   msg.Text,
	}

	if len(msg.Photo) > 0 {
		url, err := h.photoURL(ctx, msg.Photo[len(msg.Photo)-1].FileID)
		if err != nil {
			h.logger.Error().Int64("chat_id", msg.Chat.ID).Err(err).Msg("Failed to resolve photo URL")
			h.sendResponse(ctx, msg.Chat.ID, consts.MsgStoreError)
			return
		}
		input.PhotoURL = url
	}

	switch {
	case msg.Document != nil:
		input.File = &dto.FlowFile{
			FileID:   msg.Document.FileID,
			FileName: msg.Document.FileName,
			FileSize: msg.Document.FileSize,
		}
	case msg.Video != nil:
		input.File = &dto.FlowFile{
			FileID:   msg.Video.FileID,
			FileName: msg.Video.FileName,
			FileSize: msg.Video.FileSize,
		}
	}

	reply, err := h.uc.HandleFlowInput(ctx, input)
	if err != nil {
		h.logError(msg.From.ID, "flow", err)
		h.sendResponse(ctx, msg.Chat.ID, consts.MsgStoreError)
		return
	}

	if !reply.Handled || reply.Message == "" {
		return
	}

	h.sendResponse(ctx, msg.Chat.ID, reply.Message)
}

// photoURL resolves a photo file id into a downloadable URL
func (h *Handlers) photoURL(ctx context.Context, fileID string) (string, error) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	file, err := h.bot.GetFile(msgCtx, &tgbot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("failed to get file info: %w", err)
	}

	return h.bot.FileDownloadLink(file), nil
}

// replyError maps a usecase error to its user-facing reply
func (h *Handlers) replyError(ctx context.Context, chatID, userID int64, command string, err error) {
	switch {
	case pkgerrors.IsUnauthorizedError(err):
		h.sendResponse(ctx, chatID, consts.MsgAdminOnly)
	case pkgerrors.IsValidationError(err) && command == consts.CmdBroadcast:
		h.sendResponse(ctx, chatID, consts.MsgBroadcastNeedsReply)
	default:
		h.logError(userID, command, err)
		h.sendResponse(ctx, chatID, consts.MsgStoreError)
	}
}

func (h *Handlers) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.SendMessage(ctx, chatID, text); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send Telegram response")
	}
}

func (h *Handlers) sendWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send keyboard response")
	}
}

func (h *Handlers) answerCallback(ctx context.Context, queryID string) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
	})
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to answer callback query")
	}
}

// editCallbackMessage replaces the keyboard message with a result text.
// Inaccessible originating messages are skipped.
func (h *Handlers) editCallbackMessage(ctx context.Context, query *models.CallbackQuery, text string) {
	msg := query.Message.Message
	if msg == nil {
		return
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.EditMessageText(msgCtx, &tgbot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	})
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to edit callback message")
	}
}

// userID extracts the sender id, 0 when absent
func userID(update *models.Update) int64 {
	if update.Message == nil || update.Message.From == nil {
		return 0
	}
	return update.Message.From.ID
}

// logCommand logs an inbound command
func (h *Handlers) logCommand(userID int64, command string) {
	h.logger.Info().Int64("user_id", userID).Str("command", command).Msg("Telegram command received")
}

// logError logs command errors
func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().Int64("user_id", userID).Str("command", command).Err(err).Msg("Telegram command failed")
}
