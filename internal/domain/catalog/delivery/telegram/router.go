package telegram

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/consts"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/telegram"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers command, callback and default handlers.
// /done and /skip are deliberately not registered as commands: they are
// conversation inputs and must reach the default handler.
func (r *Router) RegisterRoutes(bot *telegram.Bot) {
	raw := bot.Raw()

	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdStart, tgbot.MatchTypePrefix, r.handlers.HandleStart)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdSearchDrama, tgbot.MatchTypeExact, r.handlers.HandleSearchDrama)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdAdd, tgbot.MatchTypeExact, r.handlers.HandleAdd)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdOngoing, tgbot.MatchTypeExact, r.handlers.HandleOngoing)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdAddNews, tgbot.MatchTypeExact, r.handlers.HandleAddNews)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdBroadcast, tgbot.MatchTypeExact, r.handlers.HandleBroadcast)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdForceSubOn, tgbot.MatchTypeExact, r.handlers.HandleForceSubOn)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdForceSubOff, tgbot.MatchTypeExact, r.handlers.HandleForceSubOff)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdForceSubDlt, tgbot.MatchTypeExact, r.handlers.HandleForceSubDelete)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdRemove, tgbot.MatchTypeExact, r.handlers.HandleRemove)
	raw.RegisterHandler(tgbot.HandlerTypeMessageText, consts.CmdCancel, tgbot.MatchTypeExact, r.handlers.HandleCancel)

	raw.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackDeleteForceSub, tgbot.MatchTypeExact, r.handlers.HandleDeleteForceSubCallback)
	raw.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackRemovePrefix, tgbot.MatchTypePrefix, r.handlers.HandleRemoveCallback)

	bot.SetDefaultHandler(r.handlers.HandleUpdate)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}
