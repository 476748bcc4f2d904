// Package buissines contains business logic for the catalog domain
package buissines

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/bibegs/dramawallah-bot/config"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/consts"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/deps"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/dto"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	catalogerrors "github.com/bibegs/dramawallah-bot/internal/domain/catalog/errors"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/session"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/metrics"
)

// recentNewsLimit caps the /api/news response
const recentNewsLimit = 5

// UseCase contains business logic for catalog operations
type UseCase struct {
	dramas   deps.DramaRepository
	news     deps.NewsRepository
	users    deps.UserRepository
	forceSub deps.ForceSubRepository
	sessions *session.Manager
	sender   deps.TelegramSender
	metrics  *metrics.Metrics
	logger   zerolog.Logger

	adminID    int64
	websiteURL string
}

// NewUseCase creates a new UseCase instance
// Note: sender is not passed here to break cyclic dependency
// Use SetSender after creating TelegramHandlers
func NewUseCase(
	dramas deps.DramaRepository,
	news deps.NewsRepository,
	users deps.UserRepository,
	forceSub deps.ForceSubRepository,
	sessions *session.Manager,
	m *metrics.Metrics,
	tgCfg *config.TelegramConfig,
	svcCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		dramas:     dramas,
		news:       news,
		users:      users,
		forceSub:   forceSub,
		sessions:   sessions,
		metrics:    m,
		logger:     logger,
		adminID:    tgCfg.AdminID,
		websiteURL: svcCfg.WebsiteURL,
	}
}

// SetSender sets the TelegramSender after construction
// This is called by fx.Invoke to resolve cyclic dependency
func (uc *UseCase) SetSender(sender deps.TelegramSender) {
	uc.sender = sender
}

// IsAdmin reports whether the user is the configured admin
func (uc *UseCase) IsAdmin(userID int64) bool {
	return userID == uc.adminID
}

// HandleStart handles /start: records the user and returns the welcome text
func (uc *UseCase) HandleStart(ctx context.Context, req *dto.StartRequest) (*dto.CommandResponse, error) {
	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("username", req.Username).
		Msg("User started bot")
	uc.metrics.RecordCommand(consts.CmdStart)

	user := &entities.User{
		UserID:    req.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastSeen:  time.Now(),
	}
	if err := uc.users.Upsert(ctx, user); err != nil {
		uc.logger.Error().Err(err).Int64("user_id", req.UserID).Msg("Failed to upsert user")
		return nil, err
	}

	message := `🎬 welcome to dramawallah bot

available commands:
/search_drama - search for dramas

for admins:
/add - add new drama
/ongoing - manage ongoing dramas
/add_news - post news
/broadcast - message all users

developed by @bibegs`

	return &dto.CommandResponse{Message: message}, nil
}

// HandleSearchDrama handles /search_drama: points the user at the website
func (uc *UseCase) HandleSearchDrama(ctx context.Context) (*dto.SearchDramaResponse, error) {
	uc.metrics.RecordCommand(consts.CmdSearchDrama)
	return &dto.SearchDramaResponse{
		Message:    consts.MsgSearchOnWebsite,
		WebsiteURL: uc.websiteURL,
	}, nil
}

// StartAddDrama handles /add: admin only, opens the drama upload conversation
func (uc *UseCase) StartAddDrama(ctx context.Context, chatID, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdAdd)
	uc.sessions.Begin(chatID, session.FlowDrama)
	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))

	uc.logger.Info().Int64("chat_id", chatID).Msg("Drama upload conversation started")
	return &dto.CommandResponse{Message: consts.MsgAskChannelLink}, nil
}

// StartAddOngoing handles /ongoing: admin only, opens the ongoing upload conversation
func (uc *UseCase) StartAddOngoing(ctx context.Context, chatID, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdOngoing)
	uc.sessions.Begin(chatID, session.FlowOngoing)
	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))

	uc.logger.Info().Int64("chat_id", chatID).Msg("Ongoing upload conversation started")
	return &dto.CommandResponse{Message: consts.MsgAskOngoingChannelLink}, nil
}

// StartAddNews handles /add_news: admin only, opens the news conversation
func (uc *UseCase) StartAddNews(ctx context.Context, chatID, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdAddNews)
	uc.sessions.Begin(chatID, session.FlowNews)
	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))

	uc.logger.Info().Int64("chat_id", chatID).Msg("News conversation started")
	return &dto.CommandResponse{Message: consts.MsgAskNewsTitle}, nil
}

// StartForceSub handles /fs_on: admin only, opens the force-sub conversation
func (uc *UseCase) StartForceSub(ctx context.Context, chatID, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdForceSubOn)
	uc.sessions.Begin(chatID, session.FlowForceSub)
	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))

	return &dto.CommandResponse{Message: consts.MsgAskForceSubChannel}, nil
}

// HandleGroupSearch matches a group message against stored record names.
// A nil result means no reply should be sent.
func (uc *UseCase) HandleGroupSearch(ctx context.Context, req *dto.GroupSearchRequest) (*dto.GroupSearchResult, error) {
	// Character count, not bytes: catalog names are often non-ASCII.
	query := normalizeQuery(req.Text)
	if utf8.RuneCountInString(query) < 3 {
		return nil, nil
	}

	drama, err := uc.dramas.FindByName(ctx, query)
	if err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", req.ChatID).Msg("Group search lookup failed")
		return nil, err
	}

	uc.metrics.RecordSearch(drama != nil)

	if drama == nil {
		return nil, nil
	}

	uc.logger.Info().
		Int64("chat_id", req.ChatID).
		Str("name", drama.Name).
		Msg("Group search matched a record")

	return &dto.GroupSearchResult{
		Name:        drama.Name,
		ChannelLink: drama.ChannelLink,
	}, nil
}

// HandleBroadcast copies the replied-to message to every known user.
// Per-user delivery failures are counted and skipped, never fatal.
func (uc *UseCase) HandleBroadcast(ctx context.Context, req *dto.BroadcastRequest) (*dto.BroadcastResponse, error) {
	if !uc.IsAdmin(req.UserID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	if !req.HasReply {
		return nil, catalogerrors.ErrBroadcastNeedsSrc
	}

	uc.metrics.RecordCommand(consts.CmdBroadcast)

	users, err := uc.users.List(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("Failed to list users for broadcast")
		return nil, err
	}

	sent := 0
	for _, user := range users {
		if err := uc.sender.CopyMessage(ctx, user.UserID, req.FromChatID, req.MessageID); err != nil {
			uc.logger.Warn().Err(err).Int64("user_id", user.UserID).Msg("Broadcast delivery failed, skipping user")
			uc.metrics.RecordBroadcast(false)
			continue
		}
		sent++
		uc.metrics.RecordBroadcast(true)
	}

	uc.logger.Info().Int("sent", sent).Int("total", len(users)).Msg("Broadcast finished")

	return &dto.BroadcastResponse{
		Message: fmt.Sprintf("broadcast sent to %d users.", sent),
		Sent:    sent,
	}, nil
}

// HandleForceSubOff handles /fs_off: admin only, disables force subscription
func (uc *UseCase) HandleForceSubOff(ctx context.Context, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdForceSubOff)

	if err := uc.forceSub.Delete(ctx); err != nil {
		return nil, err
	}

	return &dto.CommandResponse{Message: consts.MsgForceSubDisabled}, nil
}

// HandleForceSubDeletePrompt handles /fs_dlt: admin only, returns the
// confirmation prompt. The delivery layer attaches the delete button.
func (uc *UseCase) HandleForceSubDeletePrompt(ctx context.Context, userID int64) (*dto.CommandResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdForceSubDlt)
	return &dto.CommandResponse{Message: consts.MsgClickToDeleteForceSub}, nil
}

// DeleteForceSub removes the force-sub config after button confirmation
func (uc *UseCase) DeleteForceSub(ctx context.Context) (*dto.CommandResponse, error) {
	if err := uc.forceSub.Delete(ctx); err != nil {
		return nil, err
	}

	return &dto.CommandResponse{Message: consts.MsgForceSubDeleted}, nil
}

// HandleRemoveList handles /remove: admin only, lists removable records
func (uc *UseCase) HandleRemoveList(ctx context.Context, userID int64) (*dto.RemoveListResponse, error) {
	if !uc.IsAdmin(userID) {
		return nil, catalogerrors.ErrNotAdmin
	}

	uc.metrics.RecordCommand(consts.CmdRemove)

	dramas, err := uc.dramas.List(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("Failed to list dramas for removal")
		return nil, err
	}

	items := make([]dto.RemoveItem, len(dramas))
	for i, drama := range dramas {
		items[i] = dto.RemoveItem{
			ID:   drama.ID.Hex(),
			Name: drama.Name,
		}
	}

	return &dto.RemoveListResponse{Items: items}, nil
}

// RemoveDrama deletes one record after button confirmation
func (uc *UseCase) RemoveDrama(ctx context.Context, id string) (*dto.CommandResponse, error) {
	if err := uc.dramas.Delete(ctx, id); err != nil {
		uc.logger.Error().Err(err).Str("id", id).Msg("Failed to remove drama")
		return nil, err
	}

	uc.metrics.RecordsRemoved.Inc()
	return &dto.CommandResponse{Message: consts.MsgDramaRemoved}, nil
}

// ListDramas returns all records of one kind for the HTTP API
func (uc *UseCase) ListDramas(ctx context.Context, kind entities.DramaKind) ([]entities.Drama, error) {
	return uc.dramas.ListByKind(ctx, kind)
}

// RecentNews returns the latest news items for the HTTP API
func (uc *UseCase) RecentNews(ctx context.Context) ([]entities.NewsItem, error) {
	return uc.news.ListRecent(ctx, recentNewsLimit)
}
