package buissines

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/consts"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/dto"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/session"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/titles"
)

// HandleFlowInput feeds one inbound private message into the chat's active
// conversation. A reply with Handled false means the chat has no active
// conversation and the message should be ignored.
func (uc *UseCase) HandleFlowInput(ctx context.Context, input *dto.FlowInput) (*dto.FlowReply, error) {
	sess, ok := uc.sessions.Get(input.ChatID)
	if !ok {
		return &dto.FlowReply{Handled: false}, nil
	}

	if input.Text == consts.CmdCancel {
		uc.endSession(input.ChatID)
		return &dto.FlowReply{Handled: true, Message: consts.MsgCancelled}, nil
	}

	switch sess.Step {
	case session.StepChannelLink:
		return uc.stepChannelLink(sess, input), nil
	case session.StepPosterImage:
		return uc.stepPosterImage(sess, input), nil
	case session.StepFiles:
		return uc.stepFiles(ctx, sess, input)
	case session.StepNewsTitle:
		return uc.stepNewsTitle(sess, input), nil
	case session.StepNewsContent:
		return uc.stepNewsContent(sess, input), nil
	case session.StepNewsImage:
		return uc.stepNewsImage(ctx, sess, input)
	case session.StepForceSubChannel:
		return uc.stepForceSubChannel(ctx, input)
	}

	uc.logger.Error().
		Int64("chat_id", input.ChatID).
		Str("step", string(sess.Step)).
		Msg("Conversation in unknown step, ending it")
	uc.endSession(input.ChatID)

	return &dto.FlowReply{Handled: true, Message: consts.MsgCancelled}, nil
}

// CancelFlow handles /cancel issued as a command. No active conversation
// means no reply, matching the silent behavior outside a flow.
func (uc *UseCase) CancelFlow(ctx context.Context, chatID int64) (*dto.CommandResponse, error) {
	if !uc.sessions.End(chatID) {
		return nil, nil
	}

	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))
	return &dto.CommandResponse{Message: consts.MsgCancelled}, nil
}

func (uc *UseCase) stepChannelLink(sess *session.Session, input *dto.FlowInput) *dto.FlowReply {
	if !isPlainText(input) {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskText}
	}

	sess.Submission.ChannelLink = input.Text
	sess.Step = session.StepPosterImage

	if sess.Flow == session.FlowOngoing {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskOngoingPosterImage}
	}
	return &dto.FlowReply{Handled: true, Message: consts.MsgAskPosterImage}
}

func (uc *UseCase) stepPosterImage(sess *session.Session, input *dto.FlowInput) *dto.FlowReply {
	if input.PhotoURL == "" {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskImageAgain}
	}

	sess.Submission.PosterImage = input.PhotoURL
	sess.Step = session.StepFiles

	return &dto.FlowReply{Handled: true, Message: consts.MsgAskFiles}
}

func (uc *UseCase) stepFiles(ctx context.Context, sess *session.Session, input *dto.FlowInput) (*dto.FlowReply, error) {
	if input.File != nil {
		name := titles.Clean(input.File.FileName)
		sess.Submission.Files = append(sess.Submission.Files, entities.FileRef{
			FileID:   input.File.FileID,
			FileName: name,
			FileSize: input.File.FileSize,
		})

		return &dto.FlowReply{
			Handled: true,
			Message: fmt.Sprintf("added: %s\nsend more files or type /done to finish", name),
		}, nil
	}

	if input.Text == consts.CmdDone && len(sess.Submission.Files) > 0 {
		return uc.commitSubmission(ctx, sess, input.ChatID)
	}

	// /done with zero files falls through to the re-prompt, nothing is written
	return &dto.FlowReply{Handled: true, Message: consts.MsgAskFilesAgain}, nil
}

// commitSubmission writes exactly one record from the finished conversation.
// The record name comes from the first uploaded file's cleaned name. On a
// store failure the session is kept so the admin can retry /done.
func (uc *UseCase) commitSubmission(ctx context.Context, sess *session.Session, chatID int64) (*dto.FlowReply, error) {
	name := titles.Clean(titles.TrimExtension(sess.Submission.Files[0].FileName))
	kind := sess.Kind()

	drama := &entities.Drama{
		Name:        name,
		ChannelLink: sess.Submission.ChannelLink,
		PosterImage: sess.Submission.PosterImage,
		Files:       sess.Submission.Files,
		CreatedAt:   time.Now(),
		Type:        kind,
	}

	if err := uc.dramas.Insert(ctx, drama); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to commit submission")
		return nil, err
	}

	uc.metrics.RecordCreated(string(kind))
	uc.endSession(chatID)

	if kind == entities.KindOngoing {
		return &dto.FlowReply{
			Handled: true,
			Message: fmt.Sprintf("✅ ongoing drama '%s' added successfully!", name),
		}, nil
	}

	return &dto.FlowReply{
		Handled: true,
		Message: fmt.Sprintf("✅ drama '%s' added successfully!\nchannel: %s", name, drama.ChannelLink),
	}, nil
}

func (uc *UseCase) stepNewsTitle(sess *session.Session, input *dto.FlowInput) *dto.FlowReply {
	if !isPlainText(input) {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskText}
	}

	sess.News.Title = input.Text
	sess.Step = session.StepNewsContent

	return &dto.FlowReply{Handled: true, Message: consts.MsgAskNewsContent}
}

func (uc *UseCase) stepNewsContent(sess *session.Session, input *dto.FlowInput) *dto.FlowReply {
	if !isPlainText(input) {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskText}
	}

	sess.News.Content = input.Text
	sess.Step = session.StepNewsImage

	return &dto.FlowReply{Handled: true, Message: consts.MsgAskNewsImage}
}

func (uc *UseCase) stepNewsImage(ctx context.Context, sess *session.Session, input *dto.FlowInput) (*dto.FlowReply, error) {
	switch {
	case input.PhotoURL != "":
		sess.News.Image = input.PhotoURL
	case input.Text == consts.CmdSkip:
		sess.News.Image = ""
	default:
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskNewsImage}, nil
	}

	item := &entities.NewsItem{
		Title:     sess.News.Title,
		Content:   sess.News.Content,
		Image:     sess.News.Image,
		CreatedAt: time.Now(),
	}

	if err := uc.news.Insert(ctx, item); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", input.ChatID).Msg("Failed to publish news")
		return nil, err
	}

	uc.metrics.NewsPublished.Inc()
	uc.endSession(input.ChatID)

	return &dto.FlowReply{Handled: true, Message: consts.MsgNewsPosted}, nil
}

func (uc *UseCase) stepForceSubChannel(ctx context.Context, input *dto.FlowInput) (*dto.FlowReply, error) {
	if !isPlainText(input) {
		return &dto.FlowReply{Handled: true, Message: consts.MsgAskText}, nil
	}

	if err := uc.forceSub.Set(ctx, input.Text); err != nil {
		uc.logger.Error().Err(err).Int64("chat_id", input.ChatID).Msg("Failed to enable force subscription")
		return nil, err
	}

	uc.endSession(input.ChatID)
	return &dto.FlowReply{Handled: true, Message: consts.MsgForceSubEnabled}, nil
}

func (uc *UseCase) endSession(chatID int64) {
	uc.sessions.End(chatID)
	uc.metrics.ActiveSessions.Set(float64(uc.sessions.Len()))
}

// isPlainText reports whether the input is a non-command text message
func isPlainText(input *dto.FlowInput) bool {
	return input.Text != "" && !strings.HasPrefix(input.Text, "/")
}

// normalizeQuery prepares a group message for catalog matching
func normalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
