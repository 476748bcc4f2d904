package buissines

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bibegs/dramawallah-bot/config"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/dto"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/session"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/metrics"
	pkgerrors "github.com/bibegs/dramawallah-bot/pkg/errors"
)

const testAdminID int64 = 42

type fakeDramaRepo struct {
	records   []entities.Drama
	inserted  []*entities.Drama
	deleted   []string
	findCalls int
	insertErr error
}

func (f *fakeDramaRepo) Insert(ctx context.Context, drama *entities.Drama) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, drama)
	return nil
}

func (f *fakeDramaRepo) FindByName(ctx context.Context, query string) (*entities.Drama, error) {
	f.findCalls++
	for i := range f.records {
		if containsFold(f.records[i].Name, query) {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDramaRepo) List(ctx context.Context) ([]entities.Drama, error) {
	return f.records, nil
}

func (f *fakeDramaRepo) ListByKind(ctx context.Context, kind entities.DramaKind) ([]entities.Drama, error) {
	out := []entities.Drama{}
	for _, d := range f.records {
		if d.Type == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDramaRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNewsRepo struct {
	inserted []*entities.NewsItem
}

func (f *fakeNewsRepo) Insert(ctx context.Context, item *entities.NewsItem) error {
	f.inserted = append(f.inserted, item)
	return nil
}

func (f *fakeNewsRepo) ListRecent(ctx context.Context, limit int) ([]entities.NewsItem, error) {
	if len(f.inserted) == 0 {
		return []entities.NewsItem{}, nil
	}
	items := make([]entities.NewsItem, 0, limit)
	for i := len(f.inserted) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, *f.inserted[i])
	}
	return items, nil
}

type fakeUserRepo struct {
	users    []entities.User
	upserted []*entities.User
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *entities.User) error {
	f.upserted = append(f.upserted, user)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entities.User, error) {
	return f.users, nil
}

type fakeForceSubRepo struct {
	channelID string
	deleted   bool
}

func (f *fakeForceSubRepo) Set(ctx context.Context, channelID string) error {
	f.channelID = channelID
	return nil
}

func (f *fakeForceSubRepo) Delete(ctx context.Context) error {
	f.deleted = true
	return nil
}

type fakeSender struct {
	copied  []int64
	failFor map[int64]error
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	return nil
}

func (f *fakeSender) CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error {
	if err, ok := f.failFor[toChatID]; ok {
		return err
	}
	f.copied = append(f.copied, toChatID)
	return nil
}

func containsFold(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

type testEnv struct {
	uc       *UseCase
	dramas   *fakeDramaRepo
	news     *fakeNewsRepo
	users    *fakeUserRepo
	forceSub *fakeForceSubRepo
	sender   *fakeSender
}

func newTestEnv() *testEnv {
	env := &testEnv{
		dramas:   &fakeDramaRepo{},
		news:     &fakeNewsRepo{},
		users:    &fakeUserRepo{},
		forceSub: &fakeForceSubRepo{},
		sender:   &fakeSender{},
	}

	env.uc = NewUseCase(
		env.dramas,
		env.news,
		env.users,
		env.forceSub,
		session.NewManager(),
		metrics.GetDefaultMetrics(),
		&config.TelegramConfig{AdminID: testAdminID},
		&config.ServiceConfig{WebsiteURL: "https://dramawallah.netlify.app"},
		zerolog.Nop(),
	)
	env.uc.SetSender(env.sender)

	return env
}

func TestHandleStart_UpsertsUser(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.HandleStart(context.Background(), &dto.StartRequest{
		UserID:    7,
		Username:  "viewer",
		FirstName: "Viewer",
	})
	require.NoError(t, err)
	require.Contains(t, resp.Message, "welcome to dramawallah bot")

	require.Len(t, env.users.upserted, 1)
	require.Equal(t, int64(7), env.users.upserted[0].UserID)
	require.Equal(t, "viewer", env.users.upserted[0].Username)
	require.False(t, env.users.upserted[0].LastSeen.IsZero())
}

func TestHandleSearchDrama_ReturnsWebsite(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.HandleSearchDrama(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://dramawallah.netlify.app", resp.WebsiteURL)
	require.NotEmpty(t, resp.Message)
}

func TestAdminCommands_RejectNonAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	const outsider int64 = 99

	tests := []struct {
		name string
		call func() error
	}{
		{"add", func() error { _, err := env.uc.StartAddDrama(ctx, outsider, outsider); return err }},
		{"ongoing", func() error { _, err := env.uc.StartAddOngoing(ctx, outsider, outsider); return err }},
		{"add_news", func() error { _, err := env.uc.StartAddNews(ctx, outsider, outsider); return err }},
		{"fs_on", func() error { _, err := env.uc.StartForceSub(ctx, outsider, outsider); return err }},
		{"fs_off", func() error { _, err := env.uc.HandleForceSubOff(ctx, outsider); return err }},
		{"fs_dlt", func() error { _, err := env.uc.HandleForceSubDeletePrompt(ctx, outsider); return err }},
		{"remove", func() error { _, err := env.uc.HandleRemoveList(ctx, outsider); return err }},
		{"broadcast", func() error {
			_, err := env.uc.HandleBroadcast(ctx, &dto.BroadcastRequest{UserID: outsider, HasReply: true})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			require.True(t, pkgerrors.IsUnauthorizedError(err))
		})
	}

	require.Empty(t, env.dramas.inserted)
	require.Equal(t, 0, env.uc.sessions.Len())
}

func TestHandleGroupSearch_ShortQuerySkipsLookup(t *testing.T) {
	// The floor is 3 characters, not 3 bytes: a 2-character hangul
	// message is 6 bytes long and still must not reach the store.
	tests := []struct {
		name string
		text string
	}{
		{"ascii", "  hi  "},
		{"hangul", "사랑"},
		{"empty", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			result, err := env.uc.HandleGroupSearch(context.Background(), &dto.GroupSearchRequest{
				ChatID: -100,
				Text:   tt.text,
			})
			require.NoError(t, err)
			require.Nil(t, result)
			require.Equal(t, 0, env.dramas.findCalls)
		})
	}
}

func TestHandleGroupSearch_ThreeCharacterUnicodeQueryLooksUp(t *testing.T) {
	env := newTestEnv()
	env.dramas.records = []entities.Drama{
		{Name: "사랑의 불시착", ChannelLink: "https://t.me/+kdr"},
	}

	result, err := env.uc.HandleGroupSearch(context.Background(), &dto.GroupSearchRequest{
		ChatID: -100,
		Text:   "사랑의",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, 1, env.dramas.findCalls)
	require.Equal(t, "https://t.me/+kdr", result.ChannelLink)
}

func TestHandleGroupSearch_Match(t *testing.T) {
	env := newTestEnv()
	env.dramas.records = []entities.Drama{
		{Name: "Crash Landing On You", ChannelLink: "https://t.me/+abc"},
	}

	result, err := env.uc.HandleGroupSearch(context.Background(), &dto.GroupSearchRequest{
		ChatID: -100,
		Text:   "Crash Landing",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "Crash Landing On You", result.Name)
	require.Equal(t, "https://t.me/+abc", result.ChannelLink)
}

func TestHandleGroupSearch_MissIsSilent(t *testing.T) {
	env := newTestEnv()
	env.dramas.records = []entities.Drama{{Name: "Goblin"}}

	result, err := env.uc.HandleGroupSearch(context.Background(), &dto.GroupSearchRequest{
		ChatID: -100,
		Text:   "vincenzo",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Equal(t, 1, env.dramas.findCalls)
}

func TestHandleBroadcast_CountsOnlySuccesses(t *testing.T) {
	env := newTestEnv()
	env.users.users = []entities.User{{UserID: 1}, {UserID: 2}, {UserID: 3}}
	env.sender.failFor = map[int64]error{2: errors.New("forbidden: bot was blocked")}

	resp, err := env.uc.HandleBroadcast(context.Background(), &dto.BroadcastRequest{
		UserID:     testAdminID,
		FromChatID: testAdminID,
		MessageID:  10,
		HasReply:   true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Sent)
	require.Equal(t, "broadcast sent to 2 users.", resp.Message)
	require.Equal(t, []int64{1, 3}, env.sender.copied)
}

func TestHandleBroadcast_RequiresReply(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.HandleBroadcast(context.Background(), &dto.BroadcastRequest{
		UserID:   testAdminID,
		HasReply: false,
	})
	require.Error(t, err)
	require.True(t, pkgerrors.IsValidationError(err))
	require.Empty(t, env.sender.copied)
}

func TestHandleRemoveList_ReturnsHexIDs(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID()
	env.dramas.records = []entities.Drama{{ID: id, Name: "Goblin"}}

	resp, err := env.uc.HandleRemoveList(context.Background(), testAdminID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, id.Hex(), resp.Items[0].ID)
	require.Equal(t, "Goblin", resp.Items[0].Name)
}

func TestRemoveDrama_DeletesByID(t *testing.T) {
	env := newTestEnv()
	id := primitive.NewObjectID().Hex()

	resp, err := env.uc.RemoveDrama(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, []string{id}, env.dramas.deleted)
	require.NotEmpty(t, resp.Message)
}

func TestForceSub_OffAndDelete(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.HandleForceSubOff(context.Background(), testAdminID)
	require.NoError(t, err)
	require.True(t, env.forceSub.deleted)

	env.forceSub.deleted = false
	_, err = env.uc.DeleteForceSub(context.Background())
	require.NoError(t, err)
	require.True(t, env.forceSub.deleted)
}

func TestListDramas_FiltersByKind(t *testing.T) {
	env := newTestEnv()
	env.dramas.records = []entities.Drama{
		{Name: "Goblin", Type: entities.KindDrama},
		{Name: "Running Show", Type: entities.KindOngoing},
	}

	dramas, err := env.uc.ListDramas(context.Background(), entities.KindOngoing)
	require.NoError(t, err)
	require.Len(t, dramas, 1)
	require.Equal(t, "Running Show", dramas[0].Name)
}
