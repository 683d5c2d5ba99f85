package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAmirthesh/Looped-sub000/internal/api"
	"github.com/SaiAmirthesh/Looped-sub000/internal/handler"
	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/services"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store/sqlstore"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

type fakeAvatars struct {
	uploaded map[string]int
	fail     bool
}

func (f *fakeAvatars) UploadAvatar(_ context.Context, file io.Reader, userID string) (string, error) {
	if f.fail {
		return "", errors.New("upstream down")
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploaded[userID] = len(b)
	return "https://cdn.example/avatars/" + userID + ".jpg", nil
}

func (f *fakeAvatars) DeleteAvatar(_ context.Context, userID string) error {
	delete(f.uploaded, userID)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	svc     *progress.Service
}

func newServer(t *testing.T, avatars services.AvatarUploader) *testServer {
	t.Helper()
	logger.SetOutput(io.Discard)

	st, err := sqlstore.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "looped.db"))
	require.NoError(t, err)
	svc := progress.NewService(st)
	t.Cleanup(func() {
		svc.Wait()
		_ = st.Close()
	})

	h := handler.New(st, svc, avatars)
	return &testServer{t: t, handler: api.SetupRouter(h, st), svc: svc}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) (int, envelope) {
	s.t.Helper()
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func (s *testServer) signup(email string) string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"email": email, "password": "hunter22", "displayName": email,
	})
	require.Equal(s.t, http.StatusCreated, code, env.Error)
	auth := decode[handler.AuthResponse](s.t, env)
	require.NotEmpty(s.t, auth.Token)
	return auth.Token
}

func TestSignupAndLogin(t *testing.T) {
	s := newServer(t, nil)

	code, env := s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"email": "Ada@Example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	auth := decode[handler.AuthResponse](t, env)
	assert.Equal(t, "ada", auth.Profile.DisplayName)
	assert.Equal(t, 1, auth.Profile.Level)
	assert.Equal(t, 100, auth.Profile.NextLevelXP)

	code, _ = s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"email": "ada@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/auth/signup", "", map[string]string{
		"email": "nope", "password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env = s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code, env.Error)
	login := decode[handler.AuthResponse](t, env)
	assert.NotEqual(t, auth.Token, login.Token)

	code, env = s.do(http.MethodGet, "/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, auth.Profile.ID, decode[model.Profile](t, env).ID)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("grace@example.com")

	code, _ := s.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	s := newServer(t, nil)
	for _, path := range []string{"/dashboard", "/profile", "/skills", "/habits", "/calendar/2024/3"} {
		code, env := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		assert.False(t, env.Success)
	}
}

func TestHabitFlow(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("linus@example.com")

	code, _ := s.do(http.MethodPost, "/habits", token, map[string]string{"name": "Read", "skill": "Juggling"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(http.MethodPost, "/habits", token, map[string]string{"name": "Read", "skill": model.SkillMind})
	require.Equal(t, http.StatusCreated, code, env.Error)
	habit := decode[model.Habit](t, env)

	code, env = s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	res := decode[progress.Result](t, env)
	assert.True(t, res.Success)
	assert.Equal(t, 10, res.XPAwarded)
	require.NotNil(t, res.Skill)
	assert.Equal(t, model.SkillMind, res.Skill.Name)

	code, env = s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[progress.Result](t, env).AlreadyDone)

	code, env = s.do(http.MethodGet, "/habits", token, nil)
	require.Equal(t, http.StatusOK, code)
	habits := decode[[]model.HabitWithStatus](t, env)
	require.Len(t, habits, 1)
	assert.True(t, habits[0].CompletedToday)
	assert.Equal(t, 1, habits[0].Streak)

	code, env = s.do(http.MethodDelete, "/habits/"+habit.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, -10, decode[progress.Result](t, env).XPAwarded)

	code, env = s.do(http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, decode[model.Profile](t, env).TotalXP)

	code, _ = s.do(http.MethodDelete, "/habits/"+habit.ID, token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodDelete, "/habits/"+habit.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHabitsAreScopedToOwner(t *testing.T) {
	s := newServer(t, nil)
	alice := s.signup("alice@example.com")
	bob := s.signup("bob@example.com")

	_, env := s.do(http.MethodPost, "/habits", alice, map[string]string{"name": "Stretch"})
	habit := decode[model.Habit](t, env)

	code, _ := s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", bob, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = s.do(http.MethodDelete, "/habits/"+habit.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuestFlow(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("quest@example.com")

	code, _ := s.do(http.MethodPost, "/quests", token, map[string]string{"title": "Boss", "difficulty": "legendary"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(http.MethodPost, "/quests", token, map[string]string{
		"title": "Write the report", "difficulty": "hard", "skill": model.SkillProductivity,
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	quest := decode[model.Quest](t, env)
	assert.Equal(t, 100, quest.XPReward)

	code, env = s.do(http.MethodGet, "/quests", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]model.Quest](t, env), 1)

	code, env = s.do(http.MethodPost, "/quests/"+quest.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	res := decode[progress.Result](t, env)
	assert.Equal(t, 100, res.XPAwarded)
	assert.True(t, res.LevelUp)

	code, env = s.do(http.MethodPost, "/quests/"+quest.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[progress.Result](t, env).AlreadyDone)

	code, _ = s.do(http.MethodPost, "/quests/missing/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	s.svc.Wait()
	code, env = s.do(http.MethodGet, "/skills", token, nil)
	require.Equal(t, http.StatusOK, code)
	for _, sk := range decode[[]model.Skill](t, env) {
		if sk.Name == model.SkillProductivity {
			assert.Equal(t, 2, sk.Level)
			assert.Equal(t, 0, sk.CurrentXP)
		}
	}
}

func TestOversizedAwardsAreRejected(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("greedy@example.com")

	_, env := s.do(http.MethodPost, "/habits", token, map[string]string{"name": "Read"})
	habit := decode[model.Habit](t, env)

	code, _ := s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, map[string]int{"xpEarned": math.MaxInt})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, map[string]int{"xpEarned": xp.MaxAward + 1})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/quests", token, map[string]interface{}{"title": "Jackpot", "xpReward": math.MaxInt})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/focus-sessions", token, map[string]int{"durationMinutes": xp.MaxFocusMinutes + 1})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	profile := decode[model.Profile](t, env)
	assert.Equal(t, 0, profile.TotalXP)
	assert.Equal(t, 1, profile.Level)

	code, env = s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, map[string]int{"xpEarned": xp.MaxAward})
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, xp.MaxAward, decode[progress.Result](t, env).XPAwarded)
}

func TestFocusSessionFlow(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("focus@example.com")

	code, _ := s.do(http.MethodPost, "/focus-sessions", token, map[string]interface{}{"sessionType": "nap"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(http.MethodPost, "/focus-sessions", token, map[string]interface{}{"durationMinutes": 50})
	require.Equal(t, http.StatusCreated, code, env.Error)
	session := decode[model.FocusSession](t, env)
	assert.Equal(t, model.SessionFocus, session.SessionType)

	code, env = s.do(http.MethodPost, "/focus-sessions/"+session.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.Equal(t, 30, decode[progress.Result](t, env).XPAwarded)

	code, env = s.do(http.MethodPost, "/focus-sessions/"+session.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[progress.Result](t, env).AlreadyDone)
}

func TestCalendarAndDashboard(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("cal@example.com")

	_, env := s.do(http.MethodPost, "/habits", token, map[string]string{"name": "Walk"})
	habit := decode[model.Habit](t, env)
	code, _ := s.do(http.MethodPost, "/habits/"+habit.ID+"/complete", token, map[string]int{"xpEarned": 12})
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/reminders", token, map[string]string{"title": "Dentist", "reminderDate": "03/20/2024"})
	assert.Equal(t, http.StatusBadRequest, code)

	today := s.svc.Today()
	code, env = s.do(http.MethodPost, "/reminders", token, map[string]string{
		"title": "Dentist", "reminderDate": today, "reminderTime": "09:30",
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	reminder := decode[model.Reminder](t, env)

	code, env = s.do(http.MethodGet, "/calendar/"+today[:4]+"/"+today[5:7], token, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	month := decode[model.MonthCompletions](t, env)
	assert.Equal(t, []string{today}, month.Dates)
	assert.Equal(t, 12, month.TotalXP)
	require.Len(t, month.Reminders, 1)

	code, _ = s.do(http.MethodGet, "/calendar/2024/13", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, code)
	dash := decode[model.DashboardData](t, env)
	assert.Equal(t, 12, dash.Profile.TotalXP)
	require.Len(t, dash.Habits, 1)
	assert.True(t, dash.Habits[0].CompletedToday)
	assert.Len(t, dash.Skills, len(model.SkillNames))

	code, _ = s.do(http.MethodDelete, "/reminders/"+reminder.ID, token, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestLeaderboardIsPublic(t *testing.T) {
	s := newServer(t, nil)
	first := s.signup("first@example.com")
	s.signup("second@example.com")

	_, env := s.do(http.MethodPost, "/quests", first, map[string]string{"title": "Go", "difficulty": "medium"})
	quest := decode[model.Quest](t, env)
	code, _ := s.do(http.MethodPost, "/quests/"+quest.ID+"/complete", first, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/leaderboard?limit=10", "", nil)
	require.Equal(t, http.StatusOK, code)
	entries := decode[[]model.LeaderboardEntry](t, env)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 50, entries[0].TotalXP)
	assert.Equal(t, 2, entries[1].Rank)
}

func avatarRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="me.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", token)
	return req
}

func TestAvatarUpload(t *testing.T) {
	avatars := &fakeAvatars{uploaded: map[string]int{}}
	s := newServer(t, avatars)
	token := s.signup("pic@example.com")

	code, env := s.serve(avatarRequest(t, token))
	require.Equal(t, http.StatusOK, code, env.Error)
	profile := decode[model.Profile](t, env)
	assert.Equal(t, "https://cdn.example/avatars/"+profile.ID+".jpg", profile.AvatarURL)
	assert.Equal(t, len("fake-jpeg-bytes"), avatars.uploaded[profile.ID])

	code, env = s.do(http.MethodDelete, "/profile/avatar", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[model.Profile](t, env).AvatarURL)
	assert.NotContains(t, avatars.uploaded, profile.ID)

	avatars.fail = true
	code, _ = s.serve(avatarRequest(t, token))
	assert.Equal(t, http.StatusBadGateway, code)
}

func TestAvatarUploadWithoutStorage(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("nopic@example.com")

	code, _ := s.serve(avatarRequest(t, token))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestUpdateProfile(t *testing.T) {
	s := newServer(t, nil)
	token := s.signup("rename@example.com")

	code, _ := s.do(http.MethodPatch, "/profile", token, map[string]string{"displayName": "  "})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(http.MethodPatch, "/profile", token, map[string]string{"displayName": "Renamed"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Renamed", decode[model.Profile](t, env).DisplayName)
}

func TestUnknownRoute(t *testing.T) {
	s := newServer(t, nil)
	code, env := s.do(http.MethodGet, "/nope/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}
