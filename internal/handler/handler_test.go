package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/app/chat"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/configs"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/errs"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/randx"
)

type envelope struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type testApp struct {
	deps   *AppDeps
	router http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	staticDir := t.TempDir()
	for _, page := range []string{"index.html", "username.html", "chat.html"} {
		err := os.WriteFile(filepath.Join(staticDir, page), []byte("<html>"+page+"</html>"), 0o644)
		require.NoError(t, err)
	}

	registry := chat.NewRegistry()
	deps := &AppDeps{
		Registry: registry,
		Store:    chat.NewStore(registry),
		Config: &configs.AppConfig{
			Environment: "development",
			Port:        8080,
			StaticDir:   staticDir,
		},
	}

	return &testApp{deps: deps, router: Router(deps)}
}

func (app *testApp) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (app *testApp) register(t *testing.T, displayName string) string {
	t.Helper()

	rec, env := app.do(t, http.MethodPost, "/api/auth/register", "",
		fmt.Sprintf(`{"displayName":%q}`, displayName))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, env.Code)

	token, ok := env.Data["authKey"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func (app *testApp) createRoom(t *testing.T, token string) (int, string) {
	t.Helper()

	rec, env := app.do(t, http.MethodPost, "/api/chat/create", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, env.Code)

	id, ok := env.Data["chatId"].(float64)
	require.True(t, ok)
	secret, ok := env.Data["secret"].(string)
	require.True(t, ok)
	return int(id), secret
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "ok", env.Data["status"])
}

func TestRegister_ReturnsAuthKey(t *testing.T) {
	app := newTestApp(t)

	token := app.register(t, "Alice")

	name, ok := app.deps.Registry.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestRegister_RejectsBlankName(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/auth/register", "", `{"displayName":"   "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrDisplayNameInvalid, env.Code)
}

func TestRegister_RejectsNonJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("displayName=Alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, errs.ErrUnsupportedMediaType, env.Code)
}

func TestCreateRoom_AnonymousIsSentToRegister(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/chat/create", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.ErrCredentialRequired, env.Code)
	assert.Equal(t, RegisterPagePath, env.Data["redirect"])
}

func TestCreateRoom_SentinelTokenIsAnonymous(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/chat/create", "null", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.ErrCredentialRequired, env.Code)
}

func TestCreateRoom_Success(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alice")

	id, secret := app.createRoom(t, token)

	assert.Equal(t, 0, id, "first room gets id 0")
	assert.Len(t, secret, randx.PassphraseLength)
	assert.True(t, randx.IsWellFormedPassphrase(secret))

	room := app.deps.Store.Get(id)
	require.NotNil(t, room)
	assert.True(t, room.IsMember(token), "creator becomes first authorized member")
}

func TestFetchMessages_UnknownRoom(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodGet, "/api/chat/7/messages", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errs.ErrChatNotFound, env.Code)
}

func TestFetchMessages_EmptyRoomHasExplicitMarker(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alice")
	id, _ := app.createRoom(t, token)

	rec, env := app.do(t, http.MethodGet, fmt.Sprintf("/api/chat/%d/messages", id), "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, true, env.Data["empty"])
	assert.Empty(t, env.Data["messages"])
}

func TestPostMessage_RequiresKnownCredential(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alice")
	id, _ := app.createRoom(t, token)

	rec, env := app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id),
		"", `{"body":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.ErrCredentialUnknown, env.Code)

	rec, env = app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id),
		"made-up-token", `{"body":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.ErrCredentialUnknown, env.Code)
}

func TestPostMessage_EmptyBodyIsRejectedNoOp(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alice")
	id, _ := app.createRoom(t, token)

	rec, env := app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id),
		token, `{"body":"  "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrMessageBodyEmpty, env.Code)

	room := app.deps.Store.Get(id)
	require.NotNil(t, room)
	assert.Empty(t, room.Messages())
}

func TestPostMessage_TooLongIsRejected(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alice")
	id, _ := app.createRoom(t, token)

	body := fmt.Sprintf(`{"body":%q}`, strings.Repeat("a", MaxMessageBytes+1))
	rec, env := app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id), token, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrMessageBodyTooLong, env.Code)
}

func TestAuthenticateEndpoint_Outcomes(t *testing.T) {
	app := newTestApp(t)
	creator := app.register(t, "Alice")
	id, secret := app.createRoom(t, creator)

	authenticate := func(token, secret string, roomID any) (int, envelope) {
		rec, env := app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%v/auth", roomID),
			token, fmt.Sprintf(`{"secret":%q}`, secret))
		return rec.Code, env
	}

	// Unknown room: fail, regardless of inputs.
	status, env := authenticate(creator, secret, 99)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "fail", env.Data["authentication"])

	// Member with garbled secret: success.
	status, env = authenticate(creator, "garbled", id)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Data["authentication"])

	// Anonymous visitor with the right secret: pending, not a member.
	status, env = authenticate("", secret, id)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pending", env.Data["authentication"])
	assert.Equal(t, 1, app.deps.Store.Get(id).MemberCount())

	// Registered visitor with the right secret: success and joined.
	joiner := app.register(t, "Bob")
	status, env = authenticate(joiner, secret, id)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Data["authentication"])
	assert.True(t, app.deps.Store.Get(id).IsMember(joiner))

	// Registered visitor with the wrong secret: fail.
	outsider := app.register(t, "Mallory")
	status, env = authenticate(outsider, "wrong", id)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "fail", env.Data["authentication"])
	assert.False(t, app.deps.Store.Get(id).IsMember(outsider))

	// Malformed id is a caller error, not an outcome.
	status, env = authenticate(creator, secret, "abc")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, errs.ErrInvalidParams, env.Code)
}

func TestEndToEndScenario(t *testing.T) {
	app := newTestApp(t)

	tokenA := app.register(t, "Alice")
	id, secret := app.createRoom(t, tokenA)
	require.Equal(t, 0, id)

	rec, env := app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id),
		tokenA, `{"body":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, env.Code)

	tokenB := app.register(t, "Bob")
	_, env = app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/auth", id),
		tokenB, fmt.Sprintf(`{"secret":%q}`, secret))
	require.Equal(t, "success", env.Data["authentication"])

	_, env = app.do(t, http.MethodPost, fmt.Sprintf("/api/chat/%d/messages", id),
		tokenB, `{"body":"hey"}`)
	require.Equal(t, 0, env.Code)

	_, env = app.do(t, http.MethodGet, fmt.Sprintf("/api/chat/%d/messages", id), "", "")
	require.Equal(t, 0, env.Code)
	assert.Equal(t, false, env.Data["empty"])

	messages, ok := env.Data["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	assert.Equal(t, "Alice", first["displayName"])
	assert.Equal(t, "hi", first["body"])
	assert.Equal(t, "Bob", second["displayName"])
	assert.Equal(t, "hey", second["body"])
}

func TestChatPage_RedirectsForUnknownRoom(t *testing.T) {
	app := newTestApp(t)

	rec, _ := app.do(t, http.MethodGet, "/chat/0", "", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	token := app.register(t, "Alice")
	id, _ := app.createRoom(t, token)

	rec, _ = app.do(t, http.MethodGet, fmt.Sprintf("/chat/%d", id), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat.html")
}

func TestStaticPages(t *testing.T) {
	app := newTestApp(t)

	rec, _ := app.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "index.html")

	rec, _ = app.do(t, http.MethodGet, "/username", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "username.html")
}
