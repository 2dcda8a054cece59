package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	config "github.com/openmusic/openmusic-api/configs"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
	"github.com/openmusic/openmusic-api/internal/core/domain/like"
	"github.com/openmusic/openmusic-api/internal/core/domain/user"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	om_http "github.com/openmusic/openmusic-api/internal/infrastructure/httpserver"
	"github.com/openmusic/openmusic-api/internal/infrastructure/tokenize"
	"github.com/openmusic/openmusic-api/test/mocks"
)

const accessKey = "access-secret"

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, deps om_http.ServerDeps) *echo.Echo {
	t.Helper()
	if deps.UserService == nil {
		deps.UserService = &mocks.UserServiceMock{}
	}
	if deps.AuthService == nil {
		deps.AuthService = &mocks.AuthServiceMock{}
	}
	if deps.AlbumService == nil {
		deps.AlbumService = &mocks.AlbumServiceMock{}
	}
	if deps.AlbumLikeService == nil {
		deps.AlbumLikeService = &mocks.AlbumLikeServiceMock{}
	}
	if deps.SongService == nil {
		deps.SongService = &mocks.SongServiceMock{}
	}
	if deps.PlaylistService == nil {
		deps.PlaylistService = &mocks.PlaylistServiceMock{}
	}
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	srv := om_http.NewServer(&om_http.ServerConfig{Host: "127.0.0.1", Port: "0", ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second}, accessKey, logger, deps)
	return srv.Echo()
}

func accessTokenFor(t *testing.T, userID string) string {
	t.Helper()
	m, err := tokenize.NewTokenManager(&config.JWTConfig{
		AccessTokenKey:  accessKey,
		RefreshTokenKey: "refresh-secret",
		AccessTokenAge:  time.Minute,
		RefreshTokenAge: time.Hour,
	})
	require.NoError(t, err)
	token, err := m.GenerateAccessToken(auth.NewUserPayload(userID))
	require.NoError(t, err)
	return token
}

func do(t *testing.T, e *echo.Echo, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestGetAlbumLikes_SetsDataSourceHeader(t *testing.T) {
	sources := []like.Source{like.SourceDatabase, like.SourceCache}
	calls := 0
	likes := &mocks.AlbumLikeServiceMock{GetAlbumLikesFn: func(ctx context.Context, albumID string) (*like.Count, error) {
		src := sources[calls]
		calls++
		return &like.Count{Likes: 3, Source: src}, nil
	}}
	e := newTestServer(t, om_http.ServerDeps{AlbumLikeService: likes})

	rec, env := do(t, e, http.MethodGet, "/albums/album-1/likes", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "database", rec.Header().Get(om_http.HeaderDataSource))
	require.Equal(t, "success", env.Status)
	require.JSONEq(t, `{"likes":3}`, string(env.Data))

	rec, _ = do(t, e, http.MethodGet, "/albums/album-1/likes", nil, "")
	require.Equal(t, "cache", rec.Header().Get(om_http.HeaderDataSource))
}

func TestGetAlbumLikes_UnknownAlbum(t *testing.T) {
	e := newTestServer(t, om_http.ServerDeps{})

	rec, env := do(t, e, http.MethodGet, "/albums/album-x/likes", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "fail", env.Status)
	require.Empty(t, rec.Header().Get(om_http.HeaderDataSource))
}

func TestPostAlbumLike_RequiresAccessToken(t *testing.T) {
	likes := &mocks.AlbumLikeServiceMock{LikeAlbumFn: func(ctx context.Context, albumID, userID string) error {
		t.Fatal("like should not be called without a token")
		return nil
	}}
	e := newTestServer(t, om_http.ServerDeps{AlbumLikeService: likes})

	rec, env := do(t, e, http.MethodPost, "/albums/album-1/likes", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "fail", env.Status)
}

func TestPostAlbumLike(t *testing.T) {
	var gotAlbum, gotUser string
	likes := &mocks.AlbumLikeServiceMock{LikeAlbumFn: func(ctx context.Context, albumID, userID string) error {
		gotAlbum, gotUser = albumID, userID
		return nil
	}}
	e := newTestServer(t, om_http.ServerDeps{AlbumLikeService: likes})

	rec, env := do(t, e, http.MethodPost, "/albums/album-1/likes", nil, accessTokenFor(t, "user-9"))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "success", env.Status)
	require.Equal(t, "album-1", gotAlbum)
	require.Equal(t, "user-9", gotUser)
}

func TestPostAlbumLike_ErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err    error
		code   int
		status string
	}{
		"already liked": {apperrors.ErrAlreadyLiked, http.StatusBadRequest, "fail"},
		"write failed":  {apperrors.ErrWriteFailed, http.StatusBadRequest, "fail"},
		"not found":     {apperrors.ErrNotFound, http.StatusNotFound, "fail"},
		"unexpected":    {errors.New("boom"), http.StatusInternalServerError, "error"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			likes := &mocks.AlbumLikeServiceMock{LikeAlbumFn: func(ctx context.Context, albumID, userID string) error {
				return tc.err
			}}
			e := newTestServer(t, om_http.ServerDeps{AlbumLikeService: likes})

			rec, env := do(t, e, http.MethodPost, "/albums/album-1/likes", nil, accessTokenFor(t, "user-1"))
			require.Equal(t, tc.code, rec.Code)
			require.Equal(t, tc.status, env.Status)
			require.NotEmpty(t, env.Message)
		})
	}
}

func TestDeleteAlbumLike(t *testing.T) {
	likes := &mocks.AlbumLikeServiceMock{UnlikeAlbumFn: func(ctx context.Context, albumID, userID string) error {
		return apperrors.ErrNotFound
	}}
	e := newTestServer(t, om_http.ServerDeps{AlbumLikeService: likes})

	rec, _ := do(t, e, http.MethodDelete, "/albums/album-1/likes", nil, accessTokenFor(t, "user-1"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostUser(t *testing.T) {
	users := &mocks.UserServiceMock{AddUserFn: func(ctx context.Context, req *user.CreateUserRequest) (string, error) {
		return "user-1", nil
	}}
	e := newTestServer(t, om_http.ServerDeps{UserService: users})

	rec, env := do(t, e, http.MethodPost, "/users", map[string]string{"username": "dicoding", "password": "secret", "fullname": "Dicoding"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"userId":"user-1"}`, string(env.Data))

	rec, env = do(t, e, http.MethodPost, "/users", map[string]string{"username": "dicoding"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "fail", env.Status)
}

func TestAuthentications(t *testing.T) {
	authSvc := &mocks.AuthServiceMock{
		LoginFn: func(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
			if req.Password != "secret" {
				return nil, apperrors.ErrInvalidCredentials
			}
			return &auth.AuthTokens{AccessToken: "a", RefreshToken: "r"}, nil
		},
		RefreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			if refreshToken != "r" {
				return "", apperrors.ErrInvalidToken
			}
			return "a2", nil
		},
	}
	e := newTestServer(t, om_http.ServerDeps{AuthService: authSvc})

	rec, env := do(t, e, http.MethodPost, "/authentications", map[string]string{"username": "dicoding", "password": "secret"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"accessToken":"a","refreshToken":"r"}`, string(env.Data))

	rec, _ = do(t, e, http.MethodPost, "/authentications", map[string]string{"username": "dicoding", "password": "bad"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, e, http.MethodPut, "/authentications", map[string]string{"refreshToken": "r"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"accessToken":"a2"}`, string(env.Data))

	rec, _ = do(t, e, http.MethodPut, "/authentications", map[string]string{"refreshToken": "x"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAlbumByID(t *testing.T) {
	albums := &mocks.AlbumServiceMock{GetAlbumByIDFn: func(ctx context.Context, id string) (*album.AlbumWithSongs, error) {
		return &album.AlbumWithSongs{Album: album.Album{ID: id, Name: "Viva la Vida", Year: 2008}}, nil
	}}
	e := newTestServer(t, om_http.ServerDeps{AlbumService: albums})

	rec, env := do(t, e, http.MethodGet, "/albums/album-1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"album":{"id":"album-1","name":"Viva la Vida","year":2008,"coverUrl":null,"songs":null}}`, string(env.Data))
}

func TestPostAlbum_RejectsInvalidYear(t *testing.T) {
	e := newTestServer(t, om_http.ServerDeps{})

	rec, env := do(t, e, http.MethodPost, "/albums", map[string]any{"name": "X", "year": "not-a-year"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "fail", env.Status)
}

func TestPlaylists_ForbiddenForNonOwner(t *testing.T) {
	playlists := &mocks.PlaylistServiceMock{DeletePlaylistFn: func(ctx context.Context, id, owner string) error {
		return apperrors.ErrForbidden
	}}
	e := newTestServer(t, om_http.ServerDeps{PlaylistService: playlists})

	rec, env := do(t, e, http.MethodDelete, "/playlists/playlist-1", nil, accessTokenFor(t, "user-2"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "fail", env.Status)

	rec, _ = do(t, e, http.MethodGet, "/playlists", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

type failingChecker struct{}

func (failingChecker) Name() string                    { return "redis" }
func (failingChecker) Check(ctx context.Context) error { return errors.New("down") }

func TestHealth_Degraded(t *testing.T) {
	e := newTestServer(t, om_http.ServerDeps{HealthCheckers: []ports.HealthChecker{failingChecker{}}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "fail", env.Status)

	var report struct {
		State        string                    `json:"state"`
		Dependencies map[string]map[string]any `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Equal(t, "degraded", report.State)
	require.Equal(t, "unhealthy", report.Dependencies["redis"]["state"])
}

type okChecker struct{ name string }

func (c okChecker) Name() string                  { return c.name }
func (okChecker) Check(ctx context.Context) error { return nil }

func TestHealth_HealthyReportsCacheBackend(t *testing.T) {
	e := newTestServer(t, om_http.ServerDeps{
		HealthCheckers: []ports.HealthChecker{okChecker{"database"}, okChecker{"cache:mock"}},
		Cache:          &mocks.CacheMock{},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "success", env.Status)

	var report struct {
		State        string                    `json:"state"`
		Service      string                    `json:"service"`
		CacheBackend string                    `json:"cacheBackend"`
		Dependencies map[string]map[string]any `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	require.Equal(t, "healthy", report.State)
	require.Equal(t, "openmusic-api", report.Service)
	require.Equal(t, "mock", report.CacheBackend)
	require.Len(t, report.Dependencies, 2)
	require.Equal(t, "healthy", report.Dependencies["cache:mock"]["state"])
}
