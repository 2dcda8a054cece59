package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
	"github.com/openmusic/openmusic-api/internal/core/domain/like"
	"github.com/openmusic/openmusic-api/internal/core/domain/playlist"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/domain/user"
)

// UserRepositoryMock is a lightweight mock for UserRepository
type UserRepositoryMock struct {
	CreateFn        func(ctx context.Context, u *user.User) error
	GetByIDFn       func(ctx context.Context, id string) (*user.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*user.User, error)
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *UserRepositoryMock) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, apperrors.ErrNotFound
}

// AlbumRepositoryMock is a lightweight mock for AlbumRepository
type AlbumRepositoryMock struct {
	CreateFn  func(ctx context.Context, a *album.Album) error
	GetByIDFn func(ctx context.Context, id string) (*album.Album, error)
	UpdateFn  func(ctx context.Context, a *album.Album) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *AlbumRepositoryMock) Create(ctx context.Context, a *album.Album) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *AlbumRepositoryMock) GetByID(ctx context.Context, id string) (*album.Album, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *AlbumRepositoryMock) Update(ctx context.Context, a *album.Album) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, a)
	}
	return nil
}
func (m *AlbumRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// SongRepositoryMock is a lightweight mock for SongRepository
type SongRepositoryMock struct {
	CreateFn      func(ctx context.Context, s *song.Song) error
	GetByIDFn     func(ctx context.Context, id string) (*song.Song, error)
	ListFn        func(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error)
	ListByAlbumFn func(ctx context.Context, albumID string) ([]song.SongSummary, error)
	UpdateFn      func(ctx context.Context, s *song.Song) error
	DeleteFn      func(ctx context.Context, id string) error
}

func (m *SongRepositoryMock) Create(ctx context.Context, s *song.Song) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *SongRepositoryMock) GetByID(ctx context.Context, id string) (*song.Song, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *SongRepositoryMock) List(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, nil
}
func (m *SongRepositoryMock) ListByAlbum(ctx context.Context, albumID string) ([]song.SongSummary, error) {
	if m.ListByAlbumFn != nil {
		return m.ListByAlbumFn(ctx, albumID)
	}
	return nil, nil
}
func (m *SongRepositoryMock) Update(ctx context.Context, s *song.Song) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, s)
	}
	return nil
}
func (m *SongRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// PlaylistRepositoryMock is a lightweight mock for PlaylistRepository
type PlaylistRepositoryMock struct {
	CreateFn      func(ctx context.Context, p *playlist.Playlist) error
	GetByIDFn     func(ctx context.Context, id string) (*playlist.Playlist, error)
	GetSummaryFn  func(ctx context.Context, id string) (*playlist.PlaylistSummary, error)
	ListByOwnerFn func(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error)
	DeleteFn      func(ctx context.Context, id string) error
	AddSongFn     func(ctx context.Context, id, playlistID, songID string) error
	ListSongsFn   func(ctx context.Context, playlistID string) ([]song.SongSummary, error)
	RemoveSongFn  func(ctx context.Context, playlistID, songID string) error
}

func (m *PlaylistRepositoryMock) Create(ctx context.Context, p *playlist.Playlist) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PlaylistRepositoryMock) GetByID(ctx context.Context, id string) (*playlist.Playlist, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *PlaylistRepositoryMock) GetSummary(ctx context.Context, id string) (*playlist.PlaylistSummary, error) {
	if m.GetSummaryFn != nil {
		return m.GetSummaryFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *PlaylistRepositoryMock) ListByOwner(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, owner)
	}
	return nil, nil
}
func (m *PlaylistRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *PlaylistRepositoryMock) AddSong(ctx context.Context, id, playlistID, songID string) error {
	if m.AddSongFn != nil {
		return m.AddSongFn(ctx, id, playlistID, songID)
	}
	return nil
}
func (m *PlaylistRepositoryMock) ListSongs(ctx context.Context, playlistID string) ([]song.SongSummary, error) {
	if m.ListSongsFn != nil {
		return m.ListSongsFn(ctx, playlistID)
	}
	return nil, nil
}
func (m *PlaylistRepositoryMock) RemoveSong(ctx context.Context, playlistID, songID string) error {
	if m.RemoveSongFn != nil {
		return m.RemoveSongFn(ctx, playlistID, songID)
	}
	return nil
}

// AlbumLikeRepositoryMock is a lightweight mock for AlbumLikeRepository
type AlbumLikeRepositoryMock struct {
	CountByAlbumFn func(ctx context.Context, albumID string) (int, error)
	AddFn          func(ctx context.Context, id, albumID, userID string) (int64, error)
	RemoveFn       func(ctx context.Context, albumID, userID string) (int64, error)
	ExistsFn       func(ctx context.Context, albumID, userID string) (bool, error)
}

func (m *AlbumLikeRepositoryMock) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	if m.CountByAlbumFn != nil {
		return m.CountByAlbumFn(ctx, albumID)
	}
	return 0, nil
}
func (m *AlbumLikeRepositoryMock) Add(ctx context.Context, id, albumID, userID string) (int64, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, id, albumID, userID)
	}
	return 1, nil
}
func (m *AlbumLikeRepositoryMock) Remove(ctx context.Context, albumID, userID string) (int64, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, albumID, userID)
	}
	return 1, nil
}
func (m *AlbumLikeRepositoryMock) Exists(ctx context.Context, albumID, userID string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, albumID, userID)
	}
	return false, nil
}

// CacheMock is a lightweight mock for Cache; the zero value behaves as an always-empty cache.
type CacheMock struct {
	GetFn    func(ctx context.Context, key string) (string, bool, error)
	SetFn    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
}

func (m *CacheMock) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return "", false, nil
}
func (m *CacheMock) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	return nil
}
func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}
func (m *CacheMock) Name() string { return "mock" }

// TokenManagerMock is a lightweight mock for TokenManager
type TokenManagerMock struct {
	GenerateAccessTokenFn  func(payload auth.TokenPayload) (string, error)
	GenerateRefreshTokenFn func(payload auth.TokenPayload) (string, error)
	VerifyRefreshTokenFn   func(token string) (auth.TokenPayload, error)
}

func (m *TokenManagerMock) GenerateAccessToken(payload auth.TokenPayload) (string, error) {
	if m.GenerateAccessTokenFn != nil {
		return m.GenerateAccessTokenFn(payload)
	}
	return "access-token", nil
}
func (m *TokenManagerMock) GenerateRefreshToken(payload auth.TokenPayload) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(payload)
	}
	return "refresh-token", nil
}
func (m *TokenManagerMock) VerifyRefreshToken(token string) (auth.TokenPayload, error) {
	if m.VerifyRefreshTokenFn != nil {
		return m.VerifyRefreshTokenFn(token)
	}
	return nil, apperrors.ErrInvalidToken
}

// UserServiceMock is a lightweight mock for UserService
type UserServiceMock struct {
	AddUserFn          func(ctx context.Context, req *user.CreateUserRequest) (string, error)
	VerifyCredentialFn func(ctx context.Context, username, password string) (string, error)
}

func (m *UserServiceMock) AddUser(ctx context.Context, req *user.CreateUserRequest) (string, error) {
	if m.AddUserFn != nil {
		return m.AddUserFn(ctx, req)
	}
	return "", fmt.Errorf("not implemented")
}
func (m *UserServiceMock) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	if m.VerifyCredentialFn != nil {
		return m.VerifyCredentialFn(ctx, username, password)
	}
	return "", apperrors.ErrInvalidCredentials
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	LoginFn   func(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshFn func(ctx context.Context, refreshToken string) (string, error)
}

func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *AuthServiceMock) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, refreshToken)
	}
	return "", fmt.Errorf("not implemented")
}

// AlbumServiceMock is a lightweight mock for AlbumService
type AlbumServiceMock struct {
	AddAlbumFn        func(ctx context.Context, req *album.AlbumRequest) (string, error)
	GetAlbumByIDFn    func(ctx context.Context, id string) (*album.AlbumWithSongs, error)
	EditAlbumByIDFn   func(ctx context.Context, id string, req *album.AlbumRequest) error
	DeleteAlbumByIDFn func(ctx context.Context, id string) error
}

func (m *AlbumServiceMock) AddAlbum(ctx context.Context, req *album.AlbumRequest) (string, error) {
	if m.AddAlbumFn != nil {
		return m.AddAlbumFn(ctx, req)
	}
	return "", fmt.Errorf("not implemented")
}
func (m *AlbumServiceMock) GetAlbumByID(ctx context.Context, id string) (*album.AlbumWithSongs, error) {
	if m.GetAlbumByIDFn != nil {
		return m.GetAlbumByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *AlbumServiceMock) EditAlbumByID(ctx context.Context, id string, req *album.AlbumRequest) error {
	if m.EditAlbumByIDFn != nil {
		return m.EditAlbumByIDFn(ctx, id, req)
	}
	return nil
}
func (m *AlbumServiceMock) DeleteAlbumByID(ctx context.Context, id string) error {
	if m.DeleteAlbumByIDFn != nil {
		return m.DeleteAlbumByIDFn(ctx, id)
	}
	return nil
}

// AlbumLikeServiceMock is a lightweight mock for AlbumLikeService
type AlbumLikeServiceMock struct {
	GetAlbumLikesFn func(ctx context.Context, albumID string) (*like.Count, error)
	LikeAlbumFn     func(ctx context.Context, albumID, userID string) error
	UnlikeAlbumFn   func(ctx context.Context, albumID, userID string) error
}

func (m *AlbumLikeServiceMock) GetAlbumLikes(ctx context.Context, albumID string) (*like.Count, error) {
	if m.GetAlbumLikesFn != nil {
		return m.GetAlbumLikesFn(ctx, albumID)
	}
	return nil, apperrors.ErrNotFound
}
func (m *AlbumLikeServiceMock) LikeAlbum(ctx context.Context, albumID, userID string) error {
	if m.LikeAlbumFn != nil {
		return m.LikeAlbumFn(ctx, albumID, userID)
	}
	return nil
}
func (m *AlbumLikeServiceMock) UnlikeAlbum(ctx context.Context, albumID, userID string) error {
	if m.UnlikeAlbumFn != nil {
		return m.UnlikeAlbumFn(ctx, albumID, userID)
	}
	return nil
}

// SongServiceMock is a lightweight mock for SongService
type SongServiceMock struct {
	AddSongFn        func(ctx context.Context, req *song.SongRequest) (string, error)
	GetSongsFn       func(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error)
	GetSongByIDFn    func(ctx context.Context, id string) (*song.Song, error)
	EditSongByIDFn   func(ctx context.Context, id string, req *song.SongRequest) error
	DeleteSongByIDFn func(ctx context.Context, id string) error
}

func (m *SongServiceMock) AddSong(ctx context.Context, req *song.SongRequest) (string, error) {
	if m.AddSongFn != nil {
		return m.AddSongFn(ctx, req)
	}
	return "", fmt.Errorf("not implemented")
}
func (m *SongServiceMock) GetSongs(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error) {
	if m.GetSongsFn != nil {
		return m.GetSongsFn(ctx, filter)
	}
	return []song.SongSummary{}, nil
}
func (m *SongServiceMock) GetSongByID(ctx context.Context, id string) (*song.Song, error) {
	if m.GetSongByIDFn != nil {
		return m.GetSongByIDFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}
func (m *SongServiceMock) EditSongByID(ctx context.Context, id string, req *song.SongRequest) error {
	if m.EditSongByIDFn != nil {
		return m.EditSongByIDFn(ctx, id, req)
	}
	return nil
}
func (m *SongServiceMock) DeleteSongByID(ctx context.Context, id string) error {
	if m.DeleteSongByIDFn != nil {
		return m.DeleteSongByIDFn(ctx, id)
	}
	return nil
}

// PlaylistServiceMock is a lightweight mock for PlaylistService
type PlaylistServiceMock struct {
	AddPlaylistFn            func(ctx context.Context, req *playlist.CreatePlaylistRequest, owner string) (string, error)
	GetPlaylistsFn           func(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error)
	DeletePlaylistFn         func(ctx context.Context, id, owner string) error
	AddSongToPlaylistFn      func(ctx context.Context, id, songID, owner string) error
	GetPlaylistSongsFn       func(ctx context.Context, id, owner string) (*playlist.PlaylistWithSongs, error)
	DeleteSongFromPlaylistFn func(ctx context.Context, id, songID, owner string) error
}

func (m *PlaylistServiceMock) AddPlaylist(ctx context.Context, req *playlist.CreatePlaylistRequest, owner string) (string, error) {
	if m.AddPlaylistFn != nil {
		return m.AddPlaylistFn(ctx, req, owner)
	}
	return "", fmt.Errorf("not implemented")
}
func (m *PlaylistServiceMock) GetPlaylists(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error) {
	if m.GetPlaylistsFn != nil {
		return m.GetPlaylistsFn(ctx, owner)
	}
	return []playlist.PlaylistSummary{}, nil
}
func (m *PlaylistServiceMock) DeletePlaylist(ctx context.Context, id, owner string) error {
	if m.DeletePlaylistFn != nil {
		return m.DeletePlaylistFn(ctx, id, owner)
	}
	return nil
}
func (m *PlaylistServiceMock) AddSongToPlaylist(ctx context.Context, id, songID, owner string) error {
	if m.AddSongToPlaylistFn != nil {
		return m.AddSongToPlaylistFn(ctx, id, songID, owner)
	}
	return nil
}
func (m *PlaylistServiceMock) GetPlaylistSongs(ctx context.Context, id, owner string) (*playlist.PlaylistWithSongs, error) {
	if m.GetPlaylistSongsFn != nil {
		return m.GetPlaylistSongsFn(ctx, id, owner)
	}
	return nil, apperrors.ErrNotFound
}
func (m *PlaylistServiceMock) DeleteSongFromPlaylist(ctx context.Context, id, songID, owner string) error {
	if m.DeleteSongFromPlaylistFn != nil {
		return m.DeleteSongFromPlaylistFn(ctx, id, songID, owner)
	}
	return nil
}

// RateLimitRepositoryMock is a lightweight mock for RateLimitRepository
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, key, window)
	}
	return 1, time.Now().Truncate(window), nil
}

// RateLimiterMock is a lightweight mock for RateLimiterService
type RateLimiterMock struct {
	AllowFn func(ctx context.Context, subject string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterMock) Allow(ctx context.Context, subject string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, subject)
	}
	return true, 1, 1, time.Now().Add(time.Minute), nil
}
