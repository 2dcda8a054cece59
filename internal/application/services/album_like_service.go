package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/like"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// AlbumLikeService serves like counters cache-aside over the likes table.
// A write always deletes the counter key before returning.
type AlbumLikeService struct {
	likes  ports.AlbumLikeRepository
	albums ports.AlbumRepository
	cache  ports.Cache
	logger *logrus.Logger
	sf     singleflight.Group
}

func NewAlbumLikeService(likes ports.AlbumLikeRepository, albums ports.AlbumRepository, cache ports.Cache, logger *logrus.Logger) *AlbumLikeService {
	return &AlbumLikeService{likes: likes, albums: albums, cache: cache, logger: logger}
}

func (s *AlbumLikeService) GetAlbumLikes(ctx context.Context, albumID string) (*like.Count, error) {
	key := like.CounterKey(albumID)

	if likes, ok := s.cachedCount(ctx, key); ok {
		return &like.Count{Likes: likes, Source: like.SourceCache}, nil
	}

	// The flight is shared, so one caller going away must not fail the others.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		count, err := s.likes.CountByAlbum(flightCtx, albumID)
		if err != nil {
			return 0, err
		}
		if err := s.cache.Set(flightCtx, key, strconv.Itoa(count), 0); err != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key, "backend": s.cache.Name()}).WithError(err).Warn("cache: failed to store album likes")
		}
		return count, nil
	})
	if err != nil {
		return nil, err
	}
	return &like.Count{Likes: v.(int), Source: like.SourceDatabase}, nil
}

// cachedCount reports a usable cached counter; backend errors and unparsable values count as misses.
func (s *AlbumLikeService) cachedCount(ctx context.Context, key string) (int, bool) {
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key, "backend": s.cache.Name()}).WithError(err).Warn("cache: get failed, reading from database")
		}
		return 0, false
	}
	if !found {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key}).Debug("cache miss")
		}
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("cache: discarding malformed like counter")
		}
		return 0, false
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key}).Debug("cache hit")
	}
	return n, true
}

func (s *AlbumLikeService) LikeAlbum(ctx context.Context, albumID, userID string) error {
	if _, err := s.albums.GetByID(ctx, albumID); err != nil {
		return err
	}

	liked, err := s.likes.Exists(ctx, albumID, userID)
	if err != nil {
		return err
	}
	if liked {
		return fmt.Errorf("%w: album %s", apperrors.ErrAlreadyLiked, albumID)
	}

	rows, err := s.likes.Add(ctx, newID(prefixLike), albumID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWriteFailed, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: like was not stored", apperrors.ErrWriteFailed)
	}

	s.invalidate(ctx, albumID)
	return nil
}

func (s *AlbumLikeService) UnlikeAlbum(ctx context.Context, albumID, userID string) error {
	rows, err := s.likes.Remove(ctx, albumID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: like on album %s", apperrors.ErrNotFound, albumID)
	}

	s.invalidate(ctx, albumID)
	return nil
}

// invalidate runs after the write has committed, so a failure is only logged.
// Forgetting the key keeps later reads from joining a count that started before the write.
func (s *AlbumLikeService) invalidate(ctx context.Context, albumID string) {
	key := like.CounterKey(albumID)
	s.sf.Forget(key)
	if err := s.cache.Delete(ctx, key); err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "backend": s.cache.Name()}).WithError(err).Warn("cache: failed to invalidate album likes")
	}
}
