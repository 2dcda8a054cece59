package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/infrastructure/httpserver/helpers"
)

// HeaderDataSource reports whether a like count came from the cache or the database.
const HeaderDataSource = "X-Data-Source"

func (s *Server) postAlbum(c echo.Context) error {
	var req album.AlbumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	albumID, err := s.albumSvc.AddAlbum(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, map[string]string{"albumId": albumID})
}

func (s *Server) getAlbumByID(c echo.Context) error {
	a, err := s.albumSvc.GetAlbumByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]any{"album": a})
}

func (s *Server) putAlbumByID(c echo.Context) error {
	var req album.AlbumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.albumSvc.EditAlbumByID(c.Request().Context(), c.Param("id"), &req); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Album updated")
}

func (s *Server) deleteAlbumByID(c echo.Context) error {
	if err := s.albumSvc.DeleteAlbumByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Album deleted")
}

func (s *Server) postAlbumLike(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := s.likeSvc.LikeAlbum(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Album liked")
}

func (s *Server) getAlbumLikes(c echo.Context) error {
	count, err := s.likeSvc.GetAlbumLikes(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	likeReadsTotal.WithLabelValues(string(count.Source)).Inc()
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"album_id": c.Param("id"), "source": count.Source}).Debug("album likes served")
	}
	c.Response().Header().Set(HeaderDataSource, string(count.Source))
	return respondData(c, http.StatusOK, map[string]int{"likes": count.Likes})
}

func (s *Server) deleteAlbumLike(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := s.likeSvc.UnlikeAlbum(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Album unliked")
}
