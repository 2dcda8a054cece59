package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	requireJWT := s.middleware.JWT.RequireJWT()

	s.echo.POST("/users", s.postUser)

	authentications := s.echo.Group("/authentications", s.middleware.RateLimit.Handler())
	authentications.POST("", s.postAuthentication)
	authentications.PUT("", s.putAuthentication)

	albums := s.echo.Group("/albums")
	albums.POST("", s.postAlbum)
	albums.GET("/:id", s.getAlbumByID)
	albums.PUT("/:id", s.putAlbumByID)
	albums.DELETE("/:id", s.deleteAlbumByID)
	albums.POST("/:id/likes", s.postAlbumLike, requireJWT)
	albums.GET("/:id/likes", s.getAlbumLikes)
	albums.DELETE("/:id/likes", s.deleteAlbumLike, requireJWT)

	songs := s.echo.Group("/songs")
	songs.POST("", s.postSong)
	songs.GET("", s.getSongs)
	songs.GET("/:id", s.getSongByID)
	songs.PUT("/:id", s.putSongByID)
	songs.DELETE("/:id", s.deleteSongByID)

	playlists := s.echo.Group("/playlists", requireJWT)
	playlists.POST("", s.postPlaylist)
	playlists.GET("", s.getPlaylists)
	playlists.DELETE("/:id", s.deletePlaylist)
	playlists.POST("/:id/songs", s.postPlaylistSong)
	playlists.GET("/:id/songs", s.getPlaylistSongs)
	playlists.DELETE("/:id/songs", s.deletePlaylistSong)
}
