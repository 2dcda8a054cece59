package services

import "github.com/google/uuid"

// Entity id prefixes.
const (
	prefixUser         = "user-"
	prefixAlbum        = "album-"
	prefixSong         = "song-"
	prefixPlaylist     = "playlist-"
	prefixLike         = "like-"
	prefixPlaylistSong = "ps-"
)

func newID(prefix string) string {
	return prefix + uuid.NewString()
}
