package like

// Source tells where a like count was read from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceDatabase Source = "database"
)

// Count is the result of a like-count read, tagged with its origin.
type Count struct {
	Likes  int    `json:"likes"`
	Source Source `json:"-"`
}

const counterKeyPrefix = "album_likes:"

// CounterKey returns the cache key holding the like count for an album.
func CounterKey(albumID string) string {
	return counterKeyPrefix + albumID
}
