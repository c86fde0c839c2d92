package constants

import "time"

const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 1000
	MaxCommentLen     = 500
	MaxBioLen         = 500
	MinPasswordLen    = 8
	MaxUsernameLen    = 255

	// 50MB for videos, 2MB for images
	MaxVideoSize     = 50 << 20
	MaxThumbnailSize = 2 << 20

	DefaultPageSize      = 10
	UserVideosPageSize   = 12
	CommentsPageSize     = 20
	ProfileVideosLimit   = 12
	TrendingLimit        = 20
	TrendingWindow       = 7 * 24 * time.Hour
	MaxPageSize          = 50

	// sentinel meaning "no category filter"
	CategoryAll = "all"

	ProbeTimeout = 5 * time.Second

	VideoObjectPrefix     = "videos"
	ThumbnailObjectPrefix = "thumbnails"
	ProfileObjectPrefix   = "profiles"
)

// allowed upload container formats, keyed by lowercase file extension
var VideoExtensions = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
	".avi": "video/x-msvideo",
	".mkv": "video/x-matroska",
}

var ImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

var ProfileImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}
