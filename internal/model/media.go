package model

import "errors"

const (
	MaxAvatarSizeBytes = 5 * 1024 * 1024
	MaxCoverSizeBytes  = 8 * 1024 * 1024
	MaxThumbSizeBytes  = 5 * 1024 * 1024
	MaxVideoSizeBytes  = 200 * 1024 * 1024

	AvatarWidth  = 200
	AvatarHeight = 200
	CoverWidth   = 1280
	CoverHeight  = 320
	ThumbWidth   = 640
	ThumbHeight  = 360

	AvatarFolder    = "avatars"
	CoverFolder     = "covers"
	ThumbnailFolder = "thumbnails"
	VideoFolder     = "videos"

	ImageExt        = ".jpg"
	ImageCacheCtl   = "public, max-age=31536000" // 1 year
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeWebP = "image/webp"
	ContentTypeGIF  = "image/gif"
	ContentTypeMP4  = "video/mp4"
	ContentTypeWebM = "video/webm"
)

var allowedImageTypes = map[string]struct{}{
	ContentTypeJPEG: {},
	ContentTypePNG:  {},
	ContentTypeGIF:  {},
	ContentTypeWebP: {},
}

var allowedVideoTypes = map[string]struct{}{
	ContentTypeMP4:    {},
	ContentTypeWebM:   {},
	"video/quicktime": {},
}

// Error codes for HTTP responses
const (
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeInvalidImageType = "INVALID_IMAGE_TYPE"
	CodeInvalidVideoType = "INVALID_VIDEO_TYPE"
)

// Domain errors for media operations
var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidImageType = errors.New("invalid image type")
	ErrInvalidVideoType = errors.New("invalid video type")
)

// StoredAsset is a media object persisted in remote storage.
// URL is public-facing; Key is the object key inside the bucket, kept for deletes.
type StoredAsset struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// IsAllowedImageType reports if the provided content type is supported for images
func IsAllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// IsAllowedVideoType reports if the provided content type is supported for video files
func IsAllowedVideoType(contentType string) bool {
	_, ok := allowedVideoTypes[contentType]
	return ok
}
