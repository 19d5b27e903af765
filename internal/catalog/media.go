// internal/catalog/media.go
package catalog

import "strings"

// Default CDN bases for the primary provider's static media. Overridable
// through configuration because the provider has moved hosts before.
const (
	DefaultImageBase     = "https://static.exercisedb.dev/media/images"
	DefaultAnimationBase = "https://static.exercisedb.dev/media/gifs"
	DefaultVideoBase     = "https://static.exercisedb.dev/media/videos"
)

// Resolver derives the best available demonstration URLs for a canonical
// exercise. Pure; holds only the CDN base paths.
type Resolver struct {
	ImageBase     string
	AnimationBase string
	VideoBase     string
}

// NewResolver returns a Resolver with the default CDN bases. Empty
// overrides keep the default.
func NewResolver(imageBase, animationBase, videoBase string) Resolver {
	r := Resolver{
		ImageBase:     DefaultImageBase,
		AnimationBase: DefaultAnimationBase,
		VideoBase:     DefaultVideoBase,
	}
	if imageBase != "" {
		r.ImageBase = imageBase
	}
	if animationBase != "" {
		r.AnimationBase = animationBase
	}
	if videoBase != "" {
		r.VideoBase = videoBase
	}
	return r
}

// Resolve applies the media precedence rules:
//  1. explicit animated field (absolute passed through, relative prefixed
//     with the animation CDN base),
//  2. explicit image field under the same handling against the image base,
//  3. if neither is present but the record has an id, a synthesized
//     animation URL "<animation base>/<id>"; some list endpoints omit media
//     fields the by-id endpoint includes, so this is a best-effort guess the
//     consumer must handle a broken image for,
//  4. otherwise both stay absent and the caller renders a placeholder.
//
// The video URL follows the absolute/relative rule against the video base
// and is never guessed.
func (r Resolver) Resolve(ex Exercise) Media {
	var m Media

	if ex.GifURL != "" {
		m.AnimatedURL = joinBase(r.AnimationBase, ex.GifURL)
	}
	if ex.ImageURL != "" {
		m.ImageURL = joinBase(r.ImageBase, ex.ImageURL)
	}
	if m.AnimatedURL == "" && m.ImageURL == "" && ex.ID != "" {
		m.AnimatedURL = r.AnimationBase + "/" + ex.ID
	}
	if ex.VideoURL != "" {
		m.VideoURL = joinBase(r.VideoBase, ex.VideoURL)
	}

	return m
}

func joinBase(base, value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return base + "/" + strings.TrimPrefix(value, "/")
}
