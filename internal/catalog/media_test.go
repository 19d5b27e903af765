package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrecedence(t *testing.T) {
	r := NewResolver("", "", "")

	testCases := []struct {
		name string
		ex   Exercise
		want Media
	}{
		{
			name: "explicit gif wins over image",
			ex:   Exercise{ID: "ex_1", GifURL: "ex_1.gif", ImageURL: "ex_1.png"},
			want: Media{
				AnimatedURL: DefaultAnimationBase + "/ex_1.gif",
				ImageURL:    DefaultImageBase + "/ex_1.png",
			},
		},
		{
			name: "absolute urls pass through verbatim",
			ex:   Exercise{ID: "ex_2", GifURL: "https://cdn.example.com/a.gif"},
			want: Media{AnimatedURL: "https://cdn.example.com/a.gif"},
		},
		{
			name: "leading slash on relative path is not doubled",
			ex:   Exercise{ID: "ex_3", ImageURL: "/images/ex_3.png"},
			want: Media{ImageURL: DefaultImageBase + "/images/ex_3.png"},
		},
		{
			name: "no media fields synthesizes animation url from id",
			ex:   Exercise{ID: "ex_123", Name: "Push Up"},
			want: Media{AnimatedURL: DefaultAnimationBase + "/ex_123"},
		},
		{
			name: "no media and no id stays absent",
			ex:   Exercise{Name: "Unknown"},
			want: Media{},
		},
		{
			name: "video resolved but never synthesized",
			ex:   Exercise{ID: "ex_4", VideoURL: "ex_4.mp4"},
			want: Media{
				AnimatedURL: DefaultAnimationBase + "/ex_4",
				VideoURL:    DefaultVideoBase + "/ex_4.mp4",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(tc.ex))
		})
	}
}

func TestNewResolverOverrides(t *testing.T) {
	r := NewResolver("https://img.cdn", "", "https://vid.cdn")

	assert.Equal(t, "https://img.cdn", r.ImageBase)
	assert.Equal(t, DefaultAnimationBase, r.AnimationBase)
	assert.Equal(t, "https://vid.cdn", r.VideoBase)

	m := r.Resolve(Exercise{ID: "ex_9", ImageURL: "ex_9.png"})
	assert.Equal(t, "https://img.cdn/ex_9.png", m.ImageURL)
}
