package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		slug    string
		want    Platform
		wantErr error
	}{
		{slug: "meta", want: PlatformMeta},
		{slug: "TikTok", want: PlatformTikTok},
		{slug: " google ", want: PlatformGoogle},
		{slug: "snapchat", wantErr: ErrUnknownPlatform},
		{slug: "", wantErr: ErrUnknownPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, err := ParsePlatform(tt.slug)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatform_Names(t *testing.T) {
	assert.Equal(t, []Platform{PlatformMeta, PlatformTikTok, PlatformGoogle}, Platforms())

	assert.Equal(t, "Meta", PlatformMeta.DisplayName())
	assert.Equal(t, "TikTok", PlatformTikTok.DisplayName())
	assert.Equal(t, "Google Ads", PlatformGoogle.DisplayName())
	assert.Equal(t, "google", PlatformGoogle.Slug())

	assert.False(t, Platform("myspace").Valid())
	assert.Empty(t, Platform("myspace").DisplayName())
}
