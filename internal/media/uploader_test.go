package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wantMediaType string
		wantData      string
		wantErr       bool
	}{
		{
			name:          "png",
			input:         "data:image/png;base64,aGVsbG8=",
			wantMediaType: "image/png",
			wantData:      "hello",
		},
		{
			name:          "jpeg",
			input:         "data:image/jpeg;base64,aGk=",
			wantMediaType: "image/jpeg",
			wantData:      "hi",
		},
		{
			name:    "not a data uri",
			input:   "https://example.com/pic.png",
			wantErr: true,
		},
		{
			name:    "missing comma",
			input:   "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "not base64 encoded",
			input:   "data:image/png,rawbytes",
			wantErr: true,
		},
		{
			name:    "non-image media type",
			input:   "data:text/html;base64,aGk=",
			wantErr: true,
		},
		{
			name:    "invalid base64 payload",
			input:   "data:image/png;base64,!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mediaType, data, err := DecodeDataURI(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMediaType, mediaType)
			assert.Equal(t, tt.wantData, string(data))
		})
	}
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", extensionFor("image/jpeg"))
	assert.Equal(t, "gif", extensionFor("image/gif"))
	assert.Equal(t, "webp", extensionFor("image/webp"))
	assert.Equal(t, "png", extensionFor("image/png"))
	assert.Equal(t, "png", extensionFor("image/unknown"))
}
