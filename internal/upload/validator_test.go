package upload_test

import (
	"testing"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateThumbnail(t *testing.T) {
	tests := []struct {
		name    string
		file    upload.File
		wantErr string
	}{
		{
			name: "jpeg within limit",
			file: upload.File{Name: "cover.jpg", MIME: "image/jpeg", Size: 512 << 10},
		},
		{
			name: "png within limit",
			file: upload.File{Name: "cover.png", MIME: "image/png", Size: 1 << 20},
		},
		{
			name: "webp at exactly the limit",
			file: upload.File{Name: "cover.webp", MIME: "image/webp", Size: upload.MaxThumbnailBytes},
		},
		{
			name:    "gif rejected",
			file:    upload.File{Name: "cover.gif", MIME: "image/gif", Size: 1024},
			wantErr: "Only JPG, PNG, and WebP images are allowed",
		},
		{
			name:    "pdf rejected by type before size",
			file:    upload.File{Name: "cover.pdf", MIME: "application/pdf", Size: 10 << 20},
			wantErr: "Only JPG, PNG, and WebP images are allowed",
		},
		{
			name:    "one byte over the limit",
			file:    upload.File{Name: "cover.jpg", MIME: "image/jpeg", Size: upload.MaxThumbnailBytes + 1},
			wantErr: "Image must be smaller than 2MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := upload.ValidateThumbnail(tt.file)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *api.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestValidateDigitalSelection(t *testing.T) {
	tests := []struct {
		name    string
		file    upload.File
		wantErr string
	}{
		{
			name: "pdf accepted",
			file: upload.File{Name: "guide.pdf", MIME: "application/pdf", Size: 5 << 20},
		},
		{
			name: "mp3 accepted",
			file: upload.File{Name: "track.mp3", MIME: "audio/mp3", Size: 8 << 20},
		},
		{
			name: "mp4 accepted",
			file: upload.File{Name: "course.mp4", MIME: "video/mp4", Size: 700 << 20},
		},
		{
			name: "zip accepted",
			file: upload.File{Name: "bundle.zip", MIME: "application/zip", Size: 50 << 20},
		},
		{
			name: "windows zip mime accepted",
			file: upload.File{Name: "bundle.zip", MIME: "application/x-zip-compressed", Size: 50 << 20},
		},
		{
			name: "zip extension rescues an unrecognized mime",
			file: upload.File{Name: "Bundle.ZIP", MIME: "application/octet-stream", Size: 50 << 20},
		},
		{
			name:    "unknown type without zip extension",
			file:    upload.File{Name: "malware.exe", MIME: "application/octet-stream", Size: 1024},
			wantErr: "Unsupported file type",
		},
		{
			name:    "over the selection cap",
			file:    upload.File{Name: "huge.zip", MIME: "application/zip", Size: upload.MaxSelectionBytes + 1},
			wantErr: "File size exceeds 2GB limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := upload.ValidateDigitalSelection(tt.file)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *api.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestValidateDigitalSubmission(t *testing.T) {
	tests := []struct {
		name    string
		file    upload.File
		wantErr string
	}{
		{
			name: "within the submission cap",
			file: upload.File{Name: "guide.pdf", MIME: "application/pdf", Size: upload.MaxDigitalFileBytes},
		},
		{
			name:    "passes selection but fails the stricter submission cap",
			file:    upload.File{Name: "course.mp4", MIME: "video/mp4", Size: upload.MaxDigitalFileBytes + 1},
			wantErr: "File size exceeds 100MB limit",
		},
		{
			name:    "type check still runs first",
			file:    upload.File{Name: "notes.txt", MIME: "text/plain", Size: 10},
			wantErr: "Unsupported file type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := upload.ValidateDigitalSubmission(tt.file)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *api.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestPickerClearsOnViolation(t *testing.T) {
	picker := upload.NewDigitalFilePicker()

	good := upload.File{Name: "guide.pdf", MIME: "application/pdf", Size: 1 << 20}
	require.NoError(t, picker.Select(good))
	got, ok := picker.File()
	require.True(t, ok)
	assert.Equal(t, good, got)

	bad := upload.File{Name: "notes.txt", MIME: "text/plain", Size: 10}
	assert.Error(t, picker.Select(bad))
	_, ok = picker.File()
	assert.False(t, ok, "prior selection must not survive a failed pick")
}

func TestPickerClear(t *testing.T) {
	picker := upload.NewThumbnailPicker()
	require.NoError(t, picker.Select(upload.File{Name: "cover.png", MIME: "image/png", Size: 100}))

	picker.Clear()
	_, ok := picker.File()
	assert.False(t, ok)
}
