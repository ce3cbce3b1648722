// Package upload runs pre-flight checks on files before any network call is
// made: one rule set for thumbnail images, one for digital product files.
package upload

import (
	"path"
	"strings"

	"github.com/nexodus-tech/vendor-console/internal/api"
)

// File describes a file picked for upload. Size is in bytes.
type File struct {
	Name string
	MIME string
	Size int64
}

const (
	// MaxThumbnailBytes caps product thumbnail images.
	MaxThumbnailBytes int64 = 2 << 20

	// MaxSelectionBytes is the loose pre-filter applied when a digital file
	// is first picked, inherited from the legacy client.
	MaxSelectionBytes int64 = 2000 << 20

	// MaxDigitalFileBytes is the authoritative cap that gates submission.
	MaxDigitalFileBytes int64 = 100 << 20
)

var thumbnailTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var digitalFileTypes = map[string]bool{
	"application/pdf":              true,
	"audio/mp3":                    true,
	"video/mp4":                    true,
	"application/zip":              true,
	"application/x-zip-compressed": true,
}

// ValidateThumbnail checks a thumbnail image against its rule set.
func ValidateThumbnail(f File) error {
	if !thumbnailTypes[f.MIME] {
		return &api.ValidationError{Field: "thumbnail", Message: "Only JPG, PNG, and WebP images are allowed"}
	}
	if f.Size > MaxThumbnailBytes {
		return &api.ValidationError{Field: "thumbnail", Message: "Image must be smaller than 2MB"}
	}
	return nil
}

// ValidateDigitalSelection is the fast client-side pre-filter applied at pick
// time. A ".zip" extension is accepted even when the browser reports an
// unrecognized MIME type for it.
func ValidateDigitalSelection(f File) error {
	if !digitalFileTypes[f.MIME] && strings.ToLower(path.Ext(f.Name)) != ".zip" {
		return &api.ValidationError{Field: "file", Message: "Unsupported file type"}
	}
	if f.Size > MaxSelectionBytes {
		return &api.ValidationError{Field: "file", Message: "File size exceeds 2GB limit"}
	}
	return nil
}

// ValidateDigitalSubmission gates the actual submission with the stricter,
// authoritative size limit.
func ValidateDigitalSubmission(f File) error {
	if err := ValidateDigitalSelection(f); err != nil {
		return err
	}
	if f.Size > MaxDigitalFileBytes {
		return &api.ValidationError{Field: "file", Message: "File size exceeds 100MB limit"}
	}
	return nil
}

// Picker holds the currently selected file for one input. A failed validation
// clears the selection so a stale reference can never be submitted.
type Picker struct {
	validate func(File) error
	file     *File
}

func NewThumbnailPicker() *Picker {
	return &Picker{validate: ValidateThumbnail}
}

func NewDigitalFilePicker() *Picker {
	return &Picker{validate: ValidateDigitalSelection}
}

// Select validates and stores a file. On violation the prior selection is
// dropped and the validation error returned.
func (p *Picker) Select(f File) error {
	if err := p.validate(f); err != nil {
		p.file = nil
		return err
	}
	p.file = &f
	return nil
}

// File returns the current selection, if any.
func (p *Picker) File() (File, bool) {
	if p.file == nil {
		return File{}, false
	}
	return *p.file, true
}

func (p *Picker) Clear() {
	p.file = nil
}
