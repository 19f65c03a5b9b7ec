package entity

import (
	"errors"
	"strings"
)

var (
	ErrUnknownKind     = errors.New("kind must be text or image")
	ErrMissingBody     = errors.New("text posts need content and image posts need a media_ref")
	ErrConflictingBody = errors.New("a post carries either content or a media_ref, not both")
)

// Draft is caller-supplied post data before the store assigns id, timestamp
// and status.
type Draft struct {
	Kind     PostKind `json:"kind"`
	Content  string   `json:"content,omitempty"`
	MediaRef string   `json:"media_ref,omitempty"`
	Caption  string   `json:"caption,omitempty"`
}

// Normalize trims whitespace and fills Kind from the presence of MediaRef
// when the caller left it empty.
func (d Draft) Normalize() Draft {
	d.Content = strings.TrimSpace(d.Content)
	d.MediaRef = strings.TrimSpace(d.MediaRef)
	d.Caption = strings.TrimSpace(d.Caption)
	if d.Kind == "" {
		if d.MediaRef != "" {
			d.Kind = KindImage
		} else {
			d.Kind = KindText
		}
	}
	return d
}

// Validate enforces that exactly one of Content and MediaRef is set and that
// it matches Kind.
func (d Draft) Validate() error {
	switch d.Kind {
	case KindText:
		if d.MediaRef != "" {
			return ErrConflictingBody
		}
		if d.Content == "" {
			return ErrMissingBody
		}
	case KindImage:
		if d.Content != "" {
			return ErrConflictingBody
		}
		if d.MediaRef == "" {
			return ErrMissingBody
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
