package entity

import "time"

type PostKind string

const (
	KindText  PostKind = "text"
	KindImage PostKind = "image"
)

type PostStatus string

const (
	StatusActive  PostStatus = "active"
	StatusCore    PostStatus = "core"
	StatusDeleted PostStatus = "deleted"
)

func (s PostStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCore, StatusDeleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a post in status s may be set to next.
// Staying in the same status is allowed; core and deleted are terminal.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	if s == next {
		return true
	}
	return s == StatusActive && (next == StatusCore || next == StatusDeleted)
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Post struct {
	ID        uint64     `json:"id"`
	Kind      PostKind   `json:"kind"`
	Content   string     `json:"content,omitempty"`
	MediaRef  string     `json:"media_ref,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Status    PostStatus `json:"status"`
	Position  *Position  `json:"position,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
