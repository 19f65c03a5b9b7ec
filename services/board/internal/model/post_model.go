package model

import "time"

// PostModel is the posts row. created_at is stamped by Postgres with
// clock_timestamp() so that it advances together with the id sequence.
type PostModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      string    `gorm:"type:varchar(10);not null" json:"kind"`
	Content   string    `gorm:"type:text" json:"content"`
	MediaRef  string    `gorm:"type:varchar(500)" json:"media_ref"`
	Caption   string    `gorm:"type:text" json:"caption"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	PositionX *float64  `json:"position_x"`
	PositionY *float64  `json:"position_y"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;default:clock_timestamp();index" json:"created_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
