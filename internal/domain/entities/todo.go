package entities

import "time"

type Todo struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Todo) TableName() string {
	return "todos"
}
