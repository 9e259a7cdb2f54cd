package entities

import (
	"time"

	"gorm.io/gorm"
)

const DefaultPrinciples = "# My Life Principles\n\n1. Be honest.\n2. Create value.\n3. Stay curious."

type HabitDefinition struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type Principles struct {
	ID               string            `gorm:"primaryKey;type:text" json:"id"`
	UserID           string            `gorm:"not null;uniqueIndex" json:"userId"`
	Content          string            `gorm:"not null;default:''" json:"content"`
	HabitDefinitions []HabitDefinition `gorm:"serializer:json;not null;default:'[]'" json:"habitDefinitions"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (p *Principles) AfterFind(*gorm.DB) error {
	if p.HabitDefinitions == nil {
		p.HabitDefinitions = []HabitDefinition{}
	}
	return nil
}

func (p *Principles) BeforeSave(*gorm.DB) error {
	return p.AfterFind(nil)
}
