package service

import (
	"context"
	"io"

	"lifeplan/entities"
	"lifeplan/pkg/strictjson"
)

type PrinciplesService interface {
	// Get returns the user's principles, creating the default document on
	// first access.
	Get(ctx context.Context, userID string) (*entities.Principles, error)
	Update(ctx context.Context, userID string, patch PrinciplesPatch) (*entities.Principles, error)
}

type PrinciplesPatch struct {
	Content          *string                     `json:"content"`
	HabitDefinitions *[]entities.HabitDefinition `json:"habitDefinitions"`
}

func DecodePrinciplesPatch(r io.Reader) (PrinciplesPatch, error) {
	var p PrinciplesPatch
	err := strictjson.Decode(r, &p)
	return p, err
}
