package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/sHooPmyWooP/roundnet/model"
)

func (c *controller) CreatePlayer(ctx context.Context, name string, skillLevel int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !model.ValidSkillLevel(skillLevel) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSkillLevel, skillLevel)
	}

	p := &model.Player{
		Name:       name,
		SkillLevel: skillLevel,
	}
	if err := c.db.SavePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("error creating player %s: %w", name, err)
	}
	return p, nil
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) UpdatePlayerSkill(ctx context.Context, id string, skillLevel int) error {
	if !model.ValidSkillLevel(skillLevel) {
		return fmt.Errorf("%w: got %d", ErrInvalidSkillLevel, skillLevel)
	}

	p, err := c.db.GetPlayer(ctx, id)
	if err != nil {
		return err
	}
	if p.SkillLevel == skillLevel {
		return nil
	}

	p.SkillLevel = skillLevel
	return c.db.SavePlayer(ctx, p)
}

func (c *controller) DeletePlayer(ctx context.Context, id string) error {
	return c.db.DeletePlayer(ctx, id)
}
