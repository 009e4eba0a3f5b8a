package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

var kindAliases = map[string]models.Kind{
	"applications": models.KindApplication,
	"application":  models.KindApplication,
	"apps":         models.KindApplication,
	"app":          models.KindApplication,

	"tasks":           models.KindCommunityTask,
	"task":            models.KindCommunityTask,
	"community-tasks": models.KindCommunityTask,
	"community":       models.KindCommunityTask,

	"projects": models.KindProject,
	"project":  models.KindProject,

	"courses": models.KindCourse,
	"course":  models.KindCourse,
	"school":  models.KindCourse,
}

func parseKind(s string) (models.Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownKind, s)
	}
	return k, nil
}

// formFor resolves the page for kind after checking the session.
func (a *App) formFor(kind string) (recordForm, error) {
	if err := a.requireLogin(); err != nil {
		return nil, err
	}
	k, err := parseKind(kind)
	if err != nil {
		a.println("Usage: <command> applications|tasks|projects|courses")
		return nil, err
	}
	return a.forms[k], nil
}

// List prints the collection of kind as a table.
func (a *App) List(ctx context.Context, kind string) error {
	f, err := a.formFor(kind)
	if err != nil {
		return err
	}
	return f.list(ctx, a)
}

// Add runs the creation form of kind.
func (a *App) Add(ctx context.Context, kind string) error {
	f, err := a.formFor(kind)
	if err != nil {
		return err
	}
	return f.add(ctx, a)
}

// Update asks for a record id and runs the edit form of kind. Pressing Enter
// keeps a field's current value.
func (a *App) Update(ctx context.Context, kind string) error {
	f, err := a.formFor(kind)
	if err != nil {
		return err
	}
	return f.update(ctx, a)
}

// Delete asks for a record id and removes it from kind's collection.
func (a *App) Delete(ctx context.Context, kind string) error {
	f, err := a.formFor(kind)
	if err != nil {
		return err
	}
	return f.delete(ctx, a)
}
