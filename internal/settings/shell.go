// Package settings is the company-settings shell: the tab container that
// fetches the user list on mount and hands it to the table controller.
package settings

import (
	"context"
	"errors"
	"slices"

	"github.com/dethrtrns/techwondoe-test-task/internal/client"
	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/form"
	"github.com/dethrtrns/techwondoe-test-task/internal/table"
)

// Tab identifies one of the settings sections.
type Tab string

const (
	TabGeneral      Tab = "general"
	TabUsers        Tab = "users"
	TabPlan         Tab = "plan"
	TabBilling      Tab = "billing"
	TabIntegrations Tab = "integrations"
)

// Tabs lists the sections in display order.
var Tabs = []Tab{TabGeneral, TabUsers, TabPlan, TabBilling, TabIntegrations}

// ErrDeleteInFlight is returned when a delete is requested while a previous
// one has not completed.
var ErrDeleteInFlight = errors.New("delete already in progress")

// Shell owns the settings page state.
type Shell struct {
	api *client.Client

	Table *table.Controller
	Form  *form.Controller

	active   Tab
	loaded   bool
	deleting bool
	lastErr  string
}

// NewShell creates a Shell with an empty table. The users tab is active by
// default.
func NewShell(api *client.Client, pageSize int) *Shell {
	tbl := table.NewController(pageSize)
	return &Shell{
		api:    api,
		Table:  tbl,
		Form:   form.NewController(api, tbl),
		active: TabUsers,
	}
}

// Load fetches the user list and hands it to the table controller. It is
// called once when the page mounts; a failure is surfaced, not fatal, and
// a later retry is allowed.
func (s *Shell) Load(ctx context.Context) error {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.lastErr = "Failed to fetch data"
		return err
	}

	s.Table.Reload(users)
	s.loaded = true
	s.lastErr = ""
	return nil
}

// Loaded reports whether the initial fetch has succeeded.
func (s *Shell) Loaded() bool {
	return s.loaded
}

// ActiveTab returns the selected tab.
func (s *Shell) ActiveTab() Tab {
	return s.active
}

// SelectTab switches sections. Unknown tabs are ignored.
func (s *Shell) SelectTab(t Tab) {
	if slices.Contains(Tabs, t) {
		s.active = t
	}
}

// DeleteUser removes a user through the API and, once the server confirms,
// drops the record from the local set.
func (s *Shell) DeleteUser(ctx context.Context, id string) error {
	if s.deleting {
		return ErrDeleteInFlight
	}
	s.deleting = true
	defer func() { s.deleting = false }()

	if err := s.api.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.lastErr = "User not found"
		} else {
			s.lastErr = "Failed to delete user"
		}
		return err
	}

	s.Table.ApplyDelete(id)
	s.lastErr = ""
	return nil
}

// Err returns the latest user-visible error message, empty when there is
// none.
func (s *Shell) Err() string {
	return s.lastErr
}

// DismissError clears the error notification.
func (s *Shell) DismissError() {
	s.lastErr = ""
}
