// Package form holds the state of the add/edit user modal: the field
// values, validation, and submission into the settings API. Validation
// failures never reach the network, and a successful submission merges the
// server-confirmed record into the table controller.
package form

import (
	"context"
	"errors"

	"github.com/dethrtrns/techwondoe-test-task/internal/client"
	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/table"
	"github.com/dethrtrns/techwondoe-test-task/internal/validator"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not completed. The submit control should be disabled for
// the duration, but the guard holds even if it is not.
var ErrSubmitInFlight = errors.New("submission already in progress")

// Controller owns the modal form state.
type Controller struct {
	api       *client.Client
	table     *table.Controller
	validator *validator.Validator

	values     domain.UserForm
	editID     string
	open       bool
	submitting bool
	lastErr    string
}

// NewController creates a form Controller bound to the given API client
// and table controller.
func NewController(api *client.Client, tbl *table.Controller) *Controller {
	return &Controller{
		api:       api,
		table:     tbl,
		validator: validator.NewValidator(),
	}
}

// OpenForCreate opens the modal with a blank form.
func (f *Controller) OpenForCreate() {
	f.values = domain.UserForm{}
	f.editID = ""
	f.open = true
	f.lastErr = ""
}

// OpenForEdit opens the modal prefilled from an existing record. Only name
// and role are editable.
func (f *Controller) OpenForEdit(u domain.User) {
	f.values = domain.UserForm{Name: u.Name, Role: u.Role, Email: u.Email, Avatar: u.Avatar}
	f.editID = u.ID
	f.open = true
	f.lastErr = ""
}

// Close dismisses the modal without submitting.
func (f *Controller) Close() {
	f.open = false
	f.lastErr = ""
}

// IsOpen reports whether the modal is showing.
func (f *Controller) IsOpen() bool {
	return f.open
}

// Submitting reports whether a submission is in flight; the submit control
// should be disabled while it is.
func (f *Controller) Submitting() bool {
	return f.submitting
}

// SetValues replaces the form fields.
func (f *Controller) SetValues(v domain.UserForm) {
	f.values = v
}

// Values returns the current form fields.
func (f *Controller) Values() domain.UserForm {
	return f.values
}

// Err returns the latest user-visible error message, empty when there is
// none. The latest failure wins.
func (f *Controller) Err() string {
	return f.lastErr
}

// DismissError clears the error notification.
func (f *Controller) DismissError() {
	f.lastErr = ""
}

// Submit validates the form and issues the create or update request. On
// success the form is cleared, the modal closed, and the server-confirmed
// record propagated into the table controller.
func (f *Controller) Submit(ctx context.Context) error {
	if f.submitting {
		return ErrSubmitInFlight
	}

	if err := f.validate(); err != nil {
		f.lastErr = err.Error()
		return err
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if f.editID == "" {
		return f.submitCreate(ctx)
	}
	return f.submitUpdate(ctx)
}

func (f *Controller) validate() error {
	if f.editID != "" {
		patch := domain.UserPatch{Name: &f.values.Name, Role: &f.values.Role}
		if err := f.validator.ValidateUserPatch(&patch); err != nil {
			return firstField(err)
		}
		return nil
	}
	if err := f.validator.ValidateUserForm(&f.values); err != nil {
		return firstField(err)
	}
	return nil
}

func (f *Controller) submitCreate(ctx context.Context) error {
	submission := f.values
	if submission.Avatar == "" {
		submission.Avatar = domain.DefaultAvatarURL(submission.Name)
	}

	created, err := f.api.CreateUser(ctx, submission)
	if err != nil {
		f.lastErr = "Failed to add user"
		return err
	}

	f.table.ApplyCreate(created)
	f.reset()
	return nil
}

func (f *Controller) submitUpdate(ctx context.Context) error {
	patch := domain.UserPatch{Name: &f.values.Name, Role: &f.values.Role}

	updated, err := f.api.UpdateUser(ctx, f.editID, patch)
	if err != nil {
		f.lastErr = "Failed to update user"
		return err
	}

	// Merge the fields the server confirmed, not the ones we sent.
	f.table.ApplyUpdate(updated.ID, domain.UserPatch{Name: &updated.Name, Role: &updated.Role})
	f.reset()
	return nil
}

func (f *Controller) reset() {
	f.values = domain.UserForm{}
	f.editID = ""
	f.open = false
	f.lastErr = ""
}

// firstField picks the first per-field error for the single-error surface.
func firstField(err error) error {
	fields := validator.Fields(err)
	if len(fields) > 0 {
		return fields[0]
	}
	return err
}
