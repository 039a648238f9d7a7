// Package repo implements table repositories over the Supabase
// PostgREST client. Query strings use PostgREST filter syntax.
package repo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/apperr"
	"github.com/healhub/healhub_backend/pkg/supabase"
)

const usersTable = "users"

type Users struct {
	client *supabase.Client
}

func NewUsers(client *supabase.Client) *Users {
	return &Users{client: client}
}

func (r *Users) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	rows, err := supabase.Select[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("user_id=eq.%s&limit=1", userID))
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	rows, err := supabase.Select[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("email=eq.%s&limit=1", url.QueryEscape(email)))
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *Users) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return supabase.Select[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("select=*&order=created_at.desc&limit=%d&offset=%d", limit, offset))
}

func (r *Users) Insert(ctx context.Context, row entity.NewUser) (*entity.User, error) {
	rows, err := supabase.Insert[entity.User](ctx, r.client, usersTable, []entity.NewUser{row})
	if err != nil {
		return nil, err
	}
	return exactlyOne(rows, "users insert")
}

func (r *Users) Update(ctx context.Context, userID uuid.UUID, patch entity.UpdateUser) (*entity.User, error) {
	rows, err := supabase.Update[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("user_id=eq.%s", userID), patch)
	if err != nil {
		return nil, err
	}
	return exactlyOne(rows, "users update")
}

// SetResetCode stores a reset code and its expiry on the identity.
func (r *Users) SetResetCode(ctx context.Context, userID uuid.UUID, code, expires string) error {
	patch := map[string]any{
		"password_reset_token":   code,
		"password_reset_expires": expires,
	}
	rows, err := supabase.Update[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("user_id=eq.%s", userID), patch)
	if err != nil {
		return err
	}
	_, err = exactlyOne(rows, "users reset-code update")
	return err
}

// ResetCredential replaces the password digest and clears the reset code
// and expiry in one update, making the code single-use.
func (r *Users) ResetCredential(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	patch := map[string]any{
		"password_hash":          passwordHash,
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}
	rows, err := supabase.Update[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("user_id=eq.%s", userID), patch)
	if err != nil {
		return err
	}
	_, err = exactlyOne(rows, "users credential update")
	return err
}

func (r *Users) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := supabase.Delete[entity.User](ctx, r.client, usersTable,
		fmt.Sprintf("user_id=eq.%s", userID))
	return err
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// exactlyOne guards writes that must hit a row. Zero rows back from the
// store means the caller referenced something that is gone.
func exactlyOne[T any](rows []T, op string) (*T, error) {
	if len(rows) == 0 {
		return nil, apperr.Unexpectedf("%s matched no rows", op)
	}
	return &rows[0], nil
}
