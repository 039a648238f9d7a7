// Package admin manages identities. Every operation is gated on the
// admin role; the check runs fresh on each call.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healhub/healhub_backend/internal/entity"
	"github.com/healhub/healhub_backend/pkg/session"
)

// countScanLimit bounds the list walked when folding role counts. The
// users table of a single hospital stays far below this.
const countScanLimit = 10000

// UserStore is the slice of the users repository this service needs.
type UserStore interface {
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
	Update(ctx context.Context, userID uuid.UUID, patch entity.UpdateUser) (*entity.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Service interface {
	ListUsers(ctx context.Context, limit, offset int) ([]entity.UserPublic, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, patch entity.UpdateUser) (*entity.UserPublic, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	CountsByRole(ctx context.Context) (map[string]int, error)
}

type adminService struct {
	users   UserStore
	session *session.Store
}

func New(users UserStore, sess *session.Store) Service {
	return &adminService{users: users, session: sess}
}

func (s *adminService) ListUsers(ctx context.Context, limit, offset int) ([]entity.UserPublic, error) {
	if _, err := s.session.Require(session.RoleAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]entity.UserPublic, len(rows))
	for i, u := range rows {
		out[i] = u.Public()
	}
	return out, nil
}

func (s *adminService) UpdateUser(ctx context.Context, userID uuid.UUID, patch entity.UpdateUser) (*entity.UserPublic, error) {
	if _, err := s.session.Require(session.RoleAdmin); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	pub := u.Public()
	return &pub, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.session.Require(session.RoleAdmin); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// CountsByRole folds the user list into per-role totals. The record
// store exposes no aggregate endpoint, so the fold runs client-side.
// Users with no role land under "unknown".
func (s *adminService) CountsByRole(ctx context.Context) (map[string]int, error) {
	if _, err := s.session.Require(session.RoleAdmin); err != nil {
		return nil, err
	}

	rows, err := s.users.List(ctx, countScanLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	counts := make(map[string]int)
	for _, u := range rows {
		role := "unknown"
		if u.Role != nil && *u.Role != "" {
			role = *u.Role
		}
		counts[role]++
	}
	return counts, nil
}
