// Package services implements the store contract over the Ent client.
// All mutating operations are transactional; partial failures leave
// entities in a consistent prior state.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/ent/account"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// AccountService manages the fixed set of monitored accounts.
type AccountService struct {
	client *ent.Client
}

// NewAccountService creates a new AccountService.
func NewAccountService(client *ent.Client) *AccountService {
	if client == nil {
		panic("NewAccountService: client must not be nil")
	}
	return &AccountService{client: client}
}

// Normalize lowercases a username for case-insensitive matching.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(username, "@")))
}

// Create registers a new monitored account. The username is lowercased;
// duplicates are rejected.
func (s *AccountService) Create(ctx context.Context, username string) (*ent.Account, error) {
	name := Normalize(username)
	if !usernamePattern.MatchString(name) {
		return nil, NewValidationError("username", fmt.Sprintf("invalid username %q", username))
	}

	acc, err := s.client.Account.Create().
		SetID(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: account %q", ErrConflict, name)
		}
		return nil, mapEntError(err)
	}
	return acc, nil
}

// Get returns a single account by username (case-insensitive).
func (s *AccountService) Get(ctx context.Context, username string) (*ent.Account, error) {
	acc, err := s.client.Account.Get(ctx, Normalize(username))
	if err != nil {
		return nil, mapEntError(err)
	}
	return acc, nil
}

// List returns all accounts, enabled or not.
func (s *AccountService) List(ctx context.Context) ([]*ent.Account, error) {
	accs, err := s.client.Account.Query().
		Order(ent.Asc(account.FieldID)).
		All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return accs, nil
}

// Monitored returns the enabled accounts, the set the coordinator polls.
func (s *AccountService) Monitored(ctx context.Context) ([]*ent.Account, error) {
	accs, err := s.client.Account.Query().
		Where(account.EnabledEQ(true)).
		Order(ent.Asc(account.FieldID)).
		All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return accs, nil
}

// SetEnabled toggles polling for an account.
func (s *AccountService) SetEnabled(ctx context.Context, username string, enabled bool) (*ent.Account, error) {
	acc, err := s.client.Account.UpdateOneID(Normalize(username)).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return acc, nil
}

// Delete removes an account and, via cascade, its posts.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	if err := s.client.Account.DeleteOneID(Normalize(username)).Exec(ctx); err != nil {
		return mapEntError(err)
	}
	return nil
}

// MarkPolled atomically records a completed poll. lastSeenPostID is only
// advanced when non-empty; an empty source response leaves it unchanged.
func (s *AccountService) MarkPolled(ctx context.Context, username, lastSeenPostID string, polledAt time.Time) error {
	update := s.client.Account.UpdateOneID(Normalize(username)).
		SetLastPolledAt(polledAt)
	if lastSeenPostID != "" {
		update = update.SetLastSeenPostID(lastSeenPostID)
	}
	if err := update.Exec(ctx); err != nil {
		return mapEntError(err)
	}
	return nil
}
