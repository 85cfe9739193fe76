// Package services contains server-side business logic. VaultService
// orchestrates the identity store, the session registry and the vault store:
// it validates input, authenticates callers and maps store failures onto the
// error kinds in internal/common.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/metrics"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
)

// OperationRecorder receives one observation per finished operation.
type OperationRecorder interface {
	ObserveOperation(operation, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string) {}

// VaultService is safe for concurrent use; all shared state lives in the
// stores behind repomanager.
type VaultService struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	logger      logging.Logger
	recorder    OperationRecorder
}

// NewVaultService wires the service. A nil recorder disables metrics.
func NewVaultService(m repomanager.RepositoryManager, h auth.Hasher, l logging.Logger, r OperationRecorder) *VaultService {
	if r == nil {
		r = nopRecorder{}
	}
	return &VaultService{
		repomanager: m,
		hasher:      h,
		logger:      l.With("module", "services"),
		recorder:    r,
	}
}

// Register creates the account and opens its first session.
func (s *VaultService) Register(ctx context.Context, username, password string) (sess *models.Session, err error) {
	defer s.observe("register", &err)

	if err := requireCredentials(username, password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "hashing password failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{UserName: username, Digest: digest, CreatedAt: time.Now().UTC()}
	if err := s.repomanager.Users().Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("error creating user %q: %w", username, err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	sess, err = s.issue(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return sess, nil
}

// Login verifies the password and opens a session, superseding any earlier
// one. Unknown users and wrong passwords are indistinguishable to the caller.
func (s *VaultService) Login(ctx context.Context, username, password string) (sess *models.Session, err error) {
	defer s.observe("login", &err)

	if err := requireCredentials(username, password); err != nil {
		return nil, err
	}

	if err := s.repomanager.Users().Verify(ctx, username, password, s.hasher); err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorMismatch) {
			s.logger.Warn(ctx, "login rejected", "username", username)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error verifying credentials: %w", err)
	}

	sess, err = s.issue(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "username", username)
	return sess, nil
}

// Logout revokes the caller's session.
func (s *VaultService) Logout(ctx context.Context, token, username string) (err error) {
	defer s.observe("logout", &err)

	if _, err := s.authenticate(ctx, token, username); err != nil {
		return err
	}
	if err := s.repomanager.Sessions().Revoke(ctx, token); err != nil {
		return err
	}

	s.logger.Info(ctx, "user logged out", "username", username)
	return nil
}

// ListPasswords returns the caller's records in insertion order.
func (s *VaultService) ListPasswords(ctx context.Context, token, username string) (out []models.Record, err error) {
	defer s.observe("list_passwords", &err)

	owner, err := s.authenticate(ctx, token, username)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Records().List(ctx, owner)
}

// SearchPasswords returns the caller's records for site, ignoring case.
func (s *VaultService) SearchPasswords(ctx context.Context, token, username, site string) (out []models.Record, err error) {
	defer s.observe("search_passwords", &err)

	owner, err := s.authenticate(ctx, token, username)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(site) == "" {
		return nil, fmt.Errorf("%w: site is required", common.ErrorValidation)
	}
	return s.repomanager.Records().Search(ctx, owner, site)
}

// AddPassword stores a new record. Site and secret are required,
// accountUsername defaults to empty.
func (s *VaultService) AddPassword(ctx context.Context, token, username string, fields models.RecordFields) (rec *models.Record, err error) {
	defer s.observe("add_password", &err)

	owner, err := s.authenticate(ctx, token, username)
	if err != nil {
		return nil, err
	}
	if err := requireRecordFields(fields.Site, fields.Secret); err != nil {
		return nil, err
	}

	rec, err = s.repomanager.Records().Add(ctx, owner, fields)
	if err != nil {
		return nil, fmt.Errorf("error adding record: %w", err)
	}

	s.logger.Debug(ctx, "record added", "username", owner, "id", rec.ID)
	return rec, nil
}

// UpdatePassword applies a partial update. Present fields are stored as
// given, empty strings included.
func (s *VaultService) UpdatePassword(ctx context.Context, token, username, id string, patch models.RecordPatch) (rec *models.Record, err error) {
	defer s.observe("update_password", &err)

	owner, err := s.authenticate(ctx, token, username)
	if err != nil {
		return nil, err
	}

	rec, err = s.repomanager.Records().Update(ctx, owner, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating record %q: %w", id, err)
	}

	s.logger.Debug(ctx, "record updated", "username", owner, "id", id)
	return rec, nil
}

// DeletePassword removes one record.
func (s *VaultService) DeletePassword(ctx context.Context, token, username, id string) (err error) {
	defer s.observe("delete_password", &err)

	owner, err := s.authenticate(ctx, token, username)
	if err != nil {
		return err
	}
	if err := s.repomanager.Records().Remove(ctx, owner, id); err != nil {
		return fmt.Errorf("error deleting record %q: %w", id, err)
	}

	s.logger.Debug(ctx, "record deleted", "username", owner, "id", id)
	return nil
}

// PurgeExpiredSessions drops sessions past their expiry.
func (s *VaultService) PurgeExpiredSessions(ctx context.Context) int {
	n := s.repomanager.Sessions().PurgeExpired(ctx)
	if n > 0 {
		s.logger.Debug(ctx, "expired sessions purged", "count", n)
	}
	return n
}

// --- helpers below ---

func (s *VaultService) issue(ctx context.Context, username string) (*models.Session, error) {
	sess, err := s.repomanager.Sessions().Issue(ctx, username)
	if err != nil {
		s.logger.Error(ctx, "issuing session failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}
	return sess, nil
}

func (s *VaultService) authenticate(ctx context.Context, token, username string) (string, error) {
	owner, err := s.repomanager.Sessions().Resolve(ctx, token, username)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return "", common.ErrorUnauthorized
		}
		return "", err
	}
	return owner, nil
}

func (s *VaultService) observe(operation string, err *error) {
	s.recorder.ObserveOperation(operation, Outcome(*err))
}

// Outcome classifies err into one of the metrics outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, common.ErrorValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, common.ErrorAlreadyExists):
		return metrics.OutcomeExists
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorInvalidCredentials):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func requireCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}

func requireRecordFields(site, secret string) error {
	if strings.TrimSpace(site) == "" {
		return fmt.Errorf("%w: site is required", common.ErrorValidation)
	}
	if secret == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}
