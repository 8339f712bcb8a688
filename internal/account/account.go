// Package account owns the sync account record: creation, recovery login,
// device listing, and disconnect, persisted through the secret store. The
// service serialises all access per account; callers perform no extra
// locking around it.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/seftonlabs/synclink/internal/keys"
	"github.com/seftonlabs/synclink/internal/pairing"
	"github.com/seftonlabs/synclink/internal/relay"
	"github.com/seftonlabs/synclink/internal/store"
)

// accountKey is the secret store key the account record is filed under.
const accountKey = "sync-account"

// ErrAccountExists is returned by CreateAccount when this device already
// belongs to an account.
var ErrAccountExists = errors.New("account already exists on this device")

// ErrNoAccount is returned by operations that require an account when none
// exists.
var ErrNoAccount = errors.New("no account on this device")

// Service implements the controller's AccountService against the relay's
// account endpoints and the secret store.
type Service struct {
	client  *relay.Client
	secrets store.SecretStore
	logger  *slog.Logger

	mu sync.Mutex
}

// NewService creates an account Service.
func NewService(client *relay.Client, secrets store.SecretStore, logger *slog.Logger) *Service {
	return &Service{
		client:  client,
		secrets: secrets,
		logger:  logger,
	}
}

// Current returns the active account record, if any.
func (s *Service) Current() (*pairing.SyncAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load reads the persisted account under the lock. A corrupt record is
// treated as absent rather than wedging every flow behind it.
func (s *Service) load() (*pairing.SyncAccount, bool) {
	data, err := s.secrets.Get(accountKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("reading account record", slog.String("error", err.Error()))
		}

		return nil, false
	}

	var account pairing.SyncAccount
	if err := json.Unmarshal(data, &account); err != nil {
		s.logger.Warn("corrupt account record", slog.String("error", err.Error()))

		return nil, false
	}

	return &account, true
}

func (s *Service) persist(account *pairing.SyncAccount) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encoding account record: %w", err)
	}

	if err := s.secrets.Set(accountKey, data); err != nil {
		return fmt.Errorf("persisting account record: %w", err)
	}

	return nil
}

// CreateAccount provisions a fresh account on the relay and registers this
// device as its first member.
func (s *Service) CreateAccount(ctx context.Context, deviceName, deviceType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.load(); ok {
		return ErrAccountExists
	}

	primaryKey, err := keys.NewSecret()
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	secretKey, err := keys.NewSecret()
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	userID := keys.NewID()
	deviceID := keys.NewID()

	credential, err := keys.DeriveCredential(primaryKey, userID)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	resp, err := s.client.Signup(ctx, relay.SignupRequest{
		UserID:         userID,
		CredentialHash: credential,
		Device:         pairing.RegisteredDevice{ID: deviceID, Name: deviceName, Type: deviceType},
	})
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	account := &pairing.SyncAccount{
		DeviceID:   deviceID,
		DeviceName: deviceName,
		DeviceType: deviceType,
		UserID:     userID,
		PrimaryKey: primaryKey,
		SecretKey:  secretKey,
		Token:      resp.Token,
		State:      pairing.AccountActive,
	}

	if err := s.persist(account); err != nil {
		return err
	}

	s.logger.Info("sync account created",
		slog.String("user_id", userID),
		slog.String("device_id", deviceID),
	)

	return nil
}

// Login authenticates this device into the account the recovery credential
// identifies, registers the device, and persists the resulting record. Any
// previous record on this device is replaced.
func (s *Service) Login(ctx context.Context, code pairing.RecoveryCode, deviceName, deviceType string) ([]pairing.RegisteredDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := keys.DeriveCredential(code.PrimaryKey, code.UserID)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	deviceID := keys.NewID()

	resp, err := s.client.Login(ctx, relay.LoginRequest{
		UserID:         code.UserID,
		CredentialHash: credential,
		Device:         pairing.RegisteredDevice{ID: deviceID, Name: deviceName, Type: deviceType},
	})
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	secretKey, err := keys.NewSecret()
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	account := &pairing.SyncAccount{
		DeviceID:   deviceID,
		DeviceName: deviceName,
		DeviceType: deviceType,
		UserID:     code.UserID,
		PrimaryKey: code.PrimaryKey,
		SecretKey:  secretKey,
		Token:      resp.Token,
		State:      pairing.AccountActive,
	}

	if err := s.persist(account); err != nil {
		return nil, err
	}

	s.logger.Info("logged in to sync account",
		slog.String("user_id", code.UserID),
		slog.Int("devices", len(resp.Devices)),
	)

	return resp.Devices, nil
}

// RegisteredDevices lists the devices on the current account.
func (s *Service) RegisteredDevices(ctx context.Context) ([]pairing.RegisteredDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.load()
	if !ok {
		return nil, ErrNoAccount
	}

	resp, err := s.client.ListDevices(ctx, account.Token)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	return resp.Devices, nil
}

// Disconnect removes this device from its account on the relay and drops
// the local record. The record is only dropped once the relay confirms, so
// a failed disconnect leaves the account usable.
func (s *Service) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.load()
	if !ok {
		return ErrNoAccount
	}

	if err := s.client.Logout(ctx, account.Token, account.DeviceID); err != nil {
		return fmt.Errorf("disconnecting: %w", err)
	}

	if err := s.secrets.Remove(accountKey); err != nil {
		return fmt.Errorf("removing account record: %w", err)
	}

	keys.ZeroKey(account.PrimaryKey)
	keys.ZeroKey(account.SecretKey)

	s.logger.Info("disconnected from sync account", slog.String("user_id", account.UserID))

	return nil
}
