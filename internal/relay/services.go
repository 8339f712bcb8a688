package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/seftonlabs/synclink/internal/keys"
	"github.com/seftonlabs/synclink/internal/pairing"
)

const (
	// defaultPollInterval is the delay between relay fetches within one
	// long poll.
	defaultPollInterval = 2 * time.Second

	// defaultPollTimeout bounds how long a poll waits for the peer before
	// giving up.
	defaultPollTimeout = 10 * time.Minute
)

// ServiceFactory creates the polling services and transmitters the pairing
// controller consumes, all backed by one relay client.
type ServiceFactory struct {
	client       *Client
	logger       *slog.Logger
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// FactoryConfig holds optional overrides for poll timing.
type FactoryConfig struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// NewServiceFactory creates a ServiceFactory. Zero durations in cfg fall
// back to the defaults.
func NewServiceFactory(client *Client, cfg FactoryConfig, logger *slog.Logger) *ServiceFactory {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}

	return &ServiceFactory{
		client:       client,
		logger:       logger,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
	}
}

// poller owns the stop channel shared by every polling service. StopPolling
// is idempotent and safe to call concurrently with an active poll.
type poller struct {
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopped  chan struct{}
}

func newPoller(interval, timeout time.Duration, logger *slog.Logger) poller {
	return poller{
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		stopped:  make(chan struct{}),
	}
}

func (p *poller) StopPolling() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

// errPollStopped is the internal loop outcome for StopPolling and context
// cancellation; services translate it into a nil result.
var errPollStopped = errors.New("polling stopped")

// loop fetches via fn every interval until fn yields a payload, the
// deadline lapses (pairing.ErrPollTimedOut), StopPolling is called, or the
// context is cancelled (errPollStopped for both). Transient relay errors
// keep the loop alive; anything else aborts it.
func (p *poller) loop(ctx context.Context, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	deadline := time.NewTimer(p.timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		payload, err := fn(ctx)
		if err != nil && !IsTransient(err) {
			if ctx.Err() != nil {
				return nil, errPollStopped
			}

			return nil, err
		}

		if err != nil {
			p.logger.Debug("transient poll error", slog.String("error", err.Error()))
		}

		if payload != nil {
			return payload, nil
		}

		select {
		case <-p.stopped:
			return nil, errPollStopped
		case <-ctx.Done():
			return nil, errPollStopped
		case <-deadline.C:
			return nil, pairing.ErrPollTimedOut
		case <-ticker.C:
		}
	}
}

// keyExchanger advertises an exchange code and polls for a peer public key.
type keyExchanger struct {
	poller

	client    *Client
	logger    *slog.Logger
	keyID     string
	publicKey []byte
	secretKey []byte
	code      string
}

// NewKeyExchanger generates a fresh invitation key pair and returns the
// exchanger advertising it.
func (f *ServiceFactory) NewKeyExchanger() (pairing.KeyExchanger, error) {
	pub, priv, err := keys.NewKeyPair()
	if err != nil {
		return nil, fmt.Errorf("creating key exchanger: %w", err)
	}

	keyID := keys.NewID()

	code, err := pairing.EncodeBase64Code(&pairing.PairingCode{
		Exchange: &pairing.ExchangeKey{KeyID: keyID, PublicKey: pub},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding exchange code: %w", err)
	}

	return &keyExchanger{
		poller:    newPoller(f.pollInterval, f.pollTimeout, f.logger),
		client:    f.client,
		logger:    f.logger,
		keyID:     keyID,
		publicKey: pub,
		secretKey: priv,
		code:      code,
	}, nil
}

func (e *keyExchanger) Code() string { return e.code }

func (e *keyExchanger) PollForPublicKey(ctx context.Context) (*pairing.ExchangeMessage, error) {
	sealed, err := e.loop(ctx, func(ctx context.Context) ([]byte, error) {
		return e.client.GetExchange(ctx, e.keyID)
	})
	if err != nil {
		if errors.Is(err, errPollStopped) {
			return nil, nil
		}

		return nil, err
	}

	plaintext, err := keys.OpenAnonymous(sealed, e.publicKey, e.secretKey)
	if err != nil {
		return nil, fmt.Errorf("opening exchange payload: %w", err)
	}

	var msg pairing.ExchangeMessage
	if err := json.Unmarshal(plaintext, &msg); err != nil {
		return nil, fmt.Errorf("decoding exchange message: %w", err)
	}

	e.logger.Debug("peer public key received",
		slog.String("key_id", e.keyID),
		slog.String("device", msg.DeviceName),
	)

	return &msg, nil
}

// connector advertises a connect code and polls for a recovery credential.
type connector struct {
	poller

	client    *Client
	logger    *slog.Logger
	deviceID  string
	secretKey []byte
	code      string
}

// NewConnector generates a connect channel (device ID plus shared secret)
// and returns the connector advertising it.
func (f *ServiceFactory) NewConnector() (pairing.Connector, error) {
	secret, err := keys.NewSecret()
	if err != nil {
		return nil, fmt.Errorf("creating connector: %w", err)
	}

	deviceID := keys.NewID()

	code, err := pairing.EncodeBase64Code(&pairing.PairingCode{
		Connect: &pairing.ConnectCode{DeviceID: deviceID, SecretKey: secret},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding connect code: %w", err)
	}

	return &connector{
		poller:    newPoller(f.pollInterval, f.pollTimeout, f.logger),
		client:    f.client,
		logger:    f.logger,
		deviceID:  deviceID,
		secretKey: secret,
		code:      code,
	}, nil
}

func (c *connector) Code() string { return c.code }

func (c *connector) PollForRecoveryCode(ctx context.Context) (*pairing.RecoveryCode, error) {
	sealed, err := c.loop(ctx, func(ctx context.Context) ([]byte, error) {
		return c.client.GetConnect(ctx, c.deviceID)
	})
	if err != nil {
		if errors.Is(err, errPollStopped) {
			return nil, nil
		}

		return nil, err
	}

	plaintext, err := keys.OpenWithSecret(sealed, c.secretKey)
	if err != nil {
		return nil, fmt.Errorf("opening connect payload: %w", err)
	}

	code, err := decodeRecoveryPayload(plaintext)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("recovery credential received", slog.String("device_id", c.deviceID))

	return code, nil
}

// exchangeRecoverer is bound to locally generated exchange key material and
// polls for the recovery credential sealed to it.
type exchangeRecoverer struct {
	poller

	client *Client
	logger *slog.Logger
	info   pairing.ExchangeInfo
}

// NewExchangeRecoverer returns a recoverer bound to the given exchange key
// material.
func (f *ServiceFactory) NewExchangeRecoverer(info pairing.ExchangeInfo) (pairing.ExchangeRecoverer, error) {
	return &exchangeRecoverer{
		poller: newPoller(f.pollInterval, f.pollTimeout, f.logger),
		client: f.client,
		logger: f.logger,
		info:   info,
	}, nil
}

func (r *exchangeRecoverer) PollForRecoveryCode(ctx context.Context) (*pairing.RecoveryCode, error) {
	sealed, err := r.loop(ctx, func(ctx context.Context) ([]byte, error) {
		return r.client.GetExchange(ctx, r.info.KeyID)
	})
	if err != nil {
		// The recoverer's exhausted poll is valid termination: the peer
		// simply never sent a credential.
		if errors.Is(err, errPollStopped) || errors.Is(err, pairing.ErrPollTimedOut) {
			return nil, nil
		}

		return nil, err
	}

	plaintext, err := keys.OpenAnonymous(sealed, r.info.PublicKey, r.info.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("opening recovery payload: %w", err)
	}

	code, err := decodeRecoveryPayload(plaintext)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("recovery credential received", slog.String("key_id", r.info.KeyID))

	return code, nil
}

// recoveryPayload is the plaintext shape of a transmitted recovery
// credential: the recovery key of a pairing code, reusing the codec's JSON
// envelope so either side can decode it with the same machinery.
type recoveryPayload struct {
	Recovery *pairing.RecoveryCode `json:"recovery"`
}

func decodeRecoveryPayload(plaintext []byte) (*pairing.RecoveryCode, error) {
	var payload recoveryPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil || payload.Recovery == nil {
		return nil, fmt.Errorf("decoding recovery payload: malformed credential")
	}

	return payload.Recovery, nil
}

func encodeRecoveryPayload(code pairing.RecoveryCode) ([]byte, error) {
	data, err := json.Marshal(recoveryPayload{Recovery: &code})
	if err != nil {
		return nil, fmt.Errorf("encoding recovery payload: %w", err)
	}

	return data, nil
}
