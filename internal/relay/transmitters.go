package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seftonlabs/synclink/internal/keys"
	"github.com/seftonlabs/synclink/internal/pairing"
)

// TransmitterFactory creates transmitters backed by one relay client.
type TransmitterFactory struct {
	client *Client
	logger *slog.Logger
}

// NewTransmitterFactory creates a TransmitterFactory.
func NewTransmitterFactory(client *Client, logger *slog.Logger) *TransmitterFactory {
	return &TransmitterFactory{client: client, logger: logger}
}

// NewExchangeKeyTransmitter returns the transmitter used when responding to
// a scanned exchange code.
func (f *TransmitterFactory) NewExchangeKeyTransmitter() pairing.ExchangeKeyTransmitter {
	return &exchangeKeyTransmitter{client: f.client, logger: f.logger}
}

// NewExchangeRecoveryTransmitter returns the transmitter used by the
// exchange display side to push the sealed recovery credential back.
func (f *TransmitterFactory) NewExchangeRecoveryTransmitter() pairing.ExchangeRecoveryTransmitter {
	return &exchangeRecoveryTransmitter{client: f.client, logger: f.logger}
}

// NewRecoveryKeyTransmitter returns the transmitter used when responding to
// a scanned connect code.
func (f *TransmitterFactory) NewRecoveryKeyTransmitter() pairing.RecoveryKeyTransmitter {
	return &recoveryKeyTransmitter{client: f.client, logger: f.logger}
}

type exchangeKeyTransmitter struct {
	client *Client
	logger *slog.Logger
}

// SendGeneratedExchangeInfo generates a fresh local key pair, seals its
// public half (plus this device's name) to the peer's invitation key, and
// pushes it to the peer's exchange channel. The returned ExchangeInfo is
// what the flow later polls against; its secret key stays local.
func (t *exchangeKeyTransmitter) SendGeneratedExchangeInfo(ctx context.Context, peer pairing.ExchangeKey, deviceName string) (*pairing.ExchangeInfo, error) {
	pub, priv, err := keys.NewKeyPair()
	if err != nil {
		return nil, fmt.Errorf("generating exchange key pair: %w", err)
	}

	info := &pairing.ExchangeInfo{
		KeyID:     keys.NewID(),
		PublicKey: pub,
		SecretKey: priv,
	}

	msg := pairing.ExchangeMessage{
		KeyID:      info.KeyID,
		PublicKey:  info.PublicKey,
		DeviceName: deviceName,
	}

	plaintext, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encoding exchange message: %w", err)
	}

	sealed, err := keys.SealAnonymous(plaintext, peer.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("sealing exchange message: %w", err)
	}

	if err := t.client.PutExchange(ctx, peer.KeyID, sealed); err != nil {
		return nil, err
	}

	t.logger.Debug("exchange key transmitted", slog.String("peer_key_id", peer.KeyID))

	return info, nil
}

type exchangeRecoveryTransmitter struct {
	client *Client
	logger *slog.Logger
}

// SendRecoveryCode seals the recovery credential to the exchange peer's
// public key and pushes it to the peer's channel.
func (t *exchangeRecoveryTransmitter) SendRecoveryCode(ctx context.Context, peer pairing.ExchangeMessage, code pairing.RecoveryCode) error {
	plaintext, err := encodeRecoveryPayload(code)
	if err != nil {
		return err
	}

	sealed, err := keys.SealAnonymous(plaintext, peer.PublicKey)
	if err != nil {
		return fmt.Errorf("sealing recovery payload: %w", err)
	}

	if err := t.client.PutExchange(ctx, peer.KeyID, sealed); err != nil {
		return err
	}

	t.logger.Debug("recovery credential transmitted",
		slog.String("peer_key_id", peer.KeyID),
		slog.String("peer_device", peer.DeviceName),
	)

	return nil
}

type recoveryKeyTransmitter struct {
	client *Client
	logger *slog.Logger
}

// Send seals the recovery credential with the connect channel's shared
// secret and pushes it to the target device's channel.
func (t *recoveryKeyTransmitter) Send(ctx context.Context, connect pairing.ConnectCode, code pairing.RecoveryCode) error {
	plaintext, err := encodeRecoveryPayload(code)
	if err != nil {
		return err
	}

	sealed, err := keys.SealWithSecret(plaintext, connect.SecretKey)
	if err != nil {
		return fmt.Errorf("sealing recovery payload: %w", err)
	}

	if err := t.client.PutConnect(ctx, connect.DeviceID, sealed); err != nil {
		return err
	}

	t.logger.Debug("recovery credential transmitted", slog.String("connect_device_id", connect.DeviceID))

	return nil
}
