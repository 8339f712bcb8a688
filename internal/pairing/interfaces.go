package pairing

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=pairing

// AccountService owns the sync account record. Implementations serialise
// access per account; the controller performs no extra locking around it.
type AccountService interface {
	// CreateAccount provisions a fresh account and registers this device.
	CreateAccount(ctx context.Context, deviceName, deviceType string) error

	// Login authenticates this device into the account identified by the
	// recovery credential and returns the account's registered devices.
	Login(ctx context.Context, code RecoveryCode, deviceName, deviceType string) ([]RegisteredDevice, error)

	// RegisteredDevices lists the devices on the current account.
	RegisteredDevices(ctx context.Context) ([]RegisteredDevice, error)

	// Disconnect removes this device from its current account.
	Disconnect(ctx context.Context) error

	// Current returns the active account record, if any.
	Current() (*SyncAccount, bool)
}

// KeyExchanger advertises an exchange code and polls for a peer's public
// key. Created per flow; StopPolling is idempotent and safe to call
// concurrently with an active poll.
type KeyExchanger interface {
	// Code is the transport-encoded pairing code to display.
	Code() string

	// PollForPublicKey blocks until a peer responds, the deadline lapses
	// (ErrPollTimedOut), or StopPolling is called (nil, nil).
	PollForPublicKey(ctx context.Context) (*ExchangeMessage, error)

	StopPolling()
}

// Connector advertises a connect code and polls for a recovery credential
// transmitted by the peer that scanned it.
type Connector interface {
	Code() string

	// PollForRecoveryCode blocks until a peer responds, the deadline lapses
	// (ErrPollTimedOut), or StopPolling is called (nil, nil).
	PollForRecoveryCode(ctx context.Context) (*RecoveryCode, error)

	StopPolling()
}

// ExchangeRecoverer is bound to locally generated exchange key material and
// polls for the recovery credential the peer seals to it. A nil result with
// nil error means the peer never responded before the poll exhausted, which
// is valid termination rather than a failure.
type ExchangeRecoverer interface {
	PollForRecoveryCode(ctx context.Context) (*RecoveryCode, error)
	StopPolling()
}

// RemoteServiceFactory creates remote pairing services, one per flow.
type RemoteServiceFactory interface {
	NewKeyExchanger() (KeyExchanger, error)
	NewConnector() (Connector, error)
	NewExchangeRecoverer(info ExchangeInfo) (ExchangeRecoverer, error)
}

// ExchangeKeyTransmitter responds to a scanned exchange code: it generates
// local key material, seals the public half to the peer's key, and pushes
// it to the relay.
type ExchangeKeyTransmitter interface {
	SendGeneratedExchangeInfo(ctx context.Context, peer ExchangeKey, deviceName string) (*ExchangeInfo, error)
}

// ExchangeRecoveryTransmitter seals a recovery credential to an exchange
// peer's public key and pushes it to the relay.
type ExchangeRecoveryTransmitter interface {
	SendRecoveryCode(ctx context.Context, peer ExchangeMessage, code RecoveryCode) error
}

// RecoveryKeyTransmitter seals a recovery credential with a connect secret
// and pushes it to the connect peer's channel.
type RecoveryKeyTransmitter interface {
	Send(ctx context.Context, connect ConnectCode, code RecoveryCode) error
}

// TransmitterFactory creates transmitters, one per use.
type TransmitterFactory interface {
	NewExchangeKeyTransmitter() ExchangeKeyTransmitter
	NewExchangeRecoveryTransmitter() ExchangeRecoveryTransmitter
	NewRecoveryKeyTransmitter() RecoveryKeyTransmitter
}

// Delegate receives the controller's outward notifications. Methods may be
// invoked from a background goroutine; implementations redispatch to their
// own required context. Each flow delivers at most one terminal
// notification: a completion callback, DidError, or
// DidFindTwoAccountsDuringRecovery.
type Delegate interface {
	// DidRecognizeCode fires once a code has been decoded, before dispatch.
	DidRecognizeCode(source SetupSource, codeSource CodeSource)

	// DidCreateSyncAccount fires when a connect flow provisions a fresh
	// account on this device.
	DidCreateSyncAccount()

	// WillBeginTransmittingRecoveryKey and DidFinishTransmittingRecoveryKey
	// bracket the network call that pushes sealed key material to a peer.
	WillBeginTransmittingRecoveryKey()
	DidFinishTransmittingRecoveryKey()

	// DidCompleteAccountConnection is the terminal success callback for
	// sharer-side flows. shouldShowSyncEnabled is true only when this
	// connection turned sync on for the first time on this device.
	DidCompleteAccountConnection(shouldShowSyncEnabled bool, source SetupSource, codeSource CodeSource)

	// DidCompleteLogin is the terminal success callback for recipient-side
	// flows.
	DidCompleteLogin(devices []RegisteredDevice, isRecovery bool, role SetupRole)

	// DidFindTwoAccountsDuringRecovery fires instead of a login when this
	// device already belongs to a different multi-device account. The caller
	// decides whether to switch and re-invokes via SwitchAccount.
	DidFindTwoAccountsDuringRecovery(code RecoveryCode, role SetupRole)

	// DidError is the single error callback. The mapped category arrives
	// with the original lower-level error preserved for diagnostics.
	DidError(connErr ConnectionError, underlying error, role SetupRole)
}
