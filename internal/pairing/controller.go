package pairing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// autoSwitchMaxOtherDevices is the most other registered devices an existing
// account may have for recovery to switch accounts without asking. Abandoning
// a lone, throwaway account is safe; silently leaving a multi-device account
// is not, so anything above this defers to the caller.
const autoSwitchMaxOtherDevices = 1

// busyKind tracks which kind of flow currently owns the controller's
// flow slot.
type busyKind int

const (
	stateIdle busyKind = iota
	// busyPairing and busyCodeEntry are the guarded entry-point flows; a
	// second entry-point call while one is active is rejected outright.
	busyPairing
	busyCodeEntry
	// busyDisplay is a show-my-code background poll. It occupies the flow
	// slot but is replaced, not protected, when a new flow starts.
	busyDisplay
)

type stoppable interface {
	StopPolling()
}

// Controller drives device pairing, key exchange, and account recovery.
//
// One logical flow runs at a time: StartPairingMode and SyncCodeEntered
// reject overlapping invocations before any side effect. Flows execute on
// their own goroutine and suspend at every network call; the controller
// holds no lock across those calls. The only shared state is the flow slot
// (busy kind, generation, active poll handle, flow cancel func), guarded by
// mu and reset when a flow reaches a terminal state or Cancel tears it down.
type Controller struct {
	accounts     AccountService
	services     RemoteServiceFactory
	transmitters TransmitterFactory
	delegate     Delegate
	logger       *slog.Logger

	deviceName string
	deviceType string
	source     SetupSource

	mu         sync.Mutex
	busy       busyKind
	gen        uint64
	activePoll stoppable
	cancelFlow context.CancelFunc
}

// ControllerConfig holds the collaborators and device identity the
// controller needs.
type ControllerConfig struct {
	Accounts     AccountService
	Services     RemoteServiceFactory
	Transmitters TransmitterFactory
	Delegate     Delegate
	DeviceName   string
	DeviceType   string
	Source       SetupSource
}

// NewController creates a Controller from the given config.
func NewController(cfg ControllerConfig, logger *slog.Logger) *Controller {
	return &Controller{
		accounts:     cfg.Accounts,
		services:     cfg.Services,
		transmitters: cfg.Transmitters,
		delegate:     cfg.Delegate,
		logger:       logger,
		deviceName:   cfg.DeviceName,
		deviceType:   cfg.DeviceType,
		source:       cfg.Source,
	}
}

// Busy reports whether a flow is currently in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.busy != stateIdle
}

// claim claims the flow slot for a new flow. Entry-point kinds refuse when
// another entry-point flow is active; a display poll is replaced instead,
// since entering or scanning a code supersedes showing one. Display claims
// replace whatever is active. The returned flow context inherits the
// caller's values but not its cancellation: flows outlive the call that
// launched them and are torn down via Cancel.
func (c *Controller) claim(ctx context.Context, kind busyKind) (context.Context, uint64, bool) {
	c.mu.Lock()

	entryPoint := kind == busyPairing || kind == busyCodeEntry
	if entryPoint && (c.busy == busyPairing || c.busy == busyCodeEntry) {
		c.mu.Unlock()

		return nil, 0, false
	}

	prevPoll := c.activePoll
	prevCancel := c.cancelFlow
	c.activePoll = nil

	c.busy = kind
	c.gen++
	gen := c.gen

	flowCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancelFlow = cancel
	c.mu.Unlock()

	// Tear down a superseded display flow. No delegate callback: the flow
	// was replaced, it did not fail.
	if prevPoll != nil {
		prevPoll.StopPolling()
	}

	if prevCancel != nil {
		prevCancel()
	}

	return flowCtx, gen, true
}

// setActivePoll records the flow's poll handle so Cancel and finish can stop
// it. If the flow has already been superseded the handle is stopped
// immediately instead.
func (c *Controller) setActivePoll(gen uint64, p stoppable) {
	c.mu.Lock()

	if c.gen != gen || c.busy == stateIdle {
		c.mu.Unlock()
		p.StopPolling()

		return
	}

	c.activePoll = p
	c.mu.Unlock()
}

// finish tears the flow down: stops any active poll, cancels the flow
// context, and returns the controller to idle. It reports whether this call
// performed the teardown; a false return means the flow already ended
// (cancelled or superseded) and the caller must not notify the delegate.
func (c *Controller) finish(gen uint64) bool {
	c.mu.Lock()

	if c.gen != gen || c.busy == stateIdle {
		c.mu.Unlock()

		return false
	}

	poll := c.activePoll
	cancel := c.cancelFlow
	c.activePoll = nil
	c.cancelFlow = nil
	c.busy = stateIdle
	c.mu.Unlock()

	// Stop the poll before any terminal delegate callback fires.
	if poll != nil {
		poll.StopPolling()
	}

	if cancel != nil {
		cancel()
	}

	return true
}

// fail ends the flow and delivers the mapped error with its underlying
// cause. Cancelled and superseded flows are silent: their teardown already
// happened and no callback is owed.
func (c *Controller) fail(gen uint64, connErr ConnectionError, underlying error, role SetupRole) {
	if !c.finish(gen) {
		return
	}

	c.logger.Debug("pairing flow failed",
		slog.String("error", connErr.Error()),
		slog.Any("cause", underlying),
	)
	c.delegate.DidError(connErr, underlying, role)
}

// Cancel stops any in-flight poll and returns the controller to idle. It
// fires no delegate callback: cancellation is caller-initiated teardown,
// not a protocol failure.
func (c *Controller) Cancel() {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	c.finish(gen)
}

// StartPairingMode handles a code the caller already holds as a PairingInfo,
// typically from a scanned QR. It returns false when the controller is busy,
// the code does not decode, or the code is a recovery credential: recovery
// is deliberately rejected on this entry point so it always goes through the
// explicit recovery flow. A true return means the flow was launched; the
// terminal result arrives via the delegate.
func (c *Controller) StartPairingMode(ctx context.Context, info PairingInfo) bool {
	flowCtx, gen, ok := c.claim(ctx, busyPairing)
	if !ok {
		return false
	}

	code, err := DecodeBase64Code(info.Base64Code)
	if err != nil {
		c.fail(gen, ErrUnableToRecognizeCode, nil, RoleUnknown)

		return false
	}

	c.delegate.DidRecognizeCode(c.source, CodeScanned)

	switch {
	case code.Recovery != nil:
		c.fail(gen, ErrUnableToRecognizeCode, nil, RoleUnknown)

		return false
	case code.Exchange != nil:
		go c.runExchangeResponder(flowCtx, gen, *code.Exchange)
	case code.Connect != nil:
		go c.runConnectResponder(flowCtx, gen, *code.Connect, CodeScanned)
	}

	return true
}

// SyncCodeEntered handles a raw pasted or typed string, possibly a full
// pairing URL. It mirrors StartPairingMode except that recovery credentials
// are accepted here and run the recovery-login flow. canScanURLBarcodes
// gates whether URL-wrapped codes are accepted; when false the input is
// taken as a bare code with no URL extraction.
func (c *Controller) SyncCodeEntered(ctx context.Context, rawCode string, canScanURLBarcodes bool, codeSource CodeSource) bool {
	flowCtx, gen, ok := c.claim(ctx, busyCodeEntry)
	if !ok {
		return false
	}

	var (
		code *PairingCode
		err  error
	)

	if canScanURLBarcodes {
		code, err = DecodeBase64Code(rawCode)
	} else {
		code, err = decodeBareCode(rawCode)
	}

	if err != nil {
		c.fail(gen, ErrUnableToRecognizeCode, nil, RoleUnknown)

		return false
	}

	c.delegate.DidRecognizeCode(c.source, codeSource)

	switch {
	case code.Recovery != nil:
		go c.runRecoveryLogin(flowCtx, gen, *code.Recovery)
	case code.Exchange != nil:
		go c.runExchangeResponder(flowCtx, gen, *code.Exchange)
	case code.Connect != nil:
		go c.runConnectResponder(flowCtx, gen, *code.Connect, codeSource)
	}

	return true
}

// StartExchangeMode creates a key exchanger, starts its background poll, and
// returns the pairing info to display. Failure to start the service
// propagates synchronously. The poll-side continuation seals this device's
// recovery credential to whichever peer responds.
func (c *Controller) StartExchangeMode(ctx context.Context) (PairingInfo, error) {
	exchanger, err := c.services.NewKeyExchanger()
	if err != nil {
		return PairingInfo{}, err
	}

	flowCtx, gen, _ := c.claim(ctx, busyDisplay)
	c.setActivePoll(gen, exchanger)

	go c.runExchangePollSide(flowCtx, gen, exchanger)

	return NewPairingInfo(exchanger.Code(), c.deviceName), nil
}

// StartConnectMode creates a connector, starts its background poll, and
// returns the pairing info to display. The poll-side continuation logs this
// device in with whatever recovery credential the peer transmits.
func (c *Controller) StartConnectMode(ctx context.Context) (PairingInfo, error) {
	connector, err := c.services.NewConnector()
	if err != nil {
		return PairingInfo{}, err
	}

	flowCtx, gen, _ := c.claim(ctx, busyDisplay)
	c.setActivePoll(gen, connector)

	go c.runConnectPollSide(flowCtx, gen, connector)

	return NewPairingInfo(connector.Code(), c.deviceName), nil
}

// SwitchAccount performs the confirmed account switch after the delegate was
// told about a two-accounts conflict: disconnect the current account, then
// log in with the new recovery credential. It returns false when another
// entry-point flow is in flight.
func (c *Controller) SwitchAccount(ctx context.Context, code RecoveryCode) bool {
	flowCtx, gen, ok := c.claim(ctx, busyCodeEntry)
	if !ok {
		return false
	}

	go func() {
		if err := c.accounts.Disconnect(flowCtx); err != nil {
			c.fail(gen, ErrFailedToLogIn, err, RoleRecipient)

			return
		}

		c.performLogin(flowCtx, gen, code, true)
	}()

	return true
}

// runExchangeResponder handles a scanned exchange code: generate and
// transmit local key material, poll for the sealed recovery credential, log
// in with it.
func (c *Controller) runExchangeResponder(ctx context.Context, gen uint64, peer ExchangeKey) {
	const role = RoleRecipient

	transmitter := c.transmitters.NewExchangeKeyTransmitter()

	c.delegate.WillBeginTransmittingRecoveryKey()
	info, err := transmitter.SendGeneratedExchangeInfo(ctx, peer, c.deviceName)
	c.delegate.DidFinishTransmittingRecoveryKey()

	if err != nil {
		c.fail(gen, ErrFailedToTransmitExchangeKey, err, role)

		return
	}

	recoverer, err := c.services.NewExchangeRecoverer(*info)
	if err != nil {
		c.fail(gen, ErrFailedToFetchExchangeRecoveryKey, err, role)

		return
	}

	c.setActivePoll(gen, recoverer)

	code, err := recoverer.PollForRecoveryCode(ctx)
	if err != nil {
		c.fail(gen, ErrFailedToFetchExchangeRecoveryKey, err, role)

		return
	}

	if code == nil {
		// Peer never responded. Valid termination, not a failure.
		c.finish(gen)

		return
	}

	devices, err := c.accounts.Login(ctx, *code, c.deviceName, c.deviceType)
	if err != nil {
		c.fail(gen, ErrFailedToLogIn, err, role)

		return
	}

	if !c.finish(gen) {
		return
	}

	c.delegate.DidCompleteLogin(devices, false, role)
}

// runConnectResponder handles a scanned connect code: ensure an account
// exists, then seal this device's recovery credential to the peer.
func (c *Controller) runConnectResponder(ctx context.Context, gen uint64, connect ConnectCode, codeSource CodeSource) {
	const role = RoleSharer

	account, hadAccount := c.accounts.Current()
	if !hadAccount {
		if err := c.accounts.CreateAccount(ctx, c.deviceName, c.deviceType); err != nil {
			c.fail(gen, ErrFailedToCreateAccount, err, role)

			return
		}

		c.delegate.DidCreateSyncAccount()

		var ok bool
		if account, ok = c.accounts.Current(); !ok {
			c.fail(gen, ErrFailedToCreateAccount, errors.New("account missing after creation"), role)

			return
		}
	}

	transmitter := c.transmitters.NewRecoveryKeyTransmitter()

	c.delegate.WillBeginTransmittingRecoveryKey()
	err := transmitter.Send(ctx, connect, account.RecoveryCode())
	c.delegate.DidFinishTransmittingRecoveryKey()

	if err != nil {
		c.fail(gen, ErrFailedToTransmitConnectRecoveryKey, err, role)

		return
	}

	if !c.finish(gen) {
		return
	}

	c.delegate.DidCompleteAccountConnection(!hadAccount, c.source, codeSource)
}

// runRecoveryLogin handles a recovery credential entered on this device. A
// device with no account logs straight in. A device already on an account
// auto-switches only when that account has at most one other registered
// device; otherwise the conflict is surfaced and the decision deferred.
func (c *Controller) runRecoveryLogin(ctx context.Context, gen uint64, code RecoveryCode) {
	const role = RoleRecipient

	account, hasAccount := c.accounts.Current()
	if !hasAccount {
		c.performLogin(ctx, gen, code, true)

		return
	}

	devices, err := c.accounts.RegisteredDevices(ctx)
	if err != nil {
		c.fail(gen, ErrFailedToLogIn, err, role)

		return
	}

	others := 0

	for _, d := range devices {
		if d.ID != account.DeviceID {
			others++
		}
	}

	if others > autoSwitchMaxOtherDevices {
		if !c.finish(gen) {
			return
		}

		c.delegate.DidFindTwoAccountsDuringRecovery(code, role)

		return
	}

	if err := c.accounts.Disconnect(ctx); err != nil {
		c.fail(gen, ErrFailedToLogIn, err, role)

		return
	}

	c.performLogin(ctx, gen, code, true)
}

// performLogin is the shared tail of the recovery paths.
func (c *Controller) performLogin(ctx context.Context, gen uint64, code RecoveryCode, isRecovery bool) {
	const role = RoleRecipient

	devices, err := c.accounts.Login(ctx, code, c.deviceName, c.deviceType)
	if err != nil {
		c.fail(gen, ErrFailedToLogIn, err, role)

		return
	}

	if !c.finish(gen) {
		return
	}

	c.delegate.DidCompleteLogin(devices, isRecovery, role)
}

// runExchangePollSide is the continuation behind StartExchangeMode: wait for
// a peer to answer the displayed exchange code, then seal this device's
// recovery credential to the peer's public key.
func (c *Controller) runExchangePollSide(ctx context.Context, gen uint64, exchanger KeyExchanger) {
	const role = RoleSharer

	msg, err := exchanger.PollForPublicKey(ctx)
	if err != nil {
		if errors.Is(err, ErrPollTimedOut) {
			c.fail(gen, ErrPollingForRecoveryKeyTimedOut, err, role)

			return
		}

		c.fail(gen, ErrFailedToFetchPublicKey, err, role)

		return
	}

	if msg == nil {
		c.finish(gen)

		return
	}

	account, hadAccount := c.accounts.Current()
	if !hadAccount {
		if err := c.accounts.CreateAccount(ctx, c.deviceName, c.deviceType); err != nil {
			c.fail(gen, ErrFailedToCreateAccount, err, role)

			return
		}

		c.delegate.DidCreateSyncAccount()

		var ok bool
		if account, ok = c.accounts.Current(); !ok {
			c.fail(gen, ErrFailedToCreateAccount, errors.New("account missing after creation"), role)

			return
		}
	}

	transmitter := c.transmitters.NewExchangeRecoveryTransmitter()

	c.delegate.WillBeginTransmittingRecoveryKey()
	err = transmitter.SendRecoveryCode(ctx, *msg, account.RecoveryCode())
	c.delegate.DidFinishTransmittingRecoveryKey()

	if err != nil {
		c.fail(gen, ErrFailedToTransmitExchangeRecoveryKey, err, role)

		return
	}

	if !c.finish(gen) {
		return
	}

	c.delegate.DidCompleteAccountConnection(!hadAccount, c.source, CodeScanned)
}

// runConnectPollSide is the continuation behind StartConnectMode: wait for
// the peer that scanned the displayed connect code to transmit a recovery
// credential, then log in with it.
func (c *Controller) runConnectPollSide(ctx context.Context, gen uint64, connector Connector) {
	const role = RoleRecipient

	code, err := connector.PollForRecoveryCode(ctx)
	if err != nil {
		if errors.Is(err, ErrPollTimedOut) {
			c.fail(gen, ErrPollingForRecoveryKeyTimedOut, err, role)

			return
		}

		c.fail(gen, ErrFailedToFetchConnectRecoveryKey, err, role)

		return
	}

	if code == nil {
		c.finish(gen)

		return
	}

	devices, err := c.accounts.Login(ctx, *code, c.deviceName, c.deviceType)
	if err != nil {
		c.fail(gen, ErrFailedToLogIn, err, role)

		return
	}

	if !c.finish(gen) {
		return
	}

	c.delegate.DidCompleteLogin(devices, false, role)
}
