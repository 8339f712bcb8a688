// Package pairing implements the sync connection engine: the pairing code
// codec and the connection controller that drives device pairing, key
// exchange, and account recovery between two devices joining the same
// sync account.
package pairing

// ExchangeKey is a short-lived code advertising a freshly generated public
// key, used to bootstrap a mutual key exchange before any account exists on
// one side.
type ExchangeKey struct {
	KeyID     string `json:"key_id"`
	PublicKey []byte `json:"public_key"`
}

// ConnectCode advertises an existing or about-to-be-created account's
// connection secret, inviting a second device into that account.
type ConnectCode struct {
	DeviceID  string `json:"device_id"`
	SecretKey []byte `json:"secret_key"`
}

// RecoveryCode is the long-term credential that fully authenticates a device
// into a sync account. More powerful and more sensitive than the other two
// code kinds.
type RecoveryCode struct {
	UserID     string `json:"user_id"`
	PrimaryKey []byte `json:"primary_key"`
}

// PairingCode is the decoded form of a scanned or pasted code. Exactly one
// field is non-nil; DecodeBase64Code never produces anything else.
type PairingCode struct {
	Exchange *ExchangeKey  `json:"exchange_key,omitempty"`
	Connect  *ConnectCode  `json:"connect,omitempty"`
	Recovery *RecoveryCode `json:"recovery,omitempty"`
}

// ExchangeInfo is the key material generated locally when responding to an
// exchange code. SecretKey never leaves the device unencrypted.
type ExchangeInfo struct {
	KeyID     string
	PublicKey []byte
	SecretKey []byte
}

// ExchangeMessage is the payload retrieved by polling for a peer's public key.
type ExchangeMessage struct {
	KeyID      string `json:"key_id"`
	PublicKey  []byte `json:"public_key"`
	DeviceName string `json:"device_name"`
}

// RegisteredDevice describes one device registered against a sync account.
// The controller forwards these to its delegate without further processing.
type RegisteredDevice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// AccountState is the lifecycle state of a sync account record.
type AccountState string

// AccountState values.
const (
	AccountActive   AccountState = "active"
	AccountInactive AccountState = "inactive"
)

// SyncAccount is the authenticated account record. It is owned by the
// account service; the controller only reads it or triggers creation and
// login, never mutates fields directly.
type SyncAccount struct {
	DeviceID   string       `json:"device_id"`
	DeviceName string       `json:"device_name"`
	DeviceType string       `json:"device_type"`
	UserID     string       `json:"user_id"`
	PrimaryKey []byte       `json:"primary_key"`
	SecretKey  []byte       `json:"secret_key"`
	Token      string       `json:"token"`
	State      AccountState `json:"state"`
}

// RecoveryCode returns the recovery credential for the account.
func (a *SyncAccount) RecoveryCode() RecoveryCode {
	return RecoveryCode{UserID: a.UserID, PrimaryKey: a.PrimaryKey}
}

// SetupRole labels whether the local device is sharing access or being
// granted access. Used only for labelling by the caller.
type SetupRole string

// SetupRole values.
const (
	RoleSharer    SetupRole = "sharer"
	RoleRecipient SetupRole = "recipient"
	RoleUnknown   SetupRole = "unknown"
)

// SetupSource identifies which UI surface initiated the pairing flow.
type SetupSource string

// SetupSource values.
const (
	SourceSetup    SetupSource = "setup"
	SourceSettings SetupSource = "settings"
	SourceRecovery SetupSource = "recovery"
)

// CodeSource identifies how the pairing code reached the controller.
type CodeSource string

// CodeSource values.
const (
	CodeScanned CodeSource = "scanned"
	CodePasted  CodeSource = "pasted"
	CodeTyped   CodeSource = "typed"
)
