package relay

import "github.com/seftonlabs/synclink/internal/pairing"

// SignupRequest registers a new account. CredentialHash is derived from the
// primary key; the key itself never reaches the relay.
type SignupRequest struct {
	UserID         string                   `json:"user_id"`
	CredentialHash []byte                   `json:"credential_hash"`
	Device         pairing.RegisteredDevice `json:"device"`
}

// SignupResponse carries the auth token for the new account's first device.
type SignupResponse struct {
	Token string `json:"token"`
}

// LoginRequest authenticates a device into an existing account.
type LoginRequest struct {
	UserID         string                   `json:"user_id"`
	CredentialHash []byte                   `json:"credential_hash"`
	Device         pairing.RegisteredDevice `json:"device"`
}

// LoginResponse carries the device token and the account's full device list.
type LoginResponse struct {
	Token   string                     `json:"token"`
	Devices []pairing.RegisteredDevice `json:"devices"`
}

// DeviceListResponse is the result of listing an account's devices.
type DeviceListResponse struct {
	Devices []pairing.RegisteredDevice `json:"devices"`
}

// LogoutRequest removes a device from its account.
type LogoutRequest struct {
	DeviceID string `json:"device_id"`
}
