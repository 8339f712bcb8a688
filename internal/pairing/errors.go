package pairing

import "errors"

// ConnectionError is the closed set of failures the controller surfaces to
// its delegate. Every lower-level error is mapped into exactly one of these
// categories; the original error travels alongside it untouched.
type ConnectionError int

// ConnectionError values and their trigger conditions.
const (
	// ErrUnableToRecognizeCode: the input failed to decode, or decoded to a
	// code kind the entry point rejects.
	ErrUnableToRecognizeCode ConnectionError = iota

	// ErrFailedToFetchPublicKey: polling for a peer public key failed while
	// displaying an exchange code.
	ErrFailedToFetchPublicKey

	// ErrFailedToTransmitExchangeRecoveryKey: pushing the sealed recovery
	// payload to an exchange peer failed.
	ErrFailedToTransmitExchangeRecoveryKey

	// ErrFailedToTransmitExchangeKey: pushing the generated exchange key
	// material in response to a scanned exchange code failed.
	ErrFailedToTransmitExchangeKey

	// ErrFailedToFetchExchangeRecoveryKey: polling for the recovery payload
	// after an exchange failed.
	ErrFailedToFetchExchangeRecoveryKey

	// ErrFailedToFetchConnectRecoveryKey: polling for the recovery payload
	// while displaying a connect code failed.
	ErrFailedToFetchConnectRecoveryKey

	// ErrFailedToCreateAccount: account creation during a connect flow failed.
	ErrFailedToCreateAccount

	// ErrFailedToTransmitConnectRecoveryKey: pushing the sealed recovery
	// payload to a connect peer failed.
	ErrFailedToTransmitConnectRecoveryKey

	// ErrFailedToLogIn: logging in with a recovery credential failed.
	ErrFailedToLogIn

	// ErrPollingForRecoveryKeyTimedOut: a display-side poll reached its
	// deadline without the peer responding.
	ErrPollingForRecoveryKeyTimedOut
)

var connectionErrorNames = map[ConnectionError]string{
	ErrUnableToRecognizeCode:               "unable to recognize code",
	ErrFailedToFetchPublicKey:              "failed to fetch public key",
	ErrFailedToTransmitExchangeRecoveryKey: "failed to transmit exchange recovery key",
	ErrFailedToTransmitExchangeKey:         "failed to transmit exchange key",
	ErrFailedToFetchExchangeRecoveryKey:    "failed to fetch exchange recovery key",
	ErrFailedToFetchConnectRecoveryKey:     "failed to fetch connect recovery key",
	ErrFailedToCreateAccount:               "failed to create account",
	ErrFailedToTransmitConnectRecoveryKey:  "failed to transmit connect recovery key",
	ErrFailedToLogIn:                       "failed to log in",
	ErrPollingForRecoveryKeyTimedOut:       "polling for recovery key timed out",
}

func (e ConnectionError) Error() string {
	if name, ok := connectionErrorNames[e]; ok {
		return name
	}

	return "unknown sync connection error"
}

// ErrPollTimedOut is returned by a remote pairing service poll when its
// deadline lapses before the peer responds. The controller maps it to
// ErrPollingForRecoveryKeyTimedOut on display-side flows.
var ErrPollTimedOut = errors.New("poll deadline reached")
