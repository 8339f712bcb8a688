package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/seftonlabs/synclink/internal/account"
	"github.com/seftonlabs/synclink/internal/config"
	"github.com/seftonlabs/synclink/internal/logging"
	"github.com/seftonlabs/synclink/internal/pairing"
	"github.com/seftonlabs/synclink/internal/relay"
	"github.com/seftonlabs/synclink/internal/store"
	"golang.org/x/sync/errgroup"
)

var Version = "dev"

const usageText = `usage: synclink <command> [args]

commands:
  exchange       display an exchange code and wait for a peer to scan it
  connect        display a connect code and wait for a peer to scan it
  pair <url>     join using a scanned pairing URL
  enter <code>   join using a pasted or typed code
  status         show the current sync account
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(os.Stderr, cfg.Environment)
	logger.Debug("synclink starting",
		slog.String("version", Version),
		slog.String("command", command),
	)

	secrets, closeStore, err := openSecretStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	client := relay.NewClient(cfg.RelayURL, nil)
	accounts := account.NewService(client, secrets, logger)

	if command == "status" {
		return printStatus(accounts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	delegate := newCLIDelegate(logger)

	controller := pairing.NewController(pairing.ControllerConfig{
		Accounts: accounts,
		Services: relay.NewServiceFactory(client, relay.FactoryConfig{
			PollInterval: cfg.PollInterval,
			PollTimeout:  cfg.PollTimeout,
		}, logger),
		Transmitters: relay.NewTransmitterFactory(client, logger),
		Delegate:     delegate,
		DeviceName:   cfg.DeviceName,
		DeviceType:   cfg.DeviceType,
		Source:       pairing.SourceSetup,
	}, logger)

	switch command {
	case "exchange":
		info, err := controller.StartExchangeMode(ctx)
		if err != nil {
			return fmt.Errorf("starting exchange mode: %w", err)
		}

		fmt.Println("Scan or open this link on the device you are adding:")
		fmt.Println(info.ToURL(cfg.PairingURL))
	case "connect":
		info, err := controller.StartConnectMode(ctx)
		if err != nil {
			return fmt.Errorf("starting connect mode: %w", err)
		}

		fmt.Println("Scan or open this link on a device already syncing:")
		fmt.Println(info.ToURL(cfg.PairingURL))
	case "pair":
		if len(args) != 1 {
			return fmt.Errorf("usage: synclink pair <url>")
		}

		info, err := pairing.PairingInfoFromURL(args[0])
		if err != nil {
			return fmt.Errorf("parsing pairing URL: %w", err)
		}

		if !controller.StartPairingMode(ctx, info) {
			return fmt.Errorf("pairing did not start; check the URL")
		}
	case "enter":
		if len(args) != 1 {
			return fmt.Errorf("usage: synclink enter <code>")
		}

		if !controller.SyncCodeEntered(ctx, args[0], true, pairing.CodePasted) {
			return fmt.Errorf("code not recognised")
		}
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usageText)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-delegate.done:
			return nil
		case <-gctx.Done():
			controller.Cancel()

			return gctx.Err()
		}
	})

	g.Go(func() error {
		return resolveConflicts(gctx, controller, delegate)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	return nil
}

// resolveConflicts handles the two-accounts case interactively: the
// controller defers the switch decision to us, so ask on stdin and
// re-invoke the confirmed switch.
func resolveConflicts(ctx context.Context, controller *pairing.Controller, delegate *cliDelegate) error {
	for {
		var code pairing.RecoveryCode

		select {
		case code = <-delegate.conflict:
		case <-delegate.done:
			return nil
		case <-ctx.Done():
			return nil
		}

		fmt.Print("This device already syncs with another account shared by several devices.\nSwitch to the new account? [y/N]: ")

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			delegate.finish()

			return nil
		}

		if !controller.SwitchAccount(ctx, code) {
			return fmt.Errorf("could not switch accounts: another flow is in flight")
		}
	}
}

func openSecretStore(cfg *config.Config) (store.SecretStore, func(), error) {
	if cfg.UseKeyring {
		return store.NewKeyringStore(""), func() {}, nil
	}

	var (
		fs  *store.FileStore
		err error
	)

	if cfg.StorePath != "" {
		fs, err = store.OpenAt(cfg.StorePath)
	} else {
		fs, err = store.Open()
	}

	if err != nil {
		return nil, nil, fmt.Errorf("opening secret store: %w", err)
	}

	return fs, func() { fs.Close() }, nil
}

func printStatus(accounts *account.Service) error {
	acct, ok := accounts.Current()
	if !ok {
		fmt.Println("not connected to a sync account")

		return nil
	}

	fmt.Printf("account: %s\ndevice:  %s (%s, %s)\nstate:   %s\n",
		acct.UserID, acct.DeviceName, acct.DeviceID, acct.DeviceType, acct.State)

	return nil
}

// cliDelegate renders controller events for a terminal user. Terminal
// events signal done exactly once; conflicts go to resolveConflicts.
type cliDelegate struct {
	logger   *slog.Logger
	done     chan struct{}
	conflict chan pairing.RecoveryCode
	doneOnce sync.Once
}

func newCLIDelegate(logger *slog.Logger) *cliDelegate {
	return &cliDelegate{
		logger:   logger,
		done:     make(chan struct{}),
		conflict: make(chan pairing.RecoveryCode, 1),
	}
}

func (d *cliDelegate) finish() {
	d.doneOnce.Do(func() { close(d.done) })
}

func (d *cliDelegate) DidRecognizeCode(source pairing.SetupSource, codeSource pairing.CodeSource) {
	d.logger.Info("code recognised",
		slog.String("source", string(source)),
		slog.String("code_source", string(codeSource)),
	)
}

func (d *cliDelegate) DidCreateSyncAccount() {
	fmt.Println("created a new sync account on this device")
}

func (d *cliDelegate) WillBeginTransmittingRecoveryKey() {
	d.logger.Debug("transmitting key material")
}

func (d *cliDelegate) DidFinishTransmittingRecoveryKey() {
	d.logger.Debug("key material transmitted")
}

func (d *cliDelegate) DidCompleteAccountConnection(shouldShowSyncEnabled bool, source pairing.SetupSource, codeSource pairing.CodeSource) {
	if shouldShowSyncEnabled {
		fmt.Println("sync is now enabled on this device")
	}

	fmt.Println("device connected")
	d.finish()
}

func (d *cliDelegate) DidCompleteLogin(devices []pairing.RegisteredDevice, isRecovery bool, role pairing.SetupRole) {
	if isRecovery {
		fmt.Println("account recovered; devices on this account:")
	} else {
		fmt.Println("logged in; devices on this account:")
	}

	for _, dev := range devices {
		fmt.Printf("  %s (%s)\n", dev.Name, dev.Type)
	}

	d.finish()
}

func (d *cliDelegate) DidFindTwoAccountsDuringRecovery(code pairing.RecoveryCode, role pairing.SetupRole) {
	select {
	case d.conflict <- code:
	default:
	}
}

func (d *cliDelegate) DidError(connErr pairing.ConnectionError, underlying error, role pairing.SetupRole) {
	d.logger.Error("pairing failed",
		slog.String("error", connErr.Error()),
		slog.Any("cause", underlying),
	)
	d.finish()
}
