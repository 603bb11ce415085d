package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/internal/logger"
	"github.com/archie1710/TRADING-BOT/internal/ops"
	"github.com/archie1710/TRADING-BOT/internal/order"
	"github.com/archie1710/TRADING-BOT/internal/order/delegator/binance"
	"github.com/archie1710/TRADING-BOT/internal/order/delegator/dummy"
	"github.com/archie1710/TRADING-BOT/internal/prompt"
	"github.com/archie1710/TRADING-BOT/internal/report"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
	"go.uber.org/zap"

	pyroscope "github.com/grafana/pyroscope-go"
)

type options struct {
	configPath string
	envPath    string
	testnet    bool
	baseURL    string
	logFile    string
	logLevel   string
	logConsole bool
	dryRun     bool
	pyroscope  string

	set map[string]bool
}

func main() {
	var opt options
	flag.StringVar(&opt.configPath, "config", "", "Path to JSON config")
	flag.StringVar(&opt.envPath, "env", "", "Path to .env file (default: ./.env when present)")
	flag.BoolVar(&opt.testnet, "testnet", true, "Use the futures testnet")
	flag.StringVar(&opt.baseURL, "base-url", "", "Override the exchange REST base url")
	flag.StringVar(&opt.logFile, "log-file", "", "Log file (default: "+logger.DefaultFile+")")
	flag.StringVar(&opt.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&opt.logConsole, "log-console", true, "Mirror the log trail to stdout")
	flag.BoolVar(&opt.dryRun, "dry-run", false, "Accept orders in memory instead of sending them")
	flag.StringVar(&opt.pyroscope, "pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	opt.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		opt.set[f.Name] = true
	})

	os.Exit(start(opt))
}

// start owns every deferred cleanup so that os.Exit in main runs after them.
func start(opt options) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-sys.Shutdown():
			logs.Info("shutdown signal received, cancel pending order")
			cancel()
		case <-ctx.Done():
		}
	}()

	if len(opt.pyroscope) != 0 {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "trading-bot",
			ServerAddress:   opt.pyroscope,
			Tags: map[string]string{
				"env": "local",
			},
			Logger: emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			logs.Errorf("pyroscope start failed, err: %+v", err)
			return exitFailure
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	err := run(ctx, opt)
	code := exitCode(ctx, err)
	switch code {
	case exitInterrupted:
		fmt.Println("\nExiting...")
	case exitFailure:
		logs.Errorf("bot failed, err: %+v", err)
	}

	return code
}

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// exitCode maps the outcome of run. A cancelled ctx wins over the error it caused.
func exitCode(ctx context.Context, err error) int {
	if ctx.Err() != nil {
		return exitInterrupted
	}

	if err != nil {
		return exitFailure
	}

	return exitOK
}

// await runs fn until it returns or ctx is done. A read blocked on stdin is
// abandoned on shutdown, the process exits right after.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}

	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func run(ctx context.Context, opt options) error {
	loaded, err := ops.Load(opt.configPath, opt.envPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	if err := applyFlags(&loaded, opt); err != nil {
		return err
	}

	title := "BINANCE FUTURES BOT"
	if loaded.Environment == enum.EnvironmentTestnet {
		title = "BINANCE FUTURES TESTNET BOT"
	}
	report.Banner(os.Stdout, title)

	p := prompt.New(os.Stdin, os.Stdout)
	if !opt.dryRun && loaded.Token.IsEmpty() {
		token, err := await(ctx, func() (adapter.Token, error) {
			return askToken(p, loaded.Token)
		})
		if err != nil {
			return err
		}
		loaded.Token = token
	}

	if !opt.dryRun {
		if err := loaded.RequireToken(); err != nil {
			fmt.Println("Error: API Credentials required.")
			return err
		}
	}

	log, closeLog, err := logger.New(loaded.Log)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer func() {
		_ = closeLog()
	}()

	delegator, baseURL, err := newDelegator(ctx, loaded, opt.dryRun)
	if err != nil {
		log.Error("init delegator", zap.Error(err))
		return err
	}

	client, err := order.NewClient(delegator, log)
	if err != nil {
		return errors.Wrap(err, "create order client")
	}

	log.Info("bot initialized",
		zap.Stringer("environment", loaded.Environment),
		zap.String("base_url", baseURL),
		zap.Bool("dry_run", opt.dryRun),
	)

	req, err := await(ctx, func() (adapter.OrderRequest, error) {
		return prompt.OrderRequest(p)
	})
	if err != nil {
		return errors.Wrap(err, "collect order")
	}

	// a fatal error leaves res empty, which still reports as failed
	res, err := client.Place(ctx, req)
	report.Render(os.Stdout, res, loaded.Log.File)
	return err
}

func applyFlags(loaded *ops.Loaded, opt options) error {
	if opt.set["testnet"] {
		loaded.Environment = enum.EnvironmentFromTestnet(opt.testnet)
	}

	if opt.set["base-url"] {
		loaded.BaseURL = opt.baseURL
	}

	if opt.set["log-file"] {
		loaded.Log.File = opt.logFile
	}

	if opt.set["log-level"] {
		loaded.Log.Level = opt.logLevel
	}

	if opt.set["log-console"] {
		loaded.Log.Console = opt.logConsole
	}

	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "validate flags")
	}

	return nil
}

func askToken(p *prompt.Prompter, current adapter.Token) (adapter.Token, error) {
	key := current.Key
	if len(key) == 0 {
		v, err := p.Line("Enter API Key: ")
		if err != nil {
			return adapter.Token{}, errors.Wrap(err, "read api key")
		}
		key = v
	}

	secret := current.Secret
	if len(secret) == 0 {
		v, err := p.Secret("Enter API Secret: ")
		if err != nil {
			return adapter.Token{}, errors.Wrap(err, "read api secret")
		}
		secret = v
	}

	return adapter.NewToken(key, secret), nil
}

func newDelegator(ctx context.Context, loaded ops.Loaded, dryRun bool) (order.Delegator, string, error) {
	if dryRun {
		return dummy.NewDelegator(), "dry-run", nil
	}

	d, err := binance.NewDelegator(binance.Config{
		Token:       loaded.Token,
		Environment: loaded.Environment,
		BaseURL:     loaded.BaseURL,
		RecvWindow:  loaded.RecvWindow,
		Timeout:     loaded.Timeout,
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "create binance delegator")
	}

	if err := d.Ping(ctx); err != nil {
		return nil, "", err
	}

	return d, d.BaseURL(), nil
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
