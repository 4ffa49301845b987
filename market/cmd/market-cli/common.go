package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/core/utils"
	"github.com/alt-research/cw-nft-market/market/metrics"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
	"github.com/alt-research/cw-nft-market/market/types"
)

var (
	limitFlag = cli.UintFlag{
		Name:  "limit",
		Usage: "Max number of items returned",
	}
	pageFlag = cli.UintFlag{
		Name:  "page",
		Usage: "The page to return, the contract default when 0",
	}
	startAfterFlag = cli.StringFlag{
		Name:  "start-after",
		Usage: "Return the items after `KEY`",
	}
	swapTypeFlag = cli.StringFlag{
		Name:  "type",
		Usage: "Swap type, sale or offer",
	}
	cw721Flag = cli.StringFlag{
		Name:  "cw721",
		Usage: "The cw721 contract `ADDRESS`, the configured collection by default",
	}
	expiresHeightFlag = cli.Uint64Flag{
		Name:  "expires-height",
		Usage: "Expire at block `HEIGHT`",
	}
	expiresTimeFlag = cli.StringFlag{
		Name:  "expires-time",
		Usage: "Expire at `TIME` in RFC3339",
	}
)

func readConfig(cliCtx *cli.Context) (*configs.ClientConfig, error) {
	var config configs.ClientConfig
	if err := utils.ReadConfig(cliCtx, defaultConfigPath, &config); err != nil {
		return nil, errors.Wrap(err, "read config failed")
	}
	config.WithEnv()
	config.WithDefaults()

	return &config, nil
}

func newZapLogger(config *configs.ClientConfig) (*zap.Logger, error) {
	zapLogger, err := logging.NewZapLoggerInner(logging.NewLogLevel(config.Common.Production))
	if err != nil {
		return nil, errors.Wrap(err, "new logger failed")
	}
	return zapLogger, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// withClient runs fn with a client built from the config of the cli.
func withClient(cliCtx *cli.Context, fn func(ctx context.Context, c *client.SdkClient) error) error {
	config, err := readConfig(cliCtx)
	if err != nil {
		return err
	}

	zapLogger, err := newZapLogger(config)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signalContext()
	defer stop()

	c, err := client.NewClient(ctx, config, zapLogger, client.WithMetrics(metrics.NewClientMetrics()))
	if err != nil {
		return errors.Wrap(err, "new client failed")
	}
	defer c.Close()

	return fn(ctx, c)
}

func printJson(v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal output failed")
	}

	fmt.Println(string(bz))
	return nil
}

// arg returns the positional argument i or an error naming it.
func arg(cliCtx *cli.Context, i int, name string) (string, error) {
	v := cliCtx.Args().Get(i)
	if v == "" {
		return "", errors.Errorf("missing argument %s", name)
	}
	return v, nil
}

// parseExpiration reads the expiration flags, no flag means never.
func parseExpiration(cliCtx *cli.Context) (types.Expiration, error) {
	height := cliCtx.Uint64(expiresHeightFlag.Name)
	at := cliCtx.String(expiresTimeFlag.Name)

	switch {
	case height != 0 && at != "":
		return types.Expiration{}, errors.New("set only one of --expires-height and --expires-time")
	case height != 0:
		return types.ExpiresAtHeight(height), nil
	case at != "":
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return types.Expiration{}, errors.Wrapf(err, "invalid --expires-time %s", at)
		}
		return types.ExpiresAtTime(t), nil
	default:
		return types.ExpiresNever(), nil
	}
}

func pageParams(cliCtx *cli.Context) types.PageParams {
	return types.NewPageParams(uint32(cliCtx.Uint(pageFlag.Name)), uint32(cliCtx.Uint(limitFlag.Name)))
}

func rangeParams(cliCtx *cli.Context) types.RangeParams {
	return types.NewRangeParams(cliCtx.String(startAfterFlag.Name), uint32(cliCtx.Uint(limitFlag.Name)))
}
