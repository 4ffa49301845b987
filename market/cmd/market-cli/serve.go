package main

import (
	"context"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/metrics"
	"github.com/alt-research/cw-nft-market/market/rpc"
	"github.com/alt-research/cw-nft-market/market/sdk/client"
)

var serveCommand = cli.Command{
	Name:   "serve",
	Usage:  "Serve the read only json rpc gateway and the metrics",
	Action: serve,
}

func serve(cliCtx *cli.Context) error {
	config, err := readConfig(cliCtx)
	if err != nil {
		return err
	}

	zapLogger, err := newZapLogger(config)
	if err != nil {
		return err
	}
	defer func() { _ = zapLogger.Sync() }()

	logger := logging.FromZap(zapLogger)
	logger.Info(
		"Market gateway Start",
		"version", versioninfo.Version,
		"revision", versioninfo.Revision,
		"dirtyBuild", versioninfo.DirtyBuild,
		"lastCommit", versioninfo.LastCommit,
	)

	ctx, stop := signalContext()
	defer stop()

	if err := config.Metrics.Validate(); err != nil {
		return errors.Wrap(err, "invalid metrics config")
	}
	metricsAddr, err := config.Metrics.Address()
	if err != nil {
		return err
	}

	c, err := client.NewClient(ctx, config, zapLogger, client.WithMetrics(metrics.NewClientMetrics()))
	if err != nil {
		return errors.Wrap(err, "new client failed")
	}
	defer c.Close()

	metricsServer := metrics.Start(metricsAddr, zapLogger)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metricsServer.Stop(stopCtx)
	}()

	go c.WatchSenderBalance(ctx, config.Metrics.UpdateInterval)

	server, err := rpc.NewServer(logger, config.Server, c)
	if err != nil {
		return err
	}

	return server.Start(ctx)
}
