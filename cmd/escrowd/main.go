package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v3"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/escrowd/internal/config"
	"github.com/tdex-network/escrowd/internal/core/application/escrow"
	"github.com/tdex-network/escrowd/internal/core/application/ledger"
	"github.com/tdex-network/escrowd/internal/core/application/pubsub"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
	ledgerinfra "github.com/tdex-network/escrowd/internal/infrastructure/ledger"
	pubsubinfra "github.com/tdex-network/escrowd/internal/infrastructure/pubsub"
	dbbadger "github.com/tdex-network/escrowd/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/escrowd/internal/infrastructure/storage/db/inmemory"
	grpcinterface "github.com/tdex-network/escrowd/internal/interfaces/grpc"
	"github.com/tdex-network/escrowd/pkg/stats"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	var (
		dbType          = config.GetString(config.DBTypeKey)
		dbDir           = config.GetDbDir()
		custodyAccount  = domain.Address(config.GetString(config.CustodyAccountKey))
		webhookTimeout  = config.GetDuration(config.WebhookRequestTimeoutKey)
		webhookLimit    = config.GetInt(config.WebhookRateLimitKey)
		profilerEnabled = config.GetBool(config.EnableProfilerKey)
		escrowAddress   = fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey))
		operatorAddress = fmt.Sprintf(":%d", config.GetInt(config.OperatorListeningPortKey))
		statsInterval   = time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
	)
	var metricsAddress string
	if port := config.GetInt(config.MetricsListeningPortKey); port > 0 {
		metricsAddress = fmt.Sprintf(":%d", port)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var statsDone <-chan struct{}
	if profilerEnabled {
		statsDone = stats.EnableMemoryStatistics(
			ctx, statsInterval, config.GetProfilerDir(),
		)
	}

	repoManager, subscriptionStore, err := newStorage(dbType, dbDir)
	if err != nil {
		log.WithError(err).Fatal("failed to open storage")
	}

	custodyLedger, err := ledgerinfra.NewCustodyLedger(repoManager, custodyAccount)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize ledger")
	}

	pubsubSvc, err := pubsubinfra.NewService(
		subscriptionStore, webhookTimeout, webhookLimit,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize pubsub service")
	}
	pubsubAppSvc := pubsub.NewService(pubsubSvc)

	escrowSvc, err := escrow.NewService(repoManager, custodyLedger, pubsubAppSvc)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize escrow service")
	}
	ledgerSvc, err := ledger.NewService(repoManager, custodyLedger)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize ledger service")
	}

	svc, err := grpcinterface.NewService(grpcinterface.ServiceOpts{
		EscrowAddress:   escrowAddress,
		OperatorAddress: operatorAddress,
		MetricsAddress:  metricsAddress,
		EscrowSvc:       escrowSvc,
		LedgerSvc:       ledgerSvc,
		PubSubSvc:       pubsubAppSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize grpc interface")
	}

	stop := func() {
		svc.Stop()
		log.Debug("disabled interfaces")

		if err := pubsubSvc.Close(); err != nil {
			log.WithError(err).Warn("failed to close pubsub service")
		}
		log.Debug("closed pubsub service")

		repoManager.Close()
		log.Debug("closed connection with db")

		cancel()
		if statsDone != nil {
			select {
			case <-statsDone:
			case <-time.After(5 * time.Second):
			}
		}
	}
	log.RegisterExitHandler(stop)

	log.Debug("starting daemon")

	if err := svc.Start(); err != nil {
		log.WithError(err).Fatal("error while starting daemon")
	}

	log.Infof("escrow daemon started, custody account is %s", custodyAccount)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigChan

	log.Debug("shutting down daemon")
	stop()
	log.Debug("exiting")
}

func newStorage(
	dbType, dbDir string,
) (ports.RepoManager, pubsubinfra.SubscriptionStore, error) {
	if dbType == config.DBInMemory {
		return inmemory.NewRepoManager(), pubsubinfra.NewInMemoryStore(), nil
	}

	dbLogger := newBadgerLogger()
	repoManager, err := dbbadger.NewRepoManager(dbDir, dbLogger)
	if err != nil {
		return nil, nil, err
	}
	store, err := pubsubinfra.NewBadgerStore(dbDir, dbLogger)
	if err != nil {
		repoManager.Close()
		return nil, nil, err
	}
	return repoManager, store, nil
}

// newBadgerLogger makes badger log through logrus, only warnings and above.
func newBadgerLogger() badger.Logger {
	logger := log.New()
	logger.SetLevel(log.WarnLevel)
	return logger
}
