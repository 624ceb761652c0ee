package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"diskrelay"
	"diskrelay/config"
	"diskrelay/internal/application/usecase"
	brokerRepository "diskrelay/internal/domain/repository/broker"
	dbRepository "diskrelay/internal/domain/repository/database"
	"diskrelay/internal/infrastructure/broker"
	"diskrelay/internal/infrastructure/database"
	"diskrelay/internal/infrastructure/ethereum"
	"diskrelay/internal/infrastructure/ipfs"
	"diskrelay/internal/presentation/handler"
	"diskrelay/internal/presentation/router"
	"diskrelay/pkg/logger"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the HTTP relay",
		Run: func(_ *cobra.Command, _ []string) {
			HandleRun(*configPath)
		},
	}
}

func HandleRun(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	logger.Info("running diskrelay", "version", diskrelay.StringVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ethereum.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	var signer *ethereum.Signer
	if cfg.Chain.PrivateKey != "" {
		signer, err = ethereum.NewSigner(cfg.Chain.PrivateKey)
		if err != nil {
			ExitOnError(err)
		}
	}
	bindings := ethereum.NewBindings(cfg.Chain, client, signer)

	// The journal and the event stream are optional. Their interfaces stay
	// nil when disabled.
	var (
		journal   dbRepository.Writer
		receipts  dbRepository.Retriever
		publisher brokerRepository.Publisher
	)

	if cfg.DBConfig.URI != "" {
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer func() {
			if err := db.Stop(); err != nil {
				logger.Error("couldn't stop db instance", "err", err)
			}
		}()

		journal = database.NewReceiptWriter(db)
		receipts = database.NewReceiptRetriever(db)
	} else {
		logger.Info("DATABASE_URI not set, receipt journal disabled")
	}

	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	} else {
		logger.Info("BROKER_URI not set, event stream disabled")
	}

	ipfsFactory := ipfs.NewFactory(cfg.IPFS)

	e := router.New(router.Config{
		BodyLimit:    cfg.HTTP.BodyLimit,
		RateLimit:    cfg.HTTP.RateLimit,
		AdminWallets: cfg.AdminWallets(),
	}, router.Handlers{
		ApproveProvider: handler.NewApproveProviderHandler(
			usecase.NewProviderApprover(bindings, journal, publisher)),
		RentalRoles: handler.NewRentalRolesHandler(
			usecase.NewRentalRolesSetter(bindings, journal, publisher)),
		Upload:        handler.NewUploadHandler(usecase.NewUploader(ipfsFactory, journal, publisher)),
		Content:       handler.NewContentHandler(usecase.NewContentGetter(ipfsFactory)),
		UploadReceipt: handler.NewUploadReceiptHandler(usecase.NewUploadGetter(receipts)),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}
