//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"

	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/delivery_eta"
	"fulfillment/internal/pkg/factory/notification_intent"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, conn *grpc.ClientConn, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querierQuerier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querierQuerier)
	shipperRepository := provideShipperRepository(querierQuerier)
	service := provideShipperService(shipperRepository)
	paymentRepository := providePaymentRepository(querierQuerier)
	walletRepository := provideWalletRepository(querierQuerier)
	withdrawalRepository := provideWithdrawalRepository(querierQuerier)
	outboxRepository := provideOutboxRepository(querierQuerier)
	intentFactory := notification_intent.New()
	manager := provideTxManager(pool, cfg)
	walletManager := provideWalletManager(log, repository, paymentRepository, walletRepository, withdrawalRepository, outboxRepository, intentFactory, manager, cfg)
	deliveryTimeFactory := delivery_eta.New()
	orderService := provideOrderService(log, repository, service, walletManager, deliveryTimeFactory, intentFactory, outboxRepository, manager)
	coordinator := provideAssignmentCoordinator(log, repository, service, intentFactory, outboxRepository, manager)
	transferGateway, err := provideTransferGateway(log, cfg)
	if err != nil {
		return nil, err
	}
	reconciler := providePaymentReconciler(log, repository, paymentRepository, transferGateway, outboxRepository, intentFactory, manager, cfg)
	routeGateway := provideRouteGateway(conn, cfg)
	planner := provideRoutePlanner(routeGateway)
	publisher := provideNotificationPublisher(producer, cfg)
	relay := provideRelay(log, outboxRepository, publisher, cfg)
	outboxDispatch := provideOutboxDispatchTask(log, relay, cfg)
	payoutSettlement := providePayoutSettlementTask(log, walletManager, cfg)
	v := provideTaskList(outboxDispatch, payoutSettlement)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceOrder:      orderService,
		ServiceAssignment: coordinator,
		ServicePayment:    reconciler,
		ServiceWallet:     walletManager,
		ServiceShipper:    service,
		ServiceRoute:      planner,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-transfer-received)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querierQuerier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querierQuerier)
	paymentRepository := providePaymentRepository(querierQuerier)
	transferGateway, err := provideTransferGateway(log, cfg)
	if err != nil {
		return nil, err
	}
	outboxRepository := provideOutboxRepository(querierQuerier)
	intentFactory := notification_intent.New()
	manager := provideTxManager(pool, cfg)
	reconciler := providePaymentReconciler(log, repository, paymentRepository, transferGateway, outboxRepository, intentFactory, manager, cfg)
	kafkaWorkerApp := &KafkaWorkerApp{
		Payments: reconciler,
	}
	return kafkaWorkerApp, nil
}
