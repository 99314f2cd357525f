//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/delivery_eta"
	"fulfillment/internal/pkg/factory/notification_intent"
	assignmentService "fulfillment/internal/service/assignment"
	orderService "fulfillment/internal/service/order"
	paymentService "fulfillment/internal/service/payment"
	routeService "fulfillment/internal/service/route"
	shipperService "fulfillment/internal/service/shipper"
	walletService "fulfillment/internal/service/wallet"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		storageSet,
		paymentSet,

		provideShipperService,
		provideWalletManager,
		provideOrderService,
		provideAssignmentCoordinator,

		provideRouteGateway,
		provideRoutePlanner,

		provideNotificationPublisher,
		provideRelay,

		provideOutboxDispatchTask,
		providePayoutSettlementTask,
		provideTaskList,
		provideBackgroundWorkers,

		notification_intent.New,
		delivery_eta.New,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Coordinator)),
		wire.Bind(new(ServicePayment), new(*paymentService.Reconciler)),
		wire.Bind(new(ServiceWallet), new(*walletService.Manager)),
		wire.Bind(new(ServiceShipper), new(*shipperService.Service)),
		wire.Bind(new(ServiceRoute), new(*routeService.Planner)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-transfer-received)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		storageSet,
		paymentSet,

		notification_intent.New,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
