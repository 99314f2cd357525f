package app

import (
	"context"
	"net/http"
	"time"

	routeGateway "fulfillment/internal/gateway/grpc/route"
	"fulfillment/internal/gateway/http/transfer"
	notificationGateway "fulfillment/internal/gateway/kafka/notification"
	routingv1 "fulfillment/internal/generated/proto/routing/v1"
	"fulfillment/internal/handlers/rest/order_accept_post"
	"fulfillment/internal/handlers/rest/order_cancel_post"
	"fulfillment/internal/handlers/rest/order_get"
	"fulfillment/internal/handlers/rest/order_post"
	"fulfillment/internal/handlers/rest/order_refund_post"
	"fulfillment/internal/handlers/rest/order_release_post"
	"fulfillment/internal/handlers/rest/order_status_post"
	"fulfillment/internal/handlers/rest/orders_claimable_get"
	"fulfillment/internal/handlers/rest/payment_get"
	"fulfillment/internal/handlers/rest/payment_post"
	"fulfillment/internal/handlers/rest/payment_reconcile_post"
	"fulfillment/internal/handlers/rest/payout_post"
	"fulfillment/internal/handlers/rest/payout_reject_post"
	"fulfillment/internal/handlers/rest/payout_transfer_post"
	"fulfillment/internal/handlers/rest/routes_optimize_post"
	"fulfillment/internal/handlers/rest/shipper_get"
	"fulfillment/internal/handlers/rest/shipper_me_put"
	"fulfillment/internal/handlers/rest/shipper_post"
	"fulfillment/internal/handlers/rest/transfer_webhook_post"
	"fulfillment/internal/handlers/rest/wallet_adjustment_post"
	"fulfillment/internal/handlers/rest/wallet_get"
	"fulfillment/internal/handlers/tasks/outbox_dispatch"
	"fulfillment/internal/handlers/tasks/payout_settlement"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/delivery_eta"
	"fulfillment/internal/pkg/factory/notification_intent"
	orderRepo "fulfillment/internal/repository/order"
	outboxRepo "fulfillment/internal/repository/outbox"
	paymentRepo "fulfillment/internal/repository/payment"
	shipperRepo "fulfillment/internal/repository/shipper"
	walletRepo "fulfillment/internal/repository/wallet"
	withdrawalRepo "fulfillment/internal/repository/withdrawal"
	assignmentService "fulfillment/internal/service/assignment"
	notificationService "fulfillment/internal/service/notification"
	orderService "fulfillment/internal/service/order"
	paymentService "fulfillment/internal/service/payment"
	routeService "fulfillment/internal/service/route"
	shipperService "fulfillment/internal/service/shipper"
	walletService "fulfillment/internal/service/wallet"
	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServicePayment    ServicePayment
	ServiceWallet     ServiceWallet
	ServiceShipper    ServiceShipper
	ServiceRoute      ServiceRoute
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_post.Service
	order_cancel_post.Service
}

type ServiceAssignment interface {
	order_accept_post.Service
	order_release_post.Service
	orders_claimable_get.Service
}

type ServicePayment interface {
	payment_post.Service
	payment_get.Service
	payment_reconcile_post.Service
	transfer_webhook_post.Service
}

type ServiceWallet interface {
	order_refund_post.Service
	wallet_get.Service
	wallet_adjustment_post.Service
	payout_post.Service
	payout_transfer_post.Service
	payout_reject_post.Service
}

type ServiceShipper interface {
	shipper_post.Service
	shipper_get.Service
	shipper_me_put.Service
}

type ServiceRoute interface {
	routes_optimize_post.Service
}

type KafkaWorkerApp struct {
	Payments *paymentService.Reconciler
}

var storageSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideOrderRepository,
	providePaymentRepository,
	provideWalletRepository,
	provideWithdrawalRepository,
	provideShipperRepository,
	provideOutboxRepository,
)

var paymentSet = wire.NewSet(
	provideTransferGateway,
	providePaymentReconciler,
)

func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) *tx.Manager {
	return tx.New(pool, cfg.Database.TxRetryMaxElapsed)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideWithdrawalRepository(querier *querier.Querier) *withdrawalRepo.Repository {
	return withdrawalRepo.New(querier)
}

func provideShipperRepository(querier *querier.Querier) *shipperRepo.Repository {
	return shipperRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideShipperService(repository *shipperRepo.Repository) *shipperService.Service {
	return shipperService.New(repository)
}

func provideWalletManager(
	log logger.Logger,
	orders *orderRepo.Repository,
	payments *paymentRepo.Repository,
	wallets *walletRepo.Repository,
	withdrawals *withdrawalRepo.Repository,
	outbox *outboxRepo.Repository,
	intents *notification_intent.IntentFactory,
	txManager *tx.Manager,
	cfg *config.Config,
) *walletService.Manager {
	return walletService.New(
		orders,
		payments,
		wallets,
		withdrawals,
		outbox,
		intents,
		txManager,
		walletService.Config{
			MinWithdrawal:         cfg.Wallet.MinWithdrawal,
			PlatformCommissionBps: cfg.Wallet.PlatformCommissionBps,
		},
		log.With(logger.NewField("component", "wallet")),
	)
}

func provideOrderService(
	log logger.Logger,
	repository *orderRepo.Repository,
	shippers *shipperService.Service,
	wallets *walletService.Manager,
	timeFactory *delivery_eta.DeliveryTimeFactory,
	intents *notification_intent.IntentFactory,
	outbox *outboxRepo.Repository,
	txManager *tx.Manager,
) *orderService.Service {
	return orderService.New(
		repository,
		shippers,
		wallets,
		timeFactory,
		intents,
		outbox,
		txManager,
		log.With(logger.NewField("component", "order")),
	)
}

func provideAssignmentCoordinator(
	log logger.Logger,
	orders *orderRepo.Repository,
	shippers *shipperService.Service,
	intents *notification_intent.IntentFactory,
	outbox *outboxRepo.Repository,
	txManager *tx.Manager,
) *assignmentService.Coordinator {
	return assignmentService.New(
		orders,
		shippers,
		intents,
		outbox,
		txManager,
		log.With(logger.NewField("component", "assignment")),
	)
}

func provideTransferGateway(log logger.Logger, cfg *config.Config) (*transfer.TransferGateway, error) {
	location, err := time.LoadLocation(cfg.Payment.ProviderTimezone)
	if err != nil {
		return nil, err
	}

	return transfer.New(
		&http.Client{},
		transfer.Config{
			BaseURL:       cfg.Payment.ProviderURL,
			Token:         cfg.Payment.ProviderToken,
			AccountNumber: cfg.Payment.AccountNumber,
			Limit:         cfg.Payment.TransferLookupLimit,
			Timeout:       cfg.Payment.ProviderTimeout,
			Location:      location,
		},
		log.With(logger.NewField("component", "transfer-gateway")),
	)
}

func providePaymentReconciler(
	log logger.Logger,
	orders *orderRepo.Repository,
	payments *paymentRepo.Repository,
	provider *transfer.TransferGateway,
	outbox *outboxRepo.Repository,
	intents *notification_intent.IntentFactory,
	txManager *tx.Manager,
	cfg *config.Config,
) *paymentService.Reconciler {
	return paymentService.New(
		orders,
		payments,
		provider,
		outbox,
		intents,
		txManager,
		paymentService.Config{
			AccountNumber: cfg.Payment.AccountNumber,
			BankCode:      cfg.Payment.BankCode,
			QRBaseURL:     cfg.Payment.QRBaseURL,
			AmountPolicy:  paymentService.AmountPolicy(cfg.Payment.CallbackAmountPolicy),
		},
		log.With(logger.NewField("component", "payment")),
	)
}

func provideRouteGateway(conn *grpc.ClientConn, cfg *config.Config) *routeGateway.RouteGateway {
	return routeGateway.New(routingv1.NewRouteServiceClient(conn), cfg.RouteService.Timeout)
}

func provideRoutePlanner(gateway *routeGateway.RouteGateway) *routeService.Planner {
	return routeService.New(gateway)
}

func provideNotificationPublisher(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Publisher {
	return notificationGateway.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideRelay(
	log logger.Logger,
	outbox *outboxRepo.Repository,
	publisher *notificationGateway.Publisher,
	cfg *config.Config,
) *notificationService.Relay {
	return notificationService.New(
		outbox,
		publisher,
		notificationService.Config{
			BatchSize:   cfg.Tasks.OutboxBatchSize,
			MaxAttempts: cfg.Tasks.OutboxMaxAttempts,
		},
		log.With(logger.NewField("component", "notification-relay")),
	)
}

func provideOutboxDispatchTask(
	log logger.Logger,
	relay *notificationService.Relay,
	cfg *config.Config,
) *outbox_dispatch.OutboxDispatch {
	return outbox_dispatch.NewOutboxDispatch(log, relay, cfg.Tasks.OutboxDispatchInterval)
}

func providePayoutSettlementTask(
	log logger.Logger,
	wallets *walletService.Manager,
	cfg *config.Config,
) *payout_settlement.PayoutSettlement {
	return payout_settlement.NewPayoutSettlement(
		log,
		wallets,
		cfg.Tasks.PayoutSettlementInterval,
		cfg.Tasks.PayoutBatchSize,
	)
}

func provideTaskList(
	outboxDispatchTask *outbox_dispatch.OutboxDispatch,
	payoutSettlementTask *payout_settlement.PayoutSettlement,
) []background.Task {
	return []background.Task{
		outboxDispatchTask,
		payoutSettlementTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
