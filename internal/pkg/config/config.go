package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Tasks struct {
		OutboxDispatchInterval   time.Duration `env:"BACKGROUND_OUTBOX_DISPATCH_INTERVAL" envDefault:"2s"`
		OutboxBatchSize          int           `env:"BACKGROUND_OUTBOX_BATCH_SIZE" envDefault:"100"`
		OutboxMaxAttempts        int           `env:"BACKGROUND_OUTBOX_MAX_ATTEMPTS" envDefault:"10"`
		PayoutSettlementInterval time.Duration `env:"BACKGROUND_PAYOUT_SETTLEMENT_INTERVAL" envDefault:"1m"`
		PayoutBatchSize          int           `env:"BACKGROUND_PAYOUT_BATCH_SIZE" envDefault:"50"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // refill в секунду на клиента
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // емкость ведра на клиента
		PprofEnabled     bool          `env:"PPROF_ENABLED" envDefault:"false"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Database struct {
		Host              string        `env:"POSTGRES_HOST"`
		Port              string        `env:"POSTGRES_PORT"`
		User              string        `env:"POSTGRES_USER"`
		Password          string        `env:"POSTGRES_PASSWORD"`
		DBName            string        `env:"POSTGRES_DB"`
		SSLMode           string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MigrationsEnabled bool          `env:"POSTGRES_MIGRATIONS_ENABLED" envDefault:"true"`
		TxRetryMaxElapsed time.Duration `env:"TX_RETRY_MAX_ELAPSED" envDefault:"2s"`
	}

	Auth struct {
		JWTSecret     string `env:"AUTH_JWT_SECRET"`
		JWTIssuer     string `env:"AUTH_JWT_ISSUER"`
		WebhookAPIKey string `env:"WEBHOOK_API_KEY"`
	}

	Payment struct {
		ProviderURL          string        `env:"PAYMENT_PROVIDER_URL"`
		ProviderToken        string        `env:"PAYMENT_PROVIDER_TOKEN"`
		ProviderTimeout      time.Duration `env:"PAYMENT_PROVIDER_TIMEOUT" envDefault:"5s"`
		AccountNumber        string        `env:"PAYMENT_ACCOUNT_NUMBER"`
		BankCode             string        `env:"PAYMENT_BANK_CODE"`
		QRBaseURL            string        `env:"PAYMENT_QR_BASE_URL" envDefault:"https://qr.sepay.vn/img"`
		TransferLookupLimit  int           `env:"PAYMENT_TRANSFER_LOOKUP_LIMIT" envDefault:"20"`
		CallbackAmountPolicy string        `env:"PAYMENT_CALLBACK_AMOUNT_POLICY" envDefault:"tolerate"`
		ProviderTimezone     string        `env:"PAYMENT_PROVIDER_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	}

	Wallet struct {
		MinWithdrawal         int64 `env:"WALLET_MIN_WITHDRAWAL" envDefault:"50000"`
		PlatformCommissionBps int64 `env:"WALLET_PLATFORM_COMMISSION_BPS" envDefault:"1000"`
	}

	RouteService struct {
		GRPCHost string        `env:"ROUTE_SERVICE_GRPC_HOST"`
		Timeout  time.Duration `env:"ROUTE_SERVICE_TIMEOUT" envDefault:"3s"`
	}

	Kafka struct {
		PortHealthcheck    string   `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers            []string `env:"KAFKA_BROKERS" envSeparator:","`
		NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"fulfillment.notifications"`
		TransfersTopic     string   `env:"KAFKA_TRANSFERS_TOPIC" envDefault:"payments.transfers"`
		ConsumerGroup      string   `env:"KAFKA_CONSUMER_GROUP"`
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string `env:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT" envDefault:"false"`
	}

	KafkaHandlers struct {
		TransferReceived TransferReceived
	}

	TransferReceived struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_TRANSFER_RECEIVED_PROCESS_TIMEOUT" envDefault:"10s"`
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Auth         Auth
		Payment      Payment
		Wallet       Wallet
		RouteService RouteService
		Kafka        Kafka
	}
)

const (
	AmountPolicyTolerate = "tolerate"
	AmountPolicyReject   = "reject"
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.WebhookAPIKey == "" {
		return errors.New("WEBHOOK_API_KEY is required")
	}

	if cfg.Payment.ProviderURL == "" {
		return errors.New("PAYMENT_PROVIDER_URL is required")
	}
	if cfg.Payment.AccountNumber == "" {
		return errors.New("PAYMENT_ACCOUNT_NUMBER is required")
	}
	if cfg.Payment.BankCode == "" {
		return errors.New("PAYMENT_BANK_CODE is required")
	}
	if cfg.Payment.ProviderTimeout <= 0 {
		return errors.New("PAYMENT_PROVIDER_TIMEOUT must be positive")
	}
	switch cfg.Payment.CallbackAmountPolicy {
	case AmountPolicyTolerate, AmountPolicyReject:
	default:
		return fmt.Errorf("PAYMENT_CALLBACK_AMOUNT_POLICY must be %q or %q, got %q",
			AmountPolicyTolerate, AmountPolicyReject, cfg.Payment.CallbackAmountPolicy)
	}

	if _, err := time.LoadLocation(cfg.Payment.ProviderTimezone); err != nil {
		return fmt.Errorf("PAYMENT_PROVIDER_TIMEZONE: %w", err)
	}

	if cfg.Wallet.MinWithdrawal <= 0 {
		return errors.New("WALLET_MIN_WITHDRAWAL must be positive")
	}
	if cfg.Wallet.PlatformCommissionBps < 0 || cfg.Wallet.PlatformCommissionBps > 10000 {
		return errors.New("WALLET_PLATFORM_COMMISSION_BPS must be within [0, 10000]")
	}

	if cfg.RouteService.GRPCHost == "" {
		return errors.New("ROUTE_SERVICE_GRPC_HOST is required")
	}

	if cfg.Tasks.OutboxDispatchInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_DISPATCH_INTERVAL is required")
	}
	if cfg.Tasks.PayoutSettlementInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYOUT_SETTLEMENT_INTERVAL is required")
	}
	if cfg.Tasks.OutboxBatchSize <= 0 {
		return errors.New("BACKGROUND_OUTBOX_BATCH_SIZE must be positive")
	}
	if cfg.Tasks.OutboxMaxAttempts <= 0 {
		return errors.New("BACKGROUND_OUTBOX_MAX_ATTEMPTS must be positive")
	}
	if cfg.Tasks.PayoutBatchSize <= 0 {
		return errors.New("BACKGROUND_PAYOUT_BATCH_SIZE must be positive")
	}

	return validateKafka(cfg.Kafka)
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(k Kafka) error {
	if len(k.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if k.TransfersTopic == "" {
		return errors.New("KAFKA_TRANSFERS_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.TransferReceived.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_TRANSFER_RECEIVED_PROCESS_TIMEOUT is required")
	}
	return nil
}
