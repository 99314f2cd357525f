//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test
package rate_limiter

import "fulfillment/pkg/logger"

// Limiter ведро на клиента, ключ выбирает middleware.
type Limiter interface {
	AllowKey(key string) bool
}

// trackedClients необязательная часть Limiter для метрики числа клиентов.
type trackedClients interface {
	Len() int
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
