//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_test
package transfer

import (
	"context"
	"net/http"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
