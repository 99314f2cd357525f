// Package generated собирает код из контрактов api/ и proto/.
package generated

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config ../../api/oapi-codegen.yaml ../../api/openapi.yaml
//go:generate go run github.com/yoheimuta/protolint/cmd/protolint lint -config_path ../../.protolint.yaml ../../proto
//go:generate protoc -I ../../proto --plugin=protoc-gen-go=$GOBIN/protoc-gen-go --go_out=./proto --go_opt=paths=source_relative --plugin=protoc-gen-go-grpc=$GOBIN/protoc-gen-go-grpc --go-grpc_out=./proto --go-grpc_opt=paths=source_relative routing/v1/route.proto
