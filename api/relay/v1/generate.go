// Package relayv1 holds the generated gRPC bindings for proto/relay/v1/relay.proto.
package relayv1

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/and161185/im-relay --go-grpc_out=../../.. --go-grpc_opt=module=github.com/and161185/im-relay relay/v1/relay.proto
