// Package proto holds the generated cellarkeeper.v1 gRPC contract.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative cellar.proto
