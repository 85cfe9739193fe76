// Package proto holds the passvault gRPC contract. The .pb.go files are
// generated from passvault.proto; regenerate them after editing it.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/passvault.proto
