// Package console provides access to the target console's remote debug
// service.
//
// It defines the narrow Session interface the scan pipeline consumes (process
// metadata, absolute memory reads, close) and a TCP client speaking the
// sys-botbase text protocol: newline-terminated ASCII commands answered with
// hex-encoded payloads. Tests substitute an in-memory Session; nothing in the
// pipeline depends on the wire protocol.
package console
