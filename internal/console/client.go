package console

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Client dials the sys-botbase service over TCP.
type Client struct {
	address     string
	dialTimeout time.Duration
	readTimeout time.Duration
}

// NewClient builds a connector for the service at address (host:port).
func NewClient(address string, dialTimeout, readTimeout time.Duration) *Client {
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	return &Client{address: address, dialTimeout: dialTimeout, readTimeout: readTimeout}
}

// Available reports whether the service accepts connections.
func (c *Client) Available(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Connect opens a session against the service.
func (c *Client) Connect(ctx context.Context) (Session, error) {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return nil, fmt.Errorf("connect to console %s: %w", c.address, err)
	}
	return &tcpSession{
		conn:        conn,
		reader:      bufio.NewReader(conn),
		readTimeout: c.readTimeout,
	}, nil
}

type tcpSession struct {
	mu          sync.Mutex
	conn        net.Conn
	reader      *bufio.Reader
	readTimeout time.Duration
}

func (s *tcpSession) Metadata(ctx context.Context) (Metadata, error) {
	var meta Metadata

	titleHex, err := s.command(ctx, "getTitleID")
	if err != nil {
		return meta, fmt.Errorf("read title id: %w", err)
	}
	meta.TitleID, err = parseHexU64(titleHex)
	if err != nil {
		return meta, fmt.Errorf("parse title id %q: %w", titleHex, err)
	}

	buildHex, err := s.command(ctx, "getBuildID")
	if err != nil {
		return meta, fmt.Errorf("read build id: %w", err)
	}
	buildHex = strings.TrimSpace(buildHex)
	if len(buildHex) < 16 {
		return meta, fmt.Errorf("build id response too short: %q", buildHex)
	}
	raw, err := hex.DecodeString(buildHex[:16])
	if err != nil {
		return meta, fmt.Errorf("decode build id %q: %w", buildHex, err)
	}
	copy(meta.BuildID[:], raw)

	baseHex, err := s.command(ctx, "getMainNsoBase")
	if err != nil {
		return meta, fmt.Errorf("read main base: %w", err)
	}
	meta.MainBase, err = parseHexU64(baseHex)
	if err != nil {
		return meta, fmt.Errorf("parse main base %q: %w", baseHex, err)
	}

	return meta, nil
}

func (s *tcpSession) ReadBytes(ctx context.Context, addr uint64, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("read length must be positive, got %d", length)
	}
	resp, err := s.command(ctx, fmt.Sprintf("peekAbsolute 0x%X 0x%X", addr, length))
	if err != nil {
		return nil, fmt.Errorf("peek 0x%X (%d bytes): %w", addr, length, err)
	}
	data, err := hex.DecodeString(strings.TrimSpace(resp))
	if err != nil {
		return nil, fmt.Errorf("decode peek response at 0x%X: %w", addr, err)
	}
	if len(data) != length {
		return nil, fmt.Errorf("short read at 0x%X: got %d bytes, want %d", addr, len(data), length)
	}
	return data, nil
}

func (s *tcpSession) Close() error {
	return s.conn.Close()
}

// command sends one request line and reads one response line. The protocol is
// strictly request/response, so a session-wide mutex is enough to keep
// concurrent callers from interleaving frames.
func (s *tcpSession) command(ctx context.Context, cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	deadline := time.Now().Add(s.readTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("set deadline: %w", err)
	}

	if _, err := s.conn.Write([]byte(cmd + "\r\n")); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("response to %q: %w", cmd, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseHexU64(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	return strconv.ParseUint(value, 16, 64)
}
