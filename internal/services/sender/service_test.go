package sender

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/fgeck/gowake/internal/wol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDialer struct {
	dialFunc func(ctx context.Context, network, address string) (net.Conn, error)
	calls    int
}

func (m *mockDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	m.calls++
	if m.dialFunc != nil {
		return m.dialFunc(ctx, network, address)
	}
	return &mockConn{}, nil
}

type mockConn struct {
	written  []byte
	writeErr error
	closed   bool
}

func (c *mockConn) Write(b []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	c.written = append(c.written, b...)
	return len(b), nil
}

func (c *mockConn) Close() error {
	c.closed = true
	return nil
}

func (c *mockConn) Read(b []byte) (int, error)         { return 0, io.EOF }
func (c *mockConn) LocalAddr() net.Addr                { return nil }
func (c *mockConn) RemoteAddr() net.Addr               { return nil }
func (c *mockConn) SetDeadline(t time.Time) error      { return nil }
func (c *mockConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *mockConn) SetWriteDeadline(t time.Time) error { return nil }

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testPacket(t *testing.T) wol.MagicPacket {
	t.Helper()
	addr, err := wol.ParseHardwareAddr("00:1B:44:11:3A:B7")
	require.NoError(t, err)
	return wol.NewMagicPacket(addr)
}

func TestSend_Success(t *testing.T) {
	conn := &mockConn{}
	var capturedNetwork, capturedAddress string

	dialer := &mockDialer{
		dialFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			capturedNetwork = network
			capturedAddress = address
			return conn, nil
		},
	}

	svc := NewWithDialer(testLogger(), dialer)
	packet := testPacket(t)

	err := svc.Send(context.Background(), packet, "192.168.1.255", 9)

	require.NoError(t, err)
	assert.Equal(t, "udp4", capturedNetwork)
	assert.Equal(t, "192.168.1.255:9", capturedAddress)
	assert.Equal(t, packet[:], conn.written)
	assert.True(t, conn.closed)
}

func TestSend_InvalidPort(t *testing.T) {
	dialer := &mockDialer{}
	svc := NewWithDialer(testLogger(), dialer)

	for _, port := range []int{0, -1, 65536} {
		err := svc.Send(context.Background(), testPacket(t), "255.255.255.255", port)
		assert.ErrorIs(t, err, wol.ErrInvalidPort, "port %d", port)
	}

	// No socket is opened for a rejected port.
	assert.Equal(t, 0, dialer.calls)
}

func TestSend_InvalidDestination(t *testing.T) {
	dialer := &mockDialer{}
	svc := NewWithDialer(testLogger(), dialer)

	err := svc.Send(context.Background(), testPacket(t), "not-an-ip", 9)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid destination IP")
	assert.Equal(t, 0, dialer.calls)
}

func TestSend_DialFailure(t *testing.T) {
	dialer := &mockDialer{
		dialFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, errors.New("network is unreachable")
		},
	}

	svc := NewWithDialer(testLogger(), dialer)

	err := svc.Send(context.Background(), testPacket(t), "255.255.255.255", 9)

	require.Error(t, err)
	var txErr *wol.TransmissionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "255.255.255.255:9", txErr.Dest)
	assert.Contains(t, err.Error(), "network is unreachable")
}

func TestSend_WriteFailure(t *testing.T) {
	conn := &mockConn{writeErr: errors.New("no route to host")}
	dialer := &mockDialer{
		dialFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			return conn, nil
		},
	}

	svc := NewWithDialer(testLogger(), dialer)

	err := svc.Send(context.Background(), testPacket(t), "255.255.255.255", 9)

	require.Error(t, err)
	var txErr *wol.TransmissionError
	require.ErrorAs(t, err, &txErr)
	assert.Contains(t, err.Error(), "no route to host")
	// Socket is released even when the send fails.
	assert.True(t, conn.closed)
}
