package utils

import (
	"fmt"
	"net"
	"time"
)

// PingPort checks that a TCP listener is accepting connections at host:port.
// Used by the healthcheck binary to verify the API listener is up.
func PingPort(host, port string, timeout time.Duration) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
