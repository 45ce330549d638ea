package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// AddressInUseError reports a port held by another process. It wraps the
// original listen error so IsAddressInUseError still matches.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// BindTCP binds a TCP listener on address:port. The port is reserved from
// the moment BindTCP returns until the listener is closed, so the listener
// can be handed to a server without a window for another process to take
// it. Port 0 picks a free port; ListenerPort reports which.
func BindTCP(address string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, &AddressInUseError{
				Port:    port,
				Address: address,
				Err:     err,
			}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	return listener, nil
}

// ListenerPort extracts the port number from a bound TCP listener.
func ListenerPort(listener net.Listener) (int, error) {
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", listener.Addr())
	}
	return tcpAddr.Port, nil
}
