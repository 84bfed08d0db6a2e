package bootstrap

import (
	"net"
	"sync"
)

// DefaultBindAddress asks the operating system for any free port on the
// loopback interface.
const DefaultBindAddress = "127.0.0.1:0"

// Listener is a TCP socket that is bound but not yet accepting connections
// in a serving loop.
//
// The bound address stays readable for the whole lifetime of the value,
// including after the socket has been handed to a server with Take.
type Listener struct {
	addr *net.TCPAddr

	mu    sync.Mutex
	ln    *net.TCPListener
	taken bool
}

// AcquireListener binds a TCP socket to bindAddress, which must be in
// "host:port" form. Port 0 requests an ephemeral port chosen by the
// operating system.
//
// Every failure is reported as *BindError.
func AcquireListener(bindAddress string) (*Listener, error) {
	if _, _, err := net.SplitHostPort(bindAddress); err != nil {
		return nil, &BindError{Address: bindAddress, Err: err}
	}

	tcpAddr, err := net.ResolveTCPAddr("tcp", bindAddress)
	if err != nil {
		return nil, &BindError{Address: bindAddress, Err: err}
	}

	ln, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return nil, &BindError{Address: bindAddress, Err: err}
	}

	return &Listener{
		addr: ln.Addr().(*net.TCPAddr),
		ln:   ln,
	}, nil
}

// Addr returns the address the socket is bound to, with the port the
// operating system assigned when 0 was requested.
func (l *Listener) Addr() net.Addr {
	return l.addr
}

// Port returns the bound TCP port.
func (l *Listener) Port() int {
	return l.addr.Port
}

// String returns the bound address in "host:port" form.
func (l *Listener) String() string {
	return l.addr.String()
}

// Take transfers the socket to the caller. Only the first call succeeds;
// later calls return ErrListenerTransferred.
func (l *Listener) Take() (net.Listener, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.taken {
		return nil, ErrListenerTransferred
	}
	l.taken = true

	return l.ln, nil
}

// Close releases a socket that was never transferred. Once the socket is
// owned by a server it has to be closed by that server, and Close returns
// ErrListenerTransferred.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.taken {
		return ErrListenerTransferred
	}
	l.taken = true

	return l.ln.Close()
}
