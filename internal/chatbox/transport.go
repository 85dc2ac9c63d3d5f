package chatbox

import (
	"fmt"
	"net"

	"github.com/hypebeast/go-osc/osc"

	"github.com/vrcsend/vrcsend/internal/models"
)

// Transport delivers a single OSC message. An error means the message shape
// or the address was rejected and the next encoding may be tried.
type Transport interface {
	Send(target models.Target, msg *osc.Message) error
}

// UDPTransport sends each message as one UDP datagram.
type UDPTransport struct{}

// Send implements Transport. The target is resolved from its bracketed
// host:port form so IPv6 hosts work.
func (UDPTransport) Send(target models.Target, msg *osc.Message) error {
	addr, err := net.ResolveUDPAddr("udp", target.Addr())
	if err != nil {
		return fmt.Errorf("resolve %s: %w", target.Addr(), err)
	}
	data, err := msg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Address, err)
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target.Addr(), err)
	}
	defer conn.Close()

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", target.Addr(), err)
	}
	return nil
}
