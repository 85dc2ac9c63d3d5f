package chatbox

import (
	"github.com/hypebeast/go-osc/osc"

	"github.com/vrcsend/vrcsend/internal/models"
)

// Encoding is one payload shape for the chatbox input message.
type Encoding struct {
	Name string
	Args func(msg models.OutgoingMessage) []interface{}
}

// DefaultEncodings lists the chatbox payload shapes, richest first. Receivers
// have accepted different shapes over time and there is no negotiation, so
// each is tried in order until the transport accepts one.
var DefaultEncodings = []Encoding{
	{
		// text, send immediately, play typing sound (never set)
		Name: "text+immediate+notify",
		Args: func(msg models.OutgoingMessage) []interface{} {
			return []interface{}{msg.Text, msg.Immediate, false}
		},
	},
	{
		Name: "text+immediate",
		Args: func(msg models.OutgoingMessage) []interface{} {
			return []interface{}{msg.Text, msg.Immediate}
		},
	},
	{
		// Kept for older receivers; unconfirmed whether any still need it.
		Name: "text",
		Args: func(msg models.OutgoingMessage) []interface{} {
			return []interface{}{msg.Text}
		},
	},
}

// build creates the OSC message for address using this encoding.
func (e Encoding) build(address string, msg models.OutgoingMessage) *osc.Message {
	return osc.NewMessage(address, e.Args(msg)...)
}
