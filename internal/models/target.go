// Package models defines the data types shared across vrcsend.
package models

import (
	"net"
	"strconv"
)

// Target is the OSC receiver the chatbox messages are sent to.
type Target struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

// Addr returns host:port.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

func (t Target) String() string {
	return t.Addr()
}
