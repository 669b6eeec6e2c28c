// Package sms abstracts the outbound verification-code delivery channel.
// The real provider integration is an external collaborator; only the
// simulated sender ships here.
package sms

import (
	"context"
	"fmt"
	"log"
)

// Sender delivers a verification code to a phone number. A failed send is
// reported to the caller, not retried, and never silently faked as success.
type Sender interface {
	Send(ctx context.Context, phone, code string) error
}

// SimulatedSender logs the code instead of sending it. Selected with
// SMS_PROVIDER=simulated (the default).
type SimulatedSender struct{}

// NewSimulatedSender creates a SimulatedSender
func NewSimulatedSender() *SimulatedSender {
	return &SimulatedSender{}
}

// Send logs the code delivery
func (s *SimulatedSender) Send(_ context.Context, phone, code string) error {
	log.Printf("simulated sms to %s: verification code %s", phone, code)
	return nil
}

// NewSender returns the sender for the configured provider name
func NewSender(provider string) (Sender, error) {
	switch provider {
	case "", "simulated":
		return NewSimulatedSender(), nil
	default:
		return nil, fmt.Errorf("unknown sms provider %q", provider)
	}
}
