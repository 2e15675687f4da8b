package cacheagent

import "context"

// ClientRegistry abstracts the platform's registry of open clients (pages).
// Claim routes every currently-open, previously-uncontrolled client through
// this agent without requiring a reload. Activate waits on Claim before the
// agent is reported active.
type ClientRegistry interface {
	Claim(ctx context.Context) error
}

// NopClients is the default ClientRegistry for embedders without a client
// model.
type NopClients struct{}

func (NopClients) Claim(context.Context) error { return nil }
