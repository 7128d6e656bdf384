// Package waha is a thin client for a WAHA WhatsApp gateway. It authenticates
// with an API-key header, exposes one method per remote endpoint, and decodes
// every response into a list-or-value Result; the gateway owns all messaging
// state and semantics.
package waha
