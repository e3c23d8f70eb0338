package domain

import "context"

// Event topics emitted by document services. Consumed by the outbox
// relay in the worker process.
const (
	EventInvoiceCreated  = "invoice.created"
	EventInvoiceUpdated  = "invoice.updated"
	EventInvoiceDeleted  = "invoice.deleted"
	EventPaymentRecorded = "payment.recorded"
	EventStockAdjusted   = "stock.adjusted"
	EventLowStockAlert   = "stock.low"
)

// EventPublisher stages domain events for asynchronous delivery.
// Implementations must participate in the ambient transaction so an
// event is only visible once the document commit succeeds.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
