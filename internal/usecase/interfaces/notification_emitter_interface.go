package interfaces

import "context"

// INotificationEmitter delivers lifecycle events to interested parties.
//
// Fire-and-forget: implementations log failures and never block or fail a
// workflow transition, so there is no error return.

type INotificationEmitter interface {
	Emit(ctx context.Context, eventType string, payload map[string]interface{})
}
