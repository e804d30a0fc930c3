package area

import "context"

const (
	MsgDeleteConfirm = "Are you sure to delete this area?"
	MsgDeleted       = "Area deleted successfully"
	MsgCreated       = "Area created successfully"
	MsgUpdated       = "Area updated successfully"
	MsgLoadFailed    = "Failed to load area data"
)

// Notifier shows transient success and error messages
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator switches between the list, create and edit routes
type Navigator interface {
	ToList()
	ToCreate()
	ToEdit(pk string)
}

// Confirmer asks a yes or no question before a destructive action
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}
