package code

import "net/http"

var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrTransport  = &Error{Kind: KindTransport}
	ErrUnexpected = &Error{Kind: KindUnexpected}

	// ErrHTTP matches every KindHTTP error whatever its status
	ErrHTTP       = &Error{Kind: KindHTTP}
	ErrBadRequest = ErrHTTP.WithStatusCode(http.StatusBadRequest)
	ErrNotFound   = ErrHTTP.WithStatusCode(http.StatusNotFound)
)

// NetworkMessage is shown for every KindTransport failure
const NetworkMessage = "Network error: Server did not respond. Please check your connection."

var (
	OpList   = Operation{Verb: "load", Gerund: "loading", Resource: "areas"}
	OpGet    = Operation{Verb: "load", Gerund: "loading", Resource: "area data"}
	OpCreate = Operation{Verb: "create", Gerund: "creating", Resource: "area"}
	OpUpdate = Operation{Verb: "update", Gerund: "updating", Resource: "area"}
	OpDelete = Operation{Verb: "delete", Gerund: "deleting", Resource: "area"}
)
