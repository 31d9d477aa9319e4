package types

// ContextKey is the type for values carried through the command context.
type ContextKey string

// ClientAppKey addresses the initialized client application.
const ClientAppKey ContextKey = "client_app"
