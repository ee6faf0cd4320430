package handler

type ContextKey string

var (
	UserIDCtxKey    ContextKey = "userID"
	SessionIDCtxKey ContextKey = "sessionID"
	CurrentUserCtx  ContextKey = "currentUser"
)
