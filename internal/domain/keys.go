package domain

type CtxKey string

const (
	KeyUserID      CtxKey = "UserID"
	KeyUserEmail   CtxKey = "Email"
	KeyUserRole    CtxKey = "Role"
	KeyUserCollege CtxKey = "College"
	KeyUser        CtxKey = "User"
	KeyRequestID   CtxKey = "RequestID"
)
