package apierrors

const (
	MsgAccessDenied       = "accessDenied"
	MsgTokenExpired       = "tokenExpired"
	MsgInvalidToken       = "invalidToken"
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgUsernameTaken      = "usernameTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgFailRegister       = "failRegister"
	MsgUserRegistered     = "userRegistered"
	MsgFailLogin          = "failLogin"
	MsgTaskNotFound       = "taskNotFound"
	MsgSubtaskNotFound    = "subtaskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskQuery   = "invalidTaskQuery"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailFetchTask      = "failFetchTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskDeleted        = "taskDeleted"
)
