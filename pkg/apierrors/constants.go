package apierrors

const (
	MsgFailListTodos      = "errorListTodos"
	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"

	MsgInvalidSignupPayload = "invalidSignupPayload"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgEmailTaken           = "emailTaken"
	MsgUnauthorized         = "unauthorized"
	MsgFailSignup           = "failSignup"
	MsgFailDeleteAccount    = "failDeleteAccount"
)
