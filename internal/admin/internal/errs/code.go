package errs

var (
	SystemError        = ErrorCode{Code: 504001, Msg: "系统错误"}
	MissingCredentials = ErrorCode{Code: 504002, Msg: "Username and password required"}
	InvalidCredentials = ErrorCode{Code: 504003, Msg: "Invalid credentials"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
