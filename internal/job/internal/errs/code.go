package errs

var (
	SystemError = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidJob  = ErrorCode{Code: 502002, Msg: "Invalid job"}
	JobNotFound = ErrorCode{Code: 502003, Msg: "Job not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
