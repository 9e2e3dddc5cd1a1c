package errs

var (
	SystemError         = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidApplication  = ErrorCode{Code: 503002, Msg: "Invalid application"}
	ApplicationNotFound = ErrorCode{Code: 503003, Msg: "Application not found"}
	InvalidStatus       = ErrorCode{Code: 503004, Msg: "Invalid status"}
	NoData              = ErrorCode{Code: 503005, Msg: "No data available"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
