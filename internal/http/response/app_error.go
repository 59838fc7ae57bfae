package response

// AppError 业务错误，携带响应码与对外消息，内部错误仅用于日志。
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 把原始错误包装为业务错误。
func WrapError(code int, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err}
}
