package ecode

// 业务错误码。0 表示成功，其余映射到响应里 error.name

const (
	Success = 0

	Unknown     = 10001 // 未知错误
	ValidateErr = 10002 // 参数校验失败
	NotFoundErr = 10003 // 资源不存在
	DbErr       = 10004 // 数据库错误
	ChainErr    = 10005 // 链上调用失败
	StateErr    = 10006 // 状态不允许该操作

	RequireAuthErr = 10401
)

var names = map[int]string{
	Success:        "OK",
	Unknown:        "InternalError",
	ValidateErr:    "ValidationError",
	NotFoundErr:    "NotFoundError",
	DbErr:          "StorageError",
	ChainErr:       "ChainError",
	StateErr:       "InvalidStateError",
	RequireAuthErr: "UnauthorizedError",
}

// Name 返回错误码对应的名称，未登记的归为 InternalError
func Name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	return names[Unknown]
}
