package response

import (
	"net/http"

	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"github.com/gin-gonic/gin"
)

// 响应给客户端的消息结构。成功只带data，失败只带error，
// 前端拿到error字段就短路并弹toast，所以两者不会同时出现。
type ApiResponse struct {
	Data  interface{} `json:"data,omitempty"`  // 响应数据
	Error *ApiError   `json:"error,omitempty"` // 错误信息
}

type ApiError struct {
	Name    string `json:"name"`    // 错误名称，来自错误码登记表
	Message string `json:"message"` // 提示信息
}

// 发送json格式数据
func JSON(c *gin.Context, err error, data interface{}) {
	code, message := errors.DecodeErr(err)
	// 如果code != 0, 失败的话 返回http状态码400（一般也可以全部返回200）
	// 返回400 更严谨一些。
	if code != ecode.Success {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Error: &ApiError{Name: ecode.Name(code), Message: message},
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Data: data})
}

// 请求频繁，返回429
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ApiResponse{
		Error: &ApiError{
			Name:    ecode.Name(ecode.StateErr),
			Message: "The request is too frequent. Please try again later.",
		},
	})
}
