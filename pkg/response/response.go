/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:12:45
 * @LastEditTime: 2025-09-01 10:12:45
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 或 202 Accepted 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 根据业务错误类别映射 HTTP 状态码后返回失败响应。
//
// 映射规则：找不到资源 -> 404；参数/校验/无操作 -> 400；
// 对象存储拒绝请求 -> 502；对象存储不可达 -> 503；其余 -> 500。
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrValidation),
		errors.Is(err, constant.ErrSameAlbum),
		errors.Is(err, constant.ErrMalformedAssetURL):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrStorageRejected):
		Fail(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, constant.ErrStorageUnavailable):
		Fail(c, http.StatusServiceUnavailable, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, err.Error())
	}
}
