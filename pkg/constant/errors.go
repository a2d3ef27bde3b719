/*
 * @Description: 业务错误分类定义
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:12:40
 * @LastEditTime: 2025-09-01 10:12:40
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrValidation 表示字段校验失败，可以由 Handler 转换为 400
	ErrValidation = errors.New("字段校验失败")

	// ErrSameAlbum 表示移动/复制的目标相册与照片当前相册相同
	ErrSameAlbum = errors.New("照片已在该相册中")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")
)

// 对象存储相关错误。上传/删除/复制失败时由存储层归类后向上抛出，
// 业务层不做捕获降级。
var (
	// ErrStorageUnavailable 表示凭证或网络层面无法访问对象存储，调用方可自行重试
	ErrStorageUnavailable = errors.New("对象存储不可用")

	// ErrStorageRejected 表示对象存储明确拒绝了请求（如桶策略错误），不可重试
	ErrStorageRejected = errors.New("对象存储拒绝了请求")

	// ErrMalformedAssetURL 表示无法从资源 URL 中解析出对象键
	ErrMalformedAssetURL = errors.New("无法解析的资源地址")
)
