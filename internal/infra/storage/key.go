/*
 * @Description: 对象键的生成与 URL 双向换算
 * @Author: 安知鱼
 * @Date: 2025-09-01 11:02:33
 * @LastEditTime: 2025-09-01 11:02:33
 * @LastEditors: 安知鱼
 */
package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"

	"github.com/google/uuid"
)

// KeyCodec 负责从逻辑标识派生对象键，并在对象键与公开 URL 之间换算。
//
// 键格式:
//
//	相册内保存:  [debug_]<albumId>/[debug_]<uuid>_<原始文件名>
//	无相册保存:  [debug_]<uuid>_<原始文件名>
//
// debug 前缀是进程级的命名空间开关，用于在同一个桶里隔离非生产流量，
// 在构造时读取一次，进程生命周期内不变。
type KeyCodec struct {
	baseURL string
	debug   bool
}

// NewKeyCodec 构造键编解码器。baseURL 形如
// https://<bucket>.s3.<region>.amazonaws.com，不带结尾斜杠。
func NewKeyCodec(baseURL string, debug bool) KeyCodec {
	return KeyCodec{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		debug:   debug,
	}
}

// uniqueName 生成 <uuid>_<原始文件名>。唯一性由 128 位随机数保证，
// 不处理碰撞。
func (c KeyCodec) uniqueName(fileName string) string {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), fileName)
	if c.debug {
		name = "debug_" + name
	}
	return name
}

// NewObjectKey 为不隶属相册的文件派生对象键
func (c KeyCodec) NewObjectKey(fileName string) string {
	return c.uniqueName(fileName)
}

// NewObjectKeyInFolder 为相册内的文件派生对象键
func (c KeyCodec) NewObjectKeyInFolder(fileName string, folderID uint) string {
	folder := fmt.Sprintf("%d", folderID)
	if c.debug {
		folder = "debug_" + folder
	}
	return fmt.Sprintf("%s/%s", folder, c.uniqueName(fileName))
}

// ResolveURL 由对象键构造公开资源 URL，与 ExtractKey 互逆
func (c KeyCodec) ResolveURL(key string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, key)
}

// ExtractKey 从资源 URL 中反解出对象键。
// URL 带有预期前缀时直接截掉前缀；否则退回到"取 authority 之后的路径"
// 的宽松解析，以兼容外部构造的 URL。只有完全解析不出路径时才返回
// ErrMalformedAssetURL；解析出空串不算错误。
func (c KeyCodec) ExtractKey(fileURL string) (string, error) {
	prefix := c.baseURL + "/"
	if strings.HasPrefix(fileURL, prefix) {
		return strings.TrimPrefix(fileURL, prefix), nil
	}

	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", constant.ErrMalformedAssetURL, fileURL)
	}
	return strings.TrimPrefix(parsed.Path, "/"), nil
}

// LastSegment 返回对象键的最后一个路径段，复制时用它充当原始文件名
func LastSegment(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}
