/*
 * @Description: 照片二进制资产的存储端口，编排层只依赖此接口
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:33:50
 * @LastEditTime: 2025-09-01 10:33:50
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"io"
)

// PhotoSaver 定义了照片资产存储的契约。实现可以是 S3、本地磁盘或测试替身。
//
// 所有方法以公开 URL 为交互单位：保存类方法返回可直接入库的资源 URL，
// 删除与复制则从 URL 反解出对象键后操作。
type PhotoSaver interface {
	// Save 将文件保存为不隶属任何相册的对象，返回资源 URL
	Save(ctx context.Context, file io.Reader, fileName string) (string, error)

	// SaveWithinFolder 将文件保存到相册目录下，返回资源 URL
	SaveWithinFolder(ctx context.Context, file io.Reader, fileName string, albumID uint) (string, error)

	// Delete 删除 URL 指向的对象。空 URL 是成功的空操作（返回 true），
	// 以保证级联删除不会因为"删除空"而失败。出错时通过 error 报告，
	// 永远不会以 false 表达失败。
	Delete(ctx context.Context, fileURL string) (bool, error)

	// CopyFile 在存储端做服务器侧复制，生成新对象键并返回新 URL。
	// 不允许下载后再上传的实现方式。
	CopyFile(ctx context.Context, sourceURL string, targetAlbumID uint) (string, error)
}
