/*
 * @Description: 本地磁盘照片存储实现
 * @Author: 安知鱼
 * @Date: 2025-09-01 11:18:45
 * @LastEditTime: 2025-09-01 11:18:45
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/anzhiyu-c/xiangce-app/pkg/config"
)

// LocalPhotoSaver 实现了 repository.PhotoSaver 接口，把照片写到本机磁盘。
// 对象键到物理路径的映射是 baseDir/键，URL 则由 baseURL/键 构成。
type LocalPhotoSaver struct {
	baseDir string
	codec   KeyCodec
}

// NewLocalPhotoSaver 是 LocalPhotoSaver 的构造函数
func NewLocalPhotoSaver(cfg *appconfig.Config) (*LocalPhotoSaver, error) {
	baseDir := cfg.GetString(appconfig.KeyStorageLocalDir)
	if baseDir == "" {
		baseDir = "data/uploads"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("无法创建本地上传目录 '%s': %w", baseDir, err)
	}

	baseURL := cfg.GetString(appconfig.KeyStorageLocalBaseURL)
	if baseURL == "" {
		baseURL = "http://localhost:8091/uploads"
	}

	return &LocalPhotoSaver{
		baseDir: baseDir,
		codec:   NewKeyCodec(baseURL, cfg.GetBool(appconfig.KeyServerDebug)),
	}, nil
}

// newLocalPhotoSaverAt 供测试使用，直接指定目录与 URL 前缀
func newLocalPhotoSaverAt(baseDir, baseURL string, debug bool) *LocalPhotoSaver {
	return &LocalPhotoSaver{
		baseDir: baseDir,
		codec:   NewKeyCodec(baseURL, debug),
	}
}

// writeFile 把文件流写到键对应的物理路径
func (p *LocalPhotoSaver) writeFile(file io.Reader, key string) error {
	physicalPath := filepath.Join(p.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(physicalPath), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	destFile, err := os.Create(physicalPath)
	if err != nil {
		return fmt.Errorf("无法创建目标文件: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		return fmt.Errorf("写入文件内容失败: %w", err)
	}

	if err := destFile.Sync(); err != nil {
		return fmt.Errorf("同步文件到磁盘失败: %w", err)
	}
	return nil
}

// Save 保存不隶属任何相册的文件，返回资源 URL
func (p *LocalPhotoSaver) Save(ctx context.Context, file io.Reader, fileName string) (string, error) {
	key := p.codec.NewObjectKey(fileName)
	if err := p.writeFile(file, key); err != nil {
		return "", err
	}
	return p.codec.ResolveURL(key), nil
}

// SaveWithinFolder 将文件保存到相册目录下，返回资源 URL
func (p *LocalPhotoSaver) SaveWithinFolder(ctx context.Context, file io.Reader, fileName string, albumID uint) (string, error) {
	key := p.codec.NewObjectKeyInFolder(fileName, albumID)
	if err := p.writeFile(file, key); err != nil {
		return "", err
	}
	return p.codec.ResolveURL(key), nil
}

// Delete 删除 URL 指向的文件。空 URL 与文件不存在都视为成功，保持幂等。
func (p *LocalPhotoSaver) Delete(ctx context.Context, fileURL string) (bool, error) {
	if fileURL == "" {
		return true, nil
	}

	key, err := p.codec.ExtractKey(fileURL)
	if err != nil {
		return false, err
	}

	physicalPath := filepath.Join(p.baseDir, filepath.FromSlash(key))
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("删除本地文件 '%s' 失败: %w", physicalPath, err)
	}

	log.Printf("[LocalSaver] 已删除本地文件: %s", physicalPath)
	return true, nil
}

// CopyFile 在磁盘上复制文件到目标相册目录，返回新 URL
func (p *LocalPhotoSaver) CopyFile(ctx context.Context, sourceURL string, targetAlbumID uint) (string, error) {
	sourceKey, err := p.codec.ExtractKey(sourceURL)
	if err != nil {
		return "", err
	}

	originalFileName := LastSegment(sourceKey)
	newKey := p.codec.NewObjectKeyInFolder(originalFileName, targetAlbumID)

	sourcePath := filepath.Join(p.baseDir, filepath.FromSlash(sourceKey))
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("无法打开源文件 '%s': %w", sourcePath, err)
	}
	defer sourceFile.Close()

	if err := p.writeFile(sourceFile, newKey); err != nil {
		return "", err
	}

	return p.codec.ResolveURL(newKey), nil
}

// sanitizeForLog 去掉换行符，避免外部输入造成日志注入
func sanitizeForLog(value string) string {
	value = strings.ReplaceAll(value, "\r", "")
	return strings.ReplaceAll(value, "\n", "")
}
