/*
 * @Description: AWS S3 照片存储实现（使用aws-sdk-go-v2）
 * @Author: 安知鱼
 * @Date: 2025-09-01 11:10:27
 * @LastEditTime: 2025-09-01 11:10:27
 * @LastEditors: 安知鱼
 */
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	appconfig "github.com/anzhiyu-c/xiangce-app/pkg/config"
	"github.com/anzhiyu-c/xiangce-app/pkg/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// AwsPhotoSaver 实现了 repository.PhotoSaver 接口，负责与 S3 的所有交互。
// 客户端与配置在构造时确定一次，进程生命周期内不变。
type AwsPhotoSaver struct {
	client *s3.Client
	bucket string
	codec  KeyCodec
}

// NewAwsPhotoSaver 是 AwsPhotoSaver 的构造函数。
// bucket/region/凭证/debug 命名空间均来自注入的配置，方法内不再读取环境。
func NewAwsPhotoSaver(ctx context.Context, cfg *appconfig.Config) (*AwsPhotoSaver, error) {
	bucket := cfg.GetString(appconfig.KeyStorageBucket)
	if bucket == "" {
		return nil, fmt.Errorf("S3 配置缺少存储桶名称")
	}

	region := cfg.GetString(appconfig.KeyStorageRegion)
	if region == "" {
		region = "us-east-1"
	}

	accessKey := cfg.GetString(appconfig.KeyStorageAccessKey)
	secretKey := cfg.GetString(appconfig.KeyStorageSecretKey)
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("S3 配置缺少 AccessKey/SecretKey")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(region))
	opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
		accessKey,
		secretKey,
		"",
	)))

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建 AWS S3 配置失败: %w", err)
	}

	endpoint := cfg.GetString(appconfig.KeyStorageEndpoint)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // 对于自定义endpoint通常需要path-style
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	log.Printf("[AWS S3] 客户端初始化完成 - 桶: %s, 区域: %s", bucket, region)

	return &AwsPhotoSaver{
		client: client,
		bucket: bucket,
		codec:  NewKeyCodec(baseURL, cfg.GetBool(appconfig.KeyServerDebug)),
	}, nil
}

// guessContentType 按文件扩展名猜测 MIME 类型，未知时退回通用二进制类型
func guessContentType(fileName string) string {
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType
}

// classifyStorageErr 将 SDK 错误归类为 ErrStorageUnavailable / ErrStorageRejected。
// 有 HTTP 响应且状态码在 4xx 段的视为存储端拒绝；其余（网络、凭证、5xx）
// 视为存储不可用，可由调用方重试。
func classifyStorageErr(op string, err error) error {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		if status >= 400 && status < 500 && status != 429 {
			return fmt.Errorf("%w: %s: %v", constant.ErrStorageRejected, op, err)
		}
		return fmt.Errorf("%w: %s: %v", constant.ErrStorageUnavailable, op, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorFault() == smithy.FaultClient {
		return fmt.Errorf("%w: %s: %v", constant.ErrStorageRejected, op, err)
	}

	return fmt.Errorf("%w: %s: %v", constant.ErrStorageUnavailable, op, err)
}

// encodeCopySource 构造 CopyObject 的 x-amz-copy-source 头值。
// 该头要求对键做 URL 编码且 SDK 不代劳：空格、百分号、加号以及
// 非 ASCII 文件名必须逐段转义，否则会寻址到错误的对象或直接失败。
func encodeCopySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		escaped := url.PathEscape(segment)
		// PathEscape 不转义 '+'，而 S3 会把它按编码规则解读
		segments[i] = strings.ReplaceAll(escaped, "+", "%2B")
	}
	return bucket + "/" + strings.Join(segments, "/")
}

// upload 将文件流写入指定对象键
func (p *AwsPhotoSaver) upload(ctx context.Context, file io.Reader, key, fileName string) error {
	// 将文件内容读入内存，以便获取准确的 ContentLength。
	// 这对第三方 S3 兼容服务（如 Ceph RGW、MinIO）尤为重要。
	fileContent, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("读取文件内容失败: %w", err)
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(p.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(fileContent),
		ContentLength:      aws.Int64(int64(len(fileContent))),
		ContentType:        aws.String(guessContentType(fileName)),
		ContentDisposition: aws.String("inline"),
	})
	if err != nil {
		log.Printf("[AWS S3] 上传失败: key=%s, 错误: %v", key, err)
		return classifyStorageErr("上传到 S3 失败", err)
	}

	log.Printf("[AWS S3] 上传成功: key=%s", key)
	return nil
}

// Save 保存不隶属任何相册的文件，返回资源 URL
func (p *AwsPhotoSaver) Save(ctx context.Context, file io.Reader, fileName string) (string, error) {
	key := p.codec.NewObjectKey(fileName)
	if err := p.upload(ctx, file, key, fileName); err != nil {
		return "", err
	}
	return p.codec.ResolveURL(key), nil
}

// SaveWithinFolder 将文件保存到相册目录下，返回资源 URL
func (p *AwsPhotoSaver) SaveWithinFolder(ctx context.Context, file io.Reader, fileName string, albumID uint) (string, error) {
	key := p.codec.NewObjectKeyInFolder(fileName, albumID)
	if err := p.upload(ctx, file, key, fileName); err != nil {
		return "", err
	}
	return p.codec.ResolveURL(key), nil
}

// Delete 删除 URL 指向的对象。空 URL 是成功的空操作；
// S3 的 DeleteObject 本身不区分"对象不存在"，因此删除天然幂等。
func (p *AwsPhotoSaver) Delete(ctx context.Context, fileURL string) (bool, error) {
	if fileURL == "" {
		return true, nil
	}

	log.Printf("[AWS S3] 删除对象: %s", sanitizeForLog(fileURL))

	key, err := p.codec.ExtractKey(fileURL)
	if err != nil {
		return false, err
	}

	_, err = p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("[AWS S3] 删除对象失败: key=%s, 错误: %v", key, err)
		return false, classifyStorageErr("从 S3 删除失败", err)
	}

	return true, nil
}

// CopyFile 在桶内做服务器侧复制并返回新对象的 URL。
// 数据不经过本进程，大文件的复制耗时与内存都由存储端承担。
func (p *AwsPhotoSaver) CopyFile(ctx context.Context, sourceURL string, targetAlbumID uint) (string, error) {
	sourceKey, err := p.codec.ExtractKey(sourceURL)
	if err != nil {
		return "", err
	}

	// 源键的最后一个路径段充当原始文件名，新键带全新的唯一前缀
	originalFileName := LastSegment(sourceKey)
	newKey := p.codec.NewObjectKeyInFolder(originalFileName, targetAlbumID)

	_, err = p.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(p.bucket),
		Key:        aws.String(newKey),
		CopySource: aws.String(encodeCopySource(p.bucket, sourceKey)),
	})
	if err != nil {
		log.Printf("[AWS S3] 复制对象失败: %s -> %s, 错误: %v", sourceKey, newKey, err)
		return "", classifyStorageErr("S3 服务器侧复制失败", err)
	}

	log.Printf("[AWS S3] 复制成功: %s -> %s", sourceKey, newKey)
	return p.codec.ResolveURL(newKey), nil
}
