package storage

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

func newResponseErr(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: status},
			},
			Err: fmt.Errorf("api error"),
		},
	}
}

func TestClassifyStorageErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "403拒绝_归类为存储端拒绝",
			err:  newResponseErr(http.StatusForbidden),
			want: constant.ErrStorageRejected,
		},
		{
			name: "404拒绝_归类为存储端拒绝",
			err:  newResponseErr(http.StatusNotFound),
			want: constant.ErrStorageRejected,
		},
		{
			name: "429限流_可重试_归类为不可用",
			err:  newResponseErr(http.StatusTooManyRequests),
			want: constant.ErrStorageUnavailable,
		},
		{
			name: "503服务端错误_归类为不可用",
			err:  newResponseErr(http.StatusServiceUnavailable),
			want: constant.ErrStorageUnavailable,
		},
		{
			name: "无响应的客户端APIError_归类为拒绝",
			err: &smithy.GenericAPIError{
				Code:    "InvalidRequest",
				Message: "bad",
				Fault:   smithy.FaultClient,
			},
			want: constant.ErrStorageRejected,
		},
		{
			name: "网络错误_归类为不可用",
			err:  errors.New("dial tcp: connection refused"),
			want: constant.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStorageErr("测试操作", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyStorageErr() = %v, want 类别 %v", got, tt.want)
			}
		})
	}
}

func TestEncodeCopySource(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		key    string
		want   string
	}{
		{
			name:   "纯ASCII键_目录分隔符保留",
			bucket: "my-bucket",
			key:    "7/uuid_sunset.jpg",
			want:   "my-bucket/7/uuid_sunset.jpg",
		},
		{
			name:   "含空格的文件名",
			bucket: "my-bucket",
			key:    "7/uuid_my photo.jpg",
			want:   "my-bucket/7/uuid_my%20photo.jpg",
		},
		{
			name:   "中文文件名逐段转义",
			bucket: "my-bucket",
			key:    "7/uuid_日落.jpg",
			want:   "my-bucket/7/uuid_%E6%97%A5%E8%90%BD.jpg",
		},
		{
			name:   "加号与百分号均被转义",
			bucket: "my-bucket",
			key:    "7/uuid_a+b%c.jpg",
			want:   "my-bucket/7/uuid_a%2Bb%25c.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeCopySource(tt.bucket, tt.key); got != tt.want {
				t.Errorf("encodeCopySource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGuessContentType(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.png", "image/png"},
		{"archive.unknownext", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := guessContentType(tt.file); got != tt.want {
			t.Errorf("guessContentType(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
