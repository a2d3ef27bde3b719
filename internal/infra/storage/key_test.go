package storage

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
)

const testBaseURL = "https://my-bucket.s3.us-east-1.amazonaws.com"

func TestNewObjectKeyInFolder(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		albumID uint
		file    string
		pattern string
	}{
		{
			name:    "生产模式_相册目录加唯一前缀",
			debug:   false,
			albumID: 7,
			file:    "sunset.jpg",
			pattern: `^7/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}_sunset\.jpg$`,
		},
		{
			name:    "调试模式_目录段与文件段都带debug前缀",
			debug:   true,
			albumID: 7,
			file:    "sunset.jpg",
			pattern: `^debug_7/debug_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}_sunset\.jpg$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewKeyCodec(testBaseURL, tt.debug)
			key := codec.NewObjectKeyInFolder(tt.file, tt.albumID)
			if !regexp.MustCompile(tt.pattern).MatchString(key) {
				t.Errorf("键格式不符: got %q, want match %q", key, tt.pattern)
			}
		})
	}
}

func TestNewObjectKey_Uniqueness(t *testing.T) {
	codec := NewKeyCodec(testBaseURL, false)
	a := codec.NewObjectKey("a.png")
	b := codec.NewObjectKey("a.png")
	if a == b {
		t.Errorf("同名文件应派生不同的键: %q", a)
	}
	if !strings.HasSuffix(a, "_a.png") {
		t.Errorf("键应保留原始文件名后缀: %q", a)
	}
}

func TestResolveURL_ExtractKey_Roundtrip(t *testing.T) {
	codec := NewKeyCodec(testBaseURL, false)
	key := codec.NewObjectKeyInFolder("beach.png", 3)

	fileURL := codec.ResolveURL(key)
	if !strings.HasPrefix(fileURL, testBaseURL+"/") {
		t.Fatalf("URL 前缀不符: %q", fileURL)
	}

	got, err := codec.ExtractKey(fileURL)
	if err != nil {
		t.Fatalf("反解键失败: %v", err)
	}
	if got != key {
		t.Errorf("往返不一致: got %q, want %q", got, key)
	}
}

func TestExtractKey(t *testing.T) {
	codec := NewKeyCodec(testBaseURL, false)

	tests := []struct {
		name    string
		fileURL string
		want    string
		wantErr bool
	}{
		{
			name:    "预期前缀_直接截取",
			fileURL: testBaseURL + "/7/abc_sunset.jpg",
			want:    "7/abc_sunset.jpg",
		},
		{
			name:    "外部URL_宽松解析路径",
			fileURL: "https://other-host.example.com/9/xyz_pic.png",
			want:    "9/xyz_pic.png",
		},
		{
			name:    "无路径URL_解析出空键不算错误",
			fileURL: "https://other-host.example.com",
			want:    "",
		},
		{
			name:    "完全无法解析_返回错误",
			fileURL: "https://bad host/%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.ExtractKey(tt.fileURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("期望错误, got key=%q", got)
				}
				if !errors.Is(err, constant.ErrMalformedAssetURL) {
					t.Errorf("错误类别不符: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"7/abc_sunset.jpg", "abc_sunset.jpg"},
		{"abc_sunset.jpg", "abc_sunset.jpg"},
		{"debug_7/debug_abc_pic.png", "debug_abc_pic.png"},
	}
	for _, tt := range tests {
		if got := LastSegment(tt.key); got != tt.want {
			t.Errorf("LastSegment(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
