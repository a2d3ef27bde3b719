package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPhotoSaver_SaveWithinFolder(t *testing.T) {
	dir := t.TempDir()
	saver := newLocalPhotoSaverAt(dir, "http://localhost:8091/uploads", false)

	fileURL, err := saver.SaveWithinFolder(context.Background(), strings.NewReader("图片内容"), "sunset.jpg", 7)
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	key, err := saver.codec.ExtractKey(fileURL)
	if err != nil {
		t.Fatalf("反解键失败: %v", err)
	}
	if !strings.HasPrefix(key, "7/") {
		t.Errorf("键应落在相册目录下: %q", key)
	}

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("读回文件失败: %v", err)
	}
	if string(content) != "图片内容" {
		t.Errorf("文件内容不符: %q", content)
	}
}

func TestLocalPhotoSaver_Delete(t *testing.T) {
	dir := t.TempDir()
	saver := newLocalPhotoSaverAt(dir, "http://localhost:8091/uploads", false)
	ctx := context.Background()

	t.Run("空URL视为成功的空操作", func(t *testing.T) {
		ok, err := saver.Delete(ctx, "")
		if err != nil || !ok {
			t.Errorf("got (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("文件不存在视为成功", func(t *testing.T) {
		ok, err := saver.Delete(ctx, "http://localhost:8091/uploads/7/missing.jpg")
		if err != nil || !ok {
			t.Errorf("got (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("删除已存在的文件", func(t *testing.T) {
		fileURL, err := saver.SaveWithinFolder(ctx, strings.NewReader("x"), "a.jpg", 1)
		if err != nil {
			t.Fatalf("保存失败: %v", err)
		}
		ok, err := saver.Delete(ctx, fileURL)
		if err != nil || !ok {
			t.Fatalf("删除失败: (%v, %v)", ok, err)
		}

		key, _ := saver.codec.ExtractKey(fileURL)
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key))); !os.IsNotExist(err) {
			t.Errorf("文件应已被删除")
		}
	})
}

func TestLocalPhotoSaver_CopyFile(t *testing.T) {
	dir := t.TempDir()
	saver := newLocalPhotoSaverAt(dir, "http://localhost:8091/uploads", false)
	ctx := context.Background()

	sourceURL, err := saver.SaveWithinFolder(ctx, strings.NewReader("原始数据"), "pic.png", 1)
	if err != nil {
		t.Fatalf("保存源文件失败: %v", err)
	}

	newURL, err := saver.CopyFile(ctx, sourceURL, 2)
	if err != nil {
		t.Fatalf("复制失败: %v", err)
	}
	if newURL == sourceURL {
		t.Fatalf("副本应有全新的 URL")
	}

	newKey, err := saver.codec.ExtractKey(newURL)
	if err != nil {
		t.Fatalf("反解新键失败: %v", err)
	}
	if !strings.HasPrefix(newKey, "2/") {
		t.Errorf("副本应落在目标相册目录下: %q", newKey)
	}

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(newKey)))
	if err != nil {
		t.Fatalf("读回副本失败: %v", err)
	}
	if string(content) != "原始数据" {
		t.Errorf("副本内容不符: %q", content)
	}

	// 源文件保持原样
	sourceKey, _ := saver.codec.ExtractKey(sourceURL)
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(sourceKey))); err != nil {
		t.Errorf("复制不应影响源文件: %v", err)
	}
}

func TestLocalPhotoSaver_CopyFile_SourceMissing(t *testing.T) {
	saver := newLocalPhotoSaverAt(t.TempDir(), "http://localhost:8091/uploads", false)

	_, err := saver.CopyFile(context.Background(), "http://localhost:8091/uploads/1/nope.png", 2)
	if err == nil {
		t.Fatalf("复制不存在的源文件应失败")
	}
}
