package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"

	"github.com/gin-gonic/gin"
)

func TestFailWithError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"未找到_404", fmt.Errorf("%w: 照片 1", constant.ErrNotFound), http.StatusNotFound},
		{"参数错误_400", constant.ErrBadRequest, http.StatusBadRequest},
		{"校验失败_400", fmt.Errorf("%w: caption 超长", constant.ErrValidation), http.StatusBadRequest},
		{"目标相册相同_400", constant.ErrSameAlbum, http.StatusBadRequest},
		{"地址无法解析_400", constant.ErrMalformedAssetURL, http.StatusBadRequest},
		{"存储拒绝_502", fmt.Errorf("%w: 桶策略", constant.ErrStorageRejected), http.StatusBadGateway},
		{"存储不可用_503", fmt.Errorf("%w: 网络", constant.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{"未知错误_500", fmt.Errorf("随便什么错误"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailWithError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("状态码不符: got %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
