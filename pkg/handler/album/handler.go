package album_handler

import (
	"net/http"
	"time"

	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/response"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/album"

	"github.com/gin-gonic/gin"
)

// AlbumHandler 封装了相册相关的控制器方法
type AlbumHandler struct {
	albumSvc album.AlbumService
}

// NewAlbumHandler 是 AlbumHandler 的构造函数
func NewAlbumHandler(albumSvc album.AlbumService) *AlbumHandler {
	return &AlbumHandler{
		albumSvc: albumSvc,
	}
}

// AlbumResponse 是相册的响应 DTO
type AlbumResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAlbumResponse(a *model.Album) AlbumResponse {
	return AlbumResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// GetAlbums 处理获取相册列表的请求
func (h *AlbumHandler) GetAlbums(c *gin.Context) {
	albums, err := h.albumSvc.FindAll(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	list := make([]AlbumResponse, 0, len(albums))
	for _, a := range albums {
		list = append(list, toAlbumResponse(a))
	}
	response.Success(c, list, "获取成功")
}

// CreateAlbum 处理创建相册的请求
func (h *AlbumHandler) CreateAlbum(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	created, err := h.albumSvc.CreateAlbum(c.Request.Context(), album.CreateAlbumParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, toAlbumResponse(created), "创建成功")
}
