/*
 * @Description: 照片生命周期相关的控制器
 * @Author: 安知鱼
 * @Date: 2025-09-01 12:02:31
 * @LastEditTime: 2025-09-01 12:02:31
 * @LastEditors: 安知鱼
 */
package photo_handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/response"
	"github.com/anzhiyu-c/xiangce-app/pkg/service/photo"

	"github.com/gin-gonic/gin"
)

// PhotoHandler 封装了照片相关的控制器方法
type PhotoHandler struct {
	photoSvc photo.PhotoService
}

// NewPhotoHandler 是 PhotoHandler 的构造函数
func NewPhotoHandler(photoSvc photo.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoSvc: photoSvc,
	}
}

// PhotoResponse 是照片的响应 DTO
type PhotoResponse struct {
	ID        uint      `json:"id"`
	AlbumID   uint      `json:"albumId"`
	ImageUrl  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	Location  string    `json:"location"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPhotoResponse(p *model.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		AlbumID:   p.AlbumID,
		ImageUrl:  p.ImageUrl,
		Caption:   p.Caption,
		Location:  p.Location,
		Width:     p.Width,
		Height:    p.Height,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的 "+name+" 参数")
		return 0, false
	}
	return uint(id), true
}

// GetPhotos 处理获取相册内照片列表的请求
func (h *PhotoHandler) GetPhotos(c *gin.Context) {
	albumID, ok := parseUintParam(c, "albumID")
	if !ok {
		return
	}

	photos, err := h.photoSvc.GetPhotosByAlbumID(c.Request.Context(), albumID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	list := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		list = append(list, toPhotoResponse(p))
	}
	response.Success(c, list, "获取成功")
}

// UploadPhoto 处理上传照片的请求。
// multipart 表单：image 为图片文件（可缺省，缺省时只建元数据记录），
// caption/location 为可选文本字段。
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	albumID, ok := parseUintParam(c, "albumID")
	if !ok {
		return
	}

	params := photo.UploadPhotoParams{
		AlbumID:  albumID,
		Caption:  c.PostForm("caption"),
		Location: c.PostForm("location"),
	}

	fileHeader, err := c.FormFile("image")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			response.Fail(c, http.StatusBadRequest, "读取上传文件失败: "+openErr.Error())
			return
		}
		defer file.Close()
		params.File = file
		params.FileName = fileHeader.Filename
	}

	created, err := h.photoSvc.SavePhoto(c.Request.Context(), params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, toPhotoResponse(created), "上传成功")
}

// UpdatePhoto 处理局部更新照片的请求。
// 只接受 caption 和 location；imageUrl 一经写入不可改写，出现即拒绝。
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	albumID, ok := parseUintParam(c, "albumID")
	if !ok {
		return
	}
	photoID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Caption  *string `json:"caption"`
		Location *string `json:"location"`
		ImageUrl *string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}
	if req.ImageUrl != nil {
		response.Fail(c, http.StatusBadRequest, "imageUrl 不允许修改")
		return
	}

	updated, err := h.photoSvc.UpdatePhoto(c.Request.Context(), photoID, albumID, photo.UpdatePhotoParams{
		Caption:  req.Caption,
		Location: req.Location,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, toPhotoResponse(updated), "更新成功")
}

// DeletePhoto 处理删除照片的请求。
// 默认只删除元数据记录；带 purge=true 时连同对象存储中的资产一并删除。
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	albumID, ok := parseUintParam(c, "albumID")
	if !ok {
		return
	}
	photoID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	purge := c.Query("purge") == "true"

	if err := h.photoSvc.DeletePhoto(c.Request.Context(), photoID, albumID, purge); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

// moveCopyRequest 是移动/复制操作共用的请求体
type moveCopyRequest struct {
	TargetAlbumID uint `json:"targetAlbumId" binding:"required"`
}

// MovePhoto 处理把照片移动到另一个相册的请求
func (h *PhotoHandler) MovePhoto(c *gin.Context) {
	photoID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req moveCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	moved, err := h.photoSvc.MovePhotoToAlbum(c.Request.Context(), photoID, req.TargetAlbumID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, toPhotoResponse(moved), "移动成功")
}

// CopyPhoto 处理把照片复制到另一个相册的请求
func (h *PhotoHandler) CopyPhoto(c *gin.Context) {
	photoID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req moveCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	copied, err := h.photoSvc.CopyPhotoToAlbum(c.Request.Context(), photoID, req.TargetAlbumID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, toPhotoResponse(copied), "复制成功")
}
