package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// handleListNotices returns one page of notices with optional category
// and keyword filters.
func (s *Server) handleListNotices(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		errorJSON(c, http.StatusBadRequest, "잘못된 페이지 번호입니다.")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 || size > maxPageSize {
		errorJSON(c, http.StatusBadRequest, "잘못된 페이지 크기입니다.")
		return
	}

	notices, total, err := s.repo.ListNotices(
		c.Request.Context(), page, size, c.Query("category"), c.Query("keyword"),
	)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to list notices", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": notices,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// handlePinnedNotices returns the pinned notices.
func (s *Server) handlePinnedNotices(c *gin.Context) {
	notices, err := s.repo.PinnedNotices(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to list pinned notices", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": notices})
}

// handleGetNotice returns a single notice by id.
func (s *Server) handleGetNotice(c *gin.Context) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	notice, err := s.repo.GetNotice(c.Request.Context(), noticeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "공지를 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to get notice", "id", noticeID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, notice)
}

type noticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
}

// handleCreateNotice inserts a new notice.
func (s *Server) handleCreateNotice(c *gin.Context) {
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "제목과 내용을 입력해주세요.")
		return
	}

	noticeID, err := s.repo.CreateNotice(c.Request.Context(), models.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Pinned:   req.Pinned,
	})
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to create notice", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": noticeID})
}

// handleUpdateNotice replaces the editable fields of a notice.
func (s *Server) handleUpdateNotice(c *gin.Context) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	var req noticeRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "제목과 내용을 입력해주세요.")
		return
	}

	err = s.repo.UpdateNotice(c.Request.Context(), models.Notice{
		ID:       noticeID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "공지를 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to update notice", "id", noticeID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// handleDeleteNotice removes a notice.
func (s *Server) handleDeleteNotice(c *gin.Context) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	if err = s.repo.DeleteNotice(c.Request.Context(), noticeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "공지를 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to delete notice", "id", noticeID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.Status(http.StatusNoContent)
}

type pinRequest struct {
	Pinned *bool `json:"pinned" binding:"required"`
}

// handlePinNotice pins or unpins a notice.
func (s *Server) handlePinNotice(c *gin.Context) {
	noticeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 공지 ID입니다.")
		return
	}

	var req pinRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "고정 여부를 입력해주세요.")
		return
	}

	if err = s.repo.SetNoticePinned(c.Request.Context(), noticeID, *req.Pinned); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "공지를 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to pin notice", "id", noticeID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.Status(http.StatusNoContent)
}
