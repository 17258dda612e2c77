package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUser lấy userID và role đã được middleware xác thực gắn vào context
func currentUser(c *gin.Context) (uint, int, bool) {
	idVal, ok := c.Get("userID")
	if !ok {
		return 0, 0, false
	}
	roleVal, ok := c.Get("userRole")
	if !ok {
		return 0, 0, false
	}

	id, ok := idVal.(uint)
	if !ok {
		return 0, 0, false
	}
	role, ok := roleVal.(int)
	if !ok {
		return 0, 0, false
	}
	return id, role, true
}

// parsePagination đọc page/limit từ query, mặc định page 0 limit 10
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ = strconv.Atoi(pageStr)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}

// paginate cắt một slice theo page/limit, trả thêm tổng số phần tử
func paginate[T any](items []T, page, limit int) ([]T, int) {
	total := len(items)
	start := page * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
