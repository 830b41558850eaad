package response

import "github.com/gin-gonic/gin"

// ApiEnvelope is the body of every JSON response. Exactly one of Data or
// Error is set; Meta only accompanies paginated lists.
type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationMeta{Total: total, TotalPages: pages, Page: page, PageSize: limit}
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{Ok: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, errorCode, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Error: errorBody{Code: errorCode, Message: message, Details: details},
	})
}
