package dto

type CreatePostRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
}

type UpdatePostRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Category    *string `form:"category"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateCommentRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateCommentRequest struct {
	Description string `json:"description" binding:"required"`
}
