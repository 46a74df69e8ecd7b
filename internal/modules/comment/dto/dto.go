package dto

type CommentRequest struct {
	Data string `json:"data"`
}
