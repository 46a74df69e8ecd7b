package dto

type RatingRequest struct {
	Rating int `json:"rating"`
}
