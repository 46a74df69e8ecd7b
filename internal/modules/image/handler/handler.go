package handler

import imageservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/service"

type Handler struct {
	imageService *imageservice.Service
}

func New(imageService *imageservice.Service) *Handler {
	return &Handler{imageService: imageService}
}
