package service

import "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/repo"

type Service struct {
	systemStore repo.SystemStore
}

func New(systemStore repo.SystemStore) *Service {
	return &Service{systemStore: systemStore}
}
