package service

import (
	"carmarket/internal/config"
	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/internal/validators"
)

type Services struct {
	AuthService AuthService
	CarService  CarService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.New()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, cfg, logger),
		CarService:  NewCarService(storages.CarRepository, validator, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
