package services

import (
	"errors"
	"strings"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/models"
	"github.com/DragianXOG/diet-app/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

func RegisterUser(email, password, fullName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		var existing models.User
		if config.DB.Where("email = ?", email).First(&existing).Error == nil {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func AuthenticateUser(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid credentials")
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid credentials")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
