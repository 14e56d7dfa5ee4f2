package services

import (
	"context"
	"errors"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"
	"github.com/promit1201/fitin-v3-20177/utils"
)

var (
	ErrBadCredentials = errors.New("invalid email or password")
	ErrBadResetToken  = errors.New("invalid or expired reset token")
)

// RegisterUser creates the account plus its empty profile and free
// plan, so the per-user singleton rows exist from day one.
func RegisterUser(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	if err := config.DB.Create(&models.Profile{UserID: user.ID}).Error; err != nil {
		return err
	}
	return config.DB.Create(&models.UserPlan{UserID: user.ID, PlanType: "free"}).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrBadCredentials
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// StartPasswordReset stores a short-lived code and mails it. The error
// for an unknown email is swallowed by the controller so the endpoint
// does not leak which addresses exist.
func StartPasswordReset(ctx context.Context, email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(ctx, user.Email, user.ResetToken)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return ErrBadResetToken
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrBadResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
