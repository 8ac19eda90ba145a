package service

import (
	"errors"

	"devfolio/database"
	"devfolio/database/model"
	"devfolio/logger"
	"devfolio/util/crypto"

	"gorm.io/gorm"
)

type UserService struct{}

// CheckUser verifies a username/password pair and returns the matching
// user, or nil on any failure. An unknown username and a wrong password
// are indistinguishable to the caller.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// GetUser returns the user with the given username.
func (s *UserService) GetUser(username string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateFirstUser resets the credentials of the first user record. Used
// by the setting CLI command.
func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return errors.New("username can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.Model(model.User{}).First(user).Error
	if database.IsNotFound(err) {
		user.Username = username
		user.Password = hashedPassword
		return db.Model(model.User{}).Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.Password = hashedPassword
	return db.Save(user).Error
}
