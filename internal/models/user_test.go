package models_test

import (
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
)

func (suite *TestSuiteStandard) TestUserBeforeSave() {
	user := models.User{
		Name:  " Ada ",
		Email: " Ada@Example.COM ",
	}

	err := user.BeforeSave(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal("Ada", user.Name)
	suite.Assert().Equal("ada@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "ada@example.com"})

	user := models.User{Name: "Other Ada", Email: "ADA@example.com", PasswordHash: "x"}
	err := models.DB.Create(&user).Error

	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestDatabaseClosedGeneralError() {
	suite.CloseDB()

	var users []models.User
	err := models.DB.Find(&users).Error

	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
