package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/models"
	"github.com/shivas758/yamkar4.1-sub001/utils"
)

type RegisterEmployeeInput struct {
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	ManagerID *uint  `json:"manager_id"`
	VillageID *uint  `json:"village_id"`
}

// RegisterEmployee creates the account with a generated password and
// mails the credentials. Admin-only; the routes layer enforces that.
func RegisterEmployee(input RegisterEmployeeInput) (*models.User, error) {
	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if role != models.RoleAdmin && role != models.RoleManager && role != models.RoleEmployee {
		return nil, errors.New("unknown role")
	}

	password := utils.GenerateRandomToken(10)
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	rand.Seed(time.Now().UnixNano())
	base := strings.ToLower(strings.Split(input.FullName, " ")[0])
	employeeID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		EmployeeID: employeeID,
		Email:      input.Email,
		Password:   hashed,
		FullName:   input.FullName,
		Phone:      input.Phone,
		Role:       role,
		ManagerID:  input.ManagerID,
		VillageID:  input.VillageID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	if err := utils.SendCredentialsEmail(user.Email, user.EmployeeID, password); err != nil {
		// account exists either way; the admin can trigger a reset
		return &user, fmt.Errorf("user created but credentials email failed: %w", err)
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":          user.ID,
		"employee_id": user.EmployeeID,
		"email":       user.Email,
		"full_name":   user.FullName,
		"phone":       user.Phone,
		"role":        user.Role,
		"manager_id":  user.ManagerID,
		"village_id":  user.VillageID,
	}, nil
}

type ProfileInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return config.DB.Save(&user).Error
}

// ListEmployees returns everyone a viewer may manage: admins see all,
// managers see their reports.
func ListEmployees(viewerID uint, role string) ([]models.User, error) {
	q := config.DB.Where("disabled = ?", false)
	if role == models.RoleManager {
		q = q.Where("manager_id = ?", viewerID)
	}

	var users []models.User
	err := q.Order("full_name ASC").Find(&users).Error
	return users, err
}

func DisableUser(id uint) error {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
