package services

import (
	"errors"
	"strings"

	"cabin-backoffice/models"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewUserService(db *gorm.DB, log zerolog.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Signup registers a new back-office administrator. The email must be unused.
func (s *UserService) Signup(name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.GetByEmail(email); err == nil {
		return models.User{}, fieldError("email", "Email already in use")
	} else if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks an email/password pair. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ProfileUpdate is the mutable part of a user's own record. Empty Password
// keeps the stored hash; empty Image keeps the stored avatar.
type ProfileUpdate struct {
	Name     string
	Password string
	Image    string
}

func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) (models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	changes := map[string]interface{}{}
	if name := strings.TrimSpace(update.Name); name != "" {
		changes["name"] = name
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcryptCost)
		if err != nil {
			return models.User{}, err
		}
		changes["password"] = string(hash)
	}
	if update.Image != "" {
		changes["image"] = update.Image
	}
	if len(changes) == 0 {
		return user, nil
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return models.User{}, err
	}
	return s.GetByID(id)
}

// GuestInput is one row of a bulk guest import.
type GuestInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Nationality string `json:"nationality"`
	NationalID  string `json:"nationalID"`
	CountryFlag string `json:"countryFlag"`
}

// ImportGuests creates GUEST users in bulk. Rows whose email already exists
// are skipped rather than failing the whole import. Returns how many rows
// were actually created.
func (s *UserService) ImportGuests(inputs []GuestInput) (int, error) {
	created := 0
	for _, input := range inputs {
		user := models.User{
			Name:        strings.TrimSpace(input.Name),
			Email:       strings.ToLower(strings.TrimSpace(input.Email)),
			Role:        models.RoleGuest,
			Nationality: input.Nationality,
			NationalID:  input.NationalID,
			CountryFlag: input.CountryFlag,
		}

		err := s.DB.Create(&user).Error
		if err == nil {
			created++
			continue
		}
		if isDuplicateKey(err) {
			s.Log.Debug().Str("email", user.Email).Msg("guest import: duplicate email skipped")
			continue
		}
		return created, err
	}
	return created, nil
}

// ListGuests returns every GUEST user, oldest first.
func (s *UserService) ListGuests() ([]models.User, error) {
	var guests []models.User
	err := s.DB.Where("role = ?", models.RoleGuest).Order("id ASC").Find(&guests).Error
	return guests, err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}
