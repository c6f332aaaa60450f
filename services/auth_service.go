package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PrincipalKind says which profile a login resolves to. Resolved once
// at authentication time; handlers switch on the kind instead of
// probing for attached records.
type PrincipalKind int

const (
	PrincipalUnlinked PrincipalKind = iota
	PrincipalCustomer
	PrincipalVendor
)

type Principal struct {
	Kind       PrincipalKind
	UserID     uint
	CustomerID uint
	VendorID   uint
}

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterCustomerIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DepartmentNumber string `json:"departmentNumber"`
	BuildingNumber   string `json:"buildingNumber"`
	StreetNumber     string `json:"streetNumber"`
	City             string `json:"city"`
}

func (s *AuthService) RegisterCustomer(in *RegisterCustomerIn) (*entity.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var customer entity.Customer
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := entity.User{Email: email, Password: string(hashed), Role: "customer"}
		if err := s.UserRepo.Create(tx, &user); err != nil {
			return err
		}
		customer = entity.Customer{
			UserID:           &user.ID,
			Name:             strings.TrimSpace(in.Name),
			Phone:            strings.TrimSpace(in.Phone),
			Email:            email,
			Address:          strings.TrimSpace(in.Address),
			DepartmentNumber: strings.TrimSpace(in.DepartmentNumber),
			BuildingNumber:   strings.TrimSpace(in.BuildingNumber),
			StreetNumber:     strings.TrimSpace(in.StreetNumber),
			City:             strings.TrimSpace(in.City),
		}
		return s.UserRepo.CreateCustomer(tx, &customer)
	})
	if err != nil {
		return nil, apperr.TxFailed("could not register customer", err)
	}
	return &customer, nil
}

type RegisterVendorIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	WorkingHours string `json:"workingHours"`
}

func (s *AuthService) RegisterVendor(in *RegisterVendorIn) (*entity.Vendor, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var vendor entity.Vendor
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := entity.User{Email: email, Password: string(hashed), Role: "vendor"}
		if err := s.UserRepo.Create(tx, &user); err != nil {
			return err
		}
		vendor = entity.Vendor{
			UserID:       &user.ID,
			Name:         strings.TrimSpace(in.Name),
			Location:     strings.TrimSpace(in.Location),
			WorkingHours: strings.TrimSpace(in.WorkingHours),
		}
		return s.UserRepo.CreateVendor(tx, &vendor)
	})
	if err != nil {
		return nil, apperr.TxFailed("could not register vendor", err)
	}
	return &vendor, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolvePrincipal binds a user id to its customer or vendor profile.
func (s *AuthService) ResolvePrincipal(userID uint) (*Principal, error) {
	p := &Principal{Kind: PrincipalUnlinked, UserID: userID}

	if c, err := s.UserRepo.FindCustomerByUserID(userID); err == nil {
		p.Kind = PrincipalCustomer
		p.CustomerID = c.ID
		return p, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if v, err := s.UserRepo.FindVendorByUserID(userID); err == nil {
		p.Kind = PrincipalVendor
		p.VendorID = v.ID
		return p, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return p, nil
}

type MeOut struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

func (s *AuthService) Me(p *Principal) (*MeOut, error) {
	user, err := s.UserRepo.FindByID(p.UserID)
	if err != nil {
		return nil, err
	}
	out := &MeOut{ID: user.ID, Email: user.Email}
	switch p.Kind {
	case PrincipalCustomer:
		out.UserType = "customer"
	case PrincipalVendor:
		out.UserType = "vendor"
	}
	return out, nil
}
