package services

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mailer is the delivery boundary; the reset flow never learns whether
// a message actually arrived.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	From string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.Host == "" {
		log.Printf("mail (no smtp configured) to=%s subject=%q", to, subject)
		return nil
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body)
	return smtp.SendMail(m.Host+":"+m.Port, nil, m.From, []string{to}, []byte(msg))
}

type PasswordResetService struct {
	UserRepo  *repository.UserRepository
	Mailer    Mailer
	JWTSecret string
	ResetTTL  time.Duration
	ResetURL  string
}

func NewPasswordResetService(repo *repository.UserRepository, mailer Mailer, secret string, ttl time.Duration, resetURL string) *PasswordResetService {
	return &PasswordResetService{
		UserRepo:  repo,
		Mailer:    mailer,
		JWTSecret: secret,
		ResetTTL:  ttl,
		ResetURL:  resetURL,
	}
}

// Request mails a reset link. The answer is the same whether or not
// the address is registered, so the endpoint cannot be used to probe
// for accounts.
func (s *PasswordResetService) Request(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := utils.GenerateResetToken(user.ID, s.JWTSecret, s.ResetTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.ResetURL, token)
	if err := s.Mailer.Send(user.Email, "Password Reset Request",
		"Click the link to reset your password: "+link); err != nil {
		// mail failure stays out of the caller-visible result
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *PasswordResetService) Confirm(token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}

	userID, err := utils.ParseResetToken(token, s.JWTSecret)
	if err != nil {
		return apperr.Validation("invalid or expired token")
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return apperr.Validation("invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(userID, string(hashed))
}
