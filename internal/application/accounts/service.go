package accounts

import (
	"context"
	"errors"

	"casavia-backend/internal/domain"
	"casavia-backend/internal/infrastructure/registry"
	"casavia-backend/internal/models"
	"casavia-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service registers marketplace participants: the persisted Account row
// carries credentials and contact data, the in-memory registry carries the
// live Buyer/Seller entity under the same id.
type Service struct {
	DB  *gorm.DB
	Reg *registry.Registry
}

// RegisterInput for buyer/seller registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Budget    float64 // buyers only
}

func (s *Service) validateRegister(ctx context.Context, in RegisterInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return errors.New("All fields are required")
	}
	if !validation.IsValidFullname(in.FirstName + " " + in.LastName) {
		return errors.New("Invalid name format")
	}
	if !validation.IsValidEmail(in.Email) {
		return errors.New("Invalid email format")
	}
	if !validation.IsValidPassword(in.Password) {
		return errors.New("Password must be at least 8 characters with a letter, a number and a special character")
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Account{}).
		Where("email = ? OR username = ?", in.Email, in.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("Email or username already in use")
	}
	return nil
}

func (s *Service) persistAccount(ctx context.Context, id uuid.UUID, in RegisterInput, role domain.Role) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &models.Account{
		UserID:       id,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         string(role),
	}
	if err := s.DB.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// RegisterBuyer creates the account row and the live buyer entity.
func (s *Service) RegisterBuyer(ctx context.Context, in RegisterInput) (*models.Account, error) {
	if err := s.validateRegister(ctx, in); err != nil {
		return nil, err
	}
	buyer := domain.NewBuyer(in.FirstName, in.LastName, in.Email, in.Username, in.Password, in.Budget)
	account, err := s.persistAccount(ctx, buyer.ID(), in, domain.RoleBuyer)
	if err != nil {
		return nil, err
	}
	s.Reg.Lock()
	s.Reg.PutBuyer(buyer)
	s.Reg.Unlock()
	log.Info().Str("user_id", buyer.ID().String()).Msg("Buyer registered")
	return account, nil
}

// RegisterSeller creates the account row and the live seller entity.
func (s *Service) RegisterSeller(ctx context.Context, in RegisterInput) (*models.Account, error) {
	if err := s.validateRegister(ctx, in); err != nil {
		return nil, err
	}
	seller := domain.NewSeller(in.FirstName, in.LastName, in.Email, in.Username, in.Password)
	account, err := s.persistAccount(ctx, seller.ID(), in, domain.RoleSeller)
	if err != nil {
		return nil, err
	}
	s.Reg.Lock()
	s.Reg.PutSeller(seller)
	s.Reg.Unlock()
	log.Info().Str("user_id", seller.ID().String()).Msg("Seller registered")
	return account, nil
}

// ViewAccount returns the persisted account row.
func (s *Service) ViewAccount(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New("Account not found")
		}
		return nil, err
	}
	return &account, nil
}

// UpdateProfileInput carries optional profile changes; blank fields are
// left unchanged (domain semantics).
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile applies the change to the live entity and the account row.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*models.Account, error) {
	if in.Email != "" && !validation.IsValidEmail(in.Email) {
		return nil, errors.New("Invalid email format")
	}

	s.Reg.Lock()
	if buyer, ok := s.Reg.Buyer(userID); ok {
		buyer.UpdateProfile(in.FirstName, in.LastName, in.Email)
	} else if seller, ok := s.Reg.Seller(userID); ok {
		seller.UpdateProfile(in.FirstName, in.LastName, in.Email)
	} else {
		s.Reg.Unlock()
		return nil, errors.New("Account not found")
	}
	s.Reg.Unlock()

	var account models.Account
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New("Account not found")
		}
		return nil, err
	}
	updates := map[string]interface{}{}
	if in.FirstName != "" {
		updates["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		updates["last_name"] = in.LastName
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&account).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &account, nil
}

// ChangePassword verifies the current password against the stored hash
// before replacing it.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return errors.New("Current and new password are required")
	}
	if !validation.IsValidPassword(next) {
		return errors.New("Password must be at least 8 characters with a letter, a number and a special character")
	}
	var account models.Account
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.New("Account not found")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)); err != nil {
		return errors.New("Current password does not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(&account).Update("password_hash", string(hash)).Error
}
