package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

const listUsersLimit = 1000

// UserService implements profile updates and the admin user listing.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// UpdateProfile applies only the non-nil fields of update and always
// refreshes updated_at. Absent fields are never guessed from zero values.
// A phone change is rejected when another user already owns the number;
// keeping one's own number is not a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error) {
	fields := map[string]any{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.Phone != nil {
		if !domain.ValidPhone(*update.Phone) {
			return nil, domain.ErrInvalidPhone
		}
		if owner, err := s.users.FindByPhone(ctx, *update.Phone); err == nil {
			if owner.ID != userID {
				return nil, domain.ErrPhoneTaken
			}
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		fields["phone"] = *update.Phone
	}
	if update.ProfilePicture != nil {
		fields["profile_picture"] = *update.ProfilePicture
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}

	user, err := s.users.UpdateFields(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Int("fields", len(fields)).Msg("profile updated")
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx, listUsersLimit)
}
