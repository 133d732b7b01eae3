package persistent

import (
	"socialhub/pkg/models"
	"socialhub/services/auth/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		Password:       m.Password,
		Bio:            m.Bio,
		ProfilePicture: m.ProfilePicture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:             e.ID,
		Username:       e.Username,
		Email:          e.Email,
		Password:       e.Password,
		Bio:            e.Bio,
		ProfilePicture: e.ProfilePicture,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toProfiles(users []models.User) []entity.Profile {
	profiles := make([]entity.Profile, len(users))
	for i, u := range users {
		profiles[i] = entity.Profile{
			ID:             u.ID,
			Username:       u.Username,
			ProfilePicture: u.ProfilePicture,
		}
	}
	return profiles
}
