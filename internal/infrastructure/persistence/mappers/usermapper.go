package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/mapper"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToDomains(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to map user role (id=%d): %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Email,
		role,
		model.FullName,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		PasswordHash: entity.PasswordHash(),
		Email:        entity.Email(),
		Role:         entity.Role().String(),
		FullName:     entity.FullName(),
	}
}

func (m *UserMapperImpl) ToDomains(userModels []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(userModels, m.ToDomain)
}
