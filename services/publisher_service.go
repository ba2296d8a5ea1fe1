package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

type PublisherService interface {
	List() ([]models.Publisher, error)
	ListJournalists() ([]models.User, error)
	Delete(actor *models.User, id uint) error
	AddStaff(actor *models.User, publisherID, userID uint) error
	RemoveStaff(actor *models.User, publisherID, userID uint) error
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository, userRepo repositories.UserRepository) PublisherService {
	return &publisherService{publisherRepo: publisherRepo, userRepo: userRepo}
}

func (s *publisherService) List() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}

// ListJournalists feeds the subscription picker.
func (s *publisherService) ListJournalists() ([]models.User, error) {
	return s.userRepo.ListJournalists()
}

// Delete removes a publisher. Attributed content survives with a cleared
// publisher reference.
func (s *publisherService) Delete(actor *models.User, id uint) error {
	if actor.Role != models.RoleEditor {
		return models.ErrorForbidden{Message: "only editors can delete publishers"}
	}
	if _, err := s.publisherRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "publisher not found"}
		}
		return err
	}
	return s.publisherRepo.Delete(id)
}

// AddStaff affiliates an editor or journalist with a publisher; the
// relation is picked from the user's role.
func (s *publisherService) AddStaff(actor *models.User, publisherID, userID uint) error {
	user, err := s.staffTarget(actor, publisherID, userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleEditor {
		return s.publisherRepo.AddEditor(publisherID, user)
	}
	return s.publisherRepo.AddJournalist(publisherID, user)
}

func (s *publisherService) RemoveStaff(actor *models.User, publisherID, userID uint) error {
	user, err := s.staffTarget(actor, publisherID, userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleEditor {
		return s.publisherRepo.RemoveEditor(publisherID, user)
	}
	return s.publisherRepo.RemoveJournalist(publisherID, user)
}

func (s *publisherService) staffTarget(actor *models.User, publisherID, userID uint) (*models.User, error) {
	if actor.Role != models.RoleEditor {
		return nil, models.ErrorForbidden{Message: "only editors can manage publisher staff"}
	}
	if _, err := s.publisherRepo.GetByID(publisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	if user.Role != models.RoleEditor && user.Role != models.RoleJournalist {
		return nil, models.ErrorValidation{Message: "staff must be an editor or journalist"}
	}
	return user, nil
}
