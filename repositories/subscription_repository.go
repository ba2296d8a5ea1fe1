package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

// SubscriptionRepository manages the two follow relations: reader to
// journalist and reader to publisher. Both are treated as sets with
// full-replace updates, so the reverse lookups used by the notification
// fanout always reflect current state.
type SubscriptionRepository interface {
	Replace(reader *models.User, publishers []models.Publisher, journalists []models.User) error
	GetForReader(readerID uint) (publishers []models.Publisher, journalists []models.User, err error)
	FollowersOfJournalist(journalistID uint) ([]models.User, error)
	SubscribersOfPublisher(publisherID uint) ([]models.User, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Replace(reader *models.User, publishers []models.Publisher, journalists []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(reader).Association("SubscribedPublishers").Replace(&publishers); err != nil {
			return err
		}
		followed := make([]*models.User, len(journalists))
		for i := range journalists {
			followed[i] = &journalists[i]
		}
		return tx.Model(reader).Association("SubscribedJournalists").Replace(followed)
	})
}

func (r *subscriptionRepository) GetForReader(readerID uint) ([]models.Publisher, []models.User, error) {
	var reader models.User
	err := r.db.Preload("SubscribedPublishers").Preload("SubscribedJournalists").First(&reader, readerID).Error
	if err != nil {
		return nil, nil, err
	}

	journalists := make([]models.User, 0, len(reader.SubscribedJournalists))
	for _, j := range reader.SubscribedJournalists {
		journalists = append(journalists, *j)
	}
	return reader.SubscribedPublishers, journalists, nil
}

// FollowersOfJournalist is the reverse edge used by the fanout: every
// reader currently following the given journalist.
func (r *subscriptionRepository) FollowersOfJournalist(journalistID uint) ([]models.User, error) {
	var readers []models.User
	err := r.db.
		Joins("JOIN reader_journalist_subscriptions s ON s.reader_id = users.id").
		Where("s.journalist_id = ?", journalistID).
		Find(&readers).Error
	return readers, err
}

func (r *subscriptionRepository) SubscribersOfPublisher(publisherID uint) ([]models.User, error) {
	var readers []models.User
	err := r.db.
		Joins("JOIN reader_publisher_subscriptions s ON s.reader_id = users.id").
		Where("s.publisher_id = ?", publisherID).
		Find(&readers).Error
	return readers, err
}
