package storage

import (
	"log"

	"voicebox/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Service) CreatePetition(petition *models.Petition) error {
	if petition.Status == "" {
		petition.Status = models.PetitionActive
	}
	if err := s.DB.Create(petition).Error; err != nil {
		log.Printf("ERROR: Failed to save petition %q: %v", petition.Title, err)
		return wrap(err)
	}
	return nil
}

func (s *Service) GetPetitionByID(id string) (*models.Petition, error) {
	var petition models.Petition
	if err := s.DB.First(&petition, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &petition, nil
}

func (s *Service) ListPetitions() ([]models.Petition, error) {
	var petitions []models.Petition
	if err := s.DB.Order("created_at desc").Find(&petitions).Error; err != nil {
		log.Printf("ERROR: Failed to list petitions: %v", err)
		return nil, wrap(err)
	}
	return petitions, nil
}

// SignPetition records one signature. Signing is idempotent per user:
// when the user already appears in the supporters list the call is a no-op
// and accepted is false. The membership re-check runs inside a transaction
// holding a row lock, so two in-flight signs by the same user cannot both
// count, and concurrent signs by distinct users cannot lose updates.
func (s *Service) SignPetition(petitionID, userID string) (bool, error) {
	accepted := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var petition models.Petition
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&petition, "id = ?", petitionID).Error; err != nil {
			return err
		}
		for _, id := range petition.Supporters {
			if id == userID {
				return nil
			}
		}
		accepted = true
		return tx.Model(&petition).Updates(map[string]interface{}{
			"current_supporters": gorm.Expr("current_supporters + 1"),
			"supporters":         gorm.Expr("array_append(coalesce(supporters, '{}'), ?)", userID),
		}).Error
	})
	if err != nil {
		return false, wrap(err)
	}
	return accepted, nil
}

// PetitionStats aggregates over the full petition set. Nothing is
// persisted for these; they are recomputed on every call.
func (s *Service) PetitionStats() (models.PetitionStats, error) {
	var stats models.PetitionStats
	base := s.DB.Model(&models.Petition{})
	if err := base.Session(&gorm.Session{}).Where("current_supporters < target").Count(&stats.Active).Error; err != nil {
		return stats, wrap(err)
	}
	if err := base.Session(&gorm.Session{}).Where("current_supporters >= target").Count(&stats.Successful).Error; err != nil {
		return stats, wrap(err)
	}
	row := s.DB.Model(&models.Petition{}).Select("coalesce(sum(current_supporters), 0)").Row()
	if err := row.Scan(&stats.TotalSupporters); err != nil {
		return stats, wrap(err)
	}
	return stats, nil
}
