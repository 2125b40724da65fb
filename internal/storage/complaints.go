package storage

import (
	"log"

	"voicebox/backend/internal/models"
)

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint %q: %v", complaint.Title, err)
		return wrap(err)
	}
	return nil
}

func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &complaint, nil
}

// ListComplaintsByAuthor returns the author's complaints, newest first.
func (s *Service) ListComplaintsByAuthor(authorID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints for author %s: %v", authorID, err)
		return nil, wrap(err)
	}
	return complaints, nil
}

// ListComplaints returns every complaint, newest first, optionally narrowed
// to one status. Free-text search is applied by the service on top.
func (s *Service) ListComplaints(status string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := s.DB.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, wrap(err)
	}
	return complaints, nil
}

// UpdateComplaintStatus overwrites the status field. Any status is
// reachable from any other; no transition graph is enforced.
func (s *Service) UpdateComplaintStatus(id, status string) error {
	res := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ComplaintStats() (models.ComplaintStats, error) {
	var stats models.ComplaintStats
	counts := map[string]*int64{
		models.StatusPending:    &stats.Pending,
		models.StatusInProgress: &stats.InProgress,
		models.StatusResolved:   &stats.Resolved,
	}
	if err := s.DB.Model(&models.Complaint{}).Count(&stats.Total).Error; err != nil {
		return stats, wrap(err)
	}
	for status, dst := range counts {
		if err := s.DB.Model(&models.Complaint{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return stats, wrap(err)
		}
	}
	return stats, nil
}
