package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "investio/internal/errors"
	"investio/internal/models"
	"investio/internal/pagination"
)

// clientService handles client record business logic.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// CreateClient registers a new client.
func (s *clientService) CreateClient(name, document, email string) (*models.Client, error) {
	var count int64
	s.db.Model(&models.Client{}).Where("document = ?", document).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateDocument
	}

	client := &models.Client{
		Name:     name,
		Document: document,
		Email:    email,
	}
	if err := s.db.Create(client).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return client, nil
}

// GetClients returns a paginated list of clients.
func (s *clientService) GetClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Client{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var clients []models.Client
	if err := s.db.Order("id").Scopes(pagination.Paginate(page)).Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(clients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetClientByID returns a client by ID.
func (s *clientService) GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// UpdateClient updates a client's mutable fields. The document is an
// identity attribute and cannot change.
func (s *clientService) UpdateClient(id uint, name, email string) (*models.Client, error) {
	client, err := s.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if email != "" {
		updates["email"] = email
	}
	if len(updates) > 0 {
		if err := s.db.Model(client).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return client, nil
}

// DeleteClient soft-deletes a client.
func (s *clientService) DeleteClient(id uint) error {
	client, err := s.GetClientByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(client).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
