package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/logger"
	"github.com/thrashered1/SmartSaveAI/internal/models"
)

// AuditService records who changed what. Logging is best effort; a failed
// audit write never fails the request that triggered it.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var payload string
	if changes != nil {
		if b, err := json.Marshal(changes); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      payload,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		logger.Get().Warnw("audit write failed",
			"action", action,
			"resource_type", resourceType,
			"error", err,
		)
	}
}
