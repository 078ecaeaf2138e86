package utils

import (
	"fmt"
	"mindmatch-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateAnonymousIntakeKey() string {
	return constvars.IntakeAnonymousPrefix + uuid.New().String()
}

func BuildUserIntakeKey(userID string) string {
	return constvars.IntakeUserPrefix + userID
}

func BuildSlotLockKey(practitionerID, date, timeSlot string) string {
	return fmt.Sprintf(constvars.RedisSlotLockKeyFormat, practitionerID, date, timeSlot)
}
