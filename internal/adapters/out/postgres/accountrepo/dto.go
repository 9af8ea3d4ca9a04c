// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. The handle carries a unique index; registration races on the
// same handle are resolved by the constraint, not by application code.
type AccountDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Handle string    `gorm:"uniqueIndex"`
	Role   int
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(acc *account.Account) AccountDTO {
	return AccountDTO{
		ID:     acc.ID().Bytes(),
		Handle: acc.Handle(),
		Role:   int(acc.Role()),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Handle, account.Role(dto.Role))
}
