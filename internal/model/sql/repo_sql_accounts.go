package sql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"storefront/internal/entity"
)

// CreateAccount persists the identity row and the requested role membership
// in one transaction. A duplicate email surfaces as gorm.ErrDuplicatedKey;
// uniqueness is left to the constraint so concurrent creations for the same
// email cannot race past an application-level check.
func (r *GormRepository) CreateAccount(ctx context.Context, account *entity.DbAccount, accountType entity.AccountType) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if account == nil {
		return fmt.Errorf("account is nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		record, err := roleRecord(accountType, account.ID)
		if err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}

// GetAccountByEmail loads an account by email.
func (r *GormRepository) GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var account entity.DbAccount
	if err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(trimmed)).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccountPassword replaces the stored hash for an account.
func (r *GormRepository) UpdateAccountPassword(ctx context.Context, id uint, passwordHash string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return fmt.Errorf("password hash is empty")
	}
	result := r.db.WithContext(ctx).Model(&entity.DbAccount{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAccounts returns one row per role membership across all role tables.
// Authorization is the caller's responsibility.
func (r *GormRepository) ListAccounts(ctx context.Context) ([]entity.AccountSummary, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	summaries := make([]entity.AccountSummary, 0)
	for _, accountType := range entity.AccountTypes() {
		table, err := roleTableName(accountType)
		if err != nil {
			return nil, err
		}

		var part []entity.AccountSummary
		err = r.db.WithContext(ctx).Table("accounts").
			Select("accounts.id AS id, accounts.email AS email, ? AS type", string(accountType)).
			Joins(fmt.Sprintf("JOIN %s ON %s.account_id = accounts.id", table, table)).
			Scan(&part).Error
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, part...)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ID != summaries[j].ID {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].Type < summaries[j].Type
	})
	return summaries, nil
}
