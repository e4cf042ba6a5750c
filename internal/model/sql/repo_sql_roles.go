package sql

import (
	"context"
	"fmt"

	"storefront/internal/entity"
)

// roleTableName maps an account type onto its role table. The mapping is
// closed; an unmapped value is a configuration bug and must fail here,
// never fall through to a default table.
func roleTableName(accountType entity.AccountType) (string, error) {
	switch accountType {
	case entity.AccountTypeCustomer:
		return entity.DbCustomer{}.TableName(), nil
	case entity.AccountTypeAdmin:
		return entity.DbAdmin{}.TableName(), nil
	case entity.AccountTypeSales:
		return entity.DbSales{}.TableName(), nil
	case entity.AccountTypeSupport:
		return entity.DbSupport{}.TableName(), nil
	case entity.AccountTypeWarehouse:
		return entity.DbWarehouse{}.TableName(), nil
	default:
		return "", fmt.Errorf("unmapped account type %q", accountType)
	}
}

// roleRecord builds a fresh membership row for the given account type.
func roleRecord(accountType entity.AccountType, accountID uint) (any, error) {
	switch accountType {
	case entity.AccountTypeCustomer:
		return &entity.DbCustomer{AccountID: accountID}, nil
	case entity.AccountTypeAdmin:
		return &entity.DbAdmin{AccountID: accountID}, nil
	case entity.AccountTypeSales:
		return &entity.DbSales{AccountID: accountID}, nil
	case entity.AccountTypeSupport:
		return &entity.DbSupport{AccountID: accountID}, nil
	case entity.AccountTypeWarehouse:
		return &entity.DbWarehouse{AccountID: accountID}, nil
	default:
		return nil, fmt.Errorf("unmapped account type %q", accountType)
	}
}

// AccountRoleMembership reports the type-local id of the account's record in
// the requested role table. gorm.ErrRecordNotFound means the account holds
// no membership there.
func (r *GormRepository) AccountRoleMembership(ctx context.Context, accountType entity.AccountType, accountID uint) (uint, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	if accountID == 0 {
		return 0, fmt.Errorf("invalid account id")
	}

	table, err := roleTableName(accountType)
	if err != nil {
		return 0, err
	}

	var row struct {
		ID uint
	}
	if err := r.db.WithContext(ctx).Table(table).Select("id").Where("account_id = ?", accountID).Take(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
