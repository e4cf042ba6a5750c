package model

import (
	"context"

	"storefront/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 账户管理
	CreateAccount(ctx context.Context, account *entity.DbAccount, accountType entity.AccountType) error
	GetAccountByEmail(ctx context.Context, email string) (*entity.DbAccount, error)
	UpdateAccountPassword(ctx context.Context, id uint, passwordHash string) error
	ListAccounts(ctx context.Context) ([]entity.AccountSummary, error)

	// 账户类型
	AccountRoleMembership(ctx context.Context, accountType entity.AccountType, accountID uint) (uint, error)
}
