package sql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"storefront/internal/entity"
)

func newTestRepository(t *testing.T) *GormRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.DbAccount{},
		&entity.DbCustomer{},
		&entity.DbAdmin{},
		&entity.DbSales{},
		&entity.DbSupport{},
		&entity.DbWarehouse{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return NewGormRepository(db)
}

func TestCreateAccountWithRoleMembership(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	account := &entity.DbAccount{Email: "a@b.com", PasswordHash: "hash"}
	if err := repo.CreateAccount(ctx, account, entity.AccountTypeCustomer); err != nil {
		t.Fatalf("unexpected error creating account: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("expected account id to be assigned")
	}

	localID, err := repo.AccountRoleMembership(ctx, entity.AccountTypeCustomer, account.ID)
	if err != nil {
		t.Fatalf("unexpected error resolving membership: %v", err)
	}
	if localID == 0 {
		t.Fatal("expected type-local id to be assigned")
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &entity.DbAccount{Email: "a@b.com", PasswordHash: "hash"}
	if err := repo.CreateAccount(ctx, first, entity.AccountTypeCustomer); err != nil {
		t.Fatalf("unexpected error creating account: %v", err)
	}

	second := &entity.DbAccount{Email: "a@b.com", PasswordHash: "hash"}
	err := repo.CreateAccount(ctx, second, entity.AccountTypeAdmin)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	// 角色记录不能在回滚后残留
	if _, err := repo.AccountRoleMembership(ctx, entity.AccountTypeAdmin, first.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected no admin membership after rollback, got %v", err)
	}
}

func TestGetAccountByEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	account := &entity.DbAccount{Email: "a@b.com", PasswordHash: "hash"}
	if err := repo.CreateAccount(ctx, account, entity.AccountTypeCustomer); err != nil {
		t.Fatalf("unexpected error creating account: %v", err)
	}

	loaded, err := repo.GetAccountByEmail(ctx, "  A@B.COM  ")
	if err != nil {
		t.Fatalf("unexpected error loading account: %v", err)
	}
	if loaded.ID != account.ID {
		t.Fatalf("expected account id %d, got %d", account.ID, loaded.ID)
	}

	if _, err := repo.GetAccountByEmail(ctx, "missing@b.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestUpdateAccountPassword(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	account := &entity.DbAccount{Email: "a@b.com", PasswordHash: "old"}
	if err := repo.CreateAccount(ctx, account, entity.AccountTypeCustomer); err != nil {
		t.Fatalf("unexpected error creating account: %v", err)
	}

	if err := repo.UpdateAccountPassword(ctx, account.ID, "new"); err != nil {
		t.Fatalf("unexpected error updating password: %v", err)
	}

	loaded, err := repo.GetAccountByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error loading account: %v", err)
	}
	if loaded.PasswordHash != "new" {
		t.Fatalf("expected stored hash to change, got %q", loaded.PasswordHash)
	}

	if err := repo.UpdateAccountPassword(ctx, 9999, "new"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound for unknown id, got %v", err)
	}
}

func TestAccountRoleMembershipUnmappedType(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.AccountRoleMembership(context.Background(), entity.AccountType("ghost"), 1); err == nil {
		t.Fatal("expected error for unmapped account type")
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("unmapped type must not look like a missing record")
	}
}

func TestListAccountsAcrossRoleTables(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	customer := &entity.DbAccount{Email: "customer@b.com", PasswordHash: "hash"}
	if err := repo.CreateAccount(ctx, customer, entity.AccountTypeCustomer); err != nil {
		t.Fatalf("unexpected error creating customer: %v", err)
	}
	admin := &entity.DbAccount{Email: "admin@b.com", PasswordHash: "hash"}
	if err := repo.CreateAccount(ctx, admin, entity.AccountTypeAdmin); err != nil {
		t.Fatalf("unexpected error creating admin: %v", err)
	}

	// 同一账户可同时持有多个角色表的成员资格
	if err := repo.db.WithContext(ctx).Create(&entity.DbSales{AccountID: admin.ID}).Error; err != nil {
		t.Fatalf("unexpected error adding sales membership: %v", err)
	}

	summaries, err := repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing accounts: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 membership rows, got %d", len(summaries))
	}

	types := map[string]int{}
	for _, summary := range summaries {
		types[summary.Type]++
		if summary.Email == "" || summary.ID == 0 {
			t.Fatalf("incomplete summary row: %+v", summary)
		}
	}
	if types["customer"] != 1 || types["admin"] != 1 || types["sales"] != 1 {
		t.Fatalf("unexpected membership distribution: %v", types)
	}
}
