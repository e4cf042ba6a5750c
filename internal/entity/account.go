package entity

import "time"

// AccountType identifies which role table an account claims membership of.
type AccountType string

const (
	AccountTypeCustomer  AccountType = "customer"
	AccountTypeAdmin     AccountType = "admin"
	AccountTypeSales     AccountType = "sales"
	AccountTypeSupport   AccountType = "support"
	AccountTypeWarehouse AccountType = "warehouse"
)

// AccountTypes lists every known account type in a stable order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeCustomer,
		AccountTypeAdmin,
		AccountTypeSales,
		AccountTypeSupport,
		AccountTypeWarehouse,
	}
}

// ParseAccountType maps a request string onto the closed enum. The second
// return is false for anything outside the five known kinds.
func ParseAccountType(value string) (AccountType, bool) {
	switch AccountType(value) {
	case AccountTypeCustomer, AccountTypeAdmin, AccountTypeSales, AccountTypeSupport, AccountTypeWarehouse:
		return AccountType(value), true
	default:
		return "", false
	}
}

// DbAccount is the persisted identity record, independent of role.
type DbAccount struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
}

// TableName overrides default pluralised name.
func (DbAccount) TableName() string {
	return "accounts"
}

// DbCustomer is the customer role membership record.
type DbCustomer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AccountID uint      `gorm:"column:account_id;uniqueIndex;not null" json:"account_id"`
}

func (DbCustomer) TableName() string {
	return "customers"
}

// DbAdmin is the admin role membership record.
type DbAdmin struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AccountID uint      `gorm:"column:account_id;uniqueIndex;not null" json:"account_id"`
}

func (DbAdmin) TableName() string {
	return "admins"
}

// DbSales is the sales role membership record.
type DbSales struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AccountID uint      `gorm:"column:account_id;uniqueIndex;not null" json:"account_id"`
}

func (DbSales) TableName() string {
	return "sales"
}

// DbSupport is the support role membership record.
type DbSupport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AccountID uint      `gorm:"column:account_id;uniqueIndex;not null" json:"account_id"`
}

func (DbSupport) TableName() string {
	return "support"
}

// DbWarehouse is the warehouse role membership record.
type DbWarehouse struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AccountID uint      `gorm:"column:account_id;uniqueIndex;not null" json:"account_id"`
}

func (DbWarehouse) TableName() string {
	return "warehouse"
}

// AccountSummary is one administrative listing row. An account holding
// memberships in several role tables appears once per membership.
type AccountSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"`
}
