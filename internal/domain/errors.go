package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternalError          = errors.New("internal error")
	ErrAccountNotFound        = errors.New("account not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrRecurringNotFound      = errors.New("recurring definition not found")
	ErrSavingsGoalNotFound    = errors.New("savings goal not found")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrInvalidAccountType     = errors.New("invalid account type")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidFrequency       = errors.New("invalid frequency")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidPercentages     = errors.New("budget percentages must be between 0 and 100 and sum to 100")
	ErrInvalidTheme           = errors.New("invalid theme")
	ErrSameAccountTransfer    = errors.New("cannot transfer to the same account")
	ErrGoalAccountsRequired   = errors.New("savings goal has no linked account pair")
	ErrGoalInactive           = errors.New("savings goal is reached or past its deadline")
	ErrInvalidCategoryType    = errors.New("invalid category type")
	ErrInvalidCurrency        = errors.New("invalid currency code")
	ErrInvalidColor           = errors.New("color must be a hex code like #6b7280")
	ErrCategoryInUse          = errors.New("category is used by transactions")
	ErrAccountInUse           = errors.New("account has transactions")
	ErrBackupNotConfigured    = errors.New("backup storage not configured")
)

// Validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 500
)
