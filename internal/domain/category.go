package domain

import "time"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Color     string       `json:"color"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id string) (*Category, error)
	GetAll() ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id string) error
}
