// Package model holds the GORM persistence models. They are mapped to and from
// domain entities by the postgres repositories and never leave the infra layer.
package model

// All returns every model in dependency order, ready for AutoMigrate.
func All() []any {
	return []any{
		&LocationModel{},
		&UserModel{},
		&CategoryModel{},
		&BookModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderDetailModel{},
		&PaymentModel{},
		&ReviewModel{},
	}
}
