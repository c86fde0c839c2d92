package model

type Category struct {
	CategoryId int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name       string `gorm:"column:name;size:64;not null" json:"name"`
	Slug       string `gorm:"column:slug;size:64;uniqueIndex" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}
