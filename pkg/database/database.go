package database

import (
	"ClipFlow.com/cmd/model"
	"ClipFlow.com/config"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open connects to MySQL, migrates the schema and seeds the fixed
// category list.
func Open() (*gorm.DB, error) {
	cfg := config.ConfigInfo.Mysql
	dsn := cfg.Username + ":" + cfg.Password + "@tcp(" + cfg.Addr + ")/" + cfg.Database +
		"?charset=" + cfg.Charset + "&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "failed to connect mysql")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.VideoLike{},
		&model.Comment{},
		&model.Follow{},
		&model.Category{},
	); err != nil {
		return errors.WithMessage(err, "auto migration failed")
	}
	return seedCategories(db)
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	categories := []model.Category{
		{Name: "Comedy", Slug: "comedy"},
		{Name: "Music", Slug: "music"},
		{Name: "Dance", Slug: "dance"},
		{Name: "Gaming", Slug: "gaming"},
		{Name: "Education", Slug: "education"},
		{Name: "Food", Slug: "food"},
		{Name: "Sports", Slug: "sports"},
	}
	return db.Create(&categories).Error
}
