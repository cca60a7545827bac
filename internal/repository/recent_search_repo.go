package repository

import (
	"strings"

	"splash-go/internal/model"

	"gorm.io/gorm"
)

type RecentSearchRepository struct {
	db *gorm.DB
}

func NewRecentSearchRepository(db *gorm.DB) *RecentSearchRepository {
	return &RecentSearchRepository{db: db}
}

// Upsert 记录一次搜索；同一个搜索词只保留一条，重复搜索只刷新更新时间
func (r *RecentSearchRepository) Upsert(query string) (*model.RecentSearch, error) {
	var rs model.RecentSearch
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("query = ?", query).Limit(1).Find(&rs)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			rs = model.RecentSearch{Query: query}
			return tx.Create(&rs).Error
		}
		return tx.Model(&rs).Update("updated_at", tx.NowFunc()).Error
	})
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

// Update 修改搜索词
func (r *RecentSearchRepository) Update(id int64, query string) error {
	result := r.db.Model(&model.RecentSearch{}).Where("id = ?", id).Update("query", query)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RecentSearchRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.RecentSearch{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RecentSearchRepository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.RecentSearch{})
	return result.RowsAffected, result.Error
}

// List 最近的搜索词，最新的在前
func (r *RecentSearchRepository) List(limit int) ([]model.RecentSearch, error) {
	var items []model.RecentSearch
	err := r.db.Order("updated_at DESC").Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// escapeLike 转义 LIKE 通配符并转小写
func escapeLike(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
