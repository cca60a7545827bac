package repository

import (
	"splash-go/internal/model"

	"gorm.io/gorm"
)

type SearchHistoryRepository struct {
	db *gorm.DB
}

func NewSearchHistoryRepository(db *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

func (r *SearchHistoryRepository) Create(h *model.SearchHistory) error {
	return r.db.Create(h).Error
}

func (r *SearchHistoryRepository) GetByID(id int64) (*model.SearchHistory, error) {
	var h model.SearchHistory
	if err := r.db.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// Update 更新记录，记录不存在时返回 gorm.ErrRecordNotFound
func (r *SearchHistoryRepository) Update(id int64, updates map[string]interface{}) (*model.SearchHistory, error) {
	result := r.db.Model(&model.SearchHistory{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *SearchHistoryRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.SearchHistory{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll 清空搜索历史，返回删除条数
func (r *SearchHistoryRepository) DeleteAll() (int64, error) {
	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.SearchHistory{})
	return result.RowsAffected, result.Error
}

// List 按最近时间倒序分页
func (r *SearchHistoryRepository) List(skip, limit int) ([]model.SearchHistory, int64, error) {
	query := r.db.Model(&model.SearchHistory{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.SearchHistory
	err := query.Order("updated_at DESC").Order("id DESC").
		Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// QueriesWithPrefix 以 prefix 开头的历史搜索词，去重后按最近时间排序
func (r *SearchHistoryRepository) QueriesWithPrefix(prefix string, limit int) ([]string, error) {
	var queries []string
	err := r.db.Model(&model.SearchHistory{}).
		Where(`LOWER(query) LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Group("query").
		Order("MAX(updated_at) DESC").
		Limit(limit).
		Pluck("query", &queries).Error
	return queries, err
}
