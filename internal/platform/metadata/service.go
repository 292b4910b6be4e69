package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
)

// GetValue 从metadata表读取指定键的值。键不存在时返回空字符串且无错误。
func GetValue(key string) (string, error) {
	var record Metadata
	err := database.DB.Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("读取metadata键 %s 失败: %w", key, err)
	}
	return record.Value, nil
}

// SetValue 写入或更新metadata表中的键值对。
func SetValue(key, value string) error {
	record := Metadata{Key: key, Value: value}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("写入metadata键 %s 失败: %w", key, err)
	}
	return nil
}

// GetLastImportTime 返回最近一次成功导入的时间。从未导入时返回零值时间。
func GetLastImportTime() (time.Time, error) {
	raw, err := GetValue(LastImportTimeKey)
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("解析last_import_time失败: %w", err)
	}
	return t, nil
}

// SetLastImportTime 记录本次成功导入的时间。
func SetLastImportTime(t time.Time) error {
	return SetValue(LastImportTimeKey, t.UTC().Format(time.RFC3339))
}

// GetImportedUnitCount 返回最近一次成功导入的角色数。从未导入时返回0。
func GetImportedUnitCount() (int, error) {
	raw, err := GetValue(ImportedUnitCountKey)
	if err != nil || raw == "" {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("解析imported_unit_count失败: %w", err)
	}
	return n, nil
}

// SetImportedUnitCount 记录本次成功导入的角色数。
func SetImportedUnitCount(n int) error {
	return SetValue(ImportedUnitCountKey, strconv.Itoa(n))
}
