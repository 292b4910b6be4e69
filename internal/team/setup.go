package team

import (
	"fmt"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
)

// PrimeDB 负责初始化team模块的数据库部分。
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Preset{}); err != nil {
		return fmt.Errorf("无法迁移preset表: %w", err)
	}
	fmt.Println("Preset数据库表迁移成功。")
	return nil
}
