package metadata

import (
	"fmt"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
)

// PrimeDB 确保metadata表结构存在。
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Metadata{}); err != nil {
		return fmt.Errorf("迁移metadata表失败: %w", err)
	}
	return nil
}
