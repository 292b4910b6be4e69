package startup

import (
	"fmt"
	"strconv"
	"time"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/config"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/metadata"
	"github.com/matthewshvorin/dokkan-team-backend/internal/team"
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication(cfg *config.Config) error {
	fmt.Println("开始应用首次初始化...")

	if err := metadata.PrimeDB(); err != nil {
		return err
	}
	if err := team.PrimeDB(); err != nil {
		return err
	}

	if cfg.Catalog.ImportOnStartup {
		fmt.Printf("正在从 %s 导入卡片数据...\n", cfg.Catalog.CardsDir)
		count, err := unit.ImportCards(cfg.Catalog.CardsDir)
		if err != nil {
			return fmt.Errorf("启动时导入卡片数据失败: %w", err)
		}
		if err := metadata.SetLastImportTime(time.Now()); err != nil {
			return err
		}
		if err := metadata.SetImportedUnitCount(count); err != nil {
			return err
		}
		fmt.Printf("卡片数据导入完成，共 %d 个角色。\n", count)
	}

	if err := unit.PrimeCachedDB(); err != nil {
		return err
	}
	if err := publishIndexGeneration(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建图鉴索引和Redis缓存的函数
func RebuildCache() error {
	fmt.Println("开始索引热重建...")

	if err := unit.InitializeRepository(); err != nil {
		return err
	}
	if err := unit.WarmupCache(); err != nil {
		return err
	}
	if err := publishIndexGeneration(); err != nil {
		return err
	}

	fmt.Println("索引热重建完成。")
	return nil
}

// publishIndexGeneration 将当前索引代序号写入Redis，供外部观测。
func publishIndexGeneration() error {
	idx, err := unit.Snapshot()
	if err != nil {
		return err
	}
	gen := strconv.FormatUint(idx.Generation(), 10)
	if err := database.RDB.Set(database.Ctx, metadata.RedisIndexGenerationKey, gen, 0).Err(); err != nil {
		return fmt.Errorf("写入索引代序号失败: %w", err)
	}
	return nil
}

// HandleRedisRecovery 在Redis从不健康状态恢复时，重新预热缓存。
func HandleRedisRecovery() {
	fmt.Println("检测到Redis已恢复，正在重新预热缓存...")
	if err := unit.WarmupCache(); err != nil {
		fmt.Printf("警告: Redis恢复后缓存预热失败: %v\n", err)
		return
	}
	if err := publishIndexGeneration(); err != nil {
		fmt.Printf("警告: Redis恢复后写入索引代序号失败: %v\n", err)
		return
	}
	fmt.Println("恢复后操作完成。")
}
