package unit

import (
	"encoding/json"
	"fmt"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// PrimeCachedDB 负责初始化unit模块的数据库、内存索引与Redis缓存。
func PrimeCachedDB() error {
	// 1. 迁移数据库表结构
	if err := migrateDB(); err != nil {
		return err
	}
	// 2. 从数据库构建内存图鉴索引
	if err := InitializeRepository(); err != nil {
		return err
	}
	// 3. 将列表页静态数据预热到Redis
	if err := WarmupCache(); err != nil {
		return err
	}
	return nil
}

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Unit{}, &Variant{}); err != nil {
		return fmt.Errorf("无法迁移unit表: %w", err)
	}
	fmt.Println("Unit数据库表迁移成功。")
	return nil
}

// WarmupCache 将当前图鉴快照的静态数据写入Redis：
// 角色信息Hash、发布顺序Sorted Set，以及按分类镜像的成员Set。
// 注意：此函数不含锁，调用方需保证在安全时机（启动或重建流程中）调用。
func WarmupCache() error {
	idx, err := Snapshot()
	if err != nil {
		return err
	}

	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, InfoKey, ReleaseKey)
	for _, name := range idx.Categories() {
		pipe.Del(database.Ctx, CategoryKeyPrefix+name)
	}

	for order, id := range idx.AllIDs() {
		info, err := idx.Unit(id)
		if err != nil {
			return err
		}
		base := info.Base()

		cached := CachedUnitInfo{
			Name:       info.Name,
			Rarity:     info.Rarity,
			Type:       info.Type,
			Thumb:      info.Thumb,
			NumVariant: len(info.Variants),
		}
		for _, v := range info.Variants {
			if v.EZA {
				cached.EZA = true
				break
			}
		}
		infoJSON, _ := json.Marshal(cached)
		pipe.HSet(database.Ctx, InfoKey, id, infoJSON)

		pipe.ZAdd(database.Ctx, ReleaseKey, redis.Z{
			Score:  float64(order),
			Member: id,
		})

		if base != nil {
			for _, cat := range base.Categories {
				pipe.SAdd(database.Ctx, CategoryKeyPrefix+cat, id)
			}
		}
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热角色静态数据到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 个角色的静态数据到Redis。\n", idx.Count())
	return nil
}
