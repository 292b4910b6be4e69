package metadata

// --- SQLite Keys ---
// 这些键用于 metadata 表的 key 列。
const (
	// LastImportTimeKey 记录最近一次成功卡片导入的时间 (RFC3339)
	LastImportTimeKey = "last_import_time"

	// ImportedUnitCountKey 记录最近一次成功导入的角色数
	ImportedUnitCountKey = "imported_unit_count"
)

// --- Redis Keys ---
const (
	// RedisIndexGenerationKey 是一个Redis String，存储当前生效的
	// 图鉴索引加载代序号。每次索引重建后由startup流程写入。
	RedisIndexGenerationKey = "meta:index_generation"
)
