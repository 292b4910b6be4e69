package unit

import (
	"encoding/json"
	"fmt"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
)

// --- Service-Level Data Transfer Objects (DTOs) ---

// UnitSummaryDTO 是列表页单个角色的数据
type UnitSummaryDTO struct {
	ID   string
	Info CachedUnitInfo
}

// UnitDetailDTO 是详情页所需的数据：角色信息加上被选中变体的完整技能组
type UnitDetailDTO struct {
	ID        string
	Name      string
	Rarity    string
	Type      string
	Thumb     string
	SourceURL string
	Variant   *VariantInfo
	// VariantKeys 列出全部变体的key，供前端切换形态
	VariantKeys []string
}

// CoverageDTO 是"指定队长对指定角色的覆盖"查询结果
type CoverageDTO struct {
	UnitID   string
	LeaderID string
	Coverage skill.Coverage
	// LeaderSkill 是被评估的队长技能原文
	LeaderSkill string
}

// --- Service Functions ---

// GetUnitSummaries 从Redis中按发布顺序获取完整的角色列表
func GetUnitSummaries() ([]UnitSummaryDTO, error) {
	// 1. 从Sorted Set获取全部角色ID，按发布顺序排列
	unitIDs, err := database.RDB.ZRange(database.Ctx, ReleaseKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis获取角色列表: %w", err)
	}
	if len(unitIDs) == 0 {
		return []UnitSummaryDTO{}, nil
	}

	// 2. 一次性取回所有角色的静态数据
	infoJSONs, err := database.RDB.HMGet(database.Ctx, InfoKey, unitIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis批量获取角色数据: %w", err)
	}

	// 3. 组合成DTO列表
	summaries := make([]UnitSummaryDTO, 0, len(unitIDs))
	for i, id := range unitIDs {
		var info CachedUnitInfo
		if infoJSONs[i] != nil {
			_ = json.Unmarshal([]byte(infoJSONs[i].(string)), &info)
		}
		summaries = append(summaries, UnitSummaryDTO{ID: id, Info: info})
	}
	return summaries, nil
}

// GetUnitDetail 从图鉴快照中取出单个角色，并按深链参数解析出被选中的变体。
func GetUnitDetail(unitID string, form int, mode string, step int) (*UnitDetailDTO, error) {
	idx, err := Snapshot()
	if err != nil {
		return nil, err
	}
	info, err := idx.Unit(unitID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(info.Variants))
	for _, v := range info.Variants {
		keys = append(keys, v.Key)
	}
	return &UnitDetailDTO{
		ID:          info.ID,
		Name:        info.Name,
		Rarity:      info.Rarity,
		Type:        info.Type,
		Thumb:       info.Thumb,
		SourceURL:   info.SourceURL,
		Variant:     info.ResolveVariant(form, mode, step),
		VariantKeys: keys,
	}, nil
}

// GetCoverage 评估指定队长对指定角色的覆盖。
// 两个ID都必须存在于当前快照中，否则返回类型化错误。
func GetCoverage(unitID, leaderID string, form int, mode string, step int) (*CoverageDTO, error) {
	idx, err := Snapshot()
	if err != nil {
		return nil, err
	}
	target, err := idx.Unit(unitID)
	if err != nil {
		return nil, err
	}
	leader, err := idx.Unit(leaderID)
	if err != nil {
		return nil, err
	}

	leaderBase := leader.Base()
	variant := target.ResolveVariant(form, mode, step)
	if leaderBase == nil || variant == nil {
		return nil, fmt.Errorf("%w: 角色缺少变体数据", ErrUnknownUnit)
	}

	rules := skill.Parse(leaderBase.LeaderSkill)
	return &CoverageDTO{
		UnitID:      unitID,
		LeaderID:    leaderID,
		Coverage:    skill.Evaluate(variant.Categories, rules),
		LeaderSkill: leaderBase.LeaderSkill,
	}, nil
}
