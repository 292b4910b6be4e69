package team

import (
	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// 自动编队是贪心的逐槽填充，不是穷举搜索：队伍至多7人、花名册可达
// 数百人时，穷举两两连携组合对交互式使用来说代价过高。贪心在每一步
// 只做一名候选的契合度前瞻，是有意为之的近似，不保证全局最优。

// synergyWeight 是贪心目标中连携契合度相对覆盖百分比的权重。
const synergyWeight = 10

// AutoFill 在给定花名册与当前编队的基础上自动补全空槽。
//
// 约束：锁定槽绝不改动；开启防重复时同一角色ID不会出现在两个
// 非锁定槽中（锁定槽豁免）；最低加成过滤作用于队长对其余成员的
// 平均覆盖。合格候选不足时宁可留空，不放宽约束。
// 空花名册不是错误，返回只保留锁定槽的编队。
func AutoFill(idx *unit.Index, roster []string, current Team) (Team, error) {
	// 预取并校验花名册，未知ID立即返回类型化错误
	infos := make(map[string]*unit.UnitInfo, len(roster))
	for _, id := range roster {
		info, err := idx.Unit(id)
		if err != nil {
			return Team{}, err
		}
		infos[id] = info
	}

	result := current
	for i := range result.Slots {
		if !result.Slots[i].Locked {
			result.Slots[i] = Slot{}
		}
	}

	// --- 队长槽 ---
	if !result.Slots[0].Locked {
		leaderID, err := pickLeader(idx, roster, result.MinBoost)
		if err != nil {
			return Team{}, err
		}
		if leaderID == "" {
			// 没有满足最低加成的队长候选：不放宽约束，整队留空
			return result, nil
		}
		result.Slots[0].UnitID = leaderID
	}

	var rules []skill.Rule
	if leaderID := result.Leader(); leaderID != "" {
		leaderInfo, err := idx.Unit(leaderID)
		if err != nil {
			return Team{}, err
		}
		rules = leaderRules(leaderInfo)
	}

	// --- 逐槽贪心填充 ---
	fillSlots(idx, &result, roster, infos, rules)
	return result, nil
}

// pickLeader 按BestLeader排序挑选首个满足最低加成过滤的队长候选。
// 过滤基准是候选对其余花名册成员的平均 ATK+DEF 覆盖。
func pickLeader(idx *unit.Index, roster []string, minBoost MinBoost) (string, error) {
	ranked, err := BestLeader(idx, roster, true)
	if err != nil {
		return "", err
	}
	for _, candidate := range ranked {
		if minBoost.Met(candidate.Score) {
			return candidate.UnitID, nil
		}
	}
	return "", nil
}

// fillSlots 依次为每个空的非锁定槽挑选得分最高的候选。
// 得分 = 队长覆盖的 ATK+DEF 合计 + synergyWeight × 契合度增量；
// 平分时先比稀有度（降序）再比角色ID（升序）保证确定性。
func fillSlots(idx *unit.Index, result *Team, roster []string, infos map[string]*unit.UnitInfo, rules []skill.Rule) {
	// 非锁定槽中已占用的ID永远不可重复选取；
	// 开启防重复时，锁定槽的占用者同样从候选中剔除
	taken := make(map[string]bool, TeamSize)
	var placedLinks [][]string
	for _, s := range result.Slots {
		if s.Empty() {
			continue
		}
		if !s.Locked || result.NoDuplicates {
			taken[s.UnitID] = true
		}
		if info, err := idx.Unit(s.UnitID); err == nil {
			if base := info.Base(); base != nil {
				placedLinks = append(placedLinks, base.Links)
			}
		}
	}

	for i := range result.Slots {
		if result.Slots[i].Locked || !result.Slots[i].Empty() {
			continue
		}

		bestID := ""
		bestScore, bestRank := 0, 0
		var bestLinks []string
		for _, id := range roster {
			if taken[id] {
				continue
			}
			info := infos[id]
			base := info.Base()
			if base == nil {
				continue
			}

			score := coverageOf(rules, info).Boost.ATKDEFTotal() +
				synergyWeight*synergyDelta(base.Links, placedLinks)
			if bestID == "" ||
				score > bestScore ||
				(score == bestScore && (info.RarityRank > bestRank ||
					(info.RarityRank == bestRank && id < bestID))) {
				bestID = id
				bestScore = score
				bestRank = info.RarityRank
				bestLinks = base.Links
			}
		}
		if bestID == "" {
			// 合格候选不足，槽位留空
			continue
		}

		result.Slots[i].UnitID = bestID
		taken[bestID] = true
		placedLinks = append(placedLinks, bestLinks)
	}
}
