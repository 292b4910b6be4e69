package team

import (
	"sort"

	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// --- Leader Recommender ---

// LeaderScore 是"最佳队长"推荐中单个候选的聚合得分。
type LeaderScore struct {
	UnitID string `json:"unitId"`
	// Aggregate 是对其他所有队员覆盖的逐属性合计
	Aggregate skill.StatBoost `json:"aggregate"`
	// Score 是用于排序的标量：ATK+DEF合计（useMean 时为其平均值）
	Score int `json:"score"`
	// Covered 是被该队长命中的队员数
	Covered int `json:"covered"`
}

// CoveringLeader 是双目标队长查询中的单个候选。
type CoveringLeader struct {
	UnitID    string          `json:"unitId"`
	CoverageA skill.StatBoost `json:"coverageA"`
	CoverageB skill.StatBoost `json:"coverageB"`
}

// leaderRules 解析候选队长基础变体的队长技能。
func leaderRules(info *unit.UnitInfo) []skill.Rule {
	base := info.Base()
	if base == nil {
		return nil
	}
	return skill.Parse(base.LeaderSkill)
}

// coverageOf 评估一名队长对一名成员的覆盖，双方都取基础变体。
func coverageOf(rules []skill.Rule, member *unit.UnitInfo) skill.Coverage {
	base := member.Base()
	if base == nil {
		return skill.Coverage{}
	}
	return skill.Evaluate(base.Categories, rules)
}

// BestLeader 在花名册内排出最佳队长：对每个候选，计算其队长技能
// 对其余所有花名册成员覆盖的合计，并按标量得分降序排序。
// useMean 为 true 时以平均覆盖代替合计作为排序标量。
// 空花名册不是错误，返回空列表；未知ID返回类型化错误。
func BestLeader(idx *unit.Index, roster []string, useMean bool) ([]LeaderScore, error) {
	members := make([]*unit.UnitInfo, 0, len(roster))
	for _, id := range roster {
		info, err := idx.Unit(id)
		if err != nil {
			return nil, err
		}
		members = append(members, info)
	}

	scores := make([]LeaderScore, 0, len(members))
	for i, candidate := range members {
		rules := leaderRules(candidate)
		entry := LeaderScore{UnitID: candidate.ID}
		others := 0
		for j, member := range members {
			if j == i {
				continue
			}
			others++
			cov := coverageOf(rules, member)
			if cov.Matched {
				entry.Covered++
			}
			entry.Aggregate.Add(cov.Boost)
		}
		entry.Score = entry.Aggregate.ATKDEFTotal()
		if useMean && others > 0 {
			entry.Score /= others
		}
		scores = append(scores, entry)
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].Score != scores[b].Score {
			return scores[a].Score > scores[b].Score
		}
		return scores[a].UnitID < scores[b].UnitID
	})
	return scores, nil
}

// FindCoveringLeaders 在全部图鉴范围内查找同时覆盖两个目标角色的队长。
// minBoost 不为Any时，候选对两个目标的 ATK+DEF 覆盖都必须达标。
// 排序：两侧覆盖的较小值降序，其次两侧之和降序，最后按角色ID升序定序。
// 两侧均无命中的候选不进入结果。
func FindCoveringLeaders(idx *unit.Index, targetA, targetB string, minBoost MinBoost) ([]CoveringLeader, error) {
	infoA, err := idx.Unit(targetA)
	if err != nil {
		return nil, err
	}
	infoB, err := idx.Unit(targetB)
	if err != nil {
		return nil, err
	}

	var results []CoveringLeader
	// 候选范围是完整的图鉴成员，新载入的角色无需额外重建即被纳入
	for _, id := range idx.AllIDs() {
		candidate, err := idx.Unit(id)
		if err != nil {
			return nil, err
		}
		rules := leaderRules(candidate)
		if len(rules) == 0 {
			continue
		}

		covA := coverageOf(rules, infoA)
		covB := coverageOf(rules, infoB)
		if !covA.Matched && !covB.Matched {
			continue
		}
		if !minBoost.Met(covA.Boost.ATKDEFTotal()) || !minBoost.Met(covB.Boost.ATKDEFTotal()) {
			continue
		}
		results = append(results, CoveringLeader{
			UnitID:    id,
			CoverageA: covA.Boost,
			CoverageB: covB.Boost,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		minA := min(results[a].CoverageA.ATKDEFTotal(), results[a].CoverageB.ATKDEFTotal())
		minB := min(results[b].CoverageA.ATKDEFTotal(), results[b].CoverageB.ATKDEFTotal())
		if minA != minB {
			return minA > minB
		}
		sumA := results[a].CoverageA.ATKDEFTotal() + results[a].CoverageB.ATKDEFTotal()
		sumB := results[b].CoverageA.ATKDEFTotal() + results[b].CoverageB.ATKDEFTotal()
		if sumA != sumB {
			return sumA > sumB
		}
		return results[a].UnitID < results[b].UnitID
	})
	return results, nil
}
