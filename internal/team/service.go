package team

import (
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// --- Service-Level Data Transfer Objects (DTOs) ---

// SynergySummaryDTO 是整队契合度概览
type SynergySummaryDTO struct {
	Pairwise []PairSynergy
	Total    int
}

// AutoFillResultDTO 是自动编队的结果：编队本身加上用于展示的摘要
type AutoFillResultDTO struct {
	Team    Team
	Synergy SynergySummaryDTO
	// LeaderAggregate 是队长对其余成员覆盖的合计（队长槽为空时为零）
	LeaderAggregate LeaderScore
}

// --- Service Functions ---

// SuggestBestLeader 对花名册执行最佳队长推荐。
func SuggestBestLeader(roster []string, useMean bool) ([]LeaderScore, error) {
	idx, err := unit.Snapshot()
	if err != nil {
		return nil, err
	}
	return BestLeader(idx, roster, useMean)
}

// FindLeadersFor 查找同时覆盖两个目标的队长，范围是完整图鉴。
func FindLeadersFor(targetA, targetB string, minBoost MinBoost) ([]CoveringLeader, error) {
	idx, err := unit.Snapshot()
	if err != nil {
		return nil, err
	}
	return FindCoveringLeaders(idx, targetA, targetB, minBoost)
}

// GetSynergySummary 计算一组成员的配对与整队契合度。
func GetSynergySummary(memberIDs []string) (*SynergySummaryDTO, error) {
	idx, err := unit.Snapshot()
	if err != nil {
		return nil, err
	}
	pairwise, err := PairwiseSynergy(idx, memberIDs)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, p := range pairwise {
		total += len(p.SharedLinks)
	}
	return &SynergySummaryDTO{Pairwise: pairwise, Total: total}, nil
}

// AutoFillTeam 执行自动编队并附带结果摘要。
func AutoFillTeam(roster []string, current Team) (*AutoFillResultDTO, error) {
	idx, err := unit.Snapshot()
	if err != nil {
		return nil, err
	}

	filled, err := AutoFill(idx, roster, current)
	if err != nil {
		return nil, err
	}

	result := &AutoFillResultDTO{Team: filled}

	members := filled.MemberIDs()
	pairwise, err := PairwiseSynergy(idx, members)
	if err != nil {
		return nil, err
	}
	result.Synergy.Pairwise = pairwise
	for _, p := range pairwise {
		result.Synergy.Total += len(p.SharedLinks)
	}

	// 队长对队内其余成员的聚合覆盖，供前端展示
	if leaderID := filled.Leader(); leaderID != "" {
		leaderInfo, err := idx.Unit(leaderID)
		if err != nil {
			return nil, err
		}
		rules := leaderRules(leaderInfo)
		result.LeaderAggregate.UnitID = leaderID
		for _, id := range members {
			if id == leaderID {
				continue
			}
			member, err := idx.Unit(id)
			if err != nil {
				return nil, err
			}
			cov := coverageOf(rules, member)
			if cov.Matched {
				result.LeaderAggregate.Covered++
			}
			result.LeaderAggregate.Aggregate.Add(cov.Boost)
		}
		result.LeaderAggregate.Score = result.LeaderAggregate.Aggregate.ATKDEFTotal()
	}
	return result, nil
}
