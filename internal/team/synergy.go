package team

import (
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// Pair 是一对成员的无序下标 (I < J)，下标对应传入的成员顺序。
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// PairSynergy 是一对成员的连携契合度。
type PairSynergy struct {
	Pair
	UnitA string `json:"unitA"`
	UnitB string `json:"unitB"`
	// SharedLinks 是两名成员共有的连携技能名
	SharedLinks []string `json:"sharedLinks"`
}

// PairwiseSynergy 计算一组成员两两之间的共有连携数。
// 契合度按共有连携技能的个数计分，与成员传入顺序无关（对称）。
// 空队或单人队没有任何配对，返回空列表。
func PairwiseSynergy(idx *unit.Index, memberIDs []string) ([]PairSynergy, error) {
	links := make([][]string, len(memberIDs))
	for i, id := range memberIDs {
		info, err := idx.Unit(id)
		if err != nil {
			return nil, err
		}
		if base := info.Base(); base != nil {
			links[i] = base.Links
		}
	}

	var pairs []PairSynergy
	for i := 0; i < len(memberIDs); i++ {
		for j := i + 1; j < len(memberIDs); j++ {
			shared := sharedLinks(links[i], links[j])
			if len(shared) == 0 {
				continue
			}
			pairs = append(pairs, PairSynergy{
				Pair:        Pair{I: i, J: j},
				UnitA:       memberIDs[i],
				UnitB:       memberIDs[j],
				SharedLinks: shared,
			})
		}
	}
	return pairs, nil
}

// TeamSynergy 计算整队的契合度：全部无序配对的共有连携数之和。
func TeamSynergy(idx *unit.Index, memberIDs []string) (int, error) {
	pairs, err := PairwiseSynergy(idx, memberIDs)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range pairs {
		total += len(p.SharedLinks)
	}
	return total, nil
}

// sharedLinks 返回两组连携技能的交集，保持第一组的顺序。
func sharedLinks(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, name := range b {
		set[name] = struct{}{}
	}
	var shared []string
	for _, name := range a {
		if _, ok := set[name]; ok {
			shared = append(shared, name)
		}
	}
	return shared
}

// synergyDelta 计算把候选成员加入现有成员集后，整队契合度的增量。
// 自动编队的贪心选择只需要这一步之内的前瞻。
func synergyDelta(candidateLinks []string, placedLinks [][]string) int {
	delta := 0
	for _, links := range placedLinks {
		delta += len(sharedLinks(candidateLinks, links))
	}
	return delta
}
