package skill

// Evaluate 将一名角色的分类归属套用到一组已解析的队长技能规则上，
// 得出该队长对该角色的总加成。
//
// 逐条规则判定：通配规则直接命中；否则规则要求的分类集合与角色分类
// 有交集即命中。主条件命中时基础加成必定叠加；条件加成独立判定，
// 同样命中时在基础之上继续叠加。多条命中规则之间同样是叠加关系。
//
// 本函数是纯函数：单队长、单角色、无副作用。双队长合计由调用方
// 对每个队长槽各评估一次后自行求和。
func Evaluate(categories []string, rules []Rule) Coverage {
	catSet := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		catSet[c] = struct{}{}
	}

	var cov Coverage
	exactHit := false
	for i, rule := range rules {
		if rule.ParseFailed {
			// 解析失败的规则视为零覆盖，不中断其余规则的评估
			continue
		}
		if !rule.Wildcard && !intersects(catSet, rule.Categories) {
			continue
		}

		cov.Matched = true
		if !rule.Wildcard {
			exactHit = true
		}
		cov.Boost.Add(rule.Base)

		match := RuleMatch{RuleIndex: i, Wildcard: rule.Wildcard}
		if rule.Bonus != nil && intersects(catSet, rule.Bonus.Categories) {
			cov.Boost.Add(rule.Bonus.Boost)
			match.BonusMatched = true
		}
		cov.Trace = append(cov.Trace, match)
	}

	// Wildcard 仅在命中完全来自通配规则时为 true
	cov.Wildcard = cov.Matched && !exactHit
	return cov
}

// intersects 判断角色分类集合与规则要求的分类列表是否有交集。
func intersects(catSet map[string]struct{}, required []string) bool {
	for _, name := range required {
		if _, ok := catSet[name]; ok {
			return true
		}
	}
	return false
}
