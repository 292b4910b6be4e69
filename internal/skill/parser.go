package skill

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// 队长技能文本遵循一套固定的短语语法，例如：
//
//	"Successors", "Fused Fighters" or "Pure Saiyans" Category Ki +3,
//	HP +200% and ATK & DEF +170%, plus an additional HP, ATK & DEF +50%
//	for characters who also belong to the "Gifted Warriors" or "Fusion" Category
//
// 解析器只覆盖这套既有语法；不认识的写法一律软失败为零效果规则。

var (
	// quotedNameRe 提取带引号的分类名，名称逐字保留。
	quotedNameRe = regexp.MustCompile(`"([^"]+)"`)

	// statGroupRe 匹配一组属性加成，如 Ki +3、HP +200%、HP, ATK & DEF +50%。
	// 第一捕获组是属性名列表，第二捕获组是数值。
	statGroupRe = regexp.MustCompile(`\b((?:HP|ATK|DEF|Ki)(?:\s*(?:,|&|and)\s*(?:HP|ATK|DEF|Ki))*)\s*\+\s*(\d+)\s*%?`)

	// bonusRe 切分条件加成子句。第一捕获组是附加的加成描述，
	// 第二捕获组是附加要求的分类描述。
	bonusRe = regexp.MustCompile(`(?i)[,;]?\s*plus an additional\s+(.+?)\s+for characters who also belong to\s+(.+?)\s*$`)

	// wildcardRe 识别 "All Types" 无条件前缀。
	wildcardRe = regexp.MustCompile(`(?i)^\s*"?all types"?\b`)

	// categoryWordRe 去掉裸分类列表末尾的 Category/Categories 关键字。
	categoryWordRe = regexp.MustCompile(`(?i)\s*categor(?:y|ies)\s*$`)

	// bareSplitRe 切分不带引号的分类名列表。
	bareSplitRe = regexp.MustCompile(`\s*(?:,|\bor\b)\s*`)

	statSplitRe = regexp.MustCompile(`\s*(?:,|&|\band\b)\s*`)
)

// --- 解析缓存 ---
// 队长技能文本在一次加载代中不可变，同一字符串只解析一次。
// 图鉴重载时由 ResetCache 清空，开启新的一代。

var parseCache = struct {
	sync.RWMutex
	m map[string][]Rule
}{m: make(map[string][]Rule)}

// Parse 将一条队长技能文本解析为有序的规则列表。
// 解析是确定性的，并按原始字符串记忆化；任何输入都不会返回错误。
func Parse(text string) []Rule {
	parseCache.RLock()
	if rules, ok := parseCache.m[text]; ok {
		parseCache.RUnlock()
		return rules
	}
	parseCache.RUnlock()

	rules := parseText(text)

	parseCache.Lock()
	parseCache.m[text] = rules
	parseCache.Unlock()
	return rules
}

// ResetCache 清空解析缓存。图鉴索引重建时调用，开启新的加载代。
func ResetCache() {
	parseCache.Lock()
	parseCache.m = make(map[string][]Rule)
	parseCache.Unlock()
}

// parseText 是无缓存的实际解析入口。
func parseText(text string) []Rule {
	text = strings.TrimSpace(text)
	if text == "" {
		return []Rule{failedRule()}
	}

	// 多个独立子句以分号分隔，各自解析为一条规则
	clauses := strings.Split(text, ";")
	rules := make([]Rule, 0, len(clauses))
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		rules = append(rules, parseClause(clause))
	}
	if len(rules) == 0 {
		return []Rule{failedRule()}
	}
	return rules
}

// parseClause 解析单个子句：主条件 + 基础加成 + 可选的条件加成。
func parseClause(clause string) Rule {
	var rule Rule

	// 1. 先剥离条件加成子句
	if m := bonusRe.FindStringSubmatch(clause); m != nil {
		bonusBoost, ok := parseStatBoosts(m[1])
		bonusCats := parseCategoryList(m[2])
		if ok && len(bonusCats) > 0 {
			rule.Bonus = &ConditionalBonus{
				Categories: bonusCats,
				Boost:      bonusBoost,
			}
		}
		clause = strings.TrimSpace(clause[:len(clause)-len(m[0])])
	}

	// 2. 定位第一组属性加成，它之前的部分是主条件描述
	locs := statGroupRe.FindAllStringSubmatchIndex(clause, -1)
	if len(locs) == 0 {
		// 没有任何可识别的加成，整条视为解析失败
		return failedRule()
	}
	condText := clause[:locs[0][0]]

	base, _ := parseStatBoosts(clause[locs[0][0]:])
	rule.Base = base

	// 3. 主条件：通配或分类列表
	if wildcardRe.MatchString(condText) {
		rule.Wildcard = true
		return rule
	}
	rule.Categories = parseCategoryList(condText)
	if len(rule.Categories) == 0 {
		// 既无通配也无分类要求，不属于已知语法
		return failedRule()
	}
	return rule
}

// parseStatBoosts 提取一段文本中的全部属性加成。
// 同一数值可同时作用于多个属性（如 HP, ATK & DEF +50%）。
func parseStatBoosts(text string) (StatBoost, bool) {
	var boost StatBoost
	found := false
	for _, m := range statGroupRe.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		for _, stat := range statSplitRe.Split(m[1], -1) {
			switch strings.TrimSpace(stat) {
			case "HP":
				boost.HP = value
				found = true
			case "ATK":
				boost.ATK = value
				found = true
			case "DEF":
				boost.DEF = value
				found = true
			case "Ki":
				boost.Ki = value
				found = true
			}
		}
	}
	return boost, found
}

// parseCategoryList 从条件描述中提取分类名列表。
// 带引号的名称逐字保留；裸名称按 ,/or 切分并去掉收尾的 Category 关键字。
func parseCategoryList(text string) []string {
	if ms := quotedNameRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		names := make([]string, 0, len(ms))
		for _, m := range ms {
			names = append(names, m[1])
		}
		return names
	}

	text = categoryWordRe.ReplaceAllString(strings.TrimSpace(text), "")
	var names []string
	for _, part := range bareSplitRe.Split(text, -1) {
		part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "the "))
		if part == "" || strings.EqualFold(part, "the") {
			continue
		}
		names = append(names, part)
	}
	return names
}

// failedRule 返回解析失败的占位规则：零效果、无条件要求。
func failedRule() Rule {
	return Rule{ParseFailed: true}
}
