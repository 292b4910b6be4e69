package skill

// StatBoost 描述一组按属性区分的加成数值。
// HP/ATK/DEF 为百分比加成，Ki 为固定点数加成。
type StatBoost struct {
	HP  int `json:"hp"`
	ATK int `json:"atk"`
	DEF int `json:"def"`
	Ki  int `json:"ki"`
}

// Add 将另一组加成叠加到当前加成上。
func (b *StatBoost) Add(other StatBoost) {
	b.HP += other.HP
	b.ATK += other.ATK
	b.DEF += other.DEF
	b.Ki += other.Ki
}

// ATKDEFTotal 返回 ATK+DEF 的合计百分比，供最低加成过滤使用。
func (b StatBoost) ATKDEFTotal() int {
	return b.ATK + b.DEF
}

// IsZero 判断加成是否全部为零。
func (b StatBoost) IsZero() bool {
	return b == StatBoost{}
}

// ConditionalBonus 是规则内嵌的条件加成：
// 角色在命中主条件之外，还命中 Categories 中任意一个分类时，额外叠加 Boost。
// 它永远是叠加，不会替代基础加成。
type ConditionalBonus struct {
	Categories []string  `json:"categories"`
	Boost      StatBoost `json:"boost"`
}

// Rule 是队长技能文本解析出的一条结构化规则。
type Rule struct {
	// Categories 是主条件要求的分类名集合，OR 匹配：命中任意一个即满足。
	// 分类名与图鉴索引中的字符串逐字一致，区分大小写。
	Categories []string `json:"categories"`

	// Wildcard 为 true 表示 "All Types" 之类的无条件形式，此时 Categories 为空。
	Wildcard bool `json:"wildcard"`

	// Base 是主条件命中时必定生效的基础加成。
	Base StatBoost `json:"base"`

	// Bonus 是可选的条件加成，未命中时为 nil。
	Bonus *ConditionalBonus `json:"bonus,omitempty"`

	// ParseFailed 标记该规则来自无法识别的文本。
	// 失败规则不含任何条件与加成，评估时视为零覆盖，绝不向上抛错。
	ParseFailed bool `json:"parseFailed,omitempty"`
}

// RuleMatch 记录覆盖评估中单条规则的命中痕迹。
type RuleMatch struct {
	RuleIndex int  `json:"ruleIndex"`
	Wildcard  bool `json:"wildcard"`
	// BonusMatched 表示该规则的条件加成是否同时命中。
	BonusMatched bool `json:"bonusMatched"`
}

// Coverage 是一次"单队长对单角色"覆盖评估的结果。
type Coverage struct {
	// Boost 是所有命中规则（含条件加成）逐条叠加后的总加成。
	Boost StatBoost `json:"boost"`

	// Matched 表示是否至少有一条规则命中。
	Matched bool `json:"matched"`

	// Wildcard 表示命中是否完全来自通配规则（与按分类精确命中相区分）。
	// 未命中时恒为 false。
	Wildcard bool `json:"wildcard"`

	// Trace 按规则顺序记录每条命中规则的痕迹。
	Trace []RuleMatch `json:"trace,omitempty"`
}
