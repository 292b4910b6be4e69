package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// 离线构卡工具：读取事先保存的 dokkaninfo 角色详情页HTML，
// 解析出角色元数据并落盘成 output/cards/<unit_id>/METADATA.json，
// 供服务端导入器消费。本工具不访问网络。
//
// 用法: go run ./GOscripts/buildcards <pages目录> <输出目录>
// pages目录下每个文件形如 <unit_id>.html

// CardMeta 是落盘的顶层结构
type CardMeta struct {
	UnitID      string        `json:"unit_id"`
	DisplayName string        `json:"display_name"`
	Rarity      string        `json:"rarity"`
	Type        string        `json:"type"`
	Variants    []VariantMeta `json:"variants"`
}

type VariantMeta struct {
	Key    string  `json:"key"`
	EZA    bool    `json:"eza"`
	Step   int     `json:"step"`
	Rarity string  `json:"rarity"`
	Type   string  `json:"type"`
	Kit    KitMeta `json:"kit"`
}

type KitMeta struct {
	LeaderSkill string    `json:"leader_skill"`
	SuperAttack NamedMeta `json:"super_attack"`
	Passive     NamedMeta `json:"passive_skill"`
	LinkSkills  []string  `json:"link_skills"`
	Categories  []string  `json:"categories"`
}

type NamedMeta struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

var (
	rarityRe = regexp.MustCompile(`cha_rare(?:_sm)?_(lr|ur|ssr|sr|r|n)\.png`)
	typeSet  = map[string]bool{"agl": true, "teq": true, "int": true, "str": true, "phy": true}
)

// 页面正文按这些标题切分成小节
var sectionHeaders = []string{
	"Leader Skill",
	"Super Attack",
	"Ultra Super Attack",
	"Passive Skill",
	"Active Skill",
	"Link Skills",
	"Categories",
	"Stats",
}

func main() {
	if len(os.Args) != 3 {
		log.Fatal("用法: buildcards <pages目录> <输出目录>")
	}
	pagesDir, outDir := os.Args[1], os.Args[2]

	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		log.Fatal(err)
	}

	built := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		unitID := strings.TrimSuffix(entry.Name(), ".html")
		meta, err := parsePage(filepath.Join(pagesDir, entry.Name()), unitID)
		if err != nil {
			fmt.Println("警告: 跳过", entry.Name(), ":", err)
			continue
		}
		if err := writeMeta(outDir, meta); err != nil {
			log.Fatal(err)
		}
		fmt.Println("已构建:", unitID, meta.DisplayName)
		built++
	}
	fmt.Println("构卡完成，共", built, "个角色。")
}

// parsePage 解析单个角色详情页
func parsePage(path, unitID string) (*CardMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	sections := splitSections(doc)

	meta := &CardMeta{
		UnitID:      unitID,
		DisplayName: parseDisplayName(doc),
		Rarity:      parseRarity(doc),
		Type:        parseType(doc),
	}
	if meta.DisplayName == "" {
		return nil, fmt.Errorf("页面中找不到角色名")
	}

	kit := KitMeta{
		LeaderSkill: strings.Join(sections["Leader Skill"], " "),
		SuperAttack: firstLineAndRest(sections["Super Attack"]),
		Passive:     firstLineAndRest(sections["Passive Skill"]),
		LinkSkills:  dedup(sections["Link Skills"]),
		Categories:  parseCategories(doc),
	}

	meta.Variants = []VariantMeta{{
		Key:    "base",
		Rarity: meta.Rarity,
		Type:   meta.Type,
		Kit:    kit,
	}}
	return meta, nil
}

// parseDisplayName 角色名位于页面首个 h1/h3 标题
func parseDisplayName(doc *goquery.Document) string {
	for _, sel := range []string{"h1", "h3", "h5"} {
		if name := strings.TrimSpace(doc.Find(sel).First().Text()); name != "" {
			return name
		}
	}
	return ""
}

// parseRarity 从稀有度角标图片的文件名识别稀有度
func parseRarity(doc *goquery.Document) string {
	rarity := ""
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if m := rarityRe.FindStringSubmatch(strings.ToLower(src)); m != nil {
			rarity = strings.ToUpper(m[1])
			return false
		}
		return true
	})
	return rarity
}

// parseType 属性颜色编码在详情框的 border-<type>/bg-<type> 类名里
func parseType(doc *goquery.Document) string {
	found := ""
	doc.Find("div.row.justify-content-center.align-items-center").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		classes, _ := s.Attr("class")
		for _, cls := range strings.Fields(classes) {
			var suffix string
			if strings.HasPrefix(cls, "border-") {
				suffix = strings.TrimPrefix(cls, "border-")
			} else if strings.HasPrefix(cls, "bg-") {
				suffix = strings.TrimPrefix(cls, "bg-")
			} else {
				continue
			}
			suffix = strings.ToLower(strings.TrimSuffix(suffix, "-2"))
			if typeSet[suffix] {
				found = strings.ToUpper(suffix)
				return false
			}
		}
		return true
	})
	return found
}

// parseCategories 分类优先取分类链接里的图片alt，其次取标签图片的alt
func parseCategories(doc *goquery.Document) []string {
	var cats []string
	doc.Find(`a[href*="/categories/"] img`).Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok {
			cats = append(cats, strings.TrimSpace(alt))
		}
	})
	doc.Find(`img[src*="/card_category/label/"]`).Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok {
			cats = append(cats, strings.TrimSpace(alt))
		}
	})
	return dedup(cats)
}

// splitSections 把页面可见文本按小节标题切开
func splitSections(doc *goquery.Document) map[string][]string {
	headers := make(map[string]bool, len(sectionHeaders))
	for _, h := range sectionHeaders {
		headers[h] = true
	}

	sections := make(map[string][]string)
	current := ""
	for _, raw := range strings.Split(doc.Find("body").Text(), "\n") {
		line := strings.Join(strings.Fields(raw), " ")
		if line == "" {
			continue
		}
		if headers[line] {
			current = line
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}
	return sections
}

// firstLineAndRest 小节的首行是技能名，其余行合并为效果文本
func firstLineAndRest(lines []string) NamedMeta {
	if len(lines) == 0 {
		return NamedMeta{}
	}
	return NamedMeta{
		Name:   lines[0],
		Effect: strings.Join(lines[1:], "; "),
	}
}

func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func writeMeta(outDir string, meta *CardMeta) error {
	dir := filepath.Join(outDir, meta.UnitID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "METADATA.json"), data, 0o644)
}
