// Package presets holds the built-in dimension catalog used to steer
// caption generation: every axis of caption style (tone, hooks, audience,
// structure, CTA, trends) with its enumerated options and bilingual labels.
// The built-in catalog is immutable; user customizations are layered on
// top via WithConfig.
package presets

import "math/rand/v2"

// Option is one selectable value of a dimension. Options are never mutated
// after creation; value is unique within its dimension.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	LabelEn string `json:"labelEn"`
	Custom  bool   `json:"isCustom,omitempty"`
}

// Dimension is a named axis of caption style with an ordered option set.
type Dimension struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	LabelEn string   `json:"labelEn"`
	Options []Option `json:"options"`
}

// Catalog is a read-only lookup of dimensions by key, preserving the
// canonical dimension order.
type Catalog struct {
	order []string
	dims  map[string]Dimension
}

// TikTokTagOrder is the fixed flattening order for the TikTok 5-key tag
// object returned by providers.
var TikTokTagOrder = [5]string{"audience", "vertical", "result", "action", "broadTraffic"}

// TikTokTagCategory describes one semantic slot of the TikTok tag contract.
type TikTokTagCategory struct {
	Label   string
	LabelEn string
}

// TikTokTagCategories maps each slot key to its display labels.
var TikTokTagCategories = map[string]TikTokTagCategory{
	"audience":     {Label: "Target Audience", LabelEn: "Audience Tag"},
	"vertical":     {Label: "Industry Vertical", LabelEn: "Vertical Tag"},
	"result":       {Label: "Outcome/Result", LabelEn: "Result Tag"},
	"action":       {Label: "Call to Action", LabelEn: "Action Tag"},
	"broadTraffic": {Label: "Broad Reach", LabelEn: "Broad Traffic Tag"},
}

func newCatalog(dims []Dimension) *Catalog {
	c := &Catalog{dims: make(map[string]Dimension, len(dims))}
	for _, d := range dims {
		c.order = append(c.order, d.Key)
		c.dims[d.Key] = d
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return newCatalog(builtins)
}

// Keys returns dimension keys in canonical order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Dimensions returns all dimensions in canonical order.
func (c *Catalog) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.dims[key])
	}
	return out
}

// Dimension returns the dimension for a key.
func (c *Catalog) Dimension(key string) (Dimension, bool) {
	d, ok := c.dims[key]
	return d, ok
}

// Has reports whether the catalog contains the dimension key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.dims[key]
	return ok
}

// RandomOption returns a uniformly random option value from the dimension's
// option list. A missing key is a programming error and yields "".
func (c *Catalog) RandomOption(key string) string {
	d, ok := c.dims[key]
	if !ok || len(d.Options) == 0 {
		return ""
	}
	return d.Options[rand.IntN(len(d.Options))].Value
}

// OptionLabel returns the display label for an option value, falling back
// to the raw value when the option is unknown (custom values typed by the
// user render as themselves).
func (c *Catalog) OptionLabel(key, value, language string) string {
	d, ok := c.dims[key]
	if !ok {
		return value
	}
	for _, o := range d.Options {
		if o.Value == value {
			if language == "zh" {
				return o.Label
			}
			return o.LabelEn
		}
	}
	return value
}

var builtins = []Dimension{
	// 1. Style & Tone
	{
		Key: "tone", Label: "语气", LabelEn: "Tone",
		Options: []Option{
			{Value: "immersive", Label: "沉浸式", LabelEn: "Immersive"},
			{Value: "futuristic", Label: "未来科技感", LabelEn: "Futuristic/Tech"},
			{Value: "dreamy", Label: "梦幻空灵", LabelEn: "Dreamy/Ethereal"},
			{Value: "artistic", Label: "艺术抽象", LabelEn: "Artistic/Abstract"},
			{Value: "exciting", Label: "高能量", LabelEn: "High-Energy"},
			{Value: "mysterious", Label: "神秘", LabelEn: "Mysterious"},
			{Value: "family", Label: "亲子友好", LabelEn: "Family-Friendly"},
		},
	},
	{
		Key: "writingStyle", Label: "写作风格", LabelEn: "Writing Style",
		Options: []Option{
			{Value: "sensory", Label: "感官描写", LabelEn: "Sensory-focused"},
			{Value: "journey", Label: "旅程叙事", LabelEn: "Journey/Narrative"},
			{Value: "guide", Label: "攻略指南", LabelEn: "Guide/Tips"},
			{Value: "poetic", Label: "诗意", LabelEn: "Poetic"},
			{Value: "review", Label: "用户测评", LabelEn: "User Review"},
		},
	},
	{
		Key: "perspective", Label: "视角", LabelEn: "Perspective",
		Options: []Option{
			{Value: "explorer", Label: "探索者（第一人称）", LabelEn: "Explorer (First Person)"},
			{Value: "guide", Label: "向导（第二人称）", LabelEn: "Guide (Second Person)"},
			{Value: "narrator", Label: "旁白（第三人称）", LabelEn: "Narrator (Third Person)"},
		},
	},
	{
		Key: "emotionalAppeal", Label: "情感诉求", LabelEn: "Emotional Appeal",
		Options: []Option{
			{Value: "awe", Label: "惊叹", LabelEn: "Awe/Wonder"},
			{Value: "curiosity", Label: "好奇", LabelEn: "Curiosity"},
			{Value: "escape", Label: "逃离现实", LabelEn: "Escapism"},
			{Value: "joy", Label: "纯粹快乐", LabelEn: "Pure Joy"},
			{Value: "inspiration", Label: "创作灵感", LabelEn: "Creative Inspiration"},
		},
	},
	{
		Key: "paces", Label: "节奏", LabelEn: "Paces",
		Options: []Option{
			{Value: "floating", Label: "缓慢漂浮", LabelEn: "Slow/Floating"},
			{Value: "dynamic", Label: "快速动感", LabelEn: "Fast/Dynamic"},
			{Value: "unfolding", Label: "悬念展开", LabelEn: "Unfolding Mystery"},
			{Value: "mixed", Label: "混合节奏", LabelEn: "Mixed Tempo"},
		},
	},
	{
		Key: "valueProposition", Label: "价值主张", LabelEn: "Value Prop",
		Options: []Option{
			{Value: "photogenic", Label: "出片圣地", LabelEn: "Instagrammable"},
			{Value: "interactive", Label: "互动体验", LabelEn: "Interactive Experience"},
			{Value: "date", Label: "约会胜地", LabelEn: "Perfect Date"},
			{Value: "family_fun", Label: "亲子乐趣", LabelEn: "Family Fun"},
			{Value: "tech_art", Label: "科技艺术", LabelEn: "Tech x Art"},
			{Value: "indoor", Label: "室内活动", LabelEn: "Indoor Activity"},
		},
	},

	// 2. Hooks
	{
		Key: "hookType", Label: "钩子类型", LabelEn: "Hook Type",
		Options: []Option{
			{Value: "vision", Label: "视觉钩子", LabelEn: "Visual Hook"},
			{Value: "location", Label: "悉尼地标", LabelEn: "Sydney Location"},
			{Value: "secret", Label: "秘密揭晓", LabelEn: "Secret Reveal"},
			{Value: "question", Label: "提问", LabelEn: "Question"},
			{Value: "invitation", Label: "邀请", LabelEn: "Invitation"},
		},
	},
	{
		Key: "openingTemplate", Label: "开场模板", LabelEn: "Opening Template",
		Options: []Option{
			{Value: "sydney_hidden", Label: "藏在悉尼的…", LabelEn: "Hidden in Sydney..."},
			{Value: "future_now", Label: "一脚踏进未来…", LabelEn: "Step into the future..."},
			{Value: "weekend_plan", Label: "周末安排上了…", LabelEn: "Weekend plans sorted..."},
			{Value: "art_alive", Label: "当艺术活过来…", LabelEn: "When art comes alive..."},
		},
	},

	// 3. Content Angle
	{
		Key: "contentFramework", Label: "内容框架", LabelEn: "Framework",
		Options: []Option{
			{Value: "tour", Label: "沉浸导览", LabelEn: "Immersive Tour"},
			{Value: "photo_guide", Label: "拍照攻略", LabelEn: "Photo Spot Guide"},
			{Value: "tech_explain", Label: "技术揭秘", LabelEn: "Tech Behind-the-Scenes"},
			{Value: "reaction", Label: "反应视频", LabelEn: "Reaction Video"},
			{Value: "vlog", Label: "一日游Vlog", LabelEn: "Day Trip Vlog"},
		},
	},
	{
		Key: "targetAudience", Label: "目标人群", LabelEn: "Audience",
		Options: []Option{
			{Value: "couples", Label: "情侣", LabelEn: "Couples"},
			{Value: "parents", Label: "家庭亲子", LabelEn: "Parents/Families"},
			{Value: "students", Label: "学生", LabelEn: "Students"},
			{Value: "content_creators", Label: "创作者/摄影师", LabelEn: "Creators/Photographers"},
			{Value: "tourists", Label: "游客", LabelEn: "Tourists"},
		},
	},

	// 4. Structure & Format
	{
		Key: "captionLength", Label: "篇幅", LabelEn: "Length",
		Options: []Option{
			{Value: "short", Label: "短（亮点）", LabelEn: "Short (Highlights)"},
			{Value: "medium", Label: "中（故事）", LabelEn: "Medium (Story)"},
			{Value: "long", Label: "长（全攻略）", LabelEn: "Long (Full Guide)"},
		},
	},
	{
		Key: "emojiStyle", Label: "表情符号", LabelEn: "Emoji",
		Options: []Option{
			{Value: "space", Label: "太空科技 (🪐✨)", LabelEn: "Space/Tech"},
			{Value: "magic", Label: "艺术魔法 (🎨🔮)", LabelEn: "Art/Magic"},
			{Value: "party", Label: "派对欢乐 (🎉🥳)", LabelEn: "Party/Fun"},
			{Value: "minimal", Label: "极简 (✨)", LabelEn: "Minimal"},
		},
	},
	{
		Key: "paragraphStructure", Label: "段落结构", LabelEn: "Structure",
		Options: []Option{
			{Value: "flow", Label: "流畅文本", LabelEn: "Flowing Text"},
			{Value: "list", Label: "清单", LabelEn: "Checklist"},
			{Value: "aesthetic", Label: "美学留白", LabelEn: "Aesthetic Spacing"},
		},
	},

	// 5. Call to Action
	{
		Key: "ctaTone", Label: "CTA语气", LabelEn: "CTA Tone",
		Options: []Option{
			{Value: "book_now", Label: "立即预订", LabelEn: "Book Now"},
			{Value: "tag_friend", Label: "@好友", LabelEn: "Tag a Friend"},
			{Value: "save_list", Label: "收藏备用", LabelEn: "Save for Later"},
			{Value: "visit", Label: "来玩", LabelEn: "Come Visit"},
		},
	},

	// 6. Time & Trends
	{
		Key: "timeliness", Label: "时效性", LabelEn: "Timeliness",
		Options: []Option{
			{Value: "limited", Label: "限时", LabelEn: "Limited Time"},
			{Value: "new_opening", Label: "盛大开幕", LabelEn: "Grand Opening"},
			{Value: "weekend", Label: "周末热点", LabelEn: "Weekend Hotspot"},
			{Value: "school_holiday", Label: "学校假期", LabelEn: "School Holidays"},
		},
	},
	{
		Key: "trendElements", Label: "潮流元素", LabelEn: "Trend Elements",
		Options: []Option{
			{Value: "cyberpunk", Label: "赛博朋克", LabelEn: "Cyberpunk"},
			{Value: "y2k", Label: "千禧风", LabelEn: "Y2K"},
			{Value: "dopamine", Label: "多巴胺配色", LabelEn: "Dopamine Colors"},
			{Value: "immersive_art", Label: "沉浸艺术", LabelEn: "Immersive Art"},
		},
	},
}
