// Package prompts renders the per-platform generation instructions sent to
// the LLM backends. Each platform keeps its own builder because the brand
// preamble aside, the voice, language rule, and output-tag contract differ
// materially between TikTok, Instagram, and Xiaohongshu.
package prompts

import (
	"fmt"
	"strings"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/presets"
)

// ============================================================================
// Brand Preamble
// ============================================================================

// BrandPreamble is the fixed Digipark brand/voice context prepended to every
// generation prompt regardless of platform.
const BrandPreamble = `BRAND CONTEXT: You are creating content for **Digipark** - Australia's premier immersive digital experience.

WHAT DIGIPARK IS:
- An art-tech fusion entertainment venue (located at Westfield Sydney)
- 18 thematic environments
- Combines art, technology, and imagination for all ages

BRAND VOICE & POSITIONING:
1. **WONDER & DISCOVERY**: Evoke curiosity, amazement, and the magic of stepping into another world
2. **INCLUSIVE FUN**: Family-friendly, accessible, joyful - appeals to all ages
3. **TECH-FORWARD**: Cutting-edge without being cold - technology serves emotion and experience
4. **LOCAL PRIDE**: Proudly Australian.

TONE: Exciting, imaginative, warm, inviting - like a friend sharing an incredible discovery.`

// ============================================================================
// Dimension Sections
// ============================================================================

type sectionLine struct {
	key   string
	label string
}

type promptSection struct {
	name  string
	lines []sectionLine
}

// englishSections is the fixed dimension-group layout used by the TikTok and
// Instagram builders.
var englishSections = []promptSection{
	{"STYLE & TONE", []sectionLine{
		{"tone", "Tone"},
		{"writingStyle", "Writing Style"},
		{"perspective", "Perspective"},
		{"emotionalAppeal", "Emotion"},
		{"paces", "Paces"},
		{"valueProposition", "Value Prop"},
	}},
	{"HOOK STRATEGY", []sectionLine{
		{"hookType", "Hook Type"},
		{"openingTemplate", "Opening"},
	}},
	{"CONTENT ANGLE", []sectionLine{
		{"contentFramework", "Framework"},
		{"targetAudience", "Audience"},
	}},
	{"STRUCTURE & FORMAT", []sectionLine{
		{"captionLength", "Length"},
		{"emojiStyle", "Emoji"},
		{"paragraphStructure", "Paragraphs"},
	}},
	{"CALL TO ACTION", []sectionLine{
		{"ctaTone", "CTA Tone"},
	}},
	{"TIMING & TRENDS", []sectionLine{
		{"timeliness", "Timeliness"},
		{"trendElements", "Trends"},
	}},
}

// xiaohongshuSections mirrors englishSections with the label wording the
// Xiaohongshu builder uses.
var xiaohongshuSections = []promptSection{
	{"STYLE & TONE", []sectionLine{
		{"tone", "Tone"},
		{"writingStyle", "Writing Style"},
		{"perspective", "Perspective"},
		{"emotionalAppeal", "Emotional Appeal"},
		{"paces", "Pacing"},
		{"valueProposition", "Value Prop"},
	}},
	{"HOOK STRATEGY", []sectionLine{
		{"hookType", "Hook Type"},
		{"openingTemplate", "Opener Template"},
	}},
	{"CONTENT ANGLE", []sectionLine{
		{"contentFramework", "Framework"},
		{"targetAudience", "Target Audience"},
	}},
	{"STRUCTURE & FORMAT", []sectionLine{
		{"captionLength", "Length"},
		{"emojiStyle", "Emoji Style"},
		{"paragraphStructure", "Structure"},
	}},
	{"CALL TO ACTION", []sectionLine{
		{"ctaTone", "CTA Tone"},
	}},
	{"TIMING & TRENDS", []sectionLine{
		{"timeliness", "Timeliness"},
		{"trendElements", "Trends"},
	}},
}

// ============================================================================
// Helpers
// ============================================================================

// FilterVariables drops disabled dimensions and empty values from a
// selection. The filtered set is exactly what the builders render and what
// the dispatcher records as variablesUsed.
func FilterVariables(vars domain.VariableSelection, disabledKeys []string) domain.VariableSelection {
	disabled := make(map[string]bool, len(disabledKeys))
	for _, k := range disabledKeys {
		disabled[k] = true
	}

	filtered := make(domain.VariableSelection, len(vars))
	for key, value := range vars {
		if disabled[key] {
			continue
		}
		if value.IsEmpty() {
			continue
		}
		filtered[key] = value
	}
	return filtered
}

// renderVariableLine renders one "- Label: option label[, option label]"
// line for a dimension, or "" when the dimension carries no value.
// Multi-valued dimensions join their resolved option labels with a comma.
func renderVariableLine(cat *presets.Catalog, key, label string, value domain.DimensionValue) string {
	values := value.Values()
	if len(values) == 0 {
		return ""
	}
	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, cat.OptionLabel(key, v, "en"))
	}
	return fmt.Sprintf("- %s: %s", label, strings.Join(labels, ", "))
}

func renderSections(b *strings.Builder, cat *presets.Catalog, sections []promptSection, vars domain.VariableSelection) {
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(section.name)
		b.WriteString(":\n")
		for _, line := range section.lines {
			rendered := renderVariableLine(cat, line.key, line.label, vars[line.key])
			if rendered != "" {
				b.WriteString(rendered)
				b.WriteString("\n")
			}
		}
	}
}

// ============================================================================
// Platform Builders
// ============================================================================

// BuildTikTokPrompt renders the TikTok generation instruction. TikTok replies
// must carry the 5-key tag object (audience/vertical/result/action/
// broadTraffic).
func BuildTikTokPrompt(cat *presets.Catalog, keywords []string, vars domain.VariableSelection, topic string, disabledKeys []string) string {
	clean := FilterVariables(vars, disabledKeys)

	var b strings.Builder
	b.WriteString(BrandPreamble)
	b.WriteString("\n\nPLATFORM: TikTok (Fast-paced, Visual, Trend-aware)\n\n")
	b.WriteString("You are generating a unique, engaging TikTok caption in ENGLISH.\n\n")
	b.WriteString("CRITICAL LANGUAGE RULE:\n")
	b.WriteString("- The content MUST be in ENGLISH.\n")
	b.WriteString("- If any input variable is in Chinese, TRANSLATE the concept to English before using it.\n\n")
	b.WriteString("KEYWORDS TO INCORPORATE: " + strings.Join(keywords, ", ") + "\n")
	if topic != "" {
		b.WriteString("TOPIC/THEME: " + topic + "\n")
	}

	renderSections(&b, cat, englishSections, clean)

	b.WriteString(`
TAG REQUIREMENTS:
Generate exactly 5 hashtags, one for each category:
1. Audience Tag (target audience)
2. Vertical Tag (industry/niche)
3. Result Tag (outcomes/benefits)
4. Action Tag (call to action)
5. Broad Traffic Tag (viral/trending)

OUTPUT FORMAT (JSON only, no markdown):
{
  "caption": "Your caption text here (without hashtags)",
  "tags": {
    "audience": "#YourAudienceTag",
    "vertical": "#YourVerticalTag",
    "result": "#YourResultTag",
    "action": "#YourActionTag",
    "broadTraffic": "#YourBroadTag"
  }
}`)
	return b.String()
}

// BuildInstagramPrompt renders the Instagram generation instruction.
// Instagram replies carry a flat tag array (8-15 recommended).
func BuildInstagramPrompt(cat *presets.Catalog, keywords []string, vars domain.VariableSelection, topic string, disabledKeys []string) string {
	clean := FilterVariables(vars, disabledKeys)

	var b strings.Builder
	b.WriteString(BrandPreamble)
	b.WriteString("\n\nPLATFORM: Instagram (Aesthetic, Community-focused, Storytelling)\n\n")
	b.WriteString("You are generating a unique, engaging Instagram caption in ENGLISH.\n\n")
	b.WriteString("CRITICAL LANGUAGE RULE:\n")
	b.WriteString("- The content MUST be 100% in ENGLISH.\n")
	b.WriteString("- If any input variable is in Chinese, TRANSLATE the concept to English before using it.\n\n")
	b.WriteString("KEYWORDS TO INCORPORATE: " + strings.Join(keywords, ", ") + "\n")
	if topic != "" {
		b.WriteString("TOPIC/THEME: " + topic + "\n")
	}

	renderSections(&b, cat, englishSections, clean)

	b.WriteString(`
Generate 8-15 relevant hashtags that mix popular and niche tags for optimal reach.

OUTPUT FORMAT (JSON only, no markdown):
{
  "caption": "Your caption text here (without hashtags)",
  "tags": ["#tag1", "#tag2", "#tag3", ...]
}`)
	return b.String()
}

// BuildXiaohongshuPrompt renders the Xiaohongshu (Little Red Book)
// generation instruction. The caption body is written in Chinese; replies
// carry a flat tag array (5-10 recommended).
func BuildXiaohongshuPrompt(cat *presets.Catalog, keywords []string, vars domain.VariableSelection, topic string, disabledKeys []string) string {
	clean := FilterVariables(vars, disabledKeys)

	var b strings.Builder
	b.WriteString(BrandPreamble)
	b.WriteString("\n\nPLATFORM: Xiaohongshu (Little Red Book) (Lifestyle, Authentic, Helpful, Emoji-rich)\n\n")
	b.WriteString("You are a professional and senior Digipark Xiaohongshu (Red Note) content manager. Please generate a unique, attractive Xiaohongshu caption in pure Chinese (except for proper nouns).\n\n")
	b.WriteString("CONTEXT & KEYWORDS:\n")
	b.WriteString("- Keywords to include: " + strings.Join(keywords, ", ") + "\n")
	if topic != "" {
		b.WriteString("- Topic Direction: " + topic + "\n")
	}

	renderSections(&b, cat, xiaohongshuSections, clean)

	b.WriteString(`
INSTRUCTIONS:
Generate 5-10 relevant hashtags, mixing trending tags and vertical tags.

OUTPUT FORMAT (JSON only, no markdown):
{
  "caption": "Your caption content (excluding tags)",
  "tags": ["#Tag1", "#Tag2", "#Tag3", ...]
}`)
	return b.String()
}

// BuildPrompt dispatches to the platform-specific builder.
func BuildPrompt(platform domain.Platform, cat *presets.Catalog, keywords []string, vars domain.VariableSelection, topic string, disabledKeys []string) string {
	switch platform {
	case domain.PlatformTikTok:
		return BuildTikTokPrompt(cat, keywords, vars, topic, disabledKeys)
	case domain.PlatformInstagram:
		return BuildInstagramPrompt(cat, keywords, vars, topic, disabledKeys)
	case domain.PlatformXiaohongshu:
		return BuildXiaohongshuPrompt(cat, keywords, vars, topic, disabledKeys)
	}
	return ""
}

// TranslatePrompt asks a provider to produce the bilingual label pair and a
// slug key for a new catalog entry.
func TranslatePrompt(text string) string {
	return fmt.Sprintf(`Translate and format this text for a creative writing assistant variable: %q.
If input is Chinese, translate to English. If English, translate to Chinese.
Generate a short, clean ID key (lowercase, snake_case) based on the English meaning.

OUTPUT FORMAT (JSON only, no markdown):
{
  "cn": "simplified Chinese translation",
  "en": "English translation",
  "key": "slug_like_key"
}`, text)
}
