package prompts

import (
	"strings"
	"testing"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/presets"
)

func TestFilterVariables(t *testing.T) {
	vars := domain.VariableSelection{
		"tone":     domain.Single("immersive"),
		"hookType": domain.Single("question"),
		"paces":    domain.Single(""),
		"emoji":    domain.Multi(),
	}

	got := FilterVariables(vars, []string{"hookType"})

	if _, ok := got["hookType"]; ok {
		t.Error("disabled dimension survived filtering")
	}
	if _, ok := got["paces"]; ok {
		t.Error("empty single survived filtering")
	}
	if _, ok := got["emoji"]; ok {
		t.Error("empty multi survived filtering")
	}
	if _, ok := got["tone"]; !ok {
		t.Error("valid dimension dropped by filtering")
	}
	if len(vars) != 4 {
		t.Error("FilterVariables mutated its input")
	}
}

func TestBuildTikTokPrompt(t *testing.T) {
	cat := presets.Default()
	vars := domain.VariableSelection{
		"tone":          domain.Single("immersive"),
		"hookType":      domain.Single("question"),
		"trendElements": domain.Multi("y2k", "cyberpunk"),
	}

	prompt := BuildTikTokPrompt(cat, []string{"neon", "Sydney"}, vars, "school holidays", []string{"hookType"})

	for _, want := range []string{
		"Digipark",
		"PLATFORM: TikTok",
		"neon, Sydney",
		"TOPIC/THEME: school holidays",
		"- Tone: Immersive",
		"- Trends: Y2K, Cyberpunk",
		`"broadTraffic"`,
		`"audience"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("TikTok prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "Hook Type:") {
		t.Error("disabled hookType rendered into prompt")
	}
}

func TestBuildInstagramPrompt(t *testing.T) {
	cat := presets.Default()
	prompt := BuildInstagramPrompt(cat, []string{"date night"}, nil, "", nil)

	for _, want := range []string{
		"PLATFORM: Instagram",
		"date night",
		"8-15 relevant hashtags",
		`"tags": ["#tag1"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Instagram prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "TOPIC/THEME") {
		t.Error("topic line rendered without a topic")
	}
}

func TestBuildXiaohongshuPrompt(t *testing.T) {
	cat := presets.Default()
	prompt := BuildXiaohongshuPrompt(cat, []string{"悉尼"}, nil, "周末", nil)

	for _, want := range []string{
		"Xiaohongshu",
		"pure Chinese",
		"悉尼",
		"Topic Direction: 周末",
		"5-10 relevant hashtags",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Xiaohongshu prompt missing %q", want)
		}
	}
}

func TestBuildPromptDispatch(t *testing.T) {
	cat := presets.Default()

	tests := []struct {
		platform domain.Platform
		marker   string
	}{
		{domain.PlatformTikTok, "PLATFORM: TikTok"},
		{domain.PlatformInstagram, "PLATFORM: Instagram"},
		{domain.PlatformXiaohongshu, "Xiaohongshu"},
	}
	for _, tt := range tests {
		prompt := BuildPrompt(tt.platform, cat, []string{"k"}, nil, "", nil)
		if !strings.Contains(prompt, tt.marker) {
			t.Errorf("BuildPrompt(%s) missing %q", tt.platform, tt.marker)
		}
	}

	if got := BuildPrompt("myspace", cat, nil, nil, "", nil); got != "" {
		t.Errorf("unknown platform produced a prompt: %q", got)
	}
}
