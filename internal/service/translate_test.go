package service

import (
	"context"
	"testing"

	"github.com/digipark/captionforge/internal/provider"
)

func TestTranslate(t *testing.T) {
	fake := &fakeClient{
		name: provider.BackendOpenAI,
		replies: []fakeReply{
			{text: "```json\n{\"cn\":\"赛博朋克\",\"en\":\"Cyberpunk\",\"key\":\"cyberpunk\"}\n```"},
		},
	}
	svc := NewTranslateService(provider.NewRegistry(fake), "gpt-4o")

	got, err := svc.Translate(context.Background(), "赛博朋克")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CN != "赛博朋克" || got.EN != "Cyberpunk" || got.Key != "cyberpunk" {
		t.Errorf("translation = %+v", got)
	}

	fake.mu.Lock()
	temp := fake.calls[0].Temperature
	fake.mu.Unlock()
	if temp >= 0.5 {
		t.Errorf("translation ran hot (temperature %v)", temp)
	}
}

func TestTranslateFillsMissingKey(t *testing.T) {
	fake := &fakeClient{
		name: provider.BackendOpenAI,
		replies: []fakeReply{
			{text: `{"cn":"多巴胺配色","en":"Dopamine Colors!"}`},
		},
	}
	svc := NewTranslateService(provider.NewRegistry(fake), "gpt-4o")

	got, err := svc.Translate(context.Background(), "dopamine colors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Key != "dopamine_colors" {
		t.Errorf("derived key = %q, want dopamine_colors", got.Key)
	}
}

func TestTranslateRejectsBlank(t *testing.T) {
	svc := NewTranslateService(provider.NewRegistry(), "gpt-4o")
	if _, err := svc.Translate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dopamine Colors", "dopamine_colors"},
		{"  Tech x Art!  ", "tech_x_art"},
		{"Y2K", "y2k"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
