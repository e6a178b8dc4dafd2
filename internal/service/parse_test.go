package service

import (
	"reflect"
	"testing"
)

func TestParseCaptionReply(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCaption string
		wantTags    []string
		wantErr     bool
	}{
		{
			name:        "plain json array tags",
			raw:         `{"caption":"Step inside ✨","tags":["#digipark","#sydney"]}`,
			wantCaption: "Step inside ✨",
			wantTags:    []string{"#digipark", "#sydney"},
		},
		{
			name:        "fenced json",
			raw:         "```json\n{\"caption\":\"Wow\",\"tags\":[\"#a\"]}\n```",
			wantCaption: "Wow",
			wantTags:    []string{"#a"},
		},
		{
			name:        "json surrounded by prose",
			raw:         "Here you go!\n{\"caption\":\"Hi\",\"tags\":[\"#x\"]}\nEnjoy!",
			wantCaption: "Hi",
			wantTags:    []string{"#x"},
		},
		{
			name: "tiktok tag object flattens in slot order",
			raw: `{"caption":"Go","tags":{"broadTraffic":"#fyp","audience":"#families",` +
				`"action":"#visit","vertical":"#immersiveart","result":"#mindblown"}}`,
			wantCaption: "Go",
			wantTags:    []string{"#families", "#immersiveart", "#mindblown", "#visit", "#fyp"},
		},
		{
			name:        "missing tags yields empty slice",
			raw:         `{"caption":"Solo"}`,
			wantCaption: "Solo",
			wantTags:    []string{},
		},
		{
			name:    "no json",
			raw:     "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "unterminated json",
			raw:     `{"caption":"oops`,
			wantErr: true,
		},
		{
			name:    "empty caption",
			raw:     `{"caption":"  ","tags":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caption, tags, err := parseCaptionReply(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got caption=%q tags=%v", caption, tags)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if caption != tt.wantCaption {
				t.Errorf("caption = %q, want %q", caption, tt.wantCaption)
			}
			if !reflect.DeepEqual(tags, tt.wantTags) {
				t.Errorf("tags = %v, want %v", tags, tt.wantTags)
			}
		})
	}
}

func TestExtractJSONObjectNested(t *testing.T) {
	raw := `prefix {"a":{"b":1},"c":2} suffix {"d":3}`
	got, err := extractJSONObject(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a":{"b":1},"c":2}` {
		t.Errorf("extractJSONObject = %q", got)
	}
}

func TestStripCodeFence(t *testing.T) {
	if got := stripCodeFence("no fence here"); got != "no fence here" {
		t.Errorf("unfenced content changed: %q", got)
	}
	if got := stripCodeFence("```\n{\"a\":1}\n```"); got != `{"a":1}` {
		t.Errorf("bare fence not stripped: %q", got)
	}
}
