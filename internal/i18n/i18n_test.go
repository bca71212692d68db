package i18n

import "testing"

func TestNew_English(t *testing.T) {
	i := New("en")
	if i.Locale() != "en" {
		t.Fatalf("Locale()=%q, want en", i.Locale())
	}
	got := i.T("menu.planner")
	if got != "Schedule Planner" {
		t.Fatalf("T(menu.planner)=%q, want Schedule Planner", got)
	}
}

func TestNew_Chinese(t *testing.T) {
	i := New("zh-CN")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	got := i.T("menu.planner")
	if got != "日程规划" {
		t.Fatalf("T(menu.planner)=%q, want 日程规划", got)
	}
}

func TestNew_ChineseFromLang(t *testing.T) {
	i := New("zh_CN.UTF-8")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	got := i.T("menu.library")
	if got != "图书馆" {
		t.Fatalf("T(menu.library)=%q, want 图书馆", got)
	}
}

func TestT_WithArgs(t *testing.T) {
	i := New("en")
	got := i.T("games.high_score", 80)
	if got != "High score: 80" {
		t.Fatalf("T with args=%q, want High score: 80", got)
	}
}

func TestT_MissingKey(t *testing.T) {
	i := New("en")
	got := i.T("nonexistent.key")
	if got != "nonexistent.key" {
		t.Fatalf("T missing key=%q, want key itself", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	// 中文目录的每个键都必须在英文目录里有 fallback
	// Every Chinese key must have an English fallback
	for k := range ZhCNMessages {
		if _, ok := EnMessages[k]; !ok {
			t.Errorf("zh-CN key %q missing from English catalog", k)
		}
	}
	for k := range EnMessages {
		if _, ok := ZhCNMessages[k]; !ok {
			t.Errorf("English key %q missing from zh-CN catalog", k)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en_US.UTF-8", "en"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"zh_TW", "zh-CN"},
		{"en", "en"},
		{"", "en"},
		{"fr_FR", "fr-FR"},
	}
	for _, tt := range tests {
		got := normalizeLocale(tt.input)
		if got != tt.expected {
			t.Errorf("normalizeLocale(%q)=%q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGlobal(t *testing.T) {
	g := Global()
	if g == nil {
		t.Fatal("Global() should not be nil")
	}
	// 应该返回同一实例 / Should return same instance
	g2 := Global()
	if g != g2 {
		t.Fatal("Global() should return same instance")
	}
}
