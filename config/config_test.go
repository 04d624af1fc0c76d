package config

import "testing"

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":    "9090",
		"BAD_INT": "nine",
		"SEED":    "true",
		"EMPTY":   "",
		"ORIGINS": "https://a.example, ,https://b.example",
	}

	if got := GetString(c, "EMPTY", "fallback"); got != "fallback" {
		t.Errorf("GetString empty = %q", got)
	}
	if got := GetInt(c, "PORT", 8080); got != 9090 {
		t.Errorf("GetInt = %d", got)
	}
	if got := GetInt(c, "BAD_INT", 7); got != 7 {
		t.Errorf("GetInt bad = %d", got)
	}
	if !GetBool(c, "SEED", false) {
		t.Error("GetBool = false")
	}
	if GetBool(nil, "SEED", false) {
		t.Error("GetBool on nil config should use default")
	}
	if got := GetList(c, "ORIGINS"); len(got) != 2 || got[1] != "https://b.example" {
		t.Errorf("GetList = %v", got)
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("EDITORIAL_TEST_KEY", "a=b")
	if got := GetString(New(), "EDITORIAL_TEST_KEY", ""); got != "a=b" {
		t.Errorf("value = %q, want a=b", got)
	}
}
