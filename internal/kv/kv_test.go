package kv

import "testing"

func TestKey_Namespacing(t *testing.T) {
	if got := Key("quests"); got != "table:quests" {
		t.Errorf("Key(quests) = %q, want %q", got, "table:quests")
	}
}

func TestKey_TrimsWhitespace(t *testing.T) {
	if Key("  quests ") != Key("quests") {
		t.Error("whitespace around the table name should not change the key")
	}
}

func TestKey_NormalizesUnicode(t *testing.T) {
	// "é" composed vs "e" plus combining acute accent.
	composed := "café"
	decomposed := "cafe\u0301"
	if Key(composed) != Key(decomposed) {
		t.Errorf("NFC-equivalent names should share one key: %q vs %q",
			Key(composed), Key(decomposed))
	}
}
