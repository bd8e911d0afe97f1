package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"Ship Goods":        "shipGoods",
		"Confirm-Receipt!!": "confirmReceipt",
		"":                  "unnamedTask",
		"   ":               "unnamedTask",
		"1st Attempt":       "f1stAttempt",
		"already_camel":     "alreadyCamel",
		"ALLCAPS NAME":      "aLLCAPSNAME",
		"5 Day Deadline":    "f5DayDeadline",
	}
	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), "input %q", in)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"Ship Goods", "Confirm-Receipt!!", "1st Attempt", "", "ALLCAPS NAME", "5 Day Deadline"}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "sanitize must be idempotent for input %q", in)
	}
}
