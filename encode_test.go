package fetchurl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	testData := []struct {
		value    string
		expected string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a b", "a%20b"},
		{"@:$,[]", "%40%3A%24%2C%5B%5D"},
		{"/?#&=+", "%2F%3F%23%26%3D%2B"},
		{"é", "%C3%A9"},
		{"\xff", "%FF"},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, record.expected, Escape(record.value))
		})
	}
}

func TestEncode(t *testing.T) {
	testData := []struct {
		value    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a b c", "a+b+c"},
		{"@:$,[]", "@:$,[]"},
		{"1:2:3", "1:2:3"},
		{"$1,$2", "$1,$2"},
		{"a&b=c", "a%26b%3Dc"},
		{"a+b", "a%2Bb"},
		{"/path?x#y", "%2Fpath%3Fx%23y"},
		{"%40", "%2540"},
		{"key[]", "key[]"},
		{"ünïcode", "%C3%BCn%C3%AFcode"},
		{"user@example.com", "user@example.com"},
	}

	for i, record := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, record.expected, Encode(record.value))
		})
	}
}
